package system

import (
	"farm-defense/internal/component"
	"farm-defense/internal/ecs"
)

// ApplyEffect adds a timed effect to an entity. When one of the same kind is
// already active the stronger magnitude and the longer duration both win,
// so overlapping sources never shorten each other.
func ApplyEffect(w *ecs.World, id ecs.EntityID, eff component.ActiveEffect) {
	effs, _ := ecs.Get[component.Effects](w, id)
	for i, e := range effs.Active {
		if e.Kind == eff.Kind {
			effs.Active[i].Magnitude = max(e.Magnitude, eff.Magnitude)
			effs.Active[i].TurnsRemaining = max(e.TurnsRemaining, eff.TurnsRemaining)
			w.Add(id, effs)
			return
		}
	}
	effs.Active = append(effs.Active, eff)
	w.Add(id, effs)
}

// EffectOf returns the active effect of the given kind, if any.
func EffectOf(w *ecs.World, id ecs.EntityID, kind component.EffectKind) (component.ActiveEffect, bool) {
	effs, ok := ecs.Get[component.Effects](w, id)
	if !ok {
		return component.ActiveEffect{}, false
	}
	for _, e := range effs.Active {
		if e.Kind == kind && e.TurnsRemaining > 0 {
			return e, true
		}
	}
	return component.ActiveEffect{}, false
}

// HasEffect reports whether an entity currently has an effect of the given kind.
func HasEffect(w *ecs.World, id ecs.EntityID, kind component.EffectKind) bool {
	_, ok := EffectOf(w, id, kind)
	return ok
}

// consumeEffect burns one use of the effect and drops it when spent.
func consumeEffect(w *ecs.World, id ecs.EntityID, kind component.EffectKind) {
	ecs.Update(w, id, func(effs *component.Effects) {
		active := effs.Active[:0]
		for _, e := range effs.Active {
			if e.Kind == kind {
				e.TurnsRemaining--
			}
			if e.TurnsRemaining > 0 {
				active = append(active, e)
			}
		}
		effs.Active = active
	})
}

// RaiseShield lifts id's shield to at least points. Shields from different
// sources do not add up; the larger one holds.
func RaiseShield(w *ecs.World, id ecs.EntityID, points int) int {
	s, _ := ecs.Get[component.Shield](w, id)
	s.Points = max(s.Points, points)
	w.Add(id, s)
	return s.Points
}

// ShieldPoints returns id's remaining shield.
func ShieldPoints(w *ecs.World, id ecs.EntityID) int {
	s, _ := ecs.Get[component.Shield](w, id)
	return s.Points
}
