package system

import (
	"farm-defense/internal/component"
	"farm-defense/internal/ecs"
)

// EarnFragment hands id one fragment unless it already holds limit. A new
// fragment restarts the decay clock at rounds.
func EarnFragment(w *ecs.World, id ecs.EntityID, limit, rounds int) bool {
	earned := false
	ecs.Update(w, id, func(f *component.Fragments) {
		if f.Held >= limit {
			return
		}
		f.Held++
		f.RoundsLeft = rounds
		earned = true
	})
	return earned
}

// DecayFragments advances the fragment clock by one wave and reports whether
// the stash crumbled to nothing.
func DecayFragments(w *ecs.World, id ecs.EntityID) bool {
	expired := false
	ecs.Update(w, id, func(f *component.Fragments) {
		if f.Held <= 0 {
			return
		}
		f.RoundsLeft--
		if f.RoundsLeft <= 0 {
			f.Held = 0
			f.RoundsLeft = 0
			expired = true
		}
	})
	return expired
}

// FragmentsOf returns id's fragment stash.
func FragmentsOf(w *ecs.World, id ecs.EntityID) component.Fragments {
	f, _ := ecs.Get[component.Fragments](w, id)
	return f
}
