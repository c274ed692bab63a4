package system

import (
	"farm-defense/internal/component"
	"farm-defense/internal/ecs"
)

// WaveClearUpgrade applies the fixed reward for surviving a wave: more
// attack, more max HP and a full heal.
func WaveClearUpgrade(w *ecs.World, id ecs.EntityID, attack, maxHP int) {
	RaiseAttack(w, id, attack)
	ecs.Update(w, id, func(hp *component.Health) {
		hp.Max += maxHP
		hp.Current = hp.Max
	})
}

// RaiseAttack permanently adds n to id's attack.
func RaiseAttack(w *ecs.World, id ecs.EntityID, n int) {
	ecs.Update(w, id, func(c *component.Combat) { c.Attack += n })
}

// GrantWaveAttack adds n attack that StripWaveBonus takes back at wave end.
func GrantWaveAttack(w *ecs.World, id ecs.EntityID, n int) {
	ecs.Update(w, id, func(c *component.Combat) {
		c.Attack += n
		c.WaveBonus += n
	})
}

// StripWaveBonus removes every wave-only attack bonus and returns the total.
func StripWaveBonus(w *ecs.World, id ecs.EntityID) int {
	stripped := 0
	ecs.Update(w, id, func(c *component.Combat) {
		if c.WaveBonus <= 0 {
			return
		}
		stripped = c.WaveBonus
		c.Attack = max(0, c.Attack-c.WaveBonus)
		c.WaveBonus = 0
	})
	return stripped
}

// GrowMaxHP raises Max by n. With heal set, Current rises by the same amount;
// otherwise Current is left alone.
func GrowMaxHP(w *ecs.World, id ecs.EntityID, n int, heal bool) {
	ecs.Update(w, id, func(hp *component.Health) {
		hp.Max += n
		if heal {
			hp.Current = min(hp.Max, hp.Current+n)
		}
	})
}

// AttackOf returns id's current attack power.
func AttackOf(w *ecs.World, id ecs.EntityID) int {
	c, _ := ecs.Get[component.Combat](w, id)
	return c.Attack
}

// HealthOf returns id's Health component (zero when absent).
func HealthOf(w *ecs.World, id ecs.EntityID) component.Health {
	hp, _ := ecs.Get[component.Health](w, id)
	return hp
}

// NameOf returns the display name of id.
func NameOf(w *ecs.World, id ecs.EntityID) string {
	ident, ok := ecs.Get[component.Identity](w, id)
	if !ok || ident.Name == "" {
		return "creature"
	}
	return ident.Name
}
