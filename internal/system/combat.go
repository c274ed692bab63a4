package system

import (
	"farm-defense/internal/component"
	"farm-defense/internal/dice"
	"farm-defense/internal/ecs"
	"math"
	"math/rand"
)

// AttackResult holds the outcome of one attack.
type AttackResult struct {
	Damage   int  // damage rolled after any surge
	Absorbed int  // part of Damage eaten by the defender's shield
	Surged   bool // an attack surge multiplied this hit
	Killed   bool
}

// DamageResult splits incoming damage into what the shield ate and what
// reached Health.
type DamageResult struct {
	Absorbed int
	Lost     int
}

// Round rounds half away from zero. Every "round" in the combat formulas
// goes through here so results stay identical across platforms.
func Round(f float64) int {
	return int(math.Round(f))
}

// IsAlive reports whether id still has Health above zero.
func IsAlive(w *ecs.World, id ecs.EntityID) bool {
	hp, ok := ecs.Get[component.Health](w, id)
	return ok && hp.Current > 0
}

// HealFlat restores n HP capped at Max and returns n.
func HealFlat(w *ecs.World, id ecs.EntityID, n int) int {
	ecs.Update(w, id, func(hp *component.Health) {
		hp.Current = min(hp.Max, hp.Current+n)
	})
	return n
}

// HealPercent restores round(Max*p) HP capped at Max and returns that amount.
func HealPercent(w *ecs.World, id ecs.EntityID, p float64) int {
	amount := 0
	ecs.Update(w, id, func(hp *component.Health) {
		amount = Round(float64(hp.Max) * p)
		hp.Current = min(hp.Max, hp.Current+amount)
	})
	return amount
}

// DamagePercent removes round(Max*p) HP floored at zero and returns that
// amount. It bypasses shields: it models hazards, not blows.
func DamagePercent(w *ecs.World, id ecs.EntityID, p float64) int {
	amount := 0
	ecs.Update(w, id, func(hp *component.Health) {
		amount = Round(float64(hp.Max) * p)
		hp.Current = max(0, hp.Current-amount)
	})
	return amount
}

// TakeDamage applies n damage to id. A Shield component absorbs first and
// shrinks by what it absorbed; the remainder reduces Health, floored at zero.
func TakeDamage(w *ecs.World, id ecs.EntityID, n int) DamageResult {
	var res DamageResult
	if n <= 0 {
		return res
	}
	ecs.Update(w, id, func(s *component.Shield) {
		res.Absorbed = min(n, s.Points)
		s.Points -= res.Absorbed
	})
	n -= res.Absorbed
	ecs.Update(w, id, func(hp *component.Health) {
		res.Lost = min(n, hp.Current)
		hp.Current = max(0, hp.Current-n)
	})
	return res
}

// RollAttackDamage returns round(Attack * U(0.8, 1.2)).
func RollAttackDamage(w *ecs.World, rng *rand.Rand, id ecs.EntityID) int {
	cbt, ok := ecs.Get[component.Combat](w, id)
	if !ok {
		return 0
	}
	return Round(dice.Uniform(rng, 0.8, 1.2) * float64(cbt.Attack))
}

// Attack resolves one basic attack from attacker against defender. An active
// attack surge on the attacker multiplies the roll and burns one charge.
// The reported Damage is the full hit even when a shield soaked part of it.
func Attack(w *ecs.World, rng *rand.Rand, attackerID, defenderID ecs.EntityID) AttackResult {
	if !w.Has(attackerID, component.CCombat) || !w.Has(defenderID, component.CHealth) {
		return AttackResult{}
	}
	dmg := RollAttackDamage(w, rng, attackerID)

	var res AttackResult
	if surge, ok := EffectOf(w, attackerID, component.EffectAttackSurge); ok && surge.Magnitude > 0 {
		dmg = Round(float64(dmg) * (1 + surge.Magnitude))
		consumeEffect(w, attackerID, component.EffectAttackSurge)
		res.Surged = true
	}
	res.Damage = dmg
	res.Absorbed = TakeDamage(w, defenderID, dmg).Absorbed
	res.Killed = !IsAlive(w, defenderID)
	return res
}

// Stun makes id skip its next action.
func Stun(w *ecs.World, id ecs.EntityID) {
	ecs.Update(w, id, func(s *component.Status) { s.Stunned = true })
}

// AddAttackDebuff stacks a one-shot reduction on id's next attack.
func AddAttackDebuff(w *ecs.World, id ecs.EntityID, frac float64) {
	ecs.Update(w, id, func(s *component.Status) { s.AttackDebuff += frac })
}
