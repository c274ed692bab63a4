package system

import (
	"farm-defense/internal/component"
	"farm-defense/internal/ecs"
	"math/rand"
)

// StrikeResult describes one enemy action against the player.
type StrikeResult struct {
	Stunned  bool // the enemy spent its action shaking off a stun
	Rolled   int  // raw roll before any modifier
	Debuffed bool // a pending attack debuff was applied and cleared
	Tonic    bool // the target's damage-reduction tonic softened the hit
	PreTonic int  // damage after debuff, before the tonic
	Damage   int  // damage delivered to the target (shield included)
	Absorbed int
	Lethal   bool
}

// EnemyStrike runs the enemy's action for one turn. A stunned enemy skips
// and clears the stun. Otherwise the roll is cut by any pending debuff (which
// is then reset), then by the target's tonic (which burns one charge).
func EnemyStrike(w *ecs.World, rng *rand.Rand, enemyID, targetID ecs.EntityID) StrikeResult {
	var res StrikeResult
	st, _ := ecs.Get[component.Status](w, enemyID)
	if st.Stunned {
		st.Stunned = false
		w.Add(enemyID, st)
		res.Stunned = true
		return res
	}

	res.Rolled = RollAttackDamage(w, rng, enemyID)
	actual := res.Rolled
	if st.AttackDebuff > 0 {
		actual = max(0, int(float64(actual)*(1-st.AttackDebuff)))
		st.AttackDebuff = 0
		w.Add(enemyID, st)
		res.Debuffed = true
	}

	res.PreTonic = actual
	if tonic, ok := EffectOf(w, targetID, component.EffectDamageReduction); ok && tonic.Magnitude > 0 {
		actual = int(float64(actual) * (1 - tonic.Magnitude))
		consumeEffect(w, targetID, component.EffectDamageReduction)
		res.Tonic = true
	}

	res.Damage = actual
	res.Absorbed = TakeDamage(w, targetID, actual).Absorbed
	res.Lethal = !IsAlive(w, targetID)
	return res
}

// DrainResult describes an endless-mode HP drain.
type DrainResult struct {
	Triggered bool
	Label     string
	Percent   float64
	Damage    int
}

// EndlessDrain rolls the endless-mode gimmick for enemyID at the given battle
// turn. It fires at most once every spacing turns per enemy. depth is the
// number of waves past the story's end and sharpens both chance and drain.
func EndlessDrain(w *ecs.World, rng *rand.Rand, enemyID, targetID ecs.EntityID, turn, depth, spacing int) DrainResult {
	st, ok := ecs.Get[component.Status](w, enemyID)
	if !ok || turn-st.LastGimmickTurn < spacing {
		return DrainResult{}
	}

	boss := false
	if e, ok := ecs.Get[component.Enemy](w, enemyID); ok {
		boss = e.Kind == component.KindBoss
	}
	depth = max(0, depth)
	d := float64(depth)

	chance := 0.14
	if boss {
		chance = 0.24
	}
	chance += min(0.18, d*0.01)
	if rng.Float64() >= chance {
		return DrainResult{}
	}

	res := DrainResult{Triggered: true, Label: "Endless Hunger", Percent: 0.04 + min(0.08, d*0.0015)}
	if boss {
		res.Label = "Boss Siphon"
		res.Percent = 0.06 + min(0.12, d*0.002)
	}
	hp, _ := ecs.Get[component.Health](w, targetID)
	res.Damage = max(1, Round(float64(hp.Max)*res.Percent))
	TakeDamage(w, targetID, res.Damage)

	st.LastGimmickTurn = turn
	w.Add(enemyID, st)
	return res
}
