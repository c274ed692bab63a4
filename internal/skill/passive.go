package skill

import (
	"math/rand"

	"farm-defense/assets"
	"farm-defense/internal/component"
	"farm-defense/internal/dice"
	"farm-defense/internal/ecs"
	"farm-defense/internal/system"
)

// GrantResult describes one boss passive offer.
type GrantResult struct {
	Granted  bool // false when the passive was already at the cap
	Stacks   int  // stacks held afterwards
	Bonus    bool // a surge granted an extra stack
	Backlash int  // HP lost to backlash, 0 if none
}

// GrantPassive hands one stack of reward to the player. A stackable passive
// that was already held has a 20% chance of a second stack; independently
// every grant has a 10% chance to cost 5% of max HP.
func GrantPassive(w *ecs.World, rng *rand.Rand, playerID ecs.EntityID, reward component.PassiveReward) GrantResult {
	if reward.Name == "" {
		return GrantResult{}
	}
	held, _ := ecs.Get[component.Passives](w, playerID)
	if held.Held == nil {
		held.Held = make(map[string]component.PassiveStack)
	}
	stack := held.Held[reward.Name]
	initial := stack.Stacks
	if initial >= component.MaxPassiveStacks {
		return GrantResult{Stacks: initial}
	}

	res := GrantResult{Granted: true}
	stack.Stackable = reward.Stackable
	stack.Stacks++
	applyStack(w, playerID, reward.Name)
	if reward.Stackable && initial > 0 && stack.Stacks < component.MaxPassiveStacks && dice.Chance(rng, 0.2) {
		stack.Stacks++
		applyStack(w, playerID, reward.Name)
		res.Bonus = true
	}
	held.Held[reward.Name] = stack
	w.Add(playerID, held)
	res.Stacks = stack.Stacks

	if dice.Chance(rng, 0.10) {
		lost := max(1, int(float64(system.HealthOf(w, playerID).Max)*0.05))
		system.TakeDamage(w, playerID, lost)
		res.Backlash = lost
	}
	return res
}

func applyStack(w *ecs.World, playerID ecs.EntityID, name string) {
	if def, ok := assets.Passives[name]; ok && def.AttackPer > 0 {
		system.RaiseAttack(w, playerID, def.AttackPer)
	}
}

// Stacks returns how many stacks of name the player holds.
func Stacks(w *ecs.World, playerID ecs.EntityID, name string) int {
	held, _ := ecs.Get[component.Passives](w, playerID)
	return held.Held[name].Stacks
}
