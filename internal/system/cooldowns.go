package system

import (
	"farm-defense/internal/component"
	"farm-defense/internal/ecs"
)

// TickCooldowns takes one turn off every cooling skill of id. Entries that
// reach zero are removed, which makes the skill ready again.
func TickCooldowns(w *ecs.World, id ecs.EntityID) {
	ecs.Update(w, id, func(s *component.Skills) {
		for name, left := range s.Cooldowns {
			if left <= 1 {
				delete(s.Cooldowns, name)
				continue
			}
			s.Cooldowns[name] = left - 1
		}
	})
}

// CooldownLeft returns the turns before name can be used again (0 = ready).
func CooldownLeft(w *ecs.World, id ecs.EntityID, name string) int {
	s, ok := ecs.Get[component.Skills](w, id)
	if !ok {
		return 0
	}
	return s.Cooldowns[name]
}

// StartCooldown puts name on cooldown for turns ticks.
func StartCooldown(w *ecs.World, id ecs.EntityID, name string, turns int) {
	if turns <= 0 {
		return
	}
	ecs.Update(w, id, func(s *component.Skills) {
		if s.Cooldowns == nil {
			s.Cooldowns = make(map[string]int)
		}
		s.Cooldowns[name] = turns
	})
}
