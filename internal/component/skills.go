package component

import "farm-defense/internal/ecs"

const CSkills ecs.ComponentType = 8

// Skills lists acquired skill names in acquisition order and the turns left
// on each skill still cooling down. Names absent from Cooldowns are ready.
type Skills struct {
	Known     []string
	Cooldowns map[string]int
}

// Has reports whether name was already acquired.
func (s Skills) Has(name string) bool {
	for _, k := range s.Known {
		if k == name {
			return true
		}
	}
	return false
}

func (Skills) Type() ecs.ComponentType { return CSkills }
