package component

import "farm-defense/internal/ecs"

const CPassives ecs.ComponentType = 9

// MaxPassiveStacks caps every boss passive.
const MaxPassiveStacks = 3

type PassiveStack struct {
	Stacks    int
	Stackable bool
}

type Passives struct {
	Held map[string]PassiveStack
}

func (Passives) Type() ecs.ComponentType { return CPassives }
