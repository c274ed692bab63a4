package component

import "farm-defense/internal/ecs"

const CIdentity ecs.ComponentType = 3

// Identity is the display name of a combatant.
type Identity struct {
	Name string
}

func (Identity) Type() ecs.ComponentType { return CIdentity }
