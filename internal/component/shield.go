package component

import "farm-defense/internal/ecs"

const CShield ecs.ComponentType = 6

// Shield absorbs incoming damage before it reaches Health. It is not timed.
type Shield struct {
	Points int
}

func (Shield) Type() ecs.ComponentType { return CShield }
