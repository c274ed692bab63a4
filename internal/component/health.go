package component

import "farm-defense/internal/ecs"

const CHealth ecs.ComponentType = 1

// Health is shared by the player and every enemy. Current stays in [0, Max].
type Health struct {
	Current, Max int
}

func (Health) Type() ecs.ComponentType { return CHealth }
