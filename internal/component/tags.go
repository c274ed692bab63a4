package component

import "farm-defense/internal/ecs"

const CTagPlayer ecs.ComponentType = 12

// TagPlayer marks the player-controlled entity.
type TagPlayer struct{}

func (TagPlayer) Type() ecs.ComponentType { return CTagPlayer }
