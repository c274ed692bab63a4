package component

import "farm-defense/internal/ecs"

const CFragments ecs.ComponentType = 10

// Fragments tracks secret-code fragments dropped by bosses.
type Fragments struct {
	Held        int // 0..cap
	RoundsLeft  int // waves until the stash crumbles
	Activations int // successful activations; drives the price tier
}

func (Fragments) Type() ecs.ComponentType { return CFragments }
