package component

import "farm-defense/internal/ecs"

const CCombat ecs.ComponentType = 2

type Combat struct {
	Attack int
	// WaveBonus is the part of Attack granted for the current wave only.
	// Every temporary source adds to it; the whole sum is stripped at wave end.
	WaveBonus int
}

func (Combat) Type() ecs.ComponentType { return CCombat }
