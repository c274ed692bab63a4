package component

import "farm-defense/internal/ecs"

const CStatus ecs.ComponentType = 4

// NoGimmick is the LastGimmickTurn of an enemy that has never drained.
const NoGimmick = -999

// Status carries the transient combat flags every combatant may hold.
// The zero value means "nothing pending" except LastGimmickTurn, which
// factories initialise to NoGimmick.
type Status struct {
	Stunned         bool    // skip the next action, cleared once skipped
	AttackDebuff    float64 // fraction shaved off the next attack, then reset
	LastGimmickTurn int     // battle turn of the last endless drain
	Escalated       bool    // long-battle attack escalation already applied
}

func (Status) Type() ecs.ComponentType { return CStatus }
