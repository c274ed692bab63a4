package component

import "farm-defense/internal/ecs"

const CEffects ecs.ComponentType = 5

// EffectKind describes what an active effect does.
type EffectKind uint8

const (
	EffectDamageReduction EffectKind = iota // tonic: incoming damage scaled by 1-Magnitude
	EffectAttackSurge                       // outgoing attacks scaled by 1+Magnitude
)

// ActiveEffect is a timed status. TurnsRemaining counts uses, not wall turns:
// a tonic burns one when it softens a hit, a surge one per attack.
type ActiveEffect struct {
	Kind           EffectKind
	Magnitude      float64
	TurnsRemaining int
}

type Effects struct {
	Active []ActiveEffect
}

func (Effects) Type() ecs.ComponentType { return CEffects }
