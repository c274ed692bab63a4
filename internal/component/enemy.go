package component

import "farm-defense/internal/ecs"

const CEnemy ecs.ComponentType = 11

// EnemyKind is the closed set of foes a wave can spawn.
type EnemyKind uint8

const (
	KindMonster EnemyKind = iota
	KindBoss
)

func (k EnemyKind) String() string {
	if k == KindBoss {
		return "boss"
	}
	return "monster"
}

// PassiveReward is what a boss hands out when it falls.
type PassiveReward struct {
	Name        string
	Description string
	Stackable   bool
}

type Enemy struct {
	Kind   EnemyKind
	Wave   int
	Reward PassiveReward // zero for monsters
}

func (Enemy) Type() ecs.ComponentType { return CEnemy }
