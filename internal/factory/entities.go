package factory

import (
	"fmt"

	"farm-defense/assets"
	"farm-defense/internal/component"
	"farm-defense/internal/config"
	"farm-defense/internal/ecs"
)

// StatLine is a pair of base stats.
type StatLine struct {
	HP, Attack int
}

// kindStats maps each enemy kind to its wave scaling.
var kindStats = map[component.EnemyKind]func(wave int) StatLine{
	component.KindMonster: monsterStats,
	component.KindBoss:    bossStats,
}

// endlessPerWave is the flat bonus per wave past the story's end.
var endlessPerWave = map[component.EnemyKind]StatLine{
	component.KindMonster: {HP: 20, Attack: 4},
	component.KindBoss:    {HP: 30, Attack: 6},
}

func monsterStats(wave int) StatLine {
	return StatLine{HP: 100 + 12*wave, Attack: 12 + 3*wave}
}

// bossStats is a monster plus a flat bonus tiered by wave bracket.
func bossStats(wave int) StatLine {
	s := monsterStats(wave)
	switch {
	case wave <= 10:
		s.HP += 80
		s.Attack += 15
	case wave <= 30:
		s.HP += 150
		s.Attack += 30
	default:
		s.HP += 250
		s.Attack += 40
	}
	return s
}

// EnemyStats returns the base stats of kind at wave, before any endless bonus.
func EnemyStats(kind component.EnemyKind, wave int) StatLine {
	return kindStats[kind](wave)
}

// KindForWave returns the enemy kind that guards wave: a boss every fifth.
func KindForWave(wave int) component.EnemyKind {
	if wave%5 == 0 {
		return component.KindBoss
	}
	return component.KindMonster
}

// BossName returns the display name of the boss on wave.
func BossName(wave int) string {
	title, ok := assets.BossTitles[wave]
	if !ok {
		title = assets.UntitledBoss
	}
	return fmt.Sprintf("%s (Wave %d)", title, wave)
}

// NewPlayer creates the player farm with every component it can ever need.
func NewPlayer(w *ecs.World, name string, bal config.Balance) ecs.EntityID {
	id := w.CreateEntity()
	w.Add(id, component.Identity{Name: name})
	w.Add(id, component.Health{Current: bal.StartHP, Max: bal.StartHP})
	w.Add(id, component.Combat{Attack: bal.StartAttack})
	w.Add(id, component.Status{LastGimmickTurn: component.NoGimmick})
	w.Add(id, component.Effects{})
	w.Add(id, component.Shield{})
	w.Add(id, component.Wallet{Coins: bal.StartCoins})
	w.Add(id, component.Skills{Cooldowns: make(map[string]int)})
	w.Add(id, component.Passives{Held: make(map[string]component.PassiveStack)})
	w.Add(id, component.Fragments{})
	w.Add(id, component.Milestones{})
	w.Add(id, component.TagPlayer{})
	return id
}

// NewEnemy spawns the foe of the given kind for wave.
func NewEnemy(w *ecs.World, kind component.EnemyKind, wave int) ecs.EntityID {
	stats := EnemyStats(kind, wave)
	name := assets.MonsterName
	var reward component.PassiveReward
	if kind == component.KindBoss {
		name = BossName(wave)
		reward = component.PassiveReward{
			Name:        assets.EmberFury.Name,
			Description: assets.EmberFury.Description,
			Stackable:   assets.EmberFury.Stackable,
		}
	}

	id := w.CreateEntity()
	w.Add(id, component.Identity{Name: name})
	w.Add(id, component.Health{Current: stats.HP, Max: stats.HP})
	w.Add(id, component.Combat{Attack: stats.Attack})
	w.Add(id, component.Status{LastGimmickTurn: component.NoGimmick})
	w.Add(id, component.Enemy{Kind: kind, Wave: wave, Reward: reward})
	return id
}

// ApplyEndlessBonus hardens an enemy by depth waves past the story's end.
func ApplyEndlessBonus(w *ecs.World, id ecs.EntityID, depth int) {
	if depth <= 0 {
		return
	}
	e, ok := ecs.Get[component.Enemy](w, id)
	if !ok {
		return
	}
	per := endlessPerWave[e.Kind]
	ecs.Update(w, id, func(hp *component.Health) {
		hp.Max += per.HP * depth
		hp.Current += per.HP * depth
	})
	ecs.Update(w, id, func(c *component.Combat) { c.Attack += per.Attack * depth })
}
