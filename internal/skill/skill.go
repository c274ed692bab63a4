// Package skill holds the player's skill catalog and boss passives.
package skill

import (
	"fmt"
	"math/rand"

	"farm-defense/internal/component"
	"farm-defense/internal/dice"
	"farm-defense/internal/ecs"
	"farm-defense/internal/system"
)

// NoRecharge marks a skill that never enters the cooldown map. Such a skill
// is spent on use and must be acquired again.
const NoRecharge = 9999

// Effect applies a skill and returns the line describing what happened.
type Effect func(w *ecs.World, playerID, enemyID ecs.EntityID) string

// Def is one catalog entry.
type Def struct {
	Name        string
	Description string
	Cooldown    int
	Effect      Effect
}

// Recharges reports whether using the skill starts a cooldown.
func (d Def) Recharges() bool {
	return d.Cooldown > 0 && d.Cooldown < NoRecharge
}

var catalog = []Def{
	{
		Name:        "Blazing Corn",
		Description: "Deal 30% of enemy current HP + 30% of your attack power and stun the enemy.",
		Cooldown:    4,
		Effect:      blazingCorn,
	},
	{
		Name:        "Rain Dance",
		Description: "Restore HP equal to 30% of your max HP + 50% of your attack power.",
		Cooldown:    5,
		Effect:      rainDance,
	},
	{
		Name:        "Stampede",
		Description: "Strike for 1.3x attack power, reduce enemy next attack, and you take 30% recoil.",
		Cooldown:    5,
		Effect:      stampede,
	},
	{
		Name:        "Fortify Fence",
		Description: "Permanently increase max HP by 25.",
		Cooldown:    NoRecharge,
		Effect:      fortifyFence,
	},
	{
		Name:        "Sap Burst",
		Description: "Deal 0.9x attack power and heal for 12% of your max HP.",
		Cooldown:    3,
		Effect:      sapBurst,
	},
	{
		Name:        "Concussive Seed",
		Description: "Deal 0.5x attack power and stun the enemy to skip its next turn.",
		Cooldown:    4,
		Effect:      concussiveSeed,
	},
}

var byName = func() map[string]Def {
	m := make(map[string]Def, len(catalog))
	for _, d := range catalog {
		m[d.Name] = d
	}
	return m
}()

// Catalog returns a copy of every skill in catalog order.
func Catalog() []Def {
	return append([]Def(nil), catalog...)
}

// Lookup finds a skill by name.
func Lookup(name string) (Def, bool) {
	d, ok := byName[name]
	return d, ok
}

func blazingCorn(w *ecs.World, playerID, enemyID ecs.EntityID) string {
	hp := system.HealthOf(w, enemyID)
	dmg := system.Round(float64(hp.Current)*0.3) + system.Round(float64(system.AttackOf(w, playerID))*0.3)
	system.TakeDamage(w, enemyID, dmg)
	system.Stun(w, enemyID)
	return fmt.Sprintf("🔥 Blazing Corn deals %d damage and stuns %s (they skip their next turn)!", dmg, system.NameOf(w, enemyID))
}

func rainDance(w *ecs.World, playerID, _ ecs.EntityID) string {
	hp := system.HealthOf(w, playerID)
	amount := system.Round(float64(hp.Max)*0.3) + system.Round(float64(system.AttackOf(w, playerID))*0.5)
	system.HealFlat(w, playerID, amount)
	return fmt.Sprintf("🌧️ Rain Dance restores %d HP!", amount)
}

func stampede(w *ecs.World, playerID, enemyID ecs.EntityID) string {
	dmg := system.Round(float64(system.AttackOf(w, playerID)) * 1.3)
	system.TakeDamage(w, enemyID, dmg)
	system.AddAttackDebuff(w, enemyID, 0.3)
	recoil := system.Round(float64(dmg) * 0.3)
	system.TakeDamage(w, playerID, recoil)
	return fmt.Sprintf("🐄 Stampede hits %s for %d damage, you recoil %d HP and reduce their next attack!", system.NameOf(w, enemyID), dmg, recoil)
}

func fortifyFence(w *ecs.World, playerID, _ ecs.EntityID) string {
	system.GrowMaxHP(w, playerID, 25, true)
	return fmt.Sprintf("🛡️ Fortify Fence raises %s's max HP by 25.", system.NameOf(w, playerID))
}

func sapBurst(w *ecs.World, playerID, enemyID ecs.EntityID) string {
	dmg := system.Round(float64(system.AttackOf(w, playerID)) * 0.9)
	system.TakeDamage(w, enemyID, dmg)
	heal := system.HealPercent(w, playerID, 0.12)
	return fmt.Sprintf("🌿 Sap Burst deals %d damage and restores %d HP.", dmg, heal)
}

func concussiveSeed(w *ecs.World, playerID, enemyID ecs.EntityID) string {
	dmg := system.Round(float64(system.AttackOf(w, playerID)) * 0.5)
	system.TakeDamage(w, enemyID, dmg)
	system.Stun(w, enemyID)
	return fmt.Sprintf("🌱 Concussive Seed hits for %d and stuns %s!", dmg, system.NameOf(w, enemyID))
}

// Acquire shuffles the catalog and teaches the player the first skill not
// already known. It reports false when every skill is known.
func Acquire(w *ecs.World, rng *rand.Rand, playerID ecs.EntityID) (Def, bool) {
	pool := Catalog()
	dice.Shuffle(rng, pool)
	skills, _ := ecs.Get[component.Skills](w, playerID)
	for _, d := range pool {
		if skills.Has(d.Name) {
			continue
		}
		skills.Known = append(skills.Known, d.Name)
		w.Add(playerID, skills)
		return d, true
	}
	return Def{}, false
}

// AcquireMessage runs Acquire and phrases the outcome.
func AcquireMessage(w *ecs.World, rng *rand.Rand, playerID ecs.EntityID) string {
	if d, ok := Acquire(w, rng, playerID); ok {
		return fmt.Sprintf("✨ New skill acquired: %s!", d.Name)
	}
	return "No new skill found. All unlocked."
}
