// Package event holds the random events that strike the farm between waves.
package event

import (
	"fmt"

	"farm-defense/assets"
	"farm-defense/internal/component"
	"farm-defense/internal/dice"
	"farm-defense/internal/ecs"
	"farm-defense/internal/skill"
	"farm-defense/internal/system"
)

// Kind groups events by where they come from.
type Kind uint8

const (
	Good Kind = iota
	Bad
	Banded // only in the wave band that lists it
)

// Def is one catalog entry.
type Def struct {
	Name  string
	Kind  Kind
	apply func(*Env) []string
}

// Band ties a pair of events to a range of waves.
type Band struct {
	First, Last int
	Events      []string
}

var defs = []Def{
	{"Mysterious Merchant", Good, mysteriousMerchant},
	{"Lightning Storm", Good, hazard(0.18, "A sudden lightning storm strikes your fields! You are hit.", "%[1]s takes %[2]d damage from the storm.")},
	{"Lost Cow Returns", Good, lostCow},
	{"Strange Seed Sprouts", Good, strangeSeed},
	{"A Trap", Good, hazard(0.2, "A hidden trap snaps at your heels!", "%[1]s takes %[2]d damage and stumbles.")},
	{"Wandering Bard", Good, wanderingBard},
	{"Locust Swarm", Good, hazard(0.12, "A locust swarm devours your crops.", "%[1]s loses %[2]d HP to exhaustion.")},
	{"Irrigation Boom", Good, irrigationBoom},
	{"Moonlit Harvest", Good, moonlitHarvest},
	{"Sudden Hail", Bad, badEvent(0.12, "Hail pummels your roof. You take %[2]d damage.")},
	{"Rusty Pitchfork", Bad, badEvent(0.1, "You nick yourself on a rusty pitchfork. -%[2]d HP.")},
	{"Thorny Brambles", Bad, badEvent(0.08, "Brambles scratch you up. -%[2]d HP.")},
	{"Butterfly Bloom", Banded, butterflyBloom},
	{"Soggy Furrows", Banded, hazard(0.1, "Soggy furrows slow you down.", "You slog through and lose %[2]d HP.")},
	{"Cinder Drift", Banded, hazard(0.14, "Cinder drift coats the crops in ash.", "Heat drains %[2]d HP.")},
	{"Charred Fence", Banded, charredFence},
	{"Gravel Gust", Banded, hazard(0.1, "A gravel gust whips across the ridge.", "You take %[2]d damage.")},
	{"Rusted Plow", Banded, rustedPlow},
}

// Bands lists the wave-banded pairs. Waves past the last band get none.
var Bands = []Band{
	{1, 10, []string{"Butterfly Bloom", "Soggy Furrows"}},
	{11, 20, []string{"Cinder Drift", "Charred Fence"}},
	{21, 30, []string{"Gravel Gust", "Rusted Plow"}},
}

var byName = func() map[string]Def {
	m := make(map[string]Def, len(defs))
	for _, d := range defs {
		m[d.Name] = d
	}
	return m
}()

// Lookup finds an event by name.
func Lookup(name string) (Def, bool) {
	d, ok := byName[name]
	return d, ok
}

// Pool returns the names that may fire on wave: every good and bad event
// plus the pair of the band wave falls in.
func Pool(wave int) []string {
	var pool []string
	for _, d := range defs {
		if d.Kind != Banded {
			pool = append(pool, d.Name)
		}
	}
	for _, b := range Bands {
		if wave >= b.First && wave <= b.Last {
			pool = append(pool, b.Events...)
			break
		}
	}
	return pool
}

// hazard builds an event that costs a scaled share of max HP. The result
// line gets the player's name and the damage.
func hazard(base float64, intro, result string) func(*Env) []string {
	return func(e *Env) []string {
		amount := system.DamagePercent(e.W, e.Player, e.Percent(base))
		return []string{intro, fmt.Sprintf(result, system.NameOf(e.W, e.Player), amount)}
	}
}

func badEvent(base float64, result string) func(*Env) []string {
	return func(e *Env) []string {
		amount := system.DamagePercent(e.W, e.Player, e.Percent(base))
		return []string{fmt.Sprintf(result, system.NameOf(e.W, e.Player), amount)}
	}
}

func mysteriousMerchant(e *Env) []string {
	ms, _ := ecs.Get[component.Milestones](e.W, e.Player)
	if !ms.MerchantSkillGiven {
		lines := []string{"A mysterious merchant offers you a new skill."}
		lines = append(lines, skill.AcquireMessage(e.W, e.RNG, e.Player))
		ms.MerchantSkillGiven = true
		e.W.Add(e.Player, ms)
		return lines
	}
	coins := dice.Between(e.RNG, 3, 6)
	system.Earn(e.W, e.Player, coins, 0)
	return []string{fmt.Sprintf("The merchant slips you %d coins in thanks.", coins)}
}

func lostCow(e *Env) []string {
	shieldPct := min(MaxPercent, e.Percent(0.12)*3)
	hp := system.HealthOf(e.W, e.Player)
	shield := max(1, system.Round(float64(hp.Max)*shieldPct))
	system.RaiseShield(e.W, e.Player, shield)
	coins := dice.Between(e.RNG, 1, 3)
	system.Earn(e.W, e.Player, coins, 0)
	return []string{
		"A lost cow returns with a kind moo and licks your wounds.",
		fmt.Sprintf("The cow's milk forms a gentle shield (%d damage absorbed, ~%.1f%% of max) and you find %d coins in the pasture.",
			shield, shieldPct*100, coins),
	}
}

func strangeSeed(e *Env) []string {
	const inc = 15
	system.GrowMaxHP(e.W, e.Player, inc, true)
	return []string{
		"A strange seed sprouts, making your farm heartier.",
		fmt.Sprintf("Strange Seed: +%d max HP (now %d) and your health grows along with it.", inc, system.HealthOf(e.W, e.Player).Max),
	}
}

func wanderingBard(e *Env) []string {
	coins := dice.Between(e.RNG, 3, 8)
	system.Earn(e.W, e.Player, coins, 0)
	return []string{fmt.Sprintf("A wandering bard sings of glory. You gain %d coins from compensation.", coins)}
}

func irrigationBoom(e *Env) []string {
	hp := system.HealthOf(e.W, e.Player)
	shield := max(1, system.Round(float64(hp.Max)*e.Percent(0.1)))
	system.ApplyEffect(e.W, e.Player, component.ActiveEffect{
		Kind:           component.EffectAttackSurge,
		Magnitude:      0.30,
		TurnsRemaining: 2,
	})
	system.RaiseShield(e.W, e.Player, shield)
	return []string{
		"Fresh irrigation surges through your fields in a rushing tide.",
		"Overflow Surge: next 2 attacks deal +30% damage.",
		fmt.Sprintf("A water shield forms for %d damage.", shield),
	}
}

func moonlitHarvest(e *Env) []string {
	coins := dice.Between(e.RNG, 2, 5)
	system.Earn(e.W, e.Player, coins, 0)
	var lines []string
	if dice.Chance(e.RNG, min(0.6, 0.35*e.Scale)) {
		system.Earn(e.W, e.Player, 0, 1)
		lines = append(lines, "The moonlight reveals a hidden gold nugget!")
	}
	return append(lines, fmt.Sprintf("You harvest %d coins under the moon.", coins))
}

func butterflyBloom(e *Env) []string {
	const bonus = 3
	coins := dice.Between(e.RNG, 2, 5)
	system.Earn(e.W, e.Player, coins, 0)
	system.GrantWaveAttack(e.W, e.Player, bonus)
	return []string{
		"Butterflies swirl around your farm, stirring a fierce resolve.",
		fmt.Sprintf("You find %d coins and gain +%d attack for this wave.", coins, bonus),
	}
}

func charredFence(e *Env) []string {
	coins := dice.Between(e.RNG, 2, 4)
	system.LoseCoins(e.W, e.Player, coins)
	return []string{
		"A charred fence collapses and repair costs mount.",
		fmt.Sprintf("You spend %d coins on repairs.", coins),
	}
}

func rustedPlow(e *Env) []string {
	coins := dice.Between(e.RNG, 3, 6)
	system.Earn(e.W, e.Player, coins, 0)
	return []string{"You salvage a rusted plow for scrap.", fmt.Sprintf("You gain %d coins.", coins)}
}

func header(name string, kind Kind) string {
	if kind == Bad {
		return fmt.Sprintf("%s %s!", assets.GlyphWarning, name)
	}
	return ""
}
