package skill

import (
	"fmt"
	"strconv"
	"strings"

	"farm-defense/internal/component"
	"farm-defense/internal/ecs"
	"farm-defense/internal/system"
)

// Outcome classifies a skill attempt. Every outcome consumes the turn.
type Outcome uint8

const (
	Used Outcome = iota
	OnCooldown
	NotFound
	NoSkills
)

// UseResult is the outcome of a skill attempt plus the lines to show.
type UseResult struct {
	Outcome  Outcome
	Skill    string
	Messages []string
}

// Menu lists the player's skills, numbered from 1, with pending cooldowns.
func Menu(w *ecs.World, playerID ecs.EntityID) []string {
	skills, _ := ecs.Get[component.Skills](w, playerID)
	lines := make([]string, 0, len(skills.Known))
	for i, name := range skills.Known {
		d, _ := Lookup(name)
		line := fmt.Sprintf("%d. %s: %s", i+1, name, d.Description)
		if cd := skills.Cooldowns[name]; cd > 0 {
			line += fmt.Sprintf(" (CD: %d)", cd)
		}
		lines = append(lines, line)
	}
	return lines
}

// Known reports how many skills the player holds.
func Known(w *ecs.World, playerID ecs.EntityID) int {
	skills, _ := ecs.Get[component.Skills](w, playerID)
	return len(skills.Known)
}

// UseChoice resolves the raw menu answer (a 1-based index) and uses that
// skill on enemyID. Anything that is not a listed index is NotFound.
func UseChoice(w *ecs.World, playerID, enemyID ecs.EntityID, raw string) UseResult {
	if Known(w, playerID) == 0 {
		return UseResult{Outcome: NoSkills, Messages: []string{"You have no skills yet, so you just emoted lolz"}}
	}
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return notFound()
	}
	return UseIndex(w, playerID, enemyID, n-1)
}

// UseIndex uses the skill at 0-based index. A recharging skill starts its
// cooldown; a NoRecharge skill is spent.
func UseIndex(w *ecs.World, playerID, enemyID ecs.EntityID, index int) UseResult {
	skills, _ := ecs.Get[component.Skills](w, playerID)
	if len(skills.Known) == 0 {
		return UseResult{Outcome: NoSkills, Messages: []string{"You have no skills yet, so you just emoted lolz"}}
	}
	if index < 0 || index >= len(skills.Known) {
		return notFound()
	}
	name := skills.Known[index]
	d, ok := Lookup(name)
	if !ok {
		return notFound()
	}
	if left := system.CooldownLeft(w, playerID, name); left > 0 {
		return UseResult{Outcome: OnCooldown, Skill: name, Messages: []string{
			fmt.Sprintf("%s is on cd for %d more turns.", name, left),
			"Be patient, jeez.",
		}}
	}

	msg := d.Effect(w, playerID, enemyID)
	switch {
	case d.Recharges():
		system.StartCooldown(w, playerID, name, d.Cooldown)
	case d.Cooldown >= NoRecharge:
		forget(w, playerID, name)
	}
	return UseResult{Outcome: Used, Skill: name, Messages: []string{msg}}
}

func notFound() UseResult {
	return UseResult{Outcome: NotFound, Messages: []string{"Meh, that skill doesn't exist, so you emoted lolz"}}
}

func forget(w *ecs.World, playerID ecs.EntityID, name string) {
	ecs.Update(w, playerID, func(s *component.Skills) {
		kept := s.Known[:0]
		for _, k := range s.Known {
			if k != name {
				kept = append(kept, k)
			}
		}
		s.Known = kept
	})
}
