package game

import (
	"fmt"
	"io"
	"strings"

	"farm-defense/internal/konami"
	"farm-defense/internal/ui"
)

// shopPlan is what the autopilot tries on every shop visit, in order.
var shopPlan = []string{"5", "4", "3", "1", "6"}

// Autopilot plays a session on its own. It reads only what the session
// displays, like a human would: the status line tells it when to heal.
type Autopilot struct {
	Name    string
	Endless bool      // accept endless mode when offered
	Budget  int       // prompts before it quits; zero means no limit
	Echo    io.Writer // optional transcript

	Lines   []string
	Prompts []string

	last  string
	hp    int
	maxHP int
	turn  int
	shop  int
}

var _ ui.IO = (*Autopilot)(nil)

func (a *Autopilot) Display(line string) {
	a.Lines = append(a.Lines, line)
	if a.Echo != nil {
		fmt.Fprintln(a.Echo, line)
	}
	if strings.Contains(line, " | Coins: ") {
		a.readStatus(line)
	}
	if line != "" {
		a.last = line
	}
}

// readStatus picks the player's HP out of "<name>: hp/max | ...".
func (a *Autopilot) readStatus(line string) {
	head, _, _ := strings.Cut(line, " | ")
	i := strings.LastIndex(head, ": ")
	if i < 0 {
		return
	}
	var hp, maxHP int
	if _, err := fmt.Sscanf(head[i+2:], "%d/%d", &hp, &maxHP); err == nil {
		a.hp, a.maxHP = hp, maxHP
	}
}

func (a *Autopilot) Prompt(text string) (string, error) {
	a.Prompts = append(a.Prompts, text)
	if a.Budget > 0 && len(a.Prompts) > a.Budget {
		return "", ui.ErrQuit
	}
	answer := a.answer(text)
	if a.Echo != nil {
		fmt.Fprintf(a.Echo, "%s%s\n", text, answer)
	}
	return answer, nil
}

func (a *Autopilot) answer(text string) string {
	switch {
	case strings.HasPrefix(text, "Choose an option"):
		return "1"
	case strings.HasPrefix(text, "Enter your Farm name"):
		return a.Name
	case strings.HasPrefix(text, "Enter Endless Mode"):
		if a.Endless {
			return "y"
		}
		return "n"
	case strings.HasPrefix(text, "Choose a skill"):
		return "1"
	case text != "> ":
		return ""
	}

	switch {
	case strings.HasPrefix(a.last, "Choose action"):
		a.turn++
		if a.maxHP > 0 && a.hp*5 < a.maxHP*2 {
			return "2"
		}
		if a.turn%4 == 0 {
			return "3"
		}
		return "1"
	case strings.HasPrefix(a.last, "[6]"):
		choice := shopPlan[a.shop]
		a.shop = (a.shop + 1) % len(shopPlan)
		return choice
	case strings.HasPrefix(a.last, "Enter the Konami sequence"):
		return strings.Join(konami.Sequence, " ")
	case strings.Contains(a.last, "DEFEND [1]"):
		return "1"
	}
	return ""
}
