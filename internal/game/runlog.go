package game

import (
	"fmt"

	"farm-defense/internal/battle"
	"farm-defense/internal/component"

	"github.com/mattn/go-runewidth"
)

// How a session ended.
const (
	OutcomeFallen  = "fallen"
	OutcomeRetired = "retired"
	OutcomeQuit    = "quit"
)

// RunLog records statistics gathered during one session. It lives in
// memory only and is shown as a summary when the session ends.
type RunLog struct {
	ID                 string
	Farm               string
	Seed               int64
	Outcome            string
	WavesReached       int
	TurnsPlayed        int
	EnemiesKilled      map[string]int // enemy kind → kill count
	DamageDealt        int
	DamageTaken        int
	CoinsEarned        int // battle bounties only
	EventsFired        int
	FragmentsActivated int
	Endless            bool
	Path               string // wave-25 decision, empty before it
	CauseOfDeath       string // the enemy that landed the last blow
}

func newRunLog(id string, seed int64) RunLog {
	return RunLog{ID: id, Seed: seed, EnemiesKilled: make(map[string]int)}
}

// record folds one battle into the log.
func (l *RunLog) record(res battle.Result, kind component.EnemyKind, enemy string) {
	l.TurnsPlayed += res.Turns
	l.DamageDealt += res.DamageDealt
	l.DamageTaken += res.DamageTaken
	l.CoinsEarned += res.Reward
	switch res.State {
	case battle.PlayerWon:
		l.EnemiesKilled[kind.String()]++
	case battle.EnemyWon:
		l.CauseOfDeath = enemy
	}
}

// Kills returns the total number of enemies defeated.
func (l RunLog) Kills() int {
	n := 0
	for _, c := range l.EnemiesKilled {
		n += c
	}
	return n
}

// summaryWidth pads the label column of Summary.
const summaryWidth = 18

// Summary formats the log as aligned "label value" lines.
func (l RunLog) Summary() []string {
	rows := [][2]string{
		{"🌾 Farm", l.Farm},
		{"🌊 Waves reached", fmt.Sprint(l.WavesReached)},
		{"⏱️ Turns played", fmt.Sprint(l.TurnsPlayed)},
		{"⚔️ Monsters slain", fmt.Sprint(l.EnemiesKilled[component.KindMonster.String()])},
		{"👑 Bosses slain", fmt.Sprint(l.EnemiesKilled[component.KindBoss.String()])},
		{"🗡️ Damage dealt", fmt.Sprint(l.DamageDealt)},
		{"🩸 Damage taken", fmt.Sprint(l.DamageTaken)},
		{"🪙 Bounty earned", fmt.Sprint(l.CoinsEarned)},
		{"✨ Events", fmt.Sprint(l.EventsFired)},
		{"🧩 Activations", fmt.Sprint(l.FragmentsActivated)},
	}
	if l.Path != "" {
		rows = append(rows, [2]string{"📜 Path", l.Path})
	}
	if l.Endless {
		rows = append(rows, [2]string{"🌌 Endless", "yes"})
	}
	if l.CauseOfDeath != "" {
		rows = append(rows, [2]string{"💀 Felled by", l.CauseOfDeath})
	}

	lines := []string{"", "=== Run Summary ==="}
	for _, r := range rows {
		lines = append(lines, runewidth.FillRight(r[0], summaryWidth)+r[1])
	}
	return lines
}
