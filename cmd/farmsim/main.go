// farmsim plays seeded sessions with the autopilot and prints one summary
// line per run, then the totals. Build:
//
//	go build -o farmsim ./cmd/farmsim
//
// Usage:
//
//	./farmsim [-runs 20] [-seed 1] [-endless] [-budget 2000] [-config farm.yaml] [-v]
package main

import (
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"

	"farm-defense/internal/config"
	"farm-defense/internal/game"
)

func main() {
	runs := flag.Int("runs", 20, "Number of sessions to play")
	first := flag.Int64("seed", 1, "Seed of the first session; later ones count up")
	endless := flag.Bool("endless", false, "Accept endless mode when offered")
	budget := flag.Int("budget", 2000, "Prompts per session before the autopilot quits")
	configPath := flag.String("config", "", "Path to a YAML config file")
	verbose := flag.Bool("v", false, "Print every session transcript")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("%v", err)
	}
	cfg.ApplyEnv()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("invalid config: %v", err)
	}
	level, _ := cfg.Level()
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	var t tally
	for i := 0; i < *runs; i++ {
		seed := *first + int64(i)
		pilot := &game.Autopilot{Name: fmt.Sprintf("Sim %d", seed), Endless: *endless, Budget: *budget}
		if *verbose {
			pilot.Echo = os.Stdout
		}
		g := game.New(pilot, game.Options{Seed: seed, Balance: cfg.Balance, Logger: logger})
		if err := g.Run(); err != nil {
			log.Fatalf("seed %d: %v", seed, err)
		}
		rl := g.RunLog()
		t.add(rl)
		fmt.Println(runLine(rl))
	}
	fmt.Println()
	fmt.Println(t.String())
}

// runLine is the one-line report of a finished session.
func runLine(rl game.RunLog) string {
	return fmt.Sprintf("seed %-6d %-8s wave %-3d kills %-3d turns %-5d run %s",
		rl.Seed, rl.Outcome, rl.WavesReached, rl.Kills(), rl.TurnsPlayed, rl.ID)
}

// tally aggregates many sessions.
type tally struct {
	runs     int
	outcomes map[string]int
	waves    int
	best     int
}

func (t *tally) add(rl game.RunLog) {
	if t.outcomes == nil {
		t.outcomes = make(map[string]int)
	}
	t.runs++
	t.outcomes[rl.Outcome]++
	t.waves += rl.WavesReached
	t.best = max(t.best, rl.WavesReached)
}

func (t tally) String() string {
	if t.runs == 0 {
		return "no runs"
	}
	return fmt.Sprintf("%d runs: %d fallen, %d retired, %d quit | average wave %.1f, best %d",
		t.runs, t.outcomes[game.OutcomeFallen], t.outcomes[game.OutcomeRetired], t.outcomes[game.OutcomeQuit],
		float64(t.waves)/float64(t.runs), t.best)
}
