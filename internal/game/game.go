// Package game is the wave/session controller: it owns the player, spawns
// one enemy per wave and strings together areas, story beats, events, the
// shop and battles until the farm falls or retires.
package game

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math/rand"
	"strings"

	"farm-defense/assets"
	"farm-defense/internal/component"
	"farm-defense/internal/config"
	"farm-defense/internal/dice"
	"farm-defense/internal/ecs"
	"farm-defense/internal/event"
	"farm-defense/internal/factory"
	"farm-defense/internal/konami"
	"farm-defense/internal/system"
	"farm-defense/internal/ui"

	"github.com/google/uuid"
)

// Options configure a session.
type Options struct {
	Seed    int64 // zero picks a seed from the clock
	Balance config.Balance
	Logger  *slog.Logger
}

// Game is the top-level orchestrator of one session.
type Game struct {
	con      ui.IO
	bal      config.Balance
	rng      *rand.Rand
	log      *slog.Logger
	world    *ecs.World
	playerID ecs.EntityID
	wave     int
	endless  bool
	area     string
	events   *event.Rotation
	codes    *konami.Tracker // streamed in battle, one use per session
	vault    *konami.Tracker // shop activations, unlimited
	stop     bool
	runLog   RunLog
}

// New creates a session that talks to the player through con.
func New(con ui.IO, opts Options) *Game {
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	id := uuid.NewString()
	rng := dice.New(opts.Seed)
	return &Game{
		con:    con,
		bal:    opts.Balance,
		rng:    rng,
		log:    logger.With("run", id),
		world:  ecs.NewWorld(),
		wave:   1,
		events: event.NewRotation(),
		codes:  konami.New(rng, 1),
		vault:  konami.New(rng, 0),
		runLog: newRunLog(id, opts.Seed),
	}
}

// RunLog returns the statistics of the session so far.
func (g *Game) RunLog() RunLog { return g.runLog }

// Run plays the session to completion. A player quit ends it with a
// goodbye line and is not an error.
func (g *Game) Run() error {
	err := g.run()
	if errors.Is(err, ui.ErrQuit) {
		g.runLog.Outcome = OutcomeQuit
		g.runLog.WavesReached = g.wave
		g.con.Display("")
		g.con.Display(assets.GlyphWave + " Thanks for playing! Try again if you want.")
		g.log.Info("session end", "reason", "quit", "wave", g.wave)
		return nil
	}
	return err
}

func (g *Game) run() error {
	ui.Lines(g.con, assets.Intro...)
	if err := g.mainMenu(); err != nil {
		return err
	}
	g.con.Display("You might want to extend your terminal a bit if you're playing with one.")
	name, err := g.con.Prompt("Enter your Farm name: ")
	if err != nil {
		return fmt.Errorf("farm name: %w", err)
	}
	if name = cleanName(name); name == "" {
		name = "Farm"
	}
	g.playerID = factory.NewPlayer(g.world, name, g.bal)
	g.runLog.Farm = name
	g.log.Info("session start", "farm", name, "seed", g.runLog.Seed)

	for system.IsAlive(g.world, g.playerID) && !g.stop {
		if err := g.playWave(); err != nil {
			return fmt.Errorf("wave %d: %w", g.wave, err)
		}
		if g.stop || !system.IsAlive(g.world, g.playerID) {
			break
		}
		system.WaveClearUpgrade(g.world, g.playerID, g.bal.WaveClearAttack, g.bal.WaveClearHP)
		g.wave++
	}
	g.farewell()
	return nil
}

// mainMenu blocks until the player starts a game.
func (g *Game) mainMenu() error {
	for {
		ui.Lines(g.con, "", "=== Main Menu ===", "1) Start", "2) Field notes", "3) Update notes")
		choice, err := g.con.Prompt("Choose an option: ")
		if err != nil {
			return fmt.Errorf("main menu: %w", err)
		}
		var page []string
		switch strings.ToLower(choice) {
		case "1", "start", "s":
			return nil
		case "2", "notes", "field notes", "n":
			page = assets.FieldNotes
		case "3", "update", "updates", "u":
			page = assets.UpdateNotes
		default:
			g.con.Display("Just pick anything bro, don't mess this one up.")
			continue
		}
		g.con.Display("")
		ui.Lines(g.con, page...)
		if _, err := g.con.Prompt("Press Enter to go back."); err != nil {
			return fmt.Errorf("main menu: %w", err)
		}
	}
}

func (g *Game) playerName() string {
	return system.NameOf(g.world, g.playerID)
}

// farewell shows the closing lines and the run summary.
func (g *Game) farewell() {
	name := g.playerName()
	g.runLog.WavesReached = g.wave
	g.runLog.Endless = g.endless
	g.runLog.FragmentsActivated = system.FragmentsOf(g.world, g.playerID).Activations
	ms, _ := ecs.Get[component.Milestones](g.world, g.playerID)
	g.runLog.Path = pathName(ms.Path)

	g.con.Display("")
	if g.stop && system.IsAlive(g.world, g.playerID) {
		g.runLog.Outcome = OutcomeRetired
		g.con.Display(fmt.Sprintf("%s %s retires after wave %d. Thanks for playing!", assets.GlyphHarvest, name, g.wave))
	} else {
		g.runLog.Outcome = OutcomeFallen
		g.con.Display(fmt.Sprintf("%s %s has fallen at wave %d.", assets.GlyphFallen, name, g.wave))
		g.con.Display(assets.GlyphHarvest + " Thanks for playing!")
	}
	ui.Lines(g.con, g.runLog.Summary()...)
	g.log.Info("session end", "reason", g.runLog.Outcome, "wave", g.wave)
}

func pathName(p component.StoryPath) string {
	switch p {
	case component.PathDefend:
		return "defend"
	case component.PathStrike:
		return "strike back"
	}
	return ""
}
