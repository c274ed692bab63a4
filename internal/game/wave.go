package game

import (
	"fmt"
	"strings"

	"farm-defense/assets"
	"farm-defense/internal/battle"
	"farm-defense/internal/component"
	"farm-defense/internal/ecs"
	"farm-defense/internal/event"
	"farm-defense/internal/factory"
	"farm-defense/internal/shop"
	"farm-defense/internal/skill"
	"farm-defense/internal/system"
	"farm-defense/internal/ui"
)

// depth is how many waves the session is past the story's end.
func (g *Game) depth() int {
	return max(0, g.wave-g.bal.StoryEndWave)
}

// playWave runs one full wave. It sets g.stop when the player declines
// endless mode.
func (g *Game) playWave() error {
	if !g.endless && g.wave > g.bal.StoryEndWave {
		accepted, err := g.promptEndless()
		if err != nil {
			return err
		}
		if !accepted {
			g.stop = true
			return nil
		}
		g.endless = true
		ui.Lines(g.con, "", assets.GlyphEndless+" Endless mode begins! Hope that you don't get bored.")
		g.log.Info("endless mode", "wave", g.wave)
	}
	if err := g.enterArea(); err != nil {
		return err
	}

	kind := factory.KindForWave(g.wave)
	enemy := factory.NewEnemy(g.world, kind, g.wave)
	if g.endless {
		factory.ApplyEndlessBonus(g.world, enemy, g.depth())
	}
	ui.Lines(g.con, "", fmt.Sprintf("=== Wave %d ===", g.wave))
	g.log.Info("wave start", "wave", g.wave, "enemy", system.NameOf(g.world, enemy), "area", g.area)

	if err := g.storyBeat(); err != nil {
		return err
	}
	if event.Due(g.wave, g.bal.EventEvery) {
		g.fireEvent()
	}
	if kind == component.KindBoss {
		ui.Lines(g.con, assets.BossArt[g.wave]...)
	}
	if g.wave%g.bal.ShopEvery == 0 {
		s := shop.New(g.world, g.rng, g.playerID, g.endless, g.vault, g.log)
		if err := s.Run(g.con); err != nil {
			return err
		}
	}
	if system.DecayFragments(g.world, g.playerID) {
		g.con.Display("Your fragment disappeared.")
	}

	b := battle.New(g.world, g.rng, g.bal, g.playerID, enemy, battle.Options{
		Endless: g.endless,
		Depth:   g.depth(),
		Codes:   g.codes,
		Logger:  g.log,
	})
	res, err := b.Run(g.con)
	g.runLog.record(res, kind, system.NameOf(g.world, enemy))
	system.StripWaveBonus(g.world, g.playerID)
	g.world.DestroyEntity(enemy)
	return err
}

// promptEndless offers endless mode once the story is over.
func (g *Game) promptEndless() (bool, error) {
	ui.Lines(g.con, "", assets.GlyphAnnounce+" Story complete. Endless Mode is available!")
	ui.Lines(g.con, assets.EndlessBriefing...)
	answer, err := g.con.Prompt("Enter Endless Mode? (y/n): ")
	if err != nil {
		return false, fmt.Errorf("endless prompt: %w", err)
	}
	switch strings.ToLower(answer) {
	case "y", "yes":
		return true, nil
	}
	return false, nil
}

// enterArea announces a new area the first time a wave falls inside it.
func (g *Game) enterArea() error {
	a, ok := assets.AreaFor(g.wave)
	if !ok || a.Name == g.area {
		return nil
	}
	g.area = a.Name
	ui.Lines(g.con, "", fmt.Sprintf("%s Area: %s", assets.GlyphArea, a.Name), a.Detail)
	if _, err := g.con.Prompt("Press Enter to continue..."); err != nil {
		return fmt.Errorf("area %s: %w", a.Name, err)
	}
	return nil
}

// storyBeat narrates milestone waves. Wave 15 teaches a skill and wave 25
// asks the player to pick a path.
func (g *Game) storyBeat() error {
	text, ok := assets.StoryBeats[g.wave]
	if !ok {
		return nil
	}
	ui.Lines(g.con, "", fmt.Sprintf("%s STORY ARC [%d]", assets.GlyphStory, g.wave), text)

	switch g.wave {
	case 15:
		g.con.Display(skill.AcquireMessage(g.world, g.rng, g.playerID))
	case 25:
		decision, err := g.con.Prompt("> ")
		if err != nil {
			return fmt.Errorf("story choice: %w", err)
		}
		path := component.PathStrike
		if decision == "1" {
			path = component.PathDefend
			g.con.Display("You fortify your land. Defense increased!")
			system.GrowMaxHP(g.world, g.playerID, 50, false)
		} else {
			g.con.Display("You prepare to counterattack! Attack increased!")
			system.RaiseAttack(g.world, g.playerID, 20)
		}
		ecs.Update(g.world, g.playerID, func(m *component.Milestones) { m.Path = path })
		g.log.Info("story path", "path", pathName(path))
	}
	return nil
}

func (g *Game) fireEvent() {
	env := &event.Env{
		W:      g.world,
		RNG:    g.rng,
		Player: g.playerID,
		Wave:   g.wave,
		Scale:  event.Scale(g.wave, g.bal.StoryEndWave, g.endless),
	}
	rep := event.Fire(env, g.events, g.bal.ExtraEventChance)
	ui.Lines(g.con, rep.Lines...)
	g.runLog.EventsFired += len(rep.Fired)
	g.log.Info("events fired", "wave", g.wave, "events", rep.Fired)
}
