// Package battle runs one encounter between the player and a single enemy,
// turn by turn, until one side falls.
package battle

import (
	"fmt"
	"io"
	"log/slog"
	"math/rand"
	"strings"

	"farm-defense/assets"
	"farm-defense/internal/component"
	"farm-defense/internal/config"
	"farm-defense/internal/ecs"
	"farm-defense/internal/konami"
	"farm-defense/internal/skill"
	"farm-defense/internal/system"
	"farm-defense/internal/ui"
)

// State is the battle state machine. PlayerWon and EnemyWon are terminal.
type State uint8

const (
	Ongoing State = iota
	PlayerWon
	EnemyWon
)

func (s State) String() string {
	switch s {
	case PlayerWon:
		return "player won"
	case EnemyWon:
		return "enemy won"
	}
	return "ongoing"
}

// Options are the per-battle settings a session passes in.
type Options struct {
	Endless bool
	Depth   int             // waves past the story's end
	Codes   *konami.Tracker // streaming secret code; nil disables it
	Logger  *slog.Logger
}

// Result summarises a finished battle.
type Result struct {
	State       State
	Turns       int
	DamageDealt int
	DamageTaken int
	Reward      int
	Fragment    bool // a boss dropped a fragment
	Passive     skill.GrantResult
	CodeMatched bool // the streamed code earned a fragment
}

// Battle is one encounter. Create it with New and drive it with Run or Turn.
type Battle struct {
	w      *ecs.World
	rng    *rand.Rand
	bal    config.Balance
	player ecs.EntityID
	enemy  ecs.EntityID
	opts   Options
	log    *slog.Logger
	res    Result
}

// New prepares a battle between player and enemy.
func New(w *ecs.World, rng *rand.Rand, bal config.Balance, player, enemy ecs.EntityID, opts Options) *Battle {
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Battle{w: w, rng: rng, bal: bal, player: player, enemy: enemy, opts: opts, log: logger}
}

// State returns the current state.
func (b *Battle) State() State { return b.res.State }

// Result returns the running tally; it is final once State is terminal.
func (b *Battle) Result() Result { return b.res }

// Run plays turns until the battle is decided. The only error is a wrapped
// ui.ErrQuit.
func (b *Battle) Run(con ui.IO) (Result, error) {
	for b.res.State == Ongoing {
		if err := b.Turn(con); err != nil {
			return b.res, err
		}
	}
	b.log.Info("battle over",
		"enemy", system.NameOf(b.w, b.enemy),
		"outcome", b.res.State.String(),
		"turns", b.res.Turns,
		"dealt", b.res.DamageDealt,
		"taken", b.res.DamageTaken,
	)
	return b.res, nil
}

// Turn plays exactly one turn.
func (b *Battle) Turn(con ui.IO) error {
	if b.res.State != Ongoing {
		return nil
	}
	b.res.Turns++
	ui.Lines(con, b.escalate()...)
	ui.Lines(con, "", b.statusLine())

	system.TickCooldowns(b.w, b.player)
	if err := b.playerAction(con); err != nil {
		return fmt.Errorf("battle turn %d: %w", b.res.Turns, err)
	}

	if b.opts.Endless && system.IsAlive(b.w, b.enemy) {
		ui.Lines(con, b.drain()...)
	}
	if system.IsAlive(b.w, b.enemy) {
		ui.Lines(con, b.enemyAction()...)
	} else {
		ui.Lines(con, b.victory()...)
	}

	switch {
	case !system.IsAlive(b.w, b.player):
		b.res.State = EnemyWon
	case !system.IsAlive(b.w, b.enemy):
		b.res.State = PlayerWon
	}
	return nil
}

func (b *Battle) isBoss() bool {
	e, _ := ecs.Get[component.Enemy](b.w, b.enemy)
	return e.Kind == component.KindBoss
}

// escalate sharpens the enemy once when the battle drags past its
// threshold. Later turns leave the attack alone.
func (b *Battle) escalate() []string {
	threshold, warning := b.bal.MonsterEscalationTurn, "The enemy is getting Stronger by the turn!"
	if b.isBoss() {
		threshold, warning = b.bal.BossEscalationTurn, "The boss's getting impatient, it gets Stronger!"
	}
	st, _ := ecs.Get[component.Status](b.w, b.enemy)
	if b.res.Turns < threshold || st.Escalated {
		return nil
	}
	st.Escalated = true
	b.w.Add(b.enemy, st)
	ecs.Update(b.w, b.enemy, func(c *component.Combat) {
		c.Attack = int(float64(c.Attack) * b.bal.EscalationFactor)
	})
	b.log.Debug("enemy escalated", "turn", b.res.Turns, "attack", system.AttackOf(b.w, b.enemy))
	return []string{fmt.Sprintf("%s %s", assets.GlyphWarning, warning)}
}

func (b *Battle) statusLine() string {
	php, ehp := system.HealthOf(b.w, b.player), system.HealthOf(b.w, b.enemy)
	return fmt.Sprintf("%s: %d/%d | %s: %d/%d | Coins: %d",
		system.NameOf(b.w, b.player), php.Current, php.Max,
		system.NameOf(b.w, b.enemy), ehp.Current, ehp.Max,
		system.WalletOf(b.w, b.player).Coins)
}

func (b *Battle) playerAction(con ui.IO) error {
	con.Display("Choose action: [1] Attack  [2] Heal  [3] Skill")
	choice, err := con.Prompt("> ")
	if err != nil {
		return err
	}
	pname, ename := system.NameOf(b.w, b.player), system.NameOf(b.w, b.enemy)

	switch strings.TrimSpace(choice) {
	case "1":
		res := system.Attack(b.w, b.rng, b.player, b.enemy)
		b.res.DamageDealt += res.Damage
		con.Display(fmt.Sprintf("%s attacks %s for %d damage!", pname, ename, res.Damage))
	case "2":
		amount := system.HealFlat(b.w, b.player, b.bal.HealAmount)
		con.Display(fmt.Sprintf("%s uses a heal and recovers %d HP.", pname, amount))
	case "3":
		return b.useSkill(con)
	default:
		con.Display("Enemy gets a free turn due to your no focus, lol.")
		ui.Lines(con, b.streamCode(choice)...)
	}
	return nil
}

func (b *Battle) useSkill(con ui.IO) error {
	var res skill.UseResult
	before := system.HealthOf(b.w, b.enemy).Current
	if skill.Known(b.w, b.player) == 0 {
		res = skill.UseChoice(b.w, b.player, b.enemy, "")
	} else {
		con.Display("Available Skills:")
		ui.Lines(con, skill.Menu(b.w, b.player)...)
		raw, err := con.Prompt("Choose a skill: ")
		if err != nil {
			return err
		}
		res = skill.UseChoice(b.w, b.player, b.enemy, raw)
	}
	b.res.DamageDealt += before - system.HealthOf(b.w, b.enemy).Current
	if res.Outcome == skill.Used {
		b.log.Debug("skill used", "skill", res.Skill, "turn", b.res.Turns)
	}
	ui.Lines(con, res.Messages...)
	return nil
}

// streamCode feeds the code tokens of an unrecognised action into the
// streaming tracker. Other words are ignored.
func (b *Battle) streamCode(raw string) []string {
	if b.opts.Codes == nil {
		return nil
	}
	var lines []string
	for _, tok := range strings.Fields(raw) {
		if !konami.IsToken(tok) {
			continue
		}
		r := b.opts.Codes.Push(tok)
		switch r.Kind {
		case konami.Hint:
			lines = append(lines, r.Text)
		case konami.Matched:
			if system.EarnFragment(b.w, b.player, b.bal.FragmentCap, b.bal.FragmentRounds) {
				b.res.CodeMatched = true
				lines = append(lines, fmt.Sprintf("%s The old code echoes through the field. Konami Fragment Obtained!", assets.GlyphEvent))
				b.log.Info("code matched", "turn", b.res.Turns)
			} else {
				lines = append(lines, "The code echoes, but your fragment pouch is full.")
			}
		case konami.Locked:
			lines = append(lines, "The code echoes faintly. Its power is spent.")
		}
	}
	return lines
}

func (b *Battle) drain() []string {
	d := system.EndlessDrain(b.w, b.rng, b.enemy, b.player, b.res.Turns, b.opts.Depth, b.bal.GimmickSpacing)
	if !d.Triggered {
		return nil
	}
	b.res.DamageTaken += d.Damage
	return []string{fmt.Sprintf("%s %s triggers %s, draining %d HP (%.1f%% of max)!",
		assets.GlyphDrain, system.NameOf(b.w, b.enemy), d.Label, d.Damage, d.Percent*100)}
}

func (b *Battle) enemyAction() []string {
	pname, ename := system.NameOf(b.w, b.player), system.NameOf(b.w, b.enemy)
	s := system.EnemyStrike(b.w, b.rng, b.enemy, b.player)
	if s.Stunned {
		return []string{fmt.Sprintf("%s got stunned and can't act this turn!", ename)}
	}
	var lines []string
	if s.Tonic {
		lines = append(lines, fmt.Sprintf("Your tonic reduce your Damage taken from %d to %d this turn.", s.PreTonic, s.Damage))
	}
	b.res.DamageTaken += s.Damage - s.Absorbed
	return append(lines, fmt.Sprintf("%s attacks %s for %d damage!", ename, pname, s.Damage))
}

// victory pays out for a fallen enemy. Bosses also drop a fragment and
// offer their passive.
func (b *Battle) victory() []string {
	reward := b.bal.MonsterReward
	if b.isBoss() {
		reward = b.bal.BossReward
	}
	system.Earn(b.w, b.player, reward, 0)
	b.res.Reward = reward
	lines := []string{fmt.Sprintf("%s You defeated %s! Coins +%d (Total: %d)",
		assets.GlyphVictory, system.NameOf(b.w, b.enemy), reward, system.WalletOf(b.w, b.player).Coins)}
	if !b.isBoss() {
		return lines
	}

	if system.EarnFragment(b.w, b.player, b.bal.FragmentCap, b.bal.FragmentRounds) {
		b.res.Fragment = true
		lines = append(lines, "Konami Fragment Obtained from the Boss!")
	}
	e, _ := ecs.Get[component.Enemy](b.w, b.enemy)
	g := skill.GrantPassive(b.w, b.rng, b.player, e.Reward)
	b.res.Passive = g
	if !g.Granted {
		return lines
	}
	lines = append(lines, "", fmt.Sprintf("%s Boss Reward: %s - %s Obtained!", assets.GlyphTrophy, e.Reward.Name, e.Reward.Description))
	if g.Bonus {
		lines = append(lines, "A surge amplifies the reward! An extra stack is granted.")
	}
	if g.Backlash > 0 {
		b.res.DamageTaken += g.Backlash
		lines = append(lines, fmt.Sprintf("The passive leaves a bitter aftertaste. You lose %d HP.", g.Backlash))
	}
	return append(lines, fmt.Sprintf("Passive applied. Current stacks: %d.", g.Stacks))
}
