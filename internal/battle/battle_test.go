package battle

import (
	"errors"
	"math/rand"
	"slices"
	"strings"
	"testing"

	"farm-defense/internal/component"
	"farm-defense/internal/config"
	"farm-defense/internal/ecs"
	"farm-defense/internal/factory"
	"farm-defense/internal/konami"
	"farm-defense/internal/system"
	"farm-defense/internal/ui"
)

func setup(seed int64, kind component.EnemyKind, wave int, opts Options) (*Battle, *ecs.World, ecs.EntityID, ecs.EntityID) {
	w := ecs.NewWorld()
	bal := config.Default()
	player := factory.NewPlayer(w, "Farm", bal)
	enemy := factory.NewEnemy(w, kind, wave)
	return New(w, rand.New(rand.NewSource(seed)), bal, player, enemy, opts), w, player, enemy
}

func repeat(answer string, n int) []string {
	out := make([]string, n)
	for i := range out {
		out[i] = answer
	}
	return out
}

func sturdy(w *ecs.World, ids ...ecs.EntityID) {
	for _, id := range ids {
		w.Add(id, component.Health{Current: 1_000_000, Max: 1_000_000})
	}
}

func TestAlwaysAttackBeatsFirstMonster(t *testing.T) {
	for seed := int64(0); seed < 30; seed++ {
		b, w, player, _ := setup(seed, component.KindMonster, 1, Options{})
		res, err := b.Run(ui.NewScript(repeat("1", 30)...))
		if err != nil {
			t.Fatalf("seed %d: unexpected error %v", seed, err)
		}
		if res.State != PlayerWon {
			t.Fatalf("seed %d: state %v; want player won", seed, res.State)
		}
		// 112 HP against at least 20 damage a hit.
		if res.Turns > 6 {
			t.Fatalf("seed %d: battle took %d turns", seed, res.Turns)
		}
		if res.Reward != 6 || system.WalletOf(w, player).Coins != 8 {
			t.Fatalf("seed %d: reward %d, coins %d; want 6 and 8", seed, res.Reward, system.WalletOf(w, player).Coins)
		}
		if !system.IsAlive(w, player) {
			t.Fatalf("seed %d: player died to a wave-1 monster", seed)
		}
	}
}

func TestSameSeedSameBattle(t *testing.T) {
	play := func() []string {
		b, _, _, _ := setup(77, component.KindMonster, 4, Options{})
		con := ui.NewScript(repeat("1", 40)...)
		if _, err := b.Run(con); err != nil {
			t.Fatalf("unexpected error %v", err)
		}
		return con.Lines
	}
	first, second := play(), play()
	if !slices.Equal(first, second) {
		t.Fatal("two runs with the same seed and answers diverged")
	}
}

func TestEscalationAppliesOnce(t *testing.T) {
	b, w, player, enemy := setup(5, component.KindMonster, 1, Options{})
	sturdy(w, player, enemy)
	con := ui.NewScript(repeat("2", 25)...)

	for turn := 1; turn <= 25; turn++ {
		if err := b.Turn(con); err != nil {
			t.Fatalf("turn %d: %v", turn, err)
		}
		want := 15
		if turn >= 10 {
			want = 22 // int(15 * 1.5)
		}
		if got := system.AttackOf(w, enemy); got != want {
			t.Fatalf("turn %d: enemy attack %d; want %d", turn, got, want)
		}
	}
	if n := con.Count("The enemy is getting Stronger by the turn!"); n != 1 {
		t.Fatalf("escalation warning shown %d times; want 1", n)
	}
}

func TestBossEscalatesLater(t *testing.T) {
	b, w, player, enemy := setup(5, component.KindBoss, 5, Options{})
	sturdy(w, player, enemy)
	con := ui.NewScript(repeat("2", 15)...)
	base := system.AttackOf(w, enemy)

	for turn := 1; turn <= 14; turn++ {
		if err := b.Turn(con); err != nil {
			t.Fatalf("turn %d: %v", turn, err)
		}
	}
	if got := system.AttackOf(w, enemy); got != base {
		t.Fatalf("boss attack changed before turn 15: %d -> %d", base, got)
	}
	if err := b.Turn(con); err != nil {
		t.Fatal(err)
	}
	if got, want := system.AttackOf(w, enemy), int(float64(base)*1.5); got != want {
		t.Fatalf("boss attack after turn 15 = %d; want %d", got, want)
	}
	if !con.Contains("The boss's getting impatient") {
		t.Fatal("missing boss escalation warning")
	}
}

func TestSkillCooldownBlocksUntilTicked(t *testing.T) {
	b, w, player, enemy := setup(3, component.KindMonster, 1, Options{})
	w.Add(player, component.Skills{Known: []string{"Sap Burst"}, Cooldowns: map[string]int{}})
	sturdy(w, enemy)

	con := ui.NewScript("3", "1", "3", "1", "3", "1", "3", "1")
	for turn := 1; turn <= 4; turn++ {
		if err := b.Turn(con); err != nil {
			t.Fatalf("turn %d: %v", turn, err)
		}
	}
	if n := con.Count("Sap Burst deals"); n != 2 {
		t.Fatalf("Sap Burst landed %d times; want 2 (turns 1 and 4)", n)
	}
	if !con.Contains("Sap Burst is on cd for 2 more turns.") || !con.Contains("Sap Burst is on cd for 1 more turns.") {
		t.Fatalf("missing cooldown refusals in %q", con.Lines)
	}
	if got := system.CooldownLeft(w, player, "Sap Burst"); got != 3 {
		t.Fatalf("cooldown after second use = %d; want 3", got)
	}
}

func TestBadSkillIndexConsumesTurn(t *testing.T) {
	b, w, player, enemy := setup(3, component.KindMonster, 1, Options{})
	w.Add(player, component.Skills{Known: []string{"Rain Dance"}, Cooldowns: map[string]int{}})
	con := ui.NewScript("3", "seven")
	if err := b.Turn(con); err != nil {
		t.Fatal(err)
	}
	if !con.Contains("that skill doesn't exist") {
		t.Fatalf("lines = %q", con.Lines)
	}
	if hp := system.HealthOf(w, enemy); hp.Current != hp.Max {
		t.Fatal("a failed skill must not hurt the enemy")
	}
}

func TestNoSkillsEmotes(t *testing.T) {
	b, _, _, _ := setup(3, component.KindMonster, 1, Options{})
	con := ui.NewScript("3")
	if err := b.Turn(con); err != nil {
		t.Fatal(err)
	}
	if !con.Contains("You have no skills yet") {
		t.Fatalf("lines = %q", con.Lines)
	}
	if slices.Contains(con.Prompts, "Choose a skill: ") {
		t.Fatal("no skill menu should be offered without skills")
	}
}

func TestStunSkipsEnemyTurn(t *testing.T) {
	b, w, player, enemy := setup(3, component.KindMonster, 1, Options{})
	w.Add(player, component.Skills{Known: []string{"Concussive Seed"}, Cooldowns: map[string]int{}})
	sturdy(w, enemy)
	con := ui.NewScript("3", "1")
	if err := b.Turn(con); err != nil {
		t.Fatal(err)
	}
	if !con.Contains("Enemy Monster got stunned and can't act this turn!") {
		t.Fatalf("lines = %q", con.Lines)
	}
	if hp := system.HealthOf(w, player); hp.Current != hp.Max {
		t.Fatalf("stunned enemy dealt damage: %d/%d", hp.Current, hp.Max)
	}
}

func TestInvalidActionGivesFreeTurn(t *testing.T) {
	b, w, player, enemy := setup(3, component.KindMonster, 1, Options{})
	con := ui.NewScript("dance")
	if err := b.Turn(con); err != nil {
		t.Fatal(err)
	}
	if !con.Contains("Enemy gets a free turn") {
		t.Fatalf("lines = %q", con.Lines)
	}
	if hp := system.HealthOf(w, enemy); hp.Current != hp.Max {
		t.Fatal("enemy lost HP on a wasted turn")
	}
	if hp := system.HealthOf(w, player); hp.Current >= hp.Max {
		t.Fatal("enemy did not take its free hit")
	}
}

func TestTonicSoftensHit(t *testing.T) {
	b, w, player, _ := setup(3, component.KindMonster, 1, Options{})
	system.ApplyEffect(w, player, component.ActiveEffect{Kind: component.EffectDamageReduction, Magnitude: 0.3, TurnsRemaining: 3})
	con := ui.NewScript("2")
	if err := b.Turn(con); err != nil {
		t.Fatal(err)
	}
	if !con.Contains("Your tonic reduce your Damage taken from") {
		t.Fatalf("lines = %q", con.Lines)
	}
	if e, _ := system.EffectOf(w, player, component.EffectDamageReduction); e.TurnsRemaining != 2 {
		t.Fatalf("tonic turns left = %d; want 2", e.TurnsRemaining)
	}
}

func TestStreamedCodeEarnsFragmentOnce(t *testing.T) {
	rng := rand.New(rand.NewSource(9))
	b, w, player, enemy := setup(9, component.KindMonster, 1, Options{Codes: konami.New(rng, 1)})
	sturdy(w, player, enemy)
	code := strings.Join(konami.Sequence, " ")
	con := ui.NewScript(code, code)

	if err := b.Turn(con); err != nil {
		t.Fatal(err)
	}
	if f := system.FragmentsOf(w, player); f.Held != 1 || f.RoundsLeft != 5 {
		t.Fatalf("fragments after code = %+v; want 1 held, 5 rounds", f)
	}
	if !b.Result().CodeMatched {
		t.Fatal("result should record the matched code")
	}
	if err := b.Turn(con); err != nil {
		t.Fatal(err)
	}
	if f := system.FragmentsOf(w, player); f.Held != 1 {
		t.Fatalf("second entry granted another fragment: %+v", f)
	}
	if !con.Contains("Its power is spent.") {
		t.Fatalf("lines = %q", con.Lines)
	}
}

func TestBossVictoryRewards(t *testing.T) {
	b, w, player, enemy := setup(4, component.KindBoss, 5, Options{})
	w.Add(enemy, component.Health{Current: 1, Max: 200})
	con := ui.NewScript("1")

	res, err := b.Run(con)
	if err != nil {
		t.Fatal(err)
	}
	if res.State != PlayerWon || res.Reward != 15 || !res.Fragment {
		t.Fatalf("result = %+v", res)
	}
	if got := system.WalletOf(w, player).Coins; got != 17 {
		t.Fatalf("coins = %d; want 17", got)
	}
	if !res.Passive.Granted || res.Passive.Stacks != 1 {
		t.Fatalf("passive = %+v; want one fresh stack", res.Passive)
	}
	if got := system.AttackOf(w, player); got != 30 {
		t.Fatalf("attack = %d; want 25 + 5 from Ember's Fury", got)
	}
	for _, want := range []string{"Konami Fragment Obtained from the Boss!", "Boss Reward: Ember's Fury", "Passive applied. Current stacks: 1."} {
		if !con.Contains(want) {
			t.Fatalf("missing %q in %q", want, con.Lines)
		}
	}
	if con.Contains("attacks Farm for") {
		t.Fatal("a dead boss must not strike back")
	}
}

func TestPlayerDeathEndsBattle(t *testing.T) {
	b, w, player, _ := setup(2, component.KindMonster, 1, Options{})
	w.Add(player, component.Health{Current: 1, Max: 150})
	res, err := b.Run(ui.NewScript("1", "1"))
	if err != nil {
		t.Fatal(err)
	}
	if res.State != EnemyWon || res.Turns != 1 {
		t.Fatalf("result = %+v; want enemy won on turn 1", res)
	}
	if system.HealthOf(w, player).Current != 0 {
		t.Fatal("player HP should floor at 0")
	}
}

func TestEndlessDrainShown(t *testing.T) {
	found := false
	for seed := int64(1); seed <= 5 && !found; seed++ {
		b, w, player, enemy := setup(seed, component.KindBoss, 40, Options{Endless: true, Depth: 15})
		sturdy(w, player, enemy)
		con := ui.NewScript(repeat("2", 30)...)
		for i := 0; i < 30; i++ {
			if err := b.Turn(con); err != nil {
				t.Fatal(err)
			}
		}
		found = con.Contains("triggers Boss Siphon, draining")
	}
	if !found {
		t.Fatal("no boss siphon in 150 endless turns")
	}
}

func TestStoryBattleNeverDrains(t *testing.T) {
	b, w, player, enemy := setup(1, component.KindBoss, 20, Options{Depth: 50})
	sturdy(w, player, enemy)
	con := ui.NewScript(repeat("2", 30)...)
	for i := 0; i < 30; i++ {
		if err := b.Turn(con); err != nil {
			t.Fatal(err)
		}
	}
	if con.Contains("draining") {
		t.Fatal("drain fired outside endless mode")
	}
}

func TestQuitPropagates(t *testing.T) {
	b, _, _, _ := setup(1, component.KindMonster, 1, Options{})
	_, err := b.Run(ui.NewScript())
	if !errors.Is(err, ui.ErrQuit) {
		t.Fatalf("err = %v; want ui.ErrQuit", err)
	}
	if b.State() != Ongoing {
		t.Fatalf("state = %v; want ongoing after a quit", b.State())
	}
}
