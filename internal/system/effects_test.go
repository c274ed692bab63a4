package system

import (
	"farm-defense/internal/component"
	"farm-defense/internal/ecs"
	"math"
	"math/rand"
	"testing"
)

func TestApplyEffectKeepsStrongerAndLonger(t *testing.T) {
	w := ecs.NewWorld()
	id := w.CreateEntity()
	ApplyEffect(w, id, component.ActiveEffect{Kind: component.EffectAttackSurge, Magnitude: 0.3, TurnsRemaining: 1})
	ApplyEffect(w, id, component.ActiveEffect{Kind: component.EffectAttackSurge, Magnitude: 0.1, TurnsRemaining: 2})

	e, ok := EffectOf(w, id, component.EffectAttackSurge)
	if !ok {
		t.Fatal("expected surge to be active")
	}
	if e.Magnitude != 0.3 || e.TurnsRemaining != 2 {
		t.Fatalf("merged effect = %+v; want magnitude 0.3, 2 turns", e)
	}
	effs, _ := ecs.Get[component.Effects](w, id)
	if len(effs.Active) != 1 {
		t.Fatalf("same-kind effects should merge, got %d entries", len(effs.Active))
	}
}

func TestCooldownTicksExactly(t *testing.T) {
	w := ecs.NewWorld()
	id := w.CreateEntity()
	w.Add(id, component.Skills{Known: []string{"Sap Burst"}, Cooldowns: map[string]int{}})

	StartCooldown(w, id, "Sap Burst", 3)
	for tick := 1; tick <= 3; tick++ {
		if CooldownLeft(w, id, "Sap Burst") == 0 {
			t.Fatalf("skill ready after only %d ticks", tick-1)
		}
		TickCooldowns(w, id)
	}
	if left := CooldownLeft(w, id, "Sap Burst"); left != 0 {
		t.Fatalf("cooldown after 3 ticks = %d; want 0", left)
	}
	s, _ := ecs.Get[component.Skills](w, id)
	if _, present := s.Cooldowns["Sap Burst"]; present {
		t.Fatal("expired cooldown should be removed from the map")
	}
}

func TestStartCooldownInitialisesMap(t *testing.T) {
	w := ecs.NewWorld()
	id := w.CreateEntity()
	w.Add(id, component.Skills{})
	StartCooldown(w, id, "Rain Dance", 5)
	if got := CooldownLeft(w, id, "Rain Dance"); got != 5 {
		t.Fatalf("cooldown = %d; want 5", got)
	}
}

func TestWaveBonusesAccumulateAndStrip(t *testing.T) {
	w := ecs.NewWorld()
	id := w.CreateEntity()
	w.Add(id, component.Combat{Attack: 25})

	GrantWaveAttack(w, id, 12) // shop tonic
	GrantWaveAttack(w, id, 3)  // event
	RaiseAttack(w, id, 5)      // permanent, must survive the strip
	if got := AttackOf(w, id); got != 45 {
		t.Fatalf("attack = %d; want 45", got)
	}
	if stripped := StripWaveBonus(w, id); stripped != 15 {
		t.Fatalf("stripped = %d; want 15", stripped)
	}
	if got := AttackOf(w, id); got != 30 {
		t.Fatalf("attack after strip = %d; want 30", got)
	}
	if stripped := StripWaveBonus(w, id); stripped != 0 {
		t.Fatalf("second strip = %d; want 0", stripped)
	}
}

func TestWaveClearUpgrade(t *testing.T) {
	w := ecs.NewWorld()
	id := w.CreateEntity()
	w.Add(id, component.Combat{Attack: 25})
	w.Add(id, component.Health{Current: 12, Max: 150})

	WaveClearUpgrade(w, id, 5, 10)
	hp := HealthOf(w, id)
	if AttackOf(w, id) != 30 || hp.Max != 160 || hp.Current != 160 {
		t.Fatalf("after upgrade: atk %d hp %d/%d; want 30, 160/160", AttackOf(w, id), hp.Current, hp.Max)
	}
}

func TestGrowMaxHP(t *testing.T) {
	w := ecs.NewWorld()
	id := w.CreateEntity()
	w.Add(id, component.Health{Current: 100, Max: 150})

	GrowMaxHP(w, id, 50, false)
	if hp := HealthOf(w, id); hp.Max != 200 || hp.Current != 100 {
		t.Fatalf("defend path: %d/%d; want 100/200", hp.Current, hp.Max)
	}
	GrowMaxHP(w, id, 25, true)
	if hp := HealthOf(w, id); hp.Max != 225 || hp.Current != 125 {
		t.Fatalf("fortify: %d/%d; want 125/225", hp.Current, hp.Max)
	}
}

func TestFragmentDecayAfterFiveWaves(t *testing.T) {
	w := ecs.NewWorld()
	id := w.CreateEntity()
	w.Add(id, component.Fragments{})

	if !EarnFragment(w, id, 3, 5) {
		t.Fatal("first fragment should be earned")
	}
	for wave := 1; wave <= 4; wave++ {
		if DecayFragments(w, id) {
			t.Fatalf("fragment expired early after %d waves", wave)
		}
	}
	if !DecayFragments(w, id) {
		t.Fatal("fragment should expire on the fifth wave")
	}
	if f := FragmentsOf(w, id); f.Held != 0 || f.RoundsLeft != 0 {
		t.Fatalf("stash after decay = %+v; want empty", f)
	}
}

func TestEarnFragmentResetsClockAndCaps(t *testing.T) {
	w := ecs.NewWorld()
	id := w.CreateEntity()
	w.Add(id, component.Fragments{})

	EarnFragment(w, id, 3, 5)
	DecayFragments(w, id)
	DecayFragments(w, id)
	EarnFragment(w, id, 3, 5)
	if f := FragmentsOf(w, id); f.Held != 2 || f.RoundsLeft != 5 {
		t.Fatalf("after second drop: %+v; want 2 held, 5 rounds", f)
	}
	EarnFragment(w, id, 3, 5)
	DecayFragments(w, id)
	if EarnFragment(w, id, 3, 5) {
		t.Fatal("fourth fragment should be refused at the cap")
	}
	if f := FragmentsOf(w, id); f.Held != 3 || f.RoundsLeft != 4 {
		t.Fatalf("capped stash = %+v; want 3 held, clock untouched at 4", f)
	}
}

func TestSpendChargesBothOrNothing(t *testing.T) {
	w := ecs.NewWorld()
	id := w.CreateEntity()
	w.Add(id, component.Wallet{Coins: 9, Gold: 4})

	if Spend(w, id, 10, 0) {
		t.Fatal("spend above coin balance succeeded")
	}
	if Spend(w, id, 7, 5) {
		t.Fatal("spend above gold balance succeeded")
	}
	if wl := WalletOf(w, id); wl.Coins != 9 || wl.Gold != 4 {
		t.Fatalf("failed spends changed the wallet: %+v", wl)
	}
	if !Spend(w, id, 9, 4) {
		t.Fatal("exact spend failed")
	}
	if wl := WalletOf(w, id); wl.Coins != 0 || wl.Gold != 0 {
		t.Fatalf("wallet after exact spend = %+v; want empty", wl)
	}
	LoseCoins(w, id, 3)
	if wl := WalletOf(w, id); wl.Coins != 0 {
		t.Fatalf("coins should floor at 0, got %d", wl.Coins)
	}
}

func TestEndlessDrainSpacing(t *testing.T) {
	w, enemy, player := makeCombatants(10, 1000)
	w.Add(enemy, component.Enemy{Kind: component.KindBoss})

	// Depth 100 saturates the chance bonus: 0.24+0.18 per roll. Seek a trigger.
	rng := rand.New(rand.NewSource(12))
	turn := 1
	var first DrainResult
	for ; turn < 200; turn++ {
		if first = EndlessDrain(w, rng, enemy, player, turn, 100, 3); first.Triggered {
			break
		}
	}
	if !first.Triggered {
		t.Fatal("drain never triggered in 200 turns")
	}
	if first.Label != "Boss Siphon" || math.Abs(first.Percent-0.18) > 1e-9 {
		t.Fatalf("boss drain = %+v", first)
	}
	if first.Damage != Round(1000*first.Percent) {
		t.Fatalf("drain damage %d; want %d", first.Damage, Round(1000*first.Percent))
	}
	for next := turn + 1; next < turn+3; next++ {
		if EndlessDrain(w, rng, enemy, player, next, 100, 3).Triggered {
			t.Fatalf("drain fired again on turn %d, within 3 turns of %d", next, turn)
		}
	}
}
