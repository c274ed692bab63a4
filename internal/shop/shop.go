package shop

import (
	"fmt"
	"io"
	"log/slog"
	"math/rand"
	"strings"

	"farm-defense/assets"
	"farm-defense/internal/component"
	"farm-defense/internal/dice"
	"farm-defense/internal/ecs"
	"farm-defense/internal/konami"
	"farm-defense/internal/skill"
	"farm-defense/internal/system"
	"farm-defense/internal/ui"
)

// Status is the outcome of one menu choice. Refused covers missing
// currency and a missing fragment; StillActive means an earlier tonic is
// still working; NeedsCode asks the caller to collect the secret code.
type Status uint8

const (
	Bought Status = iota
	Refused
	StillActive
	Invalid
	Leave
	NeedsCode
)

// BreakChance is the odds that a failed activation shatters a fragment.
const BreakChance = 0.25

// Purchase is the outcome of one menu choice and the lines to show.
type Purchase struct {
	Status Status
	Item   string
	Lines  []string
}

// Shop serves one visit. Create a fresh one per visit; the mode is fixed.
type Shop struct {
	w       *ecs.World
	rng     *rand.Rand
	player  ecs.EntityID
	endless bool
	stock   Stock
	codes   *konami.Tracker
	log     *slog.Logger
}

// New opens the shop for player. codes checks fragment activations.
func New(w *ecs.World, rng *rand.Rand, player ecs.EntityID, endless bool, codes *konami.Tracker, logger *slog.Logger) *Shop {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	stock := StoryStock
	if endless {
		stock = EndlessStock
	}
	return &Shop{w: w, rng: rng, player: player, endless: endless, stock: stock, codes: codes, log: logger}
}

// ActivationCost returns the current price of waking a fragment.
func (s *Shop) ActivationCost() (coins, gold int) {
	return konami.ActivationCost(system.FragmentsOf(s.w, s.player).Activations, s.endless)
}

// Menu returns the lines of the shop menu at current prices.
func (s *Shop) Menu() []string {
	coins, gold := s.ActivationCost()
	st := s.stock
	return []string{
		"",
		fmt.Sprintf("%s The traveling shop appears! You may buy items:", assets.GlyphShop),
		fmt.Sprintf("[1] %s (%d coins) - reduce incoming damage by %d%% for %d turns", st.Tonic.Name, st.Tonic.Coins, system.Round(st.Tonic.Reduction*100), st.Tonic.Turns),
		fmt.Sprintf("[2] %s (%d coins) - +%d attack for this wave", st.Banner.Name, st.Banner.Coins, st.Banner.Attack),
		fmt.Sprintf("[3] %s (pay %d coins) - gain %d gold", st.Exchange.Name, st.Exchange.Coins, st.Exchange.Gold),
		fmt.Sprintf("[4] %s (%d gold) - permanently +%d attack and +%d max HP", st.Seed.Name, st.Seed.Gold, st.Seed.Attack, st.Seed.MaxHP),
		fmt.Sprintf("[5] Activate Konami Fragment (%d gold + %d coins)", gold, coins),
		"[6] Leave",
	}
}

func (s *Shop) walletLine() string {
	wl := system.WalletOf(s.w, s.player)
	return fmt.Sprintf("Coins: %d | Gold: %d", wl.Coins, wl.Gold)
}

// goldTip returns the conversion hint the first time gold runs short.
func (s *Shop) goldTip() []string {
	ms, _ := ecs.Get[component.Milestones](s.w, s.player)
	if ms.GoldTipShown {
		return nil
	}
	ms.GoldTipShown = true
	s.w.Add(s.player, ms)
	return []string{fmt.Sprintf("Tip: Buy a %s with coins to get gold.", s.stock.Exchange.Name)}
}

// Buy handles one menu answer. Option 5 only checks eligibility; on
// NeedsCode the caller collects the code and calls Activate.
func (s *Shop) Buy(choice string) Purchase {
	switch strings.TrimSpace(choice) {
	case "1":
		return s.buyTonic()
	case "2":
		return s.buyBanner()
	case "3":
		return s.buyExchange()
	case "4":
		return s.buySeed()
	case "5":
		return s.checkActivation()
	case "6":
		return Purchase{Status: Leave, Lines: []string{"You leave the shop."}}
	}
	return Purchase{Status: Invalid, Lines: []string{"LOL what are you trying to do??"}}
}

func (s *Shop) bought(item string, coins, gold int) {
	s.log.Info("purchase", "item", item, "coins", coins, "gold", gold)
}

func (s *Shop) buyTonic() Purchase {
	t := s.stock.Tonic
	if system.HasEffect(s.w, s.player, component.EffectDamageReduction) {
		return Purchase{Status: StillActive, Item: t.Name, Lines: []string{"This item is still in effect, buy a different one."}}
	}
	if !system.Spend(s.w, s.player, t.Coins, 0) {
		return Purchase{Status: Refused, Item: t.Name, Lines: []string{"Not enough coins.", s.walletLine()}}
	}
	system.ApplyEffect(s.w, s.player, component.ActiveEffect{
		Kind:           component.EffectDamageReduction,
		Magnitude:      t.Reduction,
		TurnsRemaining: t.Turns,
	})
	s.bought(t.Name, t.Coins, 0)
	return Purchase{Status: Bought, Item: t.Name, Lines: []string{t.Bought, s.walletLine()}}
}

func (s *Shop) buyBanner() Purchase {
	b := s.stock.Banner
	if !system.Spend(s.w, s.player, b.Coins, 0) {
		return Purchase{Status: Refused, Item: b.Name, Lines: []string{"Not enough coins."}}
	}
	system.GrantWaveAttack(s.w, s.player, b.Attack)
	s.bought(b.Name, b.Coins, 0)
	return Purchase{Status: Bought, Item: b.Name, Lines: []string{b.Bought, s.walletLine()}}
}

func (s *Shop) buyExchange() Purchase {
	x := s.stock.Exchange
	if !system.Spend(s.w, s.player, x.Coins, 0) {
		return Purchase{Status: Refused, Item: x.Name, Lines: []string{"Not enough coins."}}
	}
	system.Earn(s.w, s.player, 0, x.Gold)
	s.bought(x.Name, x.Coins, 0)
	return Purchase{Status: Bought, Item: x.Name, Lines: []string{x.Bought, s.walletLine()}}
}

func (s *Shop) buySeed() Purchase {
	sd := s.stock.Seed
	if !system.Spend(s.w, s.player, 0, sd.Gold) {
		return Purchase{Status: Refused, Item: sd.Name, Lines: append([]string{"Not enough gold."}, s.goldTip()...)}
	}
	system.RaiseAttack(s.w, s.player, sd.Attack)
	system.GrowMaxHP(s.w, s.player, sd.MaxHP, true)
	s.bought(sd.Name, 0, sd.Gold)
	return Purchase{Status: Bought, Item: sd.Name, Lines: []string{sd.Bought, s.walletLine()}}
}

func (s *Shop) checkActivation() Purchase {
	const item = "Konami Fragment"
	if system.FragmentsOf(s.w, s.player).Held == 0 {
		return Purchase{Status: Refused, Item: item, Lines: []string{"You don't have one."}}
	}
	coins, gold := s.ActivationCost()
	if wl := system.WalletOf(s.w, s.player); wl.Coins < coins || wl.Gold < gold {
		lines := []string{fmt.Sprintf("Activating a fragment costs %d gold and %d coins. You don't have enough resources.", gold, coins)}
		return Purchase{Status: Refused, Item: item, Lines: append(lines, s.goldTip()...)}
	}
	return Purchase{Status: NeedsCode, Item: item, Lines: []string{
		"Enter the Konami sequence tokens separated by spaces (e.g. 'up up down ...'):",
	}}
}

// Activate spends a fragment if tokens spell the code. Success pays the
// price and grants +30% attack, +30% max HP and a new skill. Failure may
// shatter a fragment.
func (s *Shop) Activate(tokens []string) Purchase {
	const item = "Konami Fragment"
	coins, gold := s.ActivationCost()
	frags := system.FragmentsOf(s.w, s.player)
	if frags.Held == 0 || !s.codes.CheckSequence(tokens) {
		lines := []string{"The sequence fizzles. The fragment resists activation."}
		if frags.Held > 0 && dice.Chance(s.rng, BreakChance) {
			ecs.Update(s.w, s.player, func(f *component.Fragments) { f.Held = max(0, f.Held-1) })
			lines = append(lines, "Your fragment breaks, due to failed attempt.")
			s.log.Info("fragment broke", "held", frags.Held-1)
		}
		return Purchase{Status: Refused, Item: item, Lines: lines}
	}
	if !system.Spend(s.w, s.player, coins, gold) {
		return Purchase{Status: Refused, Item: item, Lines: []string{"You don't have enough resources."}}
	}
	ecs.Update(s.w, s.player, func(f *component.Fragments) {
		f.Held--
		f.Activations++
	})

	atkBuff := max(1, int(float64(system.AttackOf(s.w, s.player))*0.3))
	hpBuff := max(1, int(float64(system.HealthOf(s.w, s.player).Max)*0.3))
	system.RaiseAttack(s.w, s.player, atkBuff)
	system.GrowMaxHP(s.w, s.player, hpBuff, true)
	lines := []string{
		"The Konami Fragment glows and releases power into you & your farm!",
		skill.AcquireMessage(s.w, s.rng, s.player),
		fmt.Sprintf("Stats surge: Attack +%d, Max HP +%d (health +%d).", atkBuff, hpBuff, hpBuff),
		s.walletLine(),
	}
	s.log.Info("fragment activated", "attack", atkBuff, "max_hp", hpBuff, "coins", coins, "gold", gold)
	return Purchase{Status: Bought, Item: item, Lines: lines}
}

// Run shows the menu until the player leaves. Only ui.ErrQuit escapes.
func (s *Shop) Run(con ui.IO) error {
	for {
		ui.Lines(con, s.Menu()...)
		choice, err := con.Prompt("> ")
		if err != nil {
			return fmt.Errorf("shop: %w", err)
		}
		p := s.Buy(choice)
		ui.Lines(con, p.Lines...)
		switch p.Status {
		case Leave:
			return nil
		case NeedsCode:
			raw, err := con.Prompt("> ")
			if err != nil {
				return fmt.Errorf("shop: %w", err)
			}
			ui.Lines(con, s.Activate(strings.Fields(raw)).Lines...)
		}
	}
}
