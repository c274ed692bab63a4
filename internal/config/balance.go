package config

// Balance holds the tunable numbers of a session.
type Balance struct {
	// Player start
	StartHP     int `yaml:"start_hp" json:"start_hp"`
	StartAttack int `yaml:"start_attack" json:"start_attack"`
	StartCoins  int `yaml:"start_coins" json:"start_coins"`

	// Progression
	StoryEndWave    int `yaml:"story_end_wave" json:"story_end_wave"`
	MonsterReward   int `yaml:"monster_reward" json:"monster_reward"`
	BossReward      int `yaml:"boss_reward" json:"boss_reward"`
	WaveClearAttack int `yaml:"wave_clear_attack" json:"wave_clear_attack"`
	WaveClearHP     int `yaml:"wave_clear_hp" json:"wave_clear_hp"`
	HealAmount      int `yaml:"heal_amount" json:"heal_amount"`

	// Cadence
	ShopEvery        int     `yaml:"shop_every" json:"shop_every"`
	EventEvery       int     `yaml:"event_every" json:"event_every"`
	ExtraEventChance float64 `yaml:"extra_event_chance" json:"extra_event_chance"`

	// Secret-code fragments
	FragmentCap    int `yaml:"fragment_cap" json:"fragment_cap"`
	FragmentRounds int `yaml:"fragment_rounds" json:"fragment_rounds"`

	// Long battles
	MonsterEscalationTurn int     `yaml:"monster_escalation_turn" json:"monster_escalation_turn"`
	BossEscalationTurn    int     `yaml:"boss_escalation_turn" json:"boss_escalation_turn"`
	EscalationFactor      float64 `yaml:"escalation_factor" json:"escalation_factor"`
	GimmickSpacing        int     `yaml:"gimmick_spacing" json:"gimmick_spacing"`
}

// Default returns the standard balance.
func Default() Balance {
	return Balance{
		StartHP:               150,
		StartAttack:           25,
		StartCoins:            2,
		StoryEndWave:          25,
		MonsterReward:         6,
		BossReward:            15,
		WaveClearAttack:       5,
		WaveClearHP:           10,
		HealAmount:            50,
		ShopEvery:             2,
		EventEvery:            3,
		ExtraEventChance:      0.18,
		FragmentCap:           3,
		FragmentRounds:        5,
		MonsterEscalationTurn: 10,
		BossEscalationTurn:    15,
		EscalationFactor:      1.5,
		GimmickSpacing:        3,
	}
}

// Casual returns a gentler balance for a relaxed run.
func Casual() Balance {
	b := Default()
	b.StartHP = 180
	b.StartCoins = 5
	b.MonsterReward = 8
	b.MonsterEscalationTurn = 14
	b.BossEscalationTurn = 20
	return b
}

// Hard returns a harsher balance for experienced farmers.
func Hard() Balance {
	b := Default()
	b.StartHP = 130
	b.StartCoins = 0
	b.MonsterReward = 5
	b.BossReward = 12
	b.MonsterEscalationTurn = 8
	b.BossEscalationTurn = 12
	b.EscalationFactor = 1.75
	return b
}

// Preset returns the named balance preset ("normal", "casual" or "hard").
func Preset(name string) (Balance, bool) {
	switch name {
	case "", "normal":
		return Default(), true
	case "casual":
		return Casual(), true
	case "hard":
		return Hard(), true
	}
	return Balance{}, false
}
