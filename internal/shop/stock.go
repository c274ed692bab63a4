// Package shop is the traveling shop that visits between waves.
package shop

// Tonic softens incoming hits for a number of enemy attacks.
type Tonic struct {
	Name      string
	Coins     int
	Reduction float64
	Turns     int
	Bought    string
}

// Banner adds attack for the current wave only.
type Banner struct {
	Name   string
	Coins  int
	Attack int
	Bought string
}

// Exchange turns coins into gold.
type Exchange struct {
	Name   string
	Coins  int
	Gold   int
	Bought string
}

// Seed permanently raises attack and max HP for gold.
type Seed struct {
	Name   string
	Gold   int
	Attack int
	MaxHP  int
	Bought string
}

// Stock is what the shop sells in one mode.
type Stock struct {
	Tonic    Tonic
	Banner   Banner
	Exchange Exchange
	Seed     Seed
}

// StoryStock is sold until the story ends.
var StoryStock = Stock{
	Tonic: Tonic{
		Name: "Field Tonic", Coins: 8, Reduction: 0.30, Turns: 3,
		Bought: "You apply a Field Tonic, reducing incoming damage by 30% for 3 turns.",
	},
	Banner: Banner{
		Name: "Attack Tonic", Coins: 6, Attack: 12,
		Bought: "You drink the Attack Tonic. Attack +12 for this wave.",
	},
	Exchange: Exchange{
		Name: "Gold Pouch", Coins: 10, Gold: 1,
		Bought: "You purchase a Gold Pouch and gain 1 gold.",
	},
	Seed: Seed{
		Name: "Blessed Seed", Gold: 1, Attack: 3, MaxHP: 10,
		Bought: "You plant the Blessed Seed. Attack and Max HP permanently increased.",
	},
}

// EndlessStock replaces StoryStock in endless mode.
var EndlessStock = Stock{
	Tonic: Tonic{
		Name: "Ironbark Brew", Coins: 10, Reduction: 0.45, Turns: 2,
		Bought: "You drink an Ironbark Brew. Damage reduced by 45% for 2 turns.",
	},
	Banner: Banner{
		Name: "War Banner", Coins: 12, Attack: 20,
		Bought: "You raise a War Banner in spirit. Attack +20 for this wave.",
	},
	Exchange: Exchange{
		Name: "Golden Relic", Coins: 15, Gold: 2,
		Bought: "You purchase a Golden Relic and gain 2 gold.",
	},
	Seed: Seed{
		Name: "Ancient Seed", Gold: 2, Attack: 8, MaxHP: 20,
		Bought: "You plant an Ancient Seed. Attack and Max HP surge permanently.",
	},
}
