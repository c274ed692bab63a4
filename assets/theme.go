package assets

// Glyphs used as line prefixes by the session.
const (
	GlyphArea     = "🗺️"
	GlyphStory    = "📜"
	GlyphShop     = "🏪"
	GlyphEvent    = "✨"
	GlyphWarning  = "⚠️"
	GlyphVictory  = "🎉"
	GlyphTrophy   = "🏆"
	GlyphDrain    = "🔻"
	GlyphEndless  = "🌌"
	GlyphHarvest  = "🌾"
	GlyphFallen   = "💀"
	GlyphWave     = "👋"
	GlyphAnnounce = "📣"
)

// BossTitles names the story bosses by the wave they guard. Bosses on other
// waves are Endless Wardens.
var BossTitles = map[int]string{
	5:  "Gorecrow",
	10: "Scorch Herald",
	15: "Rusthorn",
	20: "Emberlord",
	25: "Gravelox",
}

// UntitledBoss names every boss without an entry in BossTitles.
const UntitledBoss = "Endless Warden"

// MonsterName is the display name of a regular wave enemy.
const MonsterName = "Enemy Monster"

// BossArt is printed line by line when a story boss takes the field.
var BossArt = map[int][]string{
	5: {
		"  .-^-.",
		" (o o)",
		"  |=|  Scarecrow",
		" /___\\",
	},
	10: {
		"  /\\\\",
		" (🔥 )  Scorch",
		"  \\//",
	},
	15: {
		"  /\\_/\\",
		" ( o.o )  Rusthorn",
		"  > ^ <",
	},
	20: {
		"  .-^^-.",
		" (🔥🔥)  Emberlord",
		"  ||||",
	},
	25: {
		"  /\\__/\\",
		" ( o_o )  Gravelox",
		" /  _  \\",
	},
}

// PassiveDef is a boss reward before it is attached to an enemy.
type PassiveDef struct {
	Name        string
	Description string
	Stackable   bool
	AttackPer   int // permanent attack granted per stack
}

// EmberFury is the passive every boss drops.
var EmberFury = PassiveDef{
	Name:        "Ember's Fury",
	Description: "Gain +5 attack per stack (stackable up to 3 times).",
	Stackable:   true,
	AttackPer:   5,
}

// Passives indexes every passive by name.
var Passives = map[string]PassiveDef{
	EmberFury.Name: EmberFury,
}

// Area is a band of waves sharing a backdrop.
type Area struct {
	First, Last int
	Name        string
	Detail      string
}

// Areas is ordered by wave. The last band is open-ended.
var Areas = []Area{
	{1, 10, "Meadowfront", "Soft grass, warm wind, and a distant scarecrow."},
	{11, 20, "Ashen Fields", "The soil is warm to the touch, embers float in the air."},
	{21, 30, "Ironridge", "Rocky furrows and clanging windmills grind the horizon."},
	{31, 1 << 30, "Endless Verge", "The land stretches forever, hungry for another wave."},
}

// AreaFor returns the area containing wave.
func AreaFor(wave int) (Area, bool) {
	for _, a := range Areas {
		if wave >= a.First && wave <= a.Last {
			return a, true
		}
	}
	return Area{}, false
}
