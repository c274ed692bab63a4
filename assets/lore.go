package assets

// StoryBeats is the narration of each milestone wave.
var StoryBeats = map[int]string{
	5:  "A shadow farmer raids your field. Something darker looms...",
	10: "A cult called Scorch appears, burning farms across the land.",
	15: "A rogue survivor teaches you a mysterious skill, before the boss came.",
	20: "The Emberlord arrives, flames rise around your barn.",
	25: "You uncover the truth. Will you DEFEND [1] or STRIKE BACK [2]?",
}

// CodeHints are whispered when a secret-code attempt goes astray.
var CodeHints = []string{
	"A strange breeze whistles... like a whisper of old codes.",
	"You feel your fingers itching for a rhythm you've never learned.",
	"The soil pulses with hidden power. What if you... remembered something forgotten?",
	"A distant memory nudges your thoughts: up, up, down...?",
}

// Intro is shown once before the main menu.
var Intro = []string{
	"Welcome to the farm. Monsters come in waves and the fence will not hold itself.",
	"Attack, heal, or use a skill each turn. Bosses show up every fifth wave.",
	"A traveling shop visits on even waves. Coins buy tonics; gold buys seeds.",
}

// FieldNotes is the "Field notes" page of the main menu.
var FieldNotes = []string{
	"Field notes:",
	"- Healing restores a flat 50 HP; skills scale with your attack.",
	"- Shop attack buffs only last for the current wave.",
	"- Bosses drop a fragment. Fragments crumble after 5 waves if unused.",
	"- Some say an old controller rhythm wakes the fragments up.",
	"- Past wave 25 the story ends and Endless Mode waits.",
}

// UpdateNotes is the "Update notes" page of the main menu.
var UpdateNotes = []string{
	"Update notes:",
	"- Main menu with Start, Field notes and Update notes.",
	"- Random events can chain into another random event.",
	"- Area transitions and story beats between waves.",
	"- Endless Mode with harsher scaling, end-game shop stock and HP drains.",
	"- Fragments last 5 waves if unused; activations are unlimited.",
	"- Bosses have names and ASCII art.",
	"- Run summary at the end of every session.",
}

// EndlessBriefing lists what changes when endless mode starts.
var EndlessBriefing = []string{
	"Changes ahead:",
	"- Enemies scale harder every wave.",
	"- Shop items upgrade to end-game versions.",
	"- Random events expand and can chain.",
	"- Endless foes now siphon a sliver of your max HP each turn.",
	"Choose to continue or completely stop.",
}
