// Package konami tracks progress toward the secret input sequence that wakes
// boss fragments.
package konami

import (
	"math"
	"math/rand"
	"slices"
	"strings"

	"farm-defense/assets"
	"farm-defense/internal/dice"
)

// Sequence is the target code.
var Sequence = []string{"up", "up", "down", "down", "left", "right", "left", "right", "b", "a"}

// HintChance is the odds of a whisper when a streamed token breaks the code.
const HintChance = 0.15

// Kind classifies the result of a streamed token.
type Kind uint8

const (
	NoMatch Kind = iota
	Matched
	Hint
	Locked // the code was entered but no uses remain
)

func (k Kind) String() string {
	switch k {
	case Matched:
		return "matched"
	case Hint:
		return "hint"
	case Locked:
		return "locked"
	}
	return "no match"
}

// Result is what Push returns. Text is set only for Hint.
type Result struct {
	Kind Kind
	Text string
}

// Tracker matches tokens against Sequence. maxUses caps successful matches;
// zero or less means unlimited.
type Tracker struct {
	rng     *rand.Rand
	buffer  []string
	maxUses int
	uses    int
	locked  bool
}

// New returns a tracker drawing hint rolls from rng.
func New(rng *rand.Rand, maxUses int) *Tracker {
	return &Tracker{rng: rng, maxUses: maxUses}
}

func normalize(token string) string {
	return strings.ToLower(strings.TrimSpace(token))
}

// IsToken reports whether token belongs to the code's vocabulary.
func IsToken(token string) bool {
	return slices.Contains(Sequence, normalize(token))
}

func (t *Tracker) unlimited() bool { return t.maxUses <= 0 }

func (t *Tracker) available() bool {
	return !t.locked && (t.unlimited() || t.uses < t.maxUses)
}

func (t *Tracker) consume() {
	t.uses++
	if !t.unlimited() && t.uses >= t.maxUses {
		t.locked = true
	}
}

// Push feeds one token into the rolling buffer. Empty tokens are ignored.
func (t *Tracker) Push(token string) Result {
	token = normalize(token)
	if token == "" {
		return Result{}
	}
	t.buffer = append(t.buffer, token)
	if len(t.buffer) > len(Sequence) {
		t.buffer = t.buffer[1:]
	}

	if slices.Equal(t.buffer, Sequence) {
		if !t.available() {
			return Result{Kind: Locked}
		}
		t.buffer = t.buffer[:0]
		t.consume()
		return Result{Kind: Matched}
	}

	if !slices.Equal(t.buffer, Sequence[:len(t.buffer)]) && dice.Chance(t.rng, HintChance) {
		return Result{Kind: Hint, Text: dice.Pick(t.rng, assets.CodeHints)}
	}
	return Result{}
}

// CheckSequence matches a complete attempt at once and consumes a use on
// success. The streaming buffer is untouched.
func (t *Tracker) CheckSequence(tokens []string) bool {
	attempt := make([]string, len(tokens))
	for i, tok := range tokens {
		attempt[i] = normalize(tok)
	}
	if !slices.Equal(attempt, Sequence) || !t.available() {
		return false
	}
	t.consume()
	return true
}

// UnlocksRemaining returns the uses left, or math.MaxInt when unlimited.
func (t *Tracker) UnlocksRemaining() int {
	if t.unlimited() {
		return math.MaxInt
	}
	return max(0, t.maxUses-t.uses)
}

// ActivationCost is the price of waking a fragment after purchases earlier
// activations. Every third activation raises the tier, and endless mode adds
// one more.
func ActivationCost(purchases int, endless bool) (coins, gold int) {
	tier := purchases / 3
	if endless {
		tier++
	}
	return 7 + 2*tier, 5 + tier
}
