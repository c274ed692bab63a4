package event

import (
	"fmt"
	"math/rand"

	"farm-defense/assets"
	"farm-defense/internal/dice"
	"farm-defense/internal/ecs"
)

// MaxPercent caps every scaled percentage an event applies.
const MaxPercent = 0.45

// Scale returns the event multiplier for wave: 1 in story mode, then +3%
// per wave past storyEnd in endless mode, capped at 2.
func Scale(wave, storyEnd int, endless bool) float64 {
	if !endless {
		return 1.0
	}
	return min(2.0, 1.0+float64(max(0, wave-storyEnd))*0.03)
}

// ScaledPercent applies scale to base and caps the result at MaxPercent.
func ScaledPercent(base, scale float64) float64 {
	return min(MaxPercent, base*scale)
}

// Due reports whether a random event fires on wave. Waves 5, 10 and 15
// belong to the story.
func Due(wave, every int) bool {
	if wave <= 1 || every <= 0 || wave%every != 0 {
		return false
	}
	switch wave {
	case 5, 10, 15:
		return false
	}
	return true
}

// Env is what an event may touch.
type Env struct {
	W      *ecs.World
	RNG    *rand.Rand
	Player ecs.EntityID
	Wave   int
	Scale  float64
}

// Percent returns base scaled and capped for this environment.
func (e *Env) Percent(base float64) float64 {
	return ScaledPercent(base, e.Scale)
}

// Rotation remembers which events already fired this cycle. When every
// event of the current pool has fired the cycle starts over.
type Rotation struct {
	used map[string]bool
}

// NewRotation returns an empty rotation.
func NewRotation() *Rotation {
	return &Rotation{used: make(map[string]bool)}
}

// Remaining returns the names of pool not yet used this cycle, resetting
// the cycle first if none are left.
func (r *Rotation) Remaining(pool []string) []string {
	var left []string
	for _, name := range pool {
		if !r.used[name] {
			left = append(left, name)
		}
	}
	if len(left) == 0 {
		clear(r.used)
		left = append(left, pool...)
	}
	return left
}

// Mark records name as used.
func (r *Rotation) Mark(name string) { r.used[name] = true }

// Used reports whether name fired this cycle.
func (r *Rotation) Used(name string) bool { return r.used[name] }

// Report is the outcome of one Fire call.
type Report struct {
	Fired []string
	Lines []string
}

// Fire picks an unused event from the pool for env.Wave and applies it.
// With probability extraChance a second event follows, drawn from the pool
// minus the first.
func Fire(env *Env, rot *Rotation, extraChance float64) Report {
	pool := Pool(env.Wave)
	var rep Report

	chosen := dice.Pick(env.RNG, rot.Remaining(pool))
	rot.Mark(chosen)
	rep.Lines = append(rep.Lines, "", fmt.Sprintf("%s Random Event: %s!", assets.GlyphEvent, chosen))
	rep.apply(env, chosen)

	if !dice.Chance(env.RNG, extraChance) {
		return rep
	}
	rep.Lines = append(rep.Lines, "", fmt.Sprintf("%s Huh? Another Random Event?!", assets.GlyphEvent))
	var rest []string
	for _, name := range pool {
		if name != chosen {
			rest = append(rest, name)
		}
	}
	if len(rest) == 0 {
		rest = pool
	}
	extra := dice.Pick(env.RNG, rest)
	rot.Mark(extra)
	rep.Lines = append(rep.Lines, fmt.Sprintf("%s Random Event: %s!", assets.GlyphEvent, extra))
	rep.apply(env, extra)
	return rep
}

// Apply runs a single named event and returns its lines.
func Apply(env *Env, name string) []string {
	d, ok := Lookup(name)
	if !ok {
		return nil
	}
	var lines []string
	if h := header(d.Name, d.Kind); h != "" {
		lines = append(lines, h)
	}
	return append(lines, d.apply(env)...)
}

func (r *Report) apply(env *Env, name string) {
	r.Fired = append(r.Fired, name)
	r.Lines = append(r.Lines, Apply(env, name)...)
}
