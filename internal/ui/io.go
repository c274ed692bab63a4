// Package ui is the display/prompt boundary between the session and a
// player. Implementations: Stream (line console), Terminal (tcell) and
// Script (canned answers for tests and batch runs).
package ui

import "errors"

// ErrQuit is returned by Prompt when the player aborts the session.
var ErrQuit = errors.New("player quit")

// IO is what the session needs from a front end. Display never fails;
// Prompt blocks until an answer arrives and returns it trimmed.
type IO interface {
	Display(line string)
	Prompt(text string) (string, error)
}

// Lines displays every line in order.
func Lines(io IO, lines ...string) {
	for _, l := range lines {
		io.Display(l)
	}
}
