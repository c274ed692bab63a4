package ui

import "strings"

// Script answers prompts from a fixed list and records everything shown.
// Once the answers run out every Prompt returns ErrQuit.
type Script struct {
	answers []string
	next    int

	Lines   []string // displayed lines, in order
	Prompts []string // prompt texts, in order
}

// NewScript returns a Script that will give answers in order.
func NewScript(answers ...string) *Script {
	return &Script{answers: answers}
}

func (s *Script) Display(line string) {
	s.Lines = append(s.Lines, line)
}

func (s *Script) Prompt(text string) (string, error) {
	s.Prompts = append(s.Prompts, text)
	if s.next >= len(s.answers) {
		return "", ErrQuit
	}
	a := s.answers[s.next]
	s.next++
	return strings.TrimSpace(a), nil
}

// Remaining returns how many answers are still unused.
func (s *Script) Remaining() int {
	return len(s.answers) - s.next
}

// Contains reports whether any displayed line contains sub.
func (s *Script) Contains(sub string) bool {
	return s.Count(sub) > 0
}

// Count returns how many displayed lines contain sub.
func (s *Script) Count(sub string) int {
	n := 0
	for _, l := range s.Lines {
		if strings.Contains(l, sub) {
			n++
		}
	}
	return n
}
