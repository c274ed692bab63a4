package game

import (
	"strings"
	"unicode"

	"github.com/mattn/go-runewidth"
)

// maxNameWidth is the widest farm name, in terminal cells, that still fits
// the battle status line.
const maxNameWidth = 16

// cleanName strips control characters and surrounding space from a farm
// name and truncates it to maxNameWidth cells. An empty result means the
// default name.
func cleanName(raw string) string {
	name := strings.Map(func(r rune) rune {
		if unicode.IsControl(r) {
			return -1
		}
		return r
	}, raw)
	return runewidth.Truncate(strings.TrimSpace(name), maxNameWidth, "")
}
