package ui

import (
	"strings"

	"farm-defense/assets"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

// Terminal is a full-screen front end: a scrolling log above a separator
// and an input line at the bottom. Esc or Ctrl-C aborts the session.
type Terminal struct {
	screen tcell.Screen
	log    []string
	input  []rune
	prompt string
}

// NewTerminal wraps an initialised screen.
func NewTerminal(screen tcell.Screen) *Terminal {
	return &Terminal{screen: screen}
}

func (t *Terminal) Display(line string) {
	t.log = append(t.log, line)
	t.draw()
}

func (t *Terminal) Prompt(text string) (string, error) {
	t.prompt = text
	t.input = t.input[:0]
	for {
		t.draw()
		switch ev := t.screen.PollEvent().(type) {
		case nil:
			return "", ErrQuit
		case *tcell.EventResize:
			t.screen.Sync()
		case *tcell.EventKey:
			switch ev.Key() {
			case tcell.KeyEscape, tcell.KeyCtrlC:
				return "", ErrQuit
			case tcell.KeyEnter:
				answer := strings.TrimSpace(string(t.input))
				t.log = append(t.log, t.prompt+answer)
				t.prompt = ""
				t.input = t.input[:0]
				t.draw()
				return answer, nil
			case tcell.KeyBackspace, tcell.KeyBackspace2:
				if len(t.input) > 0 {
					t.input = t.input[:len(t.input)-1]
				}
			case tcell.KeyRune:
				t.input = append(t.input, ev.Rune())
			}
		}
	}
}

func (t *Terminal) draw() {
	t.screen.Clear()
	w, h := t.screen.Size()
	if w <= 0 || h < 3 {
		t.screen.Show()
		return
	}

	type styled struct {
		text  string
		style tcell.Style
	}
	var rows []styled
	for _, l := range t.log {
		style := LineStyle(l)
		for _, r := range Wrap(l, w) {
			rows = append(rows, styled{r, style})
		}
	}
	logHeight := h - 2
	if len(rows) > logHeight {
		rows = rows[len(rows)-logHeight:]
	}
	for y, r := range rows {
		t.drawText(0, y, r.text, r.style)
	}

	sep := tcell.StyleDefault.Foreground(tcell.ColorGray)
	for x := 0; x < w; x++ {
		t.screen.SetContent(x, h-2, '─', nil, sep)
	}
	in := t.prompt + string(t.input)
	if over := runewidth.StringWidth(in) - (w - 1); over > 0 {
		in = runewidth.TruncateLeft(in, over, "")
	}
	end := t.drawText(0, h-1, in, tcell.StyleDefault.Foreground(tcell.ColorYellow))
	t.screen.ShowCursor(end, h-1)
	t.screen.Show()
}

// lineColors tints log lines by their leading glyph.
var lineColors = []struct {
	glyph string
	color tcell.Color
}{
	{assets.GlyphWarning, tcell.ColorYellow},
	{assets.GlyphDrain, tcell.ColorRed},
	{assets.GlyphFallen, tcell.ColorRed},
	{assets.GlyphVictory, tcell.ColorGreen},
	{assets.GlyphTrophy, tcell.ColorGold},
	{assets.GlyphEvent, tcell.ColorLightYellow},
	{assets.GlyphStory, tcell.ColorLightBlue},
	{assets.GlyphArea, tcell.ColorLightBlue},
	{"===", tcell.ColorWhite},
}

// LineStyle returns the style a log line is drawn with.
func LineStyle(line string) tcell.Style {
	for _, c := range lineColors {
		if strings.HasPrefix(line, c.glyph) {
			return tcell.StyleDefault.Foreground(c.color)
		}
	}
	return tcell.StyleDefault
}

// drawText writes text at (x, y) and returns the column after it. Wide runes
// take two cells; zero-width runes such as variation selectors are dropped.
func (t *Terminal) drawText(x, y int, text string, style tcell.Style) int {
	for _, r := range text {
		rw := runewidth.RuneWidth(r)
		if rw == 0 {
			continue
		}
		t.screen.SetContent(x, y, r, nil, style)
		if rw == 2 {
			t.screen.SetContent(x+1, y, ' ', nil, style)
		}
		x += rw
	}
	return x
}

// Wrap breaks line into rows no wider than width display cells. An empty
// line stays one empty row.
func Wrap(line string, width int) []string {
	if width <= 0 || runewidth.StringWidth(line) <= width {
		return []string{line}
	}
	var rows []string
	var cur strings.Builder
	curW := 0
	for _, r := range line {
		rw := runewidth.RuneWidth(r)
		if curW+rw > width {
			rows = append(rows, cur.String())
			cur.Reset()
			curW = 0
		}
		cur.WriteRune(r)
		curW += rw
	}
	return append(rows, cur.String())
}
