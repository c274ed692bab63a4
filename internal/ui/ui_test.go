package ui

import (
	"bytes"
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ─── Script ───────────────────────────────────────────────────────────────────

func TestScriptAnswersThenQuits(t *testing.T) {
	s := NewScript(" 1 ", "", "yes")
	for _, want := range []string{"1", "", "yes"} {
		got, err := s.Prompt("> ")
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}
	_, err := s.Prompt("> ")
	assert.ErrorIs(t, err, ErrQuit)
	assert.Len(t, s.Prompts, 4)
	assert.Equal(t, 0, s.Remaining())
}

func TestScriptRecordsLines(t *testing.T) {
	s := NewScript()
	Lines(s, "=== Wave 1 ===", "Coins: 2", "=== Wave 2 ===")
	assert.Equal(t, []string{"=== Wave 1 ===", "Coins: 2", "=== Wave 2 ==="}, s.Lines)
	assert.Equal(t, 2, s.Count("=== Wave"))
	assert.True(t, s.Contains("Coins"))
	assert.False(t, s.Contains("Gold"))
}

// ─── Stream ───────────────────────────────────────────────────────────────────

func TestStreamReadsTrimmedLines(t *testing.T) {
	var out bytes.Buffer
	s := NewStream(context.Background(), strings.NewReader("  1 \nsap burst\n"), &out)

	got, err := s.Prompt("> ")
	require.NoError(t, err)
	assert.Equal(t, "1", got)
	got, err = s.Prompt("Choose a skill: ")
	require.NoError(t, err)
	assert.Equal(t, "sap burst", got)

	_, err = s.Prompt("> ")
	assert.ErrorIs(t, err, ErrQuit, "end of input quits")

	s.Display("bye")
	assert.Equal(t, "> Choose a skill: > \nbye\n", out.String())
}

func TestStreamCancelQuits(t *testing.T) {
	r, w := io.Pipe()
	defer w.Close()
	ctx, cancel := context.WithCancel(context.Background())
	s := NewStream(ctx, r, io.Discard)

	cancel()
	_, err := s.Prompt("> ")
	assert.True(t, errors.Is(err, ErrQuit))
}

// ─── Terminal ─────────────────────────────────────────────────────────────────

func newSimScreen(t *testing.T, w, h int) tcell.SimulationScreen {
	t.Helper()
	ss := tcell.NewSimulationScreen("UTF-8")
	if err := ss.Init(); err != nil {
		t.Fatalf("SimulationScreen.Init: %v", err)
	}
	ss.SetSize(w, h)
	t.Cleanup(ss.Fini)
	return ss
}

func row(ss tcell.SimulationScreen, y int) string {
	cells, w, _ := ss.GetContents()
	var b strings.Builder
	for x := 0; x < w; x++ {
		b.Write(cells[y*w+x].Bytes)
	}
	return strings.TrimRight(b.String(), " ")
}

func typeLine(ss tcell.SimulationScreen, text string) {
	for _, r := range text {
		ss.InjectKey(tcell.KeyRune, r, tcell.ModNone)
	}
	ss.InjectKey(tcell.KeyEnter, 0, tcell.ModNone)
}

func TestTerminalPromptAndLog(t *testing.T) {
	ss := newSimScreen(t, 40, 8)
	term := NewTerminal(ss)

	term.Display("=== Wave 1 ===")
	typeLine(ss, "upx")
	got, err := term.Prompt("> ")
	require.NoError(t, err)
	assert.Equal(t, "upx", got)

	assert.Equal(t, "=== Wave 1 ===", row(ss, 0))
	assert.Equal(t, "> upx", row(ss, 1))
	assert.True(t, strings.HasPrefix(row(ss, 6), "───"), "separator above the input line")
}

func TestTerminalBackspace(t *testing.T) {
	ss := newSimScreen(t, 40, 8)
	term := NewTerminal(ss)

	for _, r := range "12" {
		ss.InjectKey(tcell.KeyRune, r, tcell.ModNone)
	}
	ss.InjectKey(tcell.KeyBackspace2, 0, tcell.ModNone)
	ss.InjectKey(tcell.KeyEnter, 0, tcell.ModNone)
	got, err := term.Prompt("> ")
	require.NoError(t, err)
	assert.Equal(t, "1", got)
}

func TestTerminalEscapeQuits(t *testing.T) {
	ss := newSimScreen(t, 40, 8)
	term := NewTerminal(ss)
	ss.InjectKey(tcell.KeyEscape, 0, tcell.ModNone)
	_, err := term.Prompt("> ")
	assert.ErrorIs(t, err, ErrQuit)
}

func TestTerminalScrollsToNewest(t *testing.T) {
	ss := newSimScreen(t, 20, 5)
	term := NewTerminal(ss)
	for _, l := range []string{"one", "two", "three", "four", "five"} {
		term.Display(l)
	}
	// 5 rows minus separator and input leaves 3 log rows
	assert.Equal(t, "three", row(ss, 0))
	assert.Equal(t, "five", row(ss, 2))
}

func TestWrap(t *testing.T) {
	assert.Equal(t, []string{""}, Wrap("", 10))
	assert.Equal(t, []string{"Coins: 2"}, Wrap("Coins: 2", 10))
	assert.Equal(t, []string{"abcd", "efgh", "ij"}, Wrap("abcdefghij", 4))
	assert.Equal(t, []string{"🌾🌾", "🌾"}, Wrap("🌾🌾🌾", 4), "wide runes count double")
}

func TestLineStyle(t *testing.T) {
	assert.Equal(t, tcell.StyleDefault.Foreground(tcell.ColorYellow), LineStyle("⚠️ The enemy is getting Stronger by the turn!"))
	assert.Equal(t, tcell.StyleDefault.Foreground(tcell.ColorGreen), LineStyle("🎉 You defeated Enemy Monster! Coins +8 (Total: 8)"))
	assert.Equal(t, tcell.StyleDefault, LineStyle("Choose action: [1] Attack  [2] Heal  [3] Skill"))
}
