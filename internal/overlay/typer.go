package overlay

import (
	"context"
	"strings"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/tizzywhizzy/bioterm/internal/clock"
	"github.com/tizzywhizzy/bioterm/internal/screen"
)

const (
	DefaultWordDelay = 280 * time.Millisecond
	DefaultCharDelay = 20 * time.Millisecond
)

// Typer types the bio onto a display one character at a time.
type Typer struct {
	CharDelay time.Duration
	WordDelay time.Duration
	clock     clock.Clock
}

func NewTyper(c clock.Clock, charDelay, wordDelay time.Duration) *Typer {
	return &Typer{CharDelay: charDelay, WordDelay: wordDelay, clock: c}
}

// LinePause is the pause after each completed line.
func (t *Typer) LinePause() time.Duration {
	return 2 * t.WordDelay
}

// Stats counts what a typing pass emitted.
type Stats struct {
	Glyphs int
	Spaces int
	Words  int
}

// Type runs a blocking typing pass. Each word takes one colour from cycle;
// every glyph is flushed to the display before the character delay. A
// cancelled ctx stops the pass between glyphs and its error is returned.
func (t *Typer) Type(ctx context.Context, d screen.Display, lines []string, cycle *ColorCycle) (Stats, error) {
	var st Stats
	w, h := d.Size()
	top := BlockTop(h, len(lines))

	for i, line := range lines {
		y := top + i
		x := StartColumn(w, TextWidth(line))

		for _, word := range strings.Fields(line) {
			style := tcell.StyleDefault.Foreground(cycle.Next()).Bold(true)
			st.Words++
			for _, r := range word {
				if err := ctx.Err(); err != nil {
					return st, err
				}
				d.SetCell(x, y, r, style)
				d.Show()
				st.Glyphs++
				x += runeWidth(r)
				t.clock.Sleep(t.CharDelay)
			}
			d.SetCell(x, y, ' ', tcell.StyleDefault)
			d.Show()
			st.Spaces++
			x++
			t.clock.Sleep(t.WordDelay)
		}
		t.clock.Sleep(t.LinePause())
	}
	return st, ctx.Err()
}

// Static draws the already typed bio in one go, taking a fresh colour from
// cycle for every character so the text shimmers from frame to frame.
func Static(d screen.Display, lines []string, cycle *ColorCycle) {
	w, h := d.Size()
	top := BlockTop(h, len(lines))

	for i, line := range lines {
		y := top + i
		x := StartColumn(w, TextWidth(line))
		for _, r := range line {
			d.SetCell(x, y, r, tcell.StyleDefault.Foreground(cycle.Next()).Bold(true))
			x += runeWidth(r)
		}
	}
}
