package render

import (
	"math/rand"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/tizzywhizzy/bioterm/internal/rain"
	"github.com/tizzywhizzy/bioterm/internal/screen"
	"github.com/tizzywhizzy/bioterm/internal/theme"
)

// gridDisplay keeps a bounded grid like a real terminal.
type gridDisplay struct {
	w, h    int
	cells   map[[2]int]tcell.Style
	runes   map[[2]int]rune
	clears  int
	dropped int
}

func newGrid(w, h int) *gridDisplay {
	return &gridDisplay{w: w, h: h, cells: map[[2]int]tcell.Style{}, runes: map[[2]int]rune{}}
}

func (g *gridDisplay) Size() (int, int) { return g.w, g.h }
func (g *gridDisplay) Clear() {
	g.clears++
	g.cells = map[[2]int]tcell.Style{}
	g.runes = map[[2]int]rune{}
}
func (g *gridDisplay) SetCell(x, y int, r rune, style tcell.Style) {
	if x < 0 || y < 0 || x >= g.w || y >= g.h {
		g.dropped++
		return
	}
	g.cells[[2]int{x, y}] = style
	g.runes[[2]int{x, y}] = r
}
func (g *gridDisplay) Show()                      {}
func (g *gridDisplay) Poll() (screen.Event, bool) { return screen.Event{}, false }
func (g *gridDisplay) Close()                     {}

var epoch = time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

func TestDrawStyles(t *testing.T) {
	const w, h = 30, 20
	rng := rand.New(rand.NewSource(1))
	field := rain.NewField(rng, rain.DefaultParams(), 1)
	field.Resize(w, h, epoch)

	// Let the columns fall onto the screen.
	now := epoch
	for i := 0; i < 60; i++ {
		now = now.Add(400 * time.Millisecond)
		field.Step(now)
	}

	g := newGrid(w, h)
	r := New(theme.ThemeMatrix)
	r.Draw(g, field.Columns(), h)

	if g.clears != 1 {
		t.Errorf("expected one clear per draw, got %d", g.clears)
	}

	want := 0
	heads := 0
	for _, c := range field.Columns() {
		for cell := range c.Cells(h) {
			want++
			style, ok := g.cells[[2]int{c.X, cell.Row}]
			if !ok {
				t.Fatalf("missing cell at (%d,%d)", c.X, cell.Row)
			}
			if g.runes[[2]int{c.X, cell.Row}] != cell.Char {
				t.Errorf("wrong glyph at (%d,%d)", c.X, cell.Row)
			}
			_, _, attr := style.Decompose()
			if cell.Head {
				heads++
				if style != theme.ThemeMatrix.HeadStyle() || attr&tcell.AttrBold == 0 {
					t.Errorf("head at (%d,%d) not drawn with head style", c.X, cell.Row)
				}
			} else if style != theme.ThemeMatrix.TrailStyle() {
				t.Errorf("trail at (%d,%d) not drawn with trail style", c.X, cell.Row)
			}
		}
	}
	if want == 0 || heads == 0 {
		t.Fatal("expected some visible cells after stepping")
	}
	if len(g.cells) != want {
		t.Errorf("expected %d cells drawn, got %d", want, len(g.cells))
	}
}

func TestDrawShrunkDisplay(t *testing.T) {
	rng := rand.New(rand.NewSource(2))
	field := rain.NewField(rng, rain.DefaultParams(), 1)
	field.Resize(40, 30, epoch)
	now := epoch
	for i := 0; i < 80; i++ {
		now = now.Add(400 * time.Millisecond)
		field.Step(now)
	}

	// The terminal shrank before the field caught up.
	g := newGrid(10, 5)
	New(theme.Default).Draw(g, field.Columns(), 30)

	for xy := range g.cells {
		if xy[0] >= 10 || xy[1] >= 5 {
			t.Fatalf("cell (%d,%d) escaped the grid", xy[0], xy[1])
		}
	}
	if g.dropped == 0 {
		t.Error("expected off-grid cells to be offered and dropped")
	}
}
