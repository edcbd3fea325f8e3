package screen

import (
	"strings"

	"github.com/gdamore/tcell/v2"
)

// Cell is one glyph held by a Buffer.
type Cell struct {
	Rune  rune
	Style tcell.Style
}

// Buffer is an offscreen Display. It never produces input events.
type Buffer struct {
	width, height int
	cells         []Cell
	shows         int
}

func NewBuffer(width, height int) *Buffer {
	width, height = max(width, 0), max(height, 0)
	b := &Buffer{width: width, height: height, cells: make([]Cell, width*height)}
	b.Clear()
	return b
}

func (b *Buffer) Size() (int, int) { return b.width, b.height }

func (b *Buffer) Clear() {
	for i := range b.cells {
		b.cells[i] = Cell{Rune: ' ', Style: tcell.StyleDefault}
	}
}

func (b *Buffer) SetCell(x, y int, r rune, style tcell.Style) {
	if x < 0 || y < 0 || x >= b.width || y >= b.height {
		return
	}
	b.cells[y*b.width+x] = Cell{Rune: r, Style: style}
}

func (b *Buffer) Show()               { b.shows++ }
func (b *Buffer) Poll() (Event, bool) { return Event{}, false }
func (b *Buffer) Close()              {}

// Cell returns the glyph at x, y; outside the grid it is a blank.
func (b *Buffer) Cell(x, y int) Cell {
	if x < 0 || y < 0 || x >= b.width || y >= b.height {
		return Cell{Rune: ' ', Style: tcell.StyleDefault}
	}
	return b.cells[y*b.width+x]
}

// Shows returns how many times the buffer was flushed.
func (b *Buffer) Shows() int { return b.shows }

// Row returns row y as plain text.
func (b *Buffer) Row(y int) string {
	if y < 0 || y >= b.height {
		return ""
	}
	var sb strings.Builder
	for _, c := range b.cells[y*b.width : (y+1)*b.width] {
		sb.WriteRune(c.Rune)
	}
	return sb.String()
}
