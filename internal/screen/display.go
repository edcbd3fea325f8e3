package screen

import "github.com/gdamore/tcell/v2"

const (
	MinWidth  = 20
	MinHeight = 5
	MinColors = 8
)

type EventKind int

const (
	EventNone EventKind = iota
	EventKey
	EventInterrupt
	EventResize
)

// Event is a single input event. Rune is set for EventKey.
type Event struct {
	Kind EventKind
	Rune rune
}

// Display is a character grid with buffered drawing and non-blocking input.
type Display interface {
	// Size returns the current width and height in cells.
	Size() (width, height int)
	// Clear blanks the back buffer.
	Clear()
	// SetCell writes one glyph. Coordinates outside the grid are ignored.
	SetCell(x, y int, r rune, style tcell.Style)
	// Show flushes the back buffer to the terminal.
	Show()
	// Poll returns the next pending event, or false immediately if none.
	Poll() (Event, bool)
	Close()
}
