package overlay

import "github.com/gdamore/tcell/v2"

// ColorCycle is an endless walk over a fixed palette. A single instance is
// shared by the typing and static passes so both continue from the same
// position.
type ColorCycle struct {
	palette  []tcell.Color
	pos      int
	advances int
}

func NewColorCycle(palette []tcell.Color) *ColorCycle {
	if len(palette) == 0 {
		palette = []tcell.Color{tcell.ColorWhite}
	}
	p := make([]tcell.Color, len(palette))
	copy(p, palette)
	return &ColorCycle{palette: p}
}

// Next returns the current colour and moves to the following one.
func (c *ColorCycle) Next() tcell.Color {
	col := c.palette[c.pos]
	c.pos = (c.pos + 1) % len(c.palette)
	c.advances++
	return col
}

// Reset restarts the cycle at the first palette entry.
func (c *ColorCycle) Reset() {
	c.pos = 0
	c.advances = 0
}

// Advances returns how many colours were taken since creation or Reset.
func (c *ColorCycle) Advances() int { return c.advances }

func (c *ColorCycle) Len() int { return len(c.palette) }
