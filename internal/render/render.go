package render

import (
	"github.com/gdamore/tcell/v2"
	"github.com/tizzywhizzy/bioterm/internal/rain"
	"github.com/tizzywhizzy/bioterm/internal/screen"
	"github.com/tizzywhizzy/bioterm/internal/theme"
)

// Renderer draws rain columns onto a display.
type Renderer struct {
	head  tcell.Style
	trail tcell.Style
}

func New(th theme.Theme) *Renderer {
	return &Renderer{head: th.HeadStyle(), trail: th.TrailStyle()}
}

// Draw clears d and paints every visible cell of cols for a screen of the
// given height. Cells off the grid are dropped by the display.
func (r *Renderer) Draw(d screen.Display, cols []*rain.Column, height int) {
	d.Clear()
	for _, c := range cols {
		for cell := range c.Cells(height) {
			style := r.trail
			if cell.Head {
				style = r.head
			}
			d.SetCell(c.X, cell.Row, cell.Char, style)
		}
	}
}
