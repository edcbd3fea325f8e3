package export

import (
	"fmt"
	"html"
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/tizzywhizzy/bioterm/internal/screen"
)

const (
	DefaultCellWidth  = 10.0
	DefaultCellHeight = 18.0
	Background        = "#0a0a0a"
	defaultFill       = "#cccccc"
)

// FrameToSVG converts a rendered frame to SVG, one <text> element per
// non-blank cell. Cell sizes are in SVG user units.
func FrameToSVG(buf *screen.Buffer, cellW, cellH float64) string {
	if buf == nil {
		return ""
	}
	if cellW <= 0 {
		cellW = DefaultCellWidth
	}
	if cellH <= 0 {
		cellH = DefaultCellHeight
	}

	cols, rows := buf.Size()
	width := float64(cols) * cellW
	height := float64(rows) * cellH

	var sb strings.Builder

	fmt.Fprintf(&sb, `<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%.0f" height="%.0f" viewBox="0 0 %.0f %.0f">
<rect width="100%%" height="100%%" fill="%s"/>
<g font-family="monospace" font-size="%.1f" text-anchor="middle">
`, width, height, width, height, Background, cellH*0.8)

	for y := 0; y < rows; y++ {
		for x := 0; x < cols; x++ {
			c := buf.Cell(x, y)
			if c.Rune == ' ' || c.Rune == 0 {
				continue
			}
			fg, _, attrs := c.Style.Decompose()
			weight := ""
			if attrs&tcell.AttrBold != 0 {
				weight = ` font-weight="bold"`
			}
			// baseline sits a fifth of a cell above the bottom edge
			cx := float64(x)*cellW + cellW/2
			cy := float64(y+1)*cellH - cellH/5
			fmt.Fprintf(&sb, `<text x="%.1f" y="%.1f" fill="%s"%s>%s</text>
`, cx, cy, hexFill(fg), weight, html.EscapeString(string(c.Rune)))
		}
	}

	sb.WriteString("</g>\n</svg>\n")
	return sb.String()
}

func hexFill(c tcell.Color) string {
	v := c.Hex()
	if v < 0 {
		return defaultFill
	}
	return fmt.Sprintf("#%06x", v)
}
