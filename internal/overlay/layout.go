package overlay

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// StartColumn returns the x at which text of the given cell width is
// centred on a screen of the given width. Text wider than the screen starts
// at 0 and is clipped on the right.
func StartColumn(screenWidth, textWidth int) int {
	return max(0, (screenWidth-textWidth)/2)
}

// BlockTop returns the first row of a block of n lines centred vertically.
func BlockTop(screenHeight, n int) int {
	return max(0, (screenHeight-n)/2)
}

// TextWidth is the display width of s in terminal cells.
func TextWidth(s string) int {
	return runewidth.StringWidth(s)
}

func runeWidth(r rune) int {
	if w := runewidth.RuneWidth(r); w > 0 {
		return w
	}
	return 1
}

// Normalize collapses runs of whitespace inside each line so the typed and
// static renderings place every word at the same column. Blank lines are
// kept as empty rows.
func Normalize(lines []string) []string {
	out := make([]string, len(lines))
	for i, l := range lines {
		out[i] = strings.Join(strings.Fields(l), " ")
	}
	return out
}
