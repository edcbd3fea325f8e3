package rain

import (
	"math"
	"math/rand"
	"sort"
	"time"
)

const DefaultDensity = 0.6

// Field holds the columns for the current screen size.
type Field struct {
	params  Params
	density float64
	rng     *rand.Rand

	width, height int
	columns       []*Column
}

func NewField(rng *rand.Rand, p Params, density float64) *Field {
	if density <= 0 || density > 1 {
		density = DefaultDensity
	}
	return &Field{params: p, density: density, rng: rng}
}

// Resize adapts the field to a new screen size. A width change samples a new
// set of column positions; a height change only affects later steps and
// resets. It reports whether the columns were rebuilt.
func (f *Field) Resize(width, height int, now time.Time) bool {
	rebuild := width != f.width || f.columns == nil
	f.width, f.height = width, height
	if !rebuild {
		return false
	}

	f.columns = f.columns[:0]
	for _, x := range f.samplePositions(width) {
		f.columns = append(f.columns, NewColumn(x, height, now, f.rng, f.params))
	}
	return true
}

func (f *Field) samplePositions(width int) []int {
	if width <= 0 {
		return nil
	}
	n := int(math.Round(float64(width) * f.density))
	n = min(max(n, 1), width)
	xs := f.rng.Perm(width)[:n]
	sort.Ints(xs)
	return xs
}

// Step advances every column whose timer has elapsed.
func (f *Field) Step(now time.Time) {
	for _, c := range f.columns {
		c.Step(now, f.height)
	}
}

func (f *Field) Columns() []*Column { return f.columns }

func (f *Field) Size() (int, int) { return f.width, f.height }
