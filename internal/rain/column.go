package rain

import (
	"iter"
	"math/rand"
	"time"
)

const (
	minTrail      = 4
	minTrailCap   = 6
	bufferPadding = 10
)

// Params controls how columns are sampled on every reset.
type Params struct {
	MinSpeed time.Duration // fastest time per cell
	MaxSpeed time.Duration // slowest time per cell (exclusive)
	MaxSlack int           // extra rows the tail may fall past the bottom
	Charset  []rune
}

func DefaultParams() Params {
	return Params{
		MinSpeed: 50 * time.Millisecond,
		MaxSpeed: 400 * time.Millisecond,
		MaxSlack: 8,
		Charset:  Charsets[DefaultCharset],
	}
}

// Cell is one visible glyph of a column.
type Cell struct {
	Row  int
	Char rune
	Head bool
}

type Column struct {
	X int

	head   int
	speed  time.Duration
	length int
	slack  int
	buf    []rune
	last   time.Time

	rng    *rand.Rand
	params Params
}

// NewColumn creates a column at x and samples its first state for a screen
// of the given height. The step timer starts at now.
func NewColumn(x, height int, now time.Time, rng *rand.Rand, p Params) *Column {
	if len(p.Charset) == 0 {
		p.Charset = Charsets[DefaultCharset]
	}
	c := &Column{
		X:      x,
		rng:    rng,
		params: p,
		last:   now,
	}
	c.Reset(height)
	return c
}

// Reset places the head at or above the top edge and resamples speed, trail
// length, slack and glyphs for the given height.
func (c *Column) Reset(height int) {
	if height < 0 {
		height = 0
	}
	c.head = -c.rng.Intn(height/2 + 1)
	c.speed = c.sampleSpeed()
	c.length = TrailRange(height).sample(c.rng)
	c.slack = c.rng.Intn(max(c.params.MaxSlack, 0) + 1)

	size := height + c.length + bufferPadding
	if cap(c.buf) >= size {
		c.buf = c.buf[:size]
	} else {
		c.buf = make([]rune, size)
	}
	for i := range c.buf {
		c.buf[i] = c.params.Charset[c.rng.Intn(len(c.params.Charset))]
	}
}

func (c *Column) sampleSpeed() time.Duration {
	lo, hi := c.params.MinSpeed, c.params.MaxSpeed
	if hi <= lo {
		return lo
	}
	return lo + time.Duration(c.rng.Int63n(int64(hi-lo)))
}

// Step advances the head by one cell if at least Speed has elapsed since the
// previous advance. It never advances more than once per call. It reports
// whether the head moved.
func (c *Column) Step(now time.Time, height int) bool {
	if now.Sub(c.last) < c.speed {
		return false
	}
	c.head++
	c.last = c.last.Add(c.speed)
	// Fell behind by more than one interval (e.g. a blocking pause): drop
	// the backlog instead of racing to catch up.
	if now.Sub(c.last) >= c.speed {
		c.last = now
	}

	if c.head-c.length > height+c.slack {
		c.Reset(height)
	}
	return true
}

// Cells yields the visible part of the trail, head first.
func (c *Column) Cells(height int) iter.Seq[Cell] {
	return func(yield func(Cell) bool) {
		n := len(c.buf)
		if n == 0 {
			return
		}
		for i := 0; i < c.length; i++ {
			row := c.head - i
			if row < 0 || row >= height {
				continue
			}
			idx := ((c.head+i)%n + n) % n
			if !yield(Cell{Row: row, Char: c.buf[idx], Head: i == 0}) {
				return
			}
		}
	}
}

func (c *Column) Head() int            { return c.head }
func (c *Column) Speed() time.Duration { return c.speed }
func (c *Column) Length() int          { return c.length }
func (c *Column) Slack() int           { return c.slack }
func (c *Column) BufferLen() int       { return len(c.buf) }

// Range is an inclusive integer interval.
type Range struct{ Min, Max int }

// TrailRange returns the trail lengths a column may take on a screen of the
// given height.
func TrailRange(height int) Range {
	return Range{Min: minTrail, Max: max(minTrailCap, height/6)}
}

// HeadRange returns the head positions a freshly reset column may take.
func HeadRange(height int) Range {
	return Range{Min: -(height / 2), Max: 0}
}

func (r Range) sample(rng *rand.Rand) int {
	return r.Min + rng.Intn(r.Max-r.Min+1)
}

func (r Range) Contains(v int) bool {
	return v >= r.Min && v <= r.Max
}
