package metrics

import "time"

// Meter is a running summary over observed frame times.
type Meter interface {
	Name() string
	Observe(t time.Time)
	Value() float64
}

// FrameRate is the average number of frames per second between the first
// and the last observation.
type FrameRate struct {
	name   string
	first  time.Time
	last   time.Time
	frames int
}

func NewFrameRate() *FrameRate {
	return &FrameRate{name: "fps"}
}

func (f *FrameRate) Name() string { return f.name }

func (f *FrameRate) Observe(t time.Time) {
	if f.frames == 0 {
		f.first = t
	}
	f.last = t
	f.frames++
}

func (f *FrameRate) Value() float64 {
	elapsed := f.last.Sub(f.first).Seconds()
	if f.frames < 2 || elapsed <= 0 {
		return 0
	}
	return float64(f.frames-1) / elapsed
}

// MaxGap is the longest interval between consecutive frames, in seconds.
// A typing pass shows up here since it blocks the frame loop.
type MaxGap struct {
	name    string
	last    time.Time
	seen    bool
	maxSecs float64
}

func NewMaxGap() *MaxGap {
	return &MaxGap{name: "max_gap"}
}

func (m *MaxGap) Name() string { return m.name }

func (m *MaxGap) Observe(t time.Time) {
	if m.seen {
		m.maxSecs = max(m.maxSecs, t.Sub(m.last).Seconds())
	}
	m.last = t
	m.seen = true
}

func (m *MaxGap) Value() float64 { return m.maxSecs }
