package anim

import (
	"context"
	"io"
	"log"
	"time"

	"github.com/tizzywhizzy/bioterm/internal/clock"
	"github.com/tizzywhizzy/bioterm/internal/metrics"
	"github.com/tizzywhizzy/bioterm/internal/overlay"
	"github.com/tizzywhizzy/bioterm/internal/rain"
	"github.com/tizzywhizzy/bioterm/internal/render"
	"github.com/tizzywhizzy/bioterm/internal/screen"
)

const DefaultFrameInterval = 30 * time.Millisecond

type State int

const (
	Idle State = iota
	Queued
	Typing
	Steady
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Queued:
		return "queued"
	case Typing:
		return "typing"
	case Steady:
		return "steady"
	}
	return "unknown"
}

type Options struct {
	Repeat        bool
	Autoplay      bool
	FrameInterval time.Duration
	Lines         []string
}

// Loop owns every piece of mutable animation state. It is not safe for
// concurrent use.
type Loop struct {
	display  screen.Display
	field    *rain.Field
	renderer *render.Renderer
	typer    *overlay.Typer
	cycle    *overlay.ColorCycle
	clock    clock.Clock
	opts     Options
	logger   *log.Logger
	meters   []metrics.Meter

	state      State
	typed      bool
	autoplayed bool
	frames     int
	passes     int
}

func New(d screen.Display, field *rain.Field, r *render.Renderer, typer *overlay.Typer, cycle *overlay.ColorCycle, clk clock.Clock, opts Options) *Loop {
	if opts.FrameInterval <= 0 {
		opts.FrameInterval = DefaultFrameInterval
	}
	opts.Lines = overlay.Normalize(opts.Lines)
	return &Loop{
		display:  d,
		field:    field,
		renderer: r,
		typer:    typer,
		cycle:    cycle,
		clock:    clk,
		opts:     opts,
		logger:   log.New(io.Discard, "", 0),
		meters:   []metrics.Meter{metrics.NewFrameRate(), metrics.NewMaxGap()},
	}
}

func (l *Loop) SetLogger(lg *log.Logger) {
	if lg != nil {
		l.logger = lg
	}
}

// Run iterates until the user quits or ctx is cancelled. Both are normal
// terminations and return nil.
func (l *Loop) Run(ctx context.Context) error {
	l.logger.Printf("loop start: repeat=%v autoplay=%v frame=%v lines=%d",
		l.opts.Repeat, l.opts.Autoplay, l.opts.FrameInterval, len(l.opts.Lines))
	for l.Step(ctx) {
	}
	l.logger.Printf("loop exit: frames=%d passes=%d state=%v", l.frames, l.passes, l.state)
	for _, m := range l.meters {
		l.logger.Printf("  %s=%.3f", m.Name(), m.Value())
	}
	return nil
}

// Step runs one iteration and reports whether the loop should continue.
func (l *Loop) Step(ctx context.Context) bool {
	if ctx.Err() != nil {
		return false
	}
	if !l.handleInput() {
		return false
	}

	if l.opts.Autoplay && !l.autoplayed {
		l.autoplayed = true
		l.queue("autoplay")
	}
	if l.opts.Repeat && l.state == Steady {
		l.queue("repeat")
	}

	w, h := l.display.Size()
	now := l.clock.Now()
	if l.field.Resize(w, h, now) {
		l.logger.Printf("field rebuilt for %dx%d: %d columns", w, h, len(l.field.Columns()))
	}
	l.field.Step(now)
	l.renderer.Draw(l.display, l.field.Columns(), h)

	if l.state == Queued {
		l.state = Typing
		st, err := l.typer.Type(ctx, l.display, l.opts.Lines, l.cycle)
		if err != nil {
			l.logger.Printf("typing interrupted after %d glyphs: %v", st.Glyphs, err)
			return false
		}
		l.typed = true
		l.passes++
		l.logger.Printf("typing pass %d: %d words, %d glyphs, %d spaces", l.passes, st.Words, st.Glyphs, st.Spaces)
		l.state = Steady
	}
	if l.typed {
		overlay.Static(l.display, l.opts.Lines, l.cycle)
	}

	l.display.Show()
	l.frames++
	now = l.clock.Now()
	for _, m := range l.meters {
		m.Observe(now)
	}
	l.clock.Sleep(l.opts.FrameInterval)
	return true
}

func (l *Loop) handleInput() bool {
	ev, ok := l.display.Poll()
	if !ok {
		return true
	}
	switch ev.Kind {
	case screen.EventInterrupt:
		l.logger.Printf("interrupt key")
		return false
	case screen.EventKey:
		switch ev.Rune {
		case 'q', 'Q':
			l.logger.Printf("quit key")
			return false
		case ' ':
			if !l.opts.Autoplay {
				l.queue("trigger")
			}
		}
	case screen.EventResize:
		w, h := l.display.Size()
		l.logger.Printf("resize to %dx%d", w, h)
	}
	return true
}

func (l *Loop) queue(reason string) {
	if l.state == Queued {
		return
	}
	if reason != "repeat" {
		l.logger.Printf("%v -> queued (%s)", l.state, reason)
	}
	l.state = Queued
}

func (l *Loop) State() State { return l.state }

// Typed reports whether a typing pass has completed at least once.
func (l *Loop) Typed() bool { return l.typed }

// Frames returns the number of frames shown.
func (l *Loop) Frames() int { return l.frames }

// Passes returns the number of completed typing passes.
func (l *Loop) Passes() int { return l.passes }

// Meters returns the frame pacing meters, observed once per shown frame.
func (l *Loop) Meters() []metrics.Meter { return l.meters }
