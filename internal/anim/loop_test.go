package anim_test

import (
	"bytes"
	"context"
	"log"
	"math/rand"
	"strings"
	"time"

	"github.com/gdamore/tcell/v2"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/tizzywhizzy/bioterm/internal/anim"
	"github.com/tizzywhizzy/bioterm/internal/clock"
	"github.com/tizzywhizzy/bioterm/internal/overlay"
	"github.com/tizzywhizzy/bioterm/internal/rain"
	"github.com/tizzywhizzy/bioterm/internal/render"
	"github.com/tizzywhizzy/bioterm/internal/screen"
	"github.com/tizzywhizzy/bioterm/internal/theme"
)

// scriptedDisplay replays queued events one per Poll and counts drawing calls.
type scriptedDisplay struct {
	w, h   int
	events []screen.Event
	shows  int
	clears int
	cells  int
	onSet  func(r rune)
}

func (d *scriptedDisplay) Size() (int, int) { return d.w, d.h }
func (d *scriptedDisplay) Clear()           { d.clears++ }
func (d *scriptedDisplay) Show()            { d.shows++ }
func (d *scriptedDisplay) Close()           {}

func (d *scriptedDisplay) SetCell(x, y int, r rune, style tcell.Style) {
	d.cells++
	if d.onSet != nil {
		d.onSet(r)
	}
}

func (d *scriptedDisplay) Poll() (screen.Event, bool) {
	if len(d.events) == 0 {
		return screen.Event{}, false
	}
	ev := d.events[0]
	d.events = d.events[1:]
	return ev, true
}

func (d *scriptedDisplay) push(evs ...screen.Event) { d.events = append(d.events, evs...) }

func key(r rune) screen.Event { return screen.Event{Kind: screen.EventKey, Rune: r} }

var epoch = time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

var _ = Describe("Loop", func() {
	var (
		ctx     context.Context
		cancel  context.CancelFunc
		display *scriptedDisplay
		clk     *clock.Fake
		field   *rain.Field
		cycle   *overlay.ColorCycle
		typer   *overlay.Typer
	)

	newLoop := func(opts anim.Options) *anim.Loop {
		if opts.Lines == nil {
			opts.Lines = []string{"AB", "CD"}
		}
		return anim.New(display, field, render.New(theme.Default), typer, cycle, clk, opts)
	}

	BeforeEach(func() {
		ctx, cancel = context.WithCancel(context.Background())
		display = &scriptedDisplay{w: 40, h: 12}
		clk = clock.NewFake(epoch)
		field = rain.NewField(rand.New(rand.NewSource(1)), rain.DefaultParams(), rain.DefaultDensity)
		cycle = overlay.NewColorCycle(theme.Default.Colors())
		typer = overlay.NewTyper(clk, 0, 0)
	})

	AfterEach(func() {
		cancel()
	})

	Describe("quitting", func() {
		DescribeTable("exits on the first iteration with a nil error",
			func(ev screen.Event) {
				display.push(ev)
				loop := newLoop(anim.Options{})
				Expect(loop.Run(ctx)).To(Succeed())
				Expect(loop.Frames()).To(BeZero())
				Expect(loop.State()).To(Equal(anim.Idle))
			},
			Entry("lower-case q", key('q')),
			Entry("upper-case Q", key('Q')),
			Entry("interrupt key", screen.Event{Kind: screen.EventInterrupt}),
		)

		It("stops when the context is already cancelled", func() {
			cancel()
			loop := newLoop(anim.Options{Autoplay: true})
			Expect(loop.Run(ctx)).To(Succeed())
			Expect(loop.Frames()).To(BeZero())
			Expect(loop.Passes()).To(BeZero())
		})

		It("quits from the steady state", func() {
			loop := newLoop(anim.Options{Autoplay: true})
			Expect(loop.Step(ctx)).To(BeTrue())
			Expect(loop.State()).To(Equal(anim.Steady))

			display.push(key('q'))
			Expect(loop.Run(ctx)).To(Succeed())
			Expect(loop.Frames()).To(Equal(1))
		})

		It("aborts a typing pass when the context is cancelled mid-pass", func() {
			// rain glyphs come from the katakana charset, so 'e' is only ever typed
			display.onSet = func(r rune) {
				if r == 'e' {
					cancel()
				}
			}
			loop := newLoop(anim.Options{Autoplay: true, Lines: []string{"hello world"}})
			Expect(loop.Run(ctx)).To(Succeed())
			Expect(loop.Passes()).To(BeZero())
			Expect(loop.Typed()).To(BeFalse())
			Expect(loop.State()).To(Equal(anim.Typing))
			Expect(loop.Frames()).To(BeZero())
		})
	})

	Describe("one-shot mode", func() {
		It("idles until space is pressed", func() {
			loop := newLoop(anim.Options{})
			for range 5 {
				Expect(loop.Step(ctx)).To(BeTrue())
			}
			Expect(loop.State()).To(Equal(anim.Idle))
			Expect(loop.Passes()).To(BeZero())
			Expect(cycle.Advances()).To(BeZero())

			display.push(key(' '))
			Expect(loop.Step(ctx)).To(BeTrue())
			Expect(loop.State()).To(Equal(anim.Steady))
			Expect(loop.Passes()).To(Equal(1))
		})

		It("types once per trigger", func() {
			loop := newLoop(anim.Options{})
			display.push(key(' '))
			for range 10 {
				loop.Step(ctx)
			}
			Expect(loop.Passes()).To(Equal(1))

			display.push(key(' '))
			loop.Step(ctx)
			Expect(loop.Passes()).To(Equal(2))
		})

		It("ignores other keys", func() {
			loop := newLoop(anim.Options{})
			display.push(key('x'), key('z'))
			loop.Step(ctx)
			loop.Step(ctx)
			Expect(loop.State()).To(Equal(anim.Idle))
		})
	})

	Describe("autoplay", func() {
		It("types on the first iteration only", func() {
			loop := newLoop(anim.Options{Autoplay: true})
			for range 10 {
				Expect(loop.Step(ctx)).To(BeTrue())
			}
			Expect(loop.Passes()).To(Equal(1))
			Expect(loop.Frames()).To(Equal(10))
		})

		It("ignores space", func() {
			loop := newLoop(anim.Options{Autoplay: true})
			loop.Step(ctx)
			display.push(key(' '))
			loop.Step(ctx)
			Expect(loop.Passes()).To(Equal(1))
		})

		It("keeps the bio on screen with the static pass", func() {
			loop := newLoop(anim.Options{Autoplay: true})
			loop.Step(ctx)
			// one advance per word while typing, one per rune in the static pass
			Expect(cycle.Advances()).To(Equal(2 + 4))

			loop.Step(ctx)
			Expect(cycle.Advances()).To(Equal(2 + 4 + 4))
		})
	})

	Describe("repeat mode", func() {
		It("types every frame once triggered", func() {
			loop := newLoop(anim.Options{Repeat: true, Autoplay: true})
			for range 6 {
				loop.Step(ctx)
			}
			Expect(loop.Passes()).To(Equal(6))
			Expect(loop.State()).To(Equal(anim.Steady))
		})

		It("still waits for the first trigger without autoplay", func() {
			loop := newLoop(anim.Options{Repeat: true})
			for range 3 {
				loop.Step(ctx)
			}
			Expect(loop.Passes()).To(BeZero())

			display.push(key(' '))
			for range 3 {
				loop.Step(ctx)
			}
			Expect(loop.Passes()).To(Equal(3))
		})
	})

	Describe("framing", func() {
		It("draws, shows and sleeps once per frame", func() {
			loop := newLoop(anim.Options{FrameInterval: 25 * time.Millisecond})
			for range 4 {
				loop.Step(ctx)
			}
			Expect(display.clears).To(Equal(4))
			Expect(display.shows).To(Equal(4))
			Expect(clk.Sleeps()).To(HaveLen(4))
			Expect(clk.Slept()).To(Equal(100 * time.Millisecond))
		})

		It("uses the default frame interval when none is set", func() {
			loop := newLoop(anim.Options{})
			loop.Step(ctx)
			Expect(clk.Sleeps()).To(ConsistOf(anim.DefaultFrameInterval))
		})

		It("includes typing delays in elapsed time", func() {
			typer = overlay.NewTyper(clk, 10*time.Millisecond, 100*time.Millisecond)
			loop := newLoop(anim.Options{Autoplay: true, FrameInterval: 30 * time.Millisecond})
			loop.Step(ctx)
			// 4 glyphs, 2 words, 2 line pauses, 1 frame
			want := 4*10*time.Millisecond + 2*100*time.Millisecond + 2*200*time.Millisecond + 30*time.Millisecond
			Expect(clk.Slept()).To(Equal(want))
		})
	})

	Describe("meters", func() {
		It("observes every shown frame", func() {
			loop := newLoop(anim.Options{FrameInterval: 20 * time.Millisecond})
			for range 11 {
				loop.Step(ctx)
			}
			meters := map[string]float64{}
			for _, m := range loop.Meters() {
				meters[m.Name()] = m.Value()
			}
			Expect(meters).To(HaveKeyWithValue("fps", BeNumerically("~", 50, 1e-6)))
			Expect(meters).To(HaveKeyWithValue("max_gap", BeNumerically("~", 0.02, 1e-9)))
		})

		It("sees a typing pass as a long gap", func() {
			typer = overlay.NewTyper(clk, 10*time.Millisecond, 100*time.Millisecond)
			loop := newLoop(anim.Options{FrameInterval: 30 * time.Millisecond})
			loop.Step(ctx)
			display.push(key(' '))
			loop.Step(ctx)

			var gap float64
			for _, m := range loop.Meters() {
				if m.Name() == "max_gap" {
					gap = m.Value()
				}
			}
			// 4 glyphs, 2 words, 2 line pauses, 1 frame
			Expect(gap).To(BeNumerically("~", 0.67, 1e-9))
		})
	})

	Describe("resizing", func() {
		It("rebuilds the field when the width changes", func() {
			loop := newLoop(anim.Options{})
			loop.Step(ctx)
			before := len(field.Columns())
			Expect(before).To(Equal(24))

			display.w = 80
			display.push(screen.Event{Kind: screen.EventResize})
			loop.Step(ctx)
			Expect(field.Columns()).To(HaveLen(48))
			w, h := field.Size()
			Expect(w).To(Equal(80))
			Expect(h).To(Equal(12))
		})
	})

	Describe("logging", func() {
		It("records state transitions and the exit", func() {
			var buf bytes.Buffer
			loop := newLoop(anim.Options{Autoplay: true})
			loop.SetLogger(log.New(&buf, "", 0))
			display.push(screen.Event{}, key('q'))
			Expect(loop.Run(ctx)).To(Succeed())

			out := buf.String()
			Expect(out).To(ContainSubstring("idle -> queued (autoplay)"))
			Expect(out).To(ContainSubstring("typing pass 1: 2 words, 4 glyphs, 2 spaces"))
			Expect(out).To(ContainSubstring("quit key"))
			Expect(strings.Count(out, "loop exit")).To(Equal(1))
		})
	})
})
