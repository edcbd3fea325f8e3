package main

import (
	"context"
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/spf13/cobra"
	"github.com/tizzywhizzy/bioterm/internal/anim"
	"github.com/tizzywhizzy/bioterm/internal/clock"
	"github.com/tizzywhizzy/bioterm/internal/config"
	"github.com/tizzywhizzy/bioterm/internal/export"
	"github.com/tizzywhizzy/bioterm/internal/overlay"
	"github.com/tizzywhizzy/bioterm/internal/rain"
	"github.com/tizzywhizzy/bioterm/internal/render"
	"github.com/tizzywhizzy/bioterm/internal/screen"
)

var (
	snapWidth  int
	snapHeight int
	snapFrames int
)

// snapshot runs the screensaver offscreen on a fake clock with autoplay and
// writes the last frame as SVG.
func snapshot(cfg *config.Config, lines []string, width, height, frames int) (*screen.Buffer, error) {
	if width < screen.MinWidth || height < screen.MinHeight {
		return nil, &screen.UnsupportedError{Width: width, Height: height, Colors: 256, Wrapped: screen.ErrTooSmall}
	}

	s := cfg.Seed
	if s == 0 {
		s = time.Now().UnixNano()
	}
	buf := screen.NewBuffer(width, height)
	clk := clock.NewFake(time.Now())
	th := cfg.ThemeOrDefault()
	field := rain.NewField(rand.New(rand.NewSource(s)), cfg.RainParams(), cfg.Rain.Density)
	loop := anim.New(buf, field, render.New(th),
		overlay.NewTyper(clk, cfg.CharDelay(), cfg.WordDelay()),
		overlay.NewColorCycle(th.Colors()),
		clk,
		anim.Options{Autoplay: true, FrameInterval: cfg.FrameInterval(), Lines: lines})

	ctx := context.Background()
	for range max(frames, 1) {
		loop.Step(ctx)
	}
	return buf, nil
}

func runSnapshot(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}
	text := cfg.Lines
	if len(text) == 0 {
		b, err := loadBio()
		if err != nil {
			return err
		}
		text = b.OverlayLines()
	}

	buf, err := snapshot(cfg, text, snapWidth, snapHeight, snapFrames)
	if err != nil {
		return err
	}
	svg := export.FrameToSVG(buf, export.DefaultCellWidth, export.DefaultCellHeight)

	if outPath == "" {
		fmt.Fprint(cmd.OutOrStdout(), svg)
		return nil
	}
	if err := os.WriteFile(outPath, []byte(svg), 0644); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Wrote snapshot to %s\n", outPath)
	return nil
}
