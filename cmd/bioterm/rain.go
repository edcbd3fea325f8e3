package main

import (
	"fmt"
	"io"
	"log"
	"math/rand"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"github.com/tizzywhizzy/bioterm/internal/anim"
	"github.com/tizzywhizzy/bioterm/internal/bio"
	"github.com/tizzywhizzy/bioterm/internal/clock"
	"github.com/tizzywhizzy/bioterm/internal/config"
	"github.com/tizzywhizzy/bioterm/internal/overlay"
	"github.com/tizzywhizzy/bioterm/internal/rain"
	"github.com/tizzywhizzy/bioterm/internal/render"
	"github.com/tizzywhizzy/bioterm/internal/screen"
)

func runRain(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}

	logger, closeLog, err := openLog(logFile)
	if err != nil {
		return err
	}
	defer closeLog()

	text := cfg.Lines
	if len(text) == 0 {
		b, err := loadBio()
		if err != nil {
			return err
		}
		text = b.OverlayLines()
	}

	s := cfg.Seed
	if s == 0 {
		s = time.Now().UnixNano()
	}
	logger.Printf("seed=%d theme=%s charset=%q density=%v", s, cfg.Theme, cfg.Rain.Charset, cfg.Rain.Density)

	term, err := screen.Open()
	if err != nil {
		return err
	}
	defer term.Close()

	th := cfg.ThemeOrDefault()
	clk := clock.Real{}
	field := rain.NewField(rand.New(rand.NewSource(s)), cfg.RainParams(), cfg.Rain.Density)
	loop := anim.New(term, field, render.New(th),
		overlay.NewTyper(clk, cfg.CharDelay(), cfg.WordDelay()),
		overlay.NewColorCycle(th.Colors()),
		clk,
		anim.Options{
			Repeat:        cfg.Repeat,
			Autoplay:      cfg.Autoplay,
			FrameInterval: cfg.FrameInterval(),
			Lines:         text,
		})
	loop.SetLogger(logger)

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return loop.Run(ctx)
}

// resolveConfig builds the screensaver settings. A --config file wins over
// --preset, which wins over a config file found in the XDG directories.
// Flags set on the command line override all of them.
func resolveConfig(cmd *cobra.Command) (*config.Config, error) {
	var cfg *config.Config
	switch {
	case configFile != "":
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	case preset != "":
		cfg = config.GetPreset(preset)
		if cfg == nil {
			return nil, fmt.Errorf("%w: unknown preset %s (available: %v)", config.ErrInvalid, preset, config.ListPresets())
		}
	default:
		cfg = config.DefaultConfig()
		if path, ok := config.Find(); ok {
			loaded, err := config.Load(path)
			if err != nil {
				return nil, fmt.Errorf("failed to load config: %w", err)
			}
			cfg = loaded
		}
	}

	flags := cmd.Flags()
	if flags.Changed("repeat") {
		cfg.Repeat = repeat
	}
	if flags.Changed("autoplay") {
		cfg.Autoplay = autoplay
	}
	if flags.Changed("word-delay") {
		cfg.Timing.WordDelay = wordDelay
	}
	if flags.Changed("char-delay") {
		cfg.Timing.CharDelay = charDelay
	}
	if flags.Changed("lines") {
		cfg.Lines = lines
	}
	if flags.Changed("theme") {
		cfg.Theme = themeName
	}
	if flags.Changed("charset") {
		cfg.Rain.Charset = charset
	}
	if flags.Changed("density") {
		cfg.Rain.Density = density
	}
	if flags.Changed("fps") {
		if fps <= 0 {
			return nil, fmt.Errorf("%w: fps %d must be positive", config.ErrInvalid, fps)
		}
		cfg.Timing.FrameInterval = 1 / float64(fps)
	}
	if flags.Changed("seed") {
		cfg.Seed = seed
	}

	cfg.Lines = overlay.Normalize(cfg.Lines)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func loadBio() (*bio.Bio, error) {
	if bioFile == "" {
		return bio.Default(), nil
	}
	return bio.Load(bioFile)
}

// openLog opens path for appending. The screen owns stdout and stderr while
// the animation runs, so without a path the log is discarded.
func openLog(path string) (*log.Logger, func(), error) {
	if path == "" {
		return log.New(io.Discard, "", 0), func() {}, nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log: %w", err)
	}
	return log.New(f, "bioterm ", log.LstdFlags|log.Lmicroseconds), func() { f.Close() }, nil
}
