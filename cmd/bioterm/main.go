package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/tizzywhizzy/bioterm/internal/bio"
	"github.com/tizzywhizzy/bioterm/internal/config"
)

var (
	// Shared
	configFile string
	bioFile    string
	themeName  string
	// Screensaver
	repeat    bool
	autoplay  bool
	wordDelay float64
	charDelay float64
	lines     []string
	preset    string
	charset   string
	density   float64
	fps       int
	seed      int64
	logFile   string
	// Export
	format  string
	outPath string
	force   bool
)

func main() {
	root := newRootCmd()
	if err := root.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, "bioterm:", err)
		os.Exit(exitCode(err))
	}
}

// exitCode maps a command error to the process status. Bad configuration
// and bad arguments get 2; everything else, including an unusable terminal,
// gets 1.
func exitCode(err error) int {
	switch {
	case err == nil:
		return 0
	case errors.Is(err, config.ErrInvalid), errors.Is(err, bio.ErrUnknownFormat):
		return 2
	}
	return 1
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "bioterm",
		Short:         "personal bio toolbox and matrix-rain screensaver",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          runRain,
	}
	root.PersistentFlags().StringVar(&configFile, "config", "", "config file path (yaml)")
	root.PersistentFlags().StringVar(&bioFile, "file", "", "bio file (yaml, json or toml)")
	root.PersistentFlags().StringVar(&themeName, "theme", config.DefaultTheme, "colour theme")
	addRainFlags(root)

	rainCmd := &cobra.Command{
		Use:   "rain",
		Short: "run the screensaver",
		Args:  cobra.NoArgs,
		RunE:  runRain,
	}
	addRainFlags(rainCmd)

	bioCmd := &cobra.Command{
		Use:   "bio",
		Short: "print or export the bio",
		Args:  cobra.NoArgs,
		RunE:  runBio,
	}
	bioCmd.Flags().StringVarP(&format, "format", "f", "text", "output format: text, json or md")
	bioCmd.Flags().StringVarP(&outPath, "out", "o", "", "write to file instead of stdout")

	viewCmd := &cobra.Command{
		Use:   "view",
		Short: "browse the bio interactively",
		Args:  cobra.NoArgs,
		RunE:  runView,
	}

	themesCmd := &cobra.Command{
		Use:   "themes",
		Short: "list colour themes",
		Args:  cobra.NoArgs,
		RunE:  listThemes,
	}

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list screensaver presets",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			for _, p := range config.ListPresets() {
				fmt.Fprintln(cmd.OutOrStdout(), p)
			}
		},
	}

	snapshotCmd := &cobra.Command{
		Use:   "snapshot",
		Short: "render one screensaver frame to SVG",
		Args:  cobra.NoArgs,
		RunE:  runSnapshot,
	}
	addRainFlags(snapshotCmd)
	snapshotCmd.Flags().StringVarP(&outPath, "out", "o", "", "write to file instead of stdout")
	snapshotCmd.Flags().IntVar(&snapWidth, "width", 80, "frame width in cells")
	snapshotCmd.Flags().IntVar(&snapHeight, "height", 24, "frame height in cells")
	snapshotCmd.Flags().IntVar(&snapFrames, "frames", 60, "frames to run before capturing")

	configCmd := &cobra.Command{
		Use:   "config",
		Short: "manage the config file",
	}
	initCmd := &cobra.Command{
		Use:   "init [path]",
		Short: "write the default config",
		Args:  cobra.MaximumNArgs(1),
		RunE:  initConfig,
	}
	initCmd.Flags().BoolVar(&force, "force", false, "overwrite an existing file")
	configCmd.AddCommand(initCmd)

	root.AddCommand(rainCmd, bioCmd, viewCmd, snapshotCmd, themesCmd, presetsCmd, configCmd)
	return root
}

func addRainFlags(cmd *cobra.Command) {
	cmd.Flags().BoolVar(&repeat, "repeat", false, "retype the bio every frame")
	cmd.Flags().BoolVar(&autoplay, "autoplay", false, "start typing immediately")
	cmd.Flags().Float64Var(&wordDelay, "word-delay", config.DefaultWordDelay, "pause after each word (seconds)")
	cmd.Flags().Float64Var(&charDelay, "char-delay", config.DefaultCharDelay, "pause after each character (seconds)")
	cmd.Flags().StringArrayVar(&lines, "lines", nil, "overlay line (repeatable)")
	cmd.Flags().StringVar(&preset, "preset", "", "use preset configuration")
	cmd.Flags().StringVar(&charset, "charset", config.DefaultCharset, "rain glyphs: a set name or literal characters")
	cmd.Flags().Float64Var(&density, "density", config.DefaultDensity, "fraction of screen columns with rain")
	cmd.Flags().IntVar(&fps, "fps", 0, "frame rate (0 keeps the configured interval)")
	cmd.Flags().Int64Var(&seed, "seed", 0, "random seed (0 picks one)")
	cmd.Flags().StringVar(&logFile, "log", "", "append debug log to file")
}
