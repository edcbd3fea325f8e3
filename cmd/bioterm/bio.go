package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"github.com/tizzywhizzy/bioterm/internal/bio"
	"github.com/tizzywhizzy/bioterm/internal/config"
	"github.com/tizzywhizzy/bioterm/internal/theme"
	"github.com/tizzywhizzy/bioterm/internal/viewer"
)

func runBio(cmd *cobra.Command, args []string) error {
	b, err := loadBio()
	if err != nil {
		return err
	}
	out, err := b.Render(format)
	if err != nil {
		return err
	}

	if outPath == "" {
		fmt.Fprintln(cmd.OutOrStdout(), out)
		return nil
	}
	if err := bio.WriteFile(outPath, out); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Wrote bio to %s\n", outPath)
	return nil
}

func runView(cmd *cobra.Command, args []string) error {
	b, err := loadBio()
	if err != nil {
		return err
	}
	th, ok := theme.Get(themeName)
	if !ok {
		return fmt.Errorf("%w: unknown theme %q (available: %v)", config.ErrInvalid, themeName, theme.Names())
	}
	return viewer.Run(b, th)
}

func listThemes(cmd *cobra.Command, args []string) error {
	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	for _, th := range theme.Themes {
		swatch := lipgloss.NewStyle().Foreground(th.Head).Render("██") +
			lipgloss.NewStyle().Foreground(th.Trail).Render("██")
		for _, c := range th.Palette {
			swatch += lipgloss.NewStyle().Foreground(c).Render("▌")
		}
		mark := ""
		if th.Name == theme.Default.Name {
			mark = "(default)"
		}
		fmt.Fprintf(w, "%s\t%s\t%s\n", th.Name, swatch, mark)
	}
	return w.Flush()
}

func initConfig(cmd *cobra.Command, args []string) error {
	var path string
	if len(args) > 0 {
		path = args[0]
	} else {
		p, err := config.DefaultPath()
		if err != nil {
			return err
		}
		path = p
	}

	if _, err := os.Stat(path); err == nil && !force {
		return fmt.Errorf("%s already exists (use --force to overwrite)", path)
	}
	if err := config.Save(path, config.DefaultConfig()); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Wrote config to %s\n", path)
	return nil
}
