// Package viewer is an interactive bubbletea view of a bio that flips between
// its export formats.
package viewer

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/tizzywhizzy/bioterm/internal/bio"
	"github.com/tizzywhizzy/bioterm/internal/theme"
)

// Formats lists the tabs in display order.
var Formats = []string{"text", "json", "md"}

type Model struct {
	bio    *bio.Bio
	theme  theme.Theme
	tab    int
	offset int
	width  int
	height int
}

func New(b *bio.Bio, th theme.Theme) Model {
	return Model{bio: b, theme: th, width: 80, height: 24}
}

// Run opens the viewer on the alternate screen and blocks until it quits.
func Run(b *bio.Bio, th theme.Theme) error {
	_, err := tea.NewProgram(New(b, th), tea.WithAltScreen()).Run()
	return err
}

func (m Model) Init() tea.Cmd { return nil }

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.offset = min(m.offset, m.maxOffset())
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "tab", "right", "l":
		m.tab = (m.tab + 1) % len(Formats)
		m.offset = 0
	case "shift+tab", "left", "h":
		m.tab = (m.tab + len(Formats) - 1) % len(Formats)
		m.offset = 0
	case "down", "j":
		m.offset = min(m.offset+1, m.maxOffset())
	case "up", "k":
		m.offset = max(m.offset-1, 0)
	}
	return m, nil
}

// Format returns the name of the active tab.
func (m Model) Format() string { return Formats[m.tab] }

// Offset returns the first visible content line.
func (m Model) Offset() int { return m.offset }

func (m Model) content() []string {
	out, err := m.bio.Render(m.Format())
	if err != nil {
		return []string{err.Error()}
	}
	return strings.Split(out, "\n")
}

// pageHeight is the number of content lines that fit between the header,
// frame and key hints.
func (m Model) pageHeight() int {
	return max(m.height-10, 3)
}

func (m Model) maxOffset() int {
	return max(len(m.content())-m.pageHeight(), 0)
}

func (m Model) View() string {
	var b strings.Builder

	title := m.bio.Name
	if title == "" {
		title = "bio"
	}
	b.WriteString(GradientText(title, m.theme.Head, m.theme.Trail) + "\n")

	tabs := make([]string, len(Formats))
	for i, f := range Formats {
		if i == m.tab {
			tabs[i] = activeTab.Render(f)
		} else {
			tabs[i] = inactiveTab.Render(f)
		}
	}
	b.WriteString(strings.Join(tabs, " ") + "\n")
	b.WriteString(Separator(min(m.width-2, 60)) + "\n")

	lines := m.content()
	end := min(m.offset+m.pageHeight(), len(lines))
	b.WriteString(frame.Render(strings.Join(lines[m.offset:end], "\n")) + "\n")
	b.WriteString(keyHint.Render("tab/←→ format   ↑↓ scroll   q quit") + "\n")
	return b.String()
}
