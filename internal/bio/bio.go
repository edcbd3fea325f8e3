package bio

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/x/ansi"
)

const wrapWidth = 72

// ErrUnknownFormat is returned for an output format other than text, json or md.
var ErrUnknownFormat = errors.New("bio: unknown format")

// Formats lists the accepted output formats.
var Formats = []string{"text", "json", "md"}

type Contact struct {
	Email  string `json:"email" yaml:"email" toml:"email"`
	GitHub string `json:"github" yaml:"github" toml:"github"`
}

// Bio is a structured personal profile.
type Bio struct {
	Name     string   `json:"name" yaml:"name" toml:"name"`
	Title    string   `json:"title" yaml:"title" toml:"title"`
	Location string   `json:"location" yaml:"location" toml:"location"`
	About    string   `json:"about" yaml:"about" toml:"about"`
	Skills   []string `json:"skills" yaml:"skills" toml:"skills"`
	Hobbies  []string `json:"hobbies" yaml:"hobbies" toml:"hobbies"`
	Contact  Contact  `json:"contact" yaml:"contact" toml:"contact"`
	Since    int      `json:"since" yaml:"since" toml:"since"`
}

func Default() *Bio {
	return &Bio{
		Name:     "Tizzy Whizzy",
		Title:    "Cybersecurity Instructor & Developer",
		Location: "Nigeria",
		About: "I teach practical cybersecurity with a focus on hands-on tooling, " +
			"automation, and Termux-based workflows. I enjoy making learning " +
			"playful and accessible for others.",
		Skills:  []string{"Python", "Bash/Termux", "Git/GitHub", "Security Tools", "Scripting"},
		Hobbies: []string{"Teaching", "Building tools", "Tinkering with terminals"},
		Contact: Contact{GitHub: "https://github.com/your-username"},
		Since:   2018,
	}
}

// Text returns the human-friendly plain text rendering.
func (b *Bio) Text() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%s\n", b.Name)
	fmt.Fprintf(&sb, "%s — since %d\n", b.Title, b.Since)
	fmt.Fprintf(&sb, "Location: %s\n\n", b.Location)
	sb.WriteString("About\n")
	sb.WriteString(indent(b.About, 2))
	sb.WriteString("\n\nSkills\n  ")
	sb.WriteString(strings.Join(b.Skills, ", "))
	sb.WriteString("\n\nHobbies\n  ")
	sb.WriteString(strings.Join(b.Hobbies, ", "))
	sb.WriteString("\n\n")
	sb.WriteString(b.contactBlock())
	return strings.TrimSpace(sb.String())
}

func (b *Bio) contactBlock() string {
	var lines []string
	if b.Contact.Email != "" {
		lines = append(lines, "Email: "+b.Contact.Email)
	}
	if b.Contact.GitHub != "" {
		lines = append(lines, "GitHub: "+b.Contact.GitHub)
	}
	if len(lines) == 0 {
		return "Contact: (not provided)"
	}
	return strings.Join(lines, "\n")
}

// JSON returns the bio as two-space indented JSON.
func (b *Bio) JSON() (string, error) {
	out := *b
	if out.Skills == nil {
		out.Skills = []string{}
	}
	if out.Hobbies == nil {
		out.Hobbies = []string{}
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		return "", err
	}
	return unescapeSeparators(strings.TrimRight(buf.String(), "\n")), nil
}

// unescapeSeparators turns the \u2028 and \u2029 escapes that encoding/json
// always emits back into raw characters. Escaped backslashes are skipped so a
// literal `\u2028` in a value survives.
func unescapeSeparators(s string) string {
	if !strings.Contains(s, `\u202`) {
		return s
	}
	var sb strings.Builder
	for i := 0; i < len(s); i++ {
		if s[i] != '\\' || i+1 >= len(s) {
			sb.WriteByte(s[i])
			continue
		}
		switch {
		case strings.HasPrefix(s[i:], `\u2028`):
			sb.WriteRune('\u2028')
			i += 5
		case strings.HasPrefix(s[i:], `\u2029`):
			sb.WriteRune('\u2029')
			i += 5
		default:
			sb.WriteString(s[i : i+2])
			i++
		}
	}
	return sb.String()
}

// Markdown returns a rendering suitable for a README or profile page.
func (b *Bio) Markdown() string {
	md := []string{
		"# " + b.Name,
		"**" + b.Title + "**  ",
		"*Location:* " + b.Location + "  ",
		"",
		"## About",
		b.About,
		"",
		"## Skills",
		strings.Join(b.Skills, ", "),
		"",
		"## Hobbies",
		strings.Join(b.Hobbies, ", "),
		"",
	}
	if b.Contact.GitHub != "" || b.Contact.Email != "" {
		md = append(md, "## Contact")
		if b.Contact.GitHub != "" {
			md = append(md, "- GitHub: `"+b.Contact.GitHub+"`")
		}
		if b.Contact.Email != "" {
			md = append(md, "- Email: "+b.Contact.Email)
		}
	}
	return strings.Join(md, "\n")
}

// Render returns the bio in the named format.
func (b *Bio) Render(format string) (string, error) {
	switch strings.ToLower(format) {
	case "text", "":
		return b.Text(), nil
	case "json":
		return b.JSON()
	case "md", "markdown":
		return b.Markdown(), nil
	}
	return "", fmt.Errorf("%w: %q (choose from %s)", ErrUnknownFormat, format, strings.Join(Formats, ", "))
}

// OverlayLines condenses the bio into the short block typed by the
// screensaver.
func (b *Bio) OverlayLines() []string {
	lines := []string{
		"Hi, I'm " + b.Name,
		b.Title,
	}
	if b.Location != "" {
		lines = append(lines, "Based in "+b.Location)
	}
	if len(b.Skills) > 0 {
		lines = append(lines, "Skills: "+strings.Join(b.Skills, ", "))
	}
	if b.Contact.GitHub != "" {
		lines = append(lines, b.Contact.GitHub)
	}
	return lines
}

// WriteFile writes rendered output to path.
func WriteFile(path, content string) error {
	return os.WriteFile(path, []byte(content), 0644)
}

func indent(text string, n int) string {
	pad := strings.Repeat(" ", n)
	wrapped := ansi.Wrap(strings.Join(strings.Fields(text), " "), wrapWidth, "")
	lines := strings.Split(wrapped, "\n")
	for i, l := range lines {
		lines[i] = pad + strings.TrimRight(l, " ")
	}
	return strings.Join(lines, "\n")
}
