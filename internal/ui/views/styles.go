package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"tilde/internal/config"
	"tilde/internal/terminal"
)

// Styles styles the text printed to stdout and stderr around a session,
// after the editor screen is gone.
type Styles struct {
	Farewell lipgloss.Style
	Error    lipgloss.Style
	Usage    lipgloss.Style
	Help     lipgloss.Style
}

// NewStyles creates styles from the configured theme colors
func NewStyles(theme config.ThemeSettings) *Styles {
	return &Styles{
		Farewell: lipgloss.NewStyle().Foreground(color(theme.Message)),
		Error:    lipgloss.NewStyle().Bold(true).Foreground(color(theme.Error)),
		Usage:    lipgloss.NewStyle().Bold(true),
		Help: lipgloss.NewStyle().
			Faint(true).
			MarginTop(1),
	}
}

func color(name string) lipgloss.TerminalColor {
	if hex := terminal.HexColor(name); hex != "" {
		return lipgloss.Color(hex)
	}
	return lipgloss.NoColor{}
}

// RenderFarewell renders the quit message for stdout
func (s *Styles) RenderFarewell() string {
	return s.Farewell.Render(QuitMessage)
}

// RenderError renders a fatal error for stderr
func (s *Styles) RenderError(err error) string {
	return s.Error.Render(fmt.Sprintf("tilde: %v", err))
}

// RenderUsage renders the command line synopsis followed by the key help
func (s *Styles) RenderUsage(program, keyHelp string) string {
	var b strings.Builder
	b.WriteString(s.Usage.Render(fmt.Sprintf("usage: %s [file]", program)))
	b.WriteString("\n")
	b.WriteString(s.Help.Render(keyHelp))
	return b.String()
}
