package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Theme bundles styles, symbols and the border used by panels and tables.
// All UI helpers pull from `current`.
type Theme struct {
	Name                                      string
	Title, Muted, Accent, Success, Error      lipgloss.Style
	Pending, Selected, Header, Focused, Label lipgloss.Style
	Border                                    lipgloss.Border
	BorderColor                               lipgloss.TerminalColor
	SymOK, SymFail, SymUpcoming, SymPast      string
}

var current = themeFor("classic")

// SetTheme switches the theme by name: classic (default), neon or mono.
func SetTheme(name string) { current = themeFor(name) }

// Current is the active theme.
func Current() Theme { return current }

func themeFor(name string) Theme {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "neon":
		return Theme{
			Name:        "neon",
			Title:       lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("201")),
			Muted:       lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
			Accent:      lipgloss.NewStyle().Foreground(lipgloss.Color("51")),
			Success:     lipgloss.NewStyle().Foreground(lipgloss.Color("46")),
			Error:       lipgloss.NewStyle().Foreground(lipgloss.Color("197")).Bold(true),
			Pending:     lipgloss.NewStyle().Foreground(lipgloss.Color("226")),
			Selected:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("0")).Background(lipgloss.Color("51")),
			Header:      lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("201")),
			Focused:     lipgloss.NewStyle().Foreground(lipgloss.Color("51")),
			Label:       lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
			Border:      lipgloss.RoundedBorder(),
			BorderColor: lipgloss.Color("201"),
			SymOK:       "✔", SymFail: "✖", SymUpcoming: "◆", SymPast: "◇",
		}
	case "mono":
		plain := lipgloss.NewStyle()
		return Theme{
			Name:  "mono",
			Title: plain, Muted: plain, Accent: plain, Success: plain, Error: plain,
			Pending: plain, Selected: plain.Reverse(true), Header: plain, Focused: plain, Label: plain,
			Border:      lipgloss.ASCIIBorder(),
			BorderColor: lipgloss.NoColor{},
			SymOK:       "ok", SymFail: "x", SymUpcoming: "+", SymPast: "-",
		}
	default: // classic
		return Theme{
			Name:        "classic",
			Title:       lipgloss.NewStyle().Bold(true),
			Muted:       lipgloss.NewStyle().Faint(true),
			Accent:      lipgloss.NewStyle().Foreground(lipgloss.Color("12")),
			Success:     lipgloss.NewStyle().Foreground(lipgloss.Color("42")),
			Error:       lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),
			Pending:     lipgloss.NewStyle().Foreground(lipgloss.Color("214")),
			Selected:    lipgloss.NewStyle().Bold(true).Reverse(true),
			Header:      lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12")),
			Focused:     lipgloss.NewStyle().Foreground(lipgloss.Color("12")),
			Label:       lipgloss.NewStyle().Faint(true),
			Border:      lipgloss.RoundedBorder(),
			BorderColor: lipgloss.Color("8"),
			SymOK:       "✔", SymFail: "✖", SymUpcoming: "•", SymPast: "·",
		}
	}
}
