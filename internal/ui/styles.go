package ui

import (
	"github.com/charmbracelet/lipgloss"

	"smartexpense/internal/session"
	"smartexpense/internal/view"
)

// Styles carries every lipgloss style the program renders with. Two fixed
// palettes exist, selected by the persisted theme preference.
type Styles struct {
	Title     lipgloss.Style
	Greeting  lipgloss.Style
	Chrome    lipgloss.Style
	Help      lipgloss.Style
	Card      lipgloss.Style
	CardLabel lipgloss.Style
	CardValue lipgloss.Style
	Panel     lipgloss.Style

	TableHeader   lipgloss.Style
	TableRow      lipgloss.Style
	TableSelected lipgloss.Style

	ToastSuccess lipgloss.Style
	ToastError   lipgloss.Style

	BarNormal  lipgloss.Style
	BarWarning lipgloss.Style
	BarDanger  lipgloss.Style
	BarEmpty   lipgloss.Style

	Input      lipgloss.Style
	InputFocus lipgloss.Style
	Faint      lipgloss.Style

	Categories map[string]lipgloss.Style
}

func newStyles(theme string) Styles {
	if theme == session.ThemeDark {
		return darkStyles()
	}
	return lightStyles()
}

func lightStyles() Styles {
	s := baseStyles()
	s.Title = s.Title.Foreground(lipgloss.Color("#5b21b6"))
	s.Greeting = s.Greeting.Foreground(lipgloss.Color("#1f2937"))
	s.Chrome = s.Chrome.Foreground(lipgloss.Color("#6b7280"))
	s.Card = s.Card.BorderForeground(lipgloss.Color("#d1d5db"))
	s.Panel = s.Panel.BorderForeground(lipgloss.Color("#d1d5db"))
	s.TableSelected = s.TableSelected.Background(lipgloss.Color("#ede9fe")).Foreground(lipgloss.Color("#1f2937"))
	return s
}

func darkStyles() Styles {
	s := baseStyles()
	s.Title = s.Title.Foreground(lipgloss.Color("#a78bfa"))
	s.Greeting = s.Greeting.Foreground(lipgloss.Color("#e5e7eb"))
	s.Chrome = s.Chrome.Foreground(lipgloss.Color("#9ca3af"))
	s.Card = s.Card.BorderForeground(lipgloss.Color("#4b5563"))
	s.Panel = s.Panel.BorderForeground(lipgloss.Color("#4b5563"))
	s.TableSelected = s.TableSelected.Background(lipgloss.Color("#4c1d95")).Foreground(lipgloss.Color("#f9fafb"))
	return s
}

func baseStyles() Styles {
	return Styles{
		Title:     lipgloss.NewStyle().Bold(true),
		Greeting:  lipgloss.NewStyle().Bold(true),
		Chrome:    lipgloss.NewStyle(),
		Help:      lipgloss.NewStyle().Foreground(lipgloss.Color("#828282")),
		Card:      lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 2),
		CardLabel: lipgloss.NewStyle().Foreground(lipgloss.Color("#828282")),
		CardValue: lipgloss.NewStyle().Bold(true),
		Panel:     lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(1, 2),

		TableHeader:   lipgloss.NewStyle().Bold(true).Underline(true),
		TableRow:      lipgloss.NewStyle(),
		TableSelected: lipgloss.NewStyle().Bold(true),

		ToastSuccess: lipgloss.NewStyle().Foreground(lipgloss.Color("#00aa00")).Bold(true),
		ToastError:   lipgloss.NewStyle().Foreground(lipgloss.Color("#dd2222")).Bold(true),

		BarNormal:  lipgloss.NewStyle().Foreground(lipgloss.Color("#10b981")),
		BarWarning: lipgloss.NewStyle().Foreground(lipgloss.Color("#f59e0b")),
		BarDanger:  lipgloss.NewStyle().Foreground(lipgloss.Color("#ef4444")),
		BarEmpty:   lipgloss.NewStyle().Foreground(lipgloss.Color("#4b5563")),

		Input:      lipgloss.NewStyle(),
		InputFocus: lipgloss.NewStyle().Foreground(lipgloss.Color("#a78bfa")),
		Faint:      lipgloss.NewStyle().Faint(true),

		// the same accents the original dashboard used per category
		Categories: map[string]lipgloss.Style{
			"Food":     lipgloss.NewStyle().Foreground(lipgloss.Color("#f59e0b")),
			"Travel":   lipgloss.NewStyle().Foreground(lipgloss.Color("#3b82f6")),
			"Shopping": lipgloss.NewStyle().Foreground(lipgloss.Color("#ec4899")),
			"Bills":    lipgloss.NewStyle().Foreground(lipgloss.Color("#8b5cf6")),
			"Other":    lipgloss.NewStyle().Foreground(lipgloss.Color("#6b7280")),
		},
	}
}

func (s Styles) barStyle(tier view.Tier) lipgloss.Style {
	switch tier {
	case view.TierDanger:
		return s.BarDanger
	case view.TierWarning:
		return s.BarWarning
	}
	return s.BarNormal
}
