package tui

import (
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/sadopc/gpacalc/internal/gpa"
)

// palette is one set of theme colors.
type palette struct {
	primary   lipgloss.Color
	secondary lipgloss.Color
	muted     lipgloss.Color
	success   lipgloss.Color
	warning   lipgloss.Color
	danger    lipgloss.Color
	bg        lipgloss.Color
	fg        lipgloss.Color
	subtle    lipgloss.Color
	highlight lipgloss.Color
}

var darkPalette = palette{
	primary:   lipgloss.Color("#7AA2F7"),
	secondary: lipgloss.Color("#BB9AF7"),
	muted:     lipgloss.Color("#666666"),
	success:   lipgloss.Color("#2ECC71"),
	warning:   lipgloss.Color("#F39C12"),
	danger:    lipgloss.Color("#E74C3C"),
	bg:        lipgloss.Color("#1A1B26"),
	fg:        lipgloss.Color("#C0CAF5"),
	subtle:    lipgloss.Color("#414868"),
	highlight: lipgloss.Color("#7DCFFF"),
}

var lightPalette = palette{
	primary:   lipgloss.Color("#2563EB"),
	secondary: lipgloss.Color("#7C3AED"),
	muted:     lipgloss.Color("#6B7280"),
	success:   lipgloss.Color("#16A34A"),
	warning:   lipgloss.Color("#CA8A04"),
	danger:    lipgloss.Color("#DC2626"),
	bg:        lipgloss.Color("#F9FAFB"),
	fg:        lipgloss.Color("#111827"),
	subtle:    lipgloss.Color("#D1D5DB"),
	highlight: lipgloss.Color("#1D4ED8"),
}

// theme holds every style the views use, built from one palette.
type theme struct {
	palette
	dark bool

	// Tabs
	activeTabStyle   lipgloss.Style
	inactiveTabStyle lipgloss.Style

	// Panels
	panelStyle       lipgloss.Style
	activePanelStyle lipgloss.Style

	// Text
	titleStyle     lipgloss.Style
	subtitleStyle  lipgloss.Style
	bigNumberStyle lipgloss.Style
	successStyle   lipgloss.Style
	warningStyle   lipgloss.Style
	errorStyle     lipgloss.Style
	mutedStyle     lipgloss.Style
	highlightStyle lipgloss.Style

	// Header/footer
	headerStyle lipgloss.Style
	footerStyle lipgloss.Style

	// List items
	selectedItemStyle lipgloss.Style
	normalItemStyle   lipgloss.Style

	appStyle lipgloss.Style
}

func newTheme(dark bool) theme {
	p := lightPalette
	if dark {
		p = darkPalette
	}
	return theme{
		palette: p,
		dark:    dark,

		activeTabStyle: lipgloss.NewStyle().
			Bold(true).
			Foreground(p.primary).
			Border(lipgloss.NormalBorder(), false, false, true, false).
			BorderForeground(p.primary).
			Padding(0, 2),
		inactiveTabStyle: lipgloss.NewStyle().
			Foreground(p.muted).
			Padding(0, 2),

		panelStyle: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(p.subtle).
			Padding(1, 2),
		activePanelStyle: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(p.primary).
			Padding(1, 2),

		titleStyle:     lipgloss.NewStyle().Bold(true).Foreground(p.fg),
		subtitleStyle:  lipgloss.NewStyle().Foreground(p.muted),
		bigNumberStyle: lipgloss.NewStyle().Bold(true),
		successStyle:   lipgloss.NewStyle().Foreground(p.success),
		warningStyle:   lipgloss.NewStyle().Foreground(p.warning),
		errorStyle:     lipgloss.NewStyle().Foreground(p.danger),
		mutedStyle:     lipgloss.NewStyle().Foreground(p.muted),
		highlightStyle: lipgloss.NewStyle().Foreground(p.highlight),

		headerStyle: lipgloss.NewStyle().Padding(0, 1),
		footerStyle: lipgloss.NewStyle().Foreground(p.muted).Padding(0, 1),

		selectedItemStyle: lipgloss.NewStyle().Foreground(p.primary).Bold(true),
		normalItemStyle:   lipgloss.NewStyle().Foreground(p.fg),

		appStyle: lipgloss.NewStyle().Background(p.bg).Foreground(p.fg),
	}
}

// tierStyle colours an average: green high, yellow mid, red low.
func (t theme) tierStyle(tier gpa.Tier) lipgloss.Style {
	switch tier {
	case gpa.TierHigh:
		return t.successStyle
	case gpa.TierMid:
		return t.warningStyle
	default:
		return t.errorStyle
	}
}

func formTheme(dark bool) *huh.Theme {
	if dark {
		return huh.ThemeDracula()
	}
	return huh.ThemeBase()
}
