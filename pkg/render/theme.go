package render

import "github.com/charmbracelet/lipgloss"

// Theme defines colors for terminal rendering.
type Theme struct {
	Name    string
	Hash    lipgloss.Style
	Author  lipgloss.Style
	Added   lipgloss.Style
	Removed lipgloss.Style
	Muted   lipgloss.Style
	Bold    lipgloss.Style
}

// DefaultTheme returns a vibrant color theme.
func DefaultTheme() Theme {
	return Theme{
		Name:    "default",
		Hash:    lipgloss.NewStyle().Foreground(lipgloss.Color("214")), // orange
		Author:  lipgloss.NewStyle().Foreground(lipgloss.Color("39")),  // blue
		Added:   lipgloss.NewStyle().Foreground(lipgloss.Color("34")),  // green
		Removed: lipgloss.NewStyle().Foreground(lipgloss.Color("196")), // red
		Muted:   lipgloss.NewStyle().Foreground(lipgloss.Color("242")), // gray
		Bold:    lipgloss.NewStyle().Bold(true),
	}
}

// OrcaTheme returns a muted, professional theme.
func OrcaTheme() Theme {
	return Theme{
		Name:    "orca",
		Hash:    lipgloss.NewStyle().Foreground(lipgloss.Color("179")), // muted gold
		Author:  lipgloss.NewStyle().Foreground(lipgloss.Color("75")),  // pale blue
		Added:   lipgloss.NewStyle().Foreground(lipgloss.Color("108")), // sage green
		Removed: lipgloss.NewStyle().Foreground(lipgloss.Color("167")), // muted red
		Muted:   lipgloss.NewStyle().Foreground(lipgloss.Color("245")), // lighter gray
		Bold:    lipgloss.NewStyle().Bold(true),
	}
}

// MonoTheme returns an uncolored theme for NO_COLOR environments.
func MonoTheme() Theme {
	plain := lipgloss.NewStyle()
	return Theme{
		Name:    "mono",
		Hash:    plain,
		Author:  plain,
		Added:   plain,
		Removed: plain,
		Muted:   plain,
		Bold:    plain,
	}
}

// ThemeByName resolves a theme name, falling back to the default.
func ThemeByName(name string) Theme {
	switch name {
	case "orca":
		return OrcaTheme()
	case "mono":
		return MonoTheme()
	default:
		return DefaultTheme()
	}
}
