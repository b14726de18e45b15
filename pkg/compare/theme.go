package compare

import "github.com/charmbracelet/lipgloss"

// Theme defines colors and markers for table rendering.
type Theme struct {
	Name      string
	Bold      lipgloss.Style
	Success   lipgloss.Style
	Warning   lipgloss.Style
	Error     lipgloss.Style
	Muted     lipgloss.Style
	PassIcon  string
	FailIcon  string
	NewMarker string
	RegMarker string
}

// DefaultTheme returns a vibrant color theme.
func DefaultTheme() Theme {
	return Theme{
		Name:      "default",
		Bold:      lipgloss.NewStyle().Bold(true),
		Success:   lipgloss.NewStyle().Foreground(lipgloss.Color("34")),  // green
		Warning:   lipgloss.NewStyle().Foreground(lipgloss.Color("214")), // orange
		Error:     lipgloss.NewStyle().Foreground(lipgloss.Color("196")), // red
		Muted:     lipgloss.NewStyle().Foreground(lipgloss.Color("242")), // gray
		PassIcon:  "✓",
		FailIcon:  "✗",
		NewMarker: "NEW",
		RegMarker: "*** REGRESSION ***",
	}
}

// OrcaTheme returns a muted, professional theme.
func OrcaTheme() Theme {
	return Theme{
		Name:      "orca",
		Bold:      lipgloss.NewStyle().Bold(true),
		Success:   lipgloss.NewStyle().Foreground(lipgloss.Color("108")), // sage green
		Warning:   lipgloss.NewStyle().Foreground(lipgloss.Color("179")), // muted gold
		Error:     lipgloss.NewStyle().Foreground(lipgloss.Color("167")), // muted red
		Muted:     lipgloss.NewStyle().Foreground(lipgloss.Color("245")), // lighter gray
		PassIcon:  "✓",
		FailIcon:  "✗",
		NewMarker: "NEW",
		RegMarker: "*** REGRESSION ***",
	}
}

// MonoTheme returns a monochrome theme for non-TTY and NO_COLOR output.
func MonoTheme() Theme {
	return Theme{
		Name:      "mono",
		Bold:      lipgloss.NewStyle(),
		Success:   lipgloss.NewStyle(),
		Warning:   lipgloss.NewStyle(),
		Error:     lipgloss.NewStyle(),
		Muted:     lipgloss.NewStyle(),
		PassIcon:  "+",
		FailIcon:  "x",
		NewMarker: "NEW",
		RegMarker: "*** REGRESSION ***",
	}
}

// ThemeByName returns a theme by name, defaulting to DefaultTheme.
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
