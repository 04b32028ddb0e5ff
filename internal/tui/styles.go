package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/MKhiriev/go-intern-verify/models"
)

var (
	appStyle      = lipgloss.NewStyle().Padding(1, 2)
	titleStyle    = lipgloss.NewStyle().Bold(true)
	helpStyle     = lipgloss.NewStyle().Faint(true)
	errorStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("203"))
	statusStyle   = lipgloss.NewStyle().Italic(true)
	buttonStyle   = lipgloss.NewStyle().Bold(true).Padding(0, 2).Border(lipgloss.NormalBorder())
	disabledStyle = buttonStyle.Faint(true)

	panelStyle = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 2).Width(56)
)

// panelTheme is the look of the result panel for one outcome status.
type panelTheme struct {
	icon   string
	accent lipgloss.Color
}

var panelThemes = map[models.Status]panelTheme{
	models.StatusVerified:     {icon: "✔", accent: lipgloss.Color("42")},
	models.StatusPending:      {icon: "…", accent: lipgloss.Color("214")},
	models.StatusNotFound:     {icon: "✘", accent: lipgloss.Color("203")},
	models.StatusNetworkError: {icon: "⚠", accent: lipgloss.Color("244")},
}

// themeFor falls back to the network error look for unknown statuses.
func themeFor(status models.Status) panelTheme {
	if theme, ok := panelThemes[status]; ok {
		return theme
	}
	return panelThemes[models.StatusNetworkError]
}
