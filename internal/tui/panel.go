package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/MKhiriev/go-intern-verify/models"
)

// resultPanel shows the outcome of the last verification. It is collapsed
// until the first Show and after every Clear.
type resultPanel struct {
	outcome models.Outcome
	visible bool
}

func newResultPanel() *resultPanel {
	return &resultPanel{}
}

// Show renders outcome into the panel. Title and message are sanitised
// before they are stored.
func (p *resultPanel) Show(outcome models.Outcome) error {
	p.outcome = models.Outcome{
		Status:  outcome.Status,
		Title:   sanitizeText(outcome.Title),
		Message: sanitizeText(outcome.Message),
	}
	p.visible = true

	return nil
}

// Clear collapses the panel and drops its content.
func (p *resultPanel) Clear() {
	p.outcome = models.Outcome{}
	p.visible = false
}

func (p *resultPanel) Visible() bool {
	return p.visible
}

// Text is the plain text of the shown result, empty when collapsed.
func (p *resultPanel) Text() string {
	if !p.visible {
		return ""
	}
	return p.outcome.Title + ": " + p.outcome.Message
}

func (p *resultPanel) View() string {
	if !p.visible {
		return ""
	}

	theme := themeFor(p.outcome.Status)
	title := lipgloss.NewStyle().Bold(true).Foreground(theme.accent).
		Render(theme.icon + " " + p.outcome.Title)

	return panelStyle.BorderForeground(theme.accent).
		Render(title + "\n" + p.outcome.Message)
}
