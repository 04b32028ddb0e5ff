package tui

import (
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
)

const (
	submitLabel  = "Verify"
	loadingLabel = "Verifying..."
)

// submitButton is the form's submit control. While busy it is disabled and
// shows a spinner with a loading label.
type submitButton struct {
	busy        bool
	transitions int
	spinner     spinner.Model
}

func newSubmitButton() *submitButton {
	s := spinner.New()
	s.Spinner = spinner.Dot

	return &submitButton{spinner: s}
}

// SetBusy switches the button between its idle and busy look. Repeating the
// current state is a no-op.
func (b *submitButton) SetBusy(busy bool) {
	if b.busy == busy {
		return
	}
	b.busy = busy
	b.transitions++
}

// Enabled reports whether a press of the button should submit the form.
func (b *submitButton) Enabled() bool {
	return !b.busy
}

// Transitions is the number of actual state changes since creation.
func (b *submitButton) Transitions() int {
	return b.transitions
}

func (b *submitButton) Tick() tea.Cmd {
	return b.spinner.Tick
}

func (b *submitButton) Update(msg spinner.TickMsg) tea.Cmd {
	if !b.busy {
		return nil
	}

	var cmd tea.Cmd
	b.spinner, cmd = b.spinner.Update(msg)
	return cmd
}

func (b *submitButton) View() string {
	if b.busy {
		return disabledStyle.Render(b.spinner.View() + " " + loadingLabel)
	}
	return buttonStyle.Render(submitLabel)
}
