package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-intern-verify/internal/form"
	"github.com/MKhiriev/go-intern-verify/internal/logger"
	"github.com/MKhiriev/go-intern-verify/internal/service"
	"github.com/MKhiriev/go-intern-verify/models"
)

const statusTTL = 2 * time.Second

// VerifyModel is the Bubble Tea model of the verification screen: one
// identifier input, the submit button and the result panel. The form
// lifecycle itself lives in [form.Orchestrator]; the model only turns key
// presses into submissions and settlements into orchestrator calls.
type VerifyModel struct {
	ctx  context.Context
	form *form.Orchestrator

	input  textinput.Model
	button *submitButton
	panel  *resultPanel

	buildInfo     models.AppBuildInfo
	showBuildInfo bool

	// copyText writes to the system clipboard.
	copyText func(string) error

	status string
	errMsg string
	quit   bool

	logger *logger.Logger
}

// NewVerifyModel creates the verification screen. The orchestrator is built
// around the model's own button and panel.
func NewVerifyModel(ctx context.Context, verifier service.VerificationService, buildInfo models.AppBuildInfo, requestTimeout time.Duration, log *logger.Logger) *VerifyModel {
	input := textinput.New()
	input.Placeholder = "VOC-123"
	input.Prompt = "Identifier › "
	input.CharLimit = 64
	input.Width = 40
	input.Focus()

	button := newSubmitButton()
	panel := newResultPanel()

	return &VerifyModel{
		ctx: ctx,
		form: form.NewOrchestrator(verifier, button, panel,
			form.WithRequestTimeout(requestTimeout),
			form.WithLogger(log),
		),
		input:     input,
		button:    button,
		panel:     panel,
		buildInfo: buildInfo,
		copyText:  clipboard.WriteAll,
		logger:    log,
	}
}

// Init implements [tea.Model].
func (m *VerifyModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements [tea.Model]. Handled messages:
//   - enter                  submits the identifier unless a check is running.
//   - [verificationSettledMsg] settles the running check.
//   - ctrl+y                 copies the shown result to the clipboard.
//   - f1 / esc               toggle the build info window.
//   - ctrl+c                 quits.
//
// Everything else goes to the identifier input.
func (m *VerifyModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case verificationSettledMsg:
		return m, m.settle(msg.settlement)
	case spinner.TickMsg:
		return m, m.button.Update(msg)
	case clearStatusMsg:
		m.status = ""
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *VerifyModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.quit):
		m.quit = true
		return m, tea.Quit
	case key.Matches(msg, keys.about):
		m.showBuildInfo = !m.showBuildInfo
		return m, nil
	case m.showBuildInfo:
		if key.Matches(msg, keys.esc) {
			m.showBuildInfo = false
		}
		return m, nil
	case key.Matches(msg, keys.submit):
		return m, m.submit()
	case key.Matches(msg, keys.copy):
		return m, m.copyResult()
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *VerifyModel) submit() tea.Cmd {
	if !m.button.Enabled() {
		return nil
	}

	dispatch, ok := m.form.Submit(m.input.Value())
	if !ok {
		return nil
	}

	m.errMsg = ""
	return tea.Batch(m.button.Tick(), cmdVerify(m.ctx, dispatch))
}

func (m *VerifyModel) settle(settlement form.Settlement) tea.Cmd {
	if !settlement.Resolved() {
		m.logger.Warn().
			Str("identifier", settlement.Identifier).
			Str("reason", humanizeServerUnavailableError(settlement.Err)).
			Msg("verification failed")
	}

	if err := m.form.Settle(settlement); err != nil {
		m.errMsg = fmt.Sprintf("cannot show result: %v", err)
	}

	return nil
}

func (m *VerifyModel) copyResult() tea.Cmd {
	text := m.panel.Text()
	if text == "" {
		m.status = "Nothing to copy"
		return cmdClearStatus()
	}
	if err := m.copyText(text); err != nil {
		m.errMsg = fmt.Sprintf("copy failed: %v", err)
		return nil
	}

	m.status = "Copied"
	return cmdClearStatus()
}

// View implements [tea.Model].
func (m *VerifyModel) View() string {
	if m.showBuildInfo {
		return renderBuildInfoWindow(m.buildInfo)
	}

	var b strings.Builder
	b.WriteString(m.input.View())
	b.WriteString("\n\n")
	b.WriteString(m.button.View())

	if m.panel.Visible() {
		b.WriteString("\n\n")
		b.WriteString(m.panel.View())
	}
	if m.status != "" {
		b.WriteString("\n\n")
		b.WriteString(statusStyle.Render(m.status))
	}
	if m.errMsg != "" {
		b.WriteString("\n\n")
		b.WriteString(errorStyle.Render("Error: " + m.errMsg))
	}

	return renderPage("INTERNSHIP VERIFICATION", b.String(), "enter: verify │ ctrl+y: copy result │ f1: about")
}

// cmdVerify runs the dispatched call off the UI goroutine.
func cmdVerify(ctx context.Context, dispatch form.Dispatch) tea.Cmd {
	return func() tea.Msg {
		return verificationSettledMsg{settlement: dispatch.Run(ctx)}
	}
}

func cmdClearStatus() tea.Cmd {
	return tea.Tick(statusTTL, func(time.Time) tea.Msg {
		return clearStatusMsg{}
	})
}
