// Package uploadui renders upload/generation progress with Bubble Tea,
// fed by tracker events.
package uploadui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"quizdeck/internal/upload"
)

// Options configures the upload UI model.
type Options struct {
	NoColor bool
}

// Model shows a spinner, a percentage and the backend's status message
// until the tracked session reaches a terminal state.
type Model struct {
	handle  *upload.Handle
	spin    spinner.Model
	percent float64
	message string
	done    bool
	failed  bool
	err     error
	noColor bool
}

// NewModel constructs an upload UI over a tracker handle.
func NewModel(handle *upload.Handle, opts Options) Model {
	spin := spinner.New()
	spin.Spinner = spinner.Dot
	if !opts.NoColor {
		spin.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("69"))
	}
	return Model{
		handle:  handle,
		spin:    spin,
		message: "Starting upload...",
		noColor: opts.NoColor,
	}
}

// Err returns the terminal error, if the upload failed.
func (m Model) Err() error {
	return m.err
}

// Message returns the last status message.
func (m Model) Message() string {
	return m.message
}

// eventMsg wraps a tracker event for Bubble Tea.
type eventMsg struct {
	event upload.Event
	ok    bool
}

// Init starts the spinner and waits for the first tracker event.
func (m Model) Init() tea.Cmd {
	return tea.Batch(m.spin.Tick, waitForEvent(m.handle))
}

// waitForEvent blocks until the tracker delivers an event.
func waitForEvent(handle *upload.Handle) tea.Cmd {
	return func() tea.Msg {
		event, ok := <-handle.Events()
		return eventMsg{event: event, ok: ok}
	}
}

// Update consumes tracker events, spinner frames and key presses.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch typed := msg.(type) {
	case eventMsg:
		if !typed.ok {
			return m, tea.Quit
		}
		switch typed.event.Kind {
		case upload.EventProgress:
			m.percent = typed.event.Percent
			if typed.event.Message != "" {
				m.message = typed.event.Message
			}
			return m, waitForEvent(m.handle)
		case upload.EventDone:
			m.done = true
			m.percent = 100
			if typed.event.Message != "" {
				m.message = typed.event.Message
			}
			return m, tea.Quit
		case upload.EventFailed:
			m.failed = true
			m.err = typed.event.Err
			m.message = typed.event.Message
			return m, tea.Quit
		}
		return m, waitForEvent(m.handle)
	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(typed)
		return m, cmd
	case tea.KeyMsg:
		switch typed.String() {
		case "ctrl+c", "q", "esc":
			// Leaving the view stops polling; the server job keeps
			// running without us.
			m.handle.Stop()
			return m, tea.Quit
		}
	}
	return m, nil
}

// View renders the current upload state.
func (m Model) View() string {
	switch {
	case m.done:
		return fmt.Sprintf("✓ %s\n", m.message)
	case m.failed:
		return fmt.Sprintf("✗ %s\n", m.message)
	default:
		return fmt.Sprintf("%s %3.0f%% %s  (q to cancel)\n", m.spin.View(), m.percent, m.message)
	}
}
