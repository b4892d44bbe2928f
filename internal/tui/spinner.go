package tui

import (
	"errors"
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// ErrInterrupted is returned when the user aborts an interactive component.
var ErrInterrupted = errors.New("interrupted")

var runProgram = func(m tea.Model) (tea.Model, error) {
	return tea.NewProgram(m).Run()
}

var spinnerLabelStyle = lipgloss.NewStyle().
	Foreground(lipgloss.Color("214")).
	Bold(true)

type revealMsg struct{}

type spinnerModel struct {
	spinner     spinner.Model
	label       string
	duration    time.Duration
	done        bool
	interrupted bool
}

func newSpinnerModel(label string, duration time.Duration) *spinnerModel {
	return &spinnerModel{
		spinner: spinner.New(
			spinner.WithSpinner(spinner.Dot),
			spinner.WithStyle(lipgloss.NewStyle().Foreground(lipgloss.Color("62"))),
		),
		label:    label,
		duration: duration,
	}
}

func (m *spinnerModel) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, tea.Tick(m.duration, func(time.Time) tea.Msg {
		return revealMsg{}
	}))
}

func (m *spinnerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case revealMsg:
		m.done = true
		return m, tea.Quit
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q", "esc":
			m.interrupted = true
			return m, tea.Quit
		}
	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m *spinnerModel) View() string {
	if m.done || m.interrupted {
		return ""
	}
	return fmt.Sprintf("%s %s\n", m.spinner.View(), spinnerLabelStyle.Render(m.label))
}

// Spin shows an animated spinner with label for duration.
// A non-positive duration returns immediately.
func Spin(label string, duration time.Duration) error {
	if duration <= 0 {
		return nil
	}

	finalModel, err := runProgram(newSpinnerModel(label, duration))
	if err != nil {
		return fmt.Errorf("spinner failed: %w", err)
	}
	if typed, ok := finalModel.(*spinnerModel); ok && typed.interrupted {
		return ErrInterrupted
	}
	return nil
}
