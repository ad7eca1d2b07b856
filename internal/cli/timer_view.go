package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/studytrack/internal/cli/formatter"
	"github.com/alexanderramin/studytrack/internal/domain"
	"github.com/alexanderramin/studytrack/internal/timer"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// timerTickMsg arrives once per second while the view is open.
type timerTickMsg time.Time

type timerKeyMap struct {
	Start key.Binding
	Pause key.Binding
	Reset key.Binding
	Save  key.Binding
	Quit  key.Binding
}

func newTimerKeyMap() timerKeyMap {
	return timerKeyMap{
		Start: key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "start")),
		Pause: key.NewBinding(key.WithKeys("p"), key.WithHelp("p", "pause")),
		Reset: key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "reset")),
		Save:  key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "save session")),
		Quit:  key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// timerModel drives the countdown state machine from bubbletea events. The
// model never records sessions itself; when the user saves, it quits and the
// command layer runs the save form on a plain terminal.
type timerModel struct {
	countdown *timer.Countdown
	keys      timerKeyMap
	completed bool
	save      bool
}

func newTimerModel() *timerModel {
	return &timerModel{
		countdown: timer.New(),
		keys:      newTimerKeyMap(),
	}
}

func runTimerView(a *App) (*timerModel, error) {
	p := tea.NewProgram(newTimerModel())
	final, err := p.Run()
	if err != nil {
		return nil, fmt.Errorf("running timer: %w", err)
	}
	return final.(*timerModel), nil
}

func (m *timerModel) Init() tea.Cmd {
	return timerTick()
}

func timerTick() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return timerTickMsg(t)
	})
}

func (m *timerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case timerTickMsg:
		if m.countdown.Tick() {
			m.completed = true
		}
		return m, timerTick()

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Start):
			m.completed = false
			m.countdown.Start(time.Now())
		case key.Matches(msg, m.keys.Pause):
			m.countdown.Pause()
		case key.Matches(msg, m.keys.Reset):
			m.countdown.Reset()
		case key.Matches(msg, m.keys.Save):
			if m.countdown.SessionStart != nil {
				m.save = true
				return m, tea.Quit
			}
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		}
	}

	return m, nil
}

var clockStyle = lipgloss.NewStyle().
	Foreground(formatter.ColorFg).
	Bold(true).
	Padding(1, 4)

func (m *timerModel) View() string {
	var b strings.Builder

	b.WriteString(clockStyle.Render(m.countdown.Clock()))
	b.WriteString("\n")
	b.WriteString("  " + m.stateLine())
	b.WriteString("\n\n")
	b.WriteString("  " + m.helpLine())
	b.WriteString("\n")

	return b.String()
}

func (m *timerModel) stateLine() string {
	if m.completed {
		return formatter.StyleGreen.Render("Session complete! Press enter to save it.")
	}
	switch m.countdown.State {
	case domain.TimerRunning:
		return formatter.StyleGreen.Render("● Running")
	case domain.TimerPaused:
		return formatter.StyleYellow.Render("○ Paused")
	default:
		if m.countdown.SessionStart != nil {
			return formatter.Dim("Idle — session in progress, enter saves it")
		}
		return formatter.Dim("Idle")
	}
}

func (m *timerModel) helpLine() string {
	bindings := []key.Binding{m.keys.Start, m.keys.Pause, m.keys.Reset, m.keys.Save, m.keys.Quit}
	parts := make([]string, 0, len(bindings))
	for _, b := range bindings {
		h := b.Help()
		parts = append(parts, fmt.Sprintf("%s %s",
			formatter.Bold(h.Key), formatter.Dim(h.Desc)))
	}
	return strings.Join(parts, formatter.Dim("  ·  "))
}
