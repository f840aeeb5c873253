package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/wippyai/variant/memtrack"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1)

	valueStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#98FB98"))

	typeStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#87CEEB"))

	resultStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#90EE90"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666"))
)

const logLines = 12

type playModel struct {
	session *session
	input   textinput.Model
	log     []string
}

func newPlayModel(s *session) *playModel {
	ti := textinput.New()
	ti.Placeholder = "assign a int 5"
	ti.Prompt = "> "
	ti.Width = 60
	ti.Focus()

	m := &playModel{session: s, input: ti}
	s.Events.Subscribe(func(e Event) {
		line := "event: " + e.Op + " " + e.Target
		if e.Detail != "" {
			line += " (" + e.Detail + ")"
		}
		m.push(helpStyle.Render(line))
	})
	return m
}

func (m *playModel) push(line string) {
	m.log = append(m.log, line)
	if len(m.log) > logLines {
		m.log = m.log[len(m.log)-logLines:]
	}
}

func (m *playModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m *playModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit

		case "enter":
			line := strings.TrimSpace(m.input.Value())
			m.input.Reset()
			if line == "" {
				return m, nil
			}
			if line == "quit" || line == "q" {
				return m, tea.Quit
			}
			out, err := m.session.Apply(line)
			if err != nil {
				m.push(errorStyle.Render(err.Error()))
			} else {
				m.push(resultStyle.Render(out))
			}
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *playModel) View() string {
	var b strings.Builder

	l := m.session.reg.Layout()
	b.WriteString(titleStyle.Render("Variant Playground"))
	b.WriteString(" ")
	b.WriteString(helpStyle.Render(fmt.Sprintf("%d alternatives • size %dB • align %dB",
		m.session.reg.Len(), l.Size, l.Align)))
	b.WriteString("\n\n")

	for _, name := range m.session.names {
		v := m.session.vals[name]
		b.WriteString("  " + name + ": ")
		if v.IsEmpty() {
			b.WriteString(helpStyle.Render(v.String()))
		} else {
			b.WriteString(typeStyle.Render(v.TypeName()))
			b.WriteString(" ")
			b.WriteString(valueStyle.Render(v.String()))
		}
		b.WriteString("\n")
	}
	b.WriteString(fmt.Sprintf("  live payloads: %d\n\n", m.session.tracker.Live()))

	for _, line := range m.log {
		b.WriteString("  " + line + "\n")
	}
	if len(m.log) > 0 {
		b.WriteString("\n")
	}

	b.WriteString(m.input.View())
	b.WriteString("\n\n")
	b.WriteString(helpStyle.Render("assign/as/is • copy/move/swap • reset/show/layout/leaks • help • quit"))
	return b.String()
}

func runInteractive(tr *memtrack.Tracker) error {
	s := newSession(tr)
	p := tea.NewProgram(newPlayModel(s), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return err
	}
	return finish(s)
}
