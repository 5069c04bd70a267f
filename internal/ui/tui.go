// Package ui is the full-screen terminal front end for the task menu.
package ui

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/metalagman/taskstack/internal/shell"
	"github.com/rs/zerolog/log"
)

var (
	titleStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	keyStyle     = lipgloss.NewStyle().Bold(true)
	headingStyle = lipgloss.NewStyle().Underline(true)
	okStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	errStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	helpStyle    = lipgloss.NewStyle().Faint(true)
)

type resultMsg struct {
	text string
	err  error
}

// Model is the bubbletea model. The zero value is not usable; use New.
type Model struct {
	ctx     context.Context
	session *shell.Session

	action  *shell.Action
	answers []string
	input   textinput.Model
	// running is set while an action's command is in flight; keys other
	// than ctrl+c are dropped until its resultMsg arrives.
	running bool

	message  string
	failed   bool
	quitting bool
}

// New creates a model bound to session.
func New(ctx context.Context, session *shell.Session) Model {
	in := textinput.New()
	in.CharLimit = 256
	return Model{ctx: ctx, session: session, input: in}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case resultMsg:
		m.running = false
		m.action = nil
		m.answers = nil
		if msg.err != nil {
			m.message, m.failed = shell.Describe(msg.err), true
		} else {
			m.message, m.failed = strings.TrimRight(msg.text, "\n"), false
		}
		return m, nil
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			m.quitting = true
			return m, tea.Quit
		}
		if m.running {
			return m, nil
		}
		if m.action == nil {
			return m.selectAction(msg.String())
		}
		return m.answer(msg)
	}
	if m.action != nil {
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m Model) selectAction(key string) (tea.Model, tea.Cmd) {
	if key == shell.ExitKey || key == "q" {
		m.quitting = true
		return m, tea.Quit
	}
	action, ok := m.session.Lookup(key)
	if !ok {
		m.message, m.failed = "Invalid option.", true
		return m, nil
	}
	log.Debug().Str("action", action.Label).Msg("tui action selected")
	m.action = &action
	m.answers = nil
	m.message = ""
	if len(action.Prompts) == 0 {
		m.running = true
		return m, m.run()
	}
	cmd := m.prompt()
	return m, cmd
}

func (m Model) answer(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		m.action = nil
		m.answers = nil
		m.input.Blur()
		return m, nil
	case tea.KeyEnter:
		value := m.input.Value()
		current := m.action.Prompts[len(m.answers)]
		if current.Check != nil {
			if err := current.Check(m.ctx, value); err != nil {
				m.input.Blur()
				m.running = true
				return m, func() tea.Msg { return resultMsg{err: err} }
			}
		}
		m.answers = append(m.answers, value)
		if len(m.answers) < len(m.action.Prompts) {
			cmd := m.prompt()
			return m, cmd
		}
		m.input.Blur()
		m.running = true
		return m, m.run()
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *Model) prompt() tea.Cmd {
	m.input.Reset()
	m.input.Prompt = m.action.Prompts[len(m.answers)].Label
	return m.input.Focus()
}

func (m Model) run() tea.Cmd {
	action := *m.action
	answers := append([]string(nil), m.answers...)
	ctx := m.ctx
	return func() tea.Msg {
		text, err := action.Run(ctx, answers)
		return resultMsg{text: text, err: err}
	}
}

// View implements tea.Model.
func (m Model) View() string {
	if m.quitting {
		return "Exiting...\n"
	}
	var b strings.Builder
	b.WriteString(titleStyle.Render("TASK MANAGEMENT SYSTEM") + "\n\n")
	for _, a := range m.session.Actions() {
		fmt.Fprintf(&b, "%s  %s\n", keyStyle.Render(a.Key), a.Label)
	}
	fmt.Fprintf(&b, "%s  %s\n\n", keyStyle.Render(shell.ExitKey), "Exit")

	if m.action != nil {
		b.WriteString(headingStyle.Render(m.action.Heading) + "\n")
		for i, ans := range m.answers {
			fmt.Fprintf(&b, "%s%s\n", m.action.Prompts[i].Label, ans)
		}
		if len(m.action.Prompts) > 0 {
			b.WriteString(m.input.View() + "\n")
		}
		b.WriteString(helpStyle.Render("enter: confirm • esc: back") + "\n")
		return b.String()
	}
	if m.message != "" {
		style := okStyle
		if m.failed {
			style = errStyle
		}
		b.WriteString(style.Render(m.message) + "\n\n")
	}
	b.WriteString(helpStyle.Render("press a number • q: quit") + "\n")
	return b.String()
}

// Run starts the program on the given terminal streams and blocks until the
// user quits.
func Run(ctx context.Context, session *shell.Session, in io.Reader, out io.Writer) error {
	p := tea.NewProgram(New(ctx, session), tea.WithContext(ctx), tea.WithInput(in), tea.WithOutput(out))
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run tui: %w", err)
	}
	return nil
}
