package prompt

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// ErrInterrupted is returned when the user interrupts a question with Ctrl+C or Esc.
var ErrInterrupted = errors.New("interrupted by user")

var (
	questionStyle = lipgloss.NewStyle().Bold(true)
	answerStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
)

// Terminal asks questions through an interactive text input.
type Terminal struct {
	in  io.Reader
	out io.Writer
}

// NewTerminal returns a prompter running its text input on the terminal connected to in and out.
func NewTerminal(in io.Reader, out io.Writer) *Terminal {
	return &Terminal{in: in, out: out}
}

// Ask shows question with a text input, and returns what was typed when Enter is pressed.
func (t *Terminal) Ask(ctx context.Context, question string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	p := tea.NewProgram(newQuestion(question),
		tea.WithContext(ctx),
		tea.WithInput(t.in),
		tea.WithOutput(t.out),
	)

	m, err := p.Run()
	if ctxErr := ctx.Err(); ctxErr != nil {
		return "", ctxErr
	}
	if err != nil {
		return "", fmt.Errorf("could not ask %q: %v", question, err)
	}

	q, ok := m.(questionModel)
	if !ok {
		return "", fmt.Errorf("unexpected model %T", m)
	}
	if q.interrupted {
		return "", ErrInterrupted
	}

	return q.input.Value(), nil
}

// questionModel is the bubbletea model of a single question.
type questionModel struct {
	question    string
	input       textinput.Model
	answered    bool
	interrupted bool
}

func newQuestion(question string) questionModel {
	input := textinput.New()
	input.Prompt = "> "
	input.Focus()

	return questionModel{
		question: question,
		input:    input,
	}
}

func (m questionModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m questionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if k, ok := msg.(tea.KeyMsg); ok {
		switch k.Type {
		case tea.KeyEnter:
			m.answered = true
			return m, tea.Quit
		case tea.KeyCtrlC, tea.KeyEsc:
			m.interrupted = true
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m questionModel) View() string {
	if m.answered {
		return questionStyle.Render(m.question) + " " + answerStyle.Render(m.input.Value()) + "\n"
	}
	if m.interrupted {
		return questionStyle.Render(m.question) + "\n"
	}
	return questionStyle.Render(m.question) + "\n" + m.input.View() + "\n"
}
