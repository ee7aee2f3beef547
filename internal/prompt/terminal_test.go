package prompt

import (
	"context"
	"io"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"
)

func TestQuestionModel(t *testing.T) {
	t.Parallel()

	testCases := map[string]struct {
		keys []tea.KeyMsg

		wantAnswered    bool
		wantInterrupted bool
		wantValue       string
	}{
		"Enter answers":              {keys: []tea.KeyMsg{runes("hello"), {Type: tea.KeyEnter}}, wantAnswered: true, wantValue: "hello"},
		"Enter answers empty input":  {keys: []tea.KeyMsg{{Type: tea.KeyEnter}}, wantAnswered: true},
		"Backspace edits the answer": {keys: []tea.KeyMsg{runes("helo"), {Type: tea.KeyBackspace}, runes("lo"), {Type: tea.KeyEnter}}, wantAnswered: true, wantValue: "hello"},
		"Ctrl+C interrupts":          {keys: []tea.KeyMsg{runes("hel"), {Type: tea.KeyCtrlC}}, wantInterrupted: true, wantValue: "hel"},
		"Esc interrupts":             {keys: []tea.KeyMsg{{Type: tea.KeyEsc}}, wantInterrupted: true},
		"Typing does not answer":     {keys: []tea.KeyMsg{runes("hello")}, wantValue: "hello"},
	}

	for name, tc := range testCases {
		tc := tc
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			var m tea.Model = newQuestion("Question?")
			var cmd tea.Cmd
			for _, k := range tc.keys {
				m, cmd = m.Update(k)
			}

			q, ok := m.(questionModel)
			require.True(t, ok, "Update should return a questionModel")
			require.Equal(t, tc.wantAnswered, q.answered, "Unexpected answered state")
			require.Equal(t, tc.wantInterrupted, q.interrupted, "Unexpected interrupted state")
			require.Equal(t, tc.wantValue, q.input.Value(), "Unexpected typed value")
			require.Contains(t, q.View(), "Question?", "View should always show the question")

			if tc.wantAnswered || tc.wantInterrupted {
				require.NotNil(t, cmd, "Answering or interrupting should quit")
				_, quit := cmd().(tea.QuitMsg)
				require.True(t, quit, "Answering or interrupting should quit")
			}
		})
	}
}

func TestTerminalAskWithCancelledContext(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewTerminal(nil, io.Discard).Ask(ctx, "Question?")
	require.ErrorIs(t, err, context.Canceled, "Ask should not start with a cancelled context")
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}
