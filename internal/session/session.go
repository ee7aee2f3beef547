package session

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/canonical/android-strings/internal/resources"
	"github.com/ubuntu/decorate"
)

// Questions asked to the user.
const (
	ActionQuestion   = "Do you want to add (a), remove (s), or edit (e) a string? [a/s/e]:"
	NameQuestion     = "Enter the name (ID) of the string:"
	ValueQuestion    = "Enter the value of the string:"
	RemoveQuestion   = "Enter the name (ID) of the string to remove:"
	EditQuestion     = "Enter the name (ID) of the string to edit:"
	NewValueQuestion = "Enter the new value for the string:"
	ContinueQuestion = "Do you want to add another string? (y/N):"
)

// Prompter asks a question to the user and returns the answer.
type Prompter interface {
	Ask(ctx context.Context, question string) (string, error)
}

// Session is an interactive editing session over a collection of documents.
type Session struct {
	collection *resources.Collection
	prompter   Prompter
	out        io.Writer
}

// New returns a session editing c, asking questions with p and printing status lines to out.
func New(c *resources.Collection, p Prompter, out io.Writer) *Session {
	return &Session{
		collection: c,
		prompter:   p,
		out:        out,
	}
}

// Run asks for commands and applies them until the user declines to continue, then saves every document.
// Nothing is saved if asking fails or ctx is cancelled.
func (s *Session) Run(ctx context.Context) (err error) {
	defer decorate.OnError(&err, "editing session aborted, no change saved")

	for {
		cmd, err := s.readCommand(ctx)
		if err != nil {
			return err
		}

		s.Apply(cmd)

		answer, err := s.prompter.Ask(ctx, ContinueQuestion)
		if err != nil {
			return err
		}
		if !wantsMore(answer) {
			break
		}
	}

	return s.collection.Save(s.out)
}

// Apply dispatches cmd and prints one status line per document.
// When removing or editing a string that no document holds, a summary line is printed too.
func (s *Session) Apply(cmd Command) []Result {
	results := Dispatch(s.collection, cmd)
	for _, r := range results {
		fmt.Fprintln(s.out, r)
	}

	if cmd.Action != Add && !Found(results) {
		fmt.Fprintf(s.out, "String '%s' not found in any file.\n", resources.SanitizeName(cmd.Name))
	}

	return results
}

func (s *Session) readCommand(ctx context.Context) (cmd Command, err error) {
	answer, err := s.prompter.Ask(ctx, ActionQuestion)
	if err != nil {
		return cmd, err
	}
	cmd.Action = ParseAction(answer)

	nameQuestion, valueQuestion := NameQuestion, ValueQuestion
	switch cmd.Action {
	case Remove:
		nameQuestion, valueQuestion = RemoveQuestion, ""
	case Edit:
		nameQuestion, valueQuestion = EditQuestion, NewValueQuestion
	}

	if cmd.Name, err = s.prompter.Ask(ctx, nameQuestion); err != nil {
		return cmd, err
	}

	if valueQuestion == "" {
		return cmd, nil
	}
	if cmd.Value, err = s.prompter.Ask(ctx, valueQuestion); err != nil {
		return cmd, err
	}

	return cmd, nil
}

// wantsMore returns true if answer is yes, in any case.
func wantsMore(answer string) bool {
	switch strings.ToLower(strings.TrimSpace(answer)) {
	case "y", "yes":
		return true
	default:
		return false
	}
}
