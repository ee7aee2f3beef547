package editor

import (
	"io"

	"github.com/canonical/android-strings/internal/session"
)

func WithPrompter(p session.Prompter) func(*options) {
	return func(o *options) {
		o.prompter = p
	}
}

func WithOutput(w io.Writer) func(*options) {
	return func(o *options) {
		o.out = w
	}
}
