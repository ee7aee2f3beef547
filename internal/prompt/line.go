// Package prompt asks questions to the user of a terminal.
package prompt

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
)

// Line asks questions on a writer and reads the answers line by line.
type Line struct {
	in  *bufio.Reader
	out io.Writer

	// pending holds the answer of a read left over by a cancelled Ask.
	pending chan answer
}

type answer struct {
	text string
	err  error
}

// NewLine returns a prompter printing questions to out and reading answers from in.
func NewLine(in io.Reader, out io.Writer) *Line {
	return &Line{
		in:  bufio.NewReader(in),
		out: out,
	}
}

// Ask prints question and returns the next line of input, without its line ending.
// A last line without line ending is returned as is. Reaching the end of the input before any answer is an error.
func (l *Line) Ask(ctx context.Context, question string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	fmt.Fprintf(l.out, "%s ", question)

	if l.pending == nil {
		l.pending = make(chan answer, 1)
		go func(ch chan<- answer) {
			text, err := l.in.ReadString('\n')
			ch <- answer{text: text, err: err}
		}(l.pending)
	}

	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case a := <-l.pending:
		l.pending = nil
		if a.err != nil && !(errors.Is(a.err, io.EOF) && a.text != "") {
			return "", fmt.Errorf("could not read answer: %w", a.err)
		}
		return strings.TrimRight(a.text, "\r\n"), nil
	}
}
