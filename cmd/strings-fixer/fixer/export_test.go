package fixer

import "io"

func WithOutput(w io.Writer) func(*options) {
	return func(o *options) {
		o.out = w
	}
}
