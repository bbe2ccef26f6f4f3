package terminal

import (
	"github.com/deepfabric/abacus/pkg/core"
)

const (
	// AttentionPrompt diagnostic prompt of the push button
	AttentionPrompt = "\r\nPUSH BUTTON PRESSED"
)

type options struct {
	observers []core.Observer
	prompt    []byte
	samples   int
}

func (opts *options) adjust() {
	if len(opts.prompt) == 0 {
		opts.prompt = []byte(AttentionPrompt)
	}

	if opts.samples <= 0 {
		opts.samples = 3
	}
}

// Option terminal option
type Option func(*options)

// WithObserver add an observer to the evaluator of the terminal
func WithObserver(value core.Observer) Option {
	return func(opts *options) {
		opts.observers = append(opts.observers, value)
	}
}

// WithPrompt set the attention prompt
func WithPrompt(value string) Option {
	return func(opts *options) {
		opts.prompt = []byte(value)
	}
}

// WithDebounceSamples set how many consecutive pressed samples make a press
func WithDebounceSamples(value int) Option {
	return func(opts *options) {
		opts.samples = value
	}
}
