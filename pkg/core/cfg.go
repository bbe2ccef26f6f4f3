package core

import (
	"github.com/deepfabric/abacus/pkg/automaton"
)

type options struct {
	table     *automaton.Table
	observers []Observer
	keep      int
}

func (opts *options) adjust() {
	if opts.keep == 0 {
		opts.keep = 16
	}
}

// Option evaluator option
type Option func(*options)

// WithTable use a prebuilt table, it must be built from the same grammar
func WithTable(value *automaton.Table) Option {
	return func(opts *options) {
		opts.table = value
	}
}

// WithObserver add an observer
func WithObserver(value Observer) Option {
	return func(opts *options) {
		opts.observers = append(opts.observers, value)
	}
}

// WithKeepResults set how many results are kept until TakeResults is called
func WithKeepResults(value int) Option {
	return func(opts *options) {
		opts.keep = value
	}
}
