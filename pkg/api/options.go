package api

import (
	"time"

	"github.com/deepfabric/abacus/pkg/grammar"
)

type options struct {
	tcpAddr    string
	httpAddr   string
	grammar    grammar.Config
	sessionTTL time.Duration
	sweepSpec  string
	maxInput   int
}

func (opts *options) adjust() {
	if opts.grammar.Name == "" {
		opts.grammar = grammar.Integer()
	}

	if opts.sweepSpec == "" {
		opts.sweepSpec = "@every 30s"
	}

	if opts.maxInput <= 0 {
		opts.maxInput = 64 * 1024
	}
}

// Option server option
type Option func(*options)

// WithTCPAddr serve terminals over tcp, disabled if empty
func WithTCPAddr(value string) Option {
	return func(opts *options) {
		opts.tcpAddr = value
	}
}

// WithHTTPAddr serve the http api, disabled if empty
func WithHTTPAddr(value string) Option {
	return func(opts *options) {
		opts.httpAddr = value
	}
}

// WithGrammar set the grammar of tcp terminals and the default of http sessions
func WithGrammar(value grammar.Config) Option {
	return func(opts *options) {
		opts.grammar = value
	}
}

// WithSessionTTL evict http sessions idle longer than value, 0 never evicts
func WithSessionTTL(value time.Duration) Option {
	return func(opts *options) {
		opts.sessionTTL = value
	}
}

// WithSweepSpec set the cron spec of the session sweep
func WithSweepSpec(value string) Option {
	return func(opts *options) {
		opts.sweepSpec = value
	}
}

// WithMaxInput set the max body size of an input request
func WithMaxInput(value int) Option {
	return func(opts *options) {
		opts.maxInput = value
	}
}
