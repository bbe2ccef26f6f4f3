package core

import (
	"github.com/deepfabric/abacus/pkg/automaton"
	"github.com/deepfabric/abacus/pkg/grammar"
	"github.com/deepfabric/abacus/pkg/util"
)

// Result a computed expression
type Result struct {
	Grammar string
	Left    Number
	Op      Op
	Right   Number
	Value   Number
	// Err is ErrDivideByZero when Value holds the -1 sentinel
	Err   error
	Bytes []byte
}

// Evaluator lexes and evaluates one byte stream. It is not safe for
// concurrent use; every input channel owns its own evaluator.
type Evaluator struct {
	opts      options
	cfg       grammar.Config
	table     *automaton.Table
	formatter Formatter
	session   Session
	phase     automaton.Phase
	results   []Result
	out       outBuffer
	accepted  uint64
	cancelled uint64
}

// NewEvaluator returns an evaluator of the grammar
func NewEvaluator(cfg grammar.Config, opts ...Option) (*Evaluator, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	e := &Evaluator{
		cfg:       cfg,
		formatter: NewFormatter(cfg),
		session:   NewSession(),
	}
	for _, opt := range opts {
		opt(&e.opts)
	}
	e.opts.adjust()

	e.table = e.opts.table
	if e.table == nil {
		table, err := automaton.Build(cfg)
		if err != nil {
			return nil, err
		}
		e.table = table
	}

	e.out.buf = util.AcquireBuf()
	return e, nil
}

// Grammar returns the grammar config
func (e *Evaluator) Grammar() grammar.Config {
	return e.cfg
}

// Table returns the transition table
func (e *Evaluator) Table() *automaton.Table {
	return e.table
}

// Write feeds every byte of p in order. It never fails unless the evaluator is closed.
func (e *Evaluator) Write(p []byte) (int, error) {
	if e.out.buf == nil {
		return 0, ErrClosed
	}

	for _, b := range p {
		e.Feed(b)
	}
	return len(p), nil
}

// Feed advances the automaton by one byte
func (e *Evaluator) Feed(b byte) {
	if e.out.buf == nil {
		return
	}

	sym := grammar.Classify(e.cfg, b)
	if sym == grammar.Ignored {
		if e.cfg.EchoIgnored {
			e.out.echo(b)
		}
		return
	}

	current := e.session.State
	next := e.table.Next(current, sym)
	if next == current {
		return
	}

	e.session.Previous = current
	e.session.Last = b
	e.session.State = e.enter(next, b)
	e.notifyPhase(automaton.PhaseOf(next))
}

// Flush returns the output assembled since the last flush
func (e *Evaluator) Flush() []byte {
	if e.out.buf == nil || e.out.buf.Len() == 0 {
		return nil
	}

	data := append([]byte(nil), e.out.buf.Bytes()...)
	e.out.buf.Reset()
	return data
}

// Buffered returns the number of output bytes waiting for Flush
func (e *Evaluator) Buffered() int {
	if e.out.buf == nil {
		return 0
	}
	return e.out.buf.Len()
}

// TakeResults returns and forgets the results computed since the last call
func (e *Evaluator) TakeResults() []Result {
	results := e.results
	e.results = nil
	return results
}

// Session returns a copy of the session
func (e *Evaluator) Session() Session {
	return e.session
}

// State returns the resting state
func (e *Evaluator) State() automaton.State {
	return e.session.State
}

// Phase returns the phase of the last entered state
func (e *Evaluator) Phase() automaton.Phase {
	return e.phase
}

// Indicator returns the status lines of the current phase
func (e *Evaluator) Indicator() Indicator {
	return IndicatorOf(e.phase)
}

// Stats returns how many expressions were accepted and cancelled
func (e *Evaluator) Stats() (accepted, cancelled uint64) {
	return e.accepted, e.cancelled
}

// Reset drops any capture in progress and pending output
func (e *Evaluator) Reset() {
	e.session = NewSession()
	e.results = nil
	if e.out.buf != nil {
		e.out.buf.Reset()
	}
	e.notifyPhase(automaton.PhaseIdle)
}

// Close releases the output buffer, the evaluator must not be used after
func (e *Evaluator) Close() {
	if e.out.buf != nil {
		util.ReleaseBuf(e.out.buf)
		e.out.buf = nil
	}
}

func (e *Evaluator) notifyPhase(phase automaton.Phase) {
	if phase == e.phase {
		return
	}

	e.phase = phase
	for _, o := range e.opts.observers {
		o.OnPhase(phase, IndicatorOf(phase))
	}
}
