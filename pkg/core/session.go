package core

import (
	"github.com/deepfabric/abacus/pkg/automaton"
	"github.com/deepfabric/abacus/pkg/grammar"
)

// Op binary operator of the expression
type Op int

const (
	// Add +
	Add Op = iota
	// Subtract -
	Subtract
	// Multiply *
	Multiply
	// Divide /
	Divide
)

func (op Op) String() string {
	switch op {
	case Subtract:
		return "-"
	case Multiply:
		return "*"
	case Divide:
		return "/"
	}
	return "+"
}

func decodeOp(b byte) Op {
	switch b {
	case '-':
		return Subtract
	case '*':
		return Multiply
	case '/':
		return Divide
	}
	return Add
}

// Operand accumulator of a partially parsed operand
type Operand struct {
	Int      int64
	Real     float64
	Negative bool
	// Place weight of the next fractional digit
	Place float64
}

func newOperand() Operand {
	return Operand{Place: 1}
}

func (o *Operand) reset() {
	*o = newOperand()
}

func (o *Operand) begin() {
	o.Int = 0
	o.Real = 0
}

func (o *Operand) digit(d byte) {
	o.Int = o.Int*10 + int64(d)
	o.Real = o.Real*10 + float64(d)
}

func (o *Operand) point() {
	o.Place = 0.1
}

func (o *Operand) fraction(d byte) {
	o.Real += float64(d) * o.Place
	o.Place *= 0.1
}

// Value returns the signed operand value in the domain
func (o Operand) Value(domain grammar.Domain) Number {
	n := Number{Domain: domain, Int: o.Int, Real: o.Real}
	if o.Negative {
		n.Int = -n.Int
		n.Real = -n.Real
	}
	return n
}

// Session in-progress parse state of one input channel
type Session struct {
	State    automaton.State
	Previous automaton.State
	First    Operand
	Second   Operand
	Op       Op
	Last     byte
}

// NewSession returns a fresh session
func NewSession() Session {
	return Session{
		State:  automaton.Idle,
		First:  newOperand(),
		Second: newOperand(),
		Op:     Add,
	}
}

// Reset discards both operands and the operator
func (s *Session) Reset() {
	s.First.reset()
	s.Second.reset()
	s.Op = Add
}

// Fresh returns true if the accumulators hold no captured data
func (s Session) Fresh() bool {
	fresh := NewSession()
	return s.First == fresh.First &&
		s.Second == fresh.Second &&
		s.Op == fresh.Op
}

func (s *Session) operand(second bool) *Operand {
	if second {
		return &s.Second
	}
	return &s.First
}
