package core

import (
	"bytes"

	"github.com/deepfabric/abacus/pkg/automaton"
	"github.com/deepfabric/abacus/pkg/grammar"
)

type outBuffer struct {
	buf *bytes.Buffer
}

func (o outBuffer) echo(b byte) {
	o.buf.WriteByte(b)
}

func (o outBuffer) append(data []byte) {
	o.buf.Write(data)
}

// enter runs the action of the entered state and returns the state to rest in
func (e *Evaluator) enter(s automaton.State, b byte) automaton.State {
	switch s {
	case automaton.Open:
		e.session.Reset()
		e.out.echo(b)
	case automaton.Sign1, automaton.Sign2:
		e.out.echo(b)
		e.session.operand(s == automaton.Sign2).Negative = true
	case automaton.Int1, automaton.Int2:
		e.out.echo(b)
		o := e.session.operand(s == automaton.Int2)
		o.begin()
		o.digit(b - '0')
	case automaton.Int1More, automaton.Int2More:
		e.out.echo(b)
		e.session.operand(s == automaton.Int2More).digit(b - '0')
		if s == automaton.Int2More {
			return automaton.Int2
		}
		return automaton.Int1
	case automaton.Point1, automaton.Point2:
		e.out.echo(b)
		e.session.operand(s == automaton.Point2).point()
	case automaton.Frac1, automaton.Frac1More, automaton.Frac2, automaton.Frac2More:
		e.out.echo(b)
		second := s == automaton.Frac2 || s == automaton.Frac2More
		e.session.operand(second).fraction(b - '0')
		if second {
			return automaton.Frac2
		}
		return automaton.Frac1
	case automaton.Operator:
		e.out.echo(b)
		e.session.Op = decodeOp(b)
		e.session.Second.reset()
	case automaton.Closed:
		e.out.echo(b)
	case automaton.Accept:
		e.accept()
		return automaton.Idle
	case automaton.Cancel:
		from := e.session.Previous
		e.session.Reset()
		e.cancelled++
		for _, o := range e.opts.observers {
			o.OnCancel(from)
		}
		return automaton.Idle
	}

	return s
}

func (e *Evaluator) accept() {
	result := e.compute()
	result.Bytes = e.formatter.Format(result.Value)
	e.out.append(result.Bytes)
	e.accepted++

	if len(e.results) >= e.opts.keep && e.opts.keep > 0 {
		e.results = append(e.results[:0], e.results[1:]...)
	}
	if e.opts.keep > 0 {
		e.results = append(e.results, result)
	}

	for _, o := range e.opts.observers {
		o.OnResult(result)
	}
	e.session.Reset()
}

func (e *Evaluator) compute() Result {
	domain := e.cfg.Domain
	result := Result{
		Grammar: e.cfg.Name,
		Left:    e.session.First.Value(domain),
		Op:      e.session.Op,
		Right:   e.session.Second.Value(domain),
	}

	if domain == grammar.IntegerDomain {
		a, b := result.Left.Int, result.Right.Int
		var v int64
		switch result.Op {
		case Add:
			v = a + b
		case Subtract:
			v = a - b
		case Multiply:
			v = a * b
		case Divide:
			if b == 0 {
				v = -1
				result.Err = ErrDivideByZero
			} else {
				v = a / b
			}
		}
		result.Value = IntNumber(v)
		return result
	}

	a, b := result.Left.Real, result.Right.Real
	var v float64
	switch result.Op {
	case Add:
		v = a + b
	case Subtract:
		v = a - b
	case Multiply:
		v = a * b
	case Divide:
		if b == 0 {
			v = -1
			result.Err = ErrDivideByZero
		} else {
			v = a / b
		}
	}
	result.Value = RealNumber(v)
	return result
}
