package core

import (
	"testing"

	"github.com/deepfabric/abacus/pkg/automaton"
	"github.com/deepfabric/abacus/pkg/grammar"
	"github.com/stretchr/testify/assert"
)

func newTestEvaluator(t *testing.T, cfg grammar.Config, opts ...Option) *Evaluator {
	e, err := NewEvaluator(cfg, opts...)
	assert.NoError(t, err, "newTestEvaluator failed")
	return e
}

func eval(t *testing.T, cfg grammar.Config, input string) string {
	e := newTestEvaluator(t, cfg)
	defer e.Close()

	n, err := e.Write([]byte(input))
	assert.NoError(t, err, "eval failed")
	assert.Equal(t, len(input), n, "eval failed")
	return string(e.Flush())
}

func TestIntegerExpressions(t *testing.T) {
	cases := []struct {
		input  string
		output string
	}{
		{"(12+3)=", "(12+3)=15\r"},
		{"(7-20)=", "(7-20)=-13\r"},
		{"(6*7)=", "(6*7)=42\r"},
		{"(7/2)=", "(7/2)=3\r"},
		{"(123+1)=", "(123+1)=124\r"},
		{"(0+0)=", "(0+0)=0\r"},
	}

	for _, c := range cases {
		assert.Equal(t, c.output, eval(t, grammar.Integer(), c.input), "TestIntegerExpressions failed: %s", c.input)
	}
}

func TestDivideByZero(t *testing.T) {
	e := newTestEvaluator(t, grammar.Integer())
	defer e.Close()

	e.Write([]byte("(10/0)="))
	assert.Equal(t, "(10/0)=-1\r", string(e.Flush()), "TestDivideByZero failed")

	results := e.TakeResults()
	assert.Equal(t, 1, len(results), "TestDivideByZero failed")
	assert.Equal(t, ErrDivideByZero, results[0].Err, "TestDivideByZero failed")
	assert.Equal(t, int64(-1), results[0].Value.Int, "TestDivideByZero failed")

	e.Write([]byte("(10/5)="))
	results = e.TakeResults()
	assert.Equal(t, 1, len(results), "TestDivideByZero failed")
	assert.NoError(t, results[0].Err, "TestDivideByZero failed")
	assert.Equal(t, int64(2), results[0].Value.Int, "TestDivideByZero failed")
}

func TestSignedInteger(t *testing.T) {
	assert.Equal(t, "(-7*-6)=42\r", eval(t, grammar.SignedInteger(), "(-7*-6)="), "TestSignedInteger failed")
	assert.Equal(t, "(-7--6)=-1\r", eval(t, grammar.SignedInteger(), "(-7--6)="), "TestSignedInteger failed")
	assert.Equal(t, "(5-3)=2\r", eval(t, grammar.SignedInteger(), "(5-3)="), "TestSignedInteger failed")
	assert.Equal(t, "(-9/2)=-4\r", eval(t, grammar.SignedInteger(), "(-9/2)="), "TestSignedInteger failed")
}

func TestSignedDecimal(t *testing.T) {
	cases := []struct {
		input  string
		output string
	}{
		{"(-3.5+2.25)=", "-1.250000\r"},
		{"(1/4)=", "0.250000\r"},
		{"(0.5*-0)=", "0.000000\r"},
		{"(1/0)=", "-1.000000\r"},
		{"(10.125-0.125)=", "10.000000\r"},
	}

	for _, c := range cases {
		out := eval(t, grammar.SignedDecimal(), c.input)
		assert.Equal(t, c.input+c.output, out, "TestSignedDecimal failed: %s", c.input)
	}
}

func TestFractionDigits(t *testing.T) {
	out := eval(t, grammar.SignedDecimal(grammar.WithFractionDigits(2)), "(1/3)=")
	assert.Equal(t, "(1/3)=0.33\r", out, "TestFractionDigits failed")
}

func TestIgnoredBytesAreTransparent(t *testing.T) {
	noisy := eval(t, grammar.Integer(), "x(1 2a+ b3)\n=")
	assert.Equal(t, "(12+3)=15\r", noisy, "TestIgnoredBytesAreTransparent failed")

	echoed := eval(t, grammar.Integer(grammar.WithEchoIgnored(true)), "(1 +2)=")
	assert.Equal(t, "(1 +2)=3\r", echoed, "TestIgnoredBytesAreTransparent failed")
}

func TestChunking(t *testing.T) {
	input := "(12+34)=(9*9)=(100/7)="
	expect := eval(t, grammar.Integer(), input)

	for size := 1; size <= len(input); size++ {
		e := newTestEvaluator(t, grammar.Integer())
		var out []byte
		for i := 0; i < len(input); i += size {
			end := i + size
			if end > len(input) {
				end = len(input)
			}
			e.Write([]byte(input[i:end]))
			out = append(out, e.Flush()...)
		}
		e.Close()
		assert.Equal(t, expect, string(out), "TestChunking failed: chunk %d", size)
	}
}

func TestCancelResetsSession(t *testing.T) {
	e := newTestEvaluator(t, grammar.Integer())
	defer e.Close()

	e.Write([]byte("(12+=")) // strict: '=' before ')' cancels
	assert.Equal(t, automaton.Idle, e.State(), "TestCancelResetsSession failed")
	assert.True(t, e.Session().Fresh(), "TestCancelResetsSession failed")
	_, cancelled := e.Stats()
	assert.Equal(t, uint64(1), cancelled, "TestCancelResetsSession failed")

	e.Flush()
	e.Write([]byte("(2+2)="))
	assert.Equal(t, "(2+2)=4\r", string(e.Flush()), "TestCancelResetsSession failed")
}

func TestUnexpectedBytesMidCapture(t *testing.T) {
	// '(' and a second operator have no transition inside the second operand
	out := eval(t, grammar.Integer(), "(5+(1+1)=")
	assert.Equal(t, "(5+11)=16\r", out, "TestUnexpectedBytesMidCapture failed")
}

func TestLenient(t *testing.T) {
	cfg := grammar.Integer(grammar.WithStrict(false))
	assert.Equal(t, "(1+2)=3\r", eval(t, cfg, "()1=+2)="), "TestLenient failed")
}

func TestCancelKeys(t *testing.T) {
	cfg := grammar.Integer(grammar.WithCancelKeys(true))
	e := newTestEvaluator(t, cfg)
	defer e.Close()

	e.Write([]byte("(12\x1b+3)="))
	assert.Equal(t, 0, len(e.TakeResults()), "TestCancelKeys failed")
	_, cancelled := e.Stats()
	assert.Equal(t, uint64(1), cancelled, "TestCancelKeys failed")

	e.Write([]byte("(1\x08"))
	assert.Equal(t, automaton.Idle, e.State(), "TestCancelKeys failed")
}

func TestMoreStatesRest(t *testing.T) {
	e := newTestEvaluator(t, grammar.SignedDecimal())
	defer e.Close()

	e.Write([]byte("(123"))
	assert.Equal(t, automaton.Int1, e.State(), "TestMoreStatesRest failed")
	assert.Equal(t, int64(123), e.Session().First.Int, "TestMoreStatesRest failed")

	e.Write([]byte(".25"))
	assert.Equal(t, automaton.Frac1, e.State(), "TestMoreStatesRest failed")

	e.Write([]byte("*40"))
	assert.Equal(t, automaton.Int2, e.State(), "TestMoreStatesRest failed")
	assert.Equal(t, Multiply, e.Session().Op, "TestMoreStatesRest failed")
}

func TestObserver(t *testing.T) {
	var phases []automaton.Phase
	var indicators []Indicator
	var results []Result
	var cancels []automaton.State

	e := newTestEvaluator(t, grammar.Integer(), WithObserver(ObserverFuncs{
		Phase: func(phase automaton.Phase, value Indicator) {
			phases = append(phases, phase)
			indicators = append(indicators, value)
		},
		Result: func(result Result) {
			results = append(results, result)
		},
		Cancel: func(from automaton.State) {
			cancels = append(cancels, from)
		},
	}))
	defer e.Close()

	e.Write([]byte("(1+2)="))
	assert.Equal(t, []automaton.Phase{
		automaton.PhaseFirst,
		automaton.PhaseOperator,
		automaton.PhaseSecond,
		automaton.PhaseClosed,
		automaton.PhaseComputing,
	}, phases, "TestObserver failed")
	assert.Equal(t, Indicator{true, true, true}, indicators[len(indicators)-1], "TestObserver failed")
	assert.Equal(t, Indicator{true, true, true}, e.Indicator(), "TestObserver failed")
	assert.Equal(t, 1, len(results), "TestObserver failed")
	assert.Equal(t, "=3\r", string(results[0].Bytes), "TestObserver failed")

	e.Write([]byte("(1)"))
	assert.Equal(t, []automaton.State{automaton.Int1}, cancels, "TestObserver failed")
	assert.Equal(t, automaton.PhaseIdle, e.Phase(), "TestObserver failed")
}

func TestKeepResults(t *testing.T) {
	e := newTestEvaluator(t, grammar.Integer(), WithKeepResults(2))
	defer e.Close()

	e.Write([]byte("(1+1)=(2+2)=(3+3)="))
	results := e.TakeResults()
	assert.Equal(t, 2, len(results), "TestKeepResults failed")
	assert.Equal(t, int64(4), results[0].Value.Int, "TestKeepResults failed")
	assert.Equal(t, int64(6), results[1].Value.Int, "TestKeepResults failed")
	assert.Equal(t, 0, len(e.TakeResults()), "TestKeepResults failed")

	accepted, _ := e.Stats()
	assert.Equal(t, uint64(3), accepted, "TestKeepResults failed")
}

func TestClose(t *testing.T) {
	e := newTestEvaluator(t, grammar.Integer())
	e.Close()

	_, err := e.Write([]byte("(1+1)="))
	assert.Equal(t, ErrClosed, err, "TestClose failed")
	assert.Nil(t, e.Flush(), "TestClose failed")
	assert.Equal(t, 0, e.Buffered(), "TestClose failed")
}
