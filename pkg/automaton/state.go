package automaton

// State a point in the parse of `(operand op operand)=`
type State int

const (
	// Idle waiting for '('
	Idle State = iota
	// Open '(' seen, waiting for the first operand
	Open
	// Sign1 sign of the first operand seen
	Sign1
	// Int1 integer digits of the first operand
	Int1
	// Int1More transient, one more integer digit of the first operand
	Int1More
	// Point1 decimal point of the first operand
	Point1
	// Frac1 fractional digits of the first operand
	Frac1
	// Frac1More transient, one more fractional digit of the first operand
	Frac1More
	// Operator operator seen, waiting for the second operand
	Operator
	// Sign2 sign of the second operand seen
	Sign2
	// Int2 integer digits of the second operand
	Int2
	// Int2More transient, one more integer digit of the second operand
	Int2More
	// Point2 decimal point of the second operand
	Point2
	// Frac2 fractional digits of the second operand
	Frac2
	// Frac2More transient, one more fractional digit of the second operand
	Frac2More
	// Closed ')' seen, waiting for '='
	Closed
	// Accept '=' seen, the result is computed
	Accept
	// Cancel the capture was dropped
	Cancel

	// StateCount number of states, used as the table height
	StateCount = int(Cancel) + 1
)

var stateNames = [...]string{
	Idle:      "idle",
	Open:      "open",
	Sign1:     "sign1",
	Int1:      "int1",
	Int1More:  "int1+",
	Point1:    "point1",
	Frac1:     "frac1",
	Frac1More: "frac1+",
	Operator:  "operator",
	Sign2:     "sign2",
	Int2:      "int2",
	Int2More:  "int2+",
	Point2:    "point2",
	Frac2:     "frac2",
	Frac2More: "frac2+",
	Closed:    "closed",
	Accept:    "accept",
	Cancel:    "cancel",
}

func (s State) String() string {
	if !s.Valid() {
		return "invalid"
	}

	return stateNames[s]
}

// Valid returns true if the state is defined
func (s State) Valid() bool {
	return s >= 0 && int(s) < StateCount
}

// Transient returns true if the state is only entered to run its action
func (s State) Transient() bool {
	switch s {
	case Int1More, Frac1More, Int2More, Frac2More, Accept, Cancel:
		return true
	}
	return false
}

// Phase coarse group of states, drives the status indicator
type Phase int

const (
	// PhaseIdle no capture in progress
	PhaseIdle Phase = iota
	// PhaseFirst capturing the first operand
	PhaseFirst
	// PhaseOperator operator selected
	PhaseOperator
	// PhaseSecond capturing the second operand
	PhaseSecond
	// PhaseClosed waiting for '='
	PhaseClosed
	// PhaseComputing result computed
	PhaseComputing
)

var phaseNames = [...]string{
	PhaseIdle:      "idle",
	PhaseFirst:     "first",
	PhaseOperator:  "operator",
	PhaseSecond:    "second",
	PhaseClosed:    "closed",
	PhaseComputing: "computing",
}

func (p Phase) String() string {
	if p < 0 || int(p) >= len(phaseNames) {
		return "unknown"
	}
	return phaseNames[p]
}

// PhaseOf returns the phase group of the state
func PhaseOf(s State) Phase {
	switch s {
	case Open, Sign1, Int1, Int1More, Point1, Frac1, Frac1More:
		return PhaseFirst
	case Operator:
		return PhaseOperator
	case Sign2, Int2, Int2More, Point2, Frac2, Frac2More:
		return PhaseSecond
	case Closed:
		return PhaseClosed
	case Accept:
		return PhaseComputing
	}
	return PhaseIdle
}
