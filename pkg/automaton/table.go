package automaton

import (
	"fmt"

	"github.com/deepfabric/abacus/pkg/grammar"
)

// Table immutable (state, symbol) -> state mapping of a grammar variant
type Table struct {
	cfg       grammar.Config
	cells     [StateCount][grammar.SymbolCount]State
	reachable []State
}

// Build generates the table of the grammar and checks it is total and well formed
func Build(cfg grammar.Config) (*Table, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	t := &Table{cfg: cfg}
	for s := 0; s < StateCount; s++ {
		for sym := 0; sym < grammar.SymbolCount; sym++ {
			t.cells[s][sym] = rule(cfg, State(s), grammar.Symbol(sym))
		}
	}

	if err := t.validate(); err != nil {
		return nil, err
	}

	t.reachable = t.walk()
	if !t.isReachable(Accept) {
		return nil, fmt.Errorf("%w: %s accept state unreachable", ErrInvalidTable, cfg.Name)
	}

	return t, nil
}

// MustBuild is Build that panics on error, for compiled-in grammars
func MustBuild(cfg grammar.Config) *Table {
	t, err := Build(cfg)
	if err != nil {
		panic(err)
	}
	return t
}

// Config returns the grammar of the table
func (t *Table) Config() grammar.Config {
	return t.cfg
}

// Next returns the next state. Undefined states restart from Idle.
func (t *Table) Next(s State, sym grammar.Symbol) State {
	if !s.Valid() {
		s = Idle
	}
	if sym < 0 || int(sym) >= grammar.SymbolCount {
		return s
	}

	return t.cells[s][sym]
}

// Reachable returns the states reachable from Idle, in declaration order
func (t *Table) Reachable() []State {
	return append([]State(nil), t.reachable...)
}

// Row returns a copy of the row of the state
func (t *Table) Row(s State) []State {
	if !s.Valid() {
		return nil
	}
	return append([]State(nil), t.cells[s][:]...)
}

func (t *Table) validate() error {
	for s := 0; s < StateCount; s++ {
		for sym := 0; sym < grammar.SymbolCount; sym++ {
			next := t.cells[s][sym]
			if !next.Valid() {
				return fmt.Errorf("%w: %s on %s leads to undefined state %d",
					ErrInvalidTable,
					State(s),
					grammar.Symbol(sym),
					next)
			}
		}

		if t.cells[s][grammar.Ignored] != State(s) && State(s) != Accept && State(s) != Cancel {
			return fmt.Errorf("%w: %s must ignore ignored bytes",
				ErrInvalidTable,
				State(s))
		}
	}

	for sym := 0; sym < grammar.SymbolCount; sym++ {
		for _, s := range []State{Accept, Cancel} {
			if t.cells[s][sym] != t.restart(grammar.Symbol(sym)) {
				return fmt.Errorf("%w: %s must mirror the idle row on %s",
					ErrInvalidTable,
					s,
					grammar.Symbol(sym))
			}
		}
	}

	return nil
}

func (t *Table) restart(sym grammar.Symbol) State {
	if sym == grammar.OpenBracket {
		return Open
	}
	return Idle
}

func (t *Table) walk() []State {
	seen := make([]bool, StateCount)
	queue := []State{Idle}
	seen[Idle] = true
	for len(queue) > 0 {
		s := queue[0]
		queue = queue[1:]
		for _, next := range t.cells[s] {
			if !seen[next] {
				seen[next] = true
				queue = append(queue, next)
			}
		}
	}

	var states []State
	for s := 0; s < StateCount; s++ {
		if seen[s] {
			states = append(states, State(s))
		}
	}
	return states
}

func (t *Table) isReachable(s State) bool {
	for _, r := range t.reachable {
		if r == s {
			return true
		}
	}
	return false
}

// rule encodes the grammar `( [-] digits [. digits] op [-] digits [. digits] ) =`
func rule(cfg grammar.Config, s State, sym grammar.Symbol) State {
	switch s {
	case Idle, Accept, Cancel:
		if sym == grammar.OpenBracket {
			return Open
		}
		return Idle
	}

	if sym == grammar.Ignored {
		return s
	}

	if !producible(cfg, sym) {
		return resting(s)
	}

	if sym == grammar.Abort {
		return Cancel
	}

	invalid := s
	if cfg.Strict {
		invalid = Cancel
	}

	switch s {
	case Open, Sign1, Operator, Sign2:
		first := s == Open || s == Sign1
		switch sym {
		case grammar.Digit:
			if first {
				return Int1
			}
			return Int2
		case grammar.Sign:
			if s == Open {
				return Sign1
			}
			if s == Operator {
				return Sign2
			}
		case grammar.CloseBracket, grammar.Equals:
			return invalid
		}
		return s
	case Point1, Point2:
		switch sym {
		case grammar.Digit:
			if s == Point1 {
				return Frac1
			}
			return Frac2
		case grammar.CloseBracket, grammar.Equals:
			return invalid
		}
		return s
	case Int1, Int1More, Frac1, Frac1More:
		rest, more := Int1, Int1More
		if s == Frac1 || s == Frac1More {
			rest, more = Frac1, Frac1More
		}
		switch sym {
		case grammar.Digit:
			return more
		case grammar.DecimalPoint:
			if rest == Int1 {
				return Point1
			}
		case grammar.Operator, grammar.Sign:
			return Operator
		case grammar.CloseBracket, grammar.Equals:
			if cfg.Strict {
				return Cancel
			}
		}
		return rest
	case Int2, Int2More, Frac2, Frac2More:
		rest, more := Int2, Int2More
		if s == Frac2 || s == Frac2More {
			rest, more = Frac2, Frac2More
		}
		switch sym {
		case grammar.Digit:
			return more
		case grammar.DecimalPoint:
			if rest == Int2 {
				return Point2
			}
		case grammar.CloseBracket:
			return Closed
		case grammar.Equals:
			if cfg.Strict {
				return Cancel
			}
		}
		return rest
	case Closed:
		switch sym {
		case grammar.Equals:
			return Accept
		case grammar.CloseBracket:
			return invalid
		}
		return s
	}

	return Cancel
}

// producible returns true if the classifier can emit the symbol under the grammar
func producible(cfg grammar.Config, sym grammar.Symbol) bool {
	switch sym {
	case grammar.Sign:
		return cfg.Signed
	case grammar.DecimalPoint:
		return cfg.Decimal
	case grammar.Abort:
		return cfg.CancelKeys
	}
	return true
}

func resting(s State) State {
	switch s {
	case Int1More:
		return Int1
	case Frac1More:
		return Frac1
	case Int2More:
		return Int2
	case Frac2More:
		return Frac2
	}
	return s
}
