package core

import (
	"github.com/deepfabric/abacus/pkg/automaton"
)

// Indicator three status lines derived from the parse phase
type Indicator [3]bool

// IndicatorOf returns the status lines of the phase
func IndicatorOf(phase automaton.Phase) Indicator {
	switch phase {
	case automaton.PhaseOperator:
		return Indicator{true, false, false}
	case automaton.PhaseSecond:
		return Indicator{false, true, false}
	case automaton.PhaseClosed:
		return Indicator{false, false, true}
	case automaton.PhaseComputing:
		return Indicator{true, true, true}
	}
	return Indicator{}
}

// Observer receives evaluator side effects. Callbacks run on the goroutine
// feeding the evaluator and must not call back into it.
type Observer interface {
	// OnPhase called when the phase of the entered state changes
	OnPhase(automaton.Phase, Indicator)
	// OnResult called for every computed expression
	OnResult(Result)
	// OnCancel called when a capture is dropped, with the state it was dropped from
	OnCancel(automaton.State)
}

// ObserverFuncs adapts plain functions to Observer, nil funcs are skipped
type ObserverFuncs struct {
	Phase  func(automaton.Phase, Indicator)
	Result func(Result)
	Cancel func(automaton.State)
}

// OnPhase implements Observer
func (o ObserverFuncs) OnPhase(phase automaton.Phase, value Indicator) {
	if o.Phase != nil {
		o.Phase(phase, value)
	}
}

// OnResult implements Observer
func (o ObserverFuncs) OnResult(result Result) {
	if o.Result != nil {
		o.Result(result)
	}
}

// OnCancel implements Observer
func (o ObserverFuncs) OnCancel(from automaton.State) {
	if o.Cancel != nil {
		o.Cancel(from)
	}
}
