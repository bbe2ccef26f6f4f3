package metric

import (
	"github.com/deepfabric/abacus/pkg/automaton"
	"github.com/deepfabric/abacus/pkg/core"
)

// Observer counts the expressions of an evaluator
type Observer struct {
	grammar string
}

// NewObserver returns an observer for evaluators of the grammar
func NewObserver(grammar string) *Observer {
	return &Observer{grammar: grammar}
}

// OnPhase implements core.Observer
func (o *Observer) OnPhase(automaton.Phase, core.Indicator) {}

// OnResult implements core.Observer
func (o *Observer) OnResult(result core.Result) {
	if result.Err == core.ErrDivideByZero {
		IncExpression(o.grammar, ResultDivideByZero)
		return
	}
	IncExpression(o.grammar, ResultAccepted)
}

// OnCancel implements core.Observer
func (o *Observer) OnCancel(automaton.State) {
	IncExpression(o.grammar, ResultCancelled)
}
