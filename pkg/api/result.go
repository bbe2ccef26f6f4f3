package api

import (
	"github.com/deepfabric/abacus/pkg/core"
)

// JSONResult json result
type JSONResult struct {
	Code  int         `json:"code"`
	Error string      `json:"err"`
	Value interface{} `json:"value"`
}

// CreateSession create session request
type CreateSession struct {
	Grammar        string `json:"grammar"`
	Strict         *bool  `json:"strict,omitempty"`
	CancelKeys     bool   `json:"cancelKeys,omitempty"`
	EchoIgnored    bool   `json:"echoIgnored,omitempty"`
	FractionDigits *int   `json:"fractionDigits,omitempty"`
}

// ResultView a computed expression
type ResultView struct {
	Expression string `json:"expression"`
	Value      string `json:"value"`
	Output     string `json:"output"`
	Error      string `json:"err,omitempty"`
}

// SessionView session snapshot, Output is set only by input and eval
type SessionView struct {
	ID        uint32       `json:"id"`
	Grammar   string       `json:"grammar"`
	State     string       `json:"state"`
	Phase     string       `json:"phase"`
	Indicator [3]bool      `json:"indicator"`
	Accepted  uint64       `json:"accepted"`
	Cancelled uint64       `json:"cancelled"`
	Output    string       `json:"output,omitempty"`
	Results   []ResultView `json:"results,omitempty"`
}

// TerminalView connected tcp terminal
type TerminalView struct {
	ID        uint64  `json:"id"`
	Grammar   string  `json:"grammar"`
	Indicator [3]bool `json:"indicator"`
	Accepted  uint64  `json:"accepted"`
	Cancelled uint64  `json:"cancelled"`
}

// TableView transition table of a grammar
type TableView struct {
	Grammar   string              `json:"grammar"`
	Symbols   []string            `json:"symbols"`
	Rows      map[string][]string `json:"rows"`
	Reachable []string            `json:"reachable"`
}

func newResultView(r core.Result) ResultView {
	v := ResultView{
		Expression: r.Left.String() + " " + r.Op.String() + " " + r.Right.String(),
		Value:      r.Value.String(),
		Output:     string(r.Bytes),
	}
	if r.Err != nil {
		v.Error = r.Err.Error()
	}
	return v
}

func newResultViews(results []core.Result) []ResultView {
	var views []ResultView
	for _, r := range results {
		views = append(views, newResultView(r))
	}
	return views
}
