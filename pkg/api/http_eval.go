package api

import (
	"github.com/deepfabric/abacus/pkg/automaton"
	"github.com/deepfabric/abacus/pkg/core"
	"github.com/deepfabric/abacus/pkg/grammar"
	"github.com/deepfabric/abacus/pkg/metric"
	"github.com/labstack/echo"
)

func (s *Server) initEvalAPI() {
	s.http.POST("/eval", s.eval)
	s.http.GET("/grammars", s.listGrammars)
	s.http.GET("/grammars/:name/table", s.grammarTable)
}

// eval evaluates the body with a fresh session that is dropped afterwards
func (s *Server) eval(c echo.Context) error {
	metric.IncRequestReceived("eval")

	data, err := readBody(c, s.opts.maxInput)
	if err != nil {
		metric.IncRequestFailed("eval")
		return failed(c, err)
	}

	cfg := s.opts.grammar
	if name := c.QueryParam("grammar"); name != "" {
		cfg, err = grammar.ByName(name)
		if err != nil {
			metric.IncRequestFailed("eval")
			return failed(c, err)
		}
	}

	e, err := core.NewEvaluator(cfg, core.WithObserver(metric.NewObserver(cfg.Name)))
	if err != nil {
		metric.IncRequestFailed("eval")
		return failed(c, err)
	}
	defer e.Close()

	e.Write(data)
	metric.AddInputBytes(cfg.Name, len(data))

	accepted, cancelled := e.Stats()
	view := SessionView{
		Grammar:   cfg.Name,
		State:     e.State().String(),
		Phase:     e.Phase().String(),
		Indicator: e.Indicator(),
		Accepted:  accepted,
		Cancelled: cancelled,
		Output:    string(e.Flush()),
		Results:   newResultViews(e.TakeResults()),
	}

	metric.IncRequestSucceed("eval")
	return succeed(c, view)
}

func (s *Server) listGrammars(c echo.Context) error {
	metric.IncRequestReceived("grammar_list")
	metric.IncRequestSucceed("grammar_list")
	return succeed(c, grammar.Names())
}

func (s *Server) grammarTable(c echo.Context) error {
	metric.IncRequestReceived("grammar_table")

	cfg, err := grammar.ByName(c.Param("name"))
	if err != nil {
		metric.IncRequestFailed("grammar_table")
		return failed(c, err)
	}

	t, err := automaton.Build(cfg)
	if err != nil {
		metric.IncRequestFailed("grammar_table")
		return failed(c, err)
	}

	metric.IncRequestSucceed("grammar_table")
	return succeed(c, newTableView(t))
}

func newTableView(t *automaton.Table) TableView {
	view := TableView{
		Grammar: t.Config().Name,
		Rows:    make(map[string][]string),
	}
	for _, sym := range grammar.Symbols() {
		view.Symbols = append(view.Symbols, sym.String())
	}

	for _, s := range t.Reachable() {
		view.Reachable = append(view.Reachable, s.String())

		var row []string
		for _, next := range t.Row(s) {
			row = append(row, next.String())
		}
		view.Rows[s.String()] = row
	}
	return view
}
