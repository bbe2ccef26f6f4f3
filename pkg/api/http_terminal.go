package api

import (
	"github.com/deepfabric/abacus/pkg/metric"
	"github.com/deepfabric/abacus/pkg/terminal"
	"github.com/fagongzi/util/format"
	"github.com/labstack/echo"
)

func (s *Server) initTerminalAPI() {
	s.http.GET("/terminals", s.listTerminals)
	s.http.POST("/terminals/:id/attention", s.terminalAttention)
}

func (s *Server) listTerminals(c echo.Context) error {
	metric.IncRequestReceived("terminal_list")

	views := []TerminalView{}
	s.terminals.Range(func(key, value interface{}) bool {
		t := value.(*terminal.Terminal)
		accepted, cancelled := t.Stats()
		views = append(views, TerminalView{
			ID:        t.ID(),
			Grammar:   t.Grammar().Name,
			Indicator: t.Indicator(),
			Accepted:  accepted,
			Cancelled: cancelled,
		})
		return true
	})

	metric.IncRequestSucceed("terminal_list")
	return succeed(c, views)
}

func (s *Server) terminalAttention(c echo.Context) error {
	metric.IncRequestReceived("terminal_attention")

	id, err := format.ParseStrUInt64(c.Param("id"))
	if err != nil {
		metric.IncRequestFailed("terminal_attention")
		return failed(c, err)
	}

	t, err := s.terminal(id)
	if err != nil {
		metric.IncRequestFailed("terminal_attention")
		return failed(c, err)
	}

	t.Attention()
	metric.IncRequestSucceed("terminal_attention")
	return succeed(c, nil)
}
