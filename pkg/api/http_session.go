package api

import (
	"encoding/json"
	"fmt"

	"github.com/deepfabric/abacus/pkg/grammar"
	"github.com/deepfabric/abacus/pkg/metric"
	"github.com/deepfabric/abacus/pkg/util"
	"github.com/fagongzi/util/format"
	"github.com/fagongzi/util/hack"
	"github.com/labstack/echo"
)

func (s *Server) initSessionAPI() {
	s.http.POST("/sessions", s.createSession)
	s.http.GET("/sessions", s.listSessions)
	s.http.GET("/sessions/:id", s.getSession)
	s.http.PUT("/sessions/:id/input", s.inputSession)
	s.http.DELETE("/sessions/:id", s.deleteSession)
}

func (s *Server) createSession(c echo.Context) error {
	metric.IncRequestReceived("session_create")

	data, err := readBody(c, s.opts.maxInput)
	if err != nil {
		metric.IncRequestFailed("session_create")
		return failed(c, err)
	}

	cfg, err := s.parseGrammar(data)
	if err != nil {
		metric.IncRequestFailed("session_create")
		return failed(c, err)
	}

	sess, err := s.registry.create(cfg)
	if err != nil {
		metric.IncRequestFailed("session_create")
		return failed(c, err)
	}

	logger.Debugf("session %d created with grammar %s", sess.id, cfg.Name)
	metric.IncRequestSucceed("session_create")
	return succeed(c, sess.id)
}

func (s *Server) listSessions(c echo.Context) error {
	metric.IncRequestReceived("session_list")

	var active *bool
	if value := c.QueryParam("active"); value != "" {
		v := value == "true" || value == "1"
		active = &v
	}

	ids := s.registry.query(c.QueryParam("grammar"), active)
	if ids == nil {
		ids = []uint32{}
	}

	metric.IncRequestSucceed("session_list")
	return succeed(c, ids)
}

func (s *Server) getSession(c echo.Context) error {
	metric.IncRequestReceived("session_get")

	id, err := readSessionID(c)
	if err != nil {
		metric.IncRequestFailed("session_get")
		return failed(c, err)
	}

	view, err := s.registry.snapshot(id)
	if err != nil {
		metric.IncRequestFailed("session_get")
		return failed(c, err)
	}

	metric.IncRequestSucceed("session_get")
	return succeed(c, view)
}

func (s *Server) inputSession(c echo.Context) error {
	metric.IncRequestReceived("session_input")

	id, err := readSessionID(c)
	if err != nil {
		metric.IncRequestFailed("session_input")
		return failed(c, err)
	}

	data, err := readBody(c, s.opts.maxInput)
	if err != nil {
		metric.IncRequestFailed("session_input")
		return failed(c, err)
	}

	view, err := s.registry.input(id, data)
	if err != nil {
		metric.IncRequestFailed("session_input")
		return failed(c, err)
	}

	metric.IncRequestSucceed("session_input")
	return succeed(c, view)
}

func (s *Server) deleteSession(c echo.Context) error {
	metric.IncRequestReceived("session_delete")

	id, err := readSessionID(c)
	if err != nil {
		metric.IncRequestFailed("session_delete")
		return failed(c, err)
	}

	if err := s.registry.remove(id); err != nil {
		metric.IncRequestFailed("session_delete")
		return failed(c, err)
	}

	metric.IncRequestSucceed("session_delete")
	return succeed(c, nil)
}

// parseGrammar reads a CreateSession body, an empty body uses the server grammar
func (s *Server) parseGrammar(data []byte) (grammar.Config, error) {
	if len(data) == 0 {
		return s.opts.grammar, nil
	}

	if !json.Valid(data) {
		return grammar.Config{}, fmt.Errorf("invalid json body")
	}

	name := hack.SliceToString(util.ExtractJSONField(data, "grammar"))
	if name == "" {
		name = s.opts.grammar.Name
	}

	var opts []grammar.Option
	if value := util.ExtractJSONField(data, "strict"); value != nil {
		opts = append(opts, grammar.WithStrict(string(value) == "true"))
	}
	if value := util.ExtractJSONField(data, "cancelKeys"); value != nil {
		opts = append(opts, grammar.WithCancelKeys(string(value) == "true"))
	}
	if value := util.ExtractJSONField(data, "echoIgnored"); value != nil {
		opts = append(opts, grammar.WithEchoIgnored(string(value) == "true"))
	}
	if value := util.ExtractJSONField(data, "fractionDigits"); value != nil {
		digits, err := format.ParseStrInt64(hack.SliceToString(value))
		if err != nil {
			return grammar.Config{}, err
		}
		opts = append(opts, grammar.WithFractionDigits(int(digits)))
	}

	cfg, err := grammar.ByName(name, opts...)
	if err != nil {
		return grammar.Config{}, err
	}

	return cfg, cfg.Validate()
}
