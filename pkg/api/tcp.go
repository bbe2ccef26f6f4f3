package api

import (
	"github.com/deepfabric/abacus/pkg/metric"
	"github.com/deepfabric/abacus/pkg/terminal"
	"github.com/fagongzi/goetty"
)

func (s *Server) doConnection(session goetty.IOSession) error {
	id := s.nextTerminalID()
	t, err := terminal.New(id, terminal.NewSessionTransport(session), s.opts.grammar)
	if err != nil {
		logger.Errorf("create terminal %d failed with %+v", id, err)
		return err
	}

	s.terminals.Store(id, t)
	metric.SetTerminalCount(s.terminalCount())
	defer func() {
		s.terminals.Delete(id)
		t.Close()
		metric.SetTerminalCount(s.terminalCount())
	}()

	return t.Run(s.ctx)
}

func (s *Server) terminal(id uint64) (*terminal.Terminal, error) {
	value, ok := s.terminals.Load(id)
	if !ok {
		return nil, ErrTerminalNotFound
	}
	return value.(*terminal.Terminal), nil
}

func (s *Server) terminalCount() int {
	n := 0
	s.terminals.Range(func(key, value interface{}) bool {
		n++
		return true
	})
	return n
}
