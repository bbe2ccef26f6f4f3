package api

import (
	"context"
	"net/http"
	"sync"
	"sync/atomic"
	"time"

	"github.com/deepfabric/abacus/pkg/metric"
	"github.com/deepfabric/abacus/pkg/terminal"
	"github.com/fagongzi/goetty"
	"github.com/fagongzi/log"
	"github.com/fagongzi/util/task"
	"github.com/labstack/echo"
	"github.com/robfig/cron/v3"
)

const (
	codeOK     = 0
	codeFailed = 1
)

var (
	logger log.Logger
)

func init() {
	logger = log.NewLoggerWithPrefix("[api]")
}

// Server serves evaluators over tcp terminals and a http session api
type Server struct {
	opts       options
	http       *echo.Echo
	tcp        *goetty.Server
	registry   *registry
	terminals  sync.Map // uint64 -> *terminal.Terminal
	terminalID uint64
	runner     *task.Runner
	cronRunner *cron.Cron
	ctx        context.Context
	cancel     context.CancelFunc
}

// NewServer returns a server, nothing is served until Start
func NewServer(opts ...Option) (*Server, error) {
	s := &Server{
		http:       echo.New(),
		registry:   newRegistry(),
		runner:     task.NewRunner(),
		cronRunner: cron.New(cron.WithSeconds()),
	}
	for _, opt := range opts {
		opt(&s.opts)
	}
	s.opts.adjust()

	if err := s.opts.grammar.Validate(); err != nil {
		return nil, err
	}

	if s.opts.tcpAddr != "" {
		s.tcp = goetty.NewServer(s.opts.tcpAddr,
			goetty.WithServerDecoder(terminal.RawDecoder),
			goetty.WithServerEncoder(terminal.RawEncoder))
	}

	s.http.HideBanner = true
	s.initSessionAPI()
	s.initEvalAPI()
	s.initTerminalAPI()
	s.http.GET("/metrics", echo.WrapHandler(metric.Handler()))

	if _, err := s.cronRunner.AddFunc(s.opts.sweepSpec, s.sweep); err != nil {
		return nil, err
	}

	s.ctx, s.cancel = context.WithCancel(context.Background())
	return s, nil
}

// Handler returns the http handler of the api
func (s *Server) Handler() http.Handler {
	return s.http
}

// Start starts the tcp and http servers and returns once the tcp server listens
func (s *Server) Start() error {
	s.cronRunner.Start()

	if s.tcp != nil {
		errC := make(chan error, 1)
		_, err := s.runner.RunCancelableTask(func(ctx context.Context) {
			go func() {
				if err := s.tcp.Start(s.doConnection); err != nil {
					errC <- err
				}
			}()

			<-ctx.Done()
			s.tcp.Stop()
		})
		if err != nil {
			return err
		}

		select {
		case <-s.tcp.Started():
			logger.Infof("tcp terminal server start at %s", s.opts.tcpAddr)
		case err := <-errC:
			return err
		case <-time.After(time.Second * 10):
			logger.Warningf("tcp terminal server not started after 10s")
		}
	}

	if s.opts.httpAddr != "" {
		go func() {
			logger.Infof("http api server start at %s", s.opts.httpAddr)
			if err := s.http.Start(s.opts.httpAddr); err != nil && err != http.ErrServerClosed {
				logger.Errorf("http api server failed with %+v", err)
			}
		}()
	}

	return nil
}

// Stop stops serving and releases every session and terminal
func (s *Server) Stop() error {
	s.cancel()
	s.cronRunner.Stop()

	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	if err := s.http.Shutdown(ctx); err != nil {
		logger.Errorf("http api server stop failed with %+v", err)
	}

	err := s.runner.Stop()
	s.registry.close()
	logger.Infof("api server stopped")
	return err
}

func (s *Server) sweep() {
	n := s.registry.sweep(s.opts.sessionTTL)
	if n > 0 {
		logger.Infof("%d idle sessions evicted", n)
	}
}

func (s *Server) nextTerminalID() uint64 {
	return atomic.AddUint64(&s.terminalID, 1)
}
