package terminal

import (
	"context"
	"io"
	"sync"
	"sync/atomic"

	"github.com/deepfabric/abacus/pkg/core"
	"github.com/deepfabric/abacus/pkg/grammar"
	"github.com/deepfabric/abacus/pkg/metric"
	"github.com/fagongzi/log"
)

var (
	logger log.Logger
)

func init() {
	logger = log.NewLoggerWithPrefix("[terminal]")
}

// Terminal drives one evaluator from a transport
type Terminal struct {
	sync.Mutex

	id        uint64
	opts      options
	cfg       grammar.Config
	transport Transport
	evaluator *core.Evaluator
	debouncer *Debouncer
	attention int32
	running   int32
}

// New returns a terminal of the grammar over the transport
func New(id uint64, transport Transport, cfg grammar.Config, opts ...Option) (*Terminal, error) {
	t := &Terminal{
		id:        id,
		cfg:       cfg,
		transport: transport,
	}
	for _, opt := range opts {
		opt(&t.opts)
	}
	t.opts.adjust()

	evalOpts := []core.Option{core.WithObserver(metric.NewObserver(cfg.Name))}
	for _, o := range t.opts.observers {
		evalOpts = append(evalOpts, core.WithObserver(o))
	}

	e, err := core.NewEvaluator(cfg, evalOpts...)
	if err != nil {
		return nil, err
	}

	t.evaluator = e
	t.debouncer = NewDebouncer(t.opts.samples)
	return t, nil
}

// ID returns the terminal id
func (t *Terminal) ID() uint64 {
	return t.id
}

// Grammar returns the grammar of the terminal
func (t *Terminal) Grammar() grammar.Config {
	return t.cfg
}

// Attention queues the diagnostic prompt, it is transmitted by the next cycle
func (t *Terminal) Attention() {
	atomic.StoreInt32(&t.attention, 1)
}

// Press feeds a sample of a polled push button
func (t *Terminal) Press(pressed bool) {
	if t.debouncer.Sample(pressed) {
		t.Attention()
	}
}

// Indicator returns the status lines of the evaluator
func (t *Terminal) Indicator() core.Indicator {
	t.Lock()
	defer t.Unlock()
	return t.evaluator.Indicator()
}

// Stats returns the accepted and cancelled expressions
func (t *Terminal) Stats() (uint64, uint64) {
	t.Lock()
	defer t.Unlock()
	return t.evaluator.Stats()
}

// Run receives, evaluates and transmits until the transport is done or the
// context is cancelled. io.EOF is a clean end.
func (t *Terminal) Run(ctx context.Context) error {
	if !atomic.CompareAndSwapInt32(&t.running, 0, 1) {
		return ErrRunning
	}
	defer atomic.StoreInt32(&t.running, 0)

	logger.Infof("terminal %d started with grammar %s", t.id, t.cfg.Name)
	for {
		select {
		case <-ctx.Done():
			logger.Infof("terminal %d stopped", t.id)
			return nil
		default:
		}

		if err := t.transmitAttention(); err != nil {
			return err
		}

		data, err := t.transport.Receive()
		if err == io.EOF {
			logger.Infof("terminal %d closed by peer", t.id)
			return nil
		}
		if err != nil {
			logger.Errorf("terminal %d receive failed with %+v", t.id, err)
			return err
		}

		if err := t.cycle(data); err != nil {
			logger.Errorf("terminal %d transmit failed with %+v", t.id, err)
			return err
		}
	}
}

// Close releases the evaluator
func (t *Terminal) Close() {
	t.Lock()
	defer t.Unlock()
	t.evaluator.Close()
}

func (t *Terminal) cycle(data []byte) error {
	t.Lock()
	t.evaluator.Write(data)
	output := t.evaluator.Flush()
	t.Unlock()

	metric.AddInputBytes(t.cfg.Name, len(data))

	if err := t.transmitAttention(); err != nil {
		return err
	}

	if len(output) == 0 {
		return nil
	}
	return t.transport.Transmit(output)
}

func (t *Terminal) transmitAttention() error {
	if !atomic.CompareAndSwapInt32(&t.attention, 1, 0) {
		return nil
	}

	logger.Debugf("terminal %d attention", t.id)
	return t.transport.Transmit(t.opts.prompt)
}
