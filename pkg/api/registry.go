package api

import (
	"math"
	"sync"
	"time"

	"github.com/RoaringBitmap/roaring"
	"github.com/deepfabric/abacus/pkg/automaton"
	"github.com/deepfabric/abacus/pkg/core"
	"github.com/deepfabric/abacus/pkg/grammar"
	"github.com/deepfabric/abacus/pkg/metric"
	"github.com/deepfabric/abacus/pkg/util"
)

type session struct {
	sync.Mutex

	id         uint32
	evaluator  *core.Evaluator
	lastActive time.Time
	closed     bool
}

func (s *session) view() SessionView {
	cfg := s.evaluator.Grammar()
	accepted, cancelled := s.evaluator.Stats()
	return SessionView{
		ID:        s.id,
		Grammar:   cfg.Name,
		State:     s.evaluator.State().String(),
		Phase:     s.evaluator.Phase().String(),
		Indicator: s.evaluator.Indicator(),
		Accepted:  accepted,
		Cancelled: cancelled,
	}
}

// registry http sessions, every session owns an evaluator
type registry struct {
	sync.RWMutex

	seq       uint32
	sessions  map[uint32]*session
	active    *roaring.Bitmap
	byGrammar map[string]*roaring.Bitmap
	tables    map[string]*automaton.Table
	now       func() time.Time
}

func newRegistry() *registry {
	return &registry{
		sessions:  make(map[uint32]*session),
		active:    util.AcquireBitmap(),
		byGrammar: make(map[string]*roaring.Bitmap),
		tables:    make(map[string]*automaton.Table),
		now:       time.Now,
	}
}

func (r *registry) create(cfg grammar.Config) (*session, error) {
	r.Lock()
	defer r.Unlock()

	if r.seq == math.MaxUint32 {
		return nil, ErrSessionLimit
	}

	table, err := r.tableLocked(cfg)
	if err != nil {
		return nil, err
	}

	e, err := core.NewEvaluator(cfg,
		core.WithTable(table),
		core.WithObserver(metric.NewObserver(cfg.Name)))
	if err != nil {
		return nil, err
	}

	r.seq++
	s := &session{
		id:         r.seq,
		evaluator:  e,
		lastActive: r.now(),
	}
	r.sessions[s.id] = s

	bm, ok := r.byGrammar[cfg.Name]
	if !ok {
		bm = util.AcquireBitmap()
		r.byGrammar[cfg.Name] = bm
	}
	bm.Add(s.id)
	return s, nil
}

// tableLocked shares one table between sessions of the same grammar settings
func (r *registry) tableLocked(cfg grammar.Config) (*automaton.Table, error) {
	key := tableKey(cfg)
	if t, ok := r.tables[key]; ok {
		return t, nil
	}

	t, err := automaton.Build(cfg)
	if err != nil {
		return nil, err
	}
	r.tables[key] = t
	return t, nil
}

func (r *registry) get(id uint32) (*session, error) {
	r.RLock()
	s, ok := r.sessions[id]
	r.RUnlock()
	if !ok {
		return nil, ErrSessionNotFound
	}
	return s, nil
}

// input feeds the session and returns its snapshot with the produced output
func (r *registry) input(id uint32, data []byte) (SessionView, error) {
	s, err := r.get(id)
	if err != nil {
		return SessionView{}, err
	}

	s.Lock()
	if s.closed {
		s.Unlock()
		return SessionView{}, ErrSessionNotFound
	}
	s.evaluator.Write(data)
	view := s.view()
	view.Output = string(s.evaluator.Flush())
	view.Results = newResultViews(s.evaluator.TakeResults())
	idle := s.evaluator.State() == automaton.Idle
	s.lastActive = r.now()
	grammarName := s.evaluator.Grammar().Name
	s.Unlock()

	metric.AddInputBytes(grammarName, len(data))

	r.Lock()
	if _, ok := r.sessions[id]; ok {
		if idle {
			r.active.Remove(id)
		} else {
			r.active.Add(id)
		}
	}
	r.Unlock()
	return view, nil
}

func (r *registry) snapshot(id uint32) (SessionView, error) {
	s, err := r.get(id)
	if err != nil {
		return SessionView{}, err
	}

	s.Lock()
	defer s.Unlock()
	return s.view(), nil
}

func (r *registry) remove(id uint32) error {
	r.Lock()
	s, ok := r.sessions[id]
	if !ok {
		r.Unlock()
		return ErrSessionNotFound
	}
	r.removeLocked(s)
	r.Unlock()

	s.Lock()
	s.closed = true
	s.evaluator.Close()
	s.Unlock()
	return nil
}

func (r *registry) removeLocked(s *session) {
	delete(r.sessions, s.id)
	r.active.Remove(s.id)
	for _, bm := range r.byGrammar {
		bm.Remove(s.id)
	}
}

// query returns the session ids of the grammar, all grammars if empty,
// filtered by whether an expression is in progress if active is not nil
func (r *registry) query(grammarName string, active *bool) []uint32 {
	r.RLock()
	defer r.RUnlock()

	var base *roaring.Bitmap
	if grammarName != "" {
		bm, ok := r.byGrammar[grammarName]
		if !ok {
			return nil
		}
		base = bm
	} else {
		var all []*roaring.Bitmap
		for _, bm := range r.byGrammar {
			all = append(all, bm)
		}
		base = util.BMOr(all...)
	}

	switch {
	case active == nil:
		return base.ToArray()
	case *active:
		return util.BMAnd(base, r.active).ToArray()
	default:
		return util.BMAndnot(base, r.active).ToArray()
	}
}

// sweep evicts sessions idle longer than ttl and refreshes the gauges
func (r *registry) sweep(ttl time.Duration) int {
	var evicted []*session

	r.Lock()
	if ttl > 0 {
		deadline := r.now().Add(-ttl)
		for _, s := range r.sessions {
			s.Lock()
			idle := s.lastActive.Before(deadline)
			s.Unlock()
			if idle {
				evicted = append(evicted, s)
				r.removeLocked(s)
			}
		}
	}
	total := len(r.sessions)
	active := int(r.active.GetCardinality())
	r.Unlock()

	for _, s := range evicted {
		s.Lock()
		s.closed = true
		s.evaluator.Close()
		s.Unlock()
	}

	metric.SetSessionCount(total, active)
	return len(evicted)
}

func (r *registry) count() (int, int) {
	r.RLock()
	defer r.RUnlock()
	return len(r.sessions), int(r.active.GetCardinality())
}

func (r *registry) close() {
	r.Lock()
	sessions := r.sessions
	r.sessions = make(map[uint32]*session)
	r.active.Clear()
	for _, bm := range r.byGrammar {
		bm.Clear()
	}
	r.Unlock()

	for _, s := range sessions {
		s.Lock()
		s.closed = true
		s.evaluator.Close()
		s.Unlock()
	}
}

func tableKey(cfg grammar.Config) string {
	key := cfg.Name
	if cfg.Strict {
		key += "/strict"
	}
	if cfg.CancelKeys {
		key += "/cancel"
	}
	return key
}
