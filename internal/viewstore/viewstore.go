// Package viewstore keeps the state of activated views in memory, keyed by
// an opaque id. A view lives until it is closed explicitly or sits idle
// longer than the store TTL.
package viewstore

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// View is owned state that must release its resources on teardown.
type View interface {
	Close()
}

type entry[V View] struct {
	view     V
	lastSeen time.Time
}

type Store[V View] struct {
	mu     sync.Mutex
	views  map[string]*entry[V]
	ttl    time.Duration
	now    func() time.Time
	logger *zap.Logger
}

// New creates a store. ttl <= 0 disables idle expiry.
func New[V View](name string, ttl time.Duration, logger ...*zap.Logger) *Store[V] {
	l := zap.L().Named("viewstore." + name)
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("viewstore." + name)
	}
	return &Store[V]{
		views:  make(map[string]*entry[V]),
		ttl:    ttl,
		now:    time.Now,
		logger: l,
	}
}

// Open registers v and returns its id.
func (s *Store[V]) Open(v V) string {
	id := uuid.NewString()

	s.mu.Lock()
	s.views[id] = &entry[V]{view: v, lastSeen: s.now()}
	count := len(s.views)
	s.mu.Unlock()

	s.logger.Debug("view opened", zap.String("view_id", id), zap.Int("open_views", count))
	return id
}

// Get returns the view and marks it as recently used.
func (s *Store[V]) Get(id string) (V, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.views[id]
	if !ok {
		var zero V
		return zero, false
	}
	e.lastSeen = s.now()
	return e.view, true
}

// Close tears the view down. It reports whether the id was known.
func (s *Store[V]) Close(id string) bool {
	s.mu.Lock()
	e, ok := s.views[id]
	if ok {
		delete(s.views, id)
	}
	s.mu.Unlock()

	if !ok {
		return false
	}
	e.view.Close()
	s.logger.Debug("view closed", zap.String("view_id", id))
	return true
}

// Sweep closes every view idle since before now-ttl and returns how many
// were closed.
func (s *Store[V]) Sweep(now time.Time) int {
	if s.ttl <= 0 {
		return 0
	}

	s.mu.Lock()
	var expired []V
	for id, e := range s.views {
		if now.Sub(e.lastSeen) > s.ttl {
			expired = append(expired, e.view)
			delete(s.views, id)
		}
	}
	s.mu.Unlock()

	for _, v := range expired {
		v.Close()
	}
	if len(expired) > 0 {
		s.logger.Info("idle views swept", zap.Int("count", len(expired)))
	}
	return len(expired)
}

// Run sweeps every interval until ctx is done, then closes all views.
func (s *Store[V]) Run(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			s.CloseAll()
			return
		case t := <-ticker.C:
			s.Sweep(t)
		}
	}
}

func (s *Store[V]) CloseAll() {
	s.mu.Lock()
	views := s.views
	s.views = make(map[string]*entry[V])
	s.mu.Unlock()

	for _, e := range views {
		e.view.Close()
	}
}

func (s *Store[V]) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.views)
}

// SetClock replaces the time source. Tests only.
func (s *Store[V]) SetClock(now func() time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.now = now
}
