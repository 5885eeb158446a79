// Package store implements the ring buffer store of spec.md §4.3: a
// per-metric bounded history, appended to exclusively by the sampler and
// read by the renderer and HTTP worker under a shared lock. CSV mode runs
// without a store.
// The RWMutex-guarded cache shape is adapted from the teacher daemon's
// services/metrics.MetricsCache; series insertion order is tracked
// separately since the cache's plain map never needed one.
package store

import (
	"sync"

	"github.com/cskr/pubsub"

	"github.com/cubestat/cubestat-go/daemon/metricname"
)

// TickTopic is the pubsub topic an ingest publishes to once a full batch
// of metrics from one sample has landed. Subscribers (the render loop's
// wakeups) never see a partial tick because the publish happens after
// every value in the tick has been pushed.
const TickTopic = "tick"

// Store is the thread-safe, bounded-history backing store for every
// standardized metric the collectors produce.
type Store struct {
	capacity int
	hub      *pubsub.PubSub

	mu     sync.RWMutex
	series map[metricname.Name]*ring
	order  []metricname.Name // insertion order, first-seen wins
}

// New creates a Store with the given per-series ring capacity. hub may be
// nil, in which case Ingest simply skips the notification.
func New(capacity int, hub *pubsub.PubSub) *Store {
	return &Store{
		capacity: capacity,
		hub:      hub,
		series:   make(map[metricname.Name]*ring),
	}
}

// Ingest appends one sample tick's worth of values under a single
// exclusive lock, creating any series seen for the first time, then
// publishes a TickTopic notification. Concurrent Snapshot calls can never
// observe a partial tick: the lock is held for the whole batch.
func (s *Store) Ingest(values map[metricname.Name]float64) {
	s.mu.Lock()
	for name, v := range values {
		r, ok := s.series[name]
		if !ok {
			r = newRing(s.capacity)
			s.series[name] = r
			s.order = append(s.order, name)
		}
		r.push(v)
	}
	s.mu.Unlock()

	if s.hub != nil {
		s.hub.Pub(struct{}{}, TickTopic)
	}
}

// Snapshot returns the cols values of name ending offset positions back
// from the newest sample, left-padded with zeros, plus the maximum value
// observed in that window. A name that has never been ingested returns an
// all-zero slice and max 0. cols == 0 returns an empty slice without
// taking any lock.
func (s *Store) Snapshot(name metricname.Name, cols, offset int) ([]float64, float64) {
	if cols <= 0 {
		return nil, 0
	}

	s.mu.RLock()
	defer s.mu.RUnlock()
	r, ok := s.series[name]
	if !ok {
		return make([]float64, cols), 0
	}

	values := r.snapshot(cols, offset)
	max := 0.0
	for _, v := range values {
		if v > max {
			max = v
		}
	}
	return values, max
}

// Len returns the current number of samples stored for name.
func (s *Store) Len(name metricname.Name) int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	r, ok := s.series[name]
	if !ok {
		return 0
	}
	return r.len()
}

// Names returns every series name in first-seen insertion order. The
// returned slice is a copy; callers may not mutate it.
func (s *Store) Names() []metricname.Name {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]metricname.Name, len(s.order))
	copy(out, s.order)
	return out
}

// Capacity returns the fixed per-series ring capacity the Store was
// created with.
func (s *Store) Capacity() int {
	return s.capacity
}

// Subscribe returns a channel that receives a value every time Ingest
// completes a tick. Callers must eventually call Unsubscribe with the same
// channel to release it, or pass the Store's hub to pubsub.Unsub directly.
func (s *Store) Subscribe() chan interface{} {
	if s.hub == nil {
		return nil
	}
	return s.hub.Sub(TickTopic)
}

// Unsubscribe releases a channel obtained from Subscribe.
func (s *Store) Unsubscribe(ch chan interface{}) {
	if s.hub == nil || ch == nil {
		return
	}
	s.hub.Unsub(ch)
}
