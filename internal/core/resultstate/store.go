package resultstate

import (
	"sync"

	"complaints/internal/core/displaystate"

	"github.com/google/uuid"
)

// Listener observes a committed state and the banner resolved for it
type Listener func(State, displaystate.Variant)

// Store serializes dispatches and fans committed states out to listeners
// listeners run outside the lock and see states in commit order
type Store struct {
	mu       sync.Mutex
	state    State
	subs     []subscriber
	pending  []State
	draining bool
}

type subscriber struct {
	id uuid.UUID
	fn Listener
}

// Subscription is the handle returned by Subscribe
type Subscription struct {
	id uuid.UUID
	st *Store
}

// NewStore returns a store seeded with initial
func NewStore(initial State) *Store { return &Store{state: initial} }

// State returns the current state
func (s *Store) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Dispatch reduces a into the current state, notifies listeners and returns the new state
// a dispatch made while another goroutine or a listener is notifying is queued
// and delivered by that notifier once the states before it have been delivered
func (s *Store) Dispatch(a Action) State {
	s.mu.Lock()
	s.state = Reduce(s.state, a)
	next := s.state
	s.pending = append(s.pending, next)
	if s.draining {
		s.mu.Unlock()
		return next
	}
	s.draining = true
	s.mu.Unlock()

	s.drain()
	return next
}

func (s *Store) drain() {
	s.mu.Lock()
	defer func() {
		if r := recover(); r != nil {
			s.mu.Lock()
			s.pending, s.draining = nil, false
			s.mu.Unlock()
			panic(r)
		}
	}()
	for len(s.pending) > 0 {
		st := s.pending[0]
		s.pending = s.pending[1:]
		subs := append([]subscriber(nil), s.subs...)
		s.mu.Unlock()

		v := st.Variant()
		for _, sub := range subs {
			sub.fn(st, v)
		}
		s.mu.Lock()
	}
	s.pending, s.draining = nil, false
	s.mu.Unlock()
}

// Subscribe registers fn for every future dispatch
func (s *Store) Subscribe(fn Listener) Subscription {
	if fn == nil {
		panic("resultstate: nil listener")
	}
	id := uuid.New()
	s.mu.Lock()
	s.subs = append(s.subs, subscriber{id: id, fn: fn})
	s.mu.Unlock()
	return Subscription{id: id, st: s}
}

// ID returns the subscription id
func (sub Subscription) ID() uuid.UUID { return sub.id }

// Unsubscribe removes the listener, calling it twice is a no-op
func (sub Subscription) Unsubscribe() {
	if sub.st == nil {
		return
	}
	s := sub.st
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, x := range s.subs {
		if x.id == sub.id {
			s.subs = append(s.subs[:i:i], s.subs[i+1:]...)
			return
		}
	}
}

// OnChange wraps fn so it only fires when the banner kind differs from the last one seen
// the first committed state always fires
func OnChange(fn func(prev, next displaystate.Variant, st State)) Listener {
	var (
		mu   sync.Mutex
		last displaystate.Variant
		seen bool
	)
	return func(st State, v displaystate.Variant) {
		mu.Lock()
		prev, had := last, seen
		changed := !had || prev.Kind != v.Kind
		last, seen = v, true
		mu.Unlock()
		if changed {
			fn(prev, v, st)
		}
	}
}
