package session

import (
	"context"
	"sync"

	"github.com/lyrapkg/lyra/internal/client/credentials"
	"github.com/lyrapkg/lyra/internal/client/identity"
	"github.com/lyrapkg/lyra/internal/logging"
)

// Listener receives every state a Session transitions into.
type Listener func(State)

type subscriber struct {
	id int
	fn Listener

	// mu serialises deliveries to fn; last is the seq of the newest state
	// fn has seen.
	mu   sync.Mutex
	last uint64
}

func (sub *subscriber) deliver(seq uint64, st State) {
	sub.mu.Lock()
	defer sub.mu.Unlock()
	if seq <= sub.last {
		return
	}
	sub.last = seq
	sub.fn(st)
}

// Session derives the signed-in identity from a credentials.Store.
type Session struct {
	store credentials.Store
	log   logging.Logger

	mu     sync.Mutex
	state  State
	seq    uint64
	subs   []*subscriber
	nextID int
	once   sync.Once
}

// Option configures a Session.
type Option func(*Session)

// WithLogger sets the logger used for store failures.
func WithLogger(l logging.Logger) Option {
	return func(s *Session) { s.log = l }
}

// New returns an unresolved Session over store.
func New(store credentials.Store, opts ...Option) *Session {
	s := &Session{
		store: store,
		log:   logging.NewNoop(),
		state: unresolved(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Start performs the startup Refresh. Only the first call does anything.
func (s *Session) Start(ctx context.Context) State {
	s.once.Do(func() { s.Refresh(ctx) })
	return s.Current()
}

// Current returns the latest state.
func (s *Session) Current() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Refresh re-reads the store and re-derives the state. It always ends in
// StatusAbsent or StatusPresent.
func (s *Session) Refresh(ctx context.Context) State {
	return s.set(s.resolve(ctx))
}

func (s *Session) resolve(ctx context.Context) State {
	token, ok, err := s.store.Get(ctx)
	if err != nil {
		s.log.Warn(ctx, "credential store read failed", "err", err)
		return absent()
	}
	if !ok {
		return absent()
	}
	id, err := identity.Parse(token)
	if err != nil {
		s.log.Debug(ctx, "stored credential not decodable", "err", err)
		return absent()
	}
	return present(id)
}

// Logout clears the store and moves to StatusAbsent. A failed clear is
// logged; the state still becomes absent.
func (s *Session) Logout(ctx context.Context) State {
	if err := s.store.Clear(ctx); err != nil {
		s.log.Warn(ctx, "credential store clear failed", "err", err)
	}
	return s.set(absent())
}

// Subscribe registers fn for every later transition and returns a function
// that removes it. Listeners run on the goroutine that caused the transition,
// in subscription order. A listener never sees an older state after a newer
// one: when transitions race, calls to the same listener are serialised and
// a state superseded before it reached the listener is skipped. A listener
// must not trigger Refresh or Logout on the same goroutine.
func (s *Session) Subscribe(fn Listener) (unsubscribe func()) {
	s.mu.Lock()
	id := s.nextID
	s.nextID++
	s.subs = append(s.subs, &subscriber{id: id, fn: fn, last: s.seq})
	s.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			s.mu.Lock()
			defer s.mu.Unlock()
			for i, sub := range s.subs {
				if sub.id == id {
					s.subs = append(s.subs[:i:i], s.subs[i+1:]...)
					return
				}
			}
		})
	}
}

func (s *Session) set(next State) State {
	s.mu.Lock()
	s.seq++
	seq := s.seq
	s.state = next
	subs := make([]*subscriber, len(s.subs))
	copy(subs, s.subs)
	s.mu.Unlock()

	for _, sub := range subs {
		sub.deliver(seq, next)
	}
	return next
}
