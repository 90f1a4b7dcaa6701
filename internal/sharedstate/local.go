package sharedstate

import (
	"context"
	"sync"
	"time"
)

// Local is an in-process Store, used when no Redis address is configured.
// It is the default for a single-server deployment.
type Local struct {
	mu       sync.Mutex
	sessions map[string]Session
	locks    map[string]*sync.Mutex
}

// NewLocal returns an empty in-memory Store.
func NewLocal() *Local {
	return &Local{
		sessions: make(map[string]Session),
		locks:    make(map[string]*sync.Mutex),
	}
}

func (l *Local) Get(_ context.Context, key string) (Session, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	s, ok := l.sessions[key]
	if !ok {
		return Session{}, ErrNotFound
	}
	return s, nil
}

func (l *Local) Set(_ context.Context, key string, s Session) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.sessions[key] = s
	return nil
}

func (l *Local) Swap(_ context.Context, key string, fn func(Session) Session) (Session, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	updated := fn(l.sessions[key])
	l.sessions[key] = updated
	return updated, nil
}

// Lock returns a no-op-contention mutex scoped to key: sufficient for a
// single process, where Go's own mutex already serializes callers. ttl is
// accepted for interface parity with the Redis implementation but unused.
func (l *Local) Lock(_ context.Context, key string, _ time.Duration) (func(context.Context) error, error) {
	l.mu.Lock()
	m, ok := l.locks[key]
	if !ok {
		m = &sync.Mutex{}
		l.locks[key] = m
	}
	l.mu.Unlock()

	m.Lock()
	return func(context.Context) error {
		m.Unlock()
		return nil
	}, nil
}
