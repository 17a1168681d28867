// Package session holds the authenticated-user state for one visitor and the
// manager that maps browser session IDs to their stores. The Store is the
// single source of truth for authentication state: it is read by any
// component but mutated only through Hydrate, LoginSucceeded, and Logout.
package session

import (
	"context"
	"errors"
	"sync"

	"github.com/manara-academy/platform-api/internal/core/domain"
	"github.com/manara-academy/platform-api/internal/core/ports"
)

// Subscriber receives a consistent snapshot after every store update.
type Subscriber func(domain.Session)

// Store owns one visitor's Session. A new store starts in hydrating status;
// the first Hydrate resolves it to authenticated or unauthenticated.
type Store struct {
	mu        sync.Mutex
	sess      domain.Session
	epoch     uint64
	inFlight  bool
	subs      []Subscriber
	sessionID string
	creds     ports.CredentialStore
	verifier  ports.TokenVerifier
}

// New creates a Store for the given browser session ID. The store reports
// StatusHydrating until Hydrate resolves.
func New(sessionID string, creds ports.CredentialStore, verifier ports.TokenVerifier) *Store {
	return &Store{
		sess:      domain.Session{Status: domain.StatusHydrating},
		sessionID: sessionID,
		creds:     creds,
		verifier:  verifier,
	}
}

// Session returns a snapshot of the current state. The snapshot is taken
// under lock, so readers never observe a torn update.
func (s *Store) Session() domain.Session {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.sess
}

// Subscribe registers fn to be called synchronously after every update.
func (s *Store) Subscribe(fn Subscriber) {
	s.mu.Lock()
	s.subs = append(s.subs, fn)
	s.mu.Unlock()
}

// Hydrate restores a previously persisted credential. It is idempotent: a
// call while a hydration is already in flight returns immediately, and a
// resolution that was superseded by LoginSucceeded or Logout is discarded,
// so the last action always wins.
func (s *Store) Hydrate(ctx context.Context) {
	s.mu.Lock()
	if s.inFlight {
		s.mu.Unlock()
		return
	}
	s.inFlight = true
	epoch := s.epoch
	s.sess = domain.Session{Status: domain.StatusHydrating}
	snap := s.sess
	s.mu.Unlock()
	s.notify(snap)

	next := s.resolve(ctx)

	s.mu.Lock()
	s.inFlight = false
	if s.epoch != epoch {
		// A login or logout happened mid-hydration; the stale result
		// must not overwrite it.
		s.mu.Unlock()
		return
	}
	s.sess = next
	snap = s.sess
	s.mu.Unlock()
	s.notify(snap)
}

func (s *Store) resolve(ctx context.Context) domain.Session {
	token, err := s.creds.Read(ctx, s.sessionID)
	switch {
	case errors.Is(err, domain.ErrNoCredential):
		return domain.Session{Status: domain.StatusUnauthenticated}
	case err != nil:
		return domain.Session{Status: domain.StatusError, Err: "could not restore session"}
	}

	user, err := s.verifier.Verify(token)
	if err != nil {
		// Invalid or expired credential: drop it so the next boot skips
		// the verify attempt.
		_ = s.creds.Delete(ctx, s.sessionID)
		return domain.Session{Status: domain.StatusUnauthenticated}
	}

	return domain.Session{Token: token, User: user, Status: domain.StatusAuthenticated}
}

// LoginSucceeded records a fresh credential and identity.
func (s *Store) LoginSucceeded(token string, user domain.Profile) {
	s.mu.Lock()
	s.epoch++
	s.sess = domain.Session{Token: token, User: &user, Status: domain.StatusAuthenticated}
	snap := s.sess
	s.mu.Unlock()
	s.notify(snap)
}

// Logout resets the session and removes the persisted credential. A
// hydration still in flight is superseded and its result disregarded.
func (s *Store) Logout(ctx context.Context) {
	s.mu.Lock()
	s.epoch++
	s.sess = domain.Session{Status: domain.StatusUnauthenticated}
	snap := s.sess
	s.mu.Unlock()

	_ = s.creds.Delete(ctx, s.sessionID)
	s.notify(snap)
}

// notify runs outside the store lock so a subscriber may read the store
// without deadlocking; each subscriber still receives a consistent snapshot.
func (s *Store) notify(snap domain.Session) {
	s.mu.Lock()
	subs := make([]Subscriber, len(s.subs))
	copy(subs, s.subs)
	s.mu.Unlock()

	for _, fn := range subs {
		fn(snap)
	}
}
