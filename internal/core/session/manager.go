package session

import (
	"context"
	"sync"

	"github.com/manara-academy/platform-api/internal/core/domain"
	"github.com/manara-academy/platform-api/internal/core/ports"
)

// Manager maps browser session IDs to their Store, creating and hydrating
// lazily on first sight. It is the only place stores are constructed, so
// every visitor observes exactly one store per session ID.
type Manager struct {
	mu       sync.Mutex
	stores   map[string]*Store
	creds    ports.CredentialStore
	verifier ports.TokenVerifier

	// OnUpdate, when set before the first store is created, is subscribed
	// to every store the manager builds. Used by the composition root for
	// observability.
	OnUpdate Subscriber
}

func NewManager(creds ports.CredentialStore, verifier ports.TokenVerifier) *Manager {
	return &Manager{
		stores:   make(map[string]*Store),
		creds:    creds,
		verifier: verifier,
	}
}

// StoreFor returns the store for sessionID, creating it and kicking off
// hydration in the background when the ID is seen for the first time.
// Callers observing the store immediately after creation see StatusHydrating.
func (m *Manager) StoreFor(sessionID string) *Store {
	m.mu.Lock()
	st, ok := m.stores[sessionID]
	if !ok {
		st = New(sessionID, m.creds, m.verifier)
		if m.OnUpdate != nil {
			st.Subscribe(m.OnUpdate)
		}
		m.stores[sessionID] = st
		go st.Hydrate(context.Background())
	}
	m.mu.Unlock()
	return st
}

// Register creates a store for a freshly issued session ID and seeds it with
// the login result, skipping the hydration round trip.
func (m *Manager) Register(sessionID, token string, user domain.Profile) *Store {
	st := New(sessionID, m.creds, m.verifier)
	if m.OnUpdate != nil {
		st.Subscribe(m.OnUpdate)
	}
	st.LoginSucceeded(token, user)

	m.mu.Lock()
	m.stores[sessionID] = st
	m.mu.Unlock()
	return st
}

// Drop forgets the store for sessionID. Used after logout so a recycled
// cookie value starts from a clean hydration.
func (m *Manager) Drop(sessionID string) {
	m.mu.Lock()
	delete(m.stores, sessionID)
	m.mu.Unlock()
}
