package cart

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/loja-labs/backend-loja/internal/events"
	"github.com/loja-labs/backend-loja/internal/notify"
	"github.com/loja-labs/backend-loja/internal/shipping"
	"github.com/loja-labs/backend-loja/internal/storage"
)

// Manager hands out one Store per cart id, restoring persisted state on
// first access so a cart survives across sessions.
type Manager struct {
	Catalog  ProductGetter
	Storage  storage.Store
	Notifier notify.Notifier
	Events   *events.Bus
	Quoter   shipping.Quoter
	Logger   zerolog.Logger
	Now      func() time.Time

	mu     sync.Mutex
	stores map[string]*Store
}

func (m *Manager) newStore(id string) *Store {
	return &Store{
		CartID:   id,
		Catalog:  m.Catalog,
		Storage:  m.Storage,
		Notifier: m.Notifier,
		Events:   m.Events,
		Quoter:   m.Quoter,
		Logger:   m.Logger.With().Str("cart_id", id).Logger(),
		Now:      m.Now,
	}
}

// Create allocates a fresh cart with a generated identifier.
func (m *Manager) Create(ctx context.Context) *Store {
	store := m.newStore(uuid.NewString())
	store.mu.Lock()
	store.recomputeLocked()
	store.persistLocked(ctx)
	store.mu.Unlock()

	m.mu.Lock()
	if m.stores == nil {
		m.stores = map[string]*Store{}
	}
	m.stores[store.CartID] = store
	m.mu.Unlock()
	return store
}

// Get returns the live store for the cart id, restoring it from storage
// when this process has not seen it yet.
func (m *Manager) Get(ctx context.Context, id string) (*Store, error) {
	if id == "" {
		return nil, ErrCartNotFound
	}
	m.mu.Lock()
	if store, ok := m.stores[id]; ok {
		m.mu.Unlock()
		return store, nil
	}
	m.mu.Unlock()

	store := m.newStore(id)
	if !store.restore(ctx) {
		return nil, ErrCartNotFound
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if existing, ok := m.stores[id]; ok {
		// Another request restored it concurrently; keep the first.
		return existing, nil
	}
	if m.stores == nil {
		m.stores = map[string]*Store{}
	}
	m.stores[id] = store
	return store, nil
}
