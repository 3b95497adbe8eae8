package identity

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/bissquit/auctionhub/internal/domain"
	"github.com/bissquit/auctionhub/internal/pkg/ctxlog"
)

// Store is durable single-slot storage for at most one session.
type Store interface {
	// Load returns the persisted session. Missing or malformed records
	// report false and are never returned as errors.
	Load(ctx context.Context) (domain.Session, bool)
	// Save overwrites any persisted session.
	Save(ctx context.Context, session domain.Session) error
	// Clear removes the persisted session. Clearing an empty store is a no-op.
	Clear(ctx context.Context)
}

// MemoryStore keeps one serialized session in memory.
type MemoryStore struct {
	mu  sync.Mutex
	raw []byte
}

// NewMemoryStore creates an empty memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

// Load implements Store.
func (m *MemoryStore) Load(ctx context.Context) (domain.Session, bool) {
	m.mu.Lock()
	raw := m.raw
	m.mu.Unlock()

	if raw == nil {
		return domain.Session{}, false
	}

	session, err := decodeRecord(raw)
	if err != nil {
		ctxlog.FromContext(ctx).Debug("discarding stored session", "error", err)
		return domain.Session{}, false
	}
	return session, true
}

// Save implements Store.
func (m *MemoryStore) Save(_ context.Context, session domain.Session) error {
	raw, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("encode session: %w", err)
	}

	m.mu.Lock()
	m.raw = raw
	m.mu.Unlock()
	return nil
}

// Clear implements Store.
func (m *MemoryStore) Clear(_ context.Context) {
	m.mu.Lock()
	m.raw = nil
	m.mu.Unlock()
}

// SetRaw replaces the stored record with raw bytes, bypassing encoding.
func (m *MemoryStore) SetRaw(raw []byte) {
	m.mu.Lock()
	m.raw = raw
	m.mu.Unlock()
}

// Raw returns the stored record, or nil when the slot is empty.
func (m *MemoryStore) Raw() []byte {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.raw
}

func decodeRecord(raw []byte) (domain.Session, error) {
	var session domain.Session
	if err := json.Unmarshal(raw, &session); err != nil {
		return domain.Session{}, fmt.Errorf("%w: %v", ErrPersistenceCorruption, err)
	}
	if !session.IsComplete() {
		return domain.Session{}, fmt.Errorf("%w: incomplete record", ErrPersistenceCorruption)
	}
	return session, nil
}
