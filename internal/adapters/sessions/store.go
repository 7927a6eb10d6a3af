package sessions

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/randomtoy/cardstats-go/internal/domain"
)

// MemoryStore keeps sessions in a bounded LRU. A session expires after ttl
// without being read or written.
type MemoryStore struct {
	mu    sync.Mutex
	cache *expirable.LRU[string, domain.Session]
}

// NewMemoryStore returns a store holding at most capacity sessions. A zero
// capacity or ttl disables that bound.
func NewMemoryStore(capacity int, ttl time.Duration) *MemoryStore {
	return &MemoryStore{
		cache: expirable.NewLRU[string, domain.Session](capacity, nil, ttl),
	}
}

func (s *MemoryStore) Create(_ context.Context, stackID string) (domain.Session, error) {
	now := time.Now().UTC()
	sess := domain.Session{
		ID:        uuid.NewString(),
		StackID:   stackID,
		Selection: domain.NewSelection(),
		CreatedAt: now,
		UpdatedAt: now,
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.cache.Add(sess.ID, sess)
	return sess, nil
}

func (s *MemoryStore) Get(_ context.Context, id string) (domain.Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.cache.Get(id)
	if !ok {
		return domain.Session{}, domain.ErrSessionNotFound
	}
	// Re-adding refreshes the expiry.
	s.cache.Add(id, sess)
	return sess, nil
}

func (s *MemoryStore) Update(_ context.Context, id string, fn func(*domain.Session) error) (domain.Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.cache.Get(id)
	if !ok {
		return domain.Session{}, domain.ErrSessionNotFound
	}
	next := sess
	if err := fn(&next); err != nil {
		return sess, err
	}
	next.ID = sess.ID
	next.UpdatedAt = time.Now().UTC()
	s.cache.Add(id, next)
	return next, nil
}

func (s *MemoryStore) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.cache.Remove(id) {
		return domain.ErrSessionNotFound
	}
	return nil
}

// Len reports the number of live sessions.
func (s *MemoryStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cache.Len()
}
