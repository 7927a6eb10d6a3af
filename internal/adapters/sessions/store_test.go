package sessions_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/randomtoy/cardstats-go/internal/adapters/sessions"
	"github.com/randomtoy/cardstats-go/internal/domain"
)

func TestMemoryStore_CreateGet(t *testing.T) {
	store := sessions.NewMemoryStore(10, time.Minute)
	ctx := context.Background()

	sess, err := store.Create(ctx, "new_deck")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if sess.ID == "" || sess.StackID != "new_deck" {
		t.Fatalf("unexpected session: %+v", sess)
	}
	if sess.Selection.Page != domain.PageSelectCard {
		t.Errorf("expected initial page, got %s", sess.Selection.Page)
	}

	got, err := store.Get(ctx, sess.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.ID != sess.ID {
		t.Errorf("expected %s, got %s", sess.ID, got.ID)
	}
}

func TestMemoryStore_SessionsAreIsolated(t *testing.T) {
	store := sessions.NewMemoryStore(10, time.Minute)
	ctx := context.Background()

	a, _ := store.Create(ctx, "new_deck")
	b, _ := store.Create(ctx, "new_deck")
	if a.ID == b.ID {
		t.Fatal("expected distinct session IDs")
	}

	_, err := store.Update(ctx, a.ID, func(s *domain.Session) error {
		s.Selection.Rank = domain.King
		return nil
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	gotB, _ := store.Get(ctx, b.ID)
	if gotB.Selection.Rank != 0 {
		t.Errorf("session b saw session a's rank: %v", gotB.Selection.Rank)
	}
}

func TestMemoryStore_UpdateErrorLeavesSession(t *testing.T) {
	store := sessions.NewMemoryStore(10, time.Minute)
	ctx := context.Background()
	sess, _ := store.Create(ctx, "new_deck")

	boom := errors.New("boom")
	_, err := store.Update(ctx, sess.ID, func(s *domain.Session) error {
		s.Selection.Rank = domain.Ace
		return boom
	})
	if !errors.Is(err, boom) {
		t.Fatalf("expected boom, got %v", err)
	}

	got, _ := store.Get(ctx, sess.ID)
	if got.Selection.Rank != 0 {
		t.Errorf("failed update was saved: %+v", got.Selection)
	}
}

func TestMemoryStore_ConcurrentUpdates(t *testing.T) {
	store := sessions.NewMemoryStore(10, time.Minute)
	ctx := context.Background()
	sess, _ := store.Create(ctx, "new_deck")

	var wg sync.WaitGroup
	for range 50 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, _ = store.Update(ctx, sess.ID, func(s *domain.Session) error {
				s.Selection.Position++
				return nil
			})
		}()
	}
	wg.Wait()

	got, _ := store.Get(ctx, sess.ID)
	if got.Selection.Position != 50 {
		t.Errorf("expected 50 serialized updates, got %d", got.Selection.Position)
	}
}

func TestMemoryStore_NotFound(t *testing.T) {
	store := sessions.NewMemoryStore(10, time.Minute)
	ctx := context.Background()

	if _, err := store.Get(ctx, "missing"); !errors.Is(err, domain.ErrSessionNotFound) {
		t.Errorf("Get: expected ErrSessionNotFound, got %v", err)
	}
	if _, err := store.Update(ctx, "missing", func(*domain.Session) error { return nil }); !errors.Is(err, domain.ErrSessionNotFound) {
		t.Errorf("Update: expected ErrSessionNotFound, got %v", err)
	}
	if err := store.Delete(ctx, "missing"); !errors.Is(err, domain.ErrSessionNotFound) {
		t.Errorf("Delete: expected ErrSessionNotFound, got %v", err)
	}
}

func TestMemoryStore_Delete(t *testing.T) {
	store := sessions.NewMemoryStore(10, time.Minute)
	ctx := context.Background()
	sess, _ := store.Create(ctx, "new_deck")

	if err := store.Delete(ctx, sess.ID); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := store.Get(ctx, sess.ID); !errors.Is(err, domain.ErrSessionNotFound) {
		t.Errorf("expected ErrSessionNotFound after delete, got %v", err)
	}
}

func TestMemoryStore_CapacityEvictsOldest(t *testing.T) {
	store := sessions.NewMemoryStore(2, time.Minute)
	ctx := context.Background()

	first, _ := store.Create(ctx, "new_deck")
	_, _ = store.Create(ctx, "new_deck")
	_, _ = store.Create(ctx, "new_deck")

	if store.Len() != 2 {
		t.Errorf("expected 2 sessions, got %d", store.Len())
	}
	if _, err := store.Get(ctx, first.ID); !errors.Is(err, domain.ErrSessionNotFound) {
		t.Errorf("expected oldest session evicted, got %v", err)
	}
}

func TestMemoryStore_Expiry(t *testing.T) {
	store := sessions.NewMemoryStore(10, 20*time.Millisecond)
	ctx := context.Background()
	sess, _ := store.Create(ctx, "new_deck")

	time.Sleep(60 * time.Millisecond)

	if _, err := store.Get(ctx, sess.ID); !errors.Is(err, domain.ErrSessionNotFound) {
		t.Errorf("expected expired session, got %v", err)
	}
}
