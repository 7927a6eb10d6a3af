package ports

import (
	"context"

	"github.com/randomtoy/cardstats-go/internal/domain"
)

// SessionStore keeps per-session selection state. Implementations must not
// let one session observe another's state.
type SessionStore interface {
	Create(ctx context.Context, stackID string) (domain.Session, error)
	Get(ctx context.Context, id string) (domain.Session, error)
	// Update runs fn on the stored session and saves the result atomically.
	// If fn returns an error the session is left unchanged.
	Update(ctx context.Context, id string, fn func(*domain.Session) error) (domain.Session, error)
	Delete(ctx context.Context, id string) error
}
