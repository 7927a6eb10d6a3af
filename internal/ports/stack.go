package ports

import (
	"context"

	"github.com/randomtoy/cardstats-go/internal/domain"
)

// StackStore provides access to the fixed card orderings.
type StackStore interface {
	GetStack(ctx context.Context, stackID string) (domain.Stack, error)
	ListStacks(ctx context.Context) ([]domain.Stack, error)
}
