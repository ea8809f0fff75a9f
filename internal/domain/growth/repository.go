package growth

import "context"

type Repository interface {
	Create(ctx context.Context, rec Record) error
	// ListByChild returns the child's records sorted ascending by
	// measurement date.
	ListByChild(ctx context.Context, childID string) ([]Record, error)
}
