package energy

import "context"

type Repository interface {
	Create(ctx context.Context, l *Log) error
	// ListByProperty returns readings newest month first.
	ListByProperty(ctx context.Context, propertyID string) ([]Log, error)
}
