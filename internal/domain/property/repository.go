package property

import "context"

type Repository interface {
	Create(ctx context.Context, p *Property) error
	GetByPropertyID(ctx context.Context, propertyID string) (*Property, error)
	// GetByPropertyIDForUpdate locks the property row for the remainder of
	// the surrounding transaction. Only valid inside a unit of work.
	GetByPropertyIDForUpdate(ctx context.Context, propertyID string) (*Property, error)
	ListByHomeowner(ctx context.Context, homeownerID string) ([]Property, error)
	ListByVendor(ctx context.Context, vendorID string) ([]Property, error)
	// ListOpen returns properties visible to investors (quoted or funded).
	ListOpen(ctx context.Context) ([]Property, error)
	Save(ctx context.Context, p *Property) error
}
