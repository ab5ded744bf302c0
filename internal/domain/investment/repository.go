package investment

import "context"

type Repository interface {
	Create(ctx context.Context, i *Investment) error
	// SumUnitsByProperty returns the cumulative units purchased for one
	// property. Inside a unit of work that holds the property row lock,
	// this is the authoritative funded total.
	SumUnitsByProperty(ctx context.Context, propertyID string) (int, error)
	SumUnitsByProperties(ctx context.Context, propertyIDs []string) (map[string]int, error)
	ListByProperty(ctx context.Context, propertyID string) ([]Investment, error)
	ListByInvestor(ctx context.Context, investorID string) ([]Investment, error)
}
