package uow

import (
	"context"

	"solarshare-backend/internal/domain/energy"
	"solarshare-backend/internal/domain/investment"
	"solarshare-backend/internal/domain/payment"
	"solarshare-backend/internal/domain/property"
	"solarshare-backend/internal/domain/user"
)

// Repos is the full repository set bound to one transaction.
type Repos struct {
	Users       user.Repository
	Properties  property.Repository
	Investments investment.Repository
	EnergyLogs  energy.Repository
	Payments    payment.Repository
}

type UnitOfWork interface {
	// plain tx
	WithinTx(ctx context.Context, fn func(r Repos) error) error
	// convenience: lock the property row first, then pass it in. Unit
	// purchases run under this so the check-insert-recheck sequence is
	// serialized per property.
	WithinPropertyTx(ctx context.Context, propertyID string, fn func(r Repos, p *property.Property) error) error
	// convenience: lock the payment row first. Confirmation runs under
	// this so payout inserts and the status flip are one atomic unit.
	WithinPaymentTx(ctx context.Context, paymentID string, fn func(r Repos, pm *payment.Payment) error) error
}
