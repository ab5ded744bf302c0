package payment

import "context"

type Repository interface {
	Create(ctx context.Context, p *Payment) error
	GetByPaymentID(ctx context.Context, paymentID string) (*Payment, error)
	// GetByPaymentIDForUpdate locks the payment row for the remainder of
	// the surrounding transaction. Only valid inside a unit of work.
	GetByPaymentIDForUpdate(ctx context.Context, paymentID string) (*Payment, error)
	ListByHomeowner(ctx context.Context, homeownerID string) ([]Payment, error)
	ListByProperty(ctx context.Context, propertyID string) ([]Payment, error)
	ListByLogIDs(ctx context.Context, logIDs []string) (map[string]Payment, error)
	Save(ctx context.Context, p *Payment) error

	CreatePayouts(ctx context.Context, payouts []*InvestorPayout) error
	CountPayoutsByPayment(ctx context.Context, paymentID string) (int64, error)
	ListPayoutRecordsByInvestor(ctx context.Context, investorID string) ([]PayoutRecord, error)
}
