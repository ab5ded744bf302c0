package storemock

import (
	"context"
	"sync"

	"solarshare-backend/internal/domain/payment"
	"solarshare-backend/internal/domain/property"
	"solarshare-backend/internal/domain/uow"
)

// Ensure compile-time compliance
var _ uow.UnitOfWork = (*UoW)(nil)

// UoW is a function-backed mock that satisfies uow.UnitOfWork.
type UoW struct {
	WithinTxFn         func(ctx context.Context, fn func(r uow.Repos) error) error
	WithinPropertyTxFn func(ctx context.Context, propertyID string, fn func(r uow.Repos, p *property.Property) error) error
	WithinPaymentTxFn  func(ctx context.Context, paymentID string, fn func(r uow.Repos, pm *payment.Payment) error) error
}

func (m *UoW) WithinTx(ctx context.Context, fn func(r uow.Repos) error) error {
	if m.WithinTxFn != nil {
		return m.WithinTxFn(ctx, fn)
	}
	return errUnimplemented
}
func (m *UoW) WithinPropertyTx(ctx context.Context, propertyID string, fn func(r uow.Repos, p *property.Property) error) error {
	if m.WithinPropertyTxFn != nil {
		return m.WithinPropertyTxFn(ctx, propertyID, fn)
	}
	return errUnimplemented
}
func (m *UoW) WithinPaymentTx(ctx context.Context, paymentID string, fn func(r uow.Repos, pm *payment.Payment) error) error {
	if m.WithinPaymentTxFn != nil {
		return m.WithinPaymentTxFn(ctx, paymentID, fn)
	}
	return errUnimplemented
}

// SerialUoW mimics the row lock with a mutex: each property or payment
// callback runs exclusively, the way the real unit of work serializes on
// SELECT ... FOR UPDATE. Lookup and repos are supplied by the test.
type SerialUoW struct {
	mu       sync.Mutex
	Repos    uow.Repos
	Property func(propertyID string) (*property.Property, error)
	Payment  func(paymentID string) (*payment.Payment, error)
}

var _ uow.UnitOfWork = (*SerialUoW)(nil)

func (s *SerialUoW) WithinTx(ctx context.Context, fn func(r uow.Repos) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return fn(s.Repos)
}

func (s *SerialUoW) WithinPropertyTx(ctx context.Context, propertyID string, fn func(r uow.Repos, p *property.Property) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, err := s.Property(propertyID)
	if err != nil {
		return err
	}
	return fn(s.Repos, p)
}

func (s *SerialUoW) WithinPaymentTx(ctx context.Context, paymentID string, fn func(r uow.Repos, pm *payment.Payment) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	pm, err := s.Payment(paymentID)
	if err != nil {
		return err
	}
	return fn(s.Repos, pm)
}
