// Package billing turns vendor-submitted production readings into
// homeowner payment obligations at the platform tariff.
package billing

import (
	"context"
	"errors"
	"fmt"
	"time"

	"solarshare-backend/internal/domain/energy"
	"solarshare-backend/internal/domain/payment"
	"solarshare-backend/internal/domain/property"
	"solarshare-backend/internal/domain/uow"
	"solarshare-backend/internal/domain/user"
	"solarshare-backend/internal/notification"
	"solarshare-backend/pkg/id"

	"github.com/shopspring/decimal"
)

// Platform tariff. The homeowner is billed at the grid price minus the
// platform discount; any change applies uniformly to all properties.
var (
	GridUnitPrice = decimal.NewFromInt(10)
	DiscountRate  = decimal.NewFromFloat(0.15)
)

// DiscountedUnitPrice is GridUnitPrice × (1 − DiscountRate).
func DiscountedUnitPrice() decimal.Decimal {
	return GridUnitPrice.Mul(decimal.NewFromInt(1).Sub(DiscountRate))
}

type Usecase struct {
	users  user.Repository
	logs   energy.Repository
	uow    uow.UnitOfWork
	notify notification.Notifier
}

func NewUsecase(users user.Repository, logs energy.Repository, tx uow.UnitOfWork, n notification.Notifier) *Usecase {
	return &Usecase{users: users, logs: logs, uow: tx, notify: n}
}

type SubmitEnergyLogInput struct {
	PropertyID    string
	VendorID      string
	Month         string // "YYYY-MM"
	UnitsProduced decimal.Decimal
}

type EnergyLogResult struct {
	LogID         string          `json:"log_id"`
	PaymentID     string          `json:"payment_id"`
	PropertyID    string          `json:"property_id"`
	Month         string          `json:"month"`
	UnitsProduced decimal.Decimal `json:"units_produced"`
	UnitPrice     decimal.Decimal `json:"unit_price"`
	AmountDue     decimal.Decimal `json:"amount_due"`
	CreatedAt     time.Time       `json:"created_at"`
}

// SubmitEnergyLog records a monthly reading and, in the same transaction,
// the payment it obliges: amount_due = discounted unit price × units.
// Only the assigned vendor may log. A repeat submission for the same month
// is accepted as a correction and produces its own payment.
func (u *Usecase) SubmitEnergyLog(ctx context.Context, in SubmitEnergyLogInput) (*EnergyLogResult, error) {
	if _, err := time.Parse("2006-01", in.Month); err != nil {
		return nil, fmt.Errorf("month must be formatted YYYY-MM: %q", in.Month)
	}
	if !in.UnitsProduced.IsPositive() {
		return nil, errors.New("units_produced must be positive")
	}

	unitPrice := DiscountedUnitPrice()
	amountDue := unitPrice.Mul(in.UnitsProduced)

	var (
		res         *EnergyLogResult
		homeownerID string
	)
	err := u.uow.WithinPropertyTx(ctx, in.PropertyID, func(r uow.Repos, p *property.Property) error {
		if p.AssignedVendorID != in.VendorID {
			return property.ErrNotAssignedVendor
		}

		l := &energy.Log{
			LogID:         id.NewID32(),
			PropertyID:    p.PropertyID,
			VendorID:      in.VendorID,
			Month:         in.Month,
			UnitsProduced: in.UnitsProduced,
		}
		if err := r.EnergyLogs.Create(ctx, l); err != nil {
			return err
		}

		pm := &payment.Payment{
			PaymentID:   id.NewID32(),
			LogID:       l.LogID,
			PropertyID:  p.PropertyID,
			HomeownerID: p.HomeownerID,
			UnitsLogged: in.UnitsProduced,
			UnitPrice:   unitPrice,
			AmountDue:   amountDue,
			Status:      payment.StatusDue,
		}
		if err := r.Payments.Create(ctx, pm); err != nil {
			return err
		}

		homeownerID = p.HomeownerID
		res = &EnergyLogResult{
			LogID:         l.LogID,
			PaymentID:     pm.PaymentID,
			PropertyID:    p.PropertyID,
			Month:         in.Month,
			UnitsProduced: in.UnitsProduced,
			UnitPrice:     unitPrice,
			AmountDue:     amountDue,
			CreatedAt:     l.CreatedAt,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	if owner, err := u.users.GetByUserID(ctx, homeownerID); err == nil {
		u.notify.Notify(ctx, owner.FCMToken, "Monthly Payment Due",
			fmt.Sprintf("Your solar energy bill for %s is %s. Please pay soon.", in.Month, amountDue.StringFixed(2)))
	}

	return res, nil
}

type EnergyLogDTO struct {
	LogID         string          `json:"log_id"`
	Month         string          `json:"month"`
	UnitsProduced decimal.Decimal `json:"units_produced"`
	CreatedAt     time.Time       `json:"created_at"`
}

// EnergyLogs lists a property's readings, newest month first.
func (u *Usecase) EnergyLogs(ctx context.Context, propertyID string) ([]EnergyLogDTO, error) {
	logs, err := u.logs.ListByProperty(ctx, propertyID)
	if err != nil {
		return nil, err
	}
	out := make([]EnergyLogDTO, 0, len(logs))
	for _, l := range logs {
		out = append(out, EnergyLogDTO{
			LogID:         l.LogID,
			Month:         l.Month,
			UnitsProduced: l.UnitsProduced,
			CreatedAt:     l.CreatedAt,
		})
	}
	return out, nil
}
