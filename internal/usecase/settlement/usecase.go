// Package settlement confirms due payments and disburses them pro-rata to
// the property's investors.
package settlement

import (
	"context"
	"time"

	"solarshare-backend/internal/domain/payment"
	"solarshare-backend/internal/domain/uow"
	"solarshare-backend/pkg/id"

	"github.com/shopspring/decimal"
)

type Usecase struct {
	payments payment.Repository
	uow      uow.UnitOfWork
}

func NewUsecase(payments payment.Repository, tx uow.UnitOfWork) *Usecase {
	return &Usecase{payments: payments, uow: tx}
}

type PayoutDTO struct {
	PayoutID   string          `json:"payout_id"`
	InvestorID string          `json:"investor_id"`
	Amount     decimal.Decimal `json:"amount"`
}

type ConfirmResult struct {
	PaymentID   string          `json:"payment_id"`
	AmountDue   decimal.Decimal `json:"amount_due"`
	Status      string          `json:"status"`
	ConfirmedAt time.Time       `json:"confirmed_at"`
	Payouts     []PayoutDTO     `json:"payouts"`
}

// ConfirmPayment flips a due payment to paid and writes the full payout
// set, all inside the payment row lock: either every payout and the status
// flip land, or none do. Confirming twice fails with ErrAlreadyConfirmed
// and writes nothing; a missing payment fails with ErrNotFound. The caller
// must be the homeowner the payment is owed by.
func (u *Usecase) ConfirmPayment(ctx context.Context, paymentID, homeownerID string) (*ConfirmResult, error) {
	var res *ConfirmResult
	err := u.uow.WithinPaymentTx(ctx, paymentID, func(r uow.Repos, pm *payment.Payment) error {
		if pm.HomeownerID != homeownerID {
			return payment.ErrNotFound
		}
		if pm.Status != payment.StatusDue {
			return payment.ErrAlreadyConfirmed
		}
		// a crashed earlier attempt cannot have left rows behind (payouts
		// commit with the status flip), so any existing set means state
		// corruption worth refusing loudly
		if n, err := r.Payments.CountPayoutsByPayment(ctx, pm.PaymentID); err != nil {
			return err
		} else if n > 0 {
			return payment.ErrAlreadyConfirmed
		}

		invs, err := r.Investments.ListByProperty(ctx, pm.PropertyID)
		if err != nil {
			return err
		}
		unitsByInvestor := make(map[string]int)
		for _, inv := range invs {
			unitsByInvestor[inv.InvestorID] += inv.UnitsPurchased
		}
		holdings := sortedHoldings(unitsByInvestor)
		shares := splitProRata(pm.AmountDue, holdings)

		now := time.Now().UTC()
		payouts := make([]*payment.InvestorPayout, 0, len(holdings))
		dtos := make([]PayoutDTO, 0, len(holdings))
		for _, h := range holdings {
			amt, ok := shares[h.InvestorID]
			if !ok {
				continue
			}
			p := &payment.InvestorPayout{
				PayoutID:   id.NewID32(),
				PaymentID:  pm.PaymentID,
				InvestorID: h.InvestorID,
				Amount:     amt,
			}
			payouts = append(payouts, p)
			dtos = append(dtos, PayoutDTO{PayoutID: p.PayoutID, InvestorID: p.InvestorID, Amount: p.Amount})
		}
		if err := r.Payments.CreatePayouts(ctx, payouts); err != nil {
			return err
		}

		pm.Status = payment.StatusPaid
		pm.ConfirmedAt = &now
		if err := r.Payments.Save(ctx, pm); err != nil {
			return err
		}

		res = &ConfirmResult{
			PaymentID:   pm.PaymentID,
			AmountDue:   pm.AmountDue,
			Status:      string(pm.Status),
			ConfirmedAt: now,
			Payouts:     dtos,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return res, nil
}

type PaymentDTO struct {
	PaymentID   string          `json:"payment_id"`
	PropertyID  string          `json:"property_id"`
	UnitsLogged decimal.Decimal `json:"units_logged"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	AmountDue   decimal.Decimal `json:"amount_due"`
	Status      string          `json:"status"`
	ConfirmedAt *time.Time      `json:"confirmed_at,omitempty"`
	CreatedAt   time.Time       `json:"created_at"`
}

// HomeownerPayments lists a homeowner's obligations, newest first.
func (u *Usecase) HomeownerPayments(ctx context.Context, homeownerID string) ([]PaymentDTO, error) {
	pays, err := u.payments.ListByHomeowner(ctx, homeownerID)
	if err != nil {
		return nil, err
	}
	out := make([]PaymentDTO, 0, len(pays))
	for _, p := range pays {
		out = append(out, PaymentDTO{
			PaymentID:   p.PaymentID,
			PropertyID:  p.PropertyID,
			UnitsLogged: p.UnitsLogged,
			UnitPrice:   p.UnitPrice,
			AmountDue:   p.AmountDue,
			Status:      string(p.Status),
			ConfirmedAt: p.ConfirmedAt,
			CreatedAt:   p.CreatedAt,
		})
	}
	return out, nil
}

// InvestorPayouts is the payout history joined with payment, reading and
// property context.
func (u *Usecase) InvestorPayouts(ctx context.Context, investorID string) ([]payment.PayoutRecord, error) {
	return u.payments.ListPayoutRecordsByInvestor(ctx, investorID)
}
