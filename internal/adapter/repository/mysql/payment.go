package mysql

import (
	"context"
	"errors"

	paymentDomain "solarshare-backend/internal/domain/payment"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type PaymentRepository struct{ db *gorm.DB }

func NewPaymentRepository(db *gorm.DB) *PaymentRepository { return &PaymentRepository{db: db} }

func (r *PaymentRepository) Create(ctx context.Context, p *paymentDomain.Payment) error {
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *PaymentRepository) Save(ctx context.Context, p *paymentDomain.Payment) error {
	return r.db.WithContext(ctx).Save(p).Error
}

func (r *PaymentRepository) GetByPaymentID(ctx context.Context, paymentID string) (*paymentDomain.Payment, error) {
	var out paymentDomain.Payment
	res := r.db.WithContext(ctx).Where("payment_id = ?", paymentID).First(&out)
	if errors.Is(res.Error, gorm.ErrRecordNotFound) {
		return nil, paymentDomain.ErrNotFound
	}
	return &out, res.Error
}

// GetByPaymentIDForUpdate locks the payment row so confirmation is
// serialized per payment. Must run inside a transaction.
func (r *PaymentRepository) GetByPaymentIDForUpdate(ctx context.Context, paymentID string) (*paymentDomain.Payment, error) {
	var out paymentDomain.Payment
	res := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("payment_id = ?", paymentID).
		First(&out)
	if errors.Is(res.Error, gorm.ErrRecordNotFound) {
		return nil, paymentDomain.ErrNotFound
	}
	return &out, res.Error
}

func (r *PaymentRepository) ListByHomeowner(ctx context.Context, homeownerID string) ([]paymentDomain.Payment, error) {
	var out []paymentDomain.Payment
	err := r.db.WithContext(ctx).
		Where("homeowner_id = ?", homeownerID).
		Order("created_at DESC, id DESC").
		Find(&out).Error
	return out, err
}

func (r *PaymentRepository) ListByProperty(ctx context.Context, propertyID string) ([]paymentDomain.Payment, error) {
	var out []paymentDomain.Payment
	err := r.db.WithContext(ctx).
		Where("property_id = ?", propertyID).
		Order("created_at DESC, id DESC").
		Find(&out).Error
	return out, err
}

func (r *PaymentRepository) ListByLogIDs(ctx context.Context, logIDs []string) (map[string]paymentDomain.Payment, error) {
	out := make(map[string]paymentDomain.Payment, len(logIDs))
	if len(logIDs) == 0 {
		return out, nil
	}
	var rows []paymentDomain.Payment
	err := r.db.WithContext(ctx).Where("log_id IN ?", logIDs).Find(&rows).Error
	if err != nil {
		return nil, err
	}
	for _, p := range rows {
		out[p.LogID] = p
	}
	return out, nil
}

func (r *PaymentRepository) CreatePayouts(ctx context.Context, payouts []*paymentDomain.InvestorPayout) error {
	if len(payouts) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Create(payouts).Error
}

func (r *PaymentRepository) CountPayoutsByPayment(ctx context.Context, paymentID string) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).
		Model(&paymentDomain.InvestorPayout{}).
		Where("payment_id = ?", paymentID).
		Count(&n).Error
	return n, err
}

func (r *PaymentRepository) ListPayoutRecordsByInvestor(ctx context.Context, investorID string) ([]paymentDomain.PayoutRecord, error) {
	var out []paymentDomain.PayoutRecord
	err := r.db.WithContext(ctx).
		Table("investor_payouts ip").
		Select(`ip.payout_id, ip.payment_id, ip.amount, ip.created_at,
			p.property_id, p.amount_due, p.status AS payment_status,
			pr.address AS property_address, el.month`).
		Joins("JOIN payments p ON p.payment_id = ip.payment_id").
		Joins("JOIN properties pr ON pr.property_id = p.property_id").
		Joins("JOIN energy_logs el ON el.log_id = p.log_id").
		Where("ip.investor_id = ?", investorID).
		Order("ip.created_at DESC, ip.id DESC").
		Scan(&out).Error
	return out, err
}
