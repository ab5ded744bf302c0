package payment

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
)

var (
	ErrNotFound = errors.New("payment not found")
	// confirmation attempted on a payment that is not due anymore
	ErrAlreadyConfirmed = errors.New("payment already confirmed")
)

type Status string

const (
	StatusDue  Status = "due"
	StatusPaid Status = "paid"
)

// Payment is the homeowner obligation derived from one energy log:
// amount_due = discounted unit price × units produced. Status moves
// due → paid exactly once; confirmation also creates the payout set.
type Payment struct {
	ID          uint64          `gorm:"primaryKey;column:id"`
	PaymentID   string          `gorm:"size:32;uniqueIndex:ux_payments_payment_id"`
	LogID       string          `gorm:"size:32;index:idx_payments_log"`
	PropertyID  string          `gorm:"size:32;index:idx_payments_property"`
	HomeownerID string          `gorm:"size:32;index:idx_payments_homeowner"`
	UnitsLogged decimal.Decimal `gorm:"column:units_logged;type:decimal(12,2)"`
	UnitPrice   decimal.Decimal `gorm:"column:unit_price;type:decimal(18,4)"`
	AmountDue   decimal.Decimal `gorm:"column:amount_due;type:decimal(18,2)"`
	Status      Status          `gorm:"type:enum('due','paid');default:'due'"`
	ConfirmedAt *time.Time      `gorm:"column:confirmed_at"`
	CreatedAt   time.Time       `gorm:"autoCreateTime"`
	UpdatedAt   time.Time       `gorm:"autoUpdateTime"`
}

func (Payment) TableName() string { return "payments" }

// InvestorPayout is one disbursement record for one (payment, investor)
// pair. Rows are immutable and written in the same transaction that flips
// the payment to paid.
type InvestorPayout struct {
	ID         uint64          `gorm:"primaryKey;column:id"`
	PayoutID   string          `gorm:"size:32;uniqueIndex:ux_investor_payouts_payout_id"`
	PaymentID  string          `gorm:"size:32;index:idx_investor_payouts_payment"`
	InvestorID string          `gorm:"size:32;index:idx_investor_payouts_investor"`
	Amount     decimal.Decimal `gorm:"type:decimal(18,2)"`
	CreatedAt  time.Time       `gorm:"autoCreateTime"`
}

func (InvestorPayout) TableName() string { return "investor_payouts" }

// PayoutRecord is the read-side projection for payout history: the payout
// joined with its payment, source reading and property.
type PayoutRecord struct {
	PayoutID        string          `json:"payout_id"`
	PaymentID       string          `json:"payment_id"`
	PropertyID      string          `json:"property_id"`
	PropertyAddress string          `json:"property_address"`
	Month           string          `json:"month"`
	Amount          decimal.Decimal `json:"amount"`
	AmountDue       decimal.Decimal `json:"amount_due"`
	PaymentStatus   Status          `json:"payment_status"`
	CreatedAt       time.Time       `json:"payout_date"`
}
