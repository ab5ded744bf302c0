package investment

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
)

var ErrNotFound = errors.New("investment not found")

// Investment is one purchase of units in one property by one investor.
// Rows are immutable; repeat purchases by the same investor accumulate as
// separate rows. UnitPrice is captured at purchase time and never changes
// even if the quote would.
type Investment struct {
	ID             uint64          `gorm:"primaryKey;column:id"`
	InvestmentID   string          `gorm:"size:32;uniqueIndex:ux_investments_investment_id"`
	PropertyID     string          `gorm:"size:32;index:idx_investments_property"`
	InvestorID     string          `gorm:"size:32;index:idx_investments_investor"`
	UnitsPurchased int             `gorm:"column:units_purchased"`
	UnitPrice      decimal.Decimal `gorm:"column:unit_price;type:decimal(18,4)"`
	CreatedAt      time.Time       `gorm:"autoCreateTime"`
}

func (Investment) TableName() string { return "investments" }

// Amount invested by this row.
func (i *Investment) Amount() decimal.Decimal {
	return i.UnitPrice.Mul(decimal.NewFromInt(int64(i.UnitsPurchased)))
}
