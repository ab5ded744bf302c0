package energy

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
)

var ErrNotFound = errors.New("energy log not found")

// Log is one vendor-submitted monthly production reading. Rows are
// immutable. A second reading for the same (property, month) is accepted
// and treated as a correction; each reading produces its own payment.
type Log struct {
	ID         uint64 `gorm:"primaryKey;column:id"`
	LogID      string `gorm:"size:32;uniqueIndex:ux_energy_logs_log_id"`
	PropertyID string `gorm:"size:32;index:idx_energy_logs_property"`
	VendorID   string `gorm:"size:32"`
	// calendar month of the reading, "YYYY-MM"
	Month         string          `gorm:"size:7;index:idx_energy_logs_month"`
	UnitsProduced decimal.Decimal `gorm:"column:units_produced;type:decimal(12,2)"`
	CreatedAt     time.Time       `gorm:"autoCreateTime"`
}

func (Log) TableName() string { return "energy_logs" }
