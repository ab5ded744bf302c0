package property

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
)

// TotalUnits is the fixed unit supply of every property: one unit is a
// 1/1000th share of the installation's quoted value.
const TotalUnits = 1000

var (
	ErrNotFound = errors.New("property not found")
	// quote attempted on a non-pending property
	ErrNotQuotable = errors.New("property cannot be quoted in its current state")
	// operation attempted by a vendor other than the assigned one
	ErrNotAssignedVendor = errors.New("vendor is not assigned to this property")
	// investment attempted while the property is not open for funding
	ErrNotFundable = errors.New("property is not open for investment")
	// requested units exceed the remaining unit supply
	ErrOverAllocation = errors.New("requested units exceed remaining supply")
)

type Status string

const (
	StatusPending Status = "pending"
	StatusQuoted  Status = "quoted"
	StatusFunded  Status = "funded"
)

type Property struct {
	ID          uint64 `gorm:"primaryKey;column:id"`
	PropertyID  string `gorm:"size:32;uniqueIndex:ux_properties_property_id"`
	HomeownerID string `gorm:"size:32;index:idx_properties_homeowner"`
	// set at submission time by vendor assignment
	AssignedVendorID  string          `gorm:"column:assigned_vendor_id;size:32;index:idx_properties_vendor"`
	Address           string          `gorm:"type:text"`
	City              string          `gorm:"size:128"`
	Pincode           string          `gorm:"size:16"`
	EnergyConsumption float64         `gorm:"column:energy_consumption"`
	PanelSize         float64         `gorm:"column:panel_size"`
	QuoteAmount       decimal.Decimal `gorm:"column:quote_amount;type:decimal(18,2)"`
	Status            Status          `gorm:"type:enum('pending','quoted','funded');default:'pending'"`
	StatusUpdatedAt   time.Time       `gorm:"autoCreateTime"`
	CreatedAt         time.Time       `gorm:"autoCreateTime"`
	UpdatedAt         time.Time       `gorm:"autoUpdateTime"`
}

func (Property) TableName() string { return "properties" }

// UnitPrice is quote_amount / TotalUnits. Only meaningful once quoted.
func (p *Property) UnitPrice() decimal.Decimal {
	return p.QuoteAmount.Div(decimal.NewFromInt(TotalUnits))
}
