package mysql

import (
	"testing"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// --- SQLite-friendly schemas only for tests (no ENUM, decimals as text) ---

type userSQLite struct {
	ID        uint64    `gorm:"primaryKey;column:id"`
	UserID    string    `gorm:"size:32;column:user_id"`
	Name      string    `gorm:"column:name"`
	Email     string    `gorm:"column:email"`
	Password  string    `gorm:"column:password"`
	Role      string    `gorm:"type:text;column:role"` // ← no enum
	UpiID     string    `gorm:"column:upi_id"`
	PanCard   string    `gorm:"column:pan_card"`
	FCMToken  string    `gorm:"column:fcm_token"`
	CreatedAt time.Time `gorm:"column:created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at"`
}

func (userSQLite) TableName() string { return "users" }

type vendorCitySQLite struct {
	ID     uint64 `gorm:"primaryKey;column:id"`
	UserID string `gorm:"size:32;column:user_id"`
	City   string `gorm:"column:city"`
}

func (vendorCitySQLite) TableName() string { return "vendor_cities" }

type propertySQLite struct {
	ID                uint64    `gorm:"primaryKey;column:id"`
	PropertyID        string    `gorm:"size:32;column:property_id"`
	HomeownerID       string    `gorm:"size:32;column:homeowner_id"`
	AssignedVendorID  string    `gorm:"size:32;column:assigned_vendor_id"`
	Address           string    `gorm:"column:address"`
	City              string    `gorm:"column:city"`
	Pincode           string    `gorm:"column:pincode"`
	EnergyConsumption float64   `gorm:"column:energy_consumption"`
	PanelSize         float64   `gorm:"column:panel_size"`
	QuoteAmount       string    `gorm:"type:text;column:quote_amount"`
	Status            string    `gorm:"type:text;column:status"` // ← no enum
	StatusUpdatedAt   time.Time `gorm:"column:status_updated_at"`
	CreatedAt         time.Time `gorm:"column:created_at"`
	UpdatedAt         time.Time `gorm:"column:updated_at"`
}

func (propertySQLite) TableName() string { return "properties" }

type investmentSQLite struct {
	ID             uint64    `gorm:"primaryKey;column:id"`
	InvestmentID   string    `gorm:"size:32;column:investment_id"`
	PropertyID     string    `gorm:"size:32;column:property_id"`
	InvestorID     string    `gorm:"size:32;column:investor_id"`
	UnitsPurchased int       `gorm:"column:units_purchased"`
	UnitPrice      string    `gorm:"type:text;column:unit_price"`
	CreatedAt      time.Time `gorm:"column:created_at"`
}

func (investmentSQLite) TableName() string { return "investments" }

type energyLogSQLite struct {
	ID            uint64    `gorm:"primaryKey;column:id"`
	LogID         string    `gorm:"size:32;column:log_id"`
	PropertyID    string    `gorm:"size:32;column:property_id"`
	VendorID      string    `gorm:"size:32;column:vendor_id"`
	Month         string    `gorm:"size:7;column:month"`
	UnitsProduced string    `gorm:"type:text;column:units_produced"`
	CreatedAt     time.Time `gorm:"column:created_at"`
}

func (energyLogSQLite) TableName() string { return "energy_logs" }

type paymentSQLite struct {
	ID          uint64     `gorm:"primaryKey;column:id"`
	PaymentID   string     `gorm:"size:32;column:payment_id"`
	LogID       string     `gorm:"size:32;column:log_id"`
	PropertyID  string     `gorm:"size:32;column:property_id"`
	HomeownerID string     `gorm:"size:32;column:homeowner_id"`
	UnitsLogged string     `gorm:"type:text;column:units_logged"`
	UnitPrice   string     `gorm:"type:text;column:unit_price"`
	AmountDue   string     `gorm:"type:text;column:amount_due"`
	Status      string     `gorm:"type:text;column:status"` // ← no enum
	ConfirmedAt *time.Time `gorm:"column:confirmed_at"`
	CreatedAt   time.Time  `gorm:"column:created_at"`
	UpdatedAt   time.Time  `gorm:"column:updated_at"`
}

func (paymentSQLite) TableName() string { return "payments" }

type investorPayoutSQLite struct {
	ID         uint64    `gorm:"primaryKey;column:id"`
	PayoutID   string    `gorm:"size:32;column:payout_id"`
	PaymentID  string    `gorm:"size:32;column:payment_id"`
	InvestorID string    `gorm:"size:32;column:investor_id"`
	Amount     string    `gorm:"type:text;column:amount"`
	CreatedAt  time.Time `gorm:"column:created_at"`
}

func (investorPayoutSQLite) TableName() string { return "investor_payouts" }

// openTestDB creates an in-memory sqlite DB and migrates ONLY the
// sqlite-safe schemas.
func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	// IMPORTANT: migrate the sqlite-safe models, NOT the domain models.
	if err := db.AutoMigrate(
		&userSQLite{}, &vendorCitySQLite{}, &propertySQLite{},
		&investmentSQLite{}, &energyLogSQLite{},
		&paymentSQLite{}, &investorPayoutSQLite{},
	); err != nil {
		t.Fatalf("auto-migrate: %v", err)
	}
	return db
}
