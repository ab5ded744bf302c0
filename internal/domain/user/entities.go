package user

import (
	"errors"
	"time"
)

var (
	ErrNotFound          = errors.New("user not found")
	ErrEmailTaken        = errors.New("email already in use")
	ErrNoVendorAvailable = errors.New("no vendor available for this city")
)

type Role string

const (
	RoleHomeowner Role = "homeowner"
	RoleVendor    Role = "vendor"
	RoleInvestor  Role = "investor"
)

func ValidRole(r Role) bool {
	switch r {
	case RoleHomeowner, RoleVendor, RoleInvestor:
		return true
	}
	return false
}

type User struct {
	ID     uint64 `gorm:"primaryKey;column:id"`
	UserID string `gorm:"size:32;uniqueIndex:ux_users_user_id"`
	Name   string `gorm:"size:255"`
	Email  string `gorm:"size:255;uniqueIndex:ux_users_email"`
	// bcrypt hash, never serialized
	Password string `gorm:"size:255" json:"-"`
	Role     Role   `gorm:"type:enum('homeowner','vendor','investor')"`
	UpiID    string `gorm:"column:upi_id;size:255"`
	PanCard  string `gorm:"size:32"`
	// push-notification device token; refreshed on login, may be empty
	FCMToken  string       `gorm:"column:fcm_token;size:512"`
	Cities    []VendorCity `gorm:"foreignKey:UserID;references:UserID"`
	CreatedAt time.Time    `gorm:"autoCreateTime"`
	UpdatedAt time.Time    `gorm:"autoUpdateTime"`
}

func (User) TableName() string { return "users" }

// VendorCity is one serviceable city of a vendor. Vendors carry zero or
// more rows; other roles carry none.
type VendorCity struct {
	ID     uint64 `gorm:"primaryKey;column:id"`
	UserID string `gorm:"size:32;index:idx_vendor_cities_user"`
	City   string `gorm:"size:128;index:idx_vendor_cities_city"`
}

func (VendorCity) TableName() string { return "vendor_cities" }

func (u *User) ServiceableCities() []string {
	out := make([]string, 0, len(u.Cities))
	for _, c := range u.Cities {
		out = append(out, c.City)
	}
	return out
}
