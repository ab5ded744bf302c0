package user

import "context"

type Repository interface {
	Create(ctx context.Context, u *User) error
	GetByUserID(ctx context.Context, userID string) (*User, error)
	GetByEmail(ctx context.Context, email string) (*User, error)
	UpdateFCMToken(ctx context.Context, userID, token string) error

	// FirstVendorForCity returns the vendor assigned to new properties in
	// the given city. Selection is deterministic: the oldest matching
	// vendor wins (created_at ASC, then numeric id ASC).
	FirstVendorForCity(ctx context.Context, city string) (*User, error)

	// ListInvestorTokens returns the distinct non-empty device tokens of
	// all investors, for opportunity broadcasts.
	ListInvestorTokens(ctx context.Context) ([]string, error)

	// ListServiceableCities returns the distinct union of all vendors'
	// serviceable cities.
	ListServiceableCities(ctx context.Context) ([]string, error)
}
