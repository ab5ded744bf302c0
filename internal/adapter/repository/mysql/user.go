package mysql

import (
	"context"
	"errors"

	userDomain "solarshare-backend/internal/domain/user"

	"gorm.io/gorm"
)

type UserRepository struct{ db *gorm.DB }

func NewUserRepository(db *gorm.DB) *UserRepository { return &UserRepository{db: db} }

func (r *UserRepository) Create(ctx context.Context, u *userDomain.User) error {
	// cities ride along via the association
	return r.db.WithContext(ctx).Create(u).Error
}

func (r *UserRepository) GetByUserID(ctx context.Context, userID string) (*userDomain.User, error) {
	var out userDomain.User
	res := r.db.WithContext(ctx).Preload("Cities").Where("user_id = ?", userID).First(&out)
	if errors.Is(res.Error, gorm.ErrRecordNotFound) {
		return nil, userDomain.ErrNotFound
	}
	return &out, res.Error
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*userDomain.User, error) {
	var out userDomain.User
	res := r.db.WithContext(ctx).Preload("Cities").Where("email = ?", email).First(&out)
	if errors.Is(res.Error, gorm.ErrRecordNotFound) {
		return nil, userDomain.ErrNotFound
	}
	return &out, res.Error
}

func (r *UserRepository) UpdateFCMToken(ctx context.Context, userID, token string) error {
	return r.db.WithContext(ctx).
		Model(&userDomain.User{}).
		Where("user_id = ?", userID).
		Update("fcm_token", token).Error
}

// FirstVendorForCity: oldest matching vendor wins (created_at ASC, id ASC).
func (r *UserRepository) FirstVendorForCity(ctx context.Context, city string) (*userDomain.User, error) {
	var out userDomain.User
	res := r.db.WithContext(ctx).
		Joins("JOIN vendor_cities vc ON vc.user_id = users.user_id").
		Where("users.role = ? AND vc.city = ?", userDomain.RoleVendor, city).
		Order("users.created_at ASC, users.id ASC").
		First(&out)
	if errors.Is(res.Error, gorm.ErrRecordNotFound) {
		return nil, userDomain.ErrNoVendorAvailable
	}
	return &out, res.Error
}

func (r *UserRepository) ListInvestorTokens(ctx context.Context) ([]string, error) {
	var tokens []string
	err := r.db.WithContext(ctx).
		Model(&userDomain.User{}).
		Distinct("fcm_token").
		Where("role = ? AND fcm_token <> ''", userDomain.RoleInvestor).
		Pluck("fcm_token", &tokens).Error
	return tokens, err
}

func (r *UserRepository) ListServiceableCities(ctx context.Context) ([]string, error) {
	var cities []string
	err := r.db.WithContext(ctx).
		Model(&userDomain.VendorCity{}).
		Distinct("city").
		Order("city ASC").
		Pluck("city", &cities).Error
	return cities, err
}
