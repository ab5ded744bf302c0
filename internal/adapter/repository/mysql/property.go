package mysql

import (
	"context"
	"errors"

	propertyDomain "solarshare-backend/internal/domain/property"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type PropertyRepository struct{ db *gorm.DB }

func NewPropertyRepository(db *gorm.DB) *PropertyRepository { return &PropertyRepository{db: db} }

func (r *PropertyRepository) Create(ctx context.Context, p *propertyDomain.Property) error {
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *PropertyRepository) Save(ctx context.Context, p *propertyDomain.Property) error {
	return r.db.WithContext(ctx).Save(p).Error
}

func (r *PropertyRepository) GetByPropertyID(ctx context.Context, propertyID string) (*propertyDomain.Property, error) {
	var out propertyDomain.Property
	res := r.db.WithContext(ctx).Where("property_id = ?", propertyID).First(&out)
	if errors.Is(res.Error, gorm.ErrRecordNotFound) {
		return nil, propertyDomain.ErrNotFound
	}
	return &out, res.Error
}

// GetByPropertyIDForUpdate takes a SELECT ... FOR UPDATE row lock. Must run
// inside a transaction; concurrent purchasers of the same property queue
// here.
func (r *PropertyRepository) GetByPropertyIDForUpdate(ctx context.Context, propertyID string) (*propertyDomain.Property, error) {
	var out propertyDomain.Property
	res := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("property_id = ?", propertyID).
		First(&out)
	if errors.Is(res.Error, gorm.ErrRecordNotFound) {
		return nil, propertyDomain.ErrNotFound
	}
	return &out, res.Error
}

func (r *PropertyRepository) ListByHomeowner(ctx context.Context, homeownerID string) ([]propertyDomain.Property, error) {
	var out []propertyDomain.Property
	err := r.db.WithContext(ctx).
		Where("homeowner_id = ?", homeownerID).
		Order("created_at DESC, id DESC").
		Find(&out).Error
	return out, err
}

func (r *PropertyRepository) ListByVendor(ctx context.Context, vendorID string) ([]propertyDomain.Property, error) {
	var out []propertyDomain.Property
	err := r.db.WithContext(ctx).
		Where("assigned_vendor_id = ?", vendorID).
		Order("created_at DESC, id DESC").
		Find(&out).Error
	return out, err
}

func (r *PropertyRepository) ListOpen(ctx context.Context) ([]propertyDomain.Property, error) {
	var out []propertyDomain.Property
	err := r.db.WithContext(ctx).
		Where("status IN ?", []propertyDomain.Status{propertyDomain.StatusQuoted, propertyDomain.StatusFunded}).
		Order("created_at DESC, id DESC").
		Find(&out).Error
	return out, err
}
