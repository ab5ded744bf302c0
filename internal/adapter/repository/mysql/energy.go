package mysql

import (
	"context"

	energyDomain "solarshare-backend/internal/domain/energy"

	"gorm.io/gorm"
)

type EnergyLogRepository struct{ db *gorm.DB }

func NewEnergyLogRepository(db *gorm.DB) *EnergyLogRepository {
	return &EnergyLogRepository{db: db}
}

func (r *EnergyLogRepository) Create(ctx context.Context, l *energyDomain.Log) error {
	return r.db.WithContext(ctx).Create(l).Error
}

func (r *EnergyLogRepository) ListByProperty(ctx context.Context, propertyID string) ([]energyDomain.Log, error) {
	var out []energyDomain.Log
	err := r.db.WithContext(ctx).
		Where("property_id = ?", propertyID).
		Order("month DESC, id DESC").
		Find(&out).Error
	return out, err
}
