package mysql

import (
	"context"

	investmentDomain "solarshare-backend/internal/domain/investment"

	"gorm.io/gorm"
)

type InvestmentRepository struct{ db *gorm.DB }

func NewInvestmentRepository(db *gorm.DB) *InvestmentRepository {
	return &InvestmentRepository{db: db}
}

func (r *InvestmentRepository) Create(ctx context.Context, i *investmentDomain.Investment) error {
	return r.db.WithContext(ctx).Create(i).Error
}

func (r *InvestmentRepository) SumUnitsByProperty(ctx context.Context, propertyID string) (int, error) {
	var total int64
	err := r.db.WithContext(ctx).
		Model(&investmentDomain.Investment{}).
		Where("property_id = ?", propertyID).
		Select("COALESCE(SUM(units_purchased), 0)").
		Scan(&total).Error
	return int(total), err
}

func (r *InvestmentRepository) SumUnitsByProperties(ctx context.Context, propertyIDs []string) (map[string]int, error) {
	out := make(map[string]int, len(propertyIDs))
	if len(propertyIDs) == 0 {
		return out, nil
	}
	var rows []struct {
		PropertyID string
		Total      int64
	}
	err := r.db.WithContext(ctx).
		Model(&investmentDomain.Investment{}).
		Where("property_id IN ?", propertyIDs).
		Select("property_id, COALESCE(SUM(units_purchased), 0) AS total").
		Group("property_id").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	for _, row := range rows {
		out[row.PropertyID] = int(row.Total)
	}
	return out, nil
}

func (r *InvestmentRepository) ListByProperty(ctx context.Context, propertyID string) ([]investmentDomain.Investment, error) {
	var out []investmentDomain.Investment
	err := r.db.WithContext(ctx).
		Where("property_id = ?", propertyID).
		Order("created_at ASC, id ASC").
		Find(&out).Error
	return out, err
}

func (r *InvestmentRepository) ListByInvestor(ctx context.Context, investorID string) ([]investmentDomain.Investment, error) {
	var out []investmentDomain.Investment
	err := r.db.WithContext(ctx).
		Where("investor_id = ?", investorID).
		Order("created_at ASC, id ASC").
		Find(&out).Error
	return out, err
}
