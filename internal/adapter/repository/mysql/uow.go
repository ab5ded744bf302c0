package mysql

import (
	"context"

	"solarshare-backend/internal/domain/payment"
	"solarshare-backend/internal/domain/property"
	"solarshare-backend/internal/domain/uow"

	"gorm.io/gorm"
)

type GormUoW struct{ db *gorm.DB }

func NewGormUoW(db *gorm.DB) *GormUoW { return &GormUoW{db: db} }

func reposFor(tx *gorm.DB) uow.Repos {
	return uow.Repos{
		Users:       &UserRepository{db: tx},
		Properties:  &PropertyRepository{db: tx},
		Investments: &InvestmentRepository{db: tx},
		EnergyLogs:  &EnergyLogRepository{db: tx},
		Payments:    &PaymentRepository{db: tx},
	}
}

func (u *GormUoW) WithinTx(ctx context.Context, fn func(r uow.Repos) error) error {
	return u.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(reposFor(tx))
	})
}

func (u *GormUoW) WithinPropertyTx(ctx context.Context, propertyID string, fn func(r uow.Repos, p *property.Property) error) error {
	return u.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		r := reposFor(tx)
		// lock the property row up-front: cap checks race otherwise
		p, err := r.Properties.GetByPropertyIDForUpdate(ctx, propertyID)
		if err != nil {
			return err
		}
		return fn(r, p)
	})
}

func (u *GormUoW) WithinPaymentTx(ctx context.Context, paymentID string, fn func(r uow.Repos, pm *payment.Payment) error) error {
	return u.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		r := reposFor(tx)
		pm, err := r.Payments.GetByPaymentIDForUpdate(ctx, paymentID)
		if err != nil {
			return err
		}
		return fn(r, pm)
	})
}
