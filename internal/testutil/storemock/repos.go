// Package storemock holds function-backed test doubles for the repository
// interfaces and the unit of work. Fill in only the function fields a test
// needs; unfilled ones fail loudly.
package storemock

import (
	"context"
	"errors"

	"solarshare-backend/internal/domain/energy"
	"solarshare-backend/internal/domain/investment"
	"solarshare-backend/internal/domain/payment"
	"solarshare-backend/internal/domain/property"
	"solarshare-backend/internal/domain/user"
)

var errUnimplemented = errors.New("storemock: method not implemented")

// ---- user.Repository ----

type UserRepo struct {
	CreateFn                func(ctx context.Context, u *user.User) error
	GetByUserIDFn           func(ctx context.Context, userID string) (*user.User, error)
	GetByEmailFn            func(ctx context.Context, email string) (*user.User, error)
	UpdateFCMTokenFn        func(ctx context.Context, userID, token string) error
	FirstVendorForCityFn    func(ctx context.Context, city string) (*user.User, error)
	ListInvestorTokensFn    func(ctx context.Context) ([]string, error)
	ListServiceableCitiesFn func(ctx context.Context) ([]string, error)
}

var _ user.Repository = (*UserRepo)(nil)

func (m *UserRepo) Create(ctx context.Context, u *user.User) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, u)
	}
	return errUnimplemented
}
func (m *UserRepo) GetByUserID(ctx context.Context, userID string) (*user.User, error) {
	if m.GetByUserIDFn != nil {
		return m.GetByUserIDFn(ctx, userID)
	}
	return nil, errUnimplemented
}
func (m *UserRepo) GetByEmail(ctx context.Context, email string) (*user.User, error) {
	if m.GetByEmailFn != nil {
		return m.GetByEmailFn(ctx, email)
	}
	return nil, errUnimplemented
}
func (m *UserRepo) UpdateFCMToken(ctx context.Context, userID, token string) error {
	if m.UpdateFCMTokenFn != nil {
		return m.UpdateFCMTokenFn(ctx, userID, token)
	}
	return errUnimplemented
}
func (m *UserRepo) FirstVendorForCity(ctx context.Context, city string) (*user.User, error) {
	if m.FirstVendorForCityFn != nil {
		return m.FirstVendorForCityFn(ctx, city)
	}
	return nil, errUnimplemented
}
func (m *UserRepo) ListInvestorTokens(ctx context.Context) ([]string, error) {
	if m.ListInvestorTokensFn != nil {
		return m.ListInvestorTokensFn(ctx)
	}
	return nil, errUnimplemented
}
func (m *UserRepo) ListServiceableCities(ctx context.Context) ([]string, error) {
	if m.ListServiceableCitiesFn != nil {
		return m.ListServiceableCitiesFn(ctx)
	}
	return nil, errUnimplemented
}

// ---- property.Repository ----

type PropertyRepo struct {
	CreateFn                   func(ctx context.Context, p *property.Property) error
	GetByPropertyIDFn          func(ctx context.Context, propertyID string) (*property.Property, error)
	GetByPropertyIDForUpdateFn func(ctx context.Context, propertyID string) (*property.Property, error)
	ListByHomeownerFn          func(ctx context.Context, homeownerID string) ([]property.Property, error)
	ListByVendorFn             func(ctx context.Context, vendorID string) ([]property.Property, error)
	ListOpenFn                 func(ctx context.Context) ([]property.Property, error)
	SaveFn                     func(ctx context.Context, p *property.Property) error
}

var _ property.Repository = (*PropertyRepo)(nil)

func (m *PropertyRepo) Create(ctx context.Context, p *property.Property) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, p)
	}
	return errUnimplemented
}
func (m *PropertyRepo) GetByPropertyID(ctx context.Context, propertyID string) (*property.Property, error) {
	if m.GetByPropertyIDFn != nil {
		return m.GetByPropertyIDFn(ctx, propertyID)
	}
	return nil, errUnimplemented
}
func (m *PropertyRepo) GetByPropertyIDForUpdate(ctx context.Context, propertyID string) (*property.Property, error) {
	if m.GetByPropertyIDForUpdateFn != nil {
		return m.GetByPropertyIDForUpdateFn(ctx, propertyID)
	}
	return nil, errUnimplemented
}
func (m *PropertyRepo) ListByHomeowner(ctx context.Context, homeownerID string) ([]property.Property, error) {
	if m.ListByHomeownerFn != nil {
		return m.ListByHomeownerFn(ctx, homeownerID)
	}
	return nil, errUnimplemented
}
func (m *PropertyRepo) ListByVendor(ctx context.Context, vendorID string) ([]property.Property, error) {
	if m.ListByVendorFn != nil {
		return m.ListByVendorFn(ctx, vendorID)
	}
	return nil, errUnimplemented
}
func (m *PropertyRepo) ListOpen(ctx context.Context) ([]property.Property, error) {
	if m.ListOpenFn != nil {
		return m.ListOpenFn(ctx)
	}
	return nil, errUnimplemented
}
func (m *PropertyRepo) Save(ctx context.Context, p *property.Property) error {
	if m.SaveFn != nil {
		return m.SaveFn(ctx, p)
	}
	return errUnimplemented
}

// ---- investment.Repository ----

type InvestmentRepo struct {
	CreateFn               func(ctx context.Context, i *investment.Investment) error
	SumUnitsByPropertyFn   func(ctx context.Context, propertyID string) (int, error)
	SumUnitsByPropertiesFn func(ctx context.Context, propertyIDs []string) (map[string]int, error)
	ListByPropertyFn       func(ctx context.Context, propertyID string) ([]investment.Investment, error)
	ListByInvestorFn       func(ctx context.Context, investorID string) ([]investment.Investment, error)
}

var _ investment.Repository = (*InvestmentRepo)(nil)

func (m *InvestmentRepo) Create(ctx context.Context, i *investment.Investment) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, i)
	}
	return errUnimplemented
}
func (m *InvestmentRepo) SumUnitsByProperty(ctx context.Context, propertyID string) (int, error) {
	if m.SumUnitsByPropertyFn != nil {
		return m.SumUnitsByPropertyFn(ctx, propertyID)
	}
	return 0, errUnimplemented
}
func (m *InvestmentRepo) SumUnitsByProperties(ctx context.Context, propertyIDs []string) (map[string]int, error) {
	if m.SumUnitsByPropertiesFn != nil {
		return m.SumUnitsByPropertiesFn(ctx, propertyIDs)
	}
	return nil, errUnimplemented
}
func (m *InvestmentRepo) ListByProperty(ctx context.Context, propertyID string) ([]investment.Investment, error) {
	if m.ListByPropertyFn != nil {
		return m.ListByPropertyFn(ctx, propertyID)
	}
	return nil, errUnimplemented
}
func (m *InvestmentRepo) ListByInvestor(ctx context.Context, investorID string) ([]investment.Investment, error) {
	if m.ListByInvestorFn != nil {
		return m.ListByInvestorFn(ctx, investorID)
	}
	return nil, errUnimplemented
}

// ---- energy.Repository ----

type EnergyRepo struct {
	CreateFn         func(ctx context.Context, l *energy.Log) error
	ListByPropertyFn func(ctx context.Context, propertyID string) ([]energy.Log, error)
}

var _ energy.Repository = (*EnergyRepo)(nil)

func (m *EnergyRepo) Create(ctx context.Context, l *energy.Log) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, l)
	}
	return errUnimplemented
}
func (m *EnergyRepo) ListByProperty(ctx context.Context, propertyID string) ([]energy.Log, error) {
	if m.ListByPropertyFn != nil {
		return m.ListByPropertyFn(ctx, propertyID)
	}
	return nil, errUnimplemented
}

// ---- payment.Repository ----

type PaymentRepo struct {
	CreateFn                      func(ctx context.Context, p *payment.Payment) error
	GetByPaymentIDFn              func(ctx context.Context, paymentID string) (*payment.Payment, error)
	GetByPaymentIDForUpdateFn     func(ctx context.Context, paymentID string) (*payment.Payment, error)
	ListByHomeownerFn             func(ctx context.Context, homeownerID string) ([]payment.Payment, error)
	ListByPropertyFn              func(ctx context.Context, propertyID string) ([]payment.Payment, error)
	ListByLogIDsFn                func(ctx context.Context, logIDs []string) (map[string]payment.Payment, error)
	SaveFn                        func(ctx context.Context, p *payment.Payment) error
	CreatePayoutsFn               func(ctx context.Context, payouts []*payment.InvestorPayout) error
	CountPayoutsByPaymentFn       func(ctx context.Context, paymentID string) (int64, error)
	ListPayoutRecordsByInvestorFn func(ctx context.Context, investorID string) ([]payment.PayoutRecord, error)
}

var _ payment.Repository = (*PaymentRepo)(nil)

func (m *PaymentRepo) Create(ctx context.Context, p *payment.Payment) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, p)
	}
	return errUnimplemented
}
func (m *PaymentRepo) GetByPaymentID(ctx context.Context, paymentID string) (*payment.Payment, error) {
	if m.GetByPaymentIDFn != nil {
		return m.GetByPaymentIDFn(ctx, paymentID)
	}
	return nil, errUnimplemented
}
func (m *PaymentRepo) GetByPaymentIDForUpdate(ctx context.Context, paymentID string) (*payment.Payment, error) {
	if m.GetByPaymentIDForUpdateFn != nil {
		return m.GetByPaymentIDForUpdateFn(ctx, paymentID)
	}
	return nil, errUnimplemented
}
func (m *PaymentRepo) ListByHomeowner(ctx context.Context, homeownerID string) ([]payment.Payment, error) {
	if m.ListByHomeownerFn != nil {
		return m.ListByHomeownerFn(ctx, homeownerID)
	}
	return nil, errUnimplemented
}
func (m *PaymentRepo) ListByProperty(ctx context.Context, propertyID string) ([]payment.Payment, error) {
	if m.ListByPropertyFn != nil {
		return m.ListByPropertyFn(ctx, propertyID)
	}
	return nil, errUnimplemented
}
func (m *PaymentRepo) ListByLogIDs(ctx context.Context, logIDs []string) (map[string]payment.Payment, error) {
	if m.ListByLogIDsFn != nil {
		return m.ListByLogIDsFn(ctx, logIDs)
	}
	return nil, errUnimplemented
}
func (m *PaymentRepo) Save(ctx context.Context, p *payment.Payment) error {
	if m.SaveFn != nil {
		return m.SaveFn(ctx, p)
	}
	return errUnimplemented
}
func (m *PaymentRepo) CreatePayouts(ctx context.Context, payouts []*payment.InvestorPayout) error {
	if m.CreatePayoutsFn != nil {
		return m.CreatePayoutsFn(ctx, payouts)
	}
	return errUnimplemented
}
func (m *PaymentRepo) CountPayoutsByPayment(ctx context.Context, paymentID string) (int64, error) {
	if m.CountPayoutsByPaymentFn != nil {
		return m.CountPayoutsByPaymentFn(ctx, paymentID)
	}
	return 0, errUnimplemented
}
func (m *PaymentRepo) ListPayoutRecordsByInvestor(ctx context.Context, investorID string) ([]payment.PayoutRecord, error) {
	if m.ListPayoutRecordsByInvestorFn != nil {
		return m.ListPayoutRecordsByInvestorFn(ctx, investorID)
	}
	return nil, errUnimplemented
}
