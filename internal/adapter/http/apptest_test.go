package http

import (
	"context"
	"sort"
	"sync"
	"testing"
	"time"

	"solarshare-backend/internal/domain/energy"
	"solarshare-backend/internal/domain/investment"
	"solarshare-backend/internal/domain/payment"
	"solarshare-backend/internal/domain/property"
	"solarshare-backend/internal/domain/uow"
	"solarshare-backend/internal/domain/user"
	"solarshare-backend/internal/notification"
	"solarshare-backend/internal/testutil/storemock"
	"solarshare-backend/internal/usecase/auth"
	"solarshare-backend/internal/usecase/billing"
	"solarshare-backend/internal/usecase/funding"
	"solarshare-backend/internal/usecase/settlement"

	"github.com/labstack/echo/v4"
)

// memStore is a full in-memory backing store for handler tests: every
// repository method the usecases touch is implemented against these slices.
type memStore struct {
	mu      sync.Mutex
	users   []*user.User
	props   []*property.Property
	invs    []investment.Investment
	logs    []energy.Log
	pays    []*payment.Payment
	payouts []*payment.InvestorPayout
}

func (s *memStore) userRepo() *storemock.UserRepo {
	return &storemock.UserRepo{
		CreateFn: func(ctx context.Context, u *user.User) error {
			s.mu.Lock()
			defer s.mu.Unlock()
			u.CreatedAt = time.Now().UTC()
			s.users = append(s.users, u)
			return nil
		},
		GetByUserIDFn: func(ctx context.Context, userID string) (*user.User, error) {
			s.mu.Lock()
			defer s.mu.Unlock()
			for _, u := range s.users {
				if u.UserID == userID {
					return u, nil
				}
			}
			return nil, user.ErrNotFound
		},
		GetByEmailFn: func(ctx context.Context, email string) (*user.User, error) {
			s.mu.Lock()
			defer s.mu.Unlock()
			for _, u := range s.users {
				if u.Email == email {
					return u, nil
				}
			}
			return nil, user.ErrNotFound
		},
		UpdateFCMTokenFn: func(ctx context.Context, userID, token string) error {
			s.mu.Lock()
			defer s.mu.Unlock()
			for _, u := range s.users {
				if u.UserID == userID {
					u.FCMToken = token
				}
			}
			return nil
		},
		FirstVendorForCityFn: func(ctx context.Context, city string) (*user.User, error) {
			s.mu.Lock()
			defer s.mu.Unlock()
			for _, u := range s.users { // registration order = oldest first
				if u.Role != user.RoleVendor {
					continue
				}
				for _, c := range u.Cities {
					if c.City == city {
						return u, nil
					}
				}
			}
			return nil, user.ErrNoVendorAvailable
		},
		ListInvestorTokensFn: func(ctx context.Context) ([]string, error) {
			s.mu.Lock()
			defer s.mu.Unlock()
			var out []string
			for _, u := range s.users {
				if u.Role == user.RoleInvestor && u.FCMToken != "" {
					out = append(out, u.FCMToken)
				}
			}
			return out, nil
		},
		ListServiceableCitiesFn: func(ctx context.Context) ([]string, error) {
			s.mu.Lock()
			defer s.mu.Unlock()
			seen := map[string]bool{}
			var out []string
			for _, u := range s.users {
				for _, c := range u.Cities {
					if !seen[c.City] {
						seen[c.City] = true
						out = append(out, c.City)
					}
				}
			}
			sort.Strings(out)
			return out, nil
		},
	}
}

func (s *memStore) propertyRepo() *storemock.PropertyRepo {
	return &storemock.PropertyRepo{
		CreateFn: func(ctx context.Context, p *property.Property) error {
			s.mu.Lock()
			defer s.mu.Unlock()
			p.CreatedAt = time.Now().UTC()
			s.props = append(s.props, p)
			return nil
		},
		GetByPropertyIDFn: func(ctx context.Context, propertyID string) (*property.Property, error) {
			s.mu.Lock()
			defer s.mu.Unlock()
			return s.findProperty(propertyID)
		},
		ListByHomeownerFn: func(ctx context.Context, homeownerID string) ([]property.Property, error) {
			s.mu.Lock()
			defer s.mu.Unlock()
			var out []property.Property
			for _, p := range s.props {
				if p.HomeownerID == homeownerID {
					out = append(out, *p)
				}
			}
			return out, nil
		},
		ListByVendorFn: func(ctx context.Context, vendorID string) ([]property.Property, error) {
			s.mu.Lock()
			defer s.mu.Unlock()
			var out []property.Property
			for _, p := range s.props {
				if p.AssignedVendorID == vendorID {
					out = append(out, *p)
				}
			}
			return out, nil
		},
		ListOpenFn: func(ctx context.Context) ([]property.Property, error) {
			s.mu.Lock()
			defer s.mu.Unlock()
			var out []property.Property
			for _, p := range s.props {
				if p.Status != property.StatusPending {
					out = append(out, *p)
				}
			}
			return out, nil
		},
		SaveFn: func(ctx context.Context, p *property.Property) error { return nil },
	}
}

func (s *memStore) investmentRepo() *storemock.InvestmentRepo {
	return &storemock.InvestmentRepo{
		CreateFn: func(ctx context.Context, i *investment.Investment) error {
			// called inside the uow callback, already serialized
			i.CreatedAt = time.Now().UTC()
			s.invs = append(s.invs, *i)
			return nil
		},
		SumUnitsByPropertyFn: func(ctx context.Context, propertyID string) (int, error) {
			total := 0
			for _, i := range s.invs {
				if i.PropertyID == propertyID {
					total += i.UnitsPurchased
				}
			}
			return total, nil
		},
		SumUnitsByPropertiesFn: func(ctx context.Context, propertyIDs []string) (map[string]int, error) {
			s.mu.Lock()
			defer s.mu.Unlock()
			out := map[string]int{}
			for _, i := range s.invs {
				out[i.PropertyID] += i.UnitsPurchased
			}
			return out, nil
		},
		ListByPropertyFn: func(ctx context.Context, propertyID string) ([]investment.Investment, error) {
			var out []investment.Investment
			for _, i := range s.invs {
				if i.PropertyID == propertyID {
					out = append(out, i)
				}
			}
			return out, nil
		},
		ListByInvestorFn: func(ctx context.Context, investorID string) ([]investment.Investment, error) {
			s.mu.Lock()
			defer s.mu.Unlock()
			var out []investment.Investment
			for _, i := range s.invs {
				if i.InvestorID == investorID {
					out = append(out, i)
				}
			}
			return out, nil
		},
	}
}

func (s *memStore) energyRepo() *storemock.EnergyRepo {
	return &storemock.EnergyRepo{
		CreateFn: func(ctx context.Context, l *energy.Log) error {
			l.CreatedAt = time.Now().UTC()
			s.logs = append(s.logs, *l)
			return nil
		},
		ListByPropertyFn: func(ctx context.Context, propertyID string) ([]energy.Log, error) {
			s.mu.Lock()
			defer s.mu.Unlock()
			var out []energy.Log
			for _, l := range s.logs {
				if l.PropertyID == propertyID {
					out = append(out, l)
				}
			}
			return out, nil
		},
	}
}

func (s *memStore) paymentRepo() *storemock.PaymentRepo {
	return &storemock.PaymentRepo{
		CreateFn: func(ctx context.Context, p *payment.Payment) error {
			p.CreatedAt = time.Now().UTC()
			s.pays = append(s.pays, p)
			return nil
		},
		GetByPaymentIDFn: func(ctx context.Context, paymentID string) (*payment.Payment, error) {
			s.mu.Lock()
			defer s.mu.Unlock()
			return s.findPayment(paymentID)
		},
		ListByHomeownerFn: func(ctx context.Context, homeownerID string) ([]payment.Payment, error) {
			s.mu.Lock()
			defer s.mu.Unlock()
			var out []payment.Payment
			for _, p := range s.pays {
				if p.HomeownerID == homeownerID {
					out = append(out, *p)
				}
			}
			return out, nil
		},
		ListByPropertyFn: func(ctx context.Context, propertyID string) ([]payment.Payment, error) {
			s.mu.Lock()
			defer s.mu.Unlock()
			var out []payment.Payment
			for _, p := range s.pays {
				if p.PropertyID == propertyID {
					out = append(out, *p)
				}
			}
			return out, nil
		},
		ListByLogIDsFn: func(ctx context.Context, logIDs []string) (map[string]payment.Payment, error) {
			s.mu.Lock()
			defer s.mu.Unlock()
			out := map[string]payment.Payment{}
			for _, p := range s.pays {
				for _, lid := range logIDs {
					if p.LogID == lid {
						out[lid] = *p
					}
				}
			}
			return out, nil
		},
		SaveFn: func(ctx context.Context, p *payment.Payment) error { return nil },
		CreatePayoutsFn: func(ctx context.Context, payouts []*payment.InvestorPayout) error {
			for _, p := range payouts {
				p.CreatedAt = time.Now().UTC()
			}
			s.payouts = append(s.payouts, payouts...)
			return nil
		},
		CountPayoutsByPaymentFn: func(ctx context.Context, paymentID string) (int64, error) {
			var n int64
			for _, p := range s.payouts {
				if p.PaymentID == paymentID {
					n++
				}
			}
			return n, nil
		},
		ListPayoutRecordsByInvestorFn: func(ctx context.Context, investorID string) ([]payment.PayoutRecord, error) {
			s.mu.Lock()
			defer s.mu.Unlock()
			var out []payment.PayoutRecord
			for _, po := range s.payouts {
				if po.InvestorID != investorID {
					continue
				}
				pm, err := s.findPayment(po.PaymentID)
				if err != nil {
					continue
				}
				rec := payment.PayoutRecord{
					PayoutID:      po.PayoutID,
					PaymentID:     po.PaymentID,
					PropertyID:    pm.PropertyID,
					Amount:        po.Amount,
					AmountDue:     pm.AmountDue,
					PaymentStatus: pm.Status,
					CreatedAt:     po.CreatedAt,
				}
				if p, err := s.findProperty(pm.PropertyID); err == nil {
					rec.PropertyAddress = p.Address
				}
				for _, l := range s.logs {
					if l.LogID == pm.LogID {
						rec.Month = l.Month
					}
				}
				out = append(out, rec)
			}
			return out, nil
		},
	}
}

// callers must hold s.mu
func (s *memStore) findProperty(propertyID string) (*property.Property, error) {
	for _, p := range s.props {
		if p.PropertyID == propertyID {
			return p, nil
		}
	}
	return nil, property.ErrNotFound
}

// callers must hold s.mu
func (s *memStore) findPayment(paymentID string) (*payment.Payment, error) {
	for _, p := range s.pays {
		if p.PaymentID == paymentID {
			return p, nil
		}
	}
	return nil, payment.ErrNotFound
}

// newTestApp assembles the whole service over the in-memory store, with
// idempotency disabled.
func newTestApp(t *testing.T) (*echo.Echo, *memStore) {
	t.Helper()
	s := &memStore{}

	users := s.userRepo()
	props := s.propertyRepo()
	invs := s.investmentRepo()
	logs := s.energyRepo()
	pays := s.paymentRepo()

	suow := &storemock.SerialUoW{
		Repos: uow.Repos{
			Users:       users,
			Properties:  props,
			Investments: invs,
			EnergyLogs:  logs,
			Payments:    pays,
		},
		Property: func(propertyID string) (*property.Property, error) {
			s.mu.Lock()
			defer s.mu.Unlock()
			return s.findProperty(propertyID)
		},
		Payment: func(paymentID string) (*payment.Payment, error) {
			s.mu.Lock()
			defer s.mu.Unlock()
			return s.findPayment(paymentID)
		},
	}

	authUC := auth.NewUsecase(users, "handler-test-secret", time.Hour)
	fundUC := funding.NewUsecase(users, props, invs, suow, notification.Nop{})
	views := funding.NewViews(fundUC, logs, pays)
	billUC := billing.NewUsecase(users, logs, suow, notification.Nop{})
	settleUC := settlement.NewUsecase(pays, suow)

	e := echo.New()
	e.HideBanner = true
	e.Validator = NewValidator()
	RegisterRoutes(e,
		authUC,
		NewAuthHandler(authUC),
		NewPropertyHandler(fundUC, views, billUC),
		NewInvestmentHandler(fundUC, views),
		NewPaymentHandler(settleUC),
		nil,
	)
	return e, s
}
