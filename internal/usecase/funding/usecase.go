// Package funding owns the property lifecycle up to full subscription:
// submission with vendor assignment, vendor quoting, and unit purchases
// against the fixed 1000-unit supply.
package funding

import (
	"context"
	"errors"
	"fmt"
	"time"

	"solarshare-backend/internal/domain/investment"
	"solarshare-backend/internal/domain/property"
	"solarshare-backend/internal/domain/uow"
	"solarshare-backend/internal/domain/user"
	"solarshare-backend/internal/notification"
	"solarshare-backend/pkg/id"

	"github.com/shopspring/decimal"
)

type Usecase struct {
	users       user.Repository
	properties  property.Repository
	investments investment.Repository
	uow         uow.UnitOfWork
	notify      notification.Notifier
}

func NewUsecase(users user.Repository, properties property.Repository, investments investment.Repository, tx uow.UnitOfWork, n notification.Notifier) *Usecase {
	return &Usecase{users: users, properties: properties, investments: investments, uow: tx, notify: n}
}

type SubmitPropertyInput struct {
	HomeownerID       string
	Address           string
	City              string
	Pincode           string
	EnergyConsumption float64
}

type PropertyDTO struct {
	PropertyID        string          `json:"property_id"`
	Address           string          `json:"address"`
	City              string          `json:"city"`
	Pincode           string          `json:"pincode"`
	EnergyConsumption float64         `json:"energy_consumption"`
	PanelSize         float64         `json:"panel_size"`
	QuoteAmount       decimal.Decimal `json:"quote_amount"`
	AssignedVendorID  string          `json:"assigned_vendor"`
	Status            string          `json:"status"`
	CreatedAt         time.Time       `json:"created_at"`
}

func toPropertyDTO(p *property.Property) *PropertyDTO {
	return &PropertyDTO{
		PropertyID:        p.PropertyID,
		Address:           p.Address,
		City:              p.City,
		Pincode:           p.Pincode,
		EnergyConsumption: p.EnergyConsumption,
		PanelSize:         p.PanelSize,
		QuoteAmount:       p.QuoteAmount,
		AssignedVendorID:  p.AssignedVendorID,
		Status:            string(p.Status),
		CreatedAt:         p.CreatedAt,
	}
}

// SubmitProperty creates a pending property and assigns a vendor covering
// its city. Fails with user.ErrNoVendorAvailable when no vendor serves it.
func (u *Usecase) SubmitProperty(ctx context.Context, in SubmitPropertyInput) (*PropertyDTO, error) {
	if in.Address == "" || in.City == "" || in.Pincode == "" || in.EnergyConsumption <= 0 {
		return nil, errors.New("invalid input")
	}

	vendor, err := u.users.FirstVendorForCity(ctx, in.City)
	if err != nil {
		return nil, err
	}

	p := &property.Property{
		PropertyID:        id.NewID32(),
		HomeownerID:       in.HomeownerID,
		AssignedVendorID:  vendor.UserID,
		Address:           in.Address,
		City:              in.City,
		Pincode:           in.Pincode,
		EnergyConsumption: in.EnergyConsumption,
		Status:            property.StatusPending,
		StatusUpdatedAt:   time.Now().UTC(),
	}
	if err := u.properties.Create(ctx, p); err != nil {
		return nil, err
	}

	u.notify.Notify(ctx, vendor.FCMToken, "New Property Assignment",
		fmt.Sprintf("A new property has been submitted in %s. Please review the details.", in.City))

	return toPropertyDTO(p), nil
}

type SubmitQuoteInput struct {
	PropertyID  string
	VendorID    string
	PanelSize   float64
	QuoteAmount decimal.Decimal
}

// SubmitQuote sets panel size and quote amount and opens the property for
// funding. Only the assigned vendor may quote, and only while pending.
func (u *Usecase) SubmitQuote(ctx context.Context, in SubmitQuoteInput) (*PropertyDTO, error) {
	if in.PanelSize <= 0 || !in.QuoteAmount.IsPositive() {
		return nil, errors.New("invalid input")
	}

	var (
		dto         *PropertyDTO
		homeownerID string
	)
	err := u.uow.WithinPropertyTx(ctx, in.PropertyID, func(r uow.Repos, p *property.Property) error {
		if p.AssignedVendorID != in.VendorID {
			return property.ErrNotAssignedVendor
		}
		if p.Status != property.StatusPending {
			return property.ErrNotQuotable
		}
		p.PanelSize = in.PanelSize
		p.QuoteAmount = in.QuoteAmount
		p.Status = property.StatusQuoted
		p.StatusUpdatedAt = time.Now().UTC()
		if err := r.Properties.Save(ctx, p); err != nil {
			return err
		}
		dto = toPropertyDTO(p)
		homeownerID = p.HomeownerID
		return nil
	})
	if err != nil {
		return nil, err
	}

	// best-effort side channel, after the tx is committed
	if owner, err := u.users.GetByUserID(ctx, homeownerID); err == nil {
		u.notify.Notify(ctx, owner.FCMToken, "Quote Received",
			"A vendor has submitted a quote for your property.")
	}
	if tokens, err := u.users.ListInvestorTokens(ctx); err == nil {
		for _, tok := range tokens {
			u.notify.Notify(ctx, tok, "New Investment Opportunity",
				"A new solar project is now open for investment.")
		}
	}

	return dto, nil
}

type PurchaseUnitsInput struct {
	PropertyID string
	InvestorID string
	Units      int
}

type InvestmentDTO struct {
	InvestmentID string          `json:"investment_id"`
	PropertyID   string          `json:"property_id"`
	InvestorID   string          `json:"investor_id"`
	Units        int             `json:"units_purchased"`
	UnitPrice    decimal.Decimal `json:"unit_price"`
	Amount       decimal.Decimal `json:"amount"`
	FundedUnits  int             `json:"funded_units"`
	Status       string          `json:"property_status"`
	CreatedAt    time.Time       `json:"created_at"`
}

// PurchaseUnits buys units of a quoted property. The whole
// check-insert-recheck sequence runs under the property row lock so
// concurrent purchases can never push the total past TotalUnits.
func (u *Usecase) PurchaseUnits(ctx context.Context, in PurchaseUnitsInput) (*InvestmentDTO, error) {
	if in.Units <= 0 {
		return nil, errors.New("units must be a positive integer")
	}

	var dto *InvestmentDTO
	err := u.uow.WithinPropertyTx(ctx, in.PropertyID, func(r uow.Repos, p *property.Property) error {
		if p.Status != property.StatusQuoted {
			return property.ErrNotFundable
		}

		funded, err := r.Investments.SumUnitsByProperty(ctx, in.PropertyID)
		if err != nil {
			return err
		}
		if funded+in.Units > property.TotalUnits {
			return fmt.Errorf("%w: %d of %d units remain", property.ErrOverAllocation, property.TotalUnits-funded, property.TotalUnits)
		}

		inv := &investment.Investment{
			InvestmentID:   id.NewID32(),
			PropertyID:     p.PropertyID,
			InvestorID:     in.InvestorID,
			UnitsPurchased: in.Units,
			// captured once; later quote changes must not alter it
			UnitPrice: p.UnitPrice(),
		}
		if err := r.Investments.Create(ctx, inv); err != nil {
			return err
		}

		total := funded + in.Units
		if total == property.TotalUnits {
			p.Status = property.StatusFunded
			p.StatusUpdatedAt = time.Now().UTC()
			if err := r.Properties.Save(ctx, p); err != nil {
				return err
			}
		}

		dto = &InvestmentDTO{
			InvestmentID: inv.InvestmentID,
			PropertyID:   inv.PropertyID,
			InvestorID:   inv.InvestorID,
			Units:        inv.UnitsPurchased,
			UnitPrice:    inv.UnitPrice,
			Amount:       inv.Amount(),
			FundedUnits:  total,
			Status:       string(p.Status),
			CreatedAt:    inv.CreatedAt,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return dto, nil
}
