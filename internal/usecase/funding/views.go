package funding

import (
	"context"
	"time"

	"solarshare-backend/internal/domain/energy"
	"solarshare-backend/internal/domain/payment"
	"solarshare-backend/internal/domain/property"

	"github.com/shopspring/decimal"
)

// Views assembles the read-side projections: open opportunities, investor
// portfolios, homeowner property listings and the full property aggregate.
// Projections recompute funded totals from the investments table; the
// stored status stays authoritative (transitions happen under the property
// row lock, so the two agree).
type Views struct {
	uc       *Usecase
	logs     energy.Repository
	payments payment.Repository
}

func NewViews(uc *Usecase, logs energy.Repository, payments payment.Repository) *Views {
	return &Views{uc: uc, logs: logs, payments: payments}
}

type OpportunityDTO struct {
	PropertyID      string          `json:"property_id"`
	Address         string          `json:"address"`
	City            string          `json:"city"`
	Pincode         string          `json:"pincode"`
	PanelSize       float64         `json:"panel_size"`
	QuoteAmount     decimal.Decimal `json:"quote_amount"`
	UnitPrice       decimal.Decimal `json:"unit_price"`
	FundedUnits     int             `json:"funded_units"`
	UnitsAvailable  int             `json:"units_available"`
	FundedAmount    decimal.Decimal `json:"funded_amount"`
	RemainingAmount decimal.Decimal `json:"remaining_amount"`
	Status          string          `json:"status"`
	CreatedAt       time.Time       `json:"created_at"`
}

// AvailableInvestments lists quoted and funded properties with their
// funding progress.
func (v *Views) AvailableInvestments(ctx context.Context) ([]OpportunityDTO, error) {
	props, err := v.uc.properties.ListOpen(ctx)
	if err != nil {
		return nil, err
	}
	ids := make([]string, 0, len(props))
	for _, p := range props {
		ids = append(ids, p.PropertyID)
	}
	sums, err := v.uc.investments.SumUnitsByProperties(ctx, ids)
	if err != nil {
		return nil, err
	}

	out := make([]OpportunityDTO, 0, len(props))
	for _, p := range props {
		funded := sums[p.PropertyID]
		available := property.TotalUnits - funded
		unitPrice := p.UnitPrice()
		out = append(out, OpportunityDTO{
			PropertyID:      p.PropertyID,
			Address:         p.Address,
			City:            p.City,
			Pincode:         p.Pincode,
			PanelSize:       p.PanelSize,
			QuoteAmount:     p.QuoteAmount,
			UnitPrice:       unitPrice,
			FundedUnits:     funded,
			UnitsAvailable:  available,
			FundedAmount:    unitPrice.Mul(decimal.NewFromInt(int64(funded))),
			RemainingAmount: unitPrice.Mul(decimal.NewFromInt(int64(available))),
			Status:          string(p.Status),
			CreatedAt:       p.CreatedAt,
		})
	}
	return out, nil
}

type PaymentDTO struct {
	PaymentID   string          `json:"payment_id"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	AmountDue   decimal.Decimal `json:"amount_due"`
	Status      string          `json:"status"`
	ConfirmedAt *time.Time      `json:"confirmed_at,omitempty"`
	CreatedAt   time.Time       `json:"created_at"`
}

type EnergyLogDTO struct {
	LogID         string          `json:"log_id"`
	Month         string          `json:"month"`
	UnitsProduced decimal.Decimal `json:"units_produced"`
	CreatedAt     time.Time       `json:"created_at"`
	Payment       *PaymentDTO     `json:"payment,omitempty"`
}

func toPaymentDTO(p *payment.Payment) *PaymentDTO {
	return &PaymentDTO{
		PaymentID:   p.PaymentID,
		UnitPrice:   p.UnitPrice,
		AmountDue:   p.AmountDue,
		Status:      string(p.Status),
		ConfirmedAt: p.ConfirmedAt,
		CreatedAt:   p.CreatedAt,
	}
}

// logsWithPayments fetches a property's readings and attaches the payment
// derived from each one.
func (v *Views) logsWithPayments(ctx context.Context, propertyID string) ([]EnergyLogDTO, error) {
	logs, err := v.logs.ListByProperty(ctx, propertyID)
	if err != nil {
		return nil, err
	}
	logIDs := make([]string, 0, len(logs))
	for _, l := range logs {
		logIDs = append(logIDs, l.LogID)
	}
	pays, err := v.payments.ListByLogIDs(ctx, logIDs)
	if err != nil {
		return nil, err
	}

	out := make([]EnergyLogDTO, 0, len(logs))
	for _, l := range logs {
		dto := EnergyLogDTO{
			LogID:         l.LogID,
			Month:         l.Month,
			UnitsProduced: l.UnitsProduced,
			CreatedAt:     l.CreatedAt,
		}
		if p, ok := pays[l.LogID]; ok {
			dto.Payment = toPaymentDTO(&p)
		}
		out = append(out, dto)
	}
	return out, nil
}

type HomeownerPropertyDTO struct {
	PropertyDTO
	TotalUnitsSold int            `json:"total_units_bought"`
	EnergyLogs     []EnergyLogDTO `json:"energy_logs"`
}

// MyProperties is the homeowner dashboard: each property with its funding
// progress, readings and derived payments.
func (v *Views) MyProperties(ctx context.Context, homeownerID string) ([]HomeownerPropertyDTO, error) {
	props, err := v.uc.properties.ListByHomeowner(ctx, homeownerID)
	if err != nil {
		return nil, err
	}
	ids := make([]string, 0, len(props))
	for _, p := range props {
		ids = append(ids, p.PropertyID)
	}
	sums, err := v.uc.investments.SumUnitsByProperties(ctx, ids)
	if err != nil {
		return nil, err
	}

	out := make([]HomeownerPropertyDTO, 0, len(props))
	for i := range props {
		p := &props[i]
		logs, err := v.logsWithPayments(ctx, p.PropertyID)
		if err != nil {
			return nil, err
		}
		out = append(out, HomeownerPropertyDTO{
			PropertyDTO:    *toPropertyDTO(p),
			TotalUnitsSold: sums[p.PropertyID],
			EnergyLogs:     logs,
		})
	}
	return out, nil
}

// AssignedProperties lists the properties assigned to a vendor.
func (v *Views) AssignedProperties(ctx context.Context, vendorID string) ([]PropertyDTO, error) {
	props, err := v.uc.properties.ListByVendor(ctx, vendorID)
	if err != nil {
		return nil, err
	}
	out := make([]PropertyDTO, 0, len(props))
	for i := range props {
		out = append(out, *toPropertyDTO(&props[i]))
	}
	return out, nil
}

type PortfolioDTO struct {
	PropertyDTO
	TotalUnitsPurchased int             `json:"total_units_purchased"`
	TotalAmountInvested decimal.Decimal `json:"total_amount_invested"`
	FirstInvestmentAt   time.Time       `json:"first_investment_at"`
	TotalPaidOut        decimal.Decimal `json:"total_paid_out"`
	EnergyLogs          []EnergyLogDTO  `json:"energy_logs"`
}

// MyInvestments is the investor portfolio: one entry per property with the
// accumulated position, payouts received and the property's readings.
func (v *Views) MyInvestments(ctx context.Context, investorID string) ([]PortfolioDTO, error) {
	invs, err := v.uc.investments.ListByInvestor(ctx, investorID)
	if err != nil {
		return nil, err
	}
	if len(invs) == 0 {
		return []PortfolioDTO{}, nil
	}

	type position struct {
		units  int
		amount decimal.Decimal
		first  time.Time
	}
	positions := make(map[string]*position)
	order := make([]string, 0)
	for _, inv := range invs {
		pos, ok := positions[inv.PropertyID]
		if !ok {
			pos = &position{amount: decimal.Zero, first: inv.CreatedAt}
			positions[inv.PropertyID] = pos
			order = append(order, inv.PropertyID)
		}
		pos.units += inv.UnitsPurchased
		pos.amount = pos.amount.Add(inv.Amount())
		if inv.CreatedAt.Before(pos.first) {
			pos.first = inv.CreatedAt
		}
	}

	paidOut := make(map[string]decimal.Decimal)
	records, err := v.payments.ListPayoutRecordsByInvestor(ctx, investorID)
	if err != nil {
		return nil, err
	}
	for _, rec := range records {
		cur, ok := paidOut[rec.PropertyID]
		if !ok {
			cur = decimal.Zero
		}
		paidOut[rec.PropertyID] = cur.Add(rec.Amount)
	}

	out := make([]PortfolioDTO, 0, len(order))
	for _, pid := range order {
		p, err := v.uc.properties.GetByPropertyID(ctx, pid)
		if err != nil {
			return nil, err
		}
		logs, err := v.logsWithPayments(ctx, pid)
		if err != nil {
			return nil, err
		}
		pos := positions[pid]
		total, ok := paidOut[pid]
		if !ok {
			total = decimal.Zero
		}
		out = append(out, PortfolioDTO{
			PropertyDTO:         *toPropertyDTO(p),
			TotalUnitsPurchased: pos.units,
			TotalAmountInvested: pos.amount,
			FirstInvestmentAt:   pos.first,
			TotalPaidOut:        total,
			EnergyLogs:          logs,
		})
	}
	return out, nil
}

type PartyDTO struct {
	UserID  string `json:"user_id"`
	Name    string `json:"name"`
	Contact string `json:"contact"`
}

type InvestmentLineDTO struct {
	InvestorID       string          `json:"investor_id"`
	UnitsPurchased   int             `json:"units_purchased"`
	InvestmentAmount decimal.Decimal `json:"investment_amount"`
}

type PropertyDetailsDTO struct {
	PropertyDTO
	Vendor      *PartyDTO              `json:"vendor,omitempty"`
	Homeowner   *PartyDTO              `json:"homeowner,omitempty"`
	FundedUnits int                    `json:"funded_units"`
	EnergyLogs  []EnergyLogDTO         `json:"energy_logs"`
	Payments    []PaymentDTO           `json:"payments"`
	Investments []InvestmentLineDTO    `json:"investments"`
	MyPayouts   []payment.PayoutRecord `json:"investor_payouts"`
}

// PropertyDetails is the full aggregate for one property. MyPayouts is
// scoped to the calling user (non-empty only for investors with payouts on
// this property).
func (v *Views) PropertyDetails(ctx context.Context, propertyID, callerID string) (*PropertyDetailsDTO, error) {
	p, err := v.uc.properties.GetByPropertyID(ctx, propertyID)
	if err != nil {
		return nil, err
	}

	dto := &PropertyDetailsDTO{PropertyDTO: *toPropertyDTO(p)}

	if p.AssignedVendorID != "" {
		if vend, err := v.uc.users.GetByUserID(ctx, p.AssignedVendorID); err == nil {
			dto.Vendor = &PartyDTO{UserID: vend.UserID, Name: vend.Name, Contact: vend.Email}
		}
	}
	if owner, err := v.uc.users.GetByUserID(ctx, p.HomeownerID); err == nil {
		dto.Homeowner = &PartyDTO{UserID: owner.UserID, Name: owner.Name, Contact: owner.Email}
	}

	logs, err := v.logsWithPayments(ctx, propertyID)
	if err != nil {
		return nil, err
	}
	dto.EnergyLogs = logs

	pays, err := v.payments.ListByProperty(ctx, propertyID)
	if err != nil {
		return nil, err
	}
	dto.Payments = make([]PaymentDTO, 0, len(pays))
	for i := range pays {
		dto.Payments = append(dto.Payments, *toPaymentDTO(&pays[i]))
	}

	invs, err := v.uc.investments.ListByProperty(ctx, propertyID)
	if err != nil {
		return nil, err
	}
	dto.Investments = make([]InvestmentLineDTO, 0, len(invs))
	for _, inv := range invs {
		dto.FundedUnits += inv.UnitsPurchased
		dto.Investments = append(dto.Investments, InvestmentLineDTO{
			InvestorID:       inv.InvestorID,
			UnitsPurchased:   inv.UnitsPurchased,
			InvestmentAmount: inv.Amount(),
		})
	}

	dto.MyPayouts = []payment.PayoutRecord{}
	records, err := v.payments.ListPayoutRecordsByInvestor(ctx, callerID)
	if err != nil {
		return nil, err
	}
	for _, rec := range records {
		if rec.PropertyID == propertyID {
			dto.MyPayouts = append(dto.MyPayouts, rec)
		}
	}

	return dto, nil
}

// ServiceableCities is the distinct union of all vendors' coverage.
func (v *Views) ServiceableCities(ctx context.Context) ([]string, error) {
	return v.uc.users.ListServiceableCities(ctx)
}
