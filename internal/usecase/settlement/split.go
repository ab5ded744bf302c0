package settlement

import (
	"sort"

	"solarshare-backend/internal/domain/property"

	"github.com/shopspring/decimal"
)

// holding is one investor's accumulated position in a property.
type holding struct {
	InvestorID string
	Units      int
}

// splitProRata divides amount across holders by units held out of
// property.TotalUnits. Each share is the exact pro-rata value rounded down
// to 2 decimal places; the residual left by rounding goes to the largest
// holder (ties broken by smallest investor ID) so the shares always sum to
// the full allocatable amount.
//
// When the property is not fully subscribed the unsold units' share stays
// with the platform: only units/TotalUnits × amount is distributed.
func splitProRata(amount decimal.Decimal, holdings []holding) map[string]decimal.Decimal {
	out := make(map[string]decimal.Decimal, len(holdings))
	if len(holdings) == 0 {
		return out
	}

	totalUnits := decimal.NewFromInt(property.TotalUnits)
	allocatable := decimal.Zero
	largest := holdings[0]
	for _, h := range holdings {
		if h.Units <= 0 {
			continue
		}
		share := amount.Mul(decimal.NewFromInt(int64(h.Units))).Div(totalUnits)
		rounded := share.RoundDown(2)
		out[h.InvestorID] = rounded
		allocatable = allocatable.Add(share)
		if h.Units > largest.Units || (h.Units == largest.Units && h.InvestorID < largest.InvestorID) {
			largest = h
		}
	}
	if len(out) == 0 {
		return out
	}

	// reconcile the rounding drift onto the largest holder
	sum := decimal.Zero
	for _, v := range out {
		sum = sum.Add(v)
	}
	residual := allocatable.RoundDown(2).Sub(sum)
	if !residual.IsZero() {
		out[largest.InvestorID] = out[largest.InvestorID].Add(residual)
	}
	return out
}

// sortedHoldings collapses raw investments into one holding per investor,
// ordered by investor ID for deterministic payout row order.
func sortedHoldings(unitsByInvestor map[string]int) []holding {
	out := make([]holding, 0, len(unitsByInvestor))
	for investor, units := range unitsByInvestor {
		out = append(out, holding{InvestorID: investor, Units: units})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].InvestorID < out[j].InvestorID })
	return out
}
