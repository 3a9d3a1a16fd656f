// Package finance holds the currency conversion and commission math. Every
// function here is pure: same inputs, same outputs, no I/O.
package finance

import (
	"strconv"
	"strings"

	"github.com/mohamedfathy32/elnaseem-crm/models"
)

// Money is one price leg of a sale in its original denomination.
type Money struct {
	Amount   float64
	Currency models.Currency
}

// ProfitBreakdown is the result of converting both legs into the base
// currency. Profit may be negative; a losing sale is valid data, not an
// error.
type ProfitBreakdown struct {
	CostBase float64
	SellBase float64
	Profit   float64
}

// ConvertToBase converts an amount into the base currency (EGP). EGP amounts
// pass through untouched; SAR amounts are multiplied by the given rate.
// Validation is the caller's job, negative inputs propagate.
func ConvertToBase(amount float64, currency models.Currency, rate float64) float64 {
	if currency == models.CurrencySAR {
		return amount * rate
	}
	return amount
}

// ComputeProfit converts both legs and derives the profit. The cost leg
// always converts at BuyRate and the sell leg always at SellRate, even when
// both legs share a currency. That asymmetry is the agency's pricing rule.
func ComputeProfit(cost, sell Money, rates models.ExchangeRateSettings) ProfitBreakdown {
	costBase := ConvertToBase(cost.Amount, cost.Currency, rates.BuyRate)
	sellBase := ConvertToBase(sell.Amount, sell.Currency, rates.SellRate)
	return ProfitBreakdown{
		CostBase: costBase,
		SellBase: sellBase,
		Profit:   sellBase - costBase,
	}
}

// Commission tier boundaries over cumulative monthly profit.
const (
	tier1 = 5000
	tier2 = 10000
	tier3 = 15000
	tier4 = 20000
	tier5 = 25000
)

// CommissionRate returns the single tier rate matched by the monthly profit.
func CommissionRate(monthlyProfit float64) float64 {
	switch {
	case monthlyProfit < tier1:
		return 0
	case monthlyProfit < tier2:
		return 0.05
	case monthlyProfit < tier3:
		return 0.10
	case monthlyProfit < tier4:
		return 0.15
	case monthlyProfit < tier5:
		return 0.20
	default:
		return 0.25
	}
}

// CalculateCommission applies the matched tier's rate to the entire monthly
// profit. The scheme is deliberately a cliff at each boundary (5000.00 earns
// 250 while 4999.99 earns 0), not a graduated bracket sum; it is recomputed
// from the full figure on every call.
func CalculateCommission(monthlyProfit float64) float64 {
	return monthlyProfit * CommissionRate(monthlyProfit)
}

// TotalSalary is the fixed salary (zero when unset) plus commission.
func TotalSalary(fixedSalary, monthlyProfit float64) float64 {
	return fixedSalary + CalculateCommission(monthlyProfit)
}

// ParseAmount parses an optional numeric field, defaulting to zero on
// anything malformed. Required fields are validated before they get here.
func ParseAmount(s string) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0
	}
	return v
}
