package finance

import (
	"math"
	"testing"

	"github.com/mohamedfathy32/elnaseem-crm/models"
)

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestConvertToBase(t *testing.T) {
	tests := []struct {
		name     string
		amount   float64
		currency models.Currency
		rate     float64
		want     float64
	}{
		{"egp passes through", 1200, models.CurrencyEGP, 8.5, 1200},
		{"egp ignores rate", 500, models.CurrencyEGP, 0, 500},
		{"sar converts", 100, models.CurrencySAR, 8, 800},
		{"sar zero rate", 100, models.CurrencySAR, 0, 0},
		{"zero amount", 0, models.CurrencySAR, 8, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ConvertToBase(tt.amount, tt.currency, tt.rate)
			if !almostEqual(got, tt.want) {
				t.Errorf("ConvertToBase(%v, %v, %v) = %v, want %v", tt.amount, tt.currency, tt.rate, got, tt.want)
			}
		})
	}
}

func TestComputeProfit(t *testing.T) {
	rates := models.ExchangeRateSettings{BuyRate: 8, SellRate: 8.5}

	t.Run("mixed currencies", func(t *testing.T) {
		got := ComputeProfit(
			Money{Amount: 100, Currency: models.CurrencySAR},
			Money{Amount: 1200, Currency: models.CurrencyEGP},
			rates,
		)
		if !almostEqual(got.CostBase, 800) || !almostEqual(got.SellBase, 1200) || !almostEqual(got.Profit, 400) {
			t.Errorf("got %+v, want cost=800 sell=1200 profit=400", got)
		}
	})

	t.Run("both sar use asymmetric rates", func(t *testing.T) {
		got := ComputeProfit(
			Money{Amount: 100, Currency: models.CurrencySAR},
			Money{Amount: 100, Currency: models.CurrencySAR},
			rates,
		)
		// cost at buy rate, sell at sell rate, so equal amounts still profit
		if !almostEqual(got.Profit, 50) {
			t.Errorf("profit = %v, want 50", got.Profit)
		}
	})

	t.Run("negative profit is kept", func(t *testing.T) {
		got := ComputeProfit(
			Money{Amount: 2000, Currency: models.CurrencyEGP},
			Money{Amount: 1500, Currency: models.CurrencyEGP},
			rates,
		)
		if !almostEqual(got.Profit, -500) {
			t.Errorf("profit = %v, want -500", got.Profit)
		}
	})
}

func TestCalculateCommission(t *testing.T) {
	tests := []struct {
		name   string
		profit float64
		want   float64
	}{
		{"below first tier", 4999.99, 0},
		{"zero", 0, 0},
		{"negative", -1000, 0},
		{"first boundary", 5000, 250},
		{"just under second", 9999.99, 499.9995},
		{"second boundary", 10000, 1000},
		{"third boundary", 15000, 2250},
		{"fourth boundary", 20000, 4000},
		{"top boundary", 25000, 6250},
		{"above top", 30000, 7500},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CalculateCommission(tt.profit)
			if !almostEqual(got, tt.want) {
				t.Errorf("CalculateCommission(%v) = %v, want %v", tt.profit, got, tt.want)
			}
		})
	}
}

func TestCommissionCliff(t *testing.T) {
	// the scheme is a cliff, not a graduated bracket: one cent over a
	// boundary repriced the whole month
	below := CalculateCommission(4999.99)
	at := CalculateCommission(5000)
	if below != 0 || !almostEqual(at, 250) {
		t.Errorf("cliff broken: below=%v at=%v", below, at)
	}
}

func TestTotalSalary(t *testing.T) {
	tests := []struct {
		name          string
		fixed         float64
		monthlyProfit float64
		want          float64
	}{
		{"no salary no profit", 0, 0, 0},
		{"salary only", 3000, 4000, 3000},
		{"salary plus commission", 3000, 10000, 4000},
		{"ten percent tier", 3000, 12000, 4200},
		{"unset salary treated as zero", 0, 25000, 6250},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := TotalSalary(tt.fixed, tt.monthlyProfit)
			if !almostEqual(got, tt.want) {
				t.Errorf("TotalSalary(%v, %v) = %v, want %v", tt.fixed, tt.monthlyProfit, got, tt.want)
			}
		})
	}
}

func TestParseAmount(t *testing.T) {
	tests := []struct {
		in   string
		want float64
	}{
		{"1500", 1500},
		{" 99.5 ", 99.5},
		{"-20", -20},
		{"", 0},
		{"abc", 0},
		{"12,000", 0},
	}
	for _, tt := range tests {
		if got := ParseAmount(tt.in); !almostEqual(got, tt.want) {
			t.Errorf("ParseAmount(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
