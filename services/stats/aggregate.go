// Package stats derives reporting figures from client snapshots. The
// reduces are pure; the service layer owns fetching and authorization.
package stats

import (
	"math"
	"time"

	"github.com/mohamedfathy32/elnaseem-crm/models"
	"github.com/mohamedfathy32/elnaseem-crm/services/finance"
)

// Summary is the per-status breakdown of a set of clients.
type Summary struct {
	Total       int                         `json:"total"`
	ByStatus    map[models.ClientStatus]int `json:"byStatus"`
	SoldCount   int                         `json:"soldCount"`
	TotalProfit float64                     `json:"totalProfit"`
	AvgProfit   float64                     `json:"avgProfit"`
}

// Summarize reduces a client set into counts and profit totals. Every status
// bucket is present even when empty. A missing or non-finite profit counts
// as zero rather than poisoning the totals.
func Summarize(clients []models.Client) Summary {
	byStatus := make(map[models.ClientStatus]int, len(models.AllStatuses))
	for _, s := range models.AllStatuses {
		byStatus[s] = 0
	}

	sum := Summary{ByStatus: byStatus}
	for _, c := range clients {
		sum.Total++
		byStatus[c.Status]++
		if c.Status != models.StatusSold {
			continue
		}
		sum.SoldCount++
		if !math.IsNaN(c.Profit) && !math.IsInf(c.Profit, 0) {
			sum.TotalProfit += c.Profit
		}
	}
	if sum.SoldCount > 0 {
		sum.AvgProfit = sum.TotalProfit / float64(sum.SoldCount)
	}
	return sum
}

// MonthlyProfit totals the profit of sold clients whose last update falls in
// the current month, from local midnight on the 1st up to now. The window is
// evaluated at call time; nothing is snapshotted at month boundaries.
func MonthlyProfit(clients []models.Client, now time.Time) float64 {
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())

	var total float64
	for _, c := range clients {
		if c.Status != models.StatusSold {
			continue
		}
		if c.UpdatedAt.Before(monthStart) || c.UpdatedAt.After(now) {
			continue
		}
		if !math.IsNaN(c.Profit) && !math.IsInf(c.Profit, 0) {
			total += c.Profit
		}
	}
	return total
}

// PayrollView is the salary breakdown shown to managers and the employee.
type PayrollView struct {
	FixedSalary    float64 `json:"fixedSalary"`
	MonthlyProfit  float64 `json:"monthlyProfit"`
	CommissionRate float64 `json:"commissionRate"`
	Commission     float64 `json:"commission"`
	TotalSalary    float64 `json:"totalSalary"`
}

// Payroll builds the salary view for one employee from their fixed salary
// and cumulative monthly profit.
func Payroll(fixedSalary, monthlyProfit float64) PayrollView {
	return PayrollView{
		FixedSalary:    fixedSalary,
		MonthlyProfit:  monthlyProfit,
		CommissionRate: finance.CommissionRate(monthlyProfit),
		Commission:     finance.CalculateCommission(monthlyProfit),
		TotalSalary:    finance.TotalSalary(fixedSalary, monthlyProfit),
	}
}
