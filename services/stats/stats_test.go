package stats

import (
	"context"
	"sort"
	"testing"
	"time"

	"github.com/mohamedfathy32/elnaseem-crm/database/repository/mocks"
	"github.com/mohamedfathy32/elnaseem-crm/models"
	"github.com/mohamedfathy32/elnaseem-crm/utils"

	"go.uber.org/mock/gomock"
)

var (
	manager = &models.User{ID: "mgr-1", Role: models.RoleManager}
	sales   = &models.User{ID: "sales-1", Name: "Sales One", Role: models.RoleSales}
)

func sold(id, assignee string, profit float64, updatedAt time.Time) models.Client {
	return models.Client{ID: id, Status: models.StatusSold, AssignedTo: assignee, Profit: profit, UpdatedAt: updatedAt}
}

func TestSummarize(t *testing.T) {
	now := time.Now()
	clients := []models.Client{
		{ID: "a", Status: models.StatusNew},
		{ID: "b", Status: models.StatusFollowUp},
		sold("c", "", 400, now),
		sold("d", "", 600, now),
		{ID: "e", Status: models.StatusRejected},
	}

	got := Summarize(clients)
	if got.Total != 5 {
		t.Errorf("total = %d, want 5", got.Total)
	}
	if got.ByStatus[models.StatusSold] != 2 || got.ByStatus[models.StatusNew] != 1 {
		t.Errorf("byStatus = %v", got.ByStatus)
	}
	if got.ByStatus[models.StatusPostponed] != 0 {
		t.Error("empty bucket missing")
	}
	if len(got.ByStatus) != len(models.AllStatuses) {
		t.Errorf("expected %d buckets, got %d", len(models.AllStatuses), len(got.ByStatus))
	}
	if got.TotalProfit != 1000 {
		t.Errorf("totalProfit = %v, want 1000", got.TotalProfit)
	}
	if got.AvgProfit != 500 {
		t.Errorf("avgProfit = %v, want 500", got.AvgProfit)
	}
}

func TestSummarizeEmpty(t *testing.T) {
	got := Summarize(nil)
	if got.Total != 0 || got.TotalProfit != 0 || got.AvgProfit != 0 {
		t.Errorf("got %+v, want zeroes", got)
	}
}

func TestMonthlyProfit(t *testing.T) {
	now := time.Date(2026, 8, 20, 12, 0, 0, 0, time.Local)
	monthStart := time.Date(2026, 8, 1, 0, 0, 0, 0, time.Local)

	clients := []models.Client{
		sold("in-window", "", 300, now.Add(-24*time.Hour)),
		sold("at-boundary", "", 200, monthStart),
		sold("last-month", "", 999, monthStart.Add(-time.Second)),
		{ID: "not-sold", Status: models.StatusFollowUp, Profit: 500, UpdatedAt: now},
	}

	got := MonthlyProfit(clients, now)
	if got != 500 {
		t.Errorf("monthlyProfit = %v, want 500", got)
	}
}

func TestPayroll(t *testing.T) {
	got := Payroll(3000, 10000)
	if got.Commission != 1000 || got.TotalSalary != 4000 {
		t.Errorf("got %+v", got)
	}
	if got.CommissionRate != 0.10 {
		t.Errorf("rate = %v", got.CommissionRate)
	}

	below := Payroll(3000, 4999.99)
	if below.Commission != 0 || below.TotalSalary != 3000 {
		t.Errorf("below tier got %+v", below)
	}
}

func TestOverview(t *testing.T) {
	ctx := context.Background()

	t.Run("non-manager denied", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		svc := NewDefaultStatsService(mocks.NewMockClientRepository(ctrl), mocks.NewMockUserRepository(ctrl))

		_, err := svc.Overview(ctx, sales)
		if utils.KindOf(err) != utils.KindPermissionDenied {
			t.Fatalf("expected permission_denied, got %v", err)
		}
	})

	t.Run("rolls up per employee with resolved names", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		clients := mocks.NewMockClientRepository(ctrl)
		users := mocks.NewMockUserRepository(ctrl)
		svc := NewDefaultStatsService(clients, users)

		now := time.Now()
		clients.EXPECT().GetAll().Return([]models.Client{
			sold("c1", "sales-1", 6000, now),
			{ID: "c2", Status: models.StatusFollowUp, AssignedTo: "sales-1"},
			sold("c3", "sales-2", 2000, now),
			{ID: "c4", Status: models.StatusNew},
		}, nil)
		users.EXPECT().GetByID("sales-1").Return(&models.User{ID: "sales-1", Name: "Sales One", Salary: 3000}, nil)
		users.EXPECT().GetByID("sales-2").Return(&models.User{ID: "sales-2", Name: "Sales Two", Salary: 2500}, nil)

		got, err := svc.Overview(ctx, manager)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.Totals.Total != 4 || got.Unassigned != 1 {
			t.Errorf("totals = %+v unassigned = %d", got.Totals, got.Unassigned)
		}
		if len(got.Employees) != 2 {
			t.Fatalf("expected 2 employee reports, got %d", len(got.Employees))
		}

		sort.Slice(got.Employees, func(i, j int) bool {
			return got.Employees[i].EmployeeID < got.Employees[j].EmployeeID
		})
		first := got.Employees[0]
		if first.Name != "Sales One" {
			t.Errorf("name = %s", first.Name)
		}
		if first.MonthlyProfit != 6000 {
			t.Errorf("monthlyProfit = %v", first.MonthlyProfit)
		}
		// 6000 sits in the 5% tier: 300 commission on top of 3000 fixed.
		if first.Payroll.TotalSalary != 3300 {
			t.Errorf("totalSalary = %v, want 3300", first.Payroll.TotalSalary)
		}
	})

	t.Run("removed account reported by id", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		clients := mocks.NewMockClientRepository(ctrl)
		users := mocks.NewMockUserRepository(ctrl)
		svc := NewDefaultStatsService(clients, users)

		clients.EXPECT().GetAll().Return([]models.Client{
			sold("c1", "gone-uid", 100, time.Now()),
		}, nil)
		users.EXPECT().GetByID("gone-uid").Return(nil, nil)

		got, err := svc.Overview(ctx, manager)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(got.Employees) != 1 {
			t.Fatalf("expected 1 employee report, got %d", len(got.Employees))
		}
		if got.Employees[0].Name != "gone-uid" {
			t.Errorf("name = %q, want the orphaned id", got.Employees[0].Name)
		}
		if got.Employees[0].Payroll.FixedSalary != 0 {
			t.Errorf("fixedSalary = %v, want 0", got.Employees[0].Payroll.FixedSalary)
		}
	})
}

func TestEmployeeStats(t *testing.T) {
	ctx := context.Background()

	t.Run("employee views self", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		clients := mocks.NewMockClientRepository(ctrl)
		users := mocks.NewMockUserRepository(ctrl)
		svc := NewDefaultStatsService(clients, users)

		users.EXPECT().GetByID("sales-1").Return(&models.User{ID: "sales-1", Name: "Sales One", Salary: 3000}, nil)
		clients.EXPECT().GetByAssignee("sales-1").Return([]models.Client{
			sold("c1", "sales-1", 12000, time.Now()),
		}, nil)

		got, err := svc.EmployeeStats(ctx, "sales-1", sales)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		// 12000 is the 10% tier.
		if got.Payroll.Commission != 1200 {
			t.Errorf("commission = %v, want 1200", got.Payroll.Commission)
		}
	})

	t.Run("employee cannot view others", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		svc := NewDefaultStatsService(mocks.NewMockClientRepository(ctrl), mocks.NewMockUserRepository(ctrl))

		_, err := svc.EmployeeStats(ctx, "sales-2", sales)
		if utils.KindOf(err) != utils.KindPermissionDenied {
			t.Fatalf("expected permission_denied, got %v", err)
		}
	})
}
