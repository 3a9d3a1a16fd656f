package stats

import (
	"context"
	"sync"
	"time"

	clientRepo "github.com/mohamedfathy32/elnaseem-crm/database/repository/client"
	userRepo "github.com/mohamedfathy32/elnaseem-crm/database/repository/user"
	"github.com/mohamedfathy32/elnaseem-crm/models"
	"github.com/mohamedfathy32/elnaseem-crm/utils"

	"go.uber.org/zap"
)

// EmployeeReport is one employee's pipeline and payroll figures.
type EmployeeReport struct {
	EmployeeID    string      `json:"employeeId"`
	Name          string      `json:"name"`
	Summary       Summary     `json:"summary"`
	MonthlyProfit float64     `json:"monthlyProfit"`
	Payroll       PayrollView `json:"payroll"`
}

// OverviewReport is the manager dashboard: whole-agency totals plus a
// rollup per employee holding assignments.
type OverviewReport struct {
	Totals     Summary          `json:"totals"`
	Unassigned int              `json:"unassigned"`
	Employees  []EmployeeReport `json:"employees"`
}

type StatsService interface {
	Overview(ctx context.Context, actor *models.User) (*OverviewReport, error)
	EmployeeStats(ctx context.Context, employeeID string, actor *models.User) (*EmployeeReport, error)
}

// DefaultStatsService is the production implementation.
type DefaultStatsService struct {
	Clients clientRepo.ClientRepository
	Users   userRepo.UserRepository
}

func NewDefaultStatsService(clients clientRepo.ClientRepository, users userRepo.UserRepository) *DefaultStatsService {
	return &DefaultStatsService{Clients: clients, Users: users}
}

// Overview computes the manager dashboard from one full scan. Employee
// account lookups fan out in parallel; the report is assembled only after
// every lookup lands.
func (s *DefaultStatsService) Overview(ctx context.Context, actor *models.User) (*OverviewReport, error) {
	logger := utils.GetLogger()

	if actor.Role != models.RoleManager {
		return nil, utils.E(utils.KindPermissionDenied, "only managers may view the overview")
	}

	clients, err := s.Clients.GetAll()
	if err != nil {
		return nil, err
	}

	byEmployee := make(map[string][]models.Client)
	unassigned := 0
	for _, c := range clients {
		if c.AssignedTo == "" {
			unassigned++
			continue
		}
		byEmployee[c.AssignedTo] = append(byEmployee[c.AssignedTo], c)
	}

	now := time.Now()
	var (
		mu       sync.Mutex
		wg       sync.WaitGroup
		reports  = make([]EmployeeReport, 0, len(byEmployee))
		firstErr error
	)
	for employeeID, assigned := range byEmployee {
		wg.Add(1)
		go func(employeeID string, assigned []models.Client) {
			defer wg.Done()

			report := EmployeeReport{
				EmployeeID:    employeeID,
				Summary:       Summarize(assigned),
				MonthlyProfit: MonthlyProfit(assigned, now),
			}

			user, err := s.Users.GetByID(employeeID)
			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				if firstErr == nil {
					firstErr = err
				}
				return
			}
			if user != nil {
				report.Name = user.Name
				report.Payroll = Payroll(user.Salary, report.MonthlyProfit)
			} else {
				// Assignment pointing at a removed account; report the id.
				report.Name = employeeID
				report.Payroll = Payroll(0, report.MonthlyProfit)
			}
			reports = append(reports, report)
		}(employeeID, assigned)
	}
	wg.Wait()
	if firstErr != nil {
		logger.Error("Overview employee lookup failed", zap.Error(firstErr))
		return nil, firstErr
	}

	return &OverviewReport{
		Totals:     Summarize(clients),
		Unassigned: unassigned,
		Employees:  reports,
	}, nil
}

// EmployeeStats computes one employee's figures. Managers may view anyone;
// an employee only themselves.
func (s *DefaultStatsService) EmployeeStats(ctx context.Context, employeeID string, actor *models.User) (*EmployeeReport, error) {
	if actor.Role != models.RoleManager && actor.ID != employeeID {
		return nil, utils.E(utils.KindPermissionDenied, "not allowed to view this employee's stats")
	}

	user, err := s.Users.GetByID(employeeID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, utils.E(utils.KindNotFound, "account not found")
	}

	assigned, err := s.Clients.GetByAssignee(employeeID)
	if err != nil {
		return nil, err
	}

	monthly := MonthlyProfit(assigned, time.Now())
	return &EmployeeReport{
		EmployeeID:    employeeID,
		Name:          user.Name,
		Summary:       Summarize(assigned),
		MonthlyProfit: monthly,
		Payroll:       Payroll(user.Salary, monthly),
	}, nil
}
