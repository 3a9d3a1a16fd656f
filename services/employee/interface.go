package employee

import (
	"context"

	userRepo "github.com/mohamedfathy32/elnaseem-crm/database/repository/user"
	"github.com/mohamedfathy32/elnaseem-crm/models"
)

// CreateEmployeeInput carries the fields a manager submits for a new
// account.
type CreateEmployeeInput struct {
	Email    string  `json:"email"`
	Password string  `json:"password"`
	Name     string  `json:"name"`
	Role     string  `json:"role"`
	Salary   float64 `json:"salary"`
}

type EmployeeService interface {
	// Create provisions the identity through the admin credential and then
	// the account document. The manager's own session is never touched.
	Create(ctx context.Context, input CreateEmployeeInput, actor *models.User) (*models.User, error)
	// ToggleDisabled flips an account's disabled flag.
	ToggleDisabled(ctx context.Context, userID string, actor *models.User) (*models.User, error)
	// SetSalary sets the fixed salary used by payroll.
	SetSalary(ctx context.Context, userID string, salary float64, actor *models.User) (*models.User, error)
	Get(ctx context.Context, userID string, actor *models.User) (*models.User, error)
	ListEmployees(ctx context.Context, actor *models.User) ([]models.User, error)
}

// DefaultEmployeeService is the production implementation.
type DefaultEmployeeService struct {
	Users    userRepo.UserRepository
	Identity IdentityClient
}

func NewDefaultEmployeeService(users userRepo.UserRepository, identity IdentityClient) *DefaultEmployeeService {
	return &DefaultEmployeeService{Users: users, Identity: identity}
}
