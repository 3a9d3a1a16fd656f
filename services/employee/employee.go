package employee

import (
	"context"
	"strings"
	"time"

	"github.com/mohamedfathy32/elnaseem-crm/models"
	"github.com/mohamedfathy32/elnaseem-crm/utils"

	"go.uber.org/zap"
)

// Create provisions a new employee account: identity first, then the users
// document. A duplicate email fails with AlreadyExists before anything is
// written.
func (s *DefaultEmployeeService) Create(ctx context.Context, input CreateEmployeeInput, actor *models.User) (*models.User, error) {
	logger := utils.GetLogger()

	if actor.Role != models.RoleManager {
		return nil, utils.E(utils.KindPermissionDenied, "only managers may create accounts")
	}

	email := strings.ToLower(strings.TrimSpace(input.Email))
	name := strings.TrimSpace(input.Name)
	if email == "" || name == "" {
		return nil, utils.E(utils.KindInvalidArgument, "email and name are required")
	}
	if len(input.Password) < 6 {
		return nil, utils.E(utils.KindInvalidArgument, "password must be at least 6 characters")
	}
	role, ok := models.ParseRole(input.Role)
	if !ok || !role.IsEmployee() {
		return nil, utils.Ef(utils.KindInvalidArgument, "role must be dataentry or sales, got %q", input.Role)
	}
	if input.Salary < 0 {
		return nil, utils.E(utils.KindInvalidArgument, "salary must not be negative")
	}

	if existing, err := s.Users.GetByEmail(email); err != nil {
		return nil, err
	} else if existing != nil {
		return nil, utils.E(utils.KindAlreadyExists, "email already registered")
	}

	uid, err := s.Identity.CreateUser(ctx, email, input.Password, name)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	user := &models.User{
		ID:        uid,
		Email:     email,
		Name:      name,
		Role:      role,
		Salary:    input.Salary,
		CreatedBy: actor.ID,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.Users.Create(user); err != nil {
		// Roll the orphaned identity back so the email can be retried.
		if delErr := s.Identity.DeleteUser(ctx, uid); delErr != nil {
			logger.Error("Failed to roll back orphaned identity",
				zap.String("uid", uid), zap.Error(delErr))
		}
		return nil, err
	}

	logger.Info("Employee account created",
		zap.String("uid", uid),
		zap.String("role", string(role)),
		zap.String("createdBy", actor.ID))
	return user, nil
}

// ToggleDisabled flips the account's disabled flag in both the document and
// the identity provider. A disabled account fails every authenticated
// request at the middleware; tokens already issued lapse on their own.
func (s *DefaultEmployeeService) ToggleDisabled(ctx context.Context, userID string, actor *models.User) (*models.User, error) {
	logger := utils.GetLogger()

	if actor.Role != models.RoleManager {
		return nil, utils.E(utils.KindPermissionDenied, "only managers may disable accounts")
	}
	if userID == actor.ID {
		return nil, utils.E(utils.KindInvalidArgument, "cannot disable your own account")
	}

	user, err := s.Users.GetByID(userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, utils.E(utils.KindNotFound, "account not found")
	}

	next := !user.Disabled
	if err := s.Identity.SetDisabled(ctx, userID, next); err != nil {
		return nil, err
	}
	patch := models.UserPatch{Disabled: &next, UpdatedAt: time.Now()}
	if err := s.Users.ApplyPatch(userID, patch); err != nil {
		return nil, err
	}

	logger.Info("Account disabled flag toggled",
		zap.String("uid", userID),
		zap.Bool("disabled", next),
		zap.String("actor", actor.ID))
	return s.Users.GetByID(userID)
}

// SetSalary sets the fixed salary component used by payroll.
func (s *DefaultEmployeeService) SetSalary(ctx context.Context, userID string, salary float64, actor *models.User) (*models.User, error) {
	if actor.Role != models.RoleManager {
		return nil, utils.E(utils.KindPermissionDenied, "only managers may set salaries")
	}
	if salary < 0 {
		return nil, utils.E(utils.KindInvalidArgument, "salary must not be negative")
	}

	user, err := s.Users.GetByID(userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, utils.E(utils.KindNotFound, "account not found")
	}

	patch := models.UserPatch{Salary: &salary, UpdatedAt: time.Now()}
	if err := s.Users.ApplyPatch(userID, patch); err != nil {
		return nil, err
	}
	return s.Users.GetByID(userID)
}

// Get returns one account. Managers may read anyone; everyone else only
// themselves.
func (s *DefaultEmployeeService) Get(ctx context.Context, userID string, actor *models.User) (*models.User, error) {
	if actor.Role != models.RoleManager && actor.ID != userID {
		return nil, utils.E(utils.KindPermissionDenied, "not allowed to read this account")
	}
	user, err := s.Users.GetByID(userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, utils.E(utils.KindNotFound, "account not found")
	}
	return user, nil
}

// ListEmployees returns every dataentry and sales account. Managers only.
func (s *DefaultEmployeeService) ListEmployees(ctx context.Context, actor *models.User) ([]models.User, error) {
	if actor.Role != models.RoleManager {
		return nil, utils.E(utils.KindPermissionDenied, "only managers may list accounts")
	}
	return s.Users.GetEmployees()
}
