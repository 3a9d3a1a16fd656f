package userRepo

import "github.com/mohamedfathy32/elnaseem-crm/models"

// UserRepository defines methods for account data access.
type UserRepository interface {
	// GetByID retrieves a user by its unique ID; nil when absent.
	GetByID(id string) (*models.User, error)
	// GetByEmail retrieves a user by its email address; nil when absent.
	GetByEmail(email string) (*models.User, error)
	// GetEmployees retrieves all dataentry and sales accounts.
	GetEmployees() ([]models.User, error)
	// Create inserts a new user record.
	Create(user *models.User) error
	// ApplyPatch applies a partial update to one user document atomically.
	ApplyPatch(id string, patch models.UserPatch) error
}
