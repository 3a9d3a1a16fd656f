package clientRepo

import (
	"context"
	"time"

	"github.com/mohamedfathy32/elnaseem-crm/models"
)

// ClientRepository defines methods for client data access. Mutations are
// expressed as patches and applied as a single atomic document update, so two
// concurrent operations can never interleave into a half-updated record.
type ClientRepository interface {
	// Create inserts a new client record.
	Create(client *models.Client) error
	// GetByID retrieves a client by its unique ID; nil when absent.
	GetByID(id string) (*models.Client, error)
	// GetAll retrieves all clients (full-collection scan for aggregation).
	GetAll() ([]models.Client, error)
	// GetByStatus retrieves clients in one pipeline state.
	GetByStatus(status models.ClientStatus) ([]models.Client, error)
	// GetByAssignee retrieves clients assigned to one employee.
	GetByAssignee(employeeID string) ([]models.Client, error)
	// GetUnassigned retrieves clients with no assignee.
	GetUnassigned() ([]models.Client, error)
	// ApplyPatch applies a patch to one client document atomically.
	ApplyPatch(id string, patch models.ClientPatch) error
	// BulkAssign assigns every listed client to one employee in a single
	// transaction; an unknown id aborts the whole batch.
	BulkAssign(ctx context.Context, clientIDs []string, employeeID string, assignedAt time.Time) error
}
