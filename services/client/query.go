package client

import (
	"context"

	"github.com/mohamedfathy32/elnaseem-crm/models"
	"github.com/mohamedfathy32/elnaseem-crm/utils"
)

// Get returns one client. Non-managers may only read clients assigned to
// them.
func (s *DefaultClientService) Get(ctx context.Context, clientID string, actor *models.User) (*models.Client, error) {
	c, err := s.Repo.GetByID(clientID)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, utils.E(utils.KindNotFound, "client not found")
	}
	if actor.Role != models.RoleManager && c.AssignedTo != actor.ID {
		return nil, utils.E(utils.KindPermissionDenied, "client is not assigned to you")
	}
	return c, nil
}

// ListMine returns the actor's assigned clients.
func (s *DefaultClientService) ListMine(ctx context.Context, actor *models.User) ([]models.Client, error) {
	return s.Repo.GetByAssignee(actor.ID)
}

// ListAll returns every client for managers; everyone else gets only their
// assigned clients.
func (s *DefaultClientService) ListAll(ctx context.Context, actor *models.User) ([]models.Client, error) {
	if actor.Role == models.RoleManager {
		return s.Repo.GetAll()
	}
	return s.Repo.GetByAssignee(actor.ID)
}

// ListByStatus returns clients in one pipeline state, narrowed to the
// actor's own assignments for non-managers.
func (s *DefaultClientService) ListByStatus(ctx context.Context, status string, actor *models.User) ([]models.Client, error) {
	parsed, ok := models.ParseStatus(status)
	if !ok {
		return nil, utils.Ef(utils.KindInvalidArgument, "unknown status %q", status)
	}
	clients, err := s.Repo.GetByStatus(parsed)
	if err != nil {
		return nil, err
	}
	if actor.Role == models.RoleManager {
		return clients, nil
	}
	mine := make([]models.Client, 0, len(clients))
	for _, c := range clients {
		if c.AssignedTo == actor.ID {
			mine = append(mine, c)
		}
	}
	return mine, nil
}

// ListUnassigned returns clients with no assignee. Managers only; there is
// nothing here a non-manager is allowed to see.
func (s *DefaultClientService) ListUnassigned(ctx context.Context, actor *models.User) ([]models.Client, error) {
	if actor.Role != models.RoleManager {
		return nil, utils.E(utils.KindPermissionDenied, "only managers may list unassigned clients")
	}
	return s.Repo.GetUnassigned()
}
