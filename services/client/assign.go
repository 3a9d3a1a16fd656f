package client

import (
	"context"
	"time"

	"github.com/mohamedfathy32/elnaseem-crm/models"
	"github.com/mohamedfathy32/elnaseem-crm/utils"

	"go.uber.org/zap"
)

// resolveAssignee checks the target account exists and can carry clients.
func (s *DefaultClientService) resolveAssignee(employeeID string) (*models.User, error) {
	employee, err := s.Users.GetByID(employeeID)
	if err != nil {
		return nil, err
	}
	if employee == nil {
		return nil, utils.E(utils.KindInvalidArgument, "assignee account not found")
	}
	if !employee.Role.IsEmployee() {
		return nil, utils.E(utils.KindInvalidArgument, "assignee must be a sales or data-entry account")
	}
	if employee.Disabled {
		return nil, utils.E(utils.KindInvalidArgument, "assignee account is disabled")
	}
	return employee, nil
}

// RequestAssignment sets or clears a client's assignee. Managers only. An
// empty employeeID unassigns, clearing both assignedTo and assignedAt.
// Reassigning to the current assignee is a no-op write, not an error.
func (s *DefaultClientService) RequestAssignment(ctx context.Context, clientID, employeeID string, actor *models.User) (*models.Client, error) {
	logger := utils.GetLogger()

	if actor.Role != models.RoleManager {
		return nil, utils.E(utils.KindPermissionDenied, "only managers may assign clients")
	}

	existing, err := s.Repo.GetByID(clientID)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, utils.E(utils.KindNotFound, "client not found")
	}

	now := time.Now()
	patch := models.ClientPatch{
		AssignedTo: &employeeID,
		UpdatedAt:  now,
	}
	if employeeID != "" {
		if _, err := s.resolveAssignee(employeeID); err != nil {
			return nil, err
		}
		patch.AssignedAt = &now
	}

	if err := s.Repo.ApplyPatch(clientID, patch); err != nil {
		logger.Error("Failed to update assignment",
			zap.String("clientID", clientID),
			zap.String("employeeID", employeeID),
			zap.Error(err))
		return nil, err
	}

	logger.Info("Client assignment updated",
		zap.String("clientID", clientID),
		zap.String("employeeID", employeeID),
		zap.String("actor", actor.ID))
	return s.Repo.GetByID(clientID)
}

// BulkAssign hands a batch of clients to one employee in a single
// transaction. Any unknown client id aborts the whole batch.
func (s *DefaultClientService) BulkAssign(ctx context.Context, clientIDs []string, employeeID string, actor *models.User) error {
	logger := utils.GetLogger()

	if actor.Role != models.RoleManager {
		return utils.E(utils.KindPermissionDenied, "only managers may assign clients")
	}
	if len(clientIDs) == 0 {
		return utils.E(utils.KindInvalidArgument, "no client ids given")
	}
	if _, err := s.resolveAssignee(employeeID); err != nil {
		return err
	}

	if err := s.Repo.BulkAssign(ctx, clientIDs, employeeID, time.Now()); err != nil {
		logger.Error("Bulk assignment failed",
			zap.Int("count", len(clientIDs)),
			zap.String("employeeID", employeeID),
			zap.Error(err))
		return err
	}

	logger.Info("Bulk assignment applied",
		zap.Int("count", len(clientIDs)),
		zap.String("employeeID", employeeID),
		zap.String("actor", actor.ID))
	return nil
}
