package client

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/mohamedfathy32/elnaseem-crm/models"
	"github.com/mohamedfathy32/elnaseem-crm/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Create records a new prospect. Data-entry users and managers may create;
// the record always enters the pipeline as status new and unassigned.
func (s *DefaultClientService) Create(ctx context.Context, intake ClientIntake, actor *models.User) (*models.Client, error) {
	logger := utils.GetLogger()

	if actor.Role != models.RoleDataEntry && actor.Role != models.RoleManager {
		return nil, utils.E(utils.KindPermissionDenied, "role may not create clients")
	}

	name := strings.TrimSpace(intake.ClientName)
	phone := strings.TrimSpace(intake.WhatsappNumber)
	if name == "" || phone == "" {
		return nil, utils.E(utils.KindInvalidArgument, "clientName and whatsappNumber are required")
	}

	now := time.Now()
	c := &models.Client{
		ID:               uuid.NewString(),
		Source:           strings.TrimSpace(intake.Source),
		ClientName:       name,
		WhatsappNumber:   phone,
		TravelDate:       intake.TravelDate,
		DepartureAirport: intake.DepartureAirport,
		ArrivalAirport:   intake.ArrivalAirport,
		FollowUpDate:     intake.FollowUpDate,
		PassportURL:      intake.PassportURL,
		Notes:            intake.Notes,
		Status:           models.StatusNew,
		CreatedBy:        actor.ID,
		CreatedAt:        now,
		UpdatedAt:        now,
	}

	if err := s.Repo.Create(c); err != nil {
		logger.Error("Failed to create client", zap.String("createdBy", actor.ID), zap.Error(err))
		return nil, fmt.Errorf("failed to create client: %w", err)
	}

	logger.Info("Client created",
		zap.String("clientID", c.ID),
		zap.String("createdBy", actor.ID))
	return c, nil
}
