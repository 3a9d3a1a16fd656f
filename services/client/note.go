package client

import (
	"context"
	"strings"
	"time"

	"github.com/mohamedfathy32/elnaseem-crm/models"
	"github.com/mohamedfathy32/elnaseem-crm/utils"
)

// AddNote appends a note to a client's log without moving the pipeline
// state. The note is tagged with the status the client holds at write time.
func (s *DefaultClientService) AddNote(ctx context.Context, clientID, text string, actor *models.User) (*models.Client, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, utils.E(utils.KindInvalidArgument, "note text is required")
	}

	existing, err := s.Repo.GetByID(clientID)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, utils.E(utils.KindNotFound, "client not found")
	}
	if actor.Role != models.RoleManager && existing.AssignedTo != actor.ID {
		return nil, utils.E(utils.KindPermissionDenied, "client is not assigned to you")
	}

	now := time.Now()
	patch := models.ClientPatch{
		AppendNote: &models.Note{
			Text:       text,
			AuthorID:   actor.ID,
			AuthorName: actor.Name,
			At:         now,
			Status:     existing.Status,
		},
		UpdatedAt: now,
	}
	if err := s.Repo.ApplyPatch(clientID, patch); err != nil {
		return nil, err
	}
	return s.Repo.GetByID(clientID)
}
