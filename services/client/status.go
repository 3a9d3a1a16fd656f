package client

import (
	"context"
	"fmt"
	"time"

	"github.com/mohamedfathy32/elnaseem-crm/models"
	"github.com/mohamedfathy32/elnaseem-crm/services/finance"
	"github.com/mohamedfathy32/elnaseem-crm/utils"

	"go.uber.org/zap"
)

// RequestStatusChange moves a client to a new pipeline state. Sales users
// may only move clients assigned to them; managers may move any. A move into
// sold must carry full sale details, which are converted into base-currency
// profit against the exchange rates in force when the operation starts. The
// whole change lands as one atomic document update.
func (s *DefaultClientService) RequestStatusChange(ctx context.Context, clientID string, req StatusChangeRequest, actor *models.User) (*models.Client, error) {
	logger := utils.GetLogger()

	if actor.Role != models.RoleSales && actor.Role != models.RoleManager {
		return nil, utils.E(utils.KindPermissionDenied, "role may not change client status")
	}

	newStatus, ok := models.ParseStatus(req.Status)
	if !ok {
		return nil, utils.Ef(utils.KindInvalidArgument, "unknown status %q", req.Status)
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
		Status:    &newStatus,
		UpdatedAt: now,
	}

	if newStatus == models.StatusSold {
		sale := req.Sale
		if sale == nil || sale.CostPrice == nil || sale.SellPrice == nil {
			return nil, utils.E(utils.KindInvalidArgument, "both cost and sell price are required when marking sold")
		}
		if *sale.CostPrice < 0 || *sale.SellPrice < 0 {
			return nil, utils.E(utils.KindInvalidArgument, "prices must not be negative")
		}
		costCur, ok := models.ParseCurrency(string(sale.CostCurrency))
		if !ok {
			return nil, utils.Ef(utils.KindInvalidArgument, "unknown cost currency %q", sale.CostCurrency)
		}
		sellCur, ok := models.ParseCurrency(string(sale.SellCurrency))
		if !ok {
			return nil, utils.Ef(utils.KindInvalidArgument, "unknown sell currency %q", sale.SellCurrency)
		}

		rates, err := s.Settings.GetExchangeRates()
		if err != nil {
			return nil, err
		}
		breakdown := finance.ComputeProfit(
			finance.Money{Amount: *sale.CostPrice, Currency: costCur},
			finance.Money{Amount: *sale.SellPrice, Currency: sellCur},
			*rates,
		)

		patch.CostPrice = sale.CostPrice
		patch.CostCurrency = &costCur
		patch.SellPrice = sale.SellPrice
		patch.SellCurrency = &sellCur
		patch.Profit = &breakdown.Profit
	}

	if req.Note != "" {
		patch.AppendNote = &models.Note{
			Text:       req.Note,
			AuthorID:   actor.ID,
			AuthorName: actor.Name,
			At:         now,
			Status:     newStatus,
		}
	}

	if err := s.Repo.ApplyPatch(clientID, patch); err != nil {
		logger.Error("Failed to apply status change",
			zap.String("clientID", clientID),
			zap.String("status", string(newStatus)),
			zap.Error(err))
		return nil, err
	}

	updated, err := s.Repo.GetByID(clientID)
	if err != nil {
		return nil, fmt.Errorf("failed to reload client: %w", err)
	}
	logger.Info("Client status changed",
		zap.String("clientID", clientID),
		zap.String("from", string(existing.Status)),
		zap.String("to", string(newStatus)),
		zap.String("actor", actor.ID))
	return updated, nil
}
