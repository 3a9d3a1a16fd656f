// Package settings manages the exchange-rate singleton the profit
// calculations read.
package settings

import (
	"context"
	"time"

	settingsRepo "github.com/mohamedfathy32/elnaseem-crm/database/repository/settings"
	"github.com/mohamedfathy32/elnaseem-crm/models"
	"github.com/mohamedfathy32/elnaseem-crm/utils"

	"go.uber.org/zap"
)

// RatesUpdate carries new buy and sell rates from a manager.
type RatesUpdate struct {
	BuyRate  float64 `json:"buyRate"`
	SellRate float64 `json:"sellRate"`
}

type SettingsService interface {
	GetExchangeRates(ctx context.Context) (*models.ExchangeRateSettings, error)
	UpdateExchangeRates(ctx context.Context, update RatesUpdate, actor *models.User) (*models.ExchangeRateSettings, error)
}

// DefaultSettingsService is the production implementation.
type DefaultSettingsService struct {
	Repo settingsRepo.SettingsRepository
}

func NewDefaultSettingsService(repo settingsRepo.SettingsRepository) *DefaultSettingsService {
	return &DefaultSettingsService{Repo: repo}
}

// GetExchangeRates returns the rates in force, zero-valued if never set.
func (s *DefaultSettingsService) GetExchangeRates(ctx context.Context) (*models.ExchangeRateSettings, error) {
	return s.Repo.GetExchangeRates()
}

// UpdateExchangeRates replaces the singleton. Managers only; operations
// already in flight keep the rates they fetched at start.
func (s *DefaultSettingsService) UpdateExchangeRates(ctx context.Context, update RatesUpdate, actor *models.User) (*models.ExchangeRateSettings, error) {
	logger := utils.GetLogger()

	if actor.Role != models.RoleManager {
		return nil, utils.E(utils.KindPermissionDenied, "only managers may update exchange rates")
	}
	if update.BuyRate < 0 || update.SellRate < 0 {
		return nil, utils.E(utils.KindInvalidArgument, "rates must not be negative")
	}

	rates := &models.ExchangeRateSettings{
		BuyRate:   update.BuyRate,
		SellRate:  update.SellRate,
		UpdatedBy: actor.ID,
		UpdatedAt: time.Now(),
	}
	if err := s.Repo.UpdateExchangeRates(rates); err != nil {
		return nil, err
	}

	logger.Info("Exchange rates updated",
		zap.Float64("buyRate", rates.BuyRate),
		zap.Float64("sellRate", rates.SellRate),
		zap.String("actor", actor.ID))
	return rates, nil
}
