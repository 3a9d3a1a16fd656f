package handlers

import (
	"net/http"

	"github.com/mohamedfathy32/elnaseem-crm/middleware"
	"github.com/mohamedfathy32/elnaseem-crm/services/settings"
	"github.com/mohamedfathy32/elnaseem-crm/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// SettingsHandler exposes the exchange-rate endpoints.
type SettingsHandler struct {
	Svc settings.SettingsService
}

func NewSettingsHandler(svc settings.SettingsService) *SettingsHandler {
	return &SettingsHandler{Svc: svc}
}

// GetRatesHandler returns the exchange rates in force.
func (h *SettingsHandler) GetRatesHandler(c *gin.Context) {
	got, err := h.Svc.GetExchangeRates(c.Request.Context())
	if err != nil {
		utils.JSONError(c, err)
		return
	}
	c.JSON(http.StatusOK, got)
}

// UpdateRatesHandler replaces the exchange rates.
func (h *SettingsHandler) UpdateRatesHandler(c *gin.Context) {
	logger := getLogger(c)

	var update settings.RatesUpdate
	if err := c.ShouldBindJSON(&update); err != nil {
		logger.Warn("Invalid rates payload", zap.Error(err))
		utils.JSONError(c, utils.Wrap(utils.KindInvalidArgument, "invalid request body", err))
		return
	}

	got, err := h.Svc.UpdateExchangeRates(c.Request.Context(), update, middleware.Actor(c))
	if err != nil {
		utils.JSONError(c, err)
		return
	}
	c.JSON(http.StatusOK, got)
}
