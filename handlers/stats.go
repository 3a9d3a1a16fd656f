package handlers

import (
	"net/http"

	"github.com/mohamedfathy32/elnaseem-crm/middleware"
	"github.com/mohamedfathy32/elnaseem-crm/services/stats"
	"github.com/mohamedfathy32/elnaseem-crm/utils"

	"github.com/gin-gonic/gin"
)

// StatsHandler exposes the reporting endpoints.
type StatsHandler struct {
	Svc stats.StatsService
}

func NewStatsHandler(svc stats.StatsService) *StatsHandler {
	return &StatsHandler{Svc: svc}
}

// OverviewHandler returns the manager dashboard.
func (h *StatsHandler) OverviewHandler(c *gin.Context) {
	got, err := h.Svc.Overview(c.Request.Context(), middleware.Actor(c))
	if err != nil {
		utils.JSONError(c, err)
		return
	}
	c.JSON(http.StatusOK, got)
}

// EmployeeStatsHandler returns one employee's pipeline and payroll figures.
func (h *StatsHandler) EmployeeStatsHandler(c *gin.Context) {
	got, err := h.Svc.EmployeeStats(c.Request.Context(), c.Param("id"), middleware.Actor(c))
	if err != nil {
		utils.JSONError(c, err)
		return
	}
	c.JSON(http.StatusOK, got)
}

// MeHandler returns the authenticated account's own profile.
func (h *StatsHandler) MeHandler(c *gin.Context) {
	c.JSON(http.StatusOK, middleware.Actor(c))
}

// MyPayrollHandler returns the actor's own pipeline and payroll figures.
func (h *StatsHandler) MyPayrollHandler(c *gin.Context) {
	actor := middleware.Actor(c)
	got, err := h.Svc.EmployeeStats(c.Request.Context(), actor.ID, actor)
	if err != nil {
		utils.JSONError(c, err)
		return
	}
	c.JSON(http.StatusOK, got)
}
