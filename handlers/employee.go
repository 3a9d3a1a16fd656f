package handlers

import (
	"net/http"

	"github.com/mohamedfathy32/elnaseem-crm/middleware"
	"github.com/mohamedfathy32/elnaseem-crm/services/employee"
	"github.com/mohamedfathy32/elnaseem-crm/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// EmployeeHandler exposes the account management endpoints.
type EmployeeHandler struct {
	Svc employee.EmployeeService
}

func NewEmployeeHandler(svc employee.EmployeeService) *EmployeeHandler {
	return &EmployeeHandler{Svc: svc}
}

// CreateEmployeeHandler provisions a new employee account.
func (h *EmployeeHandler) CreateEmployeeHandler(c *gin.Context) {
	logger := getLogger(c)

	var input employee.CreateEmployeeInput
	if err := c.ShouldBindJSON(&input); err != nil {
		logger.Warn("Invalid employee payload", zap.Error(err))
		utils.JSONError(c, utils.Wrap(utils.KindInvalidArgument, "invalid request body", err))
		return
	}

	created, err := h.Svc.Create(c.Request.Context(), input, middleware.Actor(c))
	if err != nil {
		utils.JSONError(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

// ListEmployeesHandler lists every employee account.
func (h *EmployeeHandler) ListEmployeesHandler(c *gin.Context) {
	got, err := h.Svc.ListEmployees(c.Request.Context(), middleware.Actor(c))
	if err != nil {
		utils.JSONError(c, err)
		return
	}
	c.JSON(http.StatusOK, got)
}

// GetEmployeeHandler returns one account.
func (h *EmployeeHandler) GetEmployeeHandler(c *gin.Context) {
	got, err := h.Svc.Get(c.Request.Context(), c.Param("id"), middleware.Actor(c))
	if err != nil {
		utils.JSONError(c, err)
		return
	}
	c.JSON(http.StatusOK, got)
}

// ToggleDisabledHandler flips an account's disabled flag.
func (h *EmployeeHandler) ToggleDisabledHandler(c *gin.Context) {
	userID := c.Param("id")

	updated, err := h.Svc.ToggleDisabled(c.Request.Context(), userID, middleware.Actor(c))
	if err != nil {
		utils.JSONError(c, err)
		return
	}
	// The cached profile now carries a stale disabled flag.
	middleware.InvalidateActorCache(c.Request.Context(), userID)
	c.JSON(http.StatusOK, updated)
}

// SetSalaryHandler sets an account's fixed salary.
func (h *EmployeeHandler) SetSalaryHandler(c *gin.Context) {
	userID := c.Param("id")

	var req struct {
		Salary float64 `json:"salary"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, utils.Wrap(utils.KindInvalidArgument, "invalid request body", err))
		return
	}

	updated, err := h.Svc.SetSalary(c.Request.Context(), userID, req.Salary, middleware.Actor(c))
	if err != nil {
		utils.JSONError(c, err)
		return
	}
	middleware.InvalidateActorCache(c.Request.Context(), userID)
	c.JSON(http.StatusOK, updated)
}
