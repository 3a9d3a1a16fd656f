package handlers

import (
	"net/http"

	"github.com/mohamedfathy32/elnaseem-crm/middleware"
	"github.com/mohamedfathy32/elnaseem-crm/services/client"
	"github.com/mohamedfathy32/elnaseem-crm/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ClientHandler exposes the client pipeline endpoints.
type ClientHandler struct {
	Svc client.ClientService
}

func NewClientHandler(svc client.ClientService) *ClientHandler {
	return &ClientHandler{Svc: svc}
}

// CreateClientHandler records a new prospect.
func (h *ClientHandler) CreateClientHandler(c *gin.Context) {
	logger := getLogger(c)

	var intake client.ClientIntake
	if err := c.ShouldBindJSON(&intake); err != nil {
		logger.Warn("Invalid client intake payload", zap.Error(err))
		utils.JSONError(c, utils.Wrap(utils.KindInvalidArgument, "invalid request body", err))
		return
	}

	created, err := h.Svc.Create(c.Request.Context(), intake, middleware.Actor(c))
	if err != nil {
		utils.JSONError(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

// GetClientHandler returns one client, subject to the visibility rule.
func (h *ClientHandler) GetClientHandler(c *gin.Context) {
	got, err := h.Svc.Get(c.Request.Context(), c.Param("id"), middleware.Actor(c))
	if err != nil {
		utils.JSONError(c, err)
		return
	}
	c.JSON(http.StatusOK, got)
}

// ListClientsHandler lists clients, optionally narrowed by ?status=.
func (h *ClientHandler) ListClientsHandler(c *gin.Context) {
	actor := middleware.Actor(c)

	if status := c.Query("status"); status != "" {
		got, err := h.Svc.ListByStatus(c.Request.Context(), status, actor)
		if err != nil {
			utils.JSONError(c, err)
			return
		}
		c.JSON(http.StatusOK, got)
		return
	}

	got, err := h.Svc.ListAll(c.Request.Context(), actor)
	if err != nil {
		utils.JSONError(c, err)
		return
	}
	c.JSON(http.StatusOK, got)
}

// ListMyClientsHandler lists the actor's assigned clients.
func (h *ClientHandler) ListMyClientsHandler(c *gin.Context) {
	got, err := h.Svc.ListMine(c.Request.Context(), middleware.Actor(c))
	if err != nil {
		utils.JSONError(c, err)
		return
	}
	c.JSON(http.StatusOK, got)
}

// ListUnassignedHandler lists clients with no assignee.
func (h *ClientHandler) ListUnassignedHandler(c *gin.Context) {
	got, err := h.Svc.ListUnassigned(c.Request.Context(), middleware.Actor(c))
	if err != nil {
		utils.JSONError(c, err)
		return
	}
	c.JSON(http.StatusOK, got)
}

// ChangeStatusHandler moves a client to a new pipeline state.
func (h *ClientHandler) ChangeStatusHandler(c *gin.Context) {
	logger := getLogger(c)

	var req client.StatusChangeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Invalid status change payload", zap.Error(err))
		utils.JSONError(c, utils.Wrap(utils.KindInvalidArgument, "invalid request body", err))
		return
	}

	updated, err := h.Svc.RequestStatusChange(c.Request.Context(), c.Param("id"), req, middleware.Actor(c))
	if err != nil {
		utils.JSONError(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

// AddNoteHandler appends a note to a client's log.
func (h *ClientHandler) AddNoteHandler(c *gin.Context) {
	var req struct {
		Text string `json:"text"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, utils.Wrap(utils.KindInvalidArgument, "invalid request body", err))
		return
	}

	updated, err := h.Svc.AddNote(c.Request.Context(), c.Param("id"), req.Text, middleware.Actor(c))
	if err != nil {
		utils.JSONError(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

// AssignHandler sets or clears a client's assignee. An empty employeeId
// unassigns.
func (h *ClientHandler) AssignHandler(c *gin.Context) {
	var req struct {
		EmployeeID string `json:"employeeId"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, utils.Wrap(utils.KindInvalidArgument, "invalid request body", err))
		return
	}

	updated, err := h.Svc.RequestAssignment(c.Request.Context(), c.Param("id"), req.EmployeeID, middleware.Actor(c))
	if err != nil {
		utils.JSONError(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

// BulkAssignHandler hands a batch of clients to one employee.
func (h *ClientHandler) BulkAssignHandler(c *gin.Context) {
	var req struct {
		ClientIDs  []string `json:"clientIds"`
		EmployeeID string   `json:"employeeId"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, utils.Wrap(utils.KindInvalidArgument, "invalid request body", err))
		return
	}

	if err := h.Svc.BulkAssign(c.Request.Context(), req.ClientIDs, req.EmployeeID, middleware.Actor(c)); err != nil {
		utils.JSONError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"assigned": len(req.ClientIDs)})
}
