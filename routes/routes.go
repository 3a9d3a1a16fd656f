package routes

import (
	"net/http"
	"time"

	"github.com/mohamedfathy32/elnaseem-crm/handlers"
	"github.com/mohamedfathy32/elnaseem-crm/middleware"
	"github.com/mohamedfathy32/elnaseem-crm/models"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterClientRoutes registers the client pipeline endpoints.
func RegisterClientRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/clients")
	api.Use(middleware.FirebaseAuthMiddleware(hb.UserRepo))
	{
		api.POST("", middleware.RequireRoles(models.RoleDataEntry, models.RoleManager), hb.Clients.CreateClientHandler)
		api.GET("", hb.Clients.ListClientsHandler)
		api.GET("/mine", hb.Clients.ListMyClientsHandler)
		api.GET("/unassigned", middleware.RequireManager(), hb.Clients.ListUnassignedHandler)
		api.GET("/:id", hb.Clients.GetClientHandler)
		api.PUT("/:id/status", middleware.RequireRoles(models.RoleSales, models.RoleManager), hb.Clients.ChangeStatusHandler)
		api.POST("/:id/notes", hb.Clients.AddNoteHandler)
		api.PUT("/:id/assignment", middleware.RequireManager(), hb.Clients.AssignHandler)
		api.POST("/assignments", middleware.RequireManager(), hb.Clients.BulkAssignHandler)
	}
}

// RegisterEmployeeRoutes registers account management endpoints. Everything
// here is a manager surface except the employee stats detail, which the
// service narrows to self-views.
func RegisterEmployeeRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/employees")
	api.Use(middleware.FirebaseAuthMiddleware(hb.UserRepo))
	{
		api.POST("", middleware.RequireManager(), hb.Employees.CreateEmployeeHandler)
		api.GET("", middleware.RequireManager(), hb.Employees.ListEmployeesHandler)
		api.GET("/:id", hb.Employees.GetEmployeeHandler)
		api.GET("/:id/stats", hb.Stats.EmployeeStatsHandler)
		api.PUT("/:id/disabled", middleware.RequireManager(), hb.Employees.ToggleDisabledHandler)
		api.PUT("/:id/salary", middleware.RequireManager(), hb.Employees.SetSalaryHandler)
	}
}

// RegisterMeRoutes registers the authenticated account's self-service
// endpoints.
func RegisterMeRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/me")
	api.Use(middleware.FirebaseAuthMiddleware(hb.UserRepo))
	{
		api.GET("", hb.Stats.MeHandler)
		api.GET("/payroll", hb.Stats.MyPayrollHandler)
	}
}

// RegisterStatsRoutes registers the reporting endpoints.
func RegisterStatsRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/stats")
	api.Use(middleware.FirebaseAuthMiddleware(hb.UserRepo))
	{
		api.GET("/overview", middleware.RequireManager(), hb.Stats.OverviewHandler)
	}
}

// RegisterSettingsRoutes registers the exchange-rate endpoints.
func RegisterSettingsRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/settings")
	api.Use(middleware.FirebaseAuthMiddleware(hb.UserRepo))
	{
		api.GET("/exchange-rates", hb.Settings.GetRatesHandler)
		api.PUT("/exchange-rates", middleware.RequireManager(), hb.Settings.UpdateRatesHandler)
	}
}

// RegisterStorageRoutes registers the passport upload endpoint.
func RegisterStorageRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/storage")
	api.Use(middleware.FirebaseAuthMiddleware(hb.UserRepo))
	{
		api.POST("/passport", middleware.RequireRoles(models.RoleDataEntry, models.RoleManager), hb.Storage.UploadPassportHandler)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterHealthRoute(r)
	RegisterClientRoutes(r, hb)
	RegisterEmployeeRoutes(r, hb)
	RegisterMeRoutes(r, hb)
	RegisterStatsRoutes(r, hb)
	RegisterSettingsRoutes(r, hb)
	RegisterStorageRoutes(r, hb)
}
