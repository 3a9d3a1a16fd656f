package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/mohamedfathy32/elnaseem-crm/config"
	"github.com/mohamedfathy32/elnaseem-crm/database"
	clientRepoPkg "github.com/mohamedfathy32/elnaseem-crm/database/repository/client"
	settingsRepoPkg "github.com/mohamedfathy32/elnaseem-crm/database/repository/settings"
	userRepoPkg "github.com/mohamedfathy32/elnaseem-crm/database/repository/user"
	"github.com/mohamedfathy32/elnaseem-crm/handlers"
	"github.com/mohamedfathy32/elnaseem-crm/middleware"
	"github.com/mohamedfathy32/elnaseem-crm/routes"
	clientSvc "github.com/mohamedfathy32/elnaseem-crm/services/client"
	"github.com/mohamedfathy32/elnaseem-crm/services/employee"
	settingsSvc "github.com/mohamedfathy32/elnaseem-crm/services/settings"
	"github.com/mohamedfathy32/elnaseem-crm/services/stats"
	"github.com/mohamedfathy32/elnaseem-crm/utils"

	"github.com/gin-gonic/gin"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitAuthCache()
	utils.FirebaseInit()

	storageService, err := utils.Cloudinary()
	if err != nil {
		logger.Sugar().Fatalf("main: failed to initialize storage service: %v", err)
	}

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// repositories.
	clientRepo := clientRepoPkg.NewMongoClientRepo()
	userRepo := userRepoPkg.NewMongoUserRepo()
	settingsRepo := settingsRepoPkg.NewMongoSettingsRepo()

	// services.
	clientService := clientSvc.NewDefaultClientService(clientRepo, userRepo, settingsRepo)
	employeeService := employee.NewDefaultEmployeeService(
		userRepo,
		employee.NewFirebaseIdentityClient(utils.GetAuthClient()),
	)
	settingsService := settingsSvc.NewDefaultSettingsService(settingsRepo)
	statsService := stats.NewDefaultStatsService(clientRepo, userRepo)

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		UserRepo:  userRepo,
		Clients:   handlers.NewClientHandler(clientService),
		Employees: handlers.NewEmployeeHandler(employeeService),
		Stats:     handlers.NewStatsHandler(statsService),
		Settings:  handlers.NewSettingsHandler(settingsService),
		Storage:   handlers.NewStorageHandler(storageService),
	}

	routes.RegisterRoutes(router, handlerBundle)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
