// File: taxibot/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"taxibot/config"
	"taxibot/database"
	driverRepo "taxibot/database/repository/driver"
	fareRepo "taxibot/database/repository/fare"
	tripRepo "taxibot/database/repository/trip"
	"taxibot/handlers"
	"taxibot/middleware"
	"taxibot/routes"
	"taxibot/services/workflow"
	"taxibot/utils"

	"github.com/gin-gonic/gin"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	client, err := database.Connect(config.AppConfig.DatabaseURL)
	if err != nil {
		logger.Sugar().Fatalf("main: failed to connect to MongoDB: %v", err)
	}
	db := client.Database(config.AppConfig.DatabaseName)

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// repositories.
	fares := fareRepo.NewMongoFareRepo(db)
	trips := tripRepo.NewMongoTripRepo(db)
	drivers := driverRepo.NewMongoDriverRepo(db)

	// services.
	workflowService := &workflow.DefaultWorkflowService{
		Fares:        fares,
		Trips:        trips,
		Drivers:      drivers,
		Payments:     workflow.NewApproveAllValidator(),
		ExchangeRate: config.AppConfig.ExchangeRate,
	}

	webhookHandler := handlers.NewWebhookHandler(workflowService, logger)

	// Register routes.
	routes.RegisterRoutes(router, webhookHandler, client)

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
	if err := database.Disconnect(ctx); err != nil {
		logger.Sugar().Errorf("main: failed to disconnect from MongoDB: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
