package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/AllanRye9/ort-backend/internal/config"
	"github.com/AllanRye9/ort-backend/internal/data/postgres"
	"github.com/AllanRye9/ort-backend/internal/logger"
	"github.com/AllanRye9/ort-backend/internal/platform/persistence"
	"github.com/AllanRye9/ort-backend/internal/server"
	"github.com/AllanRye9/ort-backend/internal/server/service"
)

func main() {
	// Create base context with cancellation
	appCtx, cancelAppCtx := context.WithCancel(context.Background())
	defer cancelAppCtx()

	// Initialize configuration
	cfg, err := config.LoadConfig("server")
	if err != nil {
		// logger is not initialized yet, so we use fmt
		fmt.Printf("Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	log := logger.NewLogger(cfg)

	// Initialize database with app context
	postgresDB, err := persistence.NewPostgresDB(appCtx, log, &cfg.Postgres)
	if err != nil {
		log.Error("Failed to initialize PostgreSQL", "error", err)
		os.Exit(1)
	}

	// Initialize repositories
	userRepo := postgres.NewUserRepository(log, postgresDB)
	clientRepo := postgres.NewClientRepository(log, postgresDB)
	propertyRepo := postgres.NewPropertyRepository(log, postgresDB)
	imageRepo := postgres.NewPropertyImageRepository(log, postgresDB)
	listingRepo := postgres.NewListingRepository(log, postgresDB)
	inquiryRepo := postgres.NewInquiryRepository(log, postgresDB)
	appointmentRepo := postgres.NewAppointmentRepository(log, postgresDB)
	transactionRepo := postgres.NewTransactionRepository(log, postgresDB)
	paymentRepo := postgres.NewPaymentRepository(log, postgresDB)

	// Initialize services
	ledgerSource := service.NewRepositorySource(transactionRepo, paymentRepo)
	services := server.Services{
		User:       service.NewUserService(userRepo),
		Client:     service.NewClientService(clientRepo, userRepo),
		Property:   service.NewPropertyService(propertyRepo, imageRepo, listingRepo, userRepo, clientRepo),
		Engagement: service.NewEngagementService(inquiryRepo, appointmentRepo, propertyRepo, userRepo, clientRepo),
		Sale:       service.NewSaleService(transactionRepo, paymentRepo, propertyRepo, userRepo, clientRepo),
		Ledger:     service.NewLedgerService(ledgerSource, cfg.Ledger.RecentPaymentsLimit),
	}

	// Initialize REST server
	srv := server.NewServer(log, cfg, services)
	log.Info("REST server initialized")

	// Create error channel for server errors
	errChan := make(chan error, 1)

	// Start server in goroutine
	go func() {
		log.Info("Starting HTTP server", "port", cfg.Server.Port)
		if err := srv.Start(); err != nil {
			errChan <- fmt.Errorf("HTTP server error: %w", err)
		}
	}()

	// Set up signal handling
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	// Wait for a shutdown signal or error
	var serverErr error
	select {
	case <-quit:
		log.Info("Shutdown signal received")
	case err := <-errChan:
		log.Error("Server error occurred", "error", err)
		serverErr = err
	}

	// Cancel the application context
	cancelAppCtx()

	// Create a shutdown context with timeout
	shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancelShutdown()

	// Graceful shutdown sequence
	log.Info("Starting graceful shutdown...")

	if err = srv.Stop(shutdownCtx); err != nil {
		log.Error("Error during server shutdown", "error", err)
	}

	postgresDB.Close()

	// Final status
	if serverErr != nil {
		log.Error("Application exited with error", "error", serverErr)
		os.Exit(1)
	}

	log.Info("Application shutdown complete")
}
