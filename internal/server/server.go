// Package server wires the HTTP surface of the office backend: routing,
// middleware and the server lifecycle.
package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/AllanRye9/ort-backend/internal/config"
	"github.com/AllanRye9/ort-backend/internal/server/handler"
	"github.com/AllanRye9/ort-backend/internal/server/service"
)

// Services bundles the application services the server exposes
type Services struct {
	User       service.UserService
	Client     service.ClientService
	Property   service.PropertyService
	Engagement service.EngagementService
	Sale       service.SaleService
	Ledger     service.LedgerService
}

// Server handles HTTP requests and manages the application's lifecycle
type Server struct {
	logger     *slog.Logger
	httpServer *http.Server
	httpRouter *gin.Engine
}

// NewServer creates and configures a new HTTP server with the given services
func NewServer(log *slog.Logger, cfg *config.Config, services Services) *Server {
	if cfg.Application.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	httpRouter := gin.New()

	userHandler := handler.NewUserHandler(log, services.User)
	clientHandler := handler.NewClientHandler(log, services.Client)
	propertyHandler := handler.NewPropertyHandler(log, services.Property)
	engagementHandler := handler.NewEngagementHandler(log, services.Engagement)
	saleHandler := handler.NewSaleHandler(log, services.Sale)
	ledgerHandler := handler.NewLedgerHandler(log, services.Ledger)

	setupRouter(log, httpRouter, userHandler, clientHandler, propertyHandler, engagementHandler, saleHandler, ledgerHandler)

	httpServer := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      httpRouter,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	return &Server{
		logger:     log,
		httpServer: httpServer,
		httpRouter: httpRouter,
	}
}

// Start begins listening for HTTP requests
func (s *Server) Start() error {
	if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("failed to start HTTP server: %w", err)
	}
	return nil
}

// Stop gracefully shuts down the HTTP server with a timeout
func (s *Server) Stop(ctx context.Context) error {
	s.logger.Info("stopping HTTP server")

	shutdownCtx, cancel := context.WithTimeout(ctx, s.httpServer.WriteTimeout)
	defer cancel()

	if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("failed to stop HTTP server: %w", err)
	}

	return nil
}
