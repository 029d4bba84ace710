package server

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/AllanRye9/ort-backend/internal/server/handler"
	"github.com/AllanRye9/ort-backend/internal/server/middleware"
)

// setupRouter configures API routes and middleware for the application
func setupRouter(
	logger *slog.Logger,
	r *gin.Engine,
	userHandler *handler.UserHandler,
	clientHandler *handler.ClientHandler,
	propertyHandler *handler.PropertyHandler,
	engagementHandler *handler.EngagementHandler,
	saleHandler *handler.SaleHandler,
	ledgerHandler *handler.LedgerHandler,
) {
	r.Use(middleware.Recovery(logger))
	r.Use(middleware.Logger(logger))
	r.Use(middleware.CorrelationID())

	// API v1 endpoints
	v1 := r.Group("/api/v1")
	{
		users := v1.Group("/users")
		{
			users.POST("", userHandler.Create)
			users.GET("", userHandler.List)
			users.GET("/:id", userHandler.GetByID)
			users.PUT("/:id", userHandler.Update)
			users.DELETE("/:id", userHandler.Delete)
		}

		clients := v1.Group("/clients")
		{
			clients.POST("", clientHandler.Create)
			clients.GET("", clientHandler.List)
			clients.GET("/:id", clientHandler.GetByID)
			clients.PUT("/:id", clientHandler.Update)
			clients.DELETE("/:id", clientHandler.Delete)
		}

		properties := v1.Group("/properties")
		{
			properties.POST("", propertyHandler.Create)
			properties.GET("", propertyHandler.List)
			properties.GET("/:id", propertyHandler.GetByID)
			properties.PUT("/:id", propertyHandler.Update)
			properties.DELETE("/:id", propertyHandler.Delete)
		}

		// Images have no update: a photo is replaced, not edited
		images := v1.Group("/property-images")
		{
			images.POST("", propertyHandler.CreateImage)
			images.GET("", propertyHandler.ListImages)
			images.GET("/:id", propertyHandler.GetImageByID)
			images.DELETE("/:id", propertyHandler.DeleteImage)
		}

		listings := v1.Group("/listings")
		{
			listings.POST("", propertyHandler.CreateListing)
			listings.GET("", propertyHandler.ListListings)
			listings.GET("/:id", propertyHandler.GetListingByID)
		}

		inquiries := v1.Group("/inquiries")
		{
			inquiries.POST("", engagementHandler.CreateInquiry)
			inquiries.GET("", engagementHandler.ListInquiries)
			inquiries.GET("/:id", engagementHandler.GetInquiryByID)
		}

		appointments := v1.Group("/appointments")
		{
			appointments.POST("", engagementHandler.CreateAppointment)
			appointments.GET("", engagementHandler.ListAppointments)
			appointments.GET("/:id", engagementHandler.GetAppointmentByID)
		}

		// Transactions are immutable and payments append-only, so neither
		// exposes update or delete
		transactions := v1.Group("/transactions")
		{
			transactions.POST("", saleHandler.CreateTransaction)
			transactions.GET("", saleHandler.ListTransactions)
			transactions.GET("/:id", saleHandler.GetTransactionByID)
			transactions.GET("/:id/ledger", ledgerHandler.TransactionLedger)
		}

		payments := v1.Group("/payments")
		{
			payments.POST("", saleHandler.CreatePayment)
			payments.GET("", saleHandler.ListPayments)
			payments.GET("/:id", saleHandler.GetPaymentByID)
		}

		v1.GET("/ledger/summary", ledgerHandler.Summary)
	}

	// Health check endpoint for monitoring
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "timestamp": time.Now().UTC()})
	})
}
