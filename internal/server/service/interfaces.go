// Package service holds the application services sitting between the HTTP
// handlers and the repositories. Services validate input through the domain
// constructors, check cross-entity references and orchestrate persistence.
package service

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/AllanRye9/ort-backend/internal/domain/engagement"
	"github.com/AllanRye9/ort-backend/internal/domain/party"
	"github.com/AllanRye9/ort-backend/internal/domain/realty"
	"github.com/AllanRye9/ort-backend/internal/domain/sale"
)

// UserService manages console users
type UserService interface {
	CreateUser(ctx context.Context, role party.Role, firstName, lastName, email, phone, password string) (*party.User, error)
	GetUser(ctx context.Context, id int64) (*party.User, error)
	ListUsers(ctx context.Context) ([]party.User, error)
	UpdateUser(ctx context.Context, id int64, role party.Role, firstName, lastName, email, phone, password string) (*party.User, error)
	DeleteUser(ctx context.Context, id int64) error
}

// ClientService manages the office's clients
type ClientService interface {
	CreateClient(ctx context.Context, agentID *int64, firstName, lastName, email, phone string, clientType party.ClientType) (*party.Client, error)
	GetClient(ctx context.Context, id int64) (*party.Client, error)
	ListClients(ctx context.Context) ([]party.Client, error)
	UpdateClient(ctx context.Context, id int64, agentID *int64, firstName, lastName, email, phone string, clientType party.ClientType) (*party.Client, error)
	DeleteClient(ctx context.Context, id int64) error
}

// PropertyParams carries the writable fields of a property
type PropertyParams struct {
	OwnerID      *int64
	AgentID      *int64
	Title        string
	Description  string
	PropertyType realty.PropertyType
	Address      string
	City         string
	Price        decimal.Decimal
	Bedrooms     int
	Bathrooms    int
	AreaSqft     int
}

// PropertyService manages the property inventory, its images and listings
type PropertyService interface {
	CreateProperty(ctx context.Context, params PropertyParams) (*realty.Property, error)
	GetProperty(ctx context.Context, id int64) (*realty.Property, error)
	ListProperties(ctx context.Context) ([]realty.Property, error)
	UpdateProperty(ctx context.Context, id int64, params PropertyParams, status realty.PropertyStatus) (*realty.Property, error)
	DeleteProperty(ctx context.Context, id int64) error

	AddImage(ctx context.Context, propertyID int64, imageURL string, isPrimary bool) (*realty.PropertyImage, error)
	GetImage(ctx context.Context, id int64) (*realty.PropertyImage, error)
	ListImages(ctx context.Context) ([]realty.PropertyImage, error)
	DeleteImage(ctx context.Context, id int64) error

	CreateListing(ctx context.Context, propertyID int64, listingType realty.ListingType, listedPrice decimal.Decimal, listingDate time.Time, expiryDate *time.Time) (*realty.Listing, error)
	GetListing(ctx context.Context, id int64) (*realty.Listing, error)
	ListListings(ctx context.Context) ([]realty.Listing, error)
}

// EngagementService manages inquiries and viewing appointments
type EngagementService interface {
	CreateInquiry(ctx context.Context, propertyID int64, clientID *int64, message string) (*engagement.Inquiry, error)
	GetInquiry(ctx context.Context, id int64) (*engagement.Inquiry, error)
	ListInquiries(ctx context.Context) ([]engagement.Inquiry, error)

	CreateAppointment(ctx context.Context, propertyID, agentID, clientID int64, appointmentDate time.Time) (*engagement.Appointment, error)
	GetAppointment(ctx context.Context, id int64) (*engagement.Appointment, error)
	ListAppointments(ctx context.Context) ([]engagement.Appointment, error)
}

// SaleService manages transactions and payments
type SaleService interface {
	CreateTransaction(ctx context.Context, propertyID, agentID, buyerID int64, salePrice decimal.Decimal, commission decimal.NullDecimal, transactionDate time.Time) (*sale.Transaction, error)
	GetTransaction(ctx context.Context, id int64) (*sale.Transaction, error)
	ListTransactions(ctx context.Context) ([]sale.Transaction, error)

	CreatePayment(ctx context.Context, transactionID int64, amount decimal.Decimal, method sale.PaymentMethod, paymentDate time.Time) (*sale.Payment, error)
	GetPayment(ctx context.Context, id int64) (*sale.Payment, error)
	ListPayments(ctx context.Context) ([]sale.Payment, error)
}

// LedgerSummary is the office-wide reconciliation view over one snapshot
type LedgerSummary struct {
	TotalSales      decimal.Decimal
	TotalCommission decimal.Decimal
	TotalReceived   decimal.Decimal
	AveragePayment  decimal.Decimal
	RecentPayments  []sale.Payment
}

// TransactionLedger is the per-transaction reconciliation view over one snapshot
type TransactionLedger struct {
	Transaction      sale.Transaction
	Payments         []sale.Payment
	TotalPaid        decimal.Decimal
	RemainingBalance decimal.Decimal
	ProgressPercent  decimal.Decimal
	CommissionAmount decimal.Decimal
}

// LedgerService computes reconciliation views over ledger snapshots
type LedgerService interface {
	Summary(ctx context.Context) (*LedgerSummary, error)
	TransactionLedger(ctx context.Context, transactionID int64) (*TransactionLedger, error)
}
