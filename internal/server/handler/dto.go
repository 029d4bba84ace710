package handler

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"

	"github.com/AllanRye9/ort-backend/internal/domain/sale"
)

// errBadDate reports a date field that is neither YYYY-MM-DD nor RFC 3339
var errBadDate = errors.New("date must be YYYY-MM-DD or RFC 3339")

// parseDate accepts the two date shapes the console sends: a bare day or a
// full RFC 3339 timestamp. An empty string yields the zero time.
func parseDate(s string) (time.Time, error) {
	if s == "" {
		return time.Time{}, nil
	}
	if t, err := time.Parse("2006-01-02", s); err == nil {
		return t, nil
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	return time.Time{}, errBadDate
}

// CreateUserRequest represents a request to create a new user
type CreateUserRequest struct {
	Role      string `json:"role" binding:"required,oneof=agent admin"`
	FirstName string `json:"first_name" binding:"required"`
	LastName  string `json:"last_name" binding:"required"`
	Email     string `json:"email" binding:"required,email"`
	Phone     string `json:"phone"`
	Password  string `json:"password" binding:"required,min=8"`
}

// UpdateUserRequest represents a request to update a user. An empty password
// keeps the current one.
type UpdateUserRequest struct {
	Role      string `json:"role" binding:"required,oneof=agent admin"`
	FirstName string `json:"first_name" binding:"required"`
	LastName  string `json:"last_name" binding:"required"`
	Email     string `json:"email" binding:"required,email"`
	Phone     string `json:"phone"`
	Password  string `json:"password" binding:"omitempty,min=8"`
}

// CreateClientRequest represents a request to create a new client
type CreateClientRequest struct {
	AgentID    *int64 `json:"agent_id"`
	FirstName  string `json:"first_name" binding:"required"`
	LastName   string `json:"last_name" binding:"required"`
	Email      string `json:"email" binding:"omitempty,email"`
	Phone      string `json:"phone"`
	ClientType string `json:"client_type" binding:"required,oneof=buyer seller renter"`
}

// UpdateClientRequest represents a request to update a client
type UpdateClientRequest = CreateClientRequest

// CreatePropertyRequest represents a request to create a new property
type CreatePropertyRequest struct {
	OwnerID      *int64          `json:"owner_id"`
	AgentID      *int64          `json:"agent_id"`
	Title        string          `json:"title" binding:"required"`
	Description  string          `json:"description"`
	PropertyType string          `json:"property_type" binding:"required,oneof=house apartment land commercial"`
	Address      string          `json:"address" binding:"required"`
	City         string          `json:"city"`
	Price        decimal.Decimal `json:"price" binding:"required"`
	Bedrooms     int             `json:"bedrooms" binding:"min=0"`
	Bathrooms    int             `json:"bathrooms" binding:"min=0"`
	AreaSqft     int             `json:"area_sqft" binding:"min=0"`
}

// UpdatePropertyRequest represents a request to update a property, including
// its sales-cycle status
type UpdatePropertyRequest struct {
	CreatePropertyRequest
	Status string `json:"status" binding:"required,oneof=available sold rented pending"`
}

// CreatePropertyImageRequest represents a request to attach a photo to a property
type CreatePropertyImageRequest struct {
	PropertyID int64  `json:"property_id" binding:"required"`
	ImageURL   string `json:"image_url" binding:"required"`
	IsPrimary  bool   `json:"is_primary"`
}

// CreateListingRequest represents a request to put a property on the market
type CreateListingRequest struct {
	PropertyID  int64           `json:"property_id" binding:"required"`
	ListingType string          `json:"listing_type" binding:"required,oneof=sale rent"`
	ListedPrice decimal.Decimal `json:"listed_price" binding:"required"`
	ListingDate string          `json:"listing_date"`
	ExpiryDate  string          `json:"expiry_date"`
}

// CreateInquiryRequest represents an incoming prospect message
type CreateInquiryRequest struct {
	PropertyID int64  `json:"property_id" binding:"required"`
	ClientID   *int64 `json:"client_id"`
	Message    string `json:"message" binding:"required"`
}

// CreateAppointmentRequest represents a request to book a viewing
type CreateAppointmentRequest struct {
	PropertyID      int64     `json:"property_id" binding:"required"`
	AgentID         int64     `json:"agent_id" binding:"required"`
	ClientID        int64     `json:"client_id" binding:"required"`
	AppointmentDate time.Time `json:"appointment_date" binding:"required"`
}

// CreateTransactionRequest represents a request to record a property sale
type CreateTransactionRequest struct {
	PropertyID      int64            `json:"property_id" binding:"required"`
	AgentID         int64            `json:"agent_id" binding:"required"`
	BuyerID         int64            `json:"buyer_id" binding:"required"`
	SalePrice       decimal.Decimal  `json:"sale_price" binding:"required"`
	Commission      *decimal.Decimal `json:"commission"`
	TransactionDate string           `json:"transaction_date" binding:"required"`
}

// CreatePaymentRequest represents a request to record an installment.
// An omitted payment date defaults to today.
type CreatePaymentRequest struct {
	TransactionID int64           `json:"transaction_id" binding:"required"`
	Amount        decimal.Decimal `json:"amount" binding:"required"`
	PaymentMethod string          `json:"payment_method"`
	PaymentDate   string          `json:"payment_date"`
}

// LedgerPaymentResponse is a payment as shown in the ledger views, with the
// amount formatted for the console and the method given its display label
type LedgerPaymentResponse struct {
	ID            int64  `json:"id"`
	TransactionID int64  `json:"transaction_id"`
	Amount        string `json:"amount"`
	AmountDisplay string `json:"amount_display"`
	PaymentMethod string `json:"payment_method"`
	PaymentDate   string `json:"payment_date"`
}

// TransactionLedgerResponse is the per-transaction reconciliation view
type TransactionLedgerResponse struct {
	Transaction             sale.Transaction        `json:"transaction"`
	Payments                []LedgerPaymentResponse `json:"payments"`
	TotalPaid               string                  `json:"total_paid"`
	TotalPaidDisplay        string                  `json:"total_paid_display"`
	RemainingBalance        string                  `json:"remaining_balance"`
	RemainingBalanceDisplay string                  `json:"remaining_balance_display"`
	ProgressPercent         string                  `json:"progress_percent"`
	ProgressPercentDisplay  string                  `json:"progress_percent_display"`
	CommissionAmount        string                  `json:"commission_amount"`
	CommissionAmountDisplay string                  `json:"commission_amount_display"`
}

// LedgerSummaryResponse is the office-wide reconciliation view
type LedgerSummaryResponse struct {
	TotalSales             string                  `json:"total_sales"`
	TotalSalesDisplay      string                  `json:"total_sales_display"`
	TotalCommission        string                  `json:"total_commission"`
	TotalCommissionDisplay string                  `json:"total_commission_display"`
	TotalReceived          string                  `json:"total_received"`
	TotalReceivedDisplay   string                  `json:"total_received_display"`
	AveragePayment         string                  `json:"average_payment"`
	AveragePaymentDisplay  string                  `json:"average_payment_display"`
	RecentPayments         []LedgerPaymentResponse `json:"recent_payments"`
}
