package handler

import (
	"log/slog"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/AllanRye9/ort-backend/internal/domain/sale"
	"github.com/AllanRye9/ort-backend/internal/server/service"
)

// SaleHandler handles HTTP requests for transactions and payments
type SaleHandler struct {
	saleService service.SaleService
	logger      *slog.Logger
}

// NewSaleHandler creates a new sale handler
func NewSaleHandler(logger *slog.Logger, saleService service.SaleService) *SaleHandler {
	return &SaleHandler{
		saleService: saleService,
		logger:      logger,
	}
}

// CreateTransaction records a property sale
func (h *SaleHandler) CreateTransaction(c *gin.Context) {
	var req CreateTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondBadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	transactionDate, err := parseDate(req.TransactionDate)
	if err != nil {
		RespondBadRequest(c, "Invalid transaction_date: "+err.Error())
		return
	}

	var commission decimal.NullDecimal
	if req.Commission != nil {
		commission = decimal.NullDecimal{Decimal: *req.Commission, Valid: true}
	}

	transaction, err := h.saleService.CreateTransaction(c.Request.Context(), req.PropertyID, req.AgentID, req.BuyerID, req.SalePrice, commission, transactionDate)
	if err != nil {
		respondWriteError(c, h.logger, err)
		return
	}

	RespondCreated(c, transaction)
}

// GetTransactionByID retrieves a transaction by its ID
func (h *SaleHandler) GetTransactionByID(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	transaction, err := h.saleService.GetTransaction(c.Request.Context(), id)
	if err != nil {
		respondLookupError(c, h.logger, err)
		return
	}

	RespondOK(c, transaction)
}

// ListTransactions retrieves all transactions
func (h *SaleHandler) ListTransactions(c *gin.Context) {
	transactions, err := h.saleService.ListTransactions(c.Request.Context())
	if err != nil {
		h.logger.Error("Failed to list transactions", "error", err)
		RespondInternalError(c)
		return
	}

	RespondOK(c, transactions)
}

// CreatePayment records an installment against a transaction
func (h *SaleHandler) CreatePayment(c *gin.Context) {
	var req CreatePaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondBadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	paymentDate, err := parseDate(req.PaymentDate)
	if err != nil {
		RespondBadRequest(c, "Invalid payment_date: "+err.Error())
		return
	}

	payment, err := h.saleService.CreatePayment(c.Request.Context(), req.TransactionID, req.Amount, sale.PaymentMethod(req.PaymentMethod), paymentDate)
	if err != nil {
		respondWriteError(c, h.logger, err)
		return
	}

	RespondCreated(c, payment)
}

// GetPaymentByID retrieves a payment by its ID
func (h *SaleHandler) GetPaymentByID(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	payment, err := h.saleService.GetPayment(c.Request.Context(), id)
	if err != nil {
		respondLookupError(c, h.logger, err)
		return
	}

	RespondOK(c, payment)
}

// ListPayments retrieves all payments
func (h *SaleHandler) ListPayments(c *gin.Context) {
	payments, err := h.saleService.ListPayments(c.Request.Context())
	if err != nil {
		h.logger.Error("Failed to list payments", "error", err)
		RespondInternalError(c)
		return
	}

	RespondOK(c, payments)
}
