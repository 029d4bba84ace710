package handler

import (
	"errors"
	"log/slog"

	"github.com/gin-gonic/gin"

	"github.com/AllanRye9/ort-backend/internal/domain/sale"
	"github.com/AllanRye9/ort-backend/internal/ledger/display"
	"github.com/AllanRye9/ort-backend/internal/ledger/remote"
	"github.com/AllanRye9/ort-backend/internal/server/service"
)

// LedgerHandler handles HTTP requests for the payment reconciliation views
type LedgerHandler struct {
	ledgerService service.LedgerService
	logger        *slog.Logger
}

// NewLedgerHandler creates a new ledger handler
func NewLedgerHandler(logger *slog.Logger, ledgerService service.LedgerService) *LedgerHandler {
	return &LedgerHandler{
		ledgerService: ledgerService,
		logger:        logger,
	}
}

// Summary returns the office-wide reconciliation view
func (h *LedgerHandler) Summary(c *gin.Context) {
	summary, err := h.ledgerService.Summary(c.Request.Context())
	if err != nil {
		h.respondLedgerError(c, err)
		return
	}

	RespondOK(c, mapSummaryToResponse(summary))
}

// TransactionLedger returns the reconciliation view for one transaction
func (h *LedgerHandler) TransactionLedger(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	view, err := h.ledgerService.TransactionLedger(c.Request.Context(), id)
	if err != nil {
		h.respondLedgerError(c, err)
		return
	}

	RespondOK(c, mapTransactionLedgerToResponse(view))
}

// respondLedgerError distinguishes a missing transaction from a snapshot
// fetch failure. A failed fetch from a remote backend is the upstream's
// fault, not ours.
func (h *LedgerHandler) respondLedgerError(c *gin.Context, err error) {
	if errors.Is(err, sale.ErrTransactionNotFound{}) {
		RespondNotFound(c, "Transaction not found")
		return
	}
	var transportErr *remote.TransportError
	if errors.As(err, &transportErr) {
		h.logger.Error("Ledger backend unreachable", "url", transportErr.URL, "status", transportErr.StatusCode, "error", err)
		RespondBadGateway(c, "Ledger backend unavailable")
		return
	}
	h.logger.Error("Failed to build ledger view", "error", err)
	RespondInternalError(c)
}

func mapPaymentsToResponse(payments []sale.Payment) []LedgerPaymentResponse {
	out := make([]LedgerPaymentResponse, 0, len(payments))
	for _, p := range payments {
		out = append(out, LedgerPaymentResponse{
			ID:            p.ID,
			TransactionID: p.TransactionID,
			Amount:        p.Amount.String(),
			AmountDisplay: display.Currency(p.Amount),
			PaymentMethod: display.PaymentMethodLabel(p.PaymentMethod),
			PaymentDate:   p.PaymentDate.Format("2006-01-02"),
		})
	}
	return out
}

func mapSummaryToResponse(s *service.LedgerSummary) LedgerSummaryResponse {
	return LedgerSummaryResponse{
		TotalSales:             s.TotalSales.String(),
		TotalSalesDisplay:      display.Currency(s.TotalSales),
		TotalCommission:        s.TotalCommission.String(),
		TotalCommissionDisplay: display.Currency(s.TotalCommission),
		TotalReceived:          s.TotalReceived.String(),
		TotalReceivedDisplay:   display.Currency(s.TotalReceived),
		AveragePayment:         s.AveragePayment.String(),
		AveragePaymentDisplay:  display.Currency(s.AveragePayment),
		RecentPayments:         mapPaymentsToResponse(s.RecentPayments),
	}
}

func mapTransactionLedgerToResponse(v *service.TransactionLedger) TransactionLedgerResponse {
	return TransactionLedgerResponse{
		Transaction:             v.Transaction,
		Payments:                mapPaymentsToResponse(v.Payments),
		TotalPaid:               v.TotalPaid.String(),
		TotalPaidDisplay:        display.Currency(v.TotalPaid),
		RemainingBalance:        v.RemainingBalance.String(),
		RemainingBalanceDisplay: display.Currency(v.RemainingBalance),
		ProgressPercent:         v.ProgressPercent.String(),
		ProgressPercentDisplay:  display.Percent(v.ProgressPercent),
		CommissionAmount:        v.CommissionAmount.String(),
		CommissionAmountDisplay: display.Currency(v.CommissionAmount),
	}
}
