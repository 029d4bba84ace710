package handler

import (
	"errors"
	"log/slog"

	"github.com/gin-gonic/gin"

	"github.com/AllanRye9/ort-backend/internal/domain/engagement"
	"github.com/AllanRye9/ort-backend/internal/domain/party"
	"github.com/AllanRye9/ort-backend/internal/domain/realty"
	"github.com/AllanRye9/ort-backend/internal/domain/sale"
)

// validationErrors are the domain constructor failures. They all map to a
// 400 with the constructor's message.
var validationErrors = []error{
	party.ErrInvalidRole,
	party.ErrEmptyName,
	party.ErrEmptyEmail,
	party.ErrInvalidClient,
	party.ErrEmptyPassword,
	realty.ErrEmptyTitle,
	realty.ErrEmptyAddress,
	realty.ErrNegativePrice,
	realty.ErrInvalidPropertyType,
	realty.ErrEmptyImageURL,
	realty.ErrInvalidListingType,
	engagement.ErrEmptyMessage,
	engagement.ErrZeroAppointmentDate,
	sale.ErrNegativeSalePrice,
	sale.ErrCommissionOutOfRange,
	sale.ErrZeroTransactionDate,
	sale.ErrNonPositiveAmount,
}

func isValidationError(err error) bool {
	for _, v := range validationErrors {
		if errors.Is(err, v) {
			return true
		}
	}
	return false
}

// notFoundMessage maps the typed not-found errors to a response message.
// Returns empty when err is not a not-found error.
func notFoundMessage(err error) string {
	switch {
	case errors.Is(err, party.ErrUserNotFound{}):
		return "User not found"
	case errors.Is(err, party.ErrClientNotFound{}):
		return "Client not found"
	case errors.Is(err, realty.ErrPropertyNotFound{}):
		return "Property not found"
	case errors.Is(err, realty.ErrImageNotFound{}):
		return "Property image not found"
	case errors.Is(err, realty.ErrListingNotFound{}):
		return "Listing not found"
	case errors.Is(err, engagement.ErrInquiryNotFound{}):
		return "Inquiry not found"
	case errors.Is(err, engagement.ErrAppointmentNotFound{}):
		return "Appointment not found"
	case errors.Is(err, sale.ErrTransactionNotFound{}):
		return "Transaction not found"
	case errors.Is(err, sale.ErrPaymentNotFound{}):
		return "Payment not found"
	}
	return ""
}

// respondWriteError maps a create or update failure. A missing referenced
// record and a domain validation failure are both client errors; a duplicate
// email is a conflict; anything else is a server fault.
func respondWriteError(c *gin.Context, logger *slog.Logger, err error) {
	if msg := notFoundMessage(err); msg != "" {
		RespondBadRequest(c, msg)
		return
	}
	if isValidationError(err) {
		RespondBadRequest(c, err.Error())
		return
	}
	var dup party.ErrDuplicateEmail
	if errors.As(err, &dup) {
		RespondConflict(c, "User with this email already exists")
		return
	}
	logger.Error("Request failed", "error", err)
	RespondInternalError(c)
}

// respondLookupError maps a read or delete failure where any not-found
// refers to the requested record itself
func respondLookupError(c *gin.Context, logger *slog.Logger, err error) {
	if msg := notFoundMessage(err); msg != "" {
		RespondNotFound(c, msg)
		return
	}
	logger.Error("Request failed", "error", err)
	RespondInternalError(c)
}
