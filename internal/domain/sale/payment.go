package sale

import (
	"time"

	"github.com/shopspring/decimal"
)

// PaymentMethod is how a payment was made. Stored as free text in the system
// of record, so unrecognized values pass through untouched; the display layer
// decides how to label them.
type PaymentMethod string

const (
	PaymentMethodCreditCard   PaymentMethod = "credit_card"
	PaymentMethodBankTransfer PaymentMethod = "bank_transfer"
	PaymentMethodCash         PaymentMethod = "cash"
	PaymentMethodCheck        PaymentMethod = "check"
)

// Payment is one installment received against a transaction. Payments may
// reference a transaction that no longer exists in a given snapshot
// (orphaned); downstream aggregation must tolerate that rather than fail.
type Payment struct {
	ID            int64           `json:"id"`
	TransactionID int64           `json:"transaction_id"`
	Amount        decimal.Decimal `json:"amount"`
	PaymentMethod PaymentMethod   `json:"payment_method,omitempty"`
	PaymentDate   time.Time       `json:"payment_date"`
}

// NewPayment creates a payment after validating the amount. A zero payment
// date defaults to now, matching the store's default of the current date.
func NewPayment(transactionID int64, amount decimal.Decimal, method PaymentMethod, paymentDate time.Time) (*Payment, error) {
	if !amount.IsPositive() {
		return nil, ErrNonPositiveAmount
	}
	if paymentDate.IsZero() {
		paymentDate = time.Now()
	}

	return &Payment{
		TransactionID: transactionID,
		Amount:        amount,
		PaymentMethod: method,
		PaymentDate:   paymentDate,
	}, nil
}
