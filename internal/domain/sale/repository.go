package sale

import (
	"context"
	"strconv"
)

// TransactionRepository defines transaction persistence operations.
// There is no update or delete: transactions are immutable once recorded.
type TransactionRepository interface {
	Create(ctx context.Context, transaction *Transaction) error
	GetByID(ctx context.Context, id int64) (*Transaction, error)
	List(ctx context.Context) ([]Transaction, error)
}

// PaymentRepository defines payment persistence operations.
// Payments are append-only.
type PaymentRepository interface {
	Create(ctx context.Context, payment *Payment) error
	GetByID(ctx context.Context, id int64) (*Payment, error)
	List(ctx context.Context) ([]Payment, error)
}

// ErrTransactionNotFound indicates a missing transaction
type ErrTransactionNotFound struct {
	ID int64
}

func (e ErrTransactionNotFound) Error() string {
	return "transaction not found: " + strconv.FormatInt(e.ID, 10)
}

// Is matches any ErrTransactionNotFound when the target carries a zero ID
func (e ErrTransactionNotFound) Is(target error) bool {
	t, ok := target.(ErrTransactionNotFound)
	if !ok {
		return false
	}
	return t.ID == 0 || t.ID == e.ID
}

// ErrPaymentNotFound indicates a missing payment
type ErrPaymentNotFound struct {
	ID int64
}

func (e ErrPaymentNotFound) Error() string {
	return "payment not found: " + strconv.FormatInt(e.ID, 10)
}

// Is matches any ErrPaymentNotFound when the target carries a zero ID
func (e ErrPaymentNotFound) Is(target error) bool {
	t, ok := target.(ErrPaymentNotFound)
	if !ok {
		return false
	}
	return t.ID == 0 || t.ID == e.ID
}
