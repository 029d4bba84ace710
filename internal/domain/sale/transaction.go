// Package sale holds the financial records of the office: completed or
// in-progress property sales (transactions) and the payments received
// against them. Transactions are immutable once created and payments are
// append-only; the console deliberately exposes no edit path for either.
package sale

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
)

// Common errors
var (
	ErrNegativeSalePrice    = errors.New("sale price cannot be negative")
	ErrCommissionOutOfRange = errors.New("commission percent must be between 0 and 100")
	ErrZeroTransactionDate  = errors.New("transaction date is required")
	ErrNonPositiveAmount    = errors.New("payment amount must be positive")
)

// Transaction records a property sale. Commission is a percentage of the
// sale price and may be absent; an absent commission is treated as zero in
// every derived figure.
type Transaction struct {
	ID              int64               `json:"id"`
	PropertyID      int64               `json:"property_id"`
	AgentID         int64               `json:"agent_id"`
	BuyerID         int64               `json:"buyer_id"`
	SalePrice       decimal.Decimal     `json:"sale_price"`
	Commission      decimal.NullDecimal `json:"commission"`
	TransactionDate time.Time           `json:"transaction_date"`
}

// NewTransaction creates a transaction after validating the price, the
// commission range and the date
func NewTransaction(propertyID, agentID, buyerID int64, salePrice decimal.Decimal, commission decimal.NullDecimal, transactionDate time.Time) (*Transaction, error) {
	if salePrice.IsNegative() {
		return nil, ErrNegativeSalePrice
	}
	if commission.Valid {
		if commission.Decimal.IsNegative() || commission.Decimal.GreaterThan(decimal.NewFromInt(100)) {
			return nil, ErrCommissionOutOfRange
		}
	}
	if transactionDate.IsZero() {
		return nil, ErrZeroTransactionDate
	}

	return &Transaction{
		PropertyID:      propertyID,
		AgentID:         agentID,
		BuyerID:         buyerID,
		SalePrice:       salePrice,
		Commission:      commission,
		TransactionDate: transactionDate,
	}, nil
}

// CommissionAmount derives the monetary commission from the sale price.
// An absent commission yields zero.
func (t *Transaction) CommissionAmount() decimal.Decimal {
	if !t.Commission.Valid {
		return decimal.Zero
	}
	return t.SalePrice.Mul(t.Commission.Decimal).Div(decimal.NewFromInt(100))
}
