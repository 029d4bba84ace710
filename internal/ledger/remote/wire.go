package remote

import (
	"encoding/json"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/AllanRye9/ort-backend/internal/domain/sale"
)

// The wire types absorb the slop real backends produce: amounts arriving as
// numbers or quoted strings, dates with or without a time component. A
// non-numeric amount or commission is coerced to zero here at the parse
// boundary so it cannot poison every aggregate computed downstream.

// looseDecimal decodes a JSON number or numeric string, coercing anything
// unparseable (or null) to zero
type looseDecimal struct {
	decimal.Decimal
}

func (d *looseDecimal) UnmarshalJSON(data []byte) error {
	s := strings.Trim(strings.TrimSpace(string(data)), `"`)
	if s == "" || s == "null" {
		d.Decimal = decimal.Zero
		return nil
	}
	parsed, err := decimal.NewFromString(s)
	if err != nil {
		d.Decimal = decimal.Zero
		return nil
	}
	d.Decimal = parsed
	return nil
}

// looseTime decodes RFC3339 timestamps or bare dates
type looseTime struct {
	time.Time
}

var timeLayouts = []string{time.RFC3339Nano, time.RFC3339, "2006-01-02"}

func (t *looseTime) UnmarshalJSON(data []byte) error {
	s := strings.Trim(strings.TrimSpace(string(data)), `"`)
	if s == "" || s == "null" {
		t.Time = time.Time{}
		return nil
	}
	for _, layout := range timeLayouts {
		if parsed, err := time.Parse(layout, s); err == nil {
			t.Time = parsed
			return nil
		}
	}
	t.Time = time.Time{}
	return nil
}

type wireTransaction struct {
	ID              int64            `json:"id"`
	PropertyID      int64            `json:"property_id"`
	AgentID         int64            `json:"agent_id"`
	BuyerID         int64            `json:"buyer_id"`
	SalePrice       looseDecimal     `json:"sale_price"`
	Commission      *json.RawMessage `json:"commission"`
	TransactionDate looseTime        `json:"transaction_date"`
}

func (w wireTransaction) toDomain() sale.Transaction {
	t := sale.Transaction{
		ID:              w.ID,
		PropertyID:      w.PropertyID,
		AgentID:         w.AgentID,
		BuyerID:         w.BuyerID,
		SalePrice:       w.SalePrice.Decimal,
		TransactionDate: w.TransactionDate.Time,
	}
	// Distinguish absent commission (stays null) from present-but-garbage
	// (coerced to zero by looseDecimal)
	if w.Commission != nil && string(*w.Commission) != "null" {
		var c looseDecimal
		_ = c.UnmarshalJSON(*w.Commission)
		t.Commission = decimal.NullDecimal{Decimal: c.Decimal, Valid: true}
	}
	return t
}

type wirePayment struct {
	ID            int64        `json:"id"`
	TransactionID int64        `json:"transaction_id"`
	Amount        looseDecimal `json:"amount"`
	PaymentMethod string       `json:"payment_method"`
	PaymentDate   looseTime    `json:"payment_date"`
}

func (w wirePayment) toDomain() sale.Payment {
	return sale.Payment{
		ID:            w.ID,
		TransactionID: w.TransactionID,
		Amount:        w.Amount.Decimal,
		PaymentMethod: sale.PaymentMethod(w.PaymentMethod),
		PaymentDate:   w.PaymentDate.Time,
	}
}
