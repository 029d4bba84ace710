package ledger

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/AllanRye9/ort-backend/internal/domain/sale"
)

var hundred = decimal.NewFromInt(100)

// TotalReceived sums all payment amounts. An empty slice yields zero.
func TotalReceived(payments []sale.Payment) decimal.Decimal {
	total := decimal.Zero
	for _, p := range payments {
		total = total.Add(p.Amount)
	}
	return total
}

// AveragePayment is the mean payment amount, zero when there are no
// payments.
func AveragePayment(payments []sale.Payment) decimal.Decimal {
	if len(payments) == 0 {
		return decimal.Zero
	}
	return TotalReceived(payments).Div(decimal.NewFromInt(int64(len(payments))))
}

// PaymentsFor filters payments belonging to a transaction, preserving
// insertion order. The transaction need not exist in any snapshot: orphaned
// payments still filter by their recorded transaction id.
func PaymentsFor(transactionID int64, payments []sale.Payment) []sale.Payment {
	var matched []sale.Payment
	for _, p := range payments {
		if p.TransactionID == transactionID {
			matched = append(matched, p)
		}
	}
	return matched
}

// AmountPaid sums the payments recorded against a transaction
func AmountPaid(transactionID int64, payments []sale.Payment) decimal.Decimal {
	return TotalReceived(PaymentsFor(transactionID, payments))
}

// ProgressPercent is how much of the sale price has been paid, as a
// percentage. Unknown transactions and zero sale prices both yield zero
// rather than an error; overpayment yields more than 100.
func (s Snapshot) ProgressPercent(transactionID int64) decimal.Decimal {
	t, ok := s.Transaction(transactionID)
	if !ok || t.SalePrice.IsZero() {
		return decimal.Zero
	}
	return AmountPaid(transactionID, s.Payments).Mul(hundred).Div(t.SalePrice)
}

// RemainingBalance is the sale price minus the amount paid. It is negative
// when a transaction is overpaid, which is legal: the store enforces no
// relation between sale price and payment totals. Unknown transactions
// yield zero.
func (s Snapshot) RemainingBalance(transactionID int64) decimal.Decimal {
	t, ok := s.Transaction(transactionID)
	if !ok {
		return decimal.Zero
	}
	return t.SalePrice.Sub(AmountPaid(transactionID, s.Payments))
}

// CommissionAmount derives the monetary commission from a sale price and a
// commission percentage. An absent percentage yields zero.
func CommissionAmount(salePrice decimal.Decimal, commissionPercent decimal.NullDecimal) decimal.Decimal {
	if !commissionPercent.Valid {
		return decimal.Zero
	}
	return salePrice.Mul(commissionPercent.Decimal).Div(hundred)
}

// TotalCommission sums the commission amounts of all transactions
func TotalCommission(transactions []sale.Transaction) decimal.Decimal {
	total := decimal.Zero
	for _, t := range transactions {
		total = total.Add(CommissionAmount(t.SalePrice, t.Commission))
	}
	return total
}

// TotalSales sums the sale prices of all transactions
func TotalSales(transactions []sale.Transaction) decimal.Decimal {
	total := decimal.Zero
	for _, t := range transactions {
		total = total.Add(t.SalePrice)
	}
	return total
}

// RecentPayments returns at most n payments ordered by payment date
// descending. Equal dates are broken by id ascending so the order is
// deterministic regardless of how the source happened to return the slice.
// The input is never reordered; sorting happens on a copy.
func RecentPayments(payments []sale.Payment, n int) []sale.Payment {
	if n <= 0 {
		return nil
	}

	sorted := make([]sale.Payment, len(payments))
	copy(sorted, payments)
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].PaymentDate.Equal(sorted[j].PaymentDate) {
			return sorted[i].ID < sorted[j].ID
		}
		return sorted[i].PaymentDate.After(sorted[j].PaymentDate)
	})

	if len(sorted) > n {
		sorted = sorted[:n]
	}
	return sorted
}
