// Package display formats ledger figures for the console: currency strings
// with locale-aware grouping, whole-number percentages and human labels for
// payment methods. It performs no computation beyond formatting; every
// figure it receives was already computed by the ledger engine.
package display

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"

	"github.com/shopspring/decimal"

	"github.com/AllanRye9/ort-backend/internal/domain/sale"
)

var printer = message.NewPrinter(language.English)

var methodLabels = map[sale.PaymentMethod]string{
	sale.PaymentMethodCreditCard:   "Credit Card",
	sale.PaymentMethodBankTransfer: "Bank Transfer",
	sale.PaymentMethodCash:         "Cash",
	sale.PaymentMethodCheck:        "Check",
}

// Currency renders a monetary amount with a dollar sign, thousands
// separators and exactly two decimal places
func Currency(amount decimal.Decimal) string {
	f, _ := amount.Round(2).Float64()
	return printer.Sprintf("$%v", number.Decimal(f, number.Scale(2)))
}

// Percent renders a percentage rounded to the nearest whole number.
// Rounding happens here and only here; percentages are never fed back into
// arithmetic.
func Percent(pct decimal.Decimal) string {
	return pct.Round(0).String() + "%"
}

// PaymentMethodLabel maps a stored payment method to its display name.
// Unrecognized values pass through as-is; an empty method reads "Unknown".
func PaymentMethodLabel(method sale.PaymentMethod) string {
	if label, ok := methodLabels[method]; ok {
		return label
	}
	if method == "" {
		return "Unknown"
	}
	return string(method)
}
