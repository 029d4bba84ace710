package display

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/AllanRye9/ort-backend/internal/domain/sale"
)

func TestCurrency(t *testing.T) {
	cases := []struct {
		name  string
		value string
		want  string
	}{
		{"ThousandsSeparators", "1234567.89", "$1,234,567.89"},
		{"PadsToTwoDecimals", "500000", "$500,000.00"},
		{"RoundsToTwoDecimals", "99.999", "$100.00"},
		{"Zero", "0", "$0.00"},
		{"Negative", "-200.5", "$-200.50"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, Currency(decimal.RequireFromString(tc.value)))
		})
	}
}

func TestPercent(t *testing.T) {
	assert.Equal(t, "60%", Percent(decimal.NewFromInt(60)))
	assert.Equal(t, "67%", Percent(decimal.RequireFromString("66.6")))
	assert.Equal(t, "0%", Percent(decimal.Zero))
	assert.Equal(t, "150%", Percent(decimal.NewFromInt(150)))
}

func TestPaymentMethodLabel(t *testing.T) {
	assert.Equal(t, "Credit Card", PaymentMethodLabel(sale.PaymentMethodCreditCard))
	assert.Equal(t, "Bank Transfer", PaymentMethodLabel(sale.PaymentMethodBankTransfer))
	assert.Equal(t, "Cash", PaymentMethodLabel(sale.PaymentMethodCash))
	assert.Equal(t, "Check", PaymentMethodLabel(sale.PaymentMethodCheck))
	assert.Equal(t, "wire", PaymentMethodLabel("wire"), "unrecognized values pass through")
	assert.Equal(t, "Unknown", PaymentMethodLabel(""))
}
