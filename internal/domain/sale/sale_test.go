package sale

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func commission(v int64) decimal.NullDecimal {
	return decimal.NullDecimal{Decimal: decimal.NewFromInt(v), Valid: true}
}

func TestNewTransaction(t *testing.T) {
	date := time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)

	t.Run("SuccessfulCreation", func(t *testing.T) {
		tx, err := NewTransaction(1, 2, 3, decimal.NewFromInt(500000), commission(3), date)
		require.NoError(t, err)
		require.NotNil(t, tx)
		assert.True(t, tx.SalePrice.Equal(decimal.NewFromInt(500000)))
		assert.True(t, tx.Commission.Valid)
	})

	t.Run("AbsentCommission", func(t *testing.T) {
		tx, err := NewTransaction(1, 2, 3, decimal.NewFromInt(500000), decimal.NullDecimal{}, date)
		require.NoError(t, err)
		assert.False(t, tx.Commission.Valid)
	})

	t.Run("NegativeSalePrice", func(t *testing.T) {
		_, err := NewTransaction(1, 2, 3, decimal.NewFromInt(-1), decimal.NullDecimal{}, date)
		assert.ErrorIs(t, err, ErrNegativeSalePrice)
	})

	t.Run("CommissionAbove100", func(t *testing.T) {
		_, err := NewTransaction(1, 2, 3, decimal.NewFromInt(500000), commission(101), date)
		assert.ErrorIs(t, err, ErrCommissionOutOfRange)
	})

	t.Run("NegativeCommission", func(t *testing.T) {
		_, err := NewTransaction(1, 2, 3, decimal.NewFromInt(500000), commission(-1), date)
		assert.ErrorIs(t, err, ErrCommissionOutOfRange)
	})

	t.Run("ZeroDate", func(t *testing.T) {
		_, err := NewTransaction(1, 2, 3, decimal.NewFromInt(500000), decimal.NullDecimal{}, time.Time{})
		assert.ErrorIs(t, err, ErrZeroTransactionDate)
	})
}

func TestTransaction_CommissionAmount(t *testing.T) {
	t.Run("PercentOfSalePrice", func(t *testing.T) {
		tx := &Transaction{SalePrice: decimal.NewFromInt(1000), Commission: commission(5)}
		assert.True(t, tx.CommissionAmount().Equal(decimal.NewFromInt(50)))
	})

	t.Run("AbsentCommissionIsZero", func(t *testing.T) {
		tx := &Transaction{SalePrice: decimal.NewFromInt(1000)}
		assert.True(t, tx.CommissionAmount().IsZero())
	})
}

func TestNewPayment(t *testing.T) {
	t.Run("SuccessfulCreation", func(t *testing.T) {
		date := time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC)
		p, err := NewPayment(7, decimal.NewFromInt(20000), PaymentMethodBankTransfer, date)
		require.NoError(t, err)
		assert.Equal(t, int64(7), p.TransactionID)
		assert.Equal(t, date, p.PaymentDate)
	})

	t.Run("ZeroDateDefaultsToNow", func(t *testing.T) {
		before := time.Now()
		p, err := NewPayment(7, decimal.NewFromInt(100), PaymentMethodCash, time.Time{})
		after := time.Now()
		require.NoError(t, err)
		assert.WithinDuration(t, before, p.PaymentDate, after.Sub(before)+time.Millisecond)
	})

	t.Run("ZeroAmount", func(t *testing.T) {
		_, err := NewPayment(7, decimal.Zero, PaymentMethodCash, time.Time{})
		assert.ErrorIs(t, err, ErrNonPositiveAmount)
	})

	t.Run("NegativeAmount", func(t *testing.T) {
		_, err := NewPayment(7, decimal.NewFromInt(-5), PaymentMethodCash, time.Time{})
		assert.ErrorIs(t, err, ErrNonPositiveAmount)
	})
}
