package postgres

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v3"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AllanRye9/ort-backend/internal/domain/sale"
)

func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

func TestTransactionRepository_Create(t *testing.T) {
	ctx := context.Background()
	logger := newTestLogger()
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := &TransactionRepository{querier: mock, logger: logger}

	txn := &sale.Transaction{
		PropertyID:      4,
		AgentID:         2,
		BuyerID:         3,
		SalePrice:       decimal.NewFromInt(500000),
		Commission:      decimal.NullDecimal{Decimal: decimal.NewFromInt(3), Valid: true},
		TransactionDate: time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC),
	}

	query := `
		INSERT INTO transactions \(property_id, agent_id, buyer_id, sale_price, commission, transaction_date\)
		VALUES \(\$1, \$2, \$3, \$4, \$5, \$6\)
		RETURNING id
	`

	t.Run("success", func(t *testing.T) {
		mock.ExpectQuery(query).
			WithArgs(txn.PropertyID, txn.AgentID, txn.BuyerID, txn.SalePrice, txn.Commission, txn.TransactionDate).
			WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(int64(7)))

		err := repo.Create(ctx, txn)
		assert.NoError(t, err)
		assert.Equal(t, int64(7), txn.ID)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("failure", func(t *testing.T) {
		expectedErr := errors.New("db error")
		mock.ExpectQuery(query).
			WithArgs(txn.PropertyID, txn.AgentID, txn.BuyerID, txn.SalePrice, txn.Commission, txn.TransactionDate).
			WillReturnError(expectedErr)

		err := repo.Create(ctx, txn)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "failed to create transaction")
		assert.ErrorIs(t, err, expectedErr)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestTransactionRepository_GetByID(t *testing.T) {
	ctx := context.Background()
	logger := newTestLogger()
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := &TransactionRepository{querier: mock, logger: logger}
	date := time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)

	query := `
		SELECT id, property_id, agent_id, buyer_id, sale_price, commission, transaction_date
		FROM transactions
		WHERE id = \$1
	`

	t.Run("found", func(t *testing.T) {
		rows := pgxmock.NewRows([]string{"id", "property_id", "agent_id", "buyer_id", "sale_price", "commission", "transaction_date"}).
			AddRow(int64(1), int64(4), int64(2), int64(3), decimal.NewFromInt(500000), decimal.NullDecimal{Decimal: decimal.NewFromInt(3), Valid: true}, date)
		mock.ExpectQuery(query).WithArgs(int64(1)).WillReturnRows(rows)

		txn, err := repo.GetByID(ctx, 1)
		require.NoError(t, err)
		assert.Equal(t, int64(1), txn.ID)
		assert.True(t, txn.SalePrice.Equal(decimal.NewFromInt(500000)))
		assert.True(t, txn.Commission.Valid)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("not found", func(t *testing.T) {
		mock.ExpectQuery(query).WithArgs(int64(42)).WillReturnError(pgx.ErrNoRows)

		_, err := repo.GetByID(ctx, 42)
		assert.ErrorIs(t, err, sale.ErrTransactionNotFound{ID: 42})
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestTransactionRepository_List(t *testing.T) {
	ctx := context.Background()
	logger := newTestLogger()
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := &TransactionRepository{querier: mock, logger: logger}
	date := time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)

	query := `
		SELECT id, property_id, agent_id, buyer_id, sale_price, commission, transaction_date
		FROM transactions
		ORDER BY id
	`

	rows := pgxmock.NewRows([]string{"id", "property_id", "agent_id", "buyer_id", "sale_price", "commission", "transaction_date"}).
		AddRow(int64(1), int64(4), int64(2), int64(3), decimal.NewFromInt(500000), decimal.NullDecimal{Decimal: decimal.NewFromInt(3), Valid: true}, date).
		AddRow(int64(2), int64(5), int64(2), int64(6), decimal.NewFromInt(200000), decimal.NullDecimal{}, date)
	mock.ExpectQuery(query).WillReturnRows(rows)

	transactions, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, transactions, 2)
	assert.False(t, transactions[1].Commission.Valid, "null commission scans as absent")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPaymentRepository_Create(t *testing.T) {
	ctx := context.Background()
	logger := newTestLogger()
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := &PaymentRepository{querier: mock, logger: logger}

	payment := &sale.Payment{
		TransactionID: 1,
		Amount:        decimal.NewFromInt(200000),
		PaymentMethod: sale.PaymentMethodBankTransfer,
		PaymentDate:   time.Date(2024, 3, 20, 0, 0, 0, 0, time.UTC),
	}

	query := `
		INSERT INTO payments \(transaction_id, amount, payment_method, payment_date\)
		VALUES \(\$1, \$2, \$3, \$4\)
		RETURNING id
	`

	mock.ExpectQuery(query).
		WithArgs(payment.TransactionID, payment.Amount, payment.PaymentMethod, payment.PaymentDate).
		WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(int64(11)))

	err = repo.Create(ctx, payment)
	assert.NoError(t, err)
	assert.Equal(t, int64(11), payment.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPaymentRepository_GetByID(t *testing.T) {
	ctx := context.Background()
	logger := newTestLogger()
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := &PaymentRepository{querier: mock, logger: logger}

	query := `
		SELECT id, transaction_id, amount, payment_method, payment_date
		FROM payments
		WHERE id = \$1
	`

	t.Run("found", func(t *testing.T) {
		rows := pgxmock.NewRows([]string{"id", "transaction_id", "amount", "payment_method", "payment_date"}).
			AddRow(int64(1), int64(1), decimal.NewFromInt(200000), sale.PaymentMethodCash, time.Date(2024, 3, 20, 0, 0, 0, 0, time.UTC))
		mock.ExpectQuery(query).WithArgs(int64(1)).WillReturnRows(rows)

		p, err := repo.GetByID(ctx, 1)
		require.NoError(t, err)
		assert.Equal(t, sale.PaymentMethodCash, p.PaymentMethod)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("not found", func(t *testing.T) {
		mock.ExpectQuery(query).WithArgs(int64(99)).WillReturnError(pgx.ErrNoRows)

		_, err := repo.GetByID(ctx, 99)
		assert.ErrorIs(t, err, sale.ErrPaymentNotFound{ID: 99})
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestPaymentRepository_List(t *testing.T) {
	ctx := context.Background()
	logger := newTestLogger()
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := &PaymentRepository{querier: mock, logger: logger}

	query := `
		SELECT id, transaction_id, amount, payment_method, payment_date
		FROM payments
		ORDER BY id
	`

	rows := pgxmock.NewRows([]string{"id", "transaction_id", "amount", "payment_method", "payment_date"}).
		AddRow(int64(1), int64(1), decimal.NewFromInt(200000), sale.PaymentMethodBankTransfer, time.Date(2024, 3, 20, 0, 0, 0, 0, time.UTC)).
		AddRow(int64(2), int64(1), decimal.NewFromInt(100000), sale.PaymentMethodCash, time.Date(2024, 3, 25, 0, 0, 0, 0, time.UTC))
	mock.ExpectQuery(query).WillReturnRows(rows)

	payments, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, payments, 2)
	assert.True(t, payments[1].Amount.Equal(decimal.NewFromInt(100000)))
	assert.NoError(t, mock.ExpectationsWereMet())
}
