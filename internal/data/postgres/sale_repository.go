package postgres

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5"

	"github.com/AllanRye9/ort-backend/internal/domain/sale"
	"github.com/AllanRye9/ort-backend/internal/platform/persistence"
)

// TransactionRepository implements sale.TransactionRepository for PostgreSQL
type TransactionRepository struct {
	querier persistence.Querier
	logger  *slog.Logger
}

// NewTransactionRepository creates a new PostgreSQL transaction repository
func NewTransactionRepository(logger *slog.Logger, db *persistence.PostgresDB) sale.TransactionRepository {
	return &TransactionRepository{
		querier: db.Pool(),
		logger:  logger,
	}
}

// Create stores a new transaction and fills in its generated ID
func (r *TransactionRepository) Create(ctx context.Context, transaction *sale.Transaction) error {
	query := `
		INSERT INTO transactions (property_id, agent_id, buyer_id, sale_price, commission, transaction_date)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id
	`

	err := r.querier.QueryRow(ctx, query,
		transaction.PropertyID,
		transaction.AgentID,
		transaction.BuyerID,
		transaction.SalePrice,
		transaction.Commission,
		transaction.TransactionDate,
	).Scan(&transaction.ID)
	if err != nil {
		r.logger.Error("Failed to create transaction", "error", err)
		return fmt.Errorf("failed to create transaction: %w", err)
	}

	return nil
}

// GetByID retrieves a transaction by its ID
func (r *TransactionRepository) GetByID(ctx context.Context, id int64) (*sale.Transaction, error) {
	query := `
		SELECT id, property_id, agent_id, buyer_id, sale_price, commission, transaction_date
		FROM transactions
		WHERE id = $1
	`

	var t sale.Transaction
	err := r.querier.QueryRow(ctx, query, id).Scan(
		&t.ID,
		&t.PropertyID,
		&t.AgentID,
		&t.BuyerID,
		&t.SalePrice,
		&t.Commission,
		&t.TransactionDate,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, sale.ErrTransactionNotFound{ID: id}
		}
		r.logger.Error("Failed to get transaction", "id", id, "error", err)
		return nil, fmt.Errorf("failed to get transaction: %w", err)
	}

	return &t, nil
}

// List retrieves all transactions ordered by ID
func (r *TransactionRepository) List(ctx context.Context) ([]sale.Transaction, error) {
	query := `
		SELECT id, property_id, agent_id, buyer_id, sale_price, commission, transaction_date
		FROM transactions
		ORDER BY id
	`

	rows, err := r.querier.Query(ctx, query)
	if err != nil {
		r.logger.Error("Failed to list transactions", "error", err)
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}
	defer rows.Close()

	var transactions []sale.Transaction
	for rows.Next() {
		var t sale.Transaction
		if err := rows.Scan(
			&t.ID,
			&t.PropertyID,
			&t.AgentID,
			&t.BuyerID,
			&t.SalePrice,
			&t.Commission,
			&t.TransactionDate,
		); err != nil {
			return nil, fmt.Errorf("failed to scan transaction: %w", err)
		}
		transactions = append(transactions, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate transactions: %w", err)
	}

	return transactions, nil
}

// PaymentRepository implements sale.PaymentRepository for PostgreSQL
type PaymentRepository struct {
	querier persistence.Querier
	logger  *slog.Logger
}

// NewPaymentRepository creates a new PostgreSQL payment repository
func NewPaymentRepository(logger *slog.Logger, db *persistence.PostgresDB) sale.PaymentRepository {
	return &PaymentRepository{
		querier: db.Pool(),
		logger:  logger,
	}
}

// Create stores a new payment and fills in its generated ID
func (r *PaymentRepository) Create(ctx context.Context, payment *sale.Payment) error {
	query := `
		INSERT INTO payments (transaction_id, amount, payment_method, payment_date)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`

	err := r.querier.QueryRow(ctx, query,
		payment.TransactionID,
		payment.Amount,
		payment.PaymentMethod,
		payment.PaymentDate,
	).Scan(&payment.ID)
	if err != nil {
		r.logger.Error("Failed to create payment", "error", err)
		return fmt.Errorf("failed to create payment: %w", err)
	}

	return nil
}

// GetByID retrieves a payment by its ID
func (r *PaymentRepository) GetByID(ctx context.Context, id int64) (*sale.Payment, error) {
	query := `
		SELECT id, transaction_id, amount, payment_method, payment_date
		FROM payments
		WHERE id = $1
	`

	var p sale.Payment
	err := r.querier.QueryRow(ctx, query, id).Scan(
		&p.ID,
		&p.TransactionID,
		&p.Amount,
		&p.PaymentMethod,
		&p.PaymentDate,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, sale.ErrPaymentNotFound{ID: id}
		}
		r.logger.Error("Failed to get payment", "id", id, "error", err)
		return nil, fmt.Errorf("failed to get payment: %w", err)
	}

	return &p, nil
}

// List retrieves all payments ordered by ID
func (r *PaymentRepository) List(ctx context.Context) ([]sale.Payment, error) {
	query := `
		SELECT id, transaction_id, amount, payment_method, payment_date
		FROM payments
		ORDER BY id
	`

	rows, err := r.querier.Query(ctx, query)
	if err != nil {
		r.logger.Error("Failed to list payments", "error", err)
		return nil, fmt.Errorf("failed to list payments: %w", err)
	}
	defer rows.Close()

	var payments []sale.Payment
	for rows.Next() {
		var p sale.Payment
		if err := rows.Scan(
			&p.ID,
			&p.TransactionID,
			&p.Amount,
			&p.PaymentMethod,
			&p.PaymentDate,
		); err != nil {
			return nil, fmt.Errorf("failed to scan payment: %w", err)
		}
		payments = append(payments, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate payments: %w", err)
	}

	return payments, nil
}
