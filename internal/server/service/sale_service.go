package service

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/AllanRye9/ort-backend/internal/domain/party"
	"github.com/AllanRye9/ort-backend/internal/domain/realty"
	"github.com/AllanRye9/ort-backend/internal/domain/sale"
)

// SaleServiceImpl implements the SaleService interface
type SaleServiceImpl struct {
	transactionRepo sale.TransactionRepository
	paymentRepo     sale.PaymentRepository
	propertyRepo    realty.PropertyRepository
	userRepo        party.UserRepository
	clientRepo      party.ClientRepository
}

// NewSaleService creates a new sale service
func NewSaleService(
	transactionRepo sale.TransactionRepository,
	paymentRepo sale.PaymentRepository,
	propertyRepo realty.PropertyRepository,
	userRepo party.UserRepository,
	clientRepo party.ClientRepository,
) SaleService {
	return &SaleServiceImpl{
		transactionRepo: transactionRepo,
		paymentRepo:     paymentRepo,
		propertyRepo:    propertyRepo,
		userRepo:        userRepo,
		clientRepo:      clientRepo,
	}
}

// CreateTransaction records a sale after verifying the property, agent and
// buyer all exist
func (s *SaleServiceImpl) CreateTransaction(ctx context.Context, propertyID, agentID, buyerID int64, salePrice decimal.Decimal, commission decimal.NullDecimal, transactionDate time.Time) (*sale.Transaction, error) {
	if _, err := s.propertyRepo.GetByID(ctx, propertyID); err != nil {
		return nil, err
	}
	if _, err := s.userRepo.GetByID(ctx, agentID); err != nil {
		return nil, err
	}
	if _, err := s.clientRepo.GetByID(ctx, buyerID); err != nil {
		return nil, err
	}

	transaction, err := sale.NewTransaction(propertyID, agentID, buyerID, salePrice, commission, transactionDate)
	if err != nil {
		return nil, err
	}

	if err := s.transactionRepo.Create(ctx, transaction); err != nil {
		return nil, err
	}

	return transaction, nil
}

// GetTransaction retrieves a transaction by ID
func (s *SaleServiceImpl) GetTransaction(ctx context.Context, id int64) (*sale.Transaction, error) {
	return s.transactionRepo.GetByID(ctx, id)
}

// ListTransactions retrieves all transactions
func (s *SaleServiceImpl) ListTransactions(ctx context.Context) ([]sale.Transaction, error) {
	return s.transactionRepo.List(ctx)
}

// CreatePayment records an installment against an existing transaction
func (s *SaleServiceImpl) CreatePayment(ctx context.Context, transactionID int64, amount decimal.Decimal, method sale.PaymentMethod, paymentDate time.Time) (*sale.Payment, error) {
	if _, err := s.transactionRepo.GetByID(ctx, transactionID); err != nil {
		return nil, err
	}

	payment, err := sale.NewPayment(transactionID, amount, method, paymentDate)
	if err != nil {
		return nil, err
	}

	if err := s.paymentRepo.Create(ctx, payment); err != nil {
		return nil, err
	}

	return payment, nil
}

// GetPayment retrieves a payment by ID
func (s *SaleServiceImpl) GetPayment(ctx context.Context, id int64) (*sale.Payment, error) {
	return s.paymentRepo.GetByID(ctx, id)
}

// ListPayments retrieves all payments
func (s *SaleServiceImpl) ListPayments(ctx context.Context) ([]sale.Payment, error) {
	return s.paymentRepo.List(ctx)
}
