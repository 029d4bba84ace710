package service

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/AllanRye9/ort-backend/internal/domain/party"
	"github.com/AllanRye9/ort-backend/internal/domain/realty"
	"github.com/AllanRye9/ort-backend/internal/domain/sale"
)

type MockTransactionRepository struct {
	mock.Mock
}

func (m *MockTransactionRepository) Create(ctx context.Context, transaction *sale.Transaction) error {
	args := m.Called(ctx, transaction)
	return args.Error(0)
}

func (m *MockTransactionRepository) GetByID(ctx context.Context, id int64) (*sale.Transaction, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*sale.Transaction), args.Error(1)
}

func (m *MockTransactionRepository) List(ctx context.Context) ([]sale.Transaction, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]sale.Transaction), args.Error(1)
}

type MockPaymentRepository struct {
	mock.Mock
}

func (m *MockPaymentRepository) Create(ctx context.Context, payment *sale.Payment) error {
	args := m.Called(ctx, payment)
	return args.Error(0)
}

func (m *MockPaymentRepository) GetByID(ctx context.Context, id int64) (*sale.Payment, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*sale.Payment), args.Error(1)
}

func (m *MockPaymentRepository) List(ctx context.Context) ([]sale.Payment, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]sale.Payment), args.Error(1)
}

type MockPropertyRepository struct {
	mock.Mock
}

func (m *MockPropertyRepository) Create(ctx context.Context, property *realty.Property) error {
	args := m.Called(ctx, property)
	return args.Error(0)
}

func (m *MockPropertyRepository) GetByID(ctx context.Context, id int64) (*realty.Property, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*realty.Property), args.Error(1)
}

func (m *MockPropertyRepository) List(ctx context.Context) ([]realty.Property, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]realty.Property), args.Error(1)
}

func (m *MockPropertyRepository) Update(ctx context.Context, property *realty.Property) error {
	args := m.Called(ctx, property)
	return args.Error(0)
}

func (m *MockPropertyRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, user *party.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) GetByID(ctx context.Context, id int64) (*party.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*party.User), args.Error(1)
}

func (m *MockUserRepository) List(ctx context.Context) ([]party.User, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]party.User), args.Error(1)
}

func (m *MockUserRepository) Update(ctx context.Context, user *party.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockClientRepository struct {
	mock.Mock
}

func (m *MockClientRepository) Create(ctx context.Context, client *party.Client) error {
	args := m.Called(ctx, client)
	return args.Error(0)
}

func (m *MockClientRepository) GetByID(ctx context.Context, id int64) (*party.Client, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*party.Client), args.Error(1)
}

func (m *MockClientRepository) List(ctx context.Context) ([]party.Client, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]party.Client), args.Error(1)
}

func (m *MockClientRepository) Update(ctx context.Context, client *party.Client) error {
	args := m.Called(ctx, client)
	return args.Error(0)
}

func (m *MockClientRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func newSaleServiceWithMocks() (*MockTransactionRepository, *MockPaymentRepository, *MockPropertyRepository, *MockUserRepository, *MockClientRepository, SaleService) {
	transactionRepo := new(MockTransactionRepository)
	paymentRepo := new(MockPaymentRepository)
	propertyRepo := new(MockPropertyRepository)
	userRepo := new(MockUserRepository)
	clientRepo := new(MockClientRepository)
	svc := NewSaleService(transactionRepo, paymentRepo, propertyRepo, userRepo, clientRepo)
	return transactionRepo, paymentRepo, propertyRepo, userRepo, clientRepo, svc
}

func TestSaleService_CreateTransaction(t *testing.T) {
	ctx := context.Background()
	date := time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)
	commission := decimal.NullDecimal{Decimal: decimal.NewFromInt(3), Valid: true}

	t.Run("Success", func(t *testing.T) {
		transactionRepo, _, propertyRepo, userRepo, clientRepo, svc := newSaleServiceWithMocks()

		propertyRepo.On("GetByID", ctx, int64(4)).Return(&realty.Property{ID: 4}, nil).Once()
		userRepo.On("GetByID", ctx, int64(2)).Return(&party.User{ID: 2}, nil).Once()
		clientRepo.On("GetByID", ctx, int64(3)).Return(&party.Client{ID: 3}, nil).Once()
		transactionRepo.On("Create", ctx, mock.AnythingOfType("*sale.Transaction")).Return(nil).Once()

		txn, err := svc.CreateTransaction(ctx, 4, 2, 3, decimal.NewFromInt(500000), commission, date)

		require.NoError(t, err)
		assert.True(t, txn.SalePrice.Equal(decimal.NewFromInt(500000)))
		transactionRepo.AssertExpectations(t)
	})

	t.Run("missing property rejects the transaction", func(t *testing.T) {
		transactionRepo, _, propertyRepo, _, _, svc := newSaleServiceWithMocks()

		propertyRepo.On("GetByID", ctx, int64(99)).Return(nil, realty.ErrPropertyNotFound{ID: 99}).Once()

		_, err := svc.CreateTransaction(ctx, 99, 2, 3, decimal.NewFromInt(500000), commission, date)

		assert.ErrorIs(t, err, realty.ErrPropertyNotFound{ID: 99})
		transactionRepo.AssertNotCalled(t, "Create")
	})

	t.Run("commission over 100 percent is rejected", func(t *testing.T) {
		transactionRepo, _, propertyRepo, userRepo, clientRepo, svc := newSaleServiceWithMocks()

		propertyRepo.On("GetByID", ctx, int64(4)).Return(&realty.Property{ID: 4}, nil).Once()
		userRepo.On("GetByID", ctx, int64(2)).Return(&party.User{ID: 2}, nil).Once()
		clientRepo.On("GetByID", ctx, int64(3)).Return(&party.Client{ID: 3}, nil).Once()

		over := decimal.NullDecimal{Decimal: decimal.NewFromInt(150), Valid: true}
		_, err := svc.CreateTransaction(ctx, 4, 2, 3, decimal.NewFromInt(500000), over, date)

		assert.ErrorIs(t, err, sale.ErrCommissionOutOfRange)
		transactionRepo.AssertNotCalled(t, "Create")
	})
}

func TestSaleService_CreatePayment(t *testing.T) {
	ctx := context.Background()
	date := time.Date(2024, 3, 20, 0, 0, 0, 0, time.UTC)

	t.Run("Success", func(t *testing.T) {
		transactionRepo, paymentRepo, _, _, _, svc := newSaleServiceWithMocks()

		transactionRepo.On("GetByID", ctx, int64(1)).Return(&sale.Transaction{ID: 1}, nil).Once()
		paymentRepo.On("Create", ctx, mock.AnythingOfType("*sale.Payment")).Return(nil).Once()

		payment, err := svc.CreatePayment(ctx, 1, decimal.NewFromInt(200000), sale.PaymentMethodCash, date)

		require.NoError(t, err)
		assert.Equal(t, int64(1), payment.TransactionID)
		paymentRepo.AssertExpectations(t)
	})

	t.Run("missing transaction rejects the payment", func(t *testing.T) {
		transactionRepo, paymentRepo, _, _, _, svc := newSaleServiceWithMocks()

		transactionRepo.On("GetByID", ctx, int64(99)).Return(nil, sale.ErrTransactionNotFound{ID: 99}).Once()

		_, err := svc.CreatePayment(ctx, 99, decimal.NewFromInt(100), sale.PaymentMethodCash, date)

		assert.ErrorIs(t, err, sale.ErrTransactionNotFound{ID: 99})
		paymentRepo.AssertNotCalled(t, "Create")
	})

	t.Run("non-positive amount is rejected", func(t *testing.T) {
		transactionRepo, paymentRepo, _, _, _, svc := newSaleServiceWithMocks()

		transactionRepo.On("GetByID", ctx, int64(1)).Return(&sale.Transaction{ID: 1}, nil).Once()

		_, err := svc.CreatePayment(ctx, 1, decimal.Zero, sale.PaymentMethodCash, date)

		assert.ErrorIs(t, err, sale.ErrNonPositiveAmount)
		paymentRepo.AssertNotCalled(t, "Create")
	})
}

func TestRepositorySource_Snapshot(t *testing.T) {
	ctx := context.Background()

	t.Run("fetches both collections before returning", func(t *testing.T) {
		transactionRepo := new(MockTransactionRepository)
		paymentRepo := new(MockPaymentRepository)

		transactions := []sale.Transaction{{ID: 1, SalePrice: decimal.NewFromInt(500000)}}
		payments := []sale.Payment{{ID: 1, TransactionID: 1, Amount: decimal.NewFromInt(200000)}}
		transactionRepo.On("List", mock.Anything).Return(transactions, nil).Once()
		paymentRepo.On("List", mock.Anything).Return(payments, nil).Once()

		source := NewRepositorySource(transactionRepo, paymentRepo)
		snap, err := source.Snapshot(ctx)

		require.NoError(t, err)
		assert.Len(t, snap.Transactions, 1)
		assert.Len(t, snap.Payments, 1)
	})

	t.Run("either fetch failing fails the snapshot", func(t *testing.T) {
		transactionRepo := new(MockTransactionRepository)
		paymentRepo := new(MockPaymentRepository)

		transactionRepo.On("List", mock.Anything).Return(nil, assert.AnError).Maybe()
		paymentRepo.On("List", mock.Anything).Return([]sale.Payment{}, nil).Maybe()

		source := NewRepositorySource(transactionRepo, paymentRepo)
		_, err := source.Snapshot(ctx)

		assert.Error(t, err)
	})
}
