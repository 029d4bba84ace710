package service

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/AllanRye9/ort-backend/internal/domain/sale"
	"github.com/AllanRye9/ort-backend/internal/ledger"
)

// repositorySource adapts the local repositories to ledger.Source. Both
// collections are fetched in parallel and the snapshot is only handed to the
// caller once both fetches finish, so the engine never sees a half-loaded
// pair.
type repositorySource struct {
	transactionRepo sale.TransactionRepository
	paymentRepo     sale.PaymentRepository
}

// NewRepositorySource creates a ledger source backed by the local database
func NewRepositorySource(transactionRepo sale.TransactionRepository, paymentRepo sale.PaymentRepository) ledger.Source {
	return &repositorySource{
		transactionRepo: transactionRepo,
		paymentRepo:     paymentRepo,
	}
}

func (s *repositorySource) Snapshot(ctx context.Context) (ledger.Snapshot, error) {
	var snap ledger.Snapshot

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		transactions, err := s.transactionRepo.List(gctx)
		if err != nil {
			return err
		}
		snap.Transactions = transactions
		return nil
	})
	g.Go(func() error {
		payments, err := s.paymentRepo.List(gctx)
		if err != nil {
			return err
		}
		snap.Payments = payments
		return nil
	})

	if err := g.Wait(); err != nil {
		return ledger.Snapshot{}, err
	}

	return snap, nil
}
