package service

import (
	"context"

	"github.com/AllanRye9/ort-backend/internal/domain/sale"
	"github.com/AllanRye9/ort-backend/internal/ledger"
)

// LedgerServiceImpl implements the LedgerService interface. Every call takes
// one snapshot from the source and computes all of its figures against that
// snapshot, so a view never mixes data from two points in time.
type LedgerServiceImpl struct {
	source              ledger.Source
	recentPaymentsLimit int
}

// NewLedgerService creates a new ledger service reading from the given source
func NewLedgerService(source ledger.Source, recentPaymentsLimit int) LedgerService {
	return &LedgerServiceImpl{
		source:              source,
		recentPaymentsLimit: recentPaymentsLimit,
	}
}

// Summary computes the office-wide reconciliation view
func (s *LedgerServiceImpl) Summary(ctx context.Context) (*LedgerSummary, error) {
	snap, err := s.source.Snapshot(ctx)
	if err != nil {
		return nil, err
	}

	return &LedgerSummary{
		TotalSales:      ledger.TotalSales(snap.Transactions),
		TotalCommission: ledger.TotalCommission(snap.Transactions),
		TotalReceived:   ledger.TotalReceived(snap.Payments),
		AveragePayment:  ledger.AveragePayment(snap.Payments),
		RecentPayments:  ledger.RecentPayments(snap.Payments, s.recentPaymentsLimit),
	}, nil
}

// TransactionLedger computes the reconciliation view for one transaction.
// A transaction missing from the snapshot reports sale.ErrTransactionNotFound.
func (s *LedgerServiceImpl) TransactionLedger(ctx context.Context, transactionID int64) (*TransactionLedger, error) {
	snap, err := s.source.Snapshot(ctx)
	if err != nil {
		return nil, err
	}

	transaction, ok := snap.Transaction(transactionID)
	if !ok {
		return nil, sale.ErrTransactionNotFound{ID: transactionID}
	}

	return &TransactionLedger{
		Transaction:      transaction,
		Payments:         ledger.PaymentsFor(transactionID, snap.Payments),
		TotalPaid:        ledger.AmountPaid(transactionID, snap.Payments),
		RemainingBalance: snap.RemainingBalance(transactionID),
		ProgressPercent:  snap.ProgressPercent(transactionID),
		CommissionAmount: ledger.CommissionAmount(transaction.SalePrice, transaction.Commission),
	}, nil
}
