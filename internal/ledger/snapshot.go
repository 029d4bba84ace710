// Package ledger computes payment reconciliation aggregates for property
// sales: how much of each sale has been paid, what remains, and the office's
// commission totals. All functions are pure queries over an immutable
// snapshot pair; nothing here holds state between calls, so the engine is
// safe to invoke on every refresh of the console.
package ledger

import (
	"context"

	"github.com/AllanRye9/ort-backend/internal/domain/sale"
)

// Snapshot is a point-in-time copy of the two collections the engine
// reconciles. The two slices are always fetched fully before the engine
// runs, so every aggregate is computed against one consistent pair. The
// engine never mutates a snapshot.
type Snapshot struct {
	Transactions []sale.Transaction
	Payments     []sale.Payment
}

// Source produces snapshots. The backing store may be the local database or
// a remote API exposing the same collections; either way both collections
// are fetched in full before the snapshot is returned.
type Source interface {
	Snapshot(ctx context.Context) (Snapshot, error)
}

// Transaction finds a transaction in the snapshot by id. The second return
// reports whether it was found; a miss is not an error, callers degrade to
// zero-valued aggregates.
func (s Snapshot) Transaction(id int64) (sale.Transaction, bool) {
	for _, t := range s.Transactions {
		if t.ID == id {
			return t, true
		}
	}
	return sale.Transaction{}, false
}
