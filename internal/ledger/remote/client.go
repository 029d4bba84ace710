// Package remote implements a ledger.Source backed by an HTTP API exposing
// the transactions and payments collections, the same surface this service
// serves under /api/v1. It exists so ledger aggregates can be computed
// against another office's deployment, and mirrors how the console itself
// fetches the two collections: both requests dispatched in parallel, joined
// before any computation sees the data.
package remote

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/AllanRye9/ort-backend/internal/domain/sale"
	"github.com/AllanRye9/ort-backend/internal/ledger"
)

const defaultTimeout = 10 * time.Second

// TransportError indicates the remote collection could not be fetched:
// a network failure or a non-2xx response. The caller decides fallback;
// previously fetched data stays valid.
type TransportError struct {
	URL        string
	StatusCode int // zero when the request never completed
	Err        error
}

func (e *TransportError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("fetching %s: unexpected status %d", e.URL, e.StatusCode)
	}
	return fmt.Sprintf("fetching %s: %v", e.URL, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// Client fetches ledger snapshots from a remote backend
type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     *slog.Logger
}

// NewClient creates a snapshot client for the API rooted at baseURL
// (e.g. "https://office.example/api/v1"). A nil httpClient gets a default
// with a 10 second timeout.
func NewClient(logger *slog.Logger, baseURL string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: defaultTimeout}
	}
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: httpClient,
		logger:     logger,
	}
}

var _ ledger.Source = (*Client)(nil)

// Snapshot fetches both collections in parallel and joins before returning,
// so the caller always receives a consistent pair or an error, never a
// partial snapshot.
func (c *Client) Snapshot(ctx context.Context) (ledger.Snapshot, error) {
	var (
		transactions []sale.Transaction
		payments     []sale.Payment
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		transactions, err = c.fetchTransactions(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		payments, err = c.fetchPayments(gctx)
		return err
	})

	if err := g.Wait(); err != nil {
		return ledger.Snapshot{}, err
	}

	c.logger.Debug("fetched ledger snapshot",
		"transactions", len(transactions),
		"payments", len(payments),
	)

	return ledger.Snapshot{Transactions: transactions, Payments: payments}, nil
}

func (c *Client) fetchTransactions(ctx context.Context) ([]sale.Transaction, error) {
	var wire []wireTransaction
	if err := c.getJSON(ctx, c.baseURL+"/transactions", &wire); err != nil {
		return nil, err
	}

	transactions := make([]sale.Transaction, 0, len(wire))
	for _, w := range wire {
		transactions = append(transactions, w.toDomain())
	}
	return transactions, nil
}

func (c *Client) fetchPayments(ctx context.Context) ([]sale.Payment, error) {
	var wire []wirePayment
	if err := c.getJSON(ctx, c.baseURL+"/payments", &wire); err != nil {
		return nil, err
	}

	payments := make([]sale.Payment, 0, len(wire))
	for _, w := range wire {
		payments = append(payments, w.toDomain())
	}
	return payments, nil
}

func (c *Client) getJSON(ctx context.Context, url string, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return &TransportError{URL: url, Err: err}
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return &TransportError{URL: url, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		// Drain so the connection can be reused
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 4096))
		return &TransportError{URL: url, StatusCode: resp.StatusCode, Err: fmt.Errorf("unexpected status %d", resp.StatusCode)}
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return &TransportError{URL: url, Err: fmt.Errorf("decoding response: %w", err)}
	}

	return nil
}
