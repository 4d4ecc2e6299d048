package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/goodnatureofminers/ctimdex-backend/internal/model"
	"github.com/goodnatureofminers/ctimdex-backend/pkg/ctim"
)

// ErrNotIndexed reports a well-formed CTIM whose transaction has not been
// ingested yet. Callers distinguish it from malformed input.
var ErrNotIndexed = errors.New("transaction not indexed")

const (
	outcomeSuccess    = "success"
	outcomeInvalid    = "invalid"
	outcomeNotIndexed = "not_indexed"
	outcomeError      = "error"
)

// CTIMResolver turns client-supplied CTIM inputs into indexed transactions.
type CTIMResolver struct {
	repo    LedgerRepository
	metrics ResolverMetrics
}

// NewCTIMResolver builds the resolver with the provided dependencies.
func NewCTIMResolver(repo LedgerRepository, metrics ResolverMetrics) *CTIMResolver {
	return &CTIMResolver{repo: repo, metrics: metrics}
}

// Encode packs the three components into a CTIM string.
func (r *CTIMResolver) Encode(ledgerIndex, txnIndex, networkID uint64) (string, error) {
	started := time.Now()
	encoded, err := ctim.Encode(ledgerIndex, txnIndex, networkID)
	r.metrics.Observe("encode", codecOutcome(err), started)
	return encoded, err
}

// Decode unpacks a CTIM input without touching storage.
func (r *CTIMResolver) Decode(in ctim.Input) (ctim.CTIM, error) {
	started := time.Now()
	decoded, err := ctim.Decode(in)
	r.metrics.Observe("decode", codecOutcome(err), started)
	return decoded, err
}

// Resolve decodes the input and looks the transaction up in storage.
// Returns ErrNotIndexed when the CTIM is valid but unknown.
func (r *CTIMResolver) Resolve(ctx context.Context, in ctim.Input) (*model.Transaction, error) {
	started := time.Now()

	decoded, err := ctim.Decode(in)
	if err != nil {
		r.metrics.Observe("resolve", outcomeInvalid, started)
		return nil, err
	}

	tx, err := r.repo.TransactionByCTIM(ctx, decoded.NetworkID, decoded.LedgerIndex, decoded.TxnIndex)
	if err != nil {
		r.metrics.Observe("resolve", outcomeError, started)
		return nil, err
	}
	if tx == nil {
		r.metrics.Observe("resolve", outcomeNotIndexed, started)
		return nil, fmt.Errorf("%s: %w", decoded.String(), ErrNotIndexed)
	}

	r.metrics.Observe("resolve", outcomeSuccess, started)
	return tx, nil
}

// LedgerTransactions lists the indexed transactions of one ledger in
// txn index order.
func (r *CTIMResolver) LedgerTransactions(ctx context.Context, networkID uint16, ledgerIndex uint32) ([]model.Transaction, error) {
	started := time.Now()

	txs, err := r.repo.TransactionsByLedger(ctx, networkID, ledgerIndex)
	if err != nil {
		r.metrics.Observe("ledger_transactions", outcomeError, started)
		return nil, err
	}

	r.metrics.Observe("ledger_transactions", outcomeSuccess, started)
	return txs, nil
}

func codecOutcome(err error) string {
	if err != nil {
		return outcomeInvalid
	}
	return outcomeSuccess
}
