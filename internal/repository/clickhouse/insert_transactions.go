package clickhouse

import (
	"context"
	"fmt"
	"time"

	"github.com/goodnatureofminers/ctimdex-backend/internal/model"
)

// InsertTransactions stores transaction rows keyed by their CTIM fields.
func (r *Repository) InsertTransactions(ctx context.Context, txs []model.Transaction) error {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("insert_transactions", firstNetwork(txs), err, start)
	}()

	if len(txs) == 0 {
		return nil
	}

	const query = `
INSERT INTO ctim_transactions (
	network,
	network_id,
	ledger_index,
	txn_index,
	ctim,
	hash,
	account,
	tx_type,
	fee,
	result,
	close_time
) VALUES`

	batch, err := r.conn.PrepareBatch(ctx, query)
	if err != nil {
		return fmt.Errorf("prepare transactions batch: %w", err)
	}

	for _, tx := range txs {
		if err = batch.Append(
			string(tx.Network),
			tx.NetworkID,
			tx.LedgerIndex,
			tx.TxnIndex,
			tx.CTIM,
			tx.Hash,
			tx.Account,
			tx.TxType,
			tx.Fee,
			tx.Result,
			tx.CloseTime,
		); err != nil {
			return fmt.Errorf("append transaction: %w", err)
		}
	}

	if err = batch.Send(); err != nil {
		return fmt.Errorf("insert transactions: %w", err)
	}
	return nil
}
