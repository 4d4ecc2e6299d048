package clickhouse

import (
	"context"
	"fmt"
	"time"

	"github.com/goodnatureofminers/ctimdex-backend/internal/model"
)

// TransactionsByLedger returns all indexed transactions of a ledger in
// transaction-index order.
func (r *Repository) TransactionsByLedger(ctx context.Context, networkID uint16, ledgerIndex uint32) ([]model.Transaction, error) {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("transactions_by_ledger", model.NetworkByID(networkID), err, start)
	}()

	const query = `
SELECT network, network_id, ledger_index, txn_index, ctim, hash, account, tx_type, fee, result, close_time
FROM ctim_transactions
WHERE network_id = ? AND ledger_index = ?
ORDER BY txn_index`

	rows, err := r.conn.Query(ctx, query, networkID, ledgerIndex)
	if err != nil {
		return nil, fmt.Errorf("query transactions by ledger: %w", err)
	}
	defer func() {
		if closeErr := rows.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("close rows: %w", closeErr)
		}
	}()

	var txs []model.Transaction
	for rows.Next() {
		tx, scanErr := scanTransaction(rows)
		if scanErr != nil {
			err = scanErr
			return nil, fmt.Errorf("scan transaction: %w", err)
		}
		txs = append(txs, *tx)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate transactions by ledger: %w", err)
	}

	return txs, nil
}
