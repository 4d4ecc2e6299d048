package clickhouse

import (
	"context"
	"fmt"
	"time"

	"github.com/goodnatureofminers/ctimdex-backend/internal/model"
)

// TransactionByCTIM looks up the transaction stored for the decoded
// CTIM fields. A nil transaction with nil error means nothing indexed.
func (r *Repository) TransactionByCTIM(ctx context.Context, networkID uint16, ledgerIndex uint32, txnIndex uint16) (*model.Transaction, error) {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("transaction_by_ctim", model.NetworkByID(networkID), err, start)
	}()

	const query = `
SELECT network, network_id, ledger_index, txn_index, ctim, hash, account, tx_type, fee, result, close_time
FROM ctim_transactions
WHERE network_id = ? AND ledger_index = ? AND txn_index = ?
LIMIT 1`

	rows, err := r.conn.Query(ctx, query, networkID, ledgerIndex, txnIndex)
	if err != nil {
		return nil, fmt.Errorf("query transaction by ctim: %w", err)
	}
	defer func() {
		if closeErr := rows.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("close rows: %w", closeErr)
		}
	}()

	if !rows.Next() {
		if err = rows.Err(); err != nil {
			return nil, fmt.Errorf("iterate transaction by ctim: %w", err)
		}
		return nil, nil
	}

	tx, err := scanTransaction(rows)
	if err != nil {
		return nil, fmt.Errorf("scan transaction by ctim: %w", err)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate transaction by ctim: %w", err)
	}

	return tx, nil
}

func scanTransaction(rows Rows) (*model.Transaction, error) {
	var (
		tx      model.Transaction
		network string
	)
	if err := rows.Scan(
		&network,
		&tx.NetworkID,
		&tx.LedgerIndex,
		&tx.TxnIndex,
		&tx.CTIM,
		&tx.Hash,
		&tx.Account,
		&tx.TxType,
		&tx.Fee,
		&tx.Result,
		&tx.CloseTime,
	); err != nil {
		return nil, err
	}
	tx.Network = model.Network(network)
	return &tx, nil
}
