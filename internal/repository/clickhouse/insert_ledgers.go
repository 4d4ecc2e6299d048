package clickhouse

import (
	"context"
	"fmt"
	"time"

	"github.com/goodnatureofminers/ctimdex-backend/internal/model"
)

// InsertLedgers stores ledger rows in ClickHouse.
func (r *Repository) InsertLedgers(ctx context.Context, ledgers []model.Ledger) error {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("insert_ledgers", firstNetwork(ledgers), err, start)
	}()

	if len(ledgers) == 0 {
		return nil
	}

	const query = `
INSERT INTO ctim_ledgers (
	network,
	network_id,
	ledger_index,
	hash,
	parent_hash,
	close_time,
	total_coins,
	tx_count,
	status
) VALUES`

	batch, err := r.conn.PrepareBatch(ctx, query)
	if err != nil {
		return fmt.Errorf("prepare ledgers batch: %w", err)
	}

	for _, ledger := range ledgers {
		if err = batch.Append(
			string(ledger.Network),
			ledger.NetworkID,
			ledger.LedgerIndex,
			ledger.Hash,
			ledger.ParentHash,
			ledger.CloseTime,
			ledger.TotalCoins,
			ledger.TxCount,
			string(ledger.Status),
		); err != nil {
			return fmt.Errorf("append ledger: %w", err)
		}
	}

	if err = batch.Send(); err != nil {
		return fmt.Errorf("insert ledgers: %w", err)
	}
	return nil
}
