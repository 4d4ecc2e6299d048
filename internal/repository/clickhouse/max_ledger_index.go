package clickhouse

import (
	"context"
	"fmt"
	"time"

	"github.com/goodnatureofminers/ctimdex-backend/internal/model"
)

// MaxLedgerIndex returns the highest ledger index stored for a network.
func (r *Repository) MaxLedgerIndex(ctx context.Context, network model.Network, networkID uint16) (uint32, error) {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("max_ledger_index", network, err, start)
	}()

	const query = `
SELECT coalesce(max(ledger_index), toUInt32(0)) AS max_index
FROM ctim_ledgers
WHERE network_id = ?`

	rows, err := r.conn.Query(ctx, query, networkID)
	if err != nil {
		return 0, fmt.Errorf("query max ledger index: %w", err)
	}
	defer func() {
		if closeErr := rows.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("close rows: %w", closeErr)
		}
	}()

	var index uint32
	if !rows.Next() {
		return 0, fmt.Errorf("max ledger index not found")
	}

	if err = rows.Scan(&index); err != nil {
		return 0, fmt.Errorf("scan max ledger index: %w", err)
	}
	if err = rows.Err(); err != nil {
		return 0, fmt.Errorf("iterate max ledger index: %w", err)
	}

	return index, nil
}
