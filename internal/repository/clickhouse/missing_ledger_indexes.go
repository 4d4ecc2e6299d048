package clickhouse

import (
	"context"
	"fmt"
	"time"

	"github.com/goodnatureofminers/ctimdex-backend/internal/model"
)

// RandomMissingLedgerIndexes samples up to limit ledger indexes in
// [1, maxIndex] that have no ledger row yet for the network.
func (r *Repository) RandomMissingLedgerIndexes(ctx context.Context, network model.Network, networkID uint16, maxIndex uint32, limit uint64) ([]uint32, error) {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("random_missing_ledger_indexes", network, err, start)
	}()

	if maxIndex == 0 {
		return nil, nil
	}

	const query = `
SELECT idx
FROM (
	SELECT toUInt32(number + 1) AS idx
	FROM numbers(?)
)
WHERE idx NOT IN (
	SELECT ledger_index
	FROM ctim_ledgers
	WHERE network_id = ?
)
ORDER BY rand()
LIMIT ?`

	rows, err := r.conn.Query(ctx, query, uint64(maxIndex), networkID, limit)
	if err != nil {
		return nil, fmt.Errorf("query missing ledger indexes: %w", err)
	}
	defer func() {
		if closeErr := rows.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("close rows: %w", closeErr)
		}
	}()

	var indexes []uint32
	for rows.Next() {
		var idx uint32
		if err = rows.Scan(&idx); err != nil {
			return nil, fmt.Errorf("scan missing ledger index: %w", err)
		}
		indexes = append(indexes, idx)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate missing ledger indexes: %w", err)
	}

	return indexes, nil
}
