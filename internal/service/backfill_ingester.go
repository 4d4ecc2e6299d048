package service

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/goodnatureofminers/ctimdex-backend/internal/clock"
	"github.com/goodnatureofminers/ctimdex-backend/internal/model"
	"github.com/goodnatureofminers/ctimdex-backend/pkg/batcher"
	"github.com/goodnatureofminers/ctimdex-backend/pkg/workerpool"
)

const (
	defaultBackfillWorkerCount = 16
	backfillMissingLimit       = 10000

	backfillIdleSleep      = time.Minute
	backfillPostBatchSleep = 5 * time.Second
)

// BackfillIngester fills historical gaps in the index by sampling missing
// ledger indexes and fetching them concurrently.
type BackfillIngester struct {
	repo      LedgerRepository
	source    LedgerSource
	logger    *zap.Logger
	metrics   IngesterMetrics
	network   model.Network
	networkID uint16

	ledgerBatcher *batcher.Batcher[model.InsertLedger]

	workerCount    int
	missingLimit   uint64
	idleSleep      time.Duration
	postBatchSleep time.Duration
}

// NewBackfillIngester builds the backfill ingester with the provided dependencies.
func NewBackfillIngester(
	repo LedgerRepository,
	source LedgerSource,
	network model.Network,
	networkID uint16,
	logger *zap.Logger,
	ingesterMetrics IngesterMetrics,
) *BackfillIngester {
	return &BackfillIngester{
		repo:          repo,
		source:        source,
		logger:        logger,
		metrics:       ingesterMetrics,
		network:       network,
		networkID:     networkID,
		ledgerBatcher:  newLedgerBatcher(logger, repo),
		workerCount:    defaultBackfillWorkerCount,
		missingLimit:   backfillMissingLimit,
		idleSleep:      backfillIdleSleep,
		postBatchSleep: backfillPostBatchSleep,
	}
}

// Run backfills missing ledgers until the context is canceled.
func (s *BackfillIngester) Run(ctx context.Context) error {
	if err := s.source.CheckNetworkID(ctx); err != nil {
		return fmt.Errorf("network id check: %w", err)
	}

	s.ledgerBatcher.Start(ctx)
	defer s.ledgerBatcher.Stop()

	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		latest, err := s.source.LatestLedgerIndex(ctx)
		if err != nil {
			return err
		}

		started := time.Now()
		indexes, err := s.repo.RandomMissingLedgerIndexes(ctx, s.network, s.networkID, latest, s.missingLimit)
		s.metrics.ObserveFetchMissing(err, started)
		if err != nil {
			return err
		}

		if len(indexes) == 0 {
			s.logger.Info("no missing ledger indexes; going idle",
				zap.String("network", string(s.network)),
				zap.Duration("sleep", s.idleSleep))
			if err := clock.SleepWithContext(ctx, s.idleSleep); err != nil {
				return err
			}
			continue
		}

		s.logger.Info("starting backfill batch",
			zap.String("network", string(s.network)),
			zap.Int("ledger_count", len(indexes)))

		batchStarted := time.Now()
		err = workerpool.Process(ctx, s.workerCount, indexes, s.processLedger, func() {
			s.logger.Warn("canceling backfill batch after worker error")
		})
		s.metrics.ObserveProcessBatch(err, len(indexes), batchStarted)
		if err != nil {
			return err
		}

		s.logger.Info("completed backfill batch",
			zap.String("network", string(s.network)),
			zap.Duration("sleep", s.postBatchSleep))
		if err := clock.SleepWithContext(ctx, s.postBatchSleep); err != nil {
			return err
		}
	}
}

func (s *BackfillIngester) processLedger(ctx context.Context, ledgerIndex uint32) error {
	started := time.Now()
	err := s.fetchAndQueue(ctx, ledgerIndex)
	s.metrics.ObserveProcessLedger(err, ledgerIndex, started)
	return err
}

func (s *BackfillIngester) fetchAndQueue(ctx context.Context, ledgerIndex uint32) error {
	ledger, err := s.source.FetchLedger(ctx, ledgerIndex)
	if err != nil {
		return fmt.Errorf("fetch ledger %d: %w", ledgerIndex, err)
	}
	return s.ledgerBatcher.Add(ctx, *ledger)
}
