package service

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/goodnatureofminers/ctimdex-backend/internal/clock"
	"github.com/goodnatureofminers/ctimdex-backend/internal/model"
	"github.com/goodnatureofminers/ctimdex-backend/pkg/batcher"
)

const (
	// XRPL networks close a ledger roughly every 3-5 seconds.
	followerPollInterval = 4 * time.Second
	followerMaxWindow    = 256

	ledgerBatcherCapacity      = 100
	ledgerBatcherFlushInterval = 5 * time.Second
	ledgerBatcherFlushRPS      = 2
)

// FollowerIngester keeps the index at the validated tip of one network.
// Historical gaps are the BackfillIngester's job.
type FollowerIngester struct {
	repo      LedgerRepository
	source    LedgerSource
	logger    *zap.Logger
	metrics   IngesterMetrics
	network   model.Network
	networkID uint16

	ledgerBatcher *batcher.Batcher[model.InsertLedger]

	pollInterval time.Duration
	maxWindow    uint32
}

// NewFollowerIngester builds the follower with the provided dependencies.
func NewFollowerIngester(
	repo LedgerRepository,
	source LedgerSource,
	network model.Network,
	networkID uint16,
	logger *zap.Logger,
	ingesterMetrics IngesterMetrics,
) *FollowerIngester {
	return &FollowerIngester{
		repo:          repo,
		source:        source,
		logger:        logger,
		metrics:       ingesterMetrics,
		network:       network,
		networkID:     networkID,
		ledgerBatcher: newLedgerBatcher(logger, repo),
		pollInterval:  followerPollInterval,
		maxWindow:     followerMaxWindow,
	}
}

func newLedgerBatcher(logger *zap.Logger, repo LedgerRepository) *batcher.Batcher[model.InsertLedger] {
	return batcher.New[model.InsertLedger](
		logger.Named("ledgerBatcher"),
		func(ctx context.Context, batch []model.InsertLedger) error {
			ledgers := make([]model.Ledger, 0, len(batch))
			txs := make([]model.Transaction, 0, len(batch))
			for _, item := range batch {
				ledgers = append(ledgers, item.Ledger)
				txs = append(txs, item.Txs...)
			}
			if err := repo.InsertTransactions(ctx, txs); err != nil {
				return err
			}
			// Ledger rows land last, so a ledger present in storage
			// implies its transactions are too.
			return repo.InsertLedgers(ctx, ledgers)
		},
		ledgerBatcherCapacity,
		ledgerBatcherFlushInterval,
		ledgerBatcherFlushRPS,
	)
}

// Run follows the validated ledger stream until the context is canceled.
func (s *FollowerIngester) Run(ctx context.Context) error {
	if err := s.source.CheckNetworkID(ctx); err != nil {
		return fmt.Errorf("network id check: %w", err)
	}

	s.ledgerBatcher.Start(ctx)
	defer s.ledgerBatcher.Stop()

	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		maxIndex, err := s.repo.MaxLedgerIndex(ctx, s.network, s.networkID)
		if err != nil {
			return err
		}
		latest, err := s.source.LatestLedgerIndex(ctx)
		if err != nil {
			return err
		}

		next := maxIndex + 1
		if maxIndex == 0 {
			// Fresh storage: start at the tip, history belongs to backfill.
			next = latest
		}

		if next > latest {
			s.logger.Debug("caught up with validated tip",
				zap.String("network", string(s.network)),
				zap.Uint32("latest", latest))
			if err := clock.SleepWithContext(ctx, s.pollInterval); err != nil {
				return err
			}
			continue
		}

		end := latest
		if end-next >= s.maxWindow {
			end = next + s.maxWindow - 1
		}

		started := time.Now()
		err = s.processRange(ctx, next, end)
		s.metrics.ObserveProcessBatch(err, int(end-next+1), started)
		if err != nil {
			return err
		}

		s.logger.Info("processed ledger window",
			zap.String("network", string(s.network)),
			zap.Uint32("from", next),
			zap.Uint32("to", end),
			zap.Uint32("latest", latest))
	}
}

func (s *FollowerIngester) processRange(ctx context.Context, from, to uint32) error {
	for idx := from; idx <= to; idx++ {
		started := time.Now()
		err := s.processLedger(ctx, idx)
		s.metrics.ObserveProcessLedger(err, idx, started)
		if err != nil {
			return err
		}
	}
	return nil
}

func (s *FollowerIngester) processLedger(ctx context.Context, ledgerIndex uint32) error {
	ledger, err := s.source.FetchLedger(ctx, ledgerIndex)
	if err != nil {
		return fmt.Errorf("fetch ledger %d: %w", ledgerIndex, err)
	}
	return s.ledgerBatcher.Add(ctx, *ledger)
}
