package service

import (
	"context"
	"time"

	"github.com/goodnatureofminers/ctimdex-backend/internal/model"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	LedgerRepository interface {
		InsertLedgers(ctx context.Context, ledgers []model.Ledger) error
		InsertTransactions(ctx context.Context, txs []model.Transaction) error
		TransactionByCTIM(ctx context.Context, networkID uint16, ledgerIndex uint32, txnIndex uint16) (*model.Transaction, error)
		TransactionsByLedger(ctx context.Context, networkID uint16, ledgerIndex uint32) ([]model.Transaction, error)
		MaxLedgerIndex(ctx context.Context, network model.Network, networkID uint16) (uint32, error)
		RandomMissingLedgerIndexes(ctx context.Context, network model.Network, networkID uint16, maxIndex uint32, limit uint64) ([]uint32, error)
	}
	LedgerSource interface {
		CheckNetworkID(ctx context.Context) error
		LatestLedgerIndex(ctx context.Context) (uint32, error)
		FetchLedger(ctx context.Context, ledgerIndex uint32) (*model.InsertLedger, error)
	}
	ResolverMetrics interface {
		Observe(operation, outcome string, started time.Time)
	}
	IngesterMetrics interface {
		ObserveFetchMissing(err error, started time.Time)
		ObserveProcessBatch(err error, ledgers int, started time.Time)
		ObserveProcessLedger(err error, ledgerIndex uint32, started time.Time)
	}
)
