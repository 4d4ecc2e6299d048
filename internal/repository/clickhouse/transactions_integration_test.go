package clickhouse

import (
	"time"

	"github.com/golang/mock/gomock"
	"github.com/goodnatureofminers/ctimdex-backend/internal/model"
	"github.com/goodnatureofminers/ctimdex-backend/pkg/ctim"
)

func (s *RepositorySuite) TestInsertAndLookupTransactions() {
	closeTime := time.Unix(1700000000, 0).UTC()

	encoded, err := ctim.Encode(13249191, 0, 0)
	s.Require().NoError(err)

	txs := []model.Transaction{
		{
			Network:     model.Mainnet,
			NetworkID:   0,
			LedgerIndex: 13249191,
			TxnIndex:    0,
			CTIM:        encoded,
			Hash:        "9A12C47F6C9AB0F538C1E6ECC124DE2C5C0B1D021A60B5CA35E4FFD1446A45E1",
			Account:     "rHb9CJAWyB4rj91VRWn96DkukG4bwdtyTh",
			TxType:      "Payment",
			Fee:         12,
			Result:      "tesSUCCESS",
			CloseTime:   closeTime,
		},
		{
			Network:     model.Mainnet,
			NetworkID:   0,
			LedgerIndex: 13249191,
			TxnIndex:    1,
			CTIM:        "C0CA2AA700010000",
			Hash:        "11E6ECC124DE2C5C0B1D021A60B5CA35E4FFD1446A45E19A12C47F6C9AB0F538",
			Account:     "rPT1Sjq2YGrBMTttX4GZHjKu9dyfzbpAYe",
			TxType:      "OfferCreate",
			Fee:         10,
			Result:      "tesSUCCESS",
			CloseTime:   closeTime,
		},
	}

	s.metrics.EXPECT().
		Observe("insert_transactions", model.Mainnet, gomock.Nil(), gomock.Any()).
		Times(1)
	s.Require().NoError(s.repo.InsertTransactions(s.testCtx, txs))

	s.metrics.EXPECT().
		Observe("transaction_by_ctim", model.Mainnet, gomock.Nil(), gomock.Any()).
		Times(2)

	got, err := s.repo.TransactionByCTIM(s.testCtx, 0, 13249191, 0)
	s.Require().NoError(err)
	s.Require().NotNil(got)
	s.Equal(txs[0].CTIM, got.CTIM)
	s.Equal(txs[0].Hash, got.Hash)
	s.Equal(txs[0].Account, got.Account)
	s.Equal(closeTime, got.CloseTime.UTC())

	missing, err := s.repo.TransactionByCTIM(s.testCtx, 0, 13249191, 99)
	s.Require().NoError(err)
	s.Nil(missing)

	s.metrics.EXPECT().
		Observe("transactions_by_ledger", model.Mainnet, gomock.Nil(), gomock.Any()).
		Times(1)

	byLedger, err := s.repo.TransactionsByLedger(s.testCtx, 0, 13249191)
	s.Require().NoError(err)
	s.Require().Len(byLedger, 2)
	s.Equal(uint16(0), byLedger[0].TxnIndex)
	s.Equal(uint16(1), byLedger[1].TxnIndex)
}

func (s *RepositorySuite) TestLedgerIndexBookkeeping() {
	closeTime := time.Unix(1700000000, 0).UTC()

	ledgers := []model.Ledger{
		{Network: model.Testnet, NetworkID: 1, LedgerIndex: 1, Hash: "01", CloseTime: closeTime, TxCount: 0, Status: model.LedgerProcessed},
		{Network: model.Testnet, NetworkID: 1, LedgerIndex: 2, Hash: "02", CloseTime: closeTime, TxCount: 3, Status: model.LedgerProcessed},
		{Network: model.Testnet, NetworkID: 1, LedgerIndex: 5, Hash: "05", CloseTime: closeTime, TxCount: 1, Status: model.LedgerProcessed},
	}

	s.metrics.EXPECT().
		Observe("insert_ledgers", model.Testnet, gomock.Nil(), gomock.Any()).
		Times(1)
	s.Require().NoError(s.repo.InsertLedgers(s.testCtx, ledgers))

	s.metrics.EXPECT().
		Observe("max_ledger_index", model.Testnet, gomock.Nil(), gomock.Any()).
		Times(1)
	maxIndex, err := s.repo.MaxLedgerIndex(s.testCtx, model.Testnet, 1)
	s.Require().NoError(err)
	s.Equal(uint32(5), maxIndex)

	s.metrics.EXPECT().
		Observe("random_missing_ledger_indexes", model.Testnet, gomock.Nil(), gomock.Any()).
		Times(1)
	missing, err := s.repo.RandomMissingLedgerIndexes(s.testCtx, model.Testnet, 1, maxIndex, 100)
	s.Require().NoError(err)
	s.ElementsMatch([]uint32{3, 4}, missing)
}
