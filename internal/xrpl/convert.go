package xrpl

import (
	"fmt"
	"strconv"
	"time"

	"github.com/goodnatureofminers/ctimdex-backend/internal/model"
	"github.com/goodnatureofminers/ctimdex-backend/pkg/ctim"
	"github.com/goodnatureofminers/ctimdex-backend/pkg/safe"
)

// ConvertLedger maps an expanded ledger result onto the domain model,
// deriving each transaction's CTIM. Ledgers on a real network always
// encode; a failure here means the node handed us out-of-range data.
func ConvertLedger(res *LedgerResult, network model.Network, networkID uint16) (model.InsertLedger, error) {
	if res == nil {
		return model.InsertLedger{}, fmt.Errorf("nil ledger result")
	}

	ledgerIndex, err := parseLedgerIndex(res.Ledger.LedgerIndex)
	if err != nil {
		return model.InsertLedger{}, err
	}

	closeTime := time.Unix(res.Ledger.CloseTime+rippleEpochOffset, 0).UTC()

	totalCoins := uint64(0)
	if res.Ledger.TotalCoins != "" {
		totalCoins, err = strconv.ParseUint(res.Ledger.TotalCoins, 10, 64)
		if err != nil {
			return model.InsertLedger{}, fmt.Errorf("parse total coins %q: %w", res.Ledger.TotalCoins, err)
		}
	}

	txCount, err := safe.Uint32(len(res.Ledger.Transactions))
	if err != nil {
		return model.InsertLedger{}, fmt.Errorf("transaction count: %w", err)
	}

	out := model.InsertLedger{
		Ledger: model.Ledger{
			Network:     network,
			NetworkID:   networkID,
			LedgerIndex: ledgerIndex,
			Hash:        res.Ledger.LedgerHash,
			ParentHash:  res.Ledger.ParentHash,
			CloseTime:   closeTime,
			TotalCoins:  totalCoins,
			TxCount:     txCount,
			Status:      model.LedgerProcessed,
		},
		Txs: make([]model.Transaction, 0, len(res.Ledger.Transactions)),
	}

	for _, tx := range res.Ledger.Transactions {
		converted, err := convertTransaction(tx, network, networkID, ledgerIndex, closeTime)
		if err != nil {
			return model.InsertLedger{}, fmt.Errorf("ledger %d tx %s: %w", ledgerIndex, tx.Hash, err)
		}
		out.Txs = append(out.Txs, converted)
	}

	return out, nil
}

func convertTransaction(tx TransactionData, network model.Network, networkID uint16, ledgerIndex uint32, closeTime time.Time) (model.Transaction, error) {
	txnIndex, err := safe.Uint16(tx.MetaData.TransactionIndex)
	if err != nil {
		return model.Transaction{}, fmt.Errorf("transaction index: %w", err)
	}

	encoded, err := ctim.Encode(uint64(ledgerIndex), uint64(txnIndex), uint64(networkID))
	if err != nil {
		return model.Transaction{}, fmt.Errorf("encode ctim: %w", err)
	}

	fee := uint64(0)
	if tx.Fee != "" {
		fee, err = strconv.ParseUint(tx.Fee, 10, 64)
		if err != nil {
			return model.Transaction{}, fmt.Errorf("parse fee %q: %w", tx.Fee, err)
		}
	}

	return model.Transaction{
		Network:     network,
		NetworkID:   networkID,
		LedgerIndex: ledgerIndex,
		TxnIndex:    txnIndex,
		CTIM:        encoded,
		Hash:        tx.Hash,
		Account:     tx.Account,
		TxType:      tx.TransactionType,
		Fee:         fee,
		Result:      tx.MetaData.TransactionResult,
		CloseTime:   closeTime,
	}, nil
}

func parseLedgerIndex(raw string) (uint32, error) {
	v, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		return 0, fmt.Errorf("parse ledger index %q: %w", raw, err)
	}
	idx, err := safe.Uint32(v)
	if err != nil {
		return 0, fmt.Errorf("ledger index: %w", err)
	}
	if idx > ctim.MaxLedgerIndex {
		return 0, fmt.Errorf("ledger index %d exceeds ctim range", idx)
	}
	return idx, nil
}
