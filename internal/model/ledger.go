package model

import "time"

// LedgerStatus describes processing status of a ledger record.
type LedgerStatus string

var (
	// LedgerNew marks a ledger discovered but not yet ingested.
	LedgerNew LedgerStatus = "new"
	// LedgerProcessed marks a ledger whose transactions are fully indexed.
	LedgerProcessed LedgerStatus = "processed"
)

// Ledger represents a validated ledger persisted to ClickHouse.
type Ledger struct {
	Network     Network
	NetworkID   uint16
	LedgerIndex uint32
	Hash        string
	ParentHash  string
	CloseTime   time.Time
	TotalCoins  uint64
	TxCount     uint32
	Status      LedgerStatus
}

// Transaction represents a transaction within a validated ledger,
// keyed by its CTIM fields.
type Transaction struct {
	Network     Network
	NetworkID   uint16
	LedgerIndex uint32
	TxnIndex    uint16
	CTIM        string
	Hash        string
	Account     string
	TxType      string
	Fee         uint64
	Result      string
	CloseTime   time.Time
}

// InsertLedger bundles a ledger with its transactions for batched writes.
type InsertLedger struct {
	Ledger Ledger
	Txs    []Transaction
}
