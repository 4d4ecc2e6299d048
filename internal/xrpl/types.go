// Package xrpl fetches validated ledgers from an XRPL-family node over
// the rippled JSON-RPC API.
package xrpl

import "encoding/json"

// rippleEpochOffset converts ripple close times (seconds since
// 2000-01-01T00:00:00Z) to unix seconds.
const rippleEpochOffset int64 = 946684800

type rpcRequest struct {
	Method string `json:"method"`
	Params []any  `json:"params,omitempty"`
}

type rpcEnvelope struct {
	Result json.RawMessage `json:"result"`
}

type resultStatus struct {
	Status       string `json:"status"`
	Error        string `json:"error,omitempty"`
	ErrorMessage string `json:"error_message,omitempty"`
}

type ledgerParams struct {
	LedgerIndex  uint32 `json:"ledger_index"`
	Transactions bool   `json:"transactions"`
	Expand       bool   `json:"expand"`
}

// LedgerResult is the rippled "ledger" method result.
type LedgerResult struct {
	resultStatus
	Validated bool       `json:"validated"`
	Ledger    LedgerData `json:"ledger"`
}

// LedgerData is the expanded ledger payload.
type LedgerData struct {
	LedgerHash   string            `json:"ledger_hash"`
	ParentHash   string            `json:"parent_hash"`
	LedgerIndex  string            `json:"ledger_index"`
	CloseTime    int64             `json:"close_time"`
	TotalCoins   string            `json:"total_coins"`
	Transactions []TransactionData `json:"transactions"`
}

// TransactionData is a single expanded transaction with metadata.
type TransactionData struct {
	Hash            string   `json:"hash"`
	Account         string   `json:"Account"`
	TransactionType string   `json:"TransactionType"`
	Fee             string   `json:"Fee"`
	MetaData        MetaData `json:"metaData"`
}

// MetaData carries the applied-transaction metadata fields we index.
type MetaData struct {
	TransactionIndex  uint32 `json:"TransactionIndex"`
	TransactionResult string `json:"TransactionResult"`
}

// ServerStateResult is the rippled "server_state" method result.
type ServerStateResult struct {
	resultStatus
	State ServerState `json:"state"`
}

// ServerState is the node state payload.
type ServerState struct {
	NetworkID       *uint32         `json:"network_id"`
	ValidatedLedger ValidatedLedger `json:"validated_ledger"`
}

// ValidatedLedger identifies the latest fully validated ledger.
type ValidatedLedger struct {
	Seq  uint32 `json:"seq"`
	Hash string `json:"hash"`
}
