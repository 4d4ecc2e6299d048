// Package transport exposes the REST API surface.
package transport

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	gwruntime "github.com/grpc-ecosystem/grpc-gateway/v2/runtime"
	"go.uber.org/zap"

	"github.com/goodnatureofminers/ctimdex-backend/internal/model"
	"github.com/goodnatureofminers/ctimdex-backend/internal/service"
	"github.com/goodnatureofminers/ctimdex-backend/pkg/ctim"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

// Resolver is the service surface the handler needs.
type Resolver interface {
	Encode(ledgerIndex, txnIndex, networkID uint64) (string, error)
	Decode(in ctim.Input) (ctim.CTIM, error)
	Resolve(ctx context.Context, in ctim.Input) (*model.Transaction, error)
	LedgerTransactions(ctx context.Context, networkID uint16, ledgerIndex uint32) ([]model.Transaction, error)
}

// CTIMHandler serves the CTIM codec and lookup routes.
type CTIMHandler struct {
	resolver Resolver
	logger   *zap.Logger
}

// NewCTIMHandler returns a CTIMHandler instance.
func NewCTIMHandler(resolver Resolver, logger *zap.Logger) *CTIMHandler {
	return &CTIMHandler{resolver: resolver, logger: logger}
}

// Register wires the handler's routes into the gateway mux.
func (h *CTIMHandler) Register(mux *gwruntime.ServeMux) error {
	routes := []struct {
		method string
		path   string
		fn     gwruntime.HandlerFunc
	}{
		{http.MethodGet, "/v1/ctim/{ctim}", h.decodeText},
		{http.MethodGet, "/v1/ctim/value/{value}", h.decodeValue},
		{http.MethodGet, "/v1/networks/{network_id}/ledgers/{ledger_index}/transactions/{txn_index}/ctim", h.encode},
		{http.MethodGet, "/v1/networks/{network_id}/ledgers/{ledger_index}/transactions", h.ledgerTransactions},
		{http.MethodGet, "/v1/transactions/{ctim}", h.resolve},
	}
	for _, route := range routes {
		if err := mux.HandlePath(route.method, route.path, route.fn); err != nil {
			return fmt.Errorf("register %s: %w", route.path, err)
		}
	}
	return nil
}

type ctimResponse struct {
	CTIM        string `json:"ctim"`
	Value       uint64 `json:"value,string"`
	LedgerIndex uint32 `json:"ledger_index"`
	TxnIndex    uint16 `json:"txn_index"`
	NetworkID   uint16 `json:"network_id"`
	Network     string `json:"network"`
}

func newCTIMResponse(c ctim.CTIM) ctimResponse {
	return ctimResponse{
		CTIM:        c.String(),
		Value:       c.Value(),
		LedgerIndex: c.LedgerIndex,
		TxnIndex:    c.TxnIndex,
		NetworkID:   c.NetworkID,
		Network:     string(model.NetworkByID(c.NetworkID)),
	}
}

type transactionResponse struct {
	CTIM        string    `json:"ctim"`
	Hash        string    `json:"hash"`
	Account     string    `json:"account"`
	TxType      string    `json:"tx_type"`
	Fee         uint64    `json:"fee,string"`
	Result      string    `json:"result"`
	LedgerIndex uint32    `json:"ledger_index"`
	TxnIndex    uint16    `json:"txn_index"`
	NetworkID   uint16    `json:"network_id"`
	Network     string    `json:"network"`
	CloseTime   time.Time `json:"close_time"`
}

func newTransactionResponse(tx model.Transaction) transactionResponse {
	return transactionResponse{
		CTIM:        tx.CTIM,
		Hash:        tx.Hash,
		Account:     tx.Account,
		TxType:      tx.TxType,
		Fee:         tx.Fee,
		Result:      tx.Result,
		LedgerIndex: tx.LedgerIndex,
		TxnIndex:    tx.TxnIndex,
		NetworkID:   tx.NetworkID,
		Network:     string(tx.Network),
		CloseTime:   tx.CloseTime,
	}
}

type transactionsResponse struct {
	Transactions []transactionResponse `json:"transactions"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func (h *CTIMHandler) decodeText(w http.ResponseWriter, _ *http.Request, pathParams map[string]string) {
	decoded, err := h.resolver.Decode(ctim.Text(pathParams["ctim"]))
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, newCTIMResponse(decoded))
}

func (h *CTIMHandler) decodeValue(w http.ResponseWriter, _ *http.Request, pathParams map[string]string) {
	raw := pathParams["value"]
	// Base 0 admits both decimal and 0x-prefixed values.
	value, err := strconv.ParseUint(raw, 0, 64)
	if err != nil {
		h.writeJSON(w, http.StatusBadRequest, errorResponse{Error: fmt.Sprintf("invalid value %q", raw)})
		return
	}

	decoded, err := h.resolver.Decode(ctim.Value(value))
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, newCTIMResponse(decoded))
}

func (h *CTIMHandler) encode(w http.ResponseWriter, _ *http.Request, pathParams map[string]string) {
	components := make(map[string]uint64, 3)
	for _, name := range []string{"network_id", "ledger_index", "txn_index"} {
		parsed, err := strconv.ParseUint(pathParams[name], 10, 64)
		if err != nil {
			h.writeJSON(w, http.StatusBadRequest, errorResponse{Error: fmt.Sprintf("invalid %s %q", name, pathParams[name])})
			return
		}
		components[name] = parsed
	}

	encoded, err := h.resolver.Encode(components["ledger_index"], components["txn_index"], components["network_id"])
	if err != nil {
		h.writeError(w, err)
		return
	}

	resp := newCTIMResponse(ctim.CTIM{
		LedgerIndex: uint32(components["ledger_index"]),
		TxnIndex:    uint16(components["txn_index"]),
		NetworkID:   uint16(components["network_id"]),
	})
	resp.CTIM = encoded
	h.writeJSON(w, http.StatusOK, resp)
}

func (h *CTIMHandler) resolve(w http.ResponseWriter, r *http.Request, pathParams map[string]string) {
	tx, err := h.resolver.Resolve(r.Context(), ctim.Text(pathParams["ctim"]))
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, newTransactionResponse(*tx))
}

func (h *CTIMHandler) ledgerTransactions(w http.ResponseWriter, r *http.Request, pathParams map[string]string) {
	networkID, err := strconv.ParseUint(pathParams["network_id"], 10, 16)
	if err != nil {
		h.writeJSON(w, http.StatusBadRequest, errorResponse{Error: fmt.Sprintf("invalid network_id %q", pathParams["network_id"])})
		return
	}
	ledgerIndex, err := strconv.ParseUint(pathParams["ledger_index"], 10, 32)
	if err != nil {
		h.writeJSON(w, http.StatusBadRequest, errorResponse{Error: fmt.Sprintf("invalid ledger_index %q", pathParams["ledger_index"])})
		return
	}

	txs, err := h.resolver.LedgerTransactions(r.Context(), uint16(networkID), uint32(ledgerIndex))
	if err != nil {
		h.writeError(w, err)
		return
	}

	resp := transactionsResponse{Transactions: make([]transactionResponse, 0, len(txs))}
	for _, tx := range txs {
		resp.Transactions = append(resp.Transactions, newTransactionResponse(tx))
	}
	h.writeJSON(w, http.StatusOK, resp)
}

func (h *CTIMHandler) writeError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, service.ErrNotIndexed):
		status = http.StatusNotFound
	case isCodecError(err):
		status = http.StatusBadRequest
	default:
		h.logger.Error("request failed", zap.Error(err))
	}
	h.writeJSON(w, status, errorResponse{Error: err.Error()})
}

func (h *CTIMHandler) writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		h.logger.Error("encode response", zap.Error(err))
	}
}

func isCodecError(err error) bool {
	for _, sentinel := range []error{
		ctim.ErrLedgerIndexRange,
		ctim.ErrTxnIndexRange,
		ctim.ErrNetworkIDRange,
		ctim.ErrLength,
		ctim.ErrCharacters,
		ctim.ErrTagMismatch,
		ctim.ErrInputKind,
		ctim.ErrOverflow,
	} {
		if errors.Is(err, sentinel) {
			return true
		}
	}
	return false
}
