package xrpl

import (
	"context"
	"fmt"

	"github.com/goodnatureofminers/ctimdex-backend/internal/model"
)

// Source adapts the RPC client to the ingesters' ledger source contract.
type Source struct {
	client    *Client
	network   model.Network
	networkID uint16
}

// NewSource constructs a Source for one network.
func NewSource(client *Client, network model.Network, networkID uint16) *Source {
	return &Source{client: client, network: network, networkID: networkID}
}

// CheckNetworkID verifies the node serves the configured network. Nodes
// for legacy mainnet omit network_id, which matches id 0 only.
func (s *Source) CheckNetworkID(ctx context.Context) error {
	state, err := s.client.ServerState(ctx)
	if err != nil {
		return err
	}
	nodeID := uint32(0)
	if state.State.NetworkID != nil {
		nodeID = *state.State.NetworkID
	}
	if nodeID != uint32(s.networkID) {
		return fmt.Errorf("node serves network id %d, configured %d", nodeID, s.networkID)
	}
	return nil
}

// LatestLedgerIndex returns the node's latest validated ledger index.
func (s *Source) LatestLedgerIndex(ctx context.Context) (uint32, error) {
	state, err := s.client.ServerState(ctx)
	if err != nil {
		return 0, err
	}
	if state.State.ValidatedLedger.Seq == 0 {
		return 0, fmt.Errorf("node reports no validated ledger")
	}
	return state.State.ValidatedLedger.Seq, nil
}

// FetchLedger fetches one validated ledger and converts it, CTIMs included.
func (s *Source) FetchLedger(ctx context.Context, ledgerIndex uint32) (*model.InsertLedger, error) {
	res, err := s.client.Ledger(ctx, ledgerIndex)
	if err != nil {
		return nil, err
	}
	if !res.Validated {
		return nil, fmt.Errorf("ledger %d not validated yet", ledgerIndex)
	}

	converted, err := ConvertLedger(res, s.network, s.networkID)
	if err != nil {
		return nil, err
	}
	return &converted, nil
}
