// Package model defines domain models for CTIM indexing.
package model

import (
	"fmt"
	"strconv"
	"strings"
)

// Network names an XRPL-family network. The numeric id is what ends up
// in the low 16 bits of a CTIM.
type Network string

const (
	Mainnet Network = "mainnet"
	Testnet Network = "testnet"
	Devnet  Network = "devnet"
	Xahau   Network = "xahau"
)

var networkIDs = map[Network]uint16{
	Mainnet: 0,
	Testnet: 1,
	Devnet:  2,
	Xahau:   21337,
}

// ID returns the numeric network id for a known network name. Names of
// the form "network-<id>" address networks without a well-known name.
func (n Network) ID() (uint16, error) {
	if id, ok := networkIDs[n]; ok {
		return id, nil
	}
	if raw, ok := strings.CutPrefix(string(n), "network-"); ok {
		if id, err := strconv.ParseUint(raw, 10, 16); err == nil {
			return uint16(id), nil
		}
	}
	return 0, fmt.Errorf("unknown network %q", n)
}

// NetworkByID returns the name for a numeric network id, falling back
// to the "network-<id>" form.
func NetworkByID(id uint16) Network {
	for name, known := range networkIDs {
		if known == id {
			return name
		}
	}
	return Network("network-" + strconv.FormatUint(uint64(id), 10))
}
