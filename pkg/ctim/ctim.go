// Package ctim implements the Concise Transaction Identifier (CTIM)
// encoding: a tagged 64-bit value packing a ledger index, a transaction
// index and a network id, rendered canonically as 16 uppercase hex
// characters.
//
// Layout of the 64-bit value:
//
//	bits 63-60  tag nibble, always 0xC
//	bits 59-32  ledger index (28 bits)
//	bits 31-16  transaction index
//	bits 15-0   network id
package ctim

import (
	"errors"
	"fmt"
	"strconv"
)

const (
	// MaxLedgerIndex is the largest ledger index representable in the
	// 28 bits a CTIM reserves for it.
	MaxLedgerIndex = 0xFFF_FFFF
	// MaxTxnIndex is the largest transaction index a CTIM can carry.
	MaxTxnIndex = 0xFFFF
	// MaxNetworkID is the largest network id a CTIM can carry.
	MaxNetworkID = 0xFFFF

	// EncodedLen is the exact length of the canonical string form.
	EncodedLen = 16

	tagMask  uint64 = 0xF000_0000_0000_0000
	tagBits  uint64 = 0xC000_0000_0000_0000
	tagAdded uint64 = 0xC000_0000
)

var (
	// ErrLedgerIndexRange reports a ledger index above MaxLedgerIndex.
	ErrLedgerIndexRange = errors.New("ctim: ledger index out of range")
	// ErrTxnIndexRange reports a transaction index above MaxTxnIndex.
	ErrTxnIndexRange = errors.New("ctim: transaction index out of range")
	// ErrNetworkIDRange reports a network id above MaxNetworkID.
	ErrNetworkIDRange = errors.New("ctim: network id out of range")
	// ErrLength reports a textual CTIM that is not exactly 16 characters.
	ErrLength = errors.New("ctim: encoded form must be 16 characters")
	// ErrCharacters reports a textual CTIM containing anything outside 0-9A-F.
	ErrCharacters = errors.New("ctim: encoded form must be uppercase hex")
	// ErrTagMismatch reports a candidate value whose top nibble is not 0xC.
	ErrTagMismatch = errors.New("ctim: value does not carry the 0xC tag")
	// ErrInputKind reports a decode operand of an unsupported kind.
	ErrInputKind = errors.New("ctim: unsupported input kind")
	// ErrOverflow reports an integer operand outside the uint64 range.
	ErrOverflow = errors.New("ctim: integer input exceeds 64 bits")
)

// CTIM is a decoded identifier. The zero value is not a valid CTIM
// (a valid one always carries the tag nibble when re-encoded).
type CTIM struct {
	LedgerIndex uint32
	TxnIndex    uint16
	NetworkID   uint16
}

// Value returns the tagged 64-bit form.
func (c CTIM) Value() uint64 {
	return (tagAdded+uint64(c.LedgerIndex))<<32 |
		uint64(c.TxnIndex)<<16 |
		uint64(c.NetworkID)
}

// String returns the canonical 16-character uppercase hex form.
func (c CTIM) String() string {
	return fmt.Sprintf("%016X", c.Value())
}

// New validates the triple and builds a CTIM. All three bounds are
// checked explicitly; the wide parameters keep the checks reachable for
// every caller regardless of the caller's own integer widths.
func New(ledgerIndex, txnIndex, networkID uint64) (CTIM, error) {
	if ledgerIndex > MaxLedgerIndex {
		return CTIM{}, ErrLedgerIndexRange
	}
	if txnIndex > MaxTxnIndex {
		return CTIM{}, ErrTxnIndexRange
	}
	if networkID > MaxNetworkID {
		return CTIM{}, ErrNetworkIDRange
	}
	return CTIM{
		LedgerIndex: uint32(ledgerIndex),
		TxnIndex:    uint16(txnIndex),
		NetworkID:   uint16(networkID),
	}, nil
}

// Encode packs the triple and returns the canonical string form.
func Encode(ledgerIndex, txnIndex, networkID uint64) (string, error) {
	c, err := New(ledgerIndex, txnIndex, networkID)
	if err != nil {
		return "", err
	}
	return c.String(), nil
}

// DecodeString parses and validates the canonical textual form. Only
// the strict form is accepted: exactly 16 characters, uppercase hex,
// no prefix.
func DecodeString(s string) (CTIM, error) {
	if len(s) != EncodedLen {
		return CTIM{}, ErrLength
	}
	for i := 0; i < len(s); i++ {
		ch := s[i]
		if (ch < '0' || ch > '9') && (ch < 'A' || ch > 'F') {
			return CTIM{}, ErrCharacters
		}
	}
	v, err := strconv.ParseUint(s, 16, 64)
	if err != nil {
		return CTIM{}, ErrCharacters
	}
	return DecodeValue(v)
}

// DecodeValue validates a candidate 64-bit value and unpacks it.
func DecodeValue(v uint64) (CTIM, error) {
	if v&tagMask != tagBits {
		return CTIM{}, ErrTagMismatch
	}
	return CTIM{
		LedgerIndex: uint32(v >> 32 & MaxLedgerIndex),
		TxnIndex:    uint16(v >> 16 & MaxTxnIndex),
		NetworkID:   uint16(v & MaxNetworkID),
	}, nil
}
