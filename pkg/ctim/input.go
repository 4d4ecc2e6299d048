package ctim

import (
	"github.com/goodnatureofminers/ctimdex-backend/pkg/safe"
)

type inputKind int

const (
	inputNone inputKind = iota
	inputText
	inputValue
)

// Input is a decode operand: either the textual form or the raw 64-bit
// value. The zero Input has no variant set and always fails to decode.
type Input struct {
	kind  inputKind
	text  string
	value uint64
}

// Text wraps the canonical string form as a decode operand.
func Text(s string) Input {
	return Input{kind: inputText, text: s}
}

// Value wraps a raw 64-bit value as a decode operand.
func Value(v uint64) Input {
	return Input{kind: inputValue, value: v}
}

// Decode dispatches on the operand variant.
func Decode(in Input) (CTIM, error) {
	switch in.kind {
	case inputText:
		return DecodeString(in.text)
	case inputValue:
		return DecodeValue(in.value)
	default:
		return CTIM{}, ErrInputKind
	}
}

// DecodeAny accepts the operand kinds a dynamically typed caller may
// hold: strings, byte slices holding text, and any machine integer.
// Integers outside the uint64 range fail with ErrOverflow; anything
// else fails with ErrInputKind.
func DecodeAny(v any) (CTIM, error) {
	switch op := v.(type) {
	case string:
		return DecodeString(op)
	case []byte:
		return DecodeString(string(op))
	case uint64:
		return DecodeValue(op)
	case int, int32, int64, uint, uint32:
		u, err := toUint64(op)
		if err != nil {
			return CTIM{}, err
		}
		return DecodeValue(u)
	default:
		return CTIM{}, ErrInputKind
	}
}

func toUint64(v any) (uint64, error) {
	var (
		u   uint64
		err error
	)
	switch op := v.(type) {
	case int:
		u, err = safe.Uint64(op)
	case int32:
		u, err = safe.Uint64(op)
	case int64:
		u, err = safe.Uint64(op)
	case uint:
		u, err = safe.Uint64(op)
	case uint32:
		u, err = safe.Uint64(op)
	default:
		return 0, ErrInputKind
	}
	if err != nil {
		return 0, ErrOverflow
	}
	return u, nil
}
