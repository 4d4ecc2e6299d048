// Package safe provides checked narrowing conversions between integer widths.
package safe

import (
	"fmt"
	"math"
)

// Integer covers the machine integer types the conversions accept.
type Integer interface {
	~int | ~int32 | ~int64 | ~uint | ~uint32 | ~uint64
}

func toUnsigned[T Integer](v T, max uint64, width string) (uint64, error) {
	if v < 0 {
		return 0, fmt.Errorf("value %d out of %s range", v, width)
	}
	u := uint64(v)
	if u > max {
		return 0, fmt.Errorf("value %d out of %s range", v, width)
	}
	return u, nil
}

// Uint16 converts signed or unsigned integers to uint16 with range validation.
func Uint16[T Integer](v T) (uint16, error) {
	u, err := toUnsigned(v, math.MaxUint16, "uint16")
	if err != nil {
		return 0, err
	}
	return uint16(u), nil
}

// Uint32 converts signed or unsigned integers to uint32 with range validation.
func Uint32[T Integer](v T) (uint32, error) {
	u, err := toUnsigned(v, math.MaxUint32, "uint32")
	if err != nil {
		return 0, err
	}
	return uint32(u), nil
}

// Uint64 converts signed or unsigned integers to uint64 while guarding
// against negatives.
func Uint64[T Integer](v T) (uint64, error) {
	return toUnsigned(v, math.MaxUint64, "uint64")
}
