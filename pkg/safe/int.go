// Package safe provides checked integer narrowing.
package safe

import (
	"fmt"
	"math"
)

// Integer covers the integer kinds accepted by the conversions.
type Integer interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 | ~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64
}

// Uint64 converts v to uint64, rejecting negative input.
func Uint64[T Integer](v T) (uint64, error) {
	if v < 0 {
		return 0, fmt.Errorf("safe: %d is negative", v)
	}
	return uint64(v), nil
}

// Uint32 converts v to uint32, rejecting values outside the range.
func Uint32[T Integer](v T) (uint32, error) {
	u, err := Uint64(v)
	if err != nil {
		return 0, err
	}
	if u > math.MaxUint32 {
		return 0, fmt.Errorf("safe: %d overflows uint32", v)
	}
	return uint32(u), nil
}

// Int64 converts v to int64, rejecting unsigned values above the range.
func Int64[T Integer](v T) (int64, error) {
	if v > 0 && uint64(v) > math.MaxInt64 {
		return 0, fmt.Errorf("safe: %d overflows int64", v)
	}
	return int64(v), nil
}
