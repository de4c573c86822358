// Package bytesize provides ByteSize, a signed 64-bit quantity of bytes with
// comparison, bitwise and shift operations, and arithmetic in both a wrapping
// and an overflow-checked form.
package bytesize

import (
	"cmp"
	"math"
)

// ByteSize is a number of bytes. It may be negative.
type ByteSize int64

const (
	Byte     ByteSize = 1
	Kibibyte          = 1024 * Byte
	Mebibyte          = 1024 * Kibibyte
	Gibibyte          = 1024 * Mebibyte
	Tebibyte          = 1024 * Gibibyte
	Pebibyte          = 1024 * Tebibyte
	Exbibyte          = 1024 * Pebibyte
)

const (
	// MinValue is the smallest representable ByteSize.
	MinValue ByteSize = math.MinInt64

	// MaxValue is the largest representable ByteSize.
	MaxValue ByteSize = math.MaxInt64

	// Zero is zero bytes.
	Zero ByteSize = 0
)

// FromInt64 returns the ByteSize for v bytes. It accepts the full int64 range.
func FromInt64(v int64) ByteSize {
	return ByteSize(v)
}

// FromUint64 returns the ByteSize for v bytes, or an error wrapping
// ErrOverflow if v is larger than MaxValue.
func FromUint64(v uint64) (ByteSize, error) {
	if v > math.MaxInt64 {
		return 0, &OpError{Op: "convert", Err: ErrOverflow}
	}
	return ByteSize(v), nil
}

// Int64 returns the number of bytes.
func (b ByteSize) Int64() int64 {
	return int64(b)
}

// Equal reports whether b and c are the same size.
func (b ByteSize) Equal(c ByteSize) bool {
	return b == c
}

// Less reports whether b < c.
func (b ByteSize) Less(c ByteSize) bool {
	return b < c
}

// LessOrEqual reports whether b <= c.
func (b ByteSize) LessOrEqual(c ByteSize) bool {
	return b <= c
}

// Greater reports whether b > c.
func (b ByteSize) Greater(c ByteSize) bool {
	return b > c
}

// GreaterOrEqual reports whether b >= c.
func (b ByteSize) GreaterOrEqual(c ByteSize) bool {
	return b >= c
}

// Compare returns -1, 0 or +1 as b is less than, equal to or greater than c.
func (b ByteSize) Compare(c ByteSize) int {
	return cmp.Compare(b, c)
}

// Sign returns -1, 0 or +1 for negative, zero and positive sizes.
func (b ByteSize) Sign() int {
	return b.Compare(0)
}

// Min returns the smaller of a and b.
func Min(a, b ByteSize) ByteSize {
	if a < b {
		return a
	}
	return b
}

// Max returns the larger of a and b.
func Max(a, b ByteSize) ByteSize {
	if a > b {
		return a
	}
	return b
}
