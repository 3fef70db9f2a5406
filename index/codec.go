package index

import (
	"fmt"
	"math/bits"

	"github.com/npillmayer/exhaust"
)

// Codec maps the values of T to the integers 0…Count()-1, in the order in
// which package exhaust enumerates T.
//
// ToIndex fails with ErrValueNotFound for values outside of the codec's
// domain. FromIndex panics for an index ≥ Count(); this is a programming
// error, not a condition to recover from.
type Codec[T any] interface {
	Count() uint64
	ToIndex(v T) (uint64, error)
	FromIndex(i uint64) T
}

// Must returns c or panics if err is not nil. It is meant for package level
// codec variables.
func Must[T any](c Codec[T], err error) Codec[T] {
	if err != nil {
		panic(err)
	}
	return c
}

// Enumerable is the enumeration view of a codec: its factories are the
// indices 0…Count()-1, and every value is built with FromIndex.
func Enumerable[T any](c Codec[T]) exhaust.Enumerable[T, uint64] {
	n := c.Count()
	return exhaust.New(func() exhaust.Sequence[uint64] {
		if n == 0 {
			return exhaust.Empty[uint64]()
		}
		return exhaust.Range[uint64](0, n-1).Factories()
	}, c.FromIndex)
}

// --- Checked arithmetic ----------------------------------------------------

// mul returns a*b, or ErrTooLarge if the product does not fit into a uint64.
func mul(a, b uint64) (uint64, error) {
	hi, lo := bits.Mul64(a, b)
	if hi != 0 {
		return 0, fmt.Errorf("%w: %d × %d", ErrTooLarge, a, b)
	}
	return lo, nil
}

// add returns a+b, or ErrTooLarge on overflow.
func add(a, b uint64) (uint64, error) {
	sum, carry := bits.Add64(a, b, 0)
	if carry != 0 {
		return 0, fmt.Errorf("%w: %d + %d", ErrTooLarge, a, b)
	}
	return sum, nil
}

// pow returns base^exp, or ErrTooLarge on overflow.
func pow(base uint64, exp int) (uint64, error) {
	result := uint64(1)
	for range exp {
		hi, lo := bits.Mul64(result, base)
		if hi != 0 {
			return 0, fmt.Errorf("%w: %d^%d", ErrTooLarge, base, exp)
		}
		result = lo
	}
	return result, nil
}

// checkIndex panics if i is not a valid index for a codec with n values.
func checkIndex(i, n uint64) {
	if i >= n {
		panic(fmt.Errorf("%w: %d ≥ %d", ErrIndexOutOfRange, i, n))
	}
}
