package index

import (
	"fmt"
	"math"

	"golang.org/x/exp/constraints"
)

type boolCodec struct{}

func (boolCodec) Count() uint64 { return 2 }

func (boolCodec) ToIndex(v bool) (uint64, error) {
	if v {
		return 1, nil
	}
	return 0, nil
}

func (boolCodec) FromIndex(i uint64) bool {
	checkIndex(i, 2)
	return i == 1
}

type unitCodec struct{}

func (unitCodec) Count() uint64                    { return 1 }
func (unitCodec) ToIndex(struct{}) (uint64, error) { return 0, nil }

func (unitCodec) FromIndex(i uint64) struct{} {
	checkIndex(i, 1)
	return struct{}{}
}

type orderingCodec struct{}

func (orderingCodec) Count() uint64 { return 3 }

func (orderingCodec) ToIndex(v int) (uint64, error) {
	if v < -1 || v > 1 {
		return 0, fmt.Errorf("%w: ordering %d", ErrValueNotFound, v)
	}
	return uint64(v + 1), nil
}

func (orderingCodec) FromIndex(i uint64) int {
	checkIndex(i, 3)
	return int(i) - 1
}

// Codecs for basic types, consistent with the enumerables of the same name in
// package exhaust.
var (
	Bool     Codec[bool]     = boolCodec{}
	Unit     Codec[struct{}] = unitCodec{}
	Ordering Codec[int]      = orderingCodec{}
)

// --- Integer ranges --------------------------------------------------------

type intRange[I constraints.Integer] struct {
	lo, hi I
	n      uint64
}

// IntRange creates a codec for the integers lo…hi, inclusive. If lo > hi,
// the codec is empty. A range covering all 2^64 values of a 64-bit type is
// too large to index.
func IntRange[I constraints.Integer](lo, hi I) (Codec[I], error) {
	if lo > hi {
		return &intRange[I]{lo: lo, hi: hi}, nil
	}
	// Conversion to uint64 sign-extends, the difference is exact modulo 2^64.
	n := uint64(hi) - uint64(lo) + 1
	if n == 0 {
		tracer().Errorf("integer range %d…%d cannot be indexed", lo, hi)
		return nil, fmt.Errorf("%w: integer range %d…%d", ErrTooLarge, lo, hi)
	}
	return &intRange[I]{lo: lo, hi: hi, n: n}, nil
}

func (r *intRange[I]) Count() uint64 {
	return r.n
}

func (r *intRange[I]) ToIndex(v I) (uint64, error) {
	if r.n == 0 || v < r.lo || v > r.hi {
		return 0, fmt.Errorf("%w: %d not in %d…%d", ErrValueNotFound, v, r.lo, r.hi)
	}
	return uint64(v) - uint64(r.lo), nil
}

func (r *intRange[I]) FromIndex(i uint64) I {
	checkIndex(i, r.n)
	return r.lo + I(i) // wraps around for signed types, result is in range
}

// Codecs for every value of small fixed-width integer types.
var (
	Int8   = Must(IntRange[int8](math.MinInt8, math.MaxInt8))
	Uint8  = Must(IntRange[uint8](0, math.MaxUint8))
	Int16  = Must(IntRange[int16](math.MinInt16, math.MaxInt16))
	Uint16 = Must(IntRange[uint16](0, math.MaxUint16))
	Int32  = Must(IntRange[int32](math.MinInt32, math.MaxInt32))
	Uint32 = Must(IntRange[uint32](0, math.MaxUint32))
)

// --- Explicit values -------------------------------------------------------

type valuesCodec[T comparable] struct {
	values []T
	pos    map[T]uint64
}

// Values creates a codec for exactly the given values, in the given order.
// Duplicate values are rejected with ErrInvalidCodec.
func Values[T comparable](vs ...T) (Codec[T], error) {
	c := &valuesCodec[T]{
		values: make([]T, len(vs)),
		pos:    make(map[T]uint64, len(vs)),
	}
	for i, v := range vs {
		if _, dup := c.pos[v]; dup {
			return nil, fmt.Errorf("%w: duplicate value %v", ErrInvalidCodec, v)
		}
		c.values[i] = v
		c.pos[v] = uint64(i)
	}
	return c, nil
}

func (c *valuesCodec[T]) Count() uint64 {
	return uint64(len(c.values))
}

func (c *valuesCodec[T]) ToIndex(v T) (uint64, error) {
	i, ok := c.pos[v]
	if !ok {
		return 0, fmt.Errorf("%w: %v", ErrValueNotFound, v)
	}
	return i, nil
}

func (c *valuesCodec[T]) FromIndex(i uint64) T {
	checkIndex(i, c.Count())
	return c.values[i]
}
