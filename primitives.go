package exhaust

import (
	"math"
	"unicode"
	"unicode/utf8"

	"golang.org/x/exp/constraints"
)

// Void stands in for an uninhabited type: Never enumerates no values of it,
// so no enumeration ever produces one.
type Void struct {
	_ [0]func() // not comparable
}

var (
	// Unit enumerates the single value struct{}{}.
	Unit = Self(func() Sequence[struct{}] { return FromSlice(struct{}{}) })

	// Never enumerates nothing. Products containing it are empty, sum
	// variants containing it are skipped.
	Never = New(Empty[Void], func(Void) Void {
		panic("exhaust.Never: value of uninhabited type requested")
	})

	// Bool enumerates false, then true.
	Bool = Self(func() Sequence[bool] { return sliceOf(bools) })

	// Ordering enumerates the results of a three-way comparison: -1, 0, +1.
	Ordering = Self(func() Sequence[int] { return sliceOf(orderings) })
)

var (
	bools     = []bool{false, true}
	orderings = []int{-1, 0, +1}
)

// --- Integers --------------------------------------------------------------

type rangeSeq[I constraints.Integer] struct {
	cur, hi I
	done    bool
}

func (r *rangeSeq[I]) Next() (I, bool) {
	if r.done {
		return 0, false
	}
	i := r.cur
	if r.cur == r.hi {
		r.done = true // do not step beyond hi, it may be the type's maximum
	} else {
		r.cur++
	}
	return i, true
}

func (r *rangeSeq[I]) Clone() Sequence[I] {
	c := *r
	return &c
}

// Range enumerates the integers lo…hi (inclusive) in ascending order.
// If lo > hi, the range is empty.
func Range[I constraints.Integer](lo, hi I) Enumerable[I, I] {
	return Self(func() Sequence[I] {
		return &rangeSeq[I]{cur: lo, hi: hi, done: lo > hi}
	})
}

// Enumerables for every value of small fixed-width integer types.
var (
	Int8   = Range[int8](math.MinInt8, math.MaxInt8)
	Uint8  = Range[uint8](0, math.MaxUint8)
	Int16  = Range[int16](math.MinInt16, math.MaxInt16)
	Uint16 = Range[uint16](0, math.MaxUint16)
	Int32  = Range[int32](math.MinInt32, math.MaxInt32)
	Uint32 = Range[uint32](0, math.MaxUint32)
)

// --- Runes and floats ------------------------------------------------------

// Runes enumerates every Unicode scalar value in ascending order. Surrogate
// code points are not valid runes and are left out.
var Runes = Self(func() Sequence[rune] {
	return Filter(Range[rune](0, unicode.MaxRune).Factories(), utf8.ValidRune)
})

// Float32 enumerates every float32 bit pattern, including infinities, both
// zeros and every NaN payload. Factories are the raw bits.
var Float32 = New(Uint32.Factories, math.Float32frombits)

// --- Explicit values -------------------------------------------------------

// ValuesOf enumerates exactly vs, in the given order. It is meant for
// enum-like types with a small fixed set of values. vs should not contain
// duplicates.
func ValuesOf[T any](vs ...T) Enumerable[T, T] {
	items := make([]T, len(vs))
	copy(items, vs)
	return Self(func() Sequence[T] { return sliceOf(items) })
}

// NonZero enumerates every value of e except the zero value of T.
func NonZero[T comparable, F any](e Enumerable[T, F]) Enumerable[T, F] {
	var zero T
	return New(func() Sequence[F] {
		return Filter(e.Factories(), func(f F) bool {
			return e.FromFactory(f) != zero
		})
	}, e.FromFactory)
}
