package index

import (
	"fmt"

	"github.com/npillmayer/exhaust"
)

// --- Option and Result -----------------------------------------------------

type optionCodec[T any] struct {
	inner Codec[T]
	n     uint64
}

// Option creates a codec for exhaust.Option[T]: None is index 0, Some(v) is
// the index of v plus one.
func Option[T any](inner Codec[T]) (Codec[exhaust.Option[T]], error) {
	n, err := add(inner.Count(), 1)
	if err != nil {
		tracer().Errorf("option codec: %v", err)
		return nil, err
	}
	return &optionCodec[T]{inner: inner, n: n}, nil
}

func (c *optionCodec[T]) Count() uint64 {
	return c.n
}

func (c *optionCodec[T]) ToIndex(o exhaust.Option[T]) (uint64, error) {
	v, ok := o.Get()
	if !ok {
		return 0, nil
	}
	i, err := c.inner.ToIndex(v)
	if err != nil {
		return 0, err
	}
	return i + 1, nil
}

func (c *optionCodec[T]) FromIndex(i uint64) exhaust.Option[T] {
	checkIndex(i, c.n)
	if i == 0 {
		return exhaust.None[T]()
	}
	return exhaust.Some(c.inner.FromIndex(i - 1))
}

type resultCodec[T, E any] struct {
	ok  Codec[T]
	err Codec[E]
	n   uint64
}

// Result creates a codec for exhaust.Result[T, E]: all Ok values first, then
// all Err values.
func Result[T, E any](ok Codec[T], err Codec[E]) (Codec[exhaust.Result[T, E]], error) {
	n, e := add(ok.Count(), err.Count())
	if e != nil {
		tracer().Errorf("result codec: %v", e)
		return nil, e
	}
	return &resultCodec[T, E]{ok: ok, err: err, n: n}, nil
}

func (c *resultCodec[T, E]) Count() uint64 {
	return c.n
}

func (c *resultCodec[T, E]) ToIndex(r exhaust.Result[T, E]) (uint64, error) {
	if r.IsOk() {
		return c.ok.ToIndex(r.Value())
	}
	i, err := c.err.ToIndex(r.Err())
	if err != nil {
		return 0, err
	}
	return c.ok.Count() + i, nil
}

func (c *resultCodec[T, E]) FromIndex(i uint64) exhaust.Result[T, E] {
	checkIndex(i, c.n)
	if k := c.ok.Count(); i >= k {
		return exhaust.Err[T](c.err.FromIndex(i - k))
	}
	return exhaust.Ok[T, E](c.ok.FromIndex(i))
}

// --- Pairs and arrays ------------------------------------------------------

type pairCodec[A, B any] struct {
	a Codec[A]
	b Codec[B]
	n uint64
}

// Pair creates a codec for exhaust.Pair[A, B]. The index is
// index(First) × count(B) + index(Second).
func Pair[A, B any](a Codec[A], b Codec[B]) (Codec[exhaust.Pair[A, B]], error) {
	n, err := mul(a.Count(), b.Count())
	if err != nil {
		tracer().Errorf("pair codec: %v", err)
		return nil, err
	}
	return &pairCodec[A, B]{a: a, b: b, n: n}, nil
}

func (c *pairCodec[A, B]) Count() uint64 {
	return c.n
}

func (c *pairCodec[A, B]) ToIndex(p exhaust.Pair[A, B]) (uint64, error) {
	ia, err := c.a.ToIndex(p.First)
	if err != nil {
		return 0, err
	}
	ib, err := c.b.ToIndex(p.Second)
	if err != nil {
		return 0, err
	}
	return ia*c.b.Count() + ib, nil
}

func (c *pairCodec[A, B]) FromIndex(i uint64) exhaust.Pair[A, B] {
	checkIndex(i, c.n)
	nb := c.b.Count()
	return exhaust.Pair[A, B]{
		First:  c.a.FromIndex(i / nb),
		Second: c.b.FromIndex(i % nb),
	}
}

type arrayCodec[T any] struct {
	elem  Codec[T]
	size  int
	radix uint64
	n     uint64
}

// Array creates a codec for slices of exactly size elements. The index is a
// mixed-radix number with base count(elem), first element most significant.
// Array fails with ErrTooLarge if count(elem)^size does not fit into a uint64.
func Array[T any](elem Codec[T], size int) (Codec[[]T], error) {
	if size < 0 {
		return nil, fmt.Errorf("%w: negative array size %d", ErrInvalidCodec, size)
	}
	radix := elem.Count()
	n, err := pow(radix, size)
	if err != nil {
		tracer().Errorf("array codec of size %d: %v", size, err)
		return nil, err
	}
	return &arrayCodec[T]{elem: elem, size: size, radix: radix, n: n}, nil
}

func (c *arrayCodec[T]) Count() uint64 {
	return c.n
}

func (c *arrayCodec[T]) ToIndex(a []T) (uint64, error) {
	if len(a) != c.size {
		return 0, fmt.Errorf("%w: array of length %d, expected %d", ErrValueNotFound, len(a), c.size)
	}
	var index uint64
	for _, v := range a {
		i, err := c.elem.ToIndex(v)
		if err != nil {
			return 0, err
		}
		index = index*c.radix + i
	}
	return index, nil
}

func (c *arrayCodec[T]) FromIndex(i uint64) []T {
	checkIndex(i, c.n)
	a := make([]T, c.size)
	for k := c.size - 1; k >= 0; k-- {
		a[k] = c.elem.FromIndex(i % c.radix)
		i /= c.radix
	}
	return a
}
