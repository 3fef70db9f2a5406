package exhaust

import "slices"

// Erased marks type-erased factories. Products and sums combine fields of
// different types and carry their factories as Erased; typed wrappers recover
// the concrete types at the FromFactory boundary.
type Erased = any

// Sequence is a lazy producer of factories.
//
// Next returns the next factory, or ok=false at the end. Sequences are fused:
// once Next has reported the end, it keeps doing so.
//
// Clone returns an independent copy which continues with the same items in the
// same order. Advancing the copy does not affect the original.
type Sequence[F any] interface {
	Next() (f F, ok bool)
	Clone() Sequence[F]
}

// Enumerable describes a type T whose values can be exhaustively enumerated.
//
// Factories returns a fresh sequence over all factories, each call starting
// from the beginning. FromFactory converts a factory into a value; it must not
// fail for any factory produced by Factories.
type Enumerable[T, F any] interface {
	Factories() Sequence[F]
	FromFactory(F) T
}

type enumerable[T, F any] struct {
	factories func() Sequence[F]
	build     func(F) T
}

func (e enumerable[T, F]) Factories() Sequence[F] {
	return e.factories()
}

func (e enumerable[T, F]) FromFactory(f F) T {
	return e.build(f)
}

// New creates an Enumerable from a sequence constructor and a build function.
func New[T, F any](factories func() Sequence[F], build func(F) T) Enumerable[T, F] {
	assert(factories != nil && build != nil, "exhaust.New called with nil function")
	return enumerable[T, F]{factories: factories, build: build}
}

// Self creates an Enumerable whose factories are the values themselves.
func Self[T any](factories func() Sequence[T]) Enumerable[T, T] {
	return New(factories, identity[T])
}

func identity[T any](v T) T {
	return v
}

// As converts a type-erased factory or value back to T. A nil interface value
// converts to the zero value of T.
func As[T any](v Erased) T {
	if v == nil {
		var zero T
		return zero
	}
	return v.(T)
}

// --- Basic sequences -------------------------------------------------------

type sliceSeq[F any] struct {
	items []F
	pos   int
}

// FromSlice returns a sequence over a copy of items.
func FromSlice[F any](items ...F) Sequence[F] {
	return &sliceSeq[F]{items: slices.Clone(items)}
}

// sliceOf shares items with the caller, who must not modify them.
func sliceOf[F any](items []F) Sequence[F] {
	return &sliceSeq[F]{items: items}
}

func (s *sliceSeq[F]) Next() (F, bool) {
	if s.pos >= len(s.items) {
		var zero F
		return zero, false
	}
	f := s.items[s.pos]
	s.pos++
	return f, true
}

func (s *sliceSeq[F]) Clone() Sequence[F] {
	c := *s
	return &c
}

// Empty returns a sequence without any items.
func Empty[F any]() Sequence[F] {
	return &sliceSeq[F]{}
}

type transformSeq[F, G any] struct {
	src Sequence[F]
	fn  func(F) G
}

// Transform returns a sequence which applies fn to every item of src.
func Transform[F, G any](src Sequence[F], fn func(F) G) Sequence[G] {
	return &transformSeq[F, G]{src: src, fn: fn}
}

func (t *transformSeq[F, G]) Next() (G, bool) {
	f, ok := t.src.Next()
	if !ok {
		var zero G
		return zero, false
	}
	return t.fn(f), true
}

func (t *transformSeq[F, G]) Clone() Sequence[G] {
	return &transformSeq[F, G]{src: t.src.Clone(), fn: t.fn}
}

// Erase turns a typed sequence into a sequence of type-erased factories.
func Erase[F any](src Sequence[F]) Sequence[Erased] {
	return Transform(src, func(f F) Erased { return f })
}

type filterSeq[F any] struct {
	src  Sequence[F]
	keep func(F) bool
}

// Filter returns a sequence of all items of src for which keep returns true.
func Filter[F any](src Sequence[F], keep func(F) bool) Sequence[F] {
	return &filterSeq[F]{src: src, keep: keep}
}

func (s *filterSeq[F]) Next() (F, bool) {
	for {
		f, ok := s.src.Next()
		if !ok || s.keep(f) {
			return f, ok
		}
	}
}

func (s *filterSeq[F]) Clone() Sequence[F] {
	return &filterSeq[F]{src: s.src.Clone(), keep: s.keep}
}

type funcSeq[F any] struct {
	next func() (F, bool)
	done bool
}

// SeqFunc adapts a producer function to a Sequence. The result is fused even
// if next is not. It cannot be cloned: Clone panics with ErrNotClonable.
func SeqFunc[F any](next func() (F, bool)) Sequence[F] {
	return &funcSeq[F]{next: next}
}

func (s *funcSeq[F]) Next() (F, bool) {
	var zero F
	if s.done {
		return zero, false
	}
	f, ok := s.next()
	if !ok {
		s.done = true
		return zero, false
	}
	return f, true
}

func (s *funcSeq[F]) Clone() Sequence[F] {
	panic(ErrNotClonable)
}
