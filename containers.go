package exhaust

import "sync"

// --- Records and unions ----------------------------------------------------

// Field describes one field of a record or of a union variant: how to
// enumerate its factories and how to build its value.
type Field struct {
	lane  Lane
	build func(Erased) Erased
}

// FieldOf creates a field from an enumerable field type.
func FieldOf[T, F any](e Enumerable[T, F]) Field {
	return Field{
		lane:  LaneOf(e),
		build: func(f Erased) Erased { return e.FromFactory(As[F](f)) },
	}
}

func lanes(fields []Field) []Lane {
	l := make([]Lane, len(fields))
	for i, f := range fields {
		l[i] = f.lane
	}
	return l
}

func buildFields(fields []Field, factories []Erased) []Erased {
	assert(len(fields) == len(factories), "number of factories does not match fields")
	values := make([]Erased, len(fields))
	for i, f := range fields {
		values[i] = f.build(factories[i])
	}
	return values
}

// Record enumerates a product type with the given fields, in field order.
// The last field varies fastest. ctor receives the field values in
// declaration order, type-erased.
//
//	type point struct{ x int8; on bool }
//	points := exhaust.Record(func(v []exhaust.Erased) point {
//	    return point{exhaust.As[int8](v[0]), exhaust.As[bool](v[1])}
//	}, exhaust.FieldOf(exhaust.Int8), exhaust.FieldOf(exhaust.Bool))
func Record[T any](ctor func(values []Erased) T, fields ...Field) Enumerable[T, []Erased] {
	fields = append([]Field(nil), fields...)
	l := lanes(fields)
	return New(func() Sequence[[]Erased] {
		return Product(l...)
	}, func(f []Erased) T {
		return ctor(buildFields(fields, f))
	})
}

// Variant describes one alternative of a union by its fields.
type Variant struct {
	fields []Field
}

// VariantOf creates a variant. A variant without fields stands for exactly
// one value.
func VariantOf(fields ...Field) Variant {
	return Variant{fields: append([]Field(nil), fields...)}
}

// Union enumerates a sum type: all values of the first variant, then all
// values of the second, and so on. ctor receives the variant's index and its
// field values.
func Union[T any](ctor func(variant int, values []Erased) T, variants ...Variant) Enumerable[T, SumFactory] {
	variants = append([]Variant(nil), variants...)
	l := make([][]Lane, len(variants))
	for i, v := range variants {
		l[i] = lanes(v.fields)
	}
	return New(func() Sequence[SumFactory] {
		return NewSumSeq(l...)
	}, func(f SumFactory) T {
		return ctor(f.Variant, buildFields(variants[f.Variant].fields, f.Fields))
	})
}

// --- Option ----------------------------------------------------------------

// Option holds either a value or nothing.
type Option[T any] struct {
	value T
	ok    bool
}

// Some creates an option holding v.
func Some[T any](v T) Option[T] {
	return Option[T]{value: v, ok: true}
}

// None creates an empty option.
func None[T any]() Option[T] {
	return Option[T]{}
}

// Get returns the value held, if any.
func (o Option[T]) Get() (T, bool) {
	return o.value, o.ok
}

// IsSome is true if o holds a value.
func (o Option[T]) IsSome() bool {
	return o.ok
}

// OptionOf enumerates None, then Some(v) for every v of e.
func OptionOf[T, F any](e Enumerable[T, F]) Enumerable[Option[T], SumFactory] {
	return Union(func(variant int, v []Erased) Option[T] {
		if variant == 0 {
			return None[T]()
		}
		return Some(As[T](v[0]))
	}, VariantOf(), VariantOf(FieldOf(e)))
}

// --- Result ----------------------------------------------------------------

// Result holds either a success value or an error value.
type Result[T, E any] struct {
	value T
	err   E
	ok    bool
}

// Ok creates a successful result.
func Ok[T, E any](v T) Result[T, E] {
	return Result[T, E]{value: v, ok: true}
}

// Err creates a failed result.
func Err[T, E any](e E) Result[T, E] {
	return Result[T, E]{err: e}
}

// IsOk is true for a successful result.
func (r Result[T, E]) IsOk() bool {
	return r.ok
}

// Value returns the success value, which is the zero value for failed results.
func (r Result[T, E]) Value() T {
	return r.value
}

// Err returns the error value, which is the zero value for successful results.
func (r Result[T, E]) Err() E {
	return r.err
}

// ResultOf enumerates Ok(v) for every v of ok, then Err(e) for every e of err.
func ResultOf[T, FT, E, FE any](ok Enumerable[T, FT], err Enumerable[E, FE]) Enumerable[Result[T, E], SumFactory] {
	return Union(func(variant int, v []Erased) Result[T, E] {
		if variant == 0 {
			return Ok[T, E](As[T](v[0]))
		}
		return Err[T](As[E](v[0]))
	}, VariantOf(FieldOf(ok)), VariantOf(FieldOf(err)))
}

// --- Tuples ----------------------------------------------------------------

// Pair is a 2-tuple.
type Pair[A, B any] struct {
	First  A
	Second B
}

// PairOf enumerates the product of a and b; b varies fastest.
func PairOf[A, FA, B, FB any](a Enumerable[A, FA], b Enumerable[B, FB]) Enumerable[Pair[A, B], []Erased] {
	return Record(func(v []Erased) Pair[A, B] {
		return Pair[A, B]{As[A](v[0]), As[B](v[1])}
	}, FieldOf(a), FieldOf(b))
}

// Triple is a 3-tuple.
type Triple[A, B, C any] struct {
	First  A
	Second B
	Third  C
}

// TripleOf enumerates the product of a, b and c; c varies fastest.
func TripleOf[A, FA, B, FB, C, FC any](a Enumerable[A, FA], b Enumerable[B, FB],
	c Enumerable[C, FC]) Enumerable[Triple[A, B, C], []Erased] {
	//
	return Record(func(v []Erased) Triple[A, B, C] {
		return Triple[A, B, C]{As[A](v[0]), As[B](v[1]), As[C](v[2])}
	}, FieldOf(a), FieldOf(b), FieldOf(c))
}

// --- Collections -----------------------------------------------------------

// ArrayOf enumerates every slice of length n over e, last index fastest.
// For n == 0 there is exactly one value, the empty slice. ArrayOf panics if n
// is negative.
func ArrayOf[T, F any](e Enumerable[T, F], n int) Enumerable[[]T, []F] {
	if n < 0 {
		panic(ErrIllegalArguments)
	}
	return New(func() Sequence[[]F] {
		return NewArraySeq(n, e.Factories)
	}, func(fs []F) []T {
		a := make([]T, len(fs))
		for i, f := range fs {
			a[i] = e.FromFactory(f)
		}
		return a
	})
}

// SetOf enumerates every finite set of values of e, in the order of PowerSet.
// Factories are the subsets' element factories in enumeration order.
func SetOf[T comparable, F any](e Enumerable[T, F]) Enumerable[map[T]struct{}, []F] {
	return New(func() Sequence[[]F] {
		return PowerSet(e.Factories())
	}, func(fs []F) map[T]struct{} {
		set := make(map[T]struct{}, len(fs))
		for _, f := range fs {
			set[e.FromFactory(f)] = struct{}{}
		}
		return set
	})
}

// MapOf enumerates every finite map from keys of k to values of v: for every
// set of keys, every assignment of values to them.
func MapOf[K comparable, FK, V, FV any](k Enumerable[K, FK], v Enumerable[V, FV]) Enumerable[map[K]V, []Entry[FK, FV]] {
	return New(func() Sequence[[]Entry[FK, FV]] {
		return NewMapSeq[FK, FV](PowerSet(k.Factories()), v.Factories)
	}, func(entries []Entry[FK, FV]) map[K]V {
		m := make(map[K]V, len(entries))
		for _, en := range entries {
			m[k.FromFactory(en.Key)] = v.FromFactory(en.Value)
		}
		return m
	})
}

// --- Wrappers --------------------------------------------------------------

// Wrap enumerates the values of e, each passed through fn. It is meant for
// newtypes and boxes, where fn is a bijection.
func Wrap[T, U, F any](e Enumerable[T, F], fn func(T) U) Enumerable[U, F] {
	return New(e.Factories, func(f F) U {
		return fn(e.FromFactory(f))
	})
}

// PointerTo enumerates a freshly allocated pointer for every value of e.
func PointerTo[T, F any](e Enumerable[T, F]) Enumerable[*T, F] {
	return Wrap(e, func(v T) *T { return &v })
}

// Guarded is a value protected by a mutex. It must not be copied.
type Guarded[T any] struct {
	mu sync.Mutex
	v  T
}

// Load returns a copy of the guarded value.
func (g *Guarded[T]) Load() T {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.v
}

// Update calls fn with the guarded value locked.
func (g *Guarded[T]) Update(fn func(*T)) {
	g.mu.Lock()
	defer g.mu.Unlock()
	fn(&g.v)
}

// MutexGuarded enumerates a new *Guarded for every value of e. As Guarded
// cannot be copied, enumeration relies on the factories of e for replays.
func MutexGuarded[T, F any](e Enumerable[T, F]) Enumerable[*Guarded[T], F] {
	return Wrap(e, func(v T) *Guarded[T] { return &Guarded[T]{v: v} })
}

// --- Cursors ---------------------------------------------------------------

// Cursor is a position within a buffer, 0 ≤ Pos ≤ length of Buffer.
type Cursor[B any] struct {
	Buffer B
	Pos    int
}

// CursorFactory is the factory of a Cursor.
type CursorFactory[F any] struct {
	Buffer F
	Pos    int
}

// CursorOf enumerates every buffer of buf together with every position from 0
// to length(buffer), inclusive. Positions vary fastest.
func CursorOf[B, F any](buf Enumerable[B, F], length func(B) int) Enumerable[Cursor[B], CursorFactory[F]] {
	return New(func() Sequence[CursorFactory[F]] {
		return FlatZipMap(buf.Factories(), func(f F) Sequence[int] {
			return Range(0, length(buf.FromFactory(f))).Factories()
		}, func(f F, pos int) CursorFactory[F] {
			return CursorFactory[F]{Buffer: f, Pos: pos}
		})
	}, func(cf CursorFactory[F]) Cursor[B] {
		return Cursor[B]{Buffer: buf.FromFactory(cf.Buffer), Pos: cf.Pos}
	})
}
