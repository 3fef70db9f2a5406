package exhaust

import "iter"

// Values returns every value of e as a range-over-func iterator. Each call to
// the iterator starts a fresh enumeration.
func Values[T, F any](e Enumerable[T, F]) iter.Seq[T] {
	return func(yield func(T) bool) {
		seq := e.Factories()
		for {
			f, ok := seq.Next()
			if !ok || !yield(e.FromFactory(f)) {
				return
			}
		}
	}
}

// Indexed is like Values, with every value paired with its position in the
// enumeration.
func Indexed[T, F any](e Enumerable[T, F]) iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		i := 0
		for v := range Values(e) {
			if !yield(i, v) {
				return
			}
			i++
		}
	}
}

// All returns the remaining items of seq as an iterator. Ranging over it
// consumes seq.
func All[F any](seq Sequence[F]) iter.Seq[F] {
	return func(yield func(F) bool) {
		for {
			f, ok := seq.Next()
			if !ok || !yield(f) {
				return
			}
		}
	}
}

// Collect returns the first limit values of e, or all of them if limit < 0.
func Collect[T, F any](e Enumerable[T, F], limit int) []T {
	var values []T
	if limit == 0 {
		return values
	}
	for v := range Values(e) {
		values = append(values, v)
		if limit > 0 && len(values) == limit {
			break
		}
	}
	return values
}

// Count runs the enumeration of e to its end and returns the number of
// values. It never builds a value.
func Count[T, F any](e Enumerable[T, F]) int {
	n := 0
	for range All(e.Factories()) {
		n++
	}
	return n
}

// Search lazily yields every value of e for which pred holds. This is the
// brute-force way to find witnesses or counterexamples.
func Search[T, F any](e Enumerable[T, F], pred func(T) bool) iter.Seq[T] {
	return func(yield func(T) bool) {
		for v := range Values(e) {
			if pred(v) && !yield(v) {
				return
			}
		}
	}
}
