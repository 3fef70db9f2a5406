/*
Package exhaust enumerates every value of a finite composite type, lazily and
without duplicates.

Exhaust

Clients ask for "every value of type T" and receive a pull-based, restartable,
finite sequence. Composite types are enumerated by composing the enumerations
of their parts: records and tuples become products, tagged unions become sums,
sets become power-sets and maps become key-sets paired with value tuples.

Every enumerable type is described by an Enumerable[T, F]. F is the factory
type: the datum actually produced by iteration, from which a T is built by
FromFactory. Factories are plain Go values and are duplicated by assignment,
which lets combinators replay sub-enumerations (e.g. the slower fields of a
product) even if T itself must not be copied.

	for v := range exhaust.Values(exhaust.ArrayOf(exhaust.Bool, 3)) {
	    fmt.Println(v)  // [false false false], [false false true], …
	}

Ordering

Products behave like an odometer: the last field varies fastest and the first
field slowest. If every field's own enumeration is ascending, the product is
ascending in lexicographic order over its fields. Sums enumerate their
variants in declaration order. Power-sets enumerate subsets by size, then by
element position (see PowerSet).

Concurrency

Sequences are single-consumer values without internal synchronization. Work is
done only when Next is called, and each call does a bounded amount of work.
Abandoning a sequence is all that is needed to cancel an enumeration. A clone
of a sequence continues independently in the same order.

_________________________________________________________________________

BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

Please refer to the LICENSE file for details.
*/
package exhaust

import (
	"github.com/npillmayer/schuko/tracing"
)

// T traces to the tracer with key 'exhaust'.
func T() tracing.Trace {
	return tracing.Select("exhaust")
}

// ExhaustError is an error type for the exhaust module.
type ExhaustError string

func (e ExhaustError) Error() string {
	return string(e)
}

// ErrNotClonable is flagged when a sequence cannot be duplicated, e.g., because
// it wraps a plain producer function.
const ErrNotClonable = ExhaustError("sequence cannot be cloned")

// ErrIllegalArguments is flagged whenever function parameters are invalid.
const ErrIllegalArguments = ExhaustError("illegal arguments")

func assert(condition bool, msg string) {
	if !condition {
		panic(msg)
	}
}
