/*
Package index maps values of small enumerable types to and from a dense range
of integers.

A Codec[T] knows the number of values of T without running an enumeration,
and converts between a value and its position in the canonical enumeration
order of package exhaust. Codecs compose like enumerables: the index of a pair
or of a fixed-size array is a mixed-radix number over the indices of its
parts, most significant part first.

Cardinalities are computed with overflow checks when a codec is constructed.
A type with more values than fit into a uint64 is rejected with ErrTooLarge;
package level codecs are usually created with Must, which turns this into a
panic at initialization time.

_________________________________________________________________________

# BSD 3-Clause License

# Copyright (c) 2020–21, Norbert Pillmayer

Please refer to the LICENSE file for details.
*/
package index

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'exhaust'
func tracer() tracing.Trace {
	return tracing.Select("exhaust")
}
