/*
Package textpos enumerates texts together with every valid cursor position
inside them.

Texts are drawn from a small alphabet up to a maximum length. For each text,
the set of valid positions depends on the text itself: a cursor may sit on
every rune boundary, only on grapheme cluster boundaries (UAX #29), or only
on line break opportunities (UAX #14). This makes (text, position) a
dependent pair, enumerated with exhaust.FlatZipMap.

Exhaustive (text, position) pairs are useful to test editors, cursors and
text segmenters against every small input.

_________________________________________________________________________

# BSD 3-Clause License

# Copyright (c) 2020–21, Norbert Pillmayer

Please refer to the LICENSE file for details.
*/
package textpos

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'exhaust'
func tracer() tracing.Trace {
	return tracing.Select("exhaust")
}
