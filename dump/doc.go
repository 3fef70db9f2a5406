/*
Package dump outputs enumerations for humans: as a numbered listing on a
console, or as an HTML table.

Output is driven by Output, which pulls values from an enumeration and hands
them to a Format. Enumerations may be huge, so Config.Limit restricts the
number of values listed; the total is only reported if the enumeration ended
within the limit.

Consoles with fixed-width fonts need to know the display width of a value's
text, which is not the number of bytes or runes for East Asian wide
characters or combining marks. Package dump measures values with UAX #11
widths over grapheme clusters and truncates them to the configured line
width.

_________________________________________________________________________

# BSD 3-Clause License

# Copyright (c) 2020–21, Norbert Pillmayer

Please refer to the LICENSE file for details.
*/
package dump

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'exhaust'
func tracer() tracing.Trace {
	return tracing.Select("exhaust")
}
