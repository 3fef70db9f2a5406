package exhaust

// Carry performs a carry between two adjacent digits of an odometer.
//
// If low is exhausted, it is restarted with a fresh sequence from fresh, and
// high is advanced by one item. Carry reports whether this happened; if low
// still has items, nothing is changed.
func Carry[H, L any](high *Peekable[H], low *Peekable[L], fresh func() Sequence[L]) bool {
	if _, ok := low.Peek(); ok {
		return false
	}
	low.reset(fresh())
	high.Next()
	return true
}
