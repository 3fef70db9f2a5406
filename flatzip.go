package exhaust

// FlatZipMapSeq enumerates dependent pairs: for every outer item, every item
// of an inner sequence built from it.
type FlatZipMapSeq[O, I, R any] struct {
	outer   Sequence[O]
	inner   func(O) Sequence[I]
	combine func(O, I) R
	cur     O
	curSeq  Sequence[I] // inner sequence of cur, nil if there is none
}

// FlatZipMap creates a sequence over combine(o, i) for every item o of outer
// and every item i of inner(o), outer-major. Outer items with an empty inner
// sequence are skipped.
func FlatZipMap[O, I, R any](outer Sequence[O], inner func(O) Sequence[I],
	combine func(O, I) R) *FlatZipMapSeq[O, I, R] {
	//
	return &FlatZipMapSeq[O, I, R]{
		outer:   outer,
		inner:   inner,
		combine: combine,
	}
}

// Next returns the next combined item.
func (s *FlatZipMapSeq[O, I, R]) Next() (R, bool) {
	for {
		if s.curSeq != nil {
			if i, ok := s.curSeq.Next(); ok {
				return s.combine(s.cur, i), true
			}
			var zero O
			s.cur, s.curSeq = zero, nil
		}
		o, ok := s.outer.Next()
		if !ok {
			var zero R
			return zero, false
		}
		s.cur, s.curSeq = o, s.inner(o)
	}
}

// Clone returns an independent copy of s.
func (s *FlatZipMapSeq[O, I, R]) Clone() Sequence[R] {
	c := *s
	c.outer = s.outer.Clone()
	if s.curSeq != nil {
		c.curSeq = s.curSeq.Clone()
	}
	return &c
}
