package exhaust

// SumFactory is the factory of a tagged union: the index of the variant, in
// declaration order, and the factories of its fields.
type SumFactory struct {
	Variant int
	Fields  []Erased
}

// SumSeq enumerates a tagged union by enumerating the product of each
// variant's fields in turn. Variants without fields contribute exactly one
// item, variants with an empty field type contribute none.
type SumSeq struct {
	variants [][]Lane
	active   int         // index of the current variant; len(variants) when done
	current  *ProductSeq // product state of the active variant, nil when done
}

// NewSumSeq creates a sum sequence over variants, given as the lanes of each
// variant's fields.
func NewSumSeq(variants ...[]Lane) *SumSeq {
	s := &SumSeq{variants: variants}
	if len(variants) > 0 {
		s.current = Product(variants[0]...)
	}
	return s
}

// Next returns the next variant factory.
func (s *SumSeq) Next() (SumFactory, bool) {
	for s.active < len(s.variants) {
		if fields, ok := s.current.Next(); ok {
			return SumFactory{Variant: s.active, Fields: fields}, true
		}
		s.active++
		if s.active < len(s.variants) {
			s.current = Product(s.variants[s.active]...)
			T().Debugf("sum: switching to variant %d", s.active)
		} else {
			s.current = nil
			T().Debugf("sum over %d variants exhausted", len(s.variants))
		}
	}
	return SumFactory{}, false
}

// Clone returns an independent copy of s.
func (s *SumSeq) Clone() Sequence[SumFactory] {
	c := &SumSeq{variants: s.variants, active: s.active}
	if s.current != nil {
		c.current = s.current.Clone().(*ProductSeq)
	}
	return c
}
