package exhaust

// odometer enumerates the product of n digit sequences. Digit n-1 is the
// fastest-varying one, digit 0 the slowest.
//
// Invariant: either every digit has a next item, or the odometer is done.
// Digit 0 running out is the only way to reach the end once the first item
// has been produced, and it stays exhausted.
type odometer[F any] struct {
	digits   []*Peekable[F]
	fresh    func(i int) Sequence[F]
	doneZero bool // for n == 0: the single empty tuple has been produced
}

func newOdometer[F any](n int, fresh func(i int) Sequence[F]) *odometer[F] {
	assert(n >= 0, "odometer with negative number of digits")
	o := &odometer[F]{
		digits: make([]*Peekable[F], n),
		fresh:  fresh,
	}
	for i := range o.digits {
		o.digits[i] = NewPeekable(fresh(i))
	}
	return o
}

func (o *odometer[F]) next() ([]F, bool) {
	n := len(o.digits)
	if n == 0 {
		if o.doneZero {
			return nil, false
		}
		o.doneZero = true
		return []F{}, true
	}
	for _, d := range o.digits {
		if d.Exhausted() {
			return nil, false
		}
	}
	item := make([]F, n)
	for i := 0; i < n-1; i++ {
		item[i], _ = o.digits[i].Peek()
	}
	item[n-1], _ = o.digits[n-1].Next()
	for i := n - 1; i > 0; i-- {
		if !Carry(o.digits[i-1], o.digits[i], func() Sequence[F] { return o.fresh(i) }) {
			break
		}
		if i == 1 && o.digits[0].Exhausted() {
			T().Debugf("odometer with %d digits rolled over", n)
		}
	}
	return item, true
}

func (o *odometer[F]) clone() *odometer[F] {
	c := &odometer[F]{
		digits:   make([]*Peekable[F], len(o.digits)),
		fresh:    o.fresh,
		doneZero: o.doneZero,
	}
	for i, d := range o.digits {
		c.digits[i] = d.clone()
	}
	return c
}

// --- Products of heterogeneous fields --------------------------------------

// Lane creates a fresh sequence of (type-erased) factories for one field of a
// product.
type Lane func() Sequence[Erased]

// LaneOf creates a lane for an enumerable field type.
func LaneOf[T, F any](e Enumerable[T, F]) Lane {
	return func() Sequence[Erased] {
		return Erase(e.Factories())
	}
}

// ProductSeq enumerates the Cartesian product of its lanes. Every item holds
// one factory per lane, in lane order. The last lane varies fastest.
//
// A product of zero lanes has exactly one item, the empty tuple. A product
// with an empty lane has no items at all.
type ProductSeq struct {
	lanes []Lane
	odo   *odometer[Erased]
}

// Product creates a product sequence over the given lanes.
func Product(lanes ...Lane) *ProductSeq {
	p := &ProductSeq{lanes: lanes}
	p.odo = newOdometer(len(lanes), func(i int) Sequence[Erased] {
		return p.lanes[i]()
	})
	return p
}

// Next returns the next tuple of factories.
func (p *ProductSeq) Next() ([]Erased, bool) {
	return p.odo.next()
}

// Clone returns an independent copy of p.
func (p *ProductSeq) Clone() Sequence[[]Erased] {
	return &ProductSeq{lanes: p.lanes, odo: p.odo.clone()}
}

// --- Fixed-size arrays -----------------------------------------------------

// ArraySeq enumerates all arrays of a fixed length n over one element
// sequence, with the last index varying fastest.
type ArraySeq[F any] struct {
	odo *odometer[F]
}

// NewArraySeq creates an array sequence of length n. fresh creates a new
// sequence over all element factories.
func NewArraySeq[F any](n int, fresh func() Sequence[F]) *ArraySeq[F] {
	if n < 0 {
		panic(ErrIllegalArguments)
	}
	return &ArraySeq[F]{
		odo: newOdometer(n, func(int) Sequence[F] { return fresh() }),
	}
}

// Next returns the next array of factories.
func (a *ArraySeq[F]) Next() ([]F, bool) {
	return a.odo.next()
}

// Clone returns an independent copy of a.
func (a *ArraySeq[F]) Clone() Sequence[[]F] {
	return &ArraySeq[F]{odo: a.odo.clone()}
}
