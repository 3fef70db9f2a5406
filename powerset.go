package exhaust

// PowerSetSeq enumerates every subset of a finite sequence of elements.
//
// Subsets are produced by size first, and subsets of equal size in
// lexicographic order of their element positions. For elements a, b, c the
// order is
//
//	{}, {a}, {b}, {c}, {a,b}, {a,c}, {b,c}, {a,b,c}
//
// Within a subset, elements keep the order of the element sequence.
// The element sequence is read completely with the first call to Next.
type PowerSetSeq[F any] struct {
	src   Sequence[F] // nil after loading
	elems []F
	comb  []int // element positions of the current subset
	ready bool  // comb has not been emitted yet
	done  bool
}

// PowerSet creates a power-set sequence over the items of elems.
func PowerSet[F any](elems Sequence[F]) *PowerSetSeq[F] {
	return &PowerSetSeq[F]{src: elems}
}

// Next returns the next subset.
func (ps *PowerSetSeq[F]) Next() ([]F, bool) {
	if ps.done {
		return nil, false
	}
	if ps.src != nil {
		ps.load()
	} else if !ps.ready && !ps.advance() {
		ps.done = true
		return nil, false
	}
	ps.ready = false
	subset := make([]F, len(ps.comb))
	for i, j := range ps.comb {
		subset[i] = ps.elems[j]
	}
	return subset, true
}

func (ps *PowerSetSeq[F]) load() {
	ps.elems = make([]F, 0, 8)
	for {
		f, ok := ps.src.Next()
		if !ok {
			break
		}
		ps.elems = append(ps.elems, f)
	}
	ps.src = nil
	ps.comb = []int{}
	ps.ready = true
	T().Debugf("power-set over %d elements", len(ps.elems))
}

// advance steps comb to the next k-combination, or to the first
// (k+1)-combination after the last k-combination.
func (ps *PowerSetSeq[F]) advance() bool {
	n, k := len(ps.elems), len(ps.comb)
	i := k - 1
	for i >= 0 && ps.comb[i] == n-k+i {
		i--
	}
	if i >= 0 {
		ps.comb[i]++
		for j := i + 1; j < k; j++ {
			ps.comb[j] = ps.comb[j-1] + 1
		}
		return true
	}
	if k == n {
		return false
	}
	ps.comb = make([]int, k+1)
	for j := range ps.comb {
		ps.comb[j] = j
	}
	return true
}

// Clone returns an independent copy of ps.
func (ps *PowerSetSeq[F]) Clone() Sequence[[]F] {
	c := *ps
	if ps.src != nil {
		c.src = ps.src.Clone()
	}
	if ps.comb != nil {
		c.comb = append([]int{}, ps.comb...)
	}
	return &c
}
