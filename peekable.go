package exhaust

type peekState uint8

const (
	peekNone    peekState = iota // nothing buffered
	peekHolding                  // next item buffered
	peekEnded                    // underlying sequence reported its end
)

// Peekable wraps a sequence with a one-item lookahead.
//
// Peek returns the item the next call to Next will return, without consuming
// it. The underlying sequence is advanced at most once per item, no matter how
// often Peek is called.
type Peekable[F any] struct {
	seq   Sequence[F]
	next  F
	state peekState
}

// NewPeekable wraps seq. seq must not be used by the caller afterwards.
func NewPeekable[F any](seq Sequence[F]) *Peekable[F] {
	assert(seq != nil, "peekable over nil sequence")
	return &Peekable[F]{seq: seq}
}

// Peek returns the next item without consuming it. ok is false at the end.
func (p *Peekable[F]) Peek() (f F, ok bool) {
	switch p.state {
	case peekHolding:
		return p.next, true
	case peekEnded:
		return f, false
	}
	if f, ok = p.seq.Next(); !ok {
		p.state = peekEnded
		return f, false
	}
	p.next, p.state = f, peekHolding
	return f, true
}

// Next consumes and returns the next item. ok is false at the end.
func (p *Peekable[F]) Next() (f F, ok bool) {
	switch p.state {
	case peekHolding:
		f = p.next
		var zero F
		p.next, p.state = zero, peekNone
		return f, true
	case peekEnded:
		return f, false
	}
	if f, ok = p.seq.Next(); !ok {
		p.state = peekEnded
	}
	return f, ok
}

// Exhausted is true if there are no more items.
func (p *Peekable[F]) Exhausted() bool {
	_, ok := p.Peek()
	return !ok
}

// Clone returns an independent copy of p, including a buffered item.
func (p *Peekable[F]) Clone() Sequence[F] {
	return p.clone()
}

func (p *Peekable[F]) clone() *Peekable[F] {
	c := *p
	c.seq = p.seq.Clone()
	return &c
}

// reset replaces the underlying sequence and drops any buffered item.
func (p *Peekable[F]) reset(seq Sequence[F]) {
	*p = Peekable[F]{seq: seq}
}
