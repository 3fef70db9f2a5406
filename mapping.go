package exhaust

// Entry is a key/value pair of a map factory.
type Entry[K, V any] struct {
	Key   K
	Value V
}

// MapSeq enumerates every finite map from a key type to a value type.
//
// It pairs a sequence of key-sets with, for each key-set, every tuple of
// values of matching length. The value tuples are restarted whenever the
// key-set advances; this is a carry between whole key-sets and the value
// odometer.
type MapSeq[FK, FV any] struct {
	keySets *Peekable[[]FK]
	values  *Peekable[[]FV]
	fresh   func() Sequence[FV]
	done    bool
}

// NewMapSeq creates a map sequence. keySets must produce every set of keys
// exactly once, smaller sets first (see PowerSet); fresh creates a new
// sequence of value factories.
func NewMapSeq[FK, FV any](keySets Sequence[[]FK], fresh func() Sequence[FV]) *MapSeq[FK, FV] {
	m := &MapSeq[FK, FV]{
		keySets: NewPeekable(keySets),
		fresh:   fresh,
	}
	m.restartValues()
	return m
}

// restartValues sizes the value odometer to the current key-set.
func (m *MapSeq[FK, FV]) restartValues() {
	n := 0
	if keys, ok := m.keySets.Peek(); ok {
		n = len(keys)
	}
	m.values = NewPeekable[[]FV](NewArraySeq(n, m.fresh))
}

// Next returns the entries of the next map, ordered like the key-set.
func (m *MapSeq[FK, FV]) Next() ([]Entry[FK, FV], bool) {
	if m.done {
		return nil, false
	}
	keys, ok := m.keySets.Peek()
	if !ok {
		m.done = true
		return nil, false
	}
	vals, ok := m.values.Next()
	if !ok {
		// The value type is empty. Key-sets arrive in ascending size, so no
		// later key-set has a value tuple either.
		T().Debugf("map: no values for %d keys, done", len(keys))
		m.done = true
		return nil, false
	}
	entries := make([]Entry[FK, FV], len(keys))
	for i, k := range keys {
		entries[i] = Entry[FK, FV]{Key: k, Value: vals[i]}
	}
	if m.values.Exhausted() {
		m.keySets.Next()
		m.restartValues()
		T().Debugf("map: advanced to next key-set")
	}
	return entries, true
}

// Clone returns an independent copy of m.
func (m *MapSeq[FK, FV]) Clone() Sequence[[]Entry[FK, FV]] {
	return &MapSeq[FK, FV]{
		keySets: m.keySets.clone(),
		values:  m.values.clone(),
		fresh:   m.fresh,
		done:    m.done,
	}
}
