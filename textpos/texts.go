package textpos

import (
	"fmt"
	"slices"
	"unicode/utf8"

	"github.com/npillmayer/exhaust"
)

// Texts enumerates every string over alphabet with at most maxLen runes:
// shorter texts first, texts of equal length in the order of alphabet.
//
// The alphabet must not contain duplicates or invalid runes, otherwise the
// same text would be produced more than once.
func Texts(alphabet []rune, maxLen int) (exhaust.Enumerable[string, exhaust.SumFactory], error) {
	if maxLen < 0 {
		return nil, fmt.Errorf("%w: negative text length %d", exhaust.ErrIllegalArguments, maxLen)
	}
	seen := make(map[rune]bool, len(alphabet))
	for _, r := range alphabet {
		if seen[r] || !utf8.ValidRune(r) {
			return nil, fmt.Errorf("%w: alphabet rune %U", exhaust.ErrIllegalArguments, r)
		}
		seen[r] = true
	}
	letters := exhaust.ValuesOf(alphabet...)
	variants := make([]exhaust.Variant, maxLen+1)
	for n := range variants {
		text := exhaust.Wrap(exhaust.ArrayOf(letters, n), func(rs []rune) string {
			return string(rs)
		})
		variants[n] = exhaust.VariantOf(exhaust.FieldOf(text))
	}
	tracer().Debugf("texts over %d runes, up to length %d", len(alphabet), maxLen)
	return exhaust.Union(func(_ int, v []exhaust.Erased) string {
		return exhaust.As[string](v[0])
	}, variants...), nil
}

// Cursor is a position within a text.
type Cursor struct {
	Text string
	Pos  Pos
}

func (c Cursor) String() string {
	return fmt.Sprintf("%q@%d", c.Text, c.Pos.runes)
}

// CursorFactory is the factory of a Cursor, holding the text's factory.
type CursorFactory[F any] struct {
	Text F
	Pos  Pos
}

// Cursors enumerates every text of texts together with each of its valid
// positions. Positions vary fastest.
func Cursors[F any](texts exhaust.Enumerable[string, F], b Boundaries) exhaust.Enumerable[Cursor, CursorFactory[F]] {
	return exhaust.New(func() exhaust.Sequence[CursorFactory[F]] {
		return exhaust.FlatZipMap(texts.Factories(), func(f F) exhaust.Sequence[Pos] {
			return exhaust.FromSlice(b.Positions(texts.FromFactory(f))...)
		}, func(f F, p Pos) CursorFactory[F] {
			return CursorFactory[F]{Text: f, Pos: p}
		})
	}, func(cf CursorFactory[F]) Cursor {
		return Cursor{Text: texts.FromFactory(cf.Text), Pos: cf.Pos}
	})
}

// Split returns the text before and after the cursor.
func (c Cursor) Split() (string, string) {
	return c.Text[:c.Pos.bytes], c.Text[c.Pos.bytes:]
}

// IsValid checks that c is on one of the positions of b.
func (c Cursor) IsValid(b Boundaries) bool {
	return slices.Contains(b.Positions(c.Text), c.Pos)
}
