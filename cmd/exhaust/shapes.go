package main

import (
	"io"

	"github.com/npillmayer/exhaust"
	"github.com/npillmayer/exhaust/dump"
	"github.com/npillmayer/exhaust/index"
	"github.com/npillmayer/exhaust/textpos"
)

type shape struct {
	description string
	list        func(io.Writer, *dump.Config, dump.Format) (int, error)
}

func shapeOf[T, F any](description string, e exhaust.Enumerable[T, F]) shape {
	return shape{
		description: description,
		list: func(w io.Writer, config *dump.Config, format dump.Format) (int, error) {
			return dump.Output(e, w, config, format)
		},
	}
}

// cursorShape enumerates texts over a short alphabet with their cursor
// positions. Texts are created on demand, as the alphabet is checked.
func cursorShape(description string, alphabet string, maxLen int, b textpos.Boundaries) shape {
	return shape{
		description: description,
		list: func(w io.Writer, config *dump.Config, format dump.Format) (int, error) {
			texts, err := textpos.Texts([]rune(alphabet), maxLen)
			if err != nil {
				return 0, err
			}
			return dump.Output(textpos.Cursors(texts, b), w, config, format)
		},
	}
}

type suit int

const (
	clubs suit = iota
	diamonds
	hearts
	spades
)

func (s suit) String() string {
	return [...]string{"♣", "♦", "♥", "♠"}[s]
}

type card struct {
	Rank int8
	Suit suit
}

var cards = exhaust.Record(func(v []exhaust.Erased) card {
	return card{Rank: exhaust.As[int8](v[0]), Suit: exhaust.As[suit](v[1])}
}, exhaust.FieldOf(exhaust.Range[int8](1, 13)), exhaust.FieldOf(exhaust.ValuesOf(clubs, diamonds, hearts, spades)))

var catalogue = map[string]shape{
	"bools":     shapeOf("triples of booleans", exhaust.TripleOf(exhaust.Bool, exhaust.Bool, exhaust.Bool)),
	"cards":     shapeOf("playing cards, rank and suit", cards),
	"ordering":  shapeOf("results of a three-way comparison", exhaust.Ordering),
	"option":    shapeOf("optional orderings", exhaust.OptionOf(exhaust.Ordering)),
	"result":    shapeOf("results with a boolean value or an ordering error", exhaust.ResultOf(exhaust.Bool, exhaust.Ordering)),
	"array":     shapeOf("arrays of 3 orderings", exhaust.ArrayOf(exhaust.Ordering, 3)),
	"set":       shapeOf("sets of orderings", exhaust.SetOf(exhaust.Ordering)),
	"map":       shapeOf("maps from booleans to booleans", exhaust.MapOf(exhaust.Bool, exhaust.Bool)),
	"bytes":     shapeOf("every byte", exhaust.Uint8),
	"runes":     shapeOf("every Unicode scalar value", exhaust.Runes),
	"cursor":    shapeOf("byte pairs with a cursor position", exhaust.CursorOf(exhaust.ArrayOf(exhaust.Uint8, 2), func(b []uint8) int { return len(b) })),
	"indexed":   shapeOf("pairs of ordering and byte, by dense index", index.Enumerable(index.Must(index.Pair(index.Ordering, index.Uint8)))),
	"texts":     cursorShape("texts over {a, b, space} with rune positions", "ab ", 3, textpos.RuneBoundaries),
	"graphemes": cursorShape("texts over {e, combining acute, x} with grapheme positions", "e\u0301x", 3, textpos.GraphemeBoundaries),
	"linebreak": cursorShape("texts over {a, space, -} with line break positions", "a -", 4, textpos.LineBreakBoundaries),
}
