package textpos

import (
	"bufio"
	"fmt"
	"strings"
	"sync"
	"unicode/utf8"

	"github.com/npillmayer/uax/grapheme"
	"github.com/npillmayer/uax/segment"
	"github.com/npillmayer/uax/uax14"
)

// Pos is a position within a text, between two runes.
//
// A Pos carries both a rune offset and a byte offset. Both values refer to
// the same boundary in a specific text.
type Pos struct {
	runes int
	bytes int
}

// Runes returns the number of runes before p.
func (p Pos) Runes() int {
	return p.runes
}

// Bytes returns the byte offset of p.
func (p Pos) Bytes() int {
	return p.bytes
}

func (p Pos) String() string {
	return fmt.Sprintf("%d(%d)", p.runes, p.bytes)
}

// Boundaries selects which positions within a text are valid cursor positions.
type Boundaries int

const (
	RuneBoundaries      Boundaries = iota // every rune boundary
	GraphemeBoundaries                    // boundaries of user perceived characters
	LineBreakBoundaries                   // start and end of text, plus line break opportunities
)

func (b Boundaries) String() string {
	switch b {
	case RuneBoundaries:
		return "runes"
	case GraphemeBoundaries:
		return "graphemes"
	case LineBreakBoundaries:
		return "linebreaks"
	}
	return fmt.Sprintf("Boundaries(%d)", int(b))
}

var setupGraphemes sync.Once

// SetupGraphemes initializes the grapheme classes of package uax/grapheme,
// once per process. Every package segmenting graphemes calls it first.
func SetupGraphemes() {
	setupGraphemes.Do(grapheme.SetupGraphemeClasses)
}

// Positions returns every valid position in text, in ascending order. Start
// and end of text are always included.
func (b Boundaries) Positions(text string) []Pos {
	var ends []int // byte offsets of segment ends
	switch b {
	case GraphemeBoundaries:
		SetupGraphemes()
		gstr := grapheme.StringFromString(text)
		off := 0
		for i := 0; i < gstr.Len(); i++ {
			off += len(gstr.Nth(i))
			ends = append(ends, off)
		}
	case LineBreakBoundaries:
		segmenter := segment.NewSegmenter(uax14.NewLineWrap())
		segmenter.Init(bufio.NewReader(strings.NewReader(text)))
		off := 0
		for segmenter.Next() {
			off += len(segmenter.Bytes())
			ends = append(ends, off)
		}
	default:
		for i := range text {
			if i > 0 {
				ends = append(ends, i)
			}
		}
		if len(text) > 0 {
			ends = append(ends, len(text))
		}
	}
	positions := make([]Pos, 1, len(ends)+1) // start of text
	for _, e := range ends {
		if e <= positions[len(positions)-1].bytes || e > len(text) {
			tracer().Errorf("%v: ignoring boundary at %d in %q", b, e, text)
			continue
		}
		positions = append(positions, Pos{runes: utf8.RuneCountInString(text[:e]), bytes: e})
	}
	if last := positions[len(positions)-1]; last.bytes != len(text) {
		positions = append(positions, Pos{runes: utf8.RuneCountInString(text), bytes: len(text)})
	}
	return positions
}
