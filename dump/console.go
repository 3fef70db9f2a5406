package dump

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/npillmayer/exhaust/textpos"
	"github.com/npillmayer/uax/grapheme"
	"github.com/npillmayer/uax/uax11"
)

// Console is a format for listing values on a console with a fixed width
// font. Every value gets a line of its own, prefixed by its index. Values
// which are too wide for the line are truncated.
type Console struct {
	width   int // line width in ‘en’s
	context *uax11.Context
	index   *color.Color
	marker  *color.Color
}

// NewConsole creates a console format. If colorize is false, no escape
// sequences are written, regardless of the terminal.
func NewConsole(config *Config, colorize bool) *Console {
	textpos.SetupGraphemes()
	c := &Console{
		width:   65,
		context: uax11.LatinContext,
		index:   color.New(color.FgBlue),
		marker:  color.New(color.FgRed),
	}
	if config != nil {
		if config.LineWidth > 0 {
			c.width = config.LineWidth
		}
		if config.Context != nil {
			c.context = config.Context
		}
	}
	if !colorize {
		c.index.DisableColor()
		c.marker.DisableColor()
	}
	return c
}

const indexWidth = 6

// Preamble writes nothing.
func (c *Console) Preamble(w io.Writer) error {
	return nil
}

// Item writes one line for a value.
func (c *Console) Item(index int, value string, w io.Writer) error {
	if _, err := c.index.Fprintf(w, "%*d", indexWidth, index); err != nil {
		return err
	}
	text, cut := truncate(firstLine(value), c.width-indexWidth-2, c.context)
	if _, err := io.WriteString(w, "  "+text); err != nil {
		return err
	}
	if cut {
		if _, err := c.marker.Fprint(w, "…"); err != nil {
			return err
		}
	}
	_, err := io.WriteString(w, "\n")
	return err
}

// Postamble writes a summary line.
func (c *Console) Postamble(count int, complete bool, w io.Writer) error {
	var err error
	if complete {
		_, err = fmt.Fprintf(w, "%*s  %d values\n", indexWidth, "", count)
	} else {
		_, err = c.marker.Fprintf(w, "%*s  … more than %d values\n", indexWidth, "", count)
	}
	return err
}

func firstLine(s string) string {
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		return s[:i]
	}
	return s
}

// truncate cuts s to at most width display positions, leaving room for a
// one-position marker if s has to be cut. Cuts happen at grapheme
// boundaries only.
func truncate(s string, width int, context *uax11.Context) (string, bool) {
	gstr := grapheme.StringFromString(s)
	if uax11.StringWidth(gstr, context) <= width {
		return s, false
	}
	var b strings.Builder
	used := 0
	for i := 0; i < gstr.Len(); i++ {
		g := gstr.Nth(i)
		gw := uax11.StringWidth(grapheme.StringFromString(g), context)
		if used+gw > width-1 {
			break
		}
		b.WriteString(g)
		used += gw
	}
	return b.String(), true
}
