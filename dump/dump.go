package dump

import (
	"errors"
	"fmt"
	"io"

	"github.com/npillmayer/exhaust"
	"github.com/npillmayer/uax/uax11"
	"golang.org/x/term"
)

// Config represents a set of configuration parameters for output.
type Config struct {
	LineWidth int            // maximum display width of a line, in ‘en’s
	Limit     int            // maximum number of values to output; < 0 for all
	Context   *uax11.Context // context for character widths; nil for uax11.LatinContext
}

// Format is an interface for output drivers.
type Format interface {
	Preamble(io.Writer) error
	Item(index int, value string, w io.Writer) error
	// Postamble is called after the last item. complete is false if the
	// enumeration has been cut off by the limit.
	Postamble(count int, complete bool, w io.Writer) error
}

// Output lists the values of e, rendered with fmt.Sprint, using format.
// It returns the number of values written.
//
// config may be nil, in which case every value is output with a line width
// of 65.
func Output[T, F any](e exhaust.Enumerable[T, F], w io.Writer, config *Config, format Format) (int, error) {
	if e == nil || w == nil || format == nil {
		return 0, errors.New("illegal argument: nil")
	}
	if config == nil {
		config = &Config{LineWidth: 65, Limit: -1}
	}
	if err := format.Preamble(w); err != nil {
		return 0, err
	}
	count, complete := 0, true
	for i, v := range exhaust.Indexed(e) {
		if config.Limit >= 0 && i >= config.Limit {
			complete = false
			break
		}
		if err := format.Item(i, fmt.Sprint(v), w); err != nil {
			return count, err
		}
		count++
	}
	tracer().Debugf("dump: output %d values, complete=%v", count, complete)
	return count, format.Postamble(count, complete, w)
}

// Strings renders at most limit values of e with fmt.Sprint; all values if
// limit < 0.
func Strings[T, F any](e exhaust.Enumerable[T, F], limit int) []string {
	values := exhaust.Collect(e, limit)
	s := make([]string, len(values))
	for i, v := range values {
		s[i] = fmt.Sprint(v)
	}
	return s
}

// --- Config for terminals --------------------------------------------------

// ConfigFromTerminal is a simple helper for creating an output Config.
// It checks wether stdout is a terminal, and if so it reads the terminal's width
// and sets the Config.LineWidth parameter accordingly. Character widths are
// guessed from the user's environment.
func ConfigFromTerminal() *Config {
	config := &Config{Limit: -1, Context: uax11.ContextFromEnvironment()}
	config.LineWidth = 65
	if term.IsTerminal(1) {
		if w, _, err := term.GetSize(1); err == nil {
			switch {
			case w > 30:
				config.LineWidth = w - 5
			case w > 10:
				config.LineWidth = w
			default:
				config.LineWidth = 10
			}
		}
	}
	tracer().Infof("setting line length to %d en", config.LineWidth)
	return config
}
