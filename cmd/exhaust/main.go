/*
Command exhaust lists every value of one of a catalogue of small types.

Usage:

	exhaust [-shape name] [-limit n] [-html] [-trace level]

Without -shape, the catalogue of known shapes is printed. Configuration is
read from an optional NestedText file "exhaust.nt" at the usual
configuration locations of the operating system, e.g.

	shape: map
	limit: 20
	tracelevel:
	  exhaust: Debug

Command line flags override the configuration file.

_________________________________________________________________________

# BSD 3-Clause License

# Copyright (c) 2020–21, Norbert Pillmayer

Please refer to the LICENSE file for details.
*/
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"slices"
	"strings"

	"github.com/npillmayer/exhaust/dump"
	"github.com/npillmayer/schuko"
	"github.com/npillmayer/schuko/schukonf/koanfadapter"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/npillmayer/schuko/tracing/trace2go"
)

// tracer writes to trace with key 'exhaust'
func tracer() tracing.Trace {
	return tracing.Select("exhaust")
}

func main() {
	flag.String("shape", "", "name of the shape to enumerate")
	flag.Int("limit", -1, "maximum number of values to list, -1 for all")
	flag.Bool("html", false, "output an HTML table instead of a console listing")
	flag.String("trace", "Error", "trace level: Error, Info or Debug")
	flag.Parse()
	//
	conf := koanfadapter.New(nil, "exhaust", []string{"nt"})
	conf.InitDefaults()
	applyFlags(conf, flag.CommandLine)
	if err := setupTracing(conf); err != nil {
		fmt.Fprintf(os.Stderr, "exhaust: cannot configure tracing: %v\n", err)
		os.Exit(2)
	}
	if err := run(conf, os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "exhaust: %v\n", err)
		os.Exit(1)
	}
}

// applyFlags moves command line flags into the configuration. Flag defaults
// apply only to keys the configuration file did not set.
func applyFlags(conf *koanfadapter.KConf, flags *flag.FlagSet) {
	key := func(name string) string {
		if name == "trace" {
			return "tracelevel.exhaust"
		}
		return name
	}
	value := func(f *flag.Flag) any {
		if g, ok := f.Value.(flag.Getter); ok {
			return g.Get()
		}
		return f.Value.String()
	}
	flags.VisitAll(func(f *flag.Flag) {
		if !conf.IsSet(key(f.Name)) {
			conf.Set(key(f.Name), value(f))
		}
	})
	flags.Visit(func(f *flag.Flag) {
		conf.Set(key(f.Name), value(f))
	})
}

func setupTracing(conf schuko.Configuration) error {
	tracing.RegisterTraceAdapter("go", gologadapter.GetAdapter(), false)
	if err := trace2go.ConfigureRoot(conf, "tracelevel", trace2go.ReplaceTracers(true)); err != nil {
		return err
	}
	tracing.SetTraceSelector(trace2go.Selector())
	return nil
}

// run lists the configured shape to w.
func run(conf schuko.Configuration, w io.Writer) error {
	name := conf.GetString("shape")
	if name == "" {
		return printCatalogue(w)
	}
	s, ok := catalogue[name]
	if !ok {
		return fmt.Errorf("unknown shape %q", name)
	}
	config := &dump.Config{LineWidth: 65, Limit: -1}
	if conf.IsSet("limit") {
		config.Limit = conf.GetInt("limit")
	}
	var format dump.Format
	if conf.GetBool("html") {
		format = dump.NewHTML(s.description)
	} else {
		if w == io.Writer(os.Stdout) {
			term := dump.ConfigFromTerminal()
			config.LineWidth, config.Context = term.LineWidth, term.Context
		}
		format = dump.NewConsole(config, w == io.Writer(os.Stdout))
	}
	tracer().Infof("listing shape %q with limit %d", name, config.Limit)
	n, err := s.list(w, config, format)
	if err != nil {
		return err
	}
	if n == 0 && config.Limit != 0 {
		tracer().Infof("shape %q is uninhabited", name)
	}
	return nil
}

func printCatalogue(w io.Writer) error {
	if len(catalogue) == 0 {
		return errors.New("no shapes available")
	}
	names := make([]string, 0, len(catalogue))
	width := 0
	for name := range catalogue {
		names = append(names, name)
		width = max(width, len(name))
	}
	slices.Sort(names)
	var b strings.Builder
	b.WriteString("available shapes:\n")
	for _, name := range names {
		fmt.Fprintf(&b, "  %-*s  %s\n", width, name, catalogue[name].description)
	}
	_, err := io.WriteString(w, b.String())
	return err
}
