// Package main is the entry point for the dialfield demo.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/dshills/dialfield/internal/config"
	"github.com/dshills/dialfield/internal/engine/field"
	"github.com/dshills/dialfield/internal/format"
	"github.com/dshills/dialfield/internal/plugin/lua"
	"github.com/dshills/dialfield/internal/tui"
)

// Version information (set via ldflags during build).
var version = "dev"

func main() {
	os.Exit(run())
}

func run() int {
	opts := parseFlags()

	cfg, err := config.New(
		config.WithRegion(opts.region),
		config.WithLeadingPlus(!opts.noPlus),
		config.WithMaxDigits(opts.maxDigits),
		config.WithReformat(!opts.noReformat),
	)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: invalid configuration: %v\n", err)
		return 1
	}

	validator := format.NewLibphone(cfg.Region)
	f := field.New(
		field.WithConfig(cfg),
		field.WithFormatter(validator),
	)

	if opts.scriptPath != "" {
		script, err := lua.LoadFile(opts.scriptPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return 1
		}
		defer script.Close()
		f.AddPreChangeHook(script)
	}

	app := tui.New(f, tui.WithValidator(validator))
	if err := app.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}

type options struct {
	region     string
	noPlus     bool
	maxDigits  int
	noReformat bool
	scriptPath string
}

func parseFlags() options {
	var opts options
	var showVersion bool

	flag.StringVar(&opts.region, "region", "US", "Formatter region (ISO 3166-1 alpha-2)")
	flag.StringVar(&opts.region, "r", "US", "Formatter region (shorthand)")
	flag.BoolVar(&opts.noPlus, "no-plus", false, "Reject a leading '+' prefix")
	flag.IntVar(&opts.maxDigits, "max-digits", 0, "Digit cap, 0 for none")
	flag.BoolVar(&opts.noReformat, "no-reformat", false, "Disable live reformatting")
	flag.StringVar(&opts.scriptPath, "script", "", "Lua change-hook script")
	flag.BoolVar(&showVersion, "version", false, "Show version information")
	flag.BoolVar(&showVersion, "v", false, "Show version information (shorthand)")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Dialfield - live phone number entry demo\n\n")
		fmt.Fprintf(os.Stderr, "Usage: dialfield [options]\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  dialfield                   US formatting\n")
		fmt.Fprintf(os.Stderr, "  dialfield -r GB             UK formatting\n")
		fmt.Fprintf(os.Stderr, "  dialfield -script veto.lua  Run edits past a Lua hook\n")
	}

	flag.Parse()

	if showVersion {
		fmt.Printf("Dialfield %s\n", version)
		os.Exit(0)
	}

	return opts
}
