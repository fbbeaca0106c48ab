// Command bwrep parses and displays information about a StarCraft: Brood
// War replay file passed as a CLI argument.
package main

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
)

const (
	appName    = "bwrep"
	appVersion = "v2.0.0"
	appHome    = "https://github.com/bwrepstat/parser"
)

const (
	exitCodeMissingArguments         = 1
	exitCodeFailedToParseReplay      = 2
	exitCodeFailedToCreateOutputFile = 3
	exitCodeInvalidMapDataHash       = 4
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(exitCodeFailedToParseReplay)
	}
}

// newLogger builds the CLI's zerolog logger. Verbose output goes to
// stderr so it never contaminates JSON written to stdout.
func newLogger(verbose bool) zerolog.Logger {
	level := zerolog.WarnLevel
	if verbose {
		level = zerolog.DebugLevel
	}
	return zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).Level(level).With().Timestamp().Logger()
}
