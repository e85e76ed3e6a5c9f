// ABOUTME: CLI flag parsing using stdlib flag package
// ABOUTME: Supports --config, --hold, --log, --verbose, --no-watch and --version

package main

import (
	"flag"
	"io"
)

type cliArgs struct {
	config  string
	hold    string
	logFile string
	verbose bool
	noWatch bool
	version bool
}

func parseFlags(argv []string, stderr io.Writer) (cliArgs, error) {
	var args cliArgs

	fs := flag.NewFlagSet("hecto", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&args.config, "config", "", "Read settings from this file instead of ~/.hecto and ./.hecto")
	fs.StringVar(&args.hold, "hold", "", "How long to keep the screen up (e.g. 3s); overrides the config")
	fs.StringVar(&args.logFile, "log", "", "Write logs to this file; overrides the config")
	fs.BoolVar(&args.verbose, "verbose", false, "Enable debug logging")
	fs.BoolVar(&args.noWatch, "no-watch", false, "Do not reload settings when config files change")
	fs.BoolVar(&args.version, "version", false, "Show version and exit")

	if err := fs.Parse(argv); err != nil {
		return cliArgs{}, err
	}
	return args, nil
}
