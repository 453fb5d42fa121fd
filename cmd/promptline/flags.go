// ABOUTME: CLI flag parsing using stdlib flag package
// ABOUTME: Supports -status, -width, -config, -explain, -version, -log-level

package main

import "flag"

type cliArgs struct {
	status   int
	width    int
	config   string
	explain  bool
	version  bool
	logLevel string
}

func parseFlags() cliArgs {
	var args cliArgs

	flag.IntVar(&args.status, "status", 0, "Exit code of the last command ($?)")
	flag.IntVar(&args.width, "width", 0, "Terminal width in columns (0 = autodetect)")
	flag.StringVar(&args.config, "config", "", "Path to a config file (overrides the global file)")
	flag.BoolVar(&args.explain, "explain", false, "Show the configured modules and their current output")
	flag.BoolVar(&args.version, "version", false, "Show version and exit")
	flag.StringVar(&args.logLevel, "log-level", "warn", "Log level: debug, info, warn, error")

	flag.Parse()
	return args
}
