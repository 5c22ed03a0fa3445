package main

import "github.com/urfave/cli/v3"

var (
	outDir    string
	logLevel  string
	logFormat string
)

func globalFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "out-dir",
			Aliases:     []string{"o"},
			Usage:       "directory for extracted files (default: next to the input)",
			Destination: &outDir,
		},
		&cli.StringFlag{
			Name:        "log-level",
			Usage:       "log level (debug, info, warn, error)",
			Value:       "info",
			Destination: &logLevel,
		},
		&cli.StringFlag{
			Name:        "log-format",
			Usage:       "log format (pretty, json)",
			Value:       "pretty",
			Destination: &logFormat,
		},
	}
}
