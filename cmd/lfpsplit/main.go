package main

import (
	"context"
	"fmt"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/lfptools/lfpsplit/internal/logger"
	"github.com/lfptools/lfpsplit/internal/splitter"
)

func main() {
	app := &cli.Command{
		Name:      "lfpsplit",
		Usage:     "Split Lytro light-field packages (.lfp) into metadata, depth and image files",
		ArgsUsage: "<file.lfp>",
		Flags:     globalFlags(),
		Before:    setupLogger,
		// Bare `lfpsplit file.lfp` behaves like the split command.
		Action: func(ctx context.Context, cmd *cli.Command) error {
			if cmd.Args().Len() < 1 {
				_ = cli.ShowAppHelp(cmd)
				return cli.Exit("usage: lfpsplit file.lfp", 1)
			}
			return runSplit(ctx, cmd, cmd.Args().First())
		},
		Commands: []*cli.Command{
			splitCmd(),
			inspectCmd(),
			packCmd(),
			serveCmd(),
			versionCmd(),
		},
	}

	if err := app.Run(context.Background(), os.Args); err != nil {
		_, _ = fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// setupLogger builds the logger from the global flags (with config file
// defaults applied) and stores it on the context for every command.
func setupLogger(ctx context.Context, cmd *cli.Command) (context.Context, error) {
	cfg := LoadConfig()
	applyGlobalConfig(cmd, cfg)

	level := logger.ParseLevel(logLevel)
	var log logger.Logger
	switch logFormat {
	case "json":
		log = logger.JSON(os.Stderr, level)
	default:
		log = logger.Pretty(os.Stderr, level)
	}
	return logger.WithContext(ctx, log), nil
}

func runSplit(ctx context.Context, cmd *cli.Command, path string) error {
	log := logger.FromContext(ctx)
	if err := splitter.Split(log, path, splitter.Options{OutDir: outDir}); err != nil {
		return cli.Exit(fmt.Sprintf("error: %v", err), 1)
	}
	return nil
}
