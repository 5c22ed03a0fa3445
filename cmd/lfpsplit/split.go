package main

import (
	"context"

	"github.com/urfave/cli/v3"
)

func splitCmd() *cli.Command {
	return &cli.Command{
		Name:      "split",
		Usage:     "Extract a package into metadata, depth table and image files",
		ArgsUsage: "<file.lfp>",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			if cmd.Args().Len() < 1 {
				return cli.Exit("usage: lfpsplit split file.lfp", 1)
			}
			return runSplit(ctx, cmd, cmd.Args().First())
		},
	}
}
