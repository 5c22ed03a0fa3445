package main

import (
	"context"
	"crypto/sha1"
	"fmt"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/lfptools/lfpsplit/internal/logger"
	"github.com/lfptools/lfpsplit/pkg/lfp"
)

// packCmd builds a package from loose files. Mostly useful for
// producing fixtures and for round-tripping a previous split.
func packCmd() *cli.Command {
	var (
		metadataPath string
		depthPath    string
		outputPath   string
	)

	return &cli.Command{
		Name:      "pack",
		Usage:     "Build a package from metadata, depth table and image files",
		ArgsUsage: "<image.jpg> [image.jpg ...]",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "metadata",
				Usage:       "metadata text file (record 0)",
				Required:    true,
				Destination: &metadataPath,
			},
			&cli.StringFlag{
				Name:        "depth",
				Usage:       "raw depth table file (record 1, packed float32)",
				Required:    true,
				Destination: &depthPath,
			},
			&cli.StringFlag{
				Name:        "output",
				Aliases:     []string{"out"},
				Usage:       "output .lfp path",
				Required:    true,
				Destination: &outputPath,
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			if cmd.Args().Len() < 1 {
				return cli.Exit("pack needs at least one image file", 1)
			}
			log := logger.FromContext(ctx)

			w := lfp.NewWriter()
			add := func(typ [4]byte, path string) error {
				data, err := os.ReadFile(path)
				if err != nil {
					return fmt.Errorf("read %s: %w", path, err)
				}
				if err := w.WriteRecord(typ, payloadHash(data), data); err != nil {
					return fmt.Errorf("pack %s: %w", path, err)
				}
				w.WritePadding(4)
				return nil
			}

			if err := add([4]byte{'M', 'E', 'T', 'A'}, metadataPath); err != nil {
				return cli.Exit(fmt.Sprintf("error: %v", err), 1)
			}
			if err := add([4]byte{'D', 'P', 'T', 'H'}, depthPath); err != nil {
				return cli.Exit(fmt.Sprintf("error: %v", err), 1)
			}
			for _, img := range cmd.Args().Slice() {
				if err := add([4]byte{'I', 'M', 'A', 'G'}, img); err != nil {
					return cli.Exit(fmt.Sprintf("error: %v", err), 1)
				}
			}

			if err := os.WriteFile(outputPath, w.Bytes(), 0o644); err != nil {
				return cli.Exit(fmt.Sprintf("error: write %s: %v", outputPath, err), 1)
			}
			log.Info("packed", "file", outputPath, "images", cmd.Args().Len())
			return nil
		},
	}
}

// payloadHash renders the same "sha1-<hex>" digest string the camera
// stores in record headers. It is written, never verified.
func payloadHash(data []byte) string {
	return fmt.Sprintf("sha1-%x", sha1.Sum(data))
}
