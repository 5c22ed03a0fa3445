// Package splitter drives extraction: it loads a package, classifies
// its records, and writes each payload out as its own file.
package splitter

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/lfptools/lfpsplit/internal/logger"
	"github.com/lfptools/lfpsplit/pkg/lfp"
)

// Options controls where extracted files land.
type Options struct {
	// OutDir overrides the output directory. When empty, outputs are
	// written next to the input file.
	OutDir string
}

// Split extracts a package at path into its metadata, depth table and
// image files.
//
// The returned error is non-nil only for the hard failures: an
// unreadable input or a buffer that is not a package. Everything else
// is reported through the logger: fewer than three records is a
// diagnostic, and each output file succeeds or fails independently
// without aborting the rest.
func Split(log logger.Logger, path string, opts Options) error {
	f, err := lfp.Open(path)
	if err != nil {
		if errors.Is(err, lfp.ErrNotPackage) {
			return fmt.Errorf("%s does not look like a light-field package", path)
		}
		return fmt.Errorf("open %s: %w", path, err)
	}
	defer func() { _ = f.Close() }()

	if f.ParseErr != nil {
		log.Warn("package parse stopped early", "error", f.ParseErr, "records", len(f.Records))
	}

	split, err := lfp.Classify(f.Records)
	if err != nil {
		log.Error("no images found in package", "path", path, "records", len(f.Records))
		return nil
	}

	prefix := outputPrefix(path, opts.OutDir)

	writeOutput(log, prefix+"_metadata.txt", split.Metadata.Data)
	writeOutput(log, prefix+"_depth.txt", lfp.DepthTableText(split.Depth.Data))
	for i, img := range split.Images {
		writeOutput(log, fmt.Sprintf("%s_%d.jpg", prefix, i), img.Data)
	}
	return nil
}

// outputPrefix derives the output name prefix from the input base name
// stripped of its final extension.
func outputPrefix(path, outDir string) string {
	base := filepath.Base(path)
	if ext := filepath.Ext(base); ext != "" {
		base = strings.TrimSuffix(base, ext)
	}
	dir := outDir
	if dir == "" {
		dir = filepath.Dir(path)
	}
	return filepath.Join(dir, base)
}

func writeOutput(log logger.Logger, name string, data []byte) {
	if err := os.WriteFile(name, data, 0o644); err != nil {
		log.Error("failed to save output", "file", name, "error", err)
		return
	}
	log.Info("saved", "file", name, "bytes", len(data))
}
