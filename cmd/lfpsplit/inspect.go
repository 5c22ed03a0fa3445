package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	json "github.com/goccy/go-json"
	"github.com/urfave/cli/v3"

	"github.com/lfptools/lfpsplit/pkg/lfp"
)

type inspectRecord struct {
	Index        int    `json:"index"`
	Kind         string `json:"kind"`
	Type         string `json:"type,omitempty"`
	Hash         string `json:"hash"`
	Size         int    `json:"size"`
	DepthSamples int    `json:"depth_samples,omitempty"`
}

type inspectReport struct {
	File       string          `json:"file"`
	Size       int64           `json:"size"`
	Records    []inspectRecord `json:"records"`
	Complete   bool            `json:"complete"`
	ParseError string          `json:"parse_error,omitempty"`
}

func inspectCmd() *cli.Command {
	var asJSON bool

	return &cli.Command{
		Name:      "inspect",
		Usage:     "List the records inside a package without extracting them",
		ArgsUsage: "<file.lfp>",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:        "json",
				Usage:       "emit the record listing as JSON",
				Destination: &asJSON,
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			if cmd.Args().Len() < 1 {
				return cli.Exit("usage: lfpsplit inspect file.lfp", 1)
			}
			path := cmd.Args().First()

			stat, err := os.Stat(path)
			if err != nil {
				return cli.Exit(fmt.Sprintf("error: stat %q: %v", path, err), 1)
			}
			f, err := lfp.Open(path)
			if err != nil {
				return cli.Exit(fmt.Sprintf("error: open package: %v", err), 1)
			}
			defer func() { _ = f.Close() }()

			report := buildReport(filepath.Base(path), stat.Size(), f)
			if asJSON {
				out, err := json.MarshalIndent(report, "", "  ")
				if err != nil {
					return err
				}
				fmt.Println(string(out))
				return nil
			}
			printReport(report)
			return nil
		},
	}
}

func buildReport(name string, size int64, f *lfp.File) inspectReport {
	report := inspectReport{
		File:     name,
		Size:     size,
		Complete: len(f.Records) >= 3,
		Records:  make([]inspectRecord, 0, len(f.Records)),
	}
	if f.ParseErr != nil {
		report.ParseError = f.ParseErr.Error()
	}
	for i, rec := range f.Records {
		r := inspectRecord{
			Index: i,
			Kind:  recordKind(i),
			Type:  rec.TypeString(),
			Hash:  rec.Hash,
			Size:  rec.Len(),
		}
		if i == 1 {
			r.DepthSamples = rec.Len() / 4
		}
		report.Records = append(report.Records, r)
	}
	return report
}

func recordKind(index int) string {
	switch index {
	case 0:
		return "metadata"
	case 1:
		return "depth"
	default:
		return fmt.Sprintf("image[%d]", index-2)
	}
}

func printReport(report inspectReport) {
	fmt.Printf("Package: %s (%s)\n", report.File, formatBytes(uint64(report.Size)))
	if report.ParseError != "" {
		fmt.Printf("Warning: parse stopped early: %s\n", report.ParseError)
	}
	if !report.Complete {
		fmt.Printf("Warning: incomplete package (%d records, need 3)\n", len(report.Records))
	}
	for _, r := range report.Records {
		line := fmt.Sprintf("%2d  %-10s type=%-4s size=%-10s hash=%s", r.Index, r.Kind, r.Type, formatBytes(uint64(r.Size)), r.Hash)
		if r.DepthSamples > 0 {
			line += fmt.Sprintf(" samples=%d", r.DepthSamples)
		}
		fmt.Println(line)
	}
}

func formatBytes(b uint64) string {
	const (
		kb = 1024
		mb = 1024 * kb
		gb = 1024 * mb
	)
	switch {
	case b >= gb:
		return fmt.Sprintf("%.2f GiB", float64(b)/float64(gb))
	case b >= mb:
		return fmt.Sprintf("%.2f MiB", float64(b)/float64(mb))
	case b >= kb:
		return fmt.Sprintf("%.2f KiB", float64(b)/float64(kb))
	default:
		return fmt.Sprintf("%d B", b)
	}
}
