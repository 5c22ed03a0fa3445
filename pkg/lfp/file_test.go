package lfp

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestOpenRoundTrip(t *testing.T) {
	t.Parallel()

	pkg := buildPackage(t, 8, []byte("meta"), []byte{1, 2, 3, 4}, []byte("jpeg"))
	path := filepath.Join(t.TempDir(), "capture.lfp")
	if err := os.WriteFile(path, pkg, 0o644); err != nil {
		t.Fatalf("write package: %v", err)
	}

	f, err := Open(path)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	if len(f.Records) != 3 {
		t.Fatalf("got %d records, want 3", len(f.Records))
	}
	if f.ParseErr != nil {
		t.Fatalf("unexpected parse error: %v", f.ParseErr)
	}

	// Payloads are copies and must survive Close releasing the mapping.
	data := f.Records[2].Data
	if err := f.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}
	if !bytes.Equal(data, []byte("jpeg")) {
		t.Fatalf("payload invalid after close: %q", data)
	}
}

func TestOpenReaderAt(t *testing.T) {
	t.Parallel()

	pkg := buildPackage(t, 0, []byte("m"), []byte{1, 2, 3, 4}, []byte("j"))
	f, err := OpenReaderAt(bytes.NewReader(pkg), int64(len(pkg)))
	if err != nil {
		t.Fatalf("open readerat: %v", err)
	}
	defer func() { _ = f.Close() }()
	if len(f.Records) != 3 {
		t.Fatalf("got %d records, want 3", len(f.Records))
	}
}

func TestOpenRejectsNonPackage(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "junk.lfp")
	if err := os.WriteFile(path, []byte("not a package"), 0o644); err != nil {
		t.Fatalf("write junk: %v", err)
	}
	if _, err := Open(path); !errors.Is(err, ErrNotPackage) {
		t.Fatalf("got %v, want ErrNotPackage", err)
	}
}

func TestOpenKeepsSalvageableRecords(t *testing.T) {
	t.Parallel()

	pkg := buildPackage(t, 0, []byte("meta"))
	pkg = append(pkg, bytes.Repeat([]byte{0xCD}, 30)...)

	f, err := OpenReaderAt(bytes.NewReader(pkg), int64(len(pkg)))
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer func() { _ = f.Close() }()
	if !errors.Is(f.ParseErr, ErrTruncatedRecord) {
		t.Fatalf("expected recorded parse error, got %v", f.ParseErr)
	}
	if len(f.Records) != 1 {
		t.Fatalf("salvaged records lost: got %d, want 1", len(f.Records))
	}
}
