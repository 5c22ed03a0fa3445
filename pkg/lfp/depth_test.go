package lfp

import (
	"bytes"
	"encoding/binary"
	"math"
	"strconv"
	"strings"
	"testing"
)

func depthPayload(samples ...float32) []byte {
	buf := make([]byte, len(samples)*4)
	for i, s := range samples {
		binary.LittleEndian.PutUint32(buf[i*4:], math.Float32bits(s))
	}
	return buf
}

func TestDecodeDepthTable(t *testing.T) {
	t.Parallel()

	want := []float32{1.0, -2.5, 0.125}
	got := DecodeDepthTable(depthPayload(want...))
	if len(got) != 3 {
		t.Fatalf("got %d samples, want 3", len(got))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("sample %d: got %v, want %v", i, got[i], want[i])
		}
	}
}

func TestDecodeDepthTableIgnoresTrailingBytes(t *testing.T) {
	t.Parallel()

	payload := depthPayload(3.5, 7.25)
	for extra := 1; extra <= 3; extra++ {
		in := append(append([]byte{}, payload...), bytes.Repeat([]byte{0xEE}, extra)...)
		got := DecodeDepthTable(in)
		if len(got) != 2 {
			t.Fatalf("extra=%d: got %d samples, want 2", extra, len(got))
		}
	}
}

func TestFormatDepthTableLines(t *testing.T) {
	t.Parallel()

	text := DepthTableText(depthPayload(1.0, -2.5, 0.125))
	if !strings.HasSuffix(string(text), "\n") {
		t.Fatalf("output not newline-terminated: %q", text)
	}
	lines := strings.Split(strings.TrimSuffix(string(text), "\n"), "\n")
	if len(lines) != 3 {
		t.Fatalf("got %d lines, want 3: %q", len(lines), text)
	}
	if lines[0] != "1.000000" || lines[1] != "-2.500000" || lines[2] != "0.125000" {
		t.Fatalf("unexpected rendering: %q", lines)
	}
}

func TestFormatDepthTableRoundTrip(t *testing.T) {
	t.Parallel()

	samples := []float32{0, 1.0, -2.5, 0.125, 1e-9, 123456.78, float32(math.Pi)}
	text := FormatDepthTable(samples)
	lines := strings.Split(strings.TrimSuffix(string(text), "\n"), "\n")
	if len(lines) != len(samples) {
		t.Fatalf("got %d lines, want %d", len(lines), len(samples))
	}
	for i, line := range lines {
		parsed, err := strconv.ParseFloat(line, 32)
		if err != nil {
			t.Fatalf("line %d %q does not parse: %v", i, line, err)
		}
		again := FormatDepthTable([]float32{float32(parsed)})
		if got := strings.TrimSuffix(string(again), "\n"); got != line {
			t.Fatalf("line %d not idempotent: %q -> %q", i, line, got)
		}
	}
}

func TestDepthTableTextEmptyPayload(t *testing.T) {
	t.Parallel()

	if text := DepthTableText(nil); len(text) != 0 {
		t.Fatalf("expected empty output, got %q", text)
	}
	if text := DepthTableText([]byte{1, 2, 3}); len(text) != 0 {
		t.Fatalf("expected empty output for partial sample, got %q", text)
	}
}
