package lfp

import (
	"encoding/binary"
	"math"
	"strconv"
)

// depthDigits is the number of fractional digits in a rendered depth
// sample. Matches the conventional %f default so output is comparable
// with other tools that dump the table.
const depthDigits = 6

// DecodeDepthTable reinterprets a record payload as packed 32-bit
// floats, one sample per 4 bytes. The stored layout matches the
// camera's native little-endian float representation, so samples are
// decoded little-endian; any trailing 1-3 bytes that do not form a
// complete sample are ignored.
func DecodeDepthTable(payload []byte) []float32 {
	n := len(payload) / 4
	samples := make([]float32, n)
	for i := range samples {
		bits := binary.LittleEndian.Uint32(payload[i*4:])
		samples[i] = math.Float32frombits(bits)
	}
	return samples
}

// FormatDepthTable renders depth samples as text, one newline-terminated
// decimal line per sample. The rendering is locale-independent and
// stable: formatting a parsed line again reproduces it byte for byte.
func FormatDepthTable(samples []float32) []byte {
	buf := make([]byte, 0, len(samples)*10)
	for _, s := range samples {
		buf = strconv.AppendFloat(buf, float64(s), 'f', depthDigits, 32)
		buf = append(buf, '\n')
	}
	return buf
}

// DepthTableText decodes a depth table payload straight to text.
func DepthTableText(payload []byte) []byte {
	return FormatDepthTable(DecodeDepthTable(payload))
}
