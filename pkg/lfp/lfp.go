// Package lfp implements the light-field package container format.
//
// A package is the raw contents of a .lfp file as produced by Lytro's
// desktop app: an 8-byte signature, a fixed-size package header, then a
// sequence of length-prefixed records optionally separated by runs of
// zero padding. The package describes structure only; record payloads
// are opaque bytes except for the depth lookup table, which decodes to
// packed float32 samples (see DecodeDepthTable).
package lfp

// Signature is the fixed 8-byte prefix of every light-field package.
var Signature = [8]byte{0x89, 'L', 'F', 'P', 0x0D, 0x0A, 0x1A, 0x0A}

// Record header geometry. These offsets are fixed by the format and
// must never change.
const (
	magicLen  = 12 // type tag (4 bytes) + reserved zeros
	lengthLen = 4  // big-endian uint32 payload length
	sha1Len   = 45 // ascii digest, carried verbatim
	blankLen  = 35 // reserved, always zero

	// recordHeaderLen is the fixed header preceding every record payload.
	recordHeaderLen = magicLen + lengthLen + sha1Len + blankLen

	// packageHeaderLen is the header at the start of the file. It has the
	// same magic/length shape as a record header but carries no payload,
	// hash or blank region.
	packageHeaderLen = magicLen + lengthLen
)

// CheckSignature reports whether data begins with the package signature.
// It requires at least one byte beyond the signature itself.
func CheckSignature(data []byte) bool {
	if len(data) <= len(Signature) {
		return false
	}
	for i, b := range Signature {
		if data[i] != b {
			return false
		}
	}
	return true
}
