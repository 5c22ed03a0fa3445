package lfp

import "errors"

var (
	// ErrNotPackage means the input does not begin with the package signature.
	ErrNotPackage = errors.New("lfp: not a light-field package")

	// ErrTruncatedRecord means the remaining input is too short to hold a
	// full record header. Records parsed before it remain valid.
	ErrTruncatedRecord = errors.New("lfp: truncated record header")

	// ErrOversizedPayload means a record header declared a payload length
	// larger than the bytes actually remaining.
	ErrOversizedPayload = errors.New("lfp: declared payload exceeds remaining data")

	// ErrTooFewRecords means the package held fewer than the three records
	// (metadata, depth table, at least one image) a complete capture has.
	ErrTooFewRecords = errors.New("lfp: too few records in package")
)
