package lfp

import "fmt"

// parseRecord consumes one record from the cursor.
//
// It returns (nil, nil) when the cursor reaches the end of the buffer
// after skipping padding: that is the normal end of stream, not an
// error. A structural violation (header too short for the remaining
// bytes, or a declared payload longer than what remains) returns a nil
// record and a sentinel error; the cursor is left where the violation
// was found and no payload is allocated.
func parseRecord(c *cursor) (*Record, error) {
	c.skipZeros()

	if c.remaining() == 0 {
		return nil, nil
	}
	if c.remaining() <= recordHeaderLen {
		return nil, ErrTruncatedRecord
	}

	magic, err := c.take(magicLen)
	if err != nil {
		return nil, ErrTruncatedRecord
	}
	rec := &Record{}
	copy(rec.Type[:], magic[:4])

	length, err := c.u32be()
	if err != nil {
		return nil, ErrTruncatedRecord
	}

	hash, err := c.take(sha1Len)
	if err != nil {
		return nil, ErrTruncatedRecord
	}
	rec.Hash = string(hash)
	if err := c.skip(blankLen); err != nil {
		return nil, ErrTruncatedRecord
	}

	// length comes from untrusted input; reject it before allocating.
	if uint64(length) > uint64(c.remaining()) {
		return nil, fmt.Errorf("%w: declared %d, remaining %d", ErrOversizedPayload, length, c.remaining())
	}
	payload, err := c.take(int(length))
	if err != nil {
		return nil, ErrOversizedPayload
	}
	rec.Data = make([]byte, length)
	copy(rec.Data, payload)

	return rec, nil
}

// Parse splits a package buffer into its records.
//
// It validates the signature, skips the package header, and consumes
// records until the buffer is exhausted or a record is malformed. On a
// malformed record the records parsed so far are returned together with
// the structural error; the caller decides whether that is fatal. A
// clean end of stream returns a nil error.
func Parse(data []byte) ([]*Record, error) {
	if !CheckSignature(data) {
		return nil, ErrNotPackage
	}

	c := newCursor(data)
	if err := c.skip(packageHeaderLen); err != nil {
		return nil, fmt.Errorf("%w: missing package header", ErrTruncatedRecord)
	}

	var records []*Record
	for {
		rec, err := parseRecord(c)
		if err != nil {
			return records, err
		}
		if rec == nil {
			return records, nil
		}
		records = append(records, rec)
	}
}
