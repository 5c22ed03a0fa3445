package lfp

import (
	"bytes"
	"encoding/binary"
	"errors"
	"math"
)

// Writer builds a well-formed package in memory: the signature, the
// package header, then each record with its fixed 96-byte header. It
// exists for the pack command and for constructing test fixtures; real
// captures come from the camera.
type Writer struct {
	buf bytes.Buffer
}

// NewWriter starts a package with its signature and an empty package
// header.
func NewWriter() *Writer {
	w := &Writer{}
	w.buf.Write(Signature[:])
	w.buf.Write(make([]byte, packageHeaderLen-len(Signature)))
	return w
}

// WriteRecord appends one record. The hash must fit the fixed 45-byte
// hash field; shorter hashes are zero padded, as the camera writes them.
func (w *Writer) WriteRecord(typ [4]byte, hash string, data []byte) error {
	if len(hash) > sha1Len {
		return errors.New("lfp: hash longer than hash field")
	}
	if uint64(len(data)) > math.MaxUint32 {
		return errors.New("lfp: payload too large for length field")
	}

	var hdr [recordHeaderLen]byte
	copy(hdr[:4], typ[:])
	binary.BigEndian.PutUint32(hdr[magicLen:], uint32(len(data)))
	copy(hdr[magicLen+lengthLen:], hash)

	w.buf.Write(hdr[:])
	w.buf.Write(data)
	return nil
}

// WritePadding appends a run of n zero bytes. Padding between records
// carries no content and is skipped by the parser.
func (w *Writer) WritePadding(n int) {
	if n > 0 {
		w.buf.Write(make([]byte, n))
	}
}

// Bytes returns the package built so far.
func (w *Writer) Bytes() []byte {
	return w.buf.Bytes()
}
