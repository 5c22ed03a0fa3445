package lfp

import "encoding/binary"

// cursor is a bounds-checked view over the package buffer. Every read
// goes through take, so no access can pass the end of the buffer no
// matter what lengths the input declares.
type cursor struct {
	data []byte
	off  int
}

func newCursor(data []byte) *cursor {
	return &cursor{data: data}
}

func (c *cursor) remaining() int {
	return len(c.data) - c.off
}

// take returns the next n bytes without copying and advances the cursor.
func (c *cursor) take(n int) ([]byte, error) {
	if n < 0 {
		return nil, ErrTruncatedRecord
	}
	if n > c.remaining() {
		return nil, ErrTruncatedRecord
	}
	b := c.data[c.off : c.off+n]
	c.off += n
	return b, nil
}

// skip advances the cursor by n bytes.
func (c *cursor) skip(n int) error {
	_, err := c.take(n)
	return err
}

// u32be reads a big-endian uint32.
func (c *cursor) u32be() (uint32, error) {
	b, err := c.take(4)
	if err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint32(b), nil
}

// skipZeros advances past any run of zero bytes. Packages pad the gaps
// between records with zeros that carry no content.
func (c *cursor) skipZeros() {
	for c.off < len(c.data) && c.data[c.off] == 0 {
		c.off++
	}
}
