package lfp

// Record is one header+payload unit inside a package.
//
// Type and Hash are copied verbatim from the record header. Neither is
// interpreted here: the type tag is opaque to the splitter and the hash
// is carried through without verification.
type Record struct {
	Type [4]byte
	Hash string
	Data []byte
}

// Len returns the payload length in bytes.
func (r *Record) Len() int {
	return len(r.Data)
}

// TypeString returns the type tag with trailing NULs stripped, for display.
func (r *Record) TypeString() string {
	b := r.Type[:]
	for len(b) > 0 && b[len(b)-1] == 0 {
		b = b[:len(b)-1]
	}
	return string(b)
}
