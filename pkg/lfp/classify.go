package lfp

// Split is a package's records classified by position: the first record
// is the plaintext metadata, the second the depth lookup table, and
// every later record an embedded image, numbered from zero.
type Split struct {
	Metadata *Record
	Depth    *Record
	Images   []*Record
}

// Classify applies the positional classification policy to a parsed
// record sequence. A complete capture carries at least three records;
// anything less returns ErrTooFewRecords. The records themselves stay
// valid either way.
func Classify(records []*Record) (*Split, error) {
	if len(records) < 3 {
		return nil, ErrTooFewRecords
	}
	return &Split{
		Metadata: records[0],
		Depth:    records[1],
		Images:   records[2:],
	}, nil
}
