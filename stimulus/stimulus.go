// Package stimulus supplies ordered test vectors to the bench.
package stimulus

import (
	"errors"

	"github.com/sarchlab/palu/alu"
)

// ErrExhausted reports a fetch past the end of a sequence.
var ErrExhausted = errors.New("stimulus: sequence exhausted")

// Sequence is an ordered, finite collection of stimulus records with a
// fetch cursor. A sequence never wraps; whoever consumes it must not ask
// for more cases than it holds.
type Sequence struct {
	recs   []alu.StimulusRecord
	cursor int
}

// NewSequence creates a sequence over recs.
func NewSequence(recs ...alu.StimulusRecord) *Sequence {
	return &Sequence{recs: recs}
}

// Next returns the record at the cursor and advances it. Fetching past the
// end returns ErrExhausted.
func (s *Sequence) Next() (alu.StimulusRecord, error) {
	if s.cursor >= len(s.recs) {
		return alu.StimulusRecord{}, ErrExhausted
	}

	rec := s.recs[s.cursor]
	s.cursor++

	return rec, nil
}

// Len returns the total number of records.
func (s *Sequence) Len() int {
	return len(s.recs)
}

// Remaining returns the number of records not yet fetched.
func (s *Sequence) Remaining() int {
	return len(s.recs) - s.cursor
}
