package stimulus

import (
	"fmt"
	"os"
	"strings"

	"github.com/sarchlab/palu/alu"
)

// LoadFile reads packed stimulus records from a text file, one record per
// line. Blank lines and lines starting with '#' are skipped.
func LoadFile(path string, spec alu.Spec) (*Sequence, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("stimulus: %w", err)
	}

	seq, err := ReadPacked(string(data), spec)
	if err != nil {
		return nil, fmt.Errorf("stimulus: %s: %w", path, err)
	}

	return seq, nil
}

// ReadPacked parses newline-separated packed records into a sequence.
func ReadPacked(text string, spec alu.Spec) (*Sequence, error) {
	var recs []alu.StimulusRecord

	for i, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		rec, err := alu.ParseRecord(spec, line)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", i+1, err)
		}

		recs = append(recs, rec)
	}

	return NewSequence(recs...), nil
}
