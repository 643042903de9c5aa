// internal/passport/record.go
package passport

import (
	"errors"
	"fmt"
	"strings"
)

var ErrMalformedField = errors.New("passport: malformed field")

// Record maps field keys to their raw values.
type Record map[string]string

// ParseBlocks builds one record per block of lines. Fields are whitespace separated key:value tokens.
func ParseBlocks(blocks [][]string) ([]Record, error) {
	out := make([]Record, 0, len(blocks))
	for i, block := range blocks {
		rec, err := ParseRecord(strings.Join(block, " "))
		if err != nil {
			return nil, fmt.Errorf("record %d: %w", i+1, err)
		}
		out = append(out, rec)
	}
	return out, nil
}

// ParseRecord reads one record. A key given twice keeps its last value.
func ParseRecord(raw string) (Record, error) {
	fields := strings.Fields(raw)
	rec := make(Record, len(fields))

	for _, field := range fields {
		kv := strings.Split(field, ":")
		if len(kv) != 2 {
			return nil, fmt.Errorf("%w %q (expected key:value)", ErrMalformedField, field)
		}

		key := kv[0]
		if key == "" {
			return nil, fmt.Errorf("%w %q (empty key)", ErrMalformedField, field)
		}
		rec[key] = kv[1]
	}

	return rec, nil
}
