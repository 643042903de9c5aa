package password

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
)

var ErrMalformedLine = errors.New("password: malformed policy line")

// Record is one password together with the policy it was stored under.
type Record struct {
	Password string
	Letter   rune
	First    int
	Second   int
}

var lineRe = regexp.MustCompile(`^(\d+)-(\d+) (.): (.+)$`)

func Parse(lines []string) ([]Record, error) {
	out := make([]Record, 0, len(lines))
	for i, line := range lines {
		rec, err := parseLine(line)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", i+1, err)
		}
		out = append(out, rec)
	}
	return out, nil
}

func parseLine(line string) (Record, error) {
	m := lineRe.FindStringSubmatch(line)
	if m == nil {
		return Record{}, fmt.Errorf("%w: %q", ErrMalformedLine, line)
	}

	first, err := strconv.Atoi(m[1])
	if err != nil {
		return Record{}, fmt.Errorf("%w: first number: %v", ErrMalformedLine, err)
	}
	second, err := strconv.Atoi(m[2])
	if err != nil {
		return Record{}, fmt.Errorf("%w: second number: %v", ErrMalformedLine, err)
	}

	letter := []rune(m[3])[0]
	return Record{
		Password: m[4],
		Letter:   letter,
		First:    first,
		Second:   second,
	}, nil
}
