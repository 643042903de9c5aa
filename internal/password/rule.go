package password

import "fmt"

// Rule selects how a record's two numbers are interpreted.
type Rule int

const (
	// RangeRule: the letter occurs between First and Second times, inclusive.
	RangeRule Rule = iota
	// PositionRule: exactly one of the 1-indexed positions First and Second holds the letter.
	PositionRule
)

func (r Rule) String() string {
	switch r {
	case RangeRule:
		return "range"
	case PositionRule:
		return "position"
	default:
		return fmt.Sprintf("Rule(%d)", int(r))
	}
}

func (r Rule) Valid(rec Record) bool {
	switch r {
	case RangeRule:
		return validRange(rec)
	case PositionRule:
		return validPosition(rec)
	default:
		return false
	}
}

func CountValid(records []Record, rule Rule) int {
	n := 0
	for _, rec := range records {
		if rule.Valid(rec) {
			n++
		}
	}
	return n
}

func validRange(rec Record) bool {
	count := 0
	for _, ch := range rec.Password {
		if ch == rec.Letter {
			count++
		}
	}
	return count >= rec.First && count <= rec.Second
}

func validPosition(rec Record) bool {
	runes := []rune(rec.Password)
	return letterAt(runes, rec.First, rec.Letter) != letterAt(runes, rec.Second, rec.Letter)
}

// letterAt reports whether the 1-indexed pos holds letter. Out of range never matches.
func letterAt(runes []rune, pos int, letter rune) bool {
	if pos < 1 || pos > len(runes) {
		return false
	}
	return runes[pos-1] == letter
}
