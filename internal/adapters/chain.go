// Package adapters analyzes chains of joltage adapters.
//
// A chain starts at the outlet (0 jolts), runs through adapters sorted by
// rating and ends at the device, rated 3 jolts above the highest adapter.
// Two neighbours may differ by at most MaxJoltGap jolts.
package adapters

import (
	"errors"
	"fmt"
	"math"
	"slices"
	"strconv"
	"strings"
)

// MaxJoltGap is the largest rating difference two connected adapters may have.
const MaxJoltGap = 3

// MaxRating is the highest rating that still leaves room for the device.
const MaxRating = math.MaxUint64 - MaxJoltGap

var (
	ErrNoAdapters = errors.New("adapters: no adapter ratings")
	ErrMalformed  = errors.New("adapters: malformed rating")
	ErrGap        = errors.New("adapters: unbridgeable gap")
)

type Chain struct {
	ratings []uint64
}

func Parse(lines []string) (Chain, error) {
	if len(lines) == 0 {
		return Chain{}, ErrNoAdapters
	}

	ratings := make([]uint64, 0, len(lines))
	for i, line := range lines {
		r, err := strconv.ParseUint(strings.TrimSpace(line), 10, 64)
		if err != nil {
			return Chain{}, fmt.Errorf("line %d: %w %q: %v", i+1, ErrMalformed, line, err)
		}
		if r > MaxRating {
			return Chain{}, fmt.Errorf("line %d: %w %q: above %d", i+1, ErrMalformed, line, uint64(MaxRating))
		}
		ratings = append(ratings, r)
	}

	return NewChain(ratings), nil
}

// NewChain copies and sorts ratings.
func NewChain(ratings []uint64) Chain {
	sorted := slices.Clone(ratings)
	slices.Sort(sorted)
	return Chain{ratings: sorted}
}

func (c Chain) Ratings() []uint64 { return slices.Clone(c.ratings) }

// Device is the built-in adapter's rating: MaxJoltGap above the highest adapter,
// saturating at math.MaxUint64.
func (c Chain) Device() uint64 {
	if len(c.ratings) == 0 {
		return MaxJoltGap
	}
	top := c.ratings[len(c.ratings)-1]
	if top > MaxRating {
		return math.MaxUint64
	}
	return top + MaxJoltGap
}

// Differences counts the gaps of size 1, 2 and 3 when every adapter is used.
// The final step to the device always counts as one gap of 3.
func (c Chain) Differences() ([MaxJoltGap]uint64, error) {
	diffs := [MaxJoltGap]uint64{0, 0, 1}
	var prev uint64

	for _, r := range c.ratings {
		gap := r - prev
		if gap == 0 || gap > MaxJoltGap {
			return diffs, fmt.Errorf("%w: %d -> %d", ErrGap, prev, r)
		}
		diffs[gap-1]++
		prev = r
	}

	return diffs, nil
}

// DifferenceProduct multiplies the number of 1-jolt gaps by the number of 3-jolt gaps.
func (c Chain) DifferenceProduct() (uint64, error) {
	diffs, err := c.Differences()
	if err != nil {
		return 0, err
	}
	return diffs[0] * diffs[MaxJoltGap-1], nil
}

// Arrangements counts the adapter subsets that still connect the outlet to the device.
//
// Ratings are distinct, so only the previous MaxJoltGap adapters can connect
// to the current one. window[k] holds the arrangement count ending at the
// adapter k+1 positions back; older counts are never needed again.
func (c Chain) Arrangements() uint64 {
	if len(c.ratings) == 0 {
		return 1
	}

	var window [MaxJoltGap]uint64
	for i, r := range c.ratings {
		var ways uint64
		if r <= MaxJoltGap {
			ways = 1 // straight from the outlet
		}
		for k := 0; k < MaxJoltGap && k < i; k++ {
			if r-c.ratings[i-1-k] <= MaxJoltGap {
				ways += window[k]
			}
		}
		copy(window[1:], window[:MaxJoltGap-1])
		window[0] = ways
	}

	return window[0]
}
