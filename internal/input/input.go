// Package input holds the small helpers every puzzle uses to turn a file into lines.
package input

import (
	"fmt"
	"os"
	"strings"
)

func ReadFile(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading input %q: %w", path, err)
	}
	return data, nil
}

// Lines returns the non-empty lines of data with trailing carriage returns removed.
func Lines(data []byte) []string {
	raw := strings.Split(string(data), "\n")
	out := make([]string, 0, len(raw))
	for _, line := range raw {
		line = strings.TrimRight(line, "\r")
		if line == "" {
			continue
		}
		out = append(out, line)
	}
	return out
}

// Blocks groups consecutive non-blank lines. Whitespace-only lines separate blocks.
func Blocks(data []byte) [][]string {
	var out [][]string
	var cur []string
	for _, line := range strings.Split(string(data), "\n") {
		line = strings.TrimRight(line, "\r")
		if strings.TrimSpace(line) == "" {
			if len(cur) > 0 {
				out = append(out, cur)
				cur = nil
			}
			continue
		}
		cur = append(cur, line)
	}
	if len(cur) > 0 {
		out = append(out, cur)
	}
	return out
}
