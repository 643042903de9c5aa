package integration_test

import (
	"bytes"
	"path/filepath"
	"regexp"
	"strings"
	"testing"

	"github.com/awmpietro/puzzle-solvers/internal/cli"
)

var answerRe = regexp.MustCompile(`\b\d+\b`)

func TestCommands_PrintTwoAnswersInOrder(t *testing.T) {
	t.Setenv("PUZZLE_LOG_LEVEL", "error")

	cases := []struct {
		puzzle string
		input  string
		want   []string
	}{
		{"passwords", "passwords.txt", []string{"2", "1"}},
		{"passports", "passports.txt", []string{"2", "2"}},
		{"bags", "bags.txt", []string{"4", "32"}},
		{"bags", "bags.dot", []string{"4", "32"}},
		{"adapters", "adapters_large.txt", []string{"220", "19208"}},
	}

	for _, tc := range cases {
		t.Run(tc.puzzle+"/"+tc.input, func(t *testing.T) {
			cmd := cli.NewCommand(tc.puzzle, "integration")
			var stdout, stderr bytes.Buffer
			cmd.SetOut(&stdout)
			cmd.SetErr(&stderr)
			cmd.SetArgs([]string{filepath.Join("..", "app", "testdata", tc.input)})

			if err := cmd.Execute(); err != nil {
				t.Fatalf("execute: %v (stderr: %s)", err, stderr.String())
			}

			lines := strings.Split(strings.TrimRight(stdout.String(), "\n"), "\n")
			if len(lines) != 2 {
				t.Fatalf("expected 2 lines, got %d: %q", len(lines), stdout.String())
			}
			for i, line := range lines {
				got := answerRe.FindString(line)
				if got != tc.want[i] {
					t.Fatalf("line %d %q: expected answer %s, got %s", i+1, line, tc.want[i], got)
				}
			}
		})
	}
}
