package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/awmpietro/puzzle-solvers/internal/config"
)

func execute(t *testing.T, puzzle string, args ...string) (string, string, error) {
	t.Helper()
	t.Setenv("PUZZLE_LOG_LEVEL", "error")

	cmd := NewCommand(puzzle, "test")
	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	if args == nil {
		args = []string{}
	}
	cmd.SetArgs(args)

	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func writeInput(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "input.txt")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestCommand_PrintsBothAnswers(t *testing.T) {
	path := writeInput(t, "16\n10\n15\n5\n1\n11\n7\n19\n6\n12\n4\n")

	stdout, _, err := execute(t, "adapters", path)
	require.NoError(t, err)
	require.Equal(t, "multiple of jolt differences is 35\nthere are 8 possible arrangements\n", stdout)
}

func TestCommand_RequiresExactlyOneArgument(t *testing.T) {
	for _, args := range [][]string{{}, {"a.txt", "b.txt"}} {
		stdout, stderr, err := execute(t, "passwords", args...)
		require.Error(t, err)
		require.Contains(t, stderr, "accepts 1 arg(s)")
		require.NotContains(t, stdout, "valid passwords")
	}
}

func TestCommand_DashPrefixedPathIsInput(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "-input.txt"), []byte("1-3 a: abcde\n"), 0o600))
	t.Chdir(dir)

	stdout, _, err := execute(t, "passwords", "-input.txt")
	require.NoError(t, err)
	require.Equal(t, "there are 1 valid passwords using the first scheme\nthere are 1 valid passwords using the second scheme\n", stdout)

	stdout, _, err = execute(t, "passwords", "--help")
	require.ErrorIs(t, err, os.ErrNotExist)
	require.Empty(t, stdout)
}

func TestCommand_MissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing.txt")

	stdout, stderr, err := execute(t, "bags", path)
	require.ErrorIs(t, err, os.ErrNotExist)
	require.Contains(t, stderr, path)
	require.Empty(t, stdout)
}

func TestCommand_MalformedInputPrintsNothing(t *testing.T) {
	path := writeInput(t, "1-3 a: abcde\nnot a policy\n")

	stdout, stderr, err := execute(t, "passwords", path)
	require.Error(t, err)
	require.Contains(t, stderr, "line 2")
	require.Empty(t, stdout)
}

func TestCommand_GapErrorPrintsNothing(t *testing.T) {
	path := writeInput(t, "1\n2\n9\n")

	stdout, _, err := execute(t, "adapters", path)
	require.Error(t, err)
	require.Empty(t, stdout, "no partial output")
}

func TestNewLogger(t *testing.T) {
	logger, err := NewLogger(config.Runtime{LogLevel: "debug", LogEncoding: "console"})
	require.NoError(t, err)
	require.NotNil(t, logger)

	_, err = NewLogger(config.Runtime{LogLevel: "loud", LogEncoding: "json"})
	require.Error(t, err)
}
