// Package cli wires a puzzle solver to the command line: one input file in, answers out.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/awmpietro/puzzle-solvers/internal/app"
	"github.com/awmpietro/puzzle-solvers/internal/config"
	"github.com/awmpietro/puzzle-solvers/internal/input"
)

// NewCommand takes no flags: "-input.txt" or "--help" is a file name like any other.
func NewCommand(puzzle, short string) *cobra.Command {
	return &cobra.Command{
		Use:                puzzle + " <input-file>",
		Short:              short,
		Args:               cobra.ExactArgs(1),
		DisableFlagParsing: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			// Past argument validation, errors are about the input, not usage.
			cmd.SilenceUsage = true
			return run(cmd, puzzle, args[0])
		},
	}
}

func run(cmd *cobra.Command, puzzle, path string) error {
	cfg := config.Load()
	logger, err := NewLogger(cfg)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer func() { _ = logger.Sync() }()

	solver, err := app.NewSolver(puzzle, cfg, logger)
	if err != nil {
		return err
	}

	data, err := input.ReadFile(path)
	if err != nil {
		return err
	}

	svc := app.NewService(
		app.WithLogger(logger),
		app.WithPartLatencyObserver(app.NewPartLatencyLogger(logger)),
	)
	report, err := svc.Run(puzzle, solver, data)
	if err != nil {
		logger.Debug("puzzle_failed", zap.String("puzzle", puzzle), zap.String("input", path), zap.Error(err))
		return err
	}

	out := cmd.OutOrStdout()
	for _, line := range report.Lines() {
		if _, err := fmt.Fprintln(out, line); err != nil {
			return err
		}
	}
	return nil
}

// Execute runs cmd and exits non-zero on failure. cobra has already printed the error.
func Execute(cmd *cobra.Command) {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
