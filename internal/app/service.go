// internal/app/service.go
package app

import (
	"fmt"
	"time"

	"go.uber.org/zap"
)

type Service struct {
	logger          *zap.Logger
	latencyObserver PartLatencyObserver
}

type Option func(*Service)

func WithLogger(logger *zap.Logger) Option {
	return func(s *Service) {
		if logger != nil {
			s.logger = logger
		}
	}
}

func WithPartLatencyObserver(observer PartLatencyObserver) Option {
	return func(s *Service) {
		s.latencyObserver = observer
	}
}

func NewService(opts ...Option) *Service {
	s := &Service{logger: zap.NewNop()}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Run loads the input and solves every part. Nothing is reported unless all parts succeed.
func (s *Service) Run(puzzle string, solver Solver, data []byte) (*Report, error) {
	if solver == nil {
		return nil, fmt.Errorf("%s: solver is nil", puzzle)
	}

	loadStart := time.Now()
	parts, err := solver.Load(data)
	if err != nil {
		return nil, fmt.Errorf("%s: invalid input: %w", puzzle, err)
	}
	s.logger.Debug("puzzle_input_loaded",
		zap.String("puzzle", puzzle),
		zap.Int("bytes", len(data)),
		zap.Int("parts", len(parts)),
		zap.Duration("duration", time.Since(loadStart)),
	)

	report := &Report{Puzzle: puzzle, Parts: make([]PartResult, 0, len(parts))}
	for _, part := range parts {
		start := time.Now()
		answer, err := part.Solve()
		elapsed := time.Since(start)
		s.observePartLatency(puzzle, part.Name, elapsed)
		if err != nil {
			return nil, fmt.Errorf("%s: %s: %w", puzzle, part.Name, err)
		}

		report.Parts = append(report.Parts, PartResult{
			Name:           part.Name,
			Answer:         answer,
			Line:           fmt.Sprintf(part.Format, answer),
			DurationMicros: elapsed.Microseconds(),
		})
	}

	return report, nil
}

func (s *Service) observePartLatency(puzzle, part string, duration time.Duration) {
	if s.latencyObserver == nil {
		return
	}
	s.latencyObserver.ObservePartLatency(puzzle, part, duration)
}
