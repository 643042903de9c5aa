package app

import "time"

// Part is one answer a puzzle reports. Format takes the answer as its only verb.
type Part struct {
	Name   string
	Format string
	Solve  func() (uint64, error)
}

// Solver parses a puzzle input and returns its parts, ready to be solved.
type Solver interface {
	Load(data []byte) ([]Part, error)
}

type SolverFunc func(data []byte) ([]Part, error)

func (f SolverFunc) Load(data []byte) ([]Part, error) { return f(data) }

type PartLatencyObserver interface {
	ObservePartLatency(puzzle, part string, duration time.Duration)
}
