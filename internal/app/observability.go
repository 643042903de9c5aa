package app

import (
	"time"

	"go.uber.org/zap"
)

type PartLatencyLogger struct {
	logger *zap.Logger
}

func NewPartLatencyLogger(logger *zap.Logger) *PartLatencyLogger {
	return &PartLatencyLogger{logger: logger}
}

func (l *PartLatencyLogger) ObservePartLatency(puzzle, part string, duration time.Duration) {
	if l == nil || l.logger == nil {
		return
	}
	l.logger.Debug("puzzle_part_latency",
		zap.String("puzzle", puzzle),
		zap.String("part", part),
		zap.Float64("duration_ms", float64(duration.Microseconds())/1000.0),
	)
}
