package config

import (
	"os"
	"strconv"
	"strings"
)

// Runtime holds knobs that affect diagnostics only, never the printed answers.
type Runtime struct {
	LogLevel          string
	LogEncoding       string
	RuleCacheMaxItems int
}

func Load() Runtime {
	return Runtime{
		LogLevel:          getenvOneOf("PUZZLE_LOG_LEVEL", "warn", "debug", "info", "warn", "error"),
		LogEncoding:       getenvOneOf("PUZZLE_LOG_ENCODING", "json", "json", "console"),
		RuleCacheMaxItems: getenvInt("PUZZLE_RULE_CACHE_MAX_ITEMS", 64, 1),
	}
}

func getenvOneOf(key, fallback string, allowed ...string) string {
	v := strings.ToLower(strings.TrimSpace(os.Getenv(key)))
	for _, a := range allowed {
		if v == a {
			return v
		}
	}
	return fallback
}

func getenvInt(key string, fallback, min int) int {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback
	}
	v, err := strconv.Atoi(raw)
	if err != nil || v < min {
		return fallback
	}
	return v
}
