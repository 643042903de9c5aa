package app

import (
	"bytes"
	"fmt"
	"regexp"
	"strings"

	"go.uber.org/zap"

	"github.com/awmpietro/puzzle-solvers/internal/adapters"
	"github.com/awmpietro/puzzle-solvers/internal/bags"
	"github.com/awmpietro/puzzle-solvers/internal/config"
	"github.com/awmpietro/puzzle-solvers/internal/input"
	"github.com/awmpietro/puzzle-solvers/internal/passport"
	"github.com/awmpietro/puzzle-solvers/internal/password"
	"github.com/awmpietro/puzzle-solvers/internal/rules/cache"
	"github.com/awmpietro/puzzle-solvers/internal/rules/eval"
)

// TargetBag is the bag both bag answers are about.
const TargetBag = "shiny gold"

const (
	PuzzlePasswords = "passwords"
	PuzzlePassports = "passports"
	PuzzleBags      = "bags"
	PuzzleAdapters  = "adapters"
)

// NewSolver returns the solver for a puzzle name.
func NewSolver(puzzle string, cfg config.Runtime, logger *zap.Logger) (Solver, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	switch puzzle {
	case PuzzlePasswords:
		return Passwords(), nil
	case PuzzlePassports:
		return Passports(cache.NewInMemory[*eval.Compiled](cfg.RuleCacheMaxItems)), nil
	case PuzzleBags:
		return Bags(TargetBag, logger), nil
	case PuzzleAdapters:
		return Adapters(logger), nil
	default:
		return nil, fmt.Errorf("unknown puzzle %q", puzzle)
	}
}

func Passwords() Solver {
	return SolverFunc(func(data []byte) ([]Part, error) {
		records, err := password.Parse(input.Lines(data))
		if err != nil {
			return nil, err
		}

		count := func(rule password.Rule) func() (uint64, error) {
			return func() (uint64, error) {
				return uint64(password.CountValid(records, rule)), nil
			}
		}

		return []Part{
			{Name: password.RangeRule.String(), Format: "there are %d valid passwords using the first scheme", Solve: count(password.RangeRule)},
			{Name: password.PositionRule.String(), Format: "there are %d valid passwords using the second scheme", Solve: count(password.PositionRule)},
		}, nil
	})
}

func Passports(c passport.Cache) Solver {
	return SolverFunc(func(data []byte) ([]Part, error) {
		records, err := passport.ParseBlocks(input.Blocks(data))
		if err != nil {
			return nil, err
		}

		simple, err := passport.PresenceRules(c)
		if err != nil {
			return nil, err
		}
		full, err := passport.FullRules(c)
		if err != nil {
			return nil, err
		}

		count := func(rs *passport.RuleSet) func() (uint64, error) {
			return func() (uint64, error) {
				return uint64(passport.CountValid(records, rs)), nil
			}
		}

		return []Part{
			{Name: simple.Name, Format: "counted %d valid passports with simple scheme", Solve: count(simple)},
			{Name: full.Name, Format: "counted %d valid passports with full scheme", Solve: count(full)},
		}, nil
	})
}

// Bags accepts either containment rules or a DOT digraph as written by bags.Graph.WriteDOT.
func Bags(target string, logger *zap.Logger) Solver {
	return SolverFunc(func(data []byte) ([]Part, error) {
		g, err := loadBagGraph(data)
		if err != nil {
			return nil, err
		}
		logBagGraph(logger, g)

		root, ok := g.Index(target)
		if !ok {
			return nil, fmt.Errorf("%w %q", bags.ErrUnknownBag, target)
		}

		return []Part{
			{
				Name:   "parents",
				Format: target + " bag can be contained by %d others",
				Solve: func() (uint64, error) {
					return uint64(len(g.FindParents(root))), nil
				},
			},
			{
				Name:   "children",
				Format: target + " bag must contain %d other bags",
				Solve: func() (uint64, error) {
					return g.CountChildren(root), nil
				},
			},
		}, nil
	})
}

// dotHeaderRe matches the opening of a DOT digraph: keyword, optional ID, brace.
// A rule line such as "digraph red bags contain ..." never reaches the brace.
var dotHeaderRe = regexp.MustCompile(`^(?:strict\s+)?digraph\s*(?:"(?:[^"\\]|\\.)*"|[A-Za-z0-9_]+)?\s*\{`)

func loadBagGraph(data []byte) (*bags.Graph, error) {
	if dotHeaderRe.Match(bytes.TrimSpace(data)) {
		return bags.ParseDOT(string(data))
	}
	return bags.Parse(input.Lines(data))
}

func logBagGraph(logger *zap.Logger, g *bags.Graph) {
	if logger == nil || !logger.Core().Enabled(zap.DebugLevel) {
		return
	}
	var dot strings.Builder
	if err := g.WriteDOT(&dot); err != nil {
		logger.Debug("bag_graph_dot_failed", zap.Error(err))
		return
	}
	logger.Debug("bag_graph", zap.Int("bags", g.Len()), zap.String("dot", dot.String()))
}

func Adapters(logger *zap.Logger) Solver {
	return SolverFunc(func(data []byte) ([]Part, error) {
		chain, err := adapters.Parse(input.Lines(data))
		if err != nil {
			return nil, err
		}

		return []Part{
			{
				Name:   "jolt differences",
				Format: "multiple of jolt differences is %d",
				Solve: func() (uint64, error) {
					product, err := chain.DifferenceProduct()
					if err != nil {
						return 0, err
					}
					if logger != nil && logger.Core().Enabled(zap.DebugLevel) {
						diffs, _ := chain.Differences()
						logger.Debug("jolt_differences", zap.Uint64s("differences", diffs[:]))
					}
					return product, nil
				},
			},
			{
				Name:   "arrangements",
				Format: "there are %d possible arrangements",
				Solve: func() (uint64, error) {
					return chain.Arrangements(), nil
				},
			},
		}, nil
	})
}
