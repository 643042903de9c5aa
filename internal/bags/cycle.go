package bags

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/lvlath/core"
	"github.com/katalvlaran/lvlath/dfs"
)

// checkAcyclic mirrors child edges into a directed lvlath graph and reports
// the first cycle DetectCycles finds. A bag holding itself is a cycle too.
func (g *Graph) checkAcyclic() error {
	dg := core.NewGraph(core.WithDirected(true), core.WithLoops())
	for _, b := range g.bags {
		if err := dg.AddVertex(b.Name); err != nil {
			return fmt.Errorf("bag %q: %w", b.Name, err)
		}
	}
	for _, b := range g.bags {
		for _, c := range b.Children {
			child := g.bags[c.Child].Name
			if dg.HasEdge(b.Name, child) {
				continue
			}
			if _, err := dg.AddEdge(b.Name, child, 0); err != nil {
				return fmt.Errorf("edge %q -> %q: %w", b.Name, child, err)
			}
		}
	}

	found, cycles, err := dfs.DetectCycles(dg)
	if err != nil {
		return err
	}
	if found {
		return fmt.Errorf("%w: %s", ErrCycle, strings.Join(cycles[0], " -> "))
	}
	return nil
}
