// internal/bags/dot.go
package bags

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/awalterschulze/gographviz"
)

const (
	dotGraphName = "bags"
	countAttr    = "label"
)

// ErrMalformedDOT indicates a DOT document that does not describe a bag graph.
var ErrMalformedDOT = errors.New("bags: malformed DOT graph")

// WriteDOT renders the graph as a digraph: one node per bag and one edge per
// containment, labelled with the count. Every bag name is quoted, so names that
// are DOT keywords (edge, node, graph) survive a round trip.
func (g *Graph) WriteDOT(w io.Writer) error {
	out := gographviz.NewGraph()
	if err := out.SetName(dotGraphName); err != nil {
		return err
	}
	if err := out.SetDir(true); err != nil {
		return err
	}

	for _, b := range g.bags {
		if err := out.AddNode(dotGraphName, quote(b.Name), nil); err != nil {
			return fmt.Errorf("node %q: %w", b.Name, err)
		}
	}
	for _, b := range g.bags {
		for _, c := range b.Children {
			child := g.bags[c.Child].Name
			attrs := map[string]string{countAttr: strconv.Itoa(c.Count)}
			if err := out.AddEdge(quote(b.Name), quote(child), true, attrs); err != nil {
				return fmt.Errorf("edge %q -> %q: %w", b.Name, child, err)
			}
		}
	}

	_, err := io.WriteString(w, out.String())
	return err
}

// ParseDOT loads a digraph written by WriteDOT (or by hand). Every edge needs a
// non-negative integer label, the same counts Parse accepts.
func ParseDOT(src string) (*Graph, error) {
	ast, err := gographviz.ParseString(src)
	if err != nil {
		return nil, fmt.Errorf("failed to parse DOT: %w", err)
	}

	in := gographviz.NewGraph()
	if err := gographviz.Analyse(ast, in); err != nil {
		return nil, fmt.Errorf("failed to analyze DOT: %w", err)
	}
	if !in.Directed {
		return nil, fmt.Errorf("%w: graph must be a digraph", ErrMalformedDOT)
	}

	g := &Graph{
		bags:   make([]Bag, 0, len(in.Nodes.Nodes)),
		byName: make(map[string]int, len(in.Nodes.Nodes)),
	}

	// 1) Nodes
	for _, n := range in.Nodes.Nodes {
		if err := g.declare(unquote(n.Name)); err != nil {
			return nil, err
		}
	}

	// 2) Edges, in statement order
	for _, e := range in.Edges.Edges {
		from, to := unquote(e.Src), unquote(e.Dst)
		fi, ok := g.byName[from]
		if !ok {
			return nil, fmt.Errorf("%w %q", ErrUnknownBag, from)
		}
		ti, ok := g.byName[to]
		if !ok {
			return nil, fmt.Errorf("%w %q", ErrUnknownBag, to)
		}

		raw := getAttr(e.Attrs, countAttr)
		count, err := strconv.Atoi(raw)
		if err != nil || count < 0 {
			return nil, fmt.Errorf("%w: edge %q -> %q has count %q", ErrMalformedDOT, from, to, raw)
		}

		g.bags[fi].Children = append(g.bags[fi].Children, Content{Count: count, Child: ti})
	}

	g.linkParents()
	if err := g.checkAcyclic(); err != nil {
		return nil, err
	}

	return g, nil
}

// getAttr reads a Graphviz attribute, dropping the quotes it usually carries.
func getAttr(attrs gographviz.Attrs, key string) string {
	val, ok := attrs[gographviz.Attr(key)]
	if !ok {
		return ""
	}
	return unquote(val)
}

// quote and unquote follow DOT string rules, where \" is the only escape.
func quote(s string) string {
	return `"` + strings.ReplaceAll(s, `"`, `\"`) + `"`
}

func unquote(s string) string {
	s = strings.TrimSpace(s)
	if len(s) >= 2 && s[0] == '"' && s[len(s)-1] == '"' {
		s = strings.ReplaceAll(s[1:len(s)-1], `\"`, `"`)
	}
	return s
}
