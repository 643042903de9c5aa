// Package bags models bag containment rules as an index-based directed graph.
//
// Bags live in a slice; children and parents are stored as indices into it, so
// parent links never form pointer cycles. The graph is built once and only read
// afterwards.
package bags

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// Content says a bag directly holds Count bags of the bag at index Child.
type Content struct {
	Count int
	Child int
}

type Bag struct {
	Name     string
	Children []Content
	Parents  []int
}

type Graph struct {
	bags   []Bag
	byName map[string]int
}

const noContents = "no other bags"

var (
	ruleRe    = regexp.MustCompile(`^([a-z ]+) bags contain ([a-z0-9, ]+)\.$`)
	contentRe = regexp.MustCompile(`^(\d+) ([a-z ]+) bags?$`)
)

// Parse builds a graph from rule lines. Every bag named as contents must have a rule of its own.
func Parse(lines []string) (*Graph, error) {
	g := &Graph{
		bags:   make([]Bag, 0, len(lines)),
		byName: make(map[string]int, len(lines)),
	}

	// 1) Declare every bag so contents may refer to later lines.
	contents := make([]string, 0, len(lines))
	for i, line := range lines {
		m := ruleRe.FindStringSubmatch(line)
		if m == nil {
			return nil, fmt.Errorf("line %d: %w: %q", i+1, ErrMalformedRule, line)
		}
		if err := g.declare(m[1]); err != nil {
			return nil, fmt.Errorf("line %d: %w", i+1, err)
		}
		contents = append(contents, m[2])
	}

	// 2) Resolve contents to indices.
	for i, text := range contents {
		children, err := g.parseContents(text)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", i+1, err)
		}
		g.bags[i].Children = children
	}

	// 3) Mirror child edges as parent edges, then reject cycles.
	g.linkParents()
	if err := g.checkAcyclic(); err != nil {
		return nil, err
	}

	return g, nil
}

func (g *Graph) declare(name string) error {
	if _, ok := g.byName[name]; ok {
		return fmt.Errorf("%w %q", ErrDuplicateBag, name)
	}
	g.byName[name] = len(g.bags)
	g.bags = append(g.bags, Bag{Name: name})
	return nil
}

func (g *Graph) parseContents(text string) ([]Content, error) {
	if text == noContents {
		return nil, nil
	}

	items := strings.Split(text, ", ")
	out := make([]Content, 0, len(items))
	for _, item := range items {
		m := contentRe.FindStringSubmatch(item)
		if m == nil {
			return nil, fmt.Errorf("%w: contents %q", ErrMalformedRule, item)
		}
		count, err := strconv.Atoi(m[1])
		if err != nil {
			return nil, fmt.Errorf("%w: count %q: %v", ErrMalformedRule, m[1], err)
		}
		child, ok := g.byName[m[2]]
		if !ok {
			return nil, fmt.Errorf("%w %q", ErrUnknownBag, m[2])
		}
		out = append(out, Content{Count: count, Child: child})
	}
	return out, nil
}

func (g *Graph) linkParents() {
	for i := range g.bags {
		for _, c := range g.bags[i].Children {
			g.bags[c.Child].Parents = append(g.bags[c.Child].Parents, i)
		}
	}
}

func (g *Graph) Len() int { return len(g.bags) }

func (g *Graph) Index(name string) (int, bool) {
	i, ok := g.byName[name]
	return i, ok
}

func (g *Graph) Bag(i int) Bag { return g.bags[i] }

// Names returns bag names in declaration order.
func (g *Graph) Names() []string {
	out := make([]string, len(g.bags))
	for i, b := range g.bags {
		out[i] = b.Name
	}
	return out
}

// FindParents returns every bag that can eventually contain bag i.
func (g *Graph) FindParents(i int) map[int]struct{} {
	parents := make(map[int]struct{}, len(g.bags[i].Parents))
	for _, p := range g.bags[i].Parents {
		parents[p] = struct{}{}
		for ancestor := range g.FindParents(p) {
			parents[ancestor] = struct{}{}
		}
	}
	return parents
}

// CountChildren returns how many bags bag i must hold, counting every nesting level.
func (g *Graph) CountChildren(i int) uint64 {
	var total uint64
	for _, c := range g.bags[i].Children {
		total += uint64(c.Count) * (1 + g.CountChildren(c.Child))
	}
	return total
}
