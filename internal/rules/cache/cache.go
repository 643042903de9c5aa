package cache

import "github.com/golang/groupcache/lru"

// InMemory memoizes values computed from a source text, keyed by the text itself.
// At most max values are kept; the least recently used one is evicted first.
// A max of zero or less disables storing. It is not safe for concurrent use.
type InMemory[V any] struct {
	max   int
	items *lru.Cache
}

func NewInMemory[V any](max int) *InMemory[V] {
	if max < 0 {
		max = 0
	}
	// lru treats 0 as unbounded, so a zero bound never reaches it.
	return &InMemory[V]{max: max, items: lru.New(max)}
}

func (c *InMemory[V]) GetOrCompute(src string, fn func() (V, error)) (V, error) {
	if v, ok := c.items.Get(src); ok {
		return v.(V), nil
	}

	v, err := fn()
	if err != nil {
		var zero V
		return zero, err
	}

	if c.max > 0 {
		c.items.Add(src, v)
	}
	return v, nil
}

func (c *InMemory[V]) Len() int { return c.items.Len() }
