package txpool

import mapset "github.com/deckarep/golang-set/v2"

// Censoring is a FIFO pool that rejects any transition for which the
// configured predicate returns true.
type Censoring[T comparable] struct {
	reject   func(T) bool
	queue    []T
	censored mapset.Set[T]
}

// NewCensoring returns a pool that refuses any transition reject reports
// true for.
func NewCensoring[T comparable](reject func(T) bool) *Censoring[T] {
	return &Censoring[T]{reject: reject, censored: mapset.NewSet[T]()}
}

func (c *Censoring[T]) TryInsert(t T) bool {
	if c.reject(t) {
		c.censored.Add(t)
		return false
	}
	c.queue = append(c.queue, t)
	return true
}

// Censored returns every transition this pool has ever refused, for
// embedders that want to audit rejections.
func (c *Censoring[T]) Censored() []T {
	return c.censored.ToSlice()
}

func (c *Censoring[T]) Remove(t T) {
	out := c.queue[:0]
	for _, e := range c.queue {
		if e != t {
			out = append(out, e)
		}
	}
	c.queue = out
}

func (c *Censoring[T]) Size() int { return len(c.queue) }

func (c *Censoring[T]) Contains(t T) bool {
	for _, e := range c.queue {
		if e == t {
			return true
		}
	}
	return false
}

func (c *Censoring[T]) NextFromPool() (T, bool) {
	var zero T
	if len(c.queue) == 0 {
		return zero, false
	}
	t := c.queue[0]
	c.queue = c.queue[1:]
	return t, true
}

func (c *Censoring[T]) Iter() []T {
	out := make([]T, len(c.queue))
	copy(out, c.queue)
	return out
}
