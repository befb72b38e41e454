package reactive

import "sync"

// Cell is a continuously-readable view of a stream: it holds the most
// recently emitted value, or its initial value if nothing has been emitted
// since the cell was created. Cells are created with Stream.Hold.
type Cell[T any] struct {
	mu      sync.RWMutex
	value   T
	updates *Stream[T]
}

// Now returns the cell's current value.
func (c *Cell[T]) Now() T {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.value
}

// Updates returns the stream of changes backing the cell.
func (c *Cell[T]) Updates() *Stream[T] {
	return c.updates
}

// set stores a newly emitted value.
func (c *Cell[T]) set(v T) {
	c.mu.Lock()
	c.value = v
	c.mu.Unlock()
}
