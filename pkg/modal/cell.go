package modal

// Cell is a single-writer, multi-reader observable value. The controller
// keeps its slot in one and the presentation layer subscribes to it.
type Cell[T any] interface {
	Get() T
	Set(v T)
	// Subscribe registers fn to be called after every Set. The returned
	// func removes the subscription.
	Subscribe(fn func(T)) (unsubscribe func())
}

type subscriber[T any] struct {
	id int
	fn func(T)
}

type memCell[T any] struct {
	value  T
	subs   []subscriber[T]
	nextID int
}

// NewCell returns an in-memory Cell holding initial.
func NewCell[T any](initial T) Cell[T] {
	return &memCell[T]{value: initial}
}

func (c *memCell[T]) Get() T {
	return c.value
}

func (c *memCell[T]) Set(v T) {
	c.value = v
	// Copy so subscribers may unsubscribe while being notified.
	subs := append([]subscriber[T](nil), c.subs...)
	for _, s := range subs {
		s.fn(v)
	}
}

func (c *memCell[T]) Subscribe(fn func(T)) func() {
	c.nextID++
	id := c.nextID
	c.subs = append(c.subs, subscriber[T]{id: id, fn: fn})
	return func() {
		for i, s := range c.subs {
			if s.id == id {
				c.subs = append(c.subs[:i], c.subs[i+1:]...)
				return
			}
		}
	}
}
