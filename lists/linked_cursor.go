package lists

import (
	"fmt"

	"strand/cursor"
)

// Cursor walks a LinkedList from both ends at once. front and back point at
// the next nodes to yield; remaining counts the nodes between them, so the two
// ends stop when they meet instead of crossing.
//
// The list must not be modified while a cursor is in use.
type Cursor[T any] struct {
	front     *node[T]
	back      *node[T]
	remaining int
}

// Iter returns a double-ended cursor over the current elements.
// Every call starts an independent pass, so a list can be used as a
// cursor.Iterable template.
func (ll *LinkedList[T]) Iter() cursor.Cursor[T] {
	return ll.Cursor()
}

// Cursor is like Iter but returns the concrete cursor type.
func (ll *LinkedList[T]) Cursor() *Cursor[T] {
	return &Cursor[T]{
		front:     ll.headSentinel.next,
		back:      ll.tailSentinel.prev,
		remaining: ll.size,
	}
}

func (c *Cursor[T]) Next() (val T, ok bool) {
	if c.remaining == 0 {
		return val, false
	}
	val = c.front.val
	c.front = c.front.next
	c.remaining--
	return val, true
}

func (c *Cursor[T]) NextBack() (val T, ok bool) {
	if c.remaining == 0 {
		return val, false
	}
	val = c.back.val
	c.back = c.back.prev
	c.remaining--
	return val, true
}

// Len reports how many elements the cursor has left.
func (c *Cursor[T]) Len() int {
	return c.remaining
}

// String returns a string representation of the cursor
func (c *Cursor[T]) String() string {
	if c.remaining == 0 {
		return "Cursor[exhausted]"
	}
	return fmt.Sprintf("Cursor[%v..%v]", c.front.val, c.back.val)
}
