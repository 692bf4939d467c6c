package adapt

import (
	"slices"

	"strand/cursor"
)

// CycleIter repeats its source forever.
type CycleIter[T any] struct {
	src cursor.Iterable[T]
	cur cursor.Cursor[T]
}

// Cycle returns a cursor that yields every item of src, then starts over from
// a fresh src.Iter(), indefinitely. src is used as a template and must not be
// mutated while the cycle is in use.
//
// An empty src yields nothing: Next reports exhaustion on every call.
func Cycle[T any](src cursor.Iterable[T]) *CycleIter[T] {
	return &CycleIter[T]{src: src, cur: src.Iter()}
}

// CycleSlice is Cycle over a private copy of vals.
func CycleSlice[T any](vals []T) *CycleIter[T] {
	return Cycle[T](cursor.Slice[T](slices.Clone(vals)))
}

// Next returns the next item of the current pass. When the pass is exhausted
// it starts exactly one new pass, so an empty source cannot spin.
func (c *CycleIter[T]) Next() (T, bool) {
	if v, ok := c.cur.Next(); ok {
		return v, true
	}
	c.cur = c.src.Iter()
	return c.cur.Next()
}
