package cursor

import "unicode/utf8"

// Slice is a re-iterable view over a slice. Each call to Iter starts a new
// pass without copying the backing array.
type Slice[T any] []T

// Iter returns a double-ended cursor over s.
func (s Slice[T]) Iter() Cursor[T] {
	return s.Cursor()
}

// Cursor is like Iter but returns the concrete cursor type.
func (s Slice[T]) Cursor() *SliceCursor[T] {
	return &SliceCursor[T]{vals: s, back: len(s)}
}

// SliceCursor walks a slice from both ends. Items in [front, back) remain.
type SliceCursor[T any] struct {
	vals  []T
	front int
	back  int
}

// Of returns a double-ended cursor over the given values.
func Of[T any](vals ...T) *SliceCursor[T] {
	return Slice[T](vals).Cursor()
}

func (c *SliceCursor[T]) Next() (v T, ok bool) {
	if c.front >= c.back {
		return v, false
	}
	v = c.vals[c.front]
	c.front++
	return v, true
}

func (c *SliceCursor[T]) NextBack() (v T, ok bool) {
	if c.front >= c.back {
		return v, false
	}
	c.back--
	return c.vals[c.back], true
}

// Len reports how many items are left between the two ends.
func (c *SliceCursor[T]) Len() int {
	return c.back - c.front
}

// RuneCursor walks the runes of a string from both ends.
// Invalid UTF-8 bytes decode as utf8.RuneError, one byte at a time.
type RuneCursor struct {
	s string
}

// Runes returns a double-ended cursor over the runes of s.
func Runes(s string) *RuneCursor {
	return &RuneCursor{s: s}
}

func (c *RuneCursor) Next() (rune, bool) {
	if c.s == "" {
		return 0, false
	}
	r, size := utf8.DecodeRuneInString(c.s)
	c.s = c.s[size:]
	return r, true
}

func (c *RuneCursor) NextBack() (rune, bool) {
	if c.s == "" {
		return 0, false
	}
	r, size := utf8.DecodeLastRuneInString(c.s)
	c.s = c.s[:len(c.s)-size]
	return r, true
}
