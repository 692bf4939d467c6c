package cursor

import (
	"fmt"
	"iter"
)

// ErrNotDoubleEnded reports backward traversal of a cursor that only moves forward.
var ErrNotDoubleEnded = fmt.Errorf("cursor does not support backward traversal")

// Backwards returns c as a DoubleEnded cursor.
// It panics with an error wrapping ErrNotDoubleEnded if c cannot move backwards.
func Backwards[T any](c Cursor[T]) DoubleEnded[T] {
	if de, ok := c.(DoubleEnded[T]); ok {
		return de
	}
	panic(fmt.Errorf("%w: %T", ErrNotDoubleEnded, c))
}

// MapCursor applies a function to every item pulled from its source.
type MapCursor[S, T any] struct {
	src Cursor[S]
	fn  func(S) T
}

// Map returns a cursor yielding fn(v) for every v in c. fn runs lazily, once per
// item pulled. NextBack is available when c is double-ended.
func Map[S, T any](c Cursor[S], fn func(S) T) *MapCursor[S, T] {
	return &MapCursor[S, T]{src: c, fn: fn}
}

func (m *MapCursor[S, T]) Next() (v T, ok bool) {
	s, ok := m.src.Next()
	if !ok {
		return v, false
	}
	return m.fn(s), true
}

func (m *MapCursor[S, T]) NextBack() (v T, ok bool) {
	s, ok := Backwards(m.src).NextBack()
	if !ok {
		return v, false
	}
	return m.fn(s), true
}

// Values drains c forward as an iter.Seq. The sequence is single-use: it
// consumes c, so ranging over it twice yields the remainder only.
func Values[T any](c Cursor[T]) iter.Seq[T] {
	return func(yield func(T) bool) {
		for {
			v, ok := c.Next()
			if !ok || !yield(v) {
				return
			}
		}
	}
}

// Backward drains c from the back as an iter.Seq.
func Backward[T any](c DoubleEnded[T]) iter.Seq[T] {
	return func(yield func(T) bool) {
		for {
			v, ok := c.NextBack()
			if !ok || !yield(v) {
				return
			}
		}
	}
}

// Collect drains c forward into a slice.
func Collect[T any](c Cursor[T]) []T {
	var out []T
	for v := range Values(c) {
		out = append(out, v)
	}
	return out
}

// CollectBack drains c from the back into a slice, last item first.
func CollectBack[T any](c DoubleEnded[T]) []T {
	var out []T
	for v := range Backward(c) {
		out = append(out, v)
	}
	return out
}

// PullCursor is a forward cursor over an iter.Seq.
type PullCursor[T any] struct {
	next func() (T, bool)
	stop func()
}

// Pull turns seq into a forward cursor. The paused sequence holds resources
// until it is exhausted or Stop is called, so callers that may abandon the
// cursor early should defer Stop.
func Pull[T any](seq iter.Seq[T]) *PullCursor[T] {
	next, stop := iter.Pull(seq)
	return &PullCursor[T]{next: next, stop: stop}
}

func (p *PullCursor[T]) Next() (T, bool) {
	return p.next()
}

// Stop ends the underlying iteration. Next reports exhaustion afterwards.
// It is safe to call Stop more than once.
func (p *PullCursor[T]) Stop() {
	p.stop()
}
