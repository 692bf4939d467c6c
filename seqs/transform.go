package seqs

import (
	"iter"

	"strand/adapt"
	"strand/cursor"
)

// pulls tracks the inner pull cursor currently being drained so it can be
// stopped if the consumer breaks out early. Exhausted pulls need no stop.
type pulls[T any] struct {
	cur *cursor.PullCursor[T]
}

func (p *pulls[T]) open(seq iter.Seq[T]) cursor.Cursor[T] {
	p.stop()
	if seq == nil {
		return nil
	}
	p.cur = cursor.Pull(seq)
	return p.cur
}

func (p *pulls[T]) stop() {
	if p.cur != nil {
		p.cur.Stop()
		p.cur = nil
	}
}

// drain yields everything c produces until c is exhausted or yield declines.
func drain[T any](c cursor.Cursor[T], yield func(T) bool) {
	for v := range cursor.Values(c) {
		if !yield(v) {
			return
		}
	}
}

// FlatMap applies f to each element of source and yields the elements of the
// resulting sequences in order. f is called lazily, once per element reached,
// and a nil sequence from f contributes nothing.
func FlatMap[S, T any](source iter.Seq[S], f func(S) iter.Seq[T]) iter.Seq[T] {
	return func(yield func(T) bool) {
		outer := cursor.Pull(source)
		defer outer.Stop()
		var inner pulls[T]
		defer inner.stop()

		drain(adapt.FlatMap(outer, func(s S) cursor.Cursor[T] {
			return inner.open(f(s))
		}), yield)
	}
}

// Flatten yields the elements of every inner sequence in order.
// A nil inner sequence is treated as empty.
func Flatten[T any](seq iter.Seq[iter.Seq[T]]) iter.Seq[T] {
	return func(yield func(T) bool) {
		outer := cursor.Pull(seq)
		defer outer.Stop()
		var inner pulls[T]
		defer inner.stop()

		drain(adapt.FlattenForward[T](cursor.Map(outer, inner.open)), yield)
	}
}

// FlattenSlices yields the elements of every slice produced by seq.
// The slices are read in place, not copied.
func FlattenSlices[S ~[]T, T any](seq iter.Seq[S]) iter.Seq[T] {
	return func(yield func(T) bool) {
		outer := cursor.Pull(seq)
		defer outer.Stop()

		drain(adapt.FlattenForward[T](cursor.Map(outer, func(s S) cursor.Cursor[T] {
			return cursor.Of([]T(s)...)
		})), yield)
	}
}
