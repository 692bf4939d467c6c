package adapt

import "strand/cursor"

// FlattenIter concatenates the inner cursors produced by an outer cursor.
//
// front holds the inner cursor most recently pulled from the outer front and
// back the one most recently pulled from the outer back. A nil field means that
// side needs a new inner cursor. Exhausted inner cursors are dropped.
type FlattenIter[T any] struct {
	outer cursor.Cursor[cursor.Cursor[T]]
	front cursor.Cursor[T]
	back  cursor.Cursor[T]
}

// Flatten returns a double-ended cursor over the concatenation of the inner
// cursors of outer, in outer order. Next and NextBack may be mixed freely; every
// inner item is yielded exactly once. A nil inner cursor counts as empty; this
// means a nil interface value, not a typed nil pointer wrapped in one, which
// panics when read like any other nil receiver.
//
// Inner cursors need to be double-ended only if NextBack is called.
func Flatten[T any](outer cursor.DoubleEnded[cursor.Cursor[T]]) *FlattenIter[T] {
	return &FlattenIter[T]{outer: outer}
}

// FlattenForward is Flatten restricted to forward traversal, for outer cursors
// that only move forward. The result has no NextBack method, so
// cursor.Backwards rejects it up front.
func FlattenForward[T any](outer cursor.Cursor[cursor.Cursor[T]]) cursor.Cursor[T] {
	return forwardOnly[T]{f: &FlattenIter[T]{outer: outer}}
}

type forwardOnly[T any] struct {
	f *FlattenIter[T]
}

func (c forwardOnly[T]) Next() (T, bool) {
	return c.f.Next()
}

// FlattenSlices flattens a slice of slices without copying them.
func FlattenSlices[T any](vals [][]T) *FlattenIter[T] {
	inner := make([]cursor.Cursor[T], len(vals))
	for i, v := range vals {
		inner[i] = cursor.Slice[T](v).Cursor()
	}
	return Flatten(cursor.DoubleEnded[cursor.Cursor[T]](cursor.Of(inner...)))
}

// FlattenIterables flattens a double-ended cursor of re-iterable sequences,
// starting a fresh pass over each one when it is reached.
func FlattenIterables[T any, I cursor.Iterable[T]](outer cursor.DoubleEnded[I]) *FlattenIter[T] {
	inner := cursor.Map[I, cursor.Cursor[T]](outer, func(it I) cursor.Cursor[T] {
		return it.Iter()
	})
	return Flatten(cursor.DoubleEnded[cursor.Cursor[T]](inner))
}

// Next yields from the front inner cursor, opening new ones from the front of
// outer as needed. Once outer is exhausted the remainder of the back inner
// cursor is read front to back.
func (f *FlattenIter[T]) Next() (v T, ok bool) {
	for {
		if f.front != nil {
			if v, ok = f.front.Next(); ok {
				return v, true
			}
			f.front = nil
		}
		inner, more := f.outer.Next()
		if !more {
			break
		}
		f.front = inner
	}
	if f.back != nil {
		if v, ok = f.back.Next(); ok {
			return v, true
		}
		f.back = nil
	}
	return v, false
}

// NextBack mirrors Next: it drains the back inner cursor from its end, opens
// new ones from the back of outer, and once outer is exhausted reads the
// remainder of the front inner cursor back to front.
//
// It panics with an error wrapping cursor.ErrNotDoubleEnded if outer or the
// inner cursor being read cannot move backwards.
func (f *FlattenIter[T]) NextBack() (v T, ok bool) {
	outer := cursor.Backwards(f.outer)
	for {
		if f.back != nil {
			if v, ok = cursor.Backwards(f.back).NextBack(); ok {
				return v, true
			}
			f.back = nil
		}
		inner, more := outer.NextBack()
		if !more {
			break
		}
		f.back = inner
	}
	if f.front != nil {
		if v, ok = cursor.Backwards(f.front).NextBack(); ok {
			return v, true
		}
		f.front = nil
	}
	return v, false
}
