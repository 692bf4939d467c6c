package adapt

import "strand/cursor"

// FlatMapIter maps outer items to inner cursors and concatenates them.
type FlatMapIter[S, T any] struct {
	outer cursor.Cursor[S]
	inner cursor.Cursor[T] // nil until the next outer item is pulled
	fn    func(S) cursor.Cursor[T]
}

// FlatMap returns a cursor over fn(o1), fn(o2), ... in order, where o1, o2, ...
// are the items of outer. fn is called lazily, once per outer item, when that
// item is reached. An empty inner cursor, or fn returning a nil interface
// value, contributes nothing. A typed nil pointer is not treated as empty.
func FlatMap[S, T any](outer cursor.Cursor[S], fn func(S) cursor.Cursor[T]) *FlatMapIter[S, T] {
	return &FlatMapIter[S, T]{outer: outer, fn: fn}
}

func (f *FlatMapIter[S, T]) Next() (v T, ok bool) {
	for {
		if f.inner != nil {
			if v, ok = f.inner.Next(); ok {
				return v, true
			}
			f.inner = nil
		}
		o, more := f.outer.Next()
		if !more {
			return v, false
		}
		f.inner = f.fn(o)
	}
}
