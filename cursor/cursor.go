/*
Package cursor defines pull-based iteration contracts and a handful of
concrete cursors to feed them.

A [Cursor] is advanced by repeated calls to Next and reports exhaustion with a
false second result. A [DoubleEnded] cursor can also be drained from the back;
both ends consume the same remaining range and meet in the middle, so an item
taken from one end is never seen from the other.

Where the iter package pushes values into a loop body, cursors let the caller
decide which end to pull from next, which is what the adapters in package
adapt need.

	c := cursor.Of(1, 2, 3, 4)
	c.Next()     // 1, true
	c.NextBack() // 4, true
	c.Next()     // 2, true
	c.NextBack() // 3, true
	c.Next()     // 0, false

Cursors are not safe for concurrent use.
*/
package cursor

// Cursor is an iteration position over a sequence.
//
// Next returns the next item and true, or the zero value and false once the
// sequence is exhausted. An exhausted cursor stays exhausted.
type Cursor[T any] interface {
	Next() (T, bool)
}

// DoubleEnded is a Cursor that can also yield items from the back.
// Next and NextBack share one remaining range; when front and back meet,
// both report exhaustion.
type DoubleEnded[T any] interface {
	Cursor[T]
	NextBack() (T, bool)
}

// Iterable is a sequence that can be traversed any number of times.
// Every call to Iter returns a fresh, independent cursor positioned at the
// start, and never disturbs cursors handed out earlier.
type Iterable[T any] interface {
	Iter() Cursor[T]
}

// Func adapts a plain function to the Cursor interface.
type Func[T any] func() (T, bool)

func (f Func[T]) Next() (T, bool) {
	return f()
}

type emptyCursor[T any] struct{}

func (emptyCursor[T]) Next() (v T, ok bool)     { return v, false }
func (emptyCursor[T]) NextBack() (v T, ok bool) { return v, false }

// Empty returns a cursor that is exhausted from both ends.
func Empty[T any]() DoubleEnded[T] {
	return emptyCursor[T]{}
}
