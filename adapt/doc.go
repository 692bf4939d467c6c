/*
Package adapt provides lazy adapters over the pull-based cursors of package cursor.

  - [Cycle] repeats a finite, re-iterable sequence forever.
  - [FlatMap] maps every outer item to an inner cursor and drains each inner
    cursor before pulling the next outer item.
  - [Flatten] concatenates a sequence of cursors and can be drained from the
    front, the back, or both in any interleaving.

Nothing is computed ahead of time: outer items are pulled and transform functions
are called only when a consumer asks for the next value.

# Double-ended flattening

[FlattenIter] keeps two inner cursors open, one taken from the front of the outer
cursor and one from its back. Each is drained from its own end before the next
inner cursor is pulled from that end. When the outer cursor runs dry, whatever is
left in the opposite side's inner cursor is read through the fallback path, so
mixing Next and NextBack never skips or repeats an item:

	f := adapt.FlattenSlices([][]int{{1, 2, 3}, {4, 5, 6}})
	f.NextBack() // 6
	f.Next()     // 1
	f.NextBack() // 5
	f.Next()     // 2
	f.NextBack() // 4
	f.Next()     // 3
	f.NextBack() // exhausted

The outer cursor guarantees that no outer item is pulled by both ends.

# Errors

Exhaustion is reported by a false second result, never by an error. Calling
NextBack when an inner cursor can only move forward panics with an error wrapping
[cursor.ErrNotDoubleEnded]. Panics raised by caller-supplied functions are not
recovered.

Adapters are owned by a single consumer and are not safe for concurrent use.
*/
package adapt
