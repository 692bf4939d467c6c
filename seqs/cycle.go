package seqs

import (
	"iter"

	"strand/adapt"
	"strand/cursor"
)

// Cycle yields the elements of seq over and over.
//
// seq is ranged over once per pass, so it must be re-iterable (slices.Values,
// maps.Keys, a closure over a fixed collection, ...). A pass that yields
// nothing ends the cycle, which makes Cycle of an empty sequence empty rather
// than an endless loop.
func Cycle[T any](seq iter.Seq[T]) iter.Seq[T] {
	return func(yield func(T) bool) {
		for {
			n := 0
			for v := range seq {
				if !yield(v) {
					return
				}
				n++
			}
			if n == 0 {
				return
			}
		}
	}
}

// CycleOf yields the items of src over and over, starting a fresh src.Iter()
// for every pass. It ends only if src is empty.
func CycleOf[T any](src cursor.Iterable[T]) iter.Seq[T] {
	return func(yield func(T) bool) {
		drain(adapt.Cycle(src), yield)
	}
}
