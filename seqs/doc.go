/*
Package seqs exposes the adapters of package adapt as push-style Go 1.23+
iterators (iter.Seq):

  - [Cycle] replays a re-iterable sequence forever; [CycleOf] does the same for a
    cursor.Iterable.
  - [FlatMap] maps every element to a sequence and concatenates the results.
  - [Flatten] and [FlattenSlices] concatenate a sequence of sequences.

Every adapter is lazy: nothing runs until the returned sequence is ranged over,
and breaking out of the loop stops the source immediately. Sources are pulled
through cursor.Pull, and every pull is stopped before the range loop returns.

	// Round-robin over three workers, ten assignments.
	n := 0
	for w := range seqs.CycleOf(cursor.Slice[string](workers)) {
		assign(w)
		if n++; n == 10 {
			break
		}
	}

Sequences returned here are re-iterable whenever their sources are.
Backward traversal is not available for push iterators; use package adapt when
a consumer needs to pull from both ends.
*/
package seqs
