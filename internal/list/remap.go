package list

import "znkr.io/diff"

// remap walks an edit script and converts tracked, an index valid in the old
// sequence, into the index of the same logical element in the new sequence.
// The walk keeps a cursor into the old sequence and stops once it has moved
// past the tracked position:
//
//   - a match advances the cursor and leaves the relative position alone;
//   - a deletion at or before the tracked position shifts the result left,
//     which lands on the nearest surviving predecessor when the tracked
//     element itself is gone;
//   - an insertion at or before the tracked position shifts the result
//     right.
//
// For disjoint sequences the result can fall outside the new bounds; the
// caller clamps it.
func remap[E comparable](edits []diff.Edit[E], tracked int) int {
	idx := tracked
	src := 0
	for _, e := range edits {
		if src > tracked {
			break
		}
		switch e.Op {
		case diff.Match:
			src++
		case diff.Delete:
			idx--
			src++
		case diff.Insert:
			idx++
		}
	}
	return idx
}
