// Package list implements a selectable ordered collection. It tracks at most
// one selected position and keeps the selection pointing at a sensible
// element across mutations, including wholesale content replacement, where
// the new position is computed from an edit script rather than copied by
// index.
package list

import (
	"slices"

	"znkr.io/diff"
)

// NoSelection is the Selected value of an empty list.
const NoSelection = -1

// State is an ordered collection of elements plus an optional selected
// index. States are values: every operation returns a new State and leaves
// the receiver untouched, so a State can be stored and replaced wholesale by
// the embedding component.
//
// Two invariants hold after every operation: Selected is NoSelection if and
// only if Elements is empty, and otherwise 0 <= Selected < len(Elements).
type State[E comparable] struct {
	// Name identifies the list to the rendering layer, which uses it to key
	// a scrollable region. The list itself does not interpret it.
	Name     string
	Elements []E
	Selected int
}

// New returns a list with the given name and elements. The first element is
// selected when there is one.
func New[E comparable](name string, elements []E) State[E] {
	st := State[E]{
		Name:     name,
		Elements: slices.Clone(elements),
		Selected: NoSelection,
	}
	if len(elements) > 0 {
		st.Selected = 0
	}
	return st
}

// Len returns the number of elements.
func (s State[E]) Len() int {
	return len(s.Elements)
}

// SelectedElement returns the selected element, if any.
func (s State[E]) SelectedElement() (E, bool) {
	if s.Selected == NoSelection {
		var zero E
		return zero, false
	}
	return s.Elements[s.Selected], true
}

// MoveBy moves the selection by delta, clamped into bounds. Without a
// selection there is nothing to move.
func (s State[E]) MoveBy(delta int) State[E] {
	if s.Selected == NoSelection {
		return s
	}
	s.Selected = clamp(0, len(s.Elements)-1, s.Selected+delta)
	return s
}

// MoveTo moves the selection to pos, clamped into bounds. Any negative pos
// selects the last element: the target is computed as len-pos, which for
// negative pos overshoots the end and clamps down to the final index. This
// is long-standing behavior that callers rely on, so it stays.
func (s State[E]) MoveTo(pos int) State[E] {
	if len(s.Elements) == 0 {
		s.Selected = NoSelection
		return s
	}
	target := pos
	if pos < 0 {
		target = len(s.Elements) - pos
	}
	s.Selected = clamp(0, len(s.Elements)-1, target)
	return s
}

// Insert splices e in at pos, clamped into [0, len] so out-of-range
// positions prepend or append. An insertion strictly before the selection
// shifts it right to keep tracking the same element; an insertion exactly at
// the selected index leaves the index where it is, so the new element takes
// over the selection.
func (s State[E]) Insert(pos int, e E) State[E] {
	safePos := clamp(0, len(s.Elements), pos)
	elements := slices.Clone(s.Elements)
	s.Elements = slices.Insert(elements, safePos, e)
	switch {
	case s.Selected == NoSelection:
		s.Selected = 0
	case safePos < s.Selected:
		s.Selected++
	}
	return s
}

// Remove removes the element at pos. Out-of-range positions are ignored.
// Removing the selected element moves the selection to the preceding one,
// except that removing the head always leaves the selection at the head.
func (s State[E]) Remove(pos int) State[E] {
	if len(s.Elements) == 0 || pos < 0 || pos >= len(s.Elements) {
		return s
	}
	sel := s.Selected
	if sel == NoSelection {
		sel = 0
	}
	switch {
	case pos == 0:
		sel = 0
	case pos == s.Selected, pos < s.Selected:
		sel = s.Selected - 1
	}
	elements := slices.Clone(s.Elements)
	s.Elements = slices.Delete(elements, pos, pos+1)
	if len(s.Elements) == 0 {
		s.Selected = NoSelection
	} else {
		s.Selected = sel
	}
	return s
}

// Replace swaps in a whole new element sequence while preserving the
// selection logically: the edit script between the old and new contents is
// used to find where the previously selected element (or its nearest
// surviving predecessor) now lives. Replacing with identical content returns
// the state unchanged without computing a diff.
func (s State[E]) Replace(elements []E) State[E] {
	if slices.Equal(s.Elements, elements) {
		return s
	}
	next := s
	next.Elements = slices.Clone(elements)
	switch {
	case len(elements) == 0:
		next.Selected = NoSelection
	case len(s.Elements) == 0:
		next.Selected = 0
	default:
		tracked := s.Selected
		if tracked == NoSelection {
			tracked = 0
		}
		edits := diff.Edits(s.Elements, elements)
		next.Selected = clamp(0, len(elements)-1, remap(edits, tracked))
	}
	return next
}

func clamp(lo, hi, v int) int {
	return max(lo, min(hi, v))
}
