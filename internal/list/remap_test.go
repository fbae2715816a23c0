package list

import (
	"fmt"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"znkr.io/diff"
)

// referenceRemap recomputes the remapped index without walking positional
// shifts. It pairs the two sequences up via the match edits: a tracked
// element that survives maps to its own position in the new sequence, and a
// deleted one maps to the position of its nearest surviving predecessor, or
// -1 when nothing before it survived. remap must agree with this once both
// results are clamped.
func referenceRemap[E comparable](edits []diff.Edit[E], tracked int) int {
	predecessor := -1
	x, y := 0, 0
	for _, e := range edits {
		switch e.Op {
		case diff.Match:
			if x == tracked {
				return y
			}
			if x < tracked {
				predecessor = y
			}
			x++
			y++
		case diff.Delete:
			x++
		case diff.Insert:
			y++
		}
	}
	return predecessor
}

func TestRemapAgainstReference(t *testing.T) {
	t.Parallel()

	cases := []struct {
		before, after []string
	}{
		{[]string{"a", "b", "c"}, []string{"z", "a", "b", "c"}},
		{[]string{"a", "b", "c"}, []string{"b", "c"}},
		{[]string{"a", "b", "c"}, []string{"a", "c"}},
		{[]string{"a", "b", "c"}, []string{"a", "x", "c"}},
		{[]string{"a", "b"}, []string{"a", "x", "b"}},
		{[]string{"a", "b", "c", "d"}, []string{"d", "a"}},
		{[]string{"a", "b"}, []string{"x", "y"}},
		{[]string{"a", "b", "c", "d", "e"}, []string{"b", "x", "d", "y", "e"}},
	}
	for _, tc := range cases {
		t.Run(fmt.Sprintf("%v->%v", tc.before, tc.after), func(t *testing.T) {
			t.Parallel()
			edits := diff.Edits(tc.before, tc.after)
			hi := len(tc.after) - 1
			for tracked := range tc.before {
				got := clamp(0, hi, remap(edits, tracked))
				want := clamp(0, hi, referenceRemap(edits, tracked))
				assert.Equal(t, want, got, "tracked=%d", tracked)
			}
		})
	}
}

func TestRemapSurvivorKeepsIdentity(t *testing.T) {
	t.Parallel()

	// When the tracked element survives the replacement, the remapped index
	// must point at that very element in the new sequence.
	before := []string{"a", "b", "c", "d", "e"}
	after := []string{"x", "b", "d", "e", "y"}
	edits := diff.Edits(before, after)
	for tracked, el := range before {
		survived := false
		for _, n := range after {
			if n == el {
				survived = true
			}
		}
		if !survived {
			continue
		}
		got := remap(edits, tracked)
		require.GreaterOrEqual(t, got, 0)
		require.Less(t, got, len(after))
		assert.Equal(t, el, after[got], "tracked=%d", tracked)
	}
}

func TestRemapRandomized(t *testing.T) {
	t.Parallel()

	// Differential check over random sequences drawn from a small alphabet
	// so that diffs contain plenty of interleaved hunks.
	rng := rand.New(rand.NewPCG(7, 42))
	alphabet := []string{"a", "b", "c", "d", "e"}
	randomSeq := func() []string {
		n := rng.IntN(12)
		seq := make([]string, n)
		for i := range seq {
			seq[i] = alphabet[rng.IntN(len(alphabet))]
		}
		return seq
	}

	for range 500 {
		before, after := randomSeq(), randomSeq()
		if len(before) == 0 || len(after) == 0 {
			continue
		}
		edits := diff.Edits(before, after)
		hi := len(after) - 1
		for tracked := range before {
			got := clamp(0, hi, remap(edits, tracked))
			want := clamp(0, hi, referenceRemap(edits, tracked))
			require.Equal(t, want, got, "before=%v after=%v tracked=%d", before, after, tracked)
		}
	}
}

func TestReplaceRandomizedInvariants(t *testing.T) {
	t.Parallel()

	rng := rand.New(rand.NewPCG(3, 9))
	alphabet := []string{"p", "q", "r", "s"}
	randomSeq := func() []string {
		n := rng.IntN(10)
		seq := make([]string, n)
		for i := range seq {
			seq[i] = alphabet[rng.IntN(len(alphabet))]
		}
		return seq
	}

	for range 500 {
		st := New("rand", randomSeq())
		if st.Len() > 0 {
			st = st.MoveTo(rng.IntN(st.Len()))
		}
		next := st.Replace(randomSeq())
		requireInvariants(t, next)
	}
}
