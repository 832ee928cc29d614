package xwfill

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnforceNodeConsistency(t *testing.T) {
	c := crossing(t)
	s := NewSolver(c, []string{"cat", "horse", "at", "dog", "tremendous"})

	s.enforceNodeConsistency()
	for _, slot := range c.Slots {
		for w := range s.domains[slot] {
			assert.Equal(t, slot.Length, len(w))
		}
		assert.ElementsMatch(t, []string{"cat", "dog"}, s.Domain(slot))
	}

	// Idempotent: a second pass changes nothing.
	before := make(map[Slot][]string)
	for _, slot := range c.Slots {
		before[slot] = s.Domain(slot)
	}
	s.enforceNodeConsistency()
	for _, slot := range c.Slots {
		assert.Equal(t, before[slot], s.Domain(slot))
	}
}

func TestRevise_NoOverlap(t *testing.T) {
	c := mustParse(t, "___", "###", "___")
	s := NewSolver(c, []string{"cat", "dog"})
	s.enforceNodeConsistency()

	assert.False(t, s.revise(c.Slots[0], c.Slots[1]))
	assert.ElementsMatch(t, []string{"cat", "dog"}, s.Domain(c.Slots[0]))
}

func TestRevise_RemovesUnsupported(t *testing.T) {
	c := crossing(t)
	across := Slot{Row: 0, Col: 0, Length: 3, Direction: Across}
	down := Slot{Row: 0, Col: 1, Length: 3, Direction: Down}

	s := NewSolver(c, []string{"cat", "dog", "art"})
	s.enforceNodeConsistency()

	// Only "cat" has a down-word starting with its middle letter.
	require.True(t, s.revise(across, down))
	assert.Equal(t, []string{"cat"}, s.Domain(across))

	// No further removals on a repeat call.
	assert.False(t, s.revise(across, down))
}

func TestRevise_SelfSupportExcluded(t *testing.T) {
	// Across slot at (1,0) crossed by a down slot at (0,1): the overlap is
	// offset 1 in both words, so a word can trivially agree with itself.
	c := mustParse(t, "#_#", "___", "#_#")
	across := Slot{Row: 1, Col: 0, Length: 3, Direction: Across}
	down := Slot{Row: 0, Col: 1, Length: 3, Direction: Down}

	ov, ok := c.Overlap(across, down)
	require.True(t, ok)
	require.Equal(t, Overlap{X: 1, Y: 1}, ov)

	// "aba" agrees with itself at the overlap, but a word cannot support
	// itself: the domain must empty.
	s := NewSolver(c, []string{"aba"})
	s.enforceNodeConsistency()
	require.True(t, s.revise(across, down))
	assert.Empty(t, s.Domain(across))

	// With a genuine second supporter both candidates survive.
	s = NewSolver(c, []string{"aba", "cbc"})
	s.enforceNodeConsistency()
	assert.False(t, s.revise(across, down))
	assert.ElementsMatch(t, []string{"aba", "cbc"}, s.Domain(across))
}

func TestAC3_Unsatisfiable(t *testing.T) {
	c := crossing(t)
	s := NewSolver(c, []string{"cat", "dog"})
	s.enforceNodeConsistency()

	assert.False(t, s.ac3(nil))
}

func TestAC3_Fixpoint(t *testing.T) {
	c := crossing(t)
	s := NewSolver(c, []string{"cat", "art", "tar", "rat", "tan", "bob", "zzz"})
	s.enforceNodeConsistency()
	require.True(t, s.ac3(nil))

	// Every surviving candidate has a distinct supporter in every
	// overlapping neighbor's domain.
	for _, x := range c.Slots {
		for _, y := range c.Slots {
			ov, ok := c.Overlap(x, y)
			if !ok {
				continue
			}
			for w := range s.domains[x] {
				supported := false
				for q := range s.domains[y] {
					if q != w && w[ov.X] == q[ov.Y] {
						supported = true
						break
					}
				}
				assert.True(t, supported, "%q in %v has no support in %v", w, x, y)
			}
		}
	}
}

func TestAC3_InitialArcs(t *testing.T) {
	c := crossing(t)
	across := Slot{Row: 0, Col: 0, Length: 3, Direction: Across}
	down := Slot{Row: 0, Col: 1, Length: 3, Direction: Down}

	s := NewSolver(c, []string{"cat", "art", "dog"})
	s.enforceNodeConsistency()

	// Revising only (down, across) prunes down-words whose first letter is
	// not some other across-word's middle letter: only "art" (via "cat")
	// survives. The across domain is untouched.
	require.True(t, s.ac3([]arc{{down, across}}))
	assert.Equal(t, []string{"art"}, s.Domain(down))
	assert.ElementsMatch(t, []string{"cat", "art", "dog"}, s.Domain(across))
}
