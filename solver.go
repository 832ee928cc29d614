package xwfill

import (
	"cmp"
	"context"
	"errors"
	"maps"
	"slices"

	"crosswarped.com/xwfill/pkg/primitives"
)

// ErrNoSolution is returned when no complete consistent assignment exists,
// either because propagation emptied a domain or because backtracking
// exhausted every branch.
var ErrNoSolution = errors.New("no solution")

// Solver owns the per-slot candidate domains for one fill attempt.
//
// Domains shrink monotonically during the consistency phase and are then
// read-only for the whole search: the search never prunes per branch, it
// relies on direct consistency checks against the post-propagation domains.
// Each Solver is independent, so concurrent solves over the same Crossword
// never interfere.
type Solver struct {
	crossword *Crossword
	domains   map[Slot]map[string]bool
}

// NewSolver creates a solver with every slot's domain set to the full
// vocabulary. The crossword is treated as read-only.
func NewSolver(c *Crossword, words []string) *Solver {
	domains := make(map[Slot]map[string]bool, len(c.Slots))
	for _, slot := range c.Slots {
		domain := make(map[string]bool, len(words))
		for _, w := range words {
			domain[w] = true
		}
		domains[slot] = domain
	}
	return &Solver{crossword: c, domains: domains}
}

// Domain returns a sorted copy of a slot's remaining candidates.
func (s *Solver) Domain(slot Slot) []string {
	words := slices.Collect(maps.Keys(s.domains[slot]))
	slices.Sort(words)
	return words
}

// Solve enforces node and arc consistency, then searches for a complete
// assignment. It returns ErrNoSolution when the puzzle is unsatisfiable,
// or ctx.Err() if the context is canceled mid-search.
func (s *Solver) Solve(ctx context.Context) (map[Slot]string, error) {
	s.enforceNodeConsistency()
	if !s.ac3(nil) {
		return nil, ErrNoSolution
	}

	assignment, err := s.backtrack(ctx, map[Slot]string{})
	if err != nil {
		return nil, err
	}
	if assignment == nil {
		return nil, ErrNoSolution
	}
	return assignment, nil
}

// backtrack extends a partial assignment one slot at a time. Each branch
// owns its own assignment copy, so abandoning a branch needs no undo.
// A nil assignment with a nil error means the branch is exhausted.
func (s *Solver) backtrack(ctx context.Context, assignment map[Slot]string) (map[Slot]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if len(assignment) == len(s.crossword.Slots) {
		return assignment, nil
	}

	slot := s.selectUnassignedSlot(assignment)
	for _, val := range s.orderDomainValues(slot, assignment) {
		next := maps.Clone(assignment)
		next[slot] = val
		if !s.isConsistent(next) {
			continue
		}
		result, err := s.backtrack(ctx, next)
		if err != nil {
			return nil, err
		}
		if result != nil {
			return result, nil
		}
	}
	return nil, nil
}

// selectUnassignedSlot picks the unassigned slot with the fewest remaining
// candidates, breaking ties by highest degree. Remaining ties keep the
// first slot in (row, col, direction) order, since Slots is sorted.
func (s *Solver) selectUnassignedSlot(assignment map[Slot]string) Slot {
	var best Slot
	found := false
	for _, slot := range s.crossword.Slots {
		if _, assigned := assignment[slot]; assigned {
			continue
		}
		if !found {
			best, found = slot, true
			continue
		}
		if v := cmp.Compare(len(s.domains[slot]), len(s.domains[best])); v != 0 {
			if v < 0 {
				best = slot
			}
			continue
		}
		if len(s.crossword.Neighbors(slot)) > len(s.crossword.Neighbors(best)) {
			best = slot
		}
	}
	return best
}

// orderDomainValues returns the slot's candidates ordered by how few
// candidates they rule out across the slot's unassigned neighbors, ties
// broken lexicographically. Assigned neighbors are skipped: their value is
// fixed and checked directly at assignment time.
func (s *Solver) orderDomainValues(slot Slot, assignment map[Slot]string) []string {
	type overlapIndex struct {
		x      int
		total  int
		counts *primitives.LetterCounts
	}

	var index []overlapIndex
	for _, n := range s.crossword.Neighbors(slot) {
		if _, assigned := assignment[n]; assigned {
			continue
		}
		ov, ok := s.crossword.Overlap(slot, n)
		if !ok {
			continue
		}
		counts := primitives.DefaultLetterCounts()
		for v := range s.domains[n] {
			counts.Add(rune(v[ov.Y]))
		}
		index = append(index, overlapIndex{x: ov.X, total: len(s.domains[n]), counts: counts})
	}

	vals := slices.Collect(maps.Keys(s.domains[slot]))

	// A neighbor candidate conflicts iff it disagrees at the overlap, so
	// conflicts = |domain(n)| - (candidates sharing the overlap letter).
	conflicts := make(map[string]int, len(vals))
	for _, val := range vals {
		count := 0
		for _, oi := range index {
			count += oi.total - oi.counts.Count(rune(val[oi.x]))
		}
		conflicts[val] = count
	}

	slices.SortFunc(vals, func(a, b string) int {
		if v := cmp.Compare(conflicts[a], conflicts[b]); v != 0 {
			return v
		}
		return cmp.Compare(a, b)
	})
	return vals
}

// isConsistent reports whether the assigned words are pairwise distinct,
// fit their slots, and agree at every defined overlap.
func (s *Solver) isConsistent(assignment map[Slot]string) bool {
	for x, wx := range assignment {
		if len(wx) != x.Length {
			return false
		}
		for y, wy := range assignment {
			if x == y {
				continue
			}
			if wx == wy {
				return false
			}
			if ov, ok := s.crossword.Overlap(x, y); ok && wx[ov.X] != wy[ov.Y] {
				return false
			}
		}
	}
	return true
}
