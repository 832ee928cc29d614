package xwfill

import "crosswarped.com/xwfill/pkg/primitives"

// arc is an ordered pair of slots queued for revision.
type arc struct {
	x, y Slot
}

// enforceNodeConsistency removes from every domain each word whose length
// differs from the slot's length. Idempotent; an emptied domain is not an
// error here, it surfaces as unsatisfiability later.
func (s *Solver) enforceNodeConsistency() {
	for slot, domain := range s.domains {
		for w := range domain {
			if len(w) != slot.Length {
				delete(domain, w)
			}
		}
	}
}

// revise makes x arc-consistent with y: a candidate p survives iff some
// candidate q in domain(y), other than p itself, agrees at the overlap.
// The self-exclusion matters because two slots never share a word, so a
// candidate supported only by itself has no real support.
//
// Reports whether domain(x) changed.
func (s *Solver) revise(x, y Slot) bool {
	ov, ok := s.crossword.Overlap(x, y)
	if !ok {
		return false
	}

	support := primitives.DefaultLetterCounts()
	for q := range s.domains[y] {
		support.Add(rune(q[ov.Y]))
	}

	revised := false
	for p := range s.domains[x] {
		n := support.Count(rune(p[ov.X]))
		if s.domains[y][p] && p[ov.Y] == p[ov.X] {
			// p's own entry in domain(y) landed in this bucket.
			n--
		}
		if n == 0 {
			delete(s.domains[x], p)
			revised = true
		}
	}
	return revised
}

// ac3 propagates binary constraints to a fixpoint. The worklist starts as
// the given arcs, or all ordered pairs of distinct slots when nil. When a
// revision shrinks domain(x), every arc (n, x) for neighbors n other than y
// is requeued so the constraint ripples backward. Queue order is FIFO, but
// any order reaches the same fixpoint.
//
// Returns false as soon as some domain empties; true once the worklist
// drains with every domain non-empty.
func (s *Solver) ac3(arcs []arc) bool {
	queue := arcs
	if queue == nil {
		for _, x := range s.crossword.Slots {
			for _, y := range s.crossword.Slots {
				if x != y {
					queue = append(queue, arc{x, y})
				}
			}
		}
	}

	for len(queue) > 0 {
		a := queue[0]
		queue = queue[1:]

		if !s.revise(a.x, a.y) {
			continue
		}
		if len(s.domains[a.x]) == 0 {
			return false
		}
		for _, n := range s.crossword.Neighbors(a.x) {
			if n != a.y {
				queue = append(queue, arc{n, a.x})
			}
		}
	}

	for _, slot := range s.crossword.Slots {
		if len(s.domains[slot]) == 0 {
			return false
		}
	}
	return true
}
