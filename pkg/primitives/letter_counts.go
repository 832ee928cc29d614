package primitives

import "fmt"

// LetterCounts efficiently counts occurrences of characters in a bounded range.
type LetterCounts struct {
	counts []int
	min    rune
	total  int
}

func NewLetterCounts(min, max rune) *LetterCounts {
	return &LetterCounts{
		counts: make([]int, max-min+1),
		min:    min,
		total:  0,
	}
}

// DefaultLetterCounts is the default histogram for the solver.
// It covers every single-byte value, so indexing a word byte never falls
// out of range regardless of the vocabulary provider's alphabet.
func DefaultLetterCounts() *LetterCounts {
	return NewLetterCounts(0, 0xff)
}

// Add counts one occurrence of a character.
func (c *LetterCounts) Add(r rune) error {
	if r < c.min || r > c.min+rune(len(c.counts)-1) {
		return fmt.Errorf("character %c is out of range", r)
	}

	c.counts[r-c.min]++
	c.total++
	return nil
}

// Count returns the number of occurrences of a character. Characters out of
// range were never added, so their count is zero.
func (c *LetterCounts) Count(r rune) int {
	if r < c.min || r > c.min+rune(len(c.counts)-1) {
		return 0
	}
	return c.counts[r-c.min]
}

// Total returns the number of characters counted, with multiplicity.
func (c *LetterCounts) Total() int {
	return c.total
}

// Distinct returns the number of distinct characters counted.
func (c *LetterCounts) Distinct() int {
	distinct := 0
	for _, n := range c.counts {
		if n > 0 {
			distinct++
		}
	}
	return distinct
}

// Capacity returns the number of distinct characters the histogram can hold.
func (c *LetterCounts) Capacity() int {
	return len(c.counts)
}
