package xwfill

import (
	"cmp"
	"errors"
	"fmt"
	"slices"
)

// Direction is an enum representing the direction of a slot in a puzzle, either 'Across' or 'Down'.
type Direction int

const (
	Across Direction = iota
	Down
)

func (d Direction) String() string {
	if d == Down {
		return "down"
	}
	return "across"
}

// Slot is a maximal run of fillable cells to be filled with one word.
//
// Slots are value types: two slots are equal iff all four fields match,
// so they can be used directly as map keys.
type Slot struct {
	Row       int
	Col       int
	Length    int
	Direction Direction
}

func (s Slot) String() string {
	return fmt.Sprintf("(%d,%d) %s, length %d", s.Row, s.Col, s.Direction, s.Length)
}

// cells returns the grid coordinates covered by the slot, in word order.
func (s Slot) cells() [][2]int {
	cells := make([][2]int, s.Length)
	for k := range s.Length {
		if s.Direction == Down {
			cells[k] = [2]int{s.Row + k, s.Col}
		} else {
			cells[k] = [2]int{s.Row, s.Col + k}
		}
	}
	return cells
}

// Overlap marks the shared letter position between two intersecting slots:
// X is the index into the first slot's word, Y into the second's.
type Overlap struct {
	X int
	Y int
}

// Crossword is the immutable puzzle shape: grid dimensions, which cells are
// fillable, the slot set, and the overlap relation between slots.
type Crossword struct {
	Height int
	Width  int

	// Structure[row][col] is true iff the cell is part of the puzzle.
	Structure [][]bool

	// Slots holds every slot in the puzzle, sorted by (row, col, direction).
	Slots []Slot

	overlaps  map[[2]Slot]Overlap
	neighbors map[Slot][]Slot
}

var (
	ErrEmptyStructure = errors.New("structure has no rows")
	ErrNoSlots        = errors.New("structure has no slots")
)

// ParseStructure builds a Crossword from textual structure rows. An
// underscore marks a fillable cell; any other character blocks the cell.
// Ragged rows are padded with blocked cells. A slot is a maximal horizontal
// or vertical run of at least two fillable cells.
func ParseStructure(rows []string) (*Crossword, error) {
	if len(rows) == 0 {
		return nil, ErrEmptyStructure
	}

	// Rows are indexed by rune so multibyte block characters keep columns
	// aligned.
	runeRows := make([][]rune, len(rows))
	height := len(rows)
	width := 0
	for i, row := range rows {
		runeRows[i] = []rune(row)
		width = max(width, len(runeRows[i]))
	}

	structure := make([][]bool, height)
	for i, row := range runeRows {
		structure[i] = make([]bool, width)
		for j, r := range row {
			structure[i][j] = r == '_'
		}
	}

	c := &Crossword{
		Height:    height,
		Width:     width,
		Structure: structure,
	}

	c.Slots = findSlots(structure)
	if len(c.Slots) == 0 {
		return nil, ErrNoSlots
	}
	c.index()

	return c, nil
}

// Overlap returns the overlap between two distinct slots, if any. The first
// offset indexes into x's word, the second into y's.
func (c *Crossword) Overlap(x, y Slot) (Overlap, bool) {
	ov, ok := c.overlaps[[2]Slot{x, y}]
	return ov, ok
}

// Neighbors returns the slots sharing a cell with x, sorted by
// (row, col, direction). The returned slice must not be modified.
func (c *Crossword) Neighbors(x Slot) []Slot {
	return c.neighbors[x]
}

func findSlots(structure [][]bool) []Slot {
	var slots []Slot
	height := len(structure)
	width := len(structure[0])

	for i := range height {
		for j := range width {
			if !structure[i][j] {
				continue
			}

			// A slot starts where a run begins, i.e. the previous cell in
			// its direction is blocked or off-grid.
			if j == 0 || !structure[i][j-1] {
				length := 1
				for k := j + 1; k < width && structure[i][k]; k++ {
					length++
				}
				if length > 1 {
					slots = append(slots, Slot{Row: i, Col: j, Length: length, Direction: Across})
				}
			}

			if i == 0 || !structure[i-1][j] {
				length := 1
				for k := i + 1; k < height && structure[k][j]; k++ {
					length++
				}
				if length > 1 {
					slots = append(slots, Slot{Row: i, Col: j, Length: length, Direction: Down})
				}
			}
		}
	}

	slices.SortFunc(slots, compareSlots)
	return slots
}

// index precomputes the overlap and neighbor relations for all slot pairs,
// so the solver never has to intersect cell runs during search.
func (c *Crossword) index() {
	c.overlaps = make(map[[2]Slot]Overlap)
	c.neighbors = make(map[Slot][]Slot, len(c.Slots))

	cellIndex := make(map[[2]int]map[Slot]int)
	for _, slot := range c.Slots {
		for k, cell := range slot.cells() {
			if cellIndex[cell] == nil {
				cellIndex[cell] = make(map[Slot]int)
			}
			cellIndex[cell][slot] = k
		}
	}

	for _, occupants := range cellIndex {
		for x, kx := range occupants {
			for y, ky := range occupants {
				if x == y {
					continue
				}
				c.overlaps[[2]Slot{x, y}] = Overlap{X: kx, Y: ky}
			}
		}
	}

	for pair := range c.overlaps {
		c.neighbors[pair[0]] = append(c.neighbors[pair[0]], pair[1])
	}
	for _, ns := range c.neighbors {
		slices.SortFunc(ns, compareSlots)
	}
}

func compareSlots(a, b Slot) int {
	if v := cmp.Compare(a.Row, b.Row); v != 0 {
		return v
	}
	if v := cmp.Compare(a.Col, b.Col); v != 0 {
		return v
	}
	if v := cmp.Compare(int(a.Direction), int(b.Direction)); v != 0 {
		return v
	}
	return cmp.Compare(a.Length, b.Length)
}
