package xwfill

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseStructure_Ring(t *testing.T) {
	c := mustParse(t,
		"____",
		"_##_",
		"_##_",
		"____",
	)

	assert.Equal(t, 4, c.Height)
	assert.Equal(t, 4, c.Width)

	top := Slot{Row: 0, Col: 0, Length: 4, Direction: Across}
	bottom := Slot{Row: 3, Col: 0, Length: 4, Direction: Across}
	left := Slot{Row: 0, Col: 0, Length: 4, Direction: Down}
	right := Slot{Row: 0, Col: 3, Length: 4, Direction: Down}
	assert.ElementsMatch(t, []Slot{top, bottom, left, right}, c.Slots)

	ov, ok := c.Overlap(top, left)
	require.True(t, ok)
	assert.Equal(t, Overlap{X: 0, Y: 0}, ov)

	ov, ok = c.Overlap(top, right)
	require.True(t, ok)
	assert.Equal(t, Overlap{X: 3, Y: 0}, ov)

	ov, ok = c.Overlap(bottom, right)
	require.True(t, ok)
	assert.Equal(t, Overlap{X: 3, Y: 3}, ov)

	// The reversed pair swaps the offsets.
	ov, ok = c.Overlap(right, bottom)
	require.True(t, ok)
	assert.Equal(t, Overlap{X: 3, Y: 3}, ov)

	// Parallel slots never overlap.
	_, ok = c.Overlap(top, bottom)
	assert.False(t, ok)

	assert.Equal(t, []Slot{left, right}, c.Neighbors(top))
	assert.Equal(t, []Slot{top, bottom}, c.Neighbors(left))
}

func TestParseStructure_RaggedRows(t *testing.T) {
	// Short rows are padded with blocked cells.
	c := mustParse(t,
		"___",
		"_",
	)
	assert.Equal(t, 2, c.Height)
	assert.Equal(t, 3, c.Width)
	assert.False(t, c.Structure[1][1])
	assert.False(t, c.Structure[1][2])
	assert.ElementsMatch(t, []Slot{
		{Row: 0, Col: 0, Length: 3, Direction: Across},
		{Row: 0, Col: 0, Length: 2, Direction: Down},
	}, c.Slots)
}

func TestParseStructure_SingleCellsAreNotSlots(t *testing.T) {
	_, err := ParseStructure([]string{"_#_", "###"})
	assert.ErrorIs(t, err, ErrNoSlots)
}

func TestParseStructure_Errors(t *testing.T) {
	_, err := ParseStructure(nil)
	assert.ErrorIs(t, err, ErrEmptyStructure)

	_, err = ParseStructure([]string{"###", "###"})
	assert.ErrorIs(t, err, ErrNoSlots)
}

func TestSlot_String(t *testing.T) {
	s := Slot{Row: 1, Col: 2, Length: 5, Direction: Down}
	assert.Equal(t, "(1,2) down, length 5", s.String())
}
