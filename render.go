package xwfill

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"os"
	"strings"

	xdraw "golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// LetterGrid lays an assignment out as a Height x Width rune matrix.
// Cells not covered by any assigned slot hold the zero rune.
func LetterGrid(c *Crossword, assignment map[Slot]string) [][]rune {
	letters := make([][]rune, c.Height)
	for i := range letters {
		letters[i] = make([]rune, c.Width)
	}
	for slot, word := range assignment {
		for k, cell := range slot.cells() {
			letters[cell[0]][cell[1]] = rune(word[k])
		}
	}
	return letters
}

// Render returns a textual representation of the filled puzzle, one grid
// row per line. Blocked cells render as '█'.
func Render(c *Crossword, assignment map[Slot]string) string {
	letters := LetterGrid(c, assignment)

	var b strings.Builder
	for i := range c.Height {
		for j := range c.Width {
			switch {
			case !c.Structure[i][j]:
				b.WriteRune('█')
			case letters[i][j] != 0:
				b.WriteRune(letters[i][j])
			default:
				b.WriteRune(' ')
			}
		}
		if i < c.Height-1 {
			b.WriteRune('\n')
		}
	}
	return b.String()
}

const (
	cellSize   = 100
	cellBorder = 2
	glyphScale = 6
)

// SavePNG writes the filled puzzle as a PNG image: black canvas, white
// fillable cells, centered black letters.
func SavePNG(c *Crossword, assignment map[Slot]string, path string) error {
	letters := LetterGrid(c, assignment)

	img := image.NewRGBA(image.Rect(0, 0, c.Width*cellSize, c.Height*cellSize))
	xdraw.Draw(img, img.Bounds(), image.NewUniform(color.Black), image.Point{}, xdraw.Src)

	for i := range c.Height {
		for j := range c.Width {
			if !c.Structure[i][j] {
				continue
			}
			cell := image.Rect(
				j*cellSize+cellBorder,
				i*cellSize+cellBorder,
				(j+1)*cellSize-cellBorder,
				(i+1)*cellSize-cellBorder,
			)
			xdraw.Draw(img, cell, image.NewUniform(color.White), image.Point{}, xdraw.Src)
			if letters[i][j] != 0 {
				drawLetter(img, cell, letters[i][j])
			}
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return fmt.Errorf("encoding %s: %w", path, err)
	}
	return f.Close()
}

// drawLetter rasterizes one letter at basicfont size and scales it up into
// the center of the cell. Nearest-neighbor keeps the bitmap font's edges.
func drawLetter(dst *image.RGBA, cell image.Rectangle, letter rune) {
	face := basicfont.Face7x13
	glyph := image.NewRGBA(image.Rect(0, 0, face.Advance, face.Height))
	drawer := &font.Drawer{
		Dst:  glyph,
		Src:  image.NewUniform(color.Black),
		Face: face,
		Dot:  fixed.P(0, face.Ascent),
	}
	drawer.DrawString(strings.ToUpper(string(letter)))

	scaled := image.Rect(0, 0, face.Advance*glyphScale, face.Height*glyphScale)
	target := scaled.Add(image.Pt(
		cell.Min.X+(cell.Dx()-scaled.Dx())/2,
		cell.Min.Y+(cell.Dy()-scaled.Dy())/2,
	))
	xdraw.NearestNeighbor.Scale(dst, target, glyph, glyph.Bounds(), xdraw.Over, nil)
}
