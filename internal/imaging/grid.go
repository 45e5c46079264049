package imaging

import (
	"fmt"
	"image"

	"github.com/disintegration/imaging"
)

// SliceGrid deterministically partitions src into a rows x cols grid and
// returns one circular avatar per cell, in row-major order (row 0 left to
// right, then row 1, and so on).
//
// Cell dimensions use integer division, so a trailing remainder of pixels on
// the right and bottom edges is discarded. Within each cell the largest
// centered square is cropped (equal margins trimmed from the longer axis)
// and the inscribed circular mask applied, the same output contract as
// CompositeCircle. Unlike the detection path there is no failure mode: the
// result always holds exactly rows*cols avatars.
func SliceGrid(src image.Image, rows, cols int) ([]*image.NRGBA, error) {
	if rows < 1 || cols < 1 {
		return nil, fmt.Errorf("invalid grid %dx%d: rows and cols must be positive", rows, cols)
	}

	bounds := src.Bounds()
	cellW := bounds.Dx() / cols
	cellH := bounds.Dy() / rows
	if cellW < 1 || cellH < 1 {
		return nil, fmt.Errorf("grid %dx%d too fine for %dx%d image", rows, cols, bounds.Dx(), bounds.Dy())
	}

	side := cellW
	if cellH < side {
		side = cellH
	}

	avatars := make([]*image.NRGBA, 0, rows*cols)
	for row := 0; row < rows; row++ {
		for col := 0; col < cols; col++ {
			x0 := bounds.Min.X + col*cellW
			y0 := bounds.Min.Y + row*cellH
			cell := imaging.Crop(src, image.Rect(x0, y0, x0+cellW, y0+cellH))
			square := imaging.CropCenter(cell, side, side)
			avatars = append(avatars, ApplyCircleMask(square))
		}
	}
	return avatars, nil
}
