package imaging

import (
	"image"
	"image/draw"
	"math"

	"github.com/disintegration/imaging"
)

// CompositeCircle cuts the circular region (cx, cy, r) out of src and
// returns it as a standalone square avatar of side 2*round(r): the circle's
// content centered on a fully transparent background, with the inscribed
// circular alpha mask applied.
//
// The circle's bounding box is clamped to the image bounds before cropping,
// and the paste offset compensates for the clamp, so a circle cut off by an
// image edge still lands centered in the output; only the clipped pixels are
// missing. src must be re-based at the origin (Load guarantees this).
func CompositeCircle(src image.Image, cx, cy, r float64) *image.NRGBA {
	bounds := src.Bounds()

	cxi := int(math.Round(cx))
	cyi := int(math.Round(cy))
	ri := int(math.Round(r))
	if ri < 1 {
		ri = 1
	}
	side := 2 * ri

	x0 := clamp(cxi-ri, 0, bounds.Dx())
	x1 := clamp(cxi+ri, 0, bounds.Dx())
	y0 := clamp(cyi-ri, 0, bounds.Dy())
	y1 := clamp(cyi+ri, 0, bounds.Dy())

	cropped := imaging.Crop(src, image.Rect(x0, y0, x1, y1))

	// Offset so the circle center maps to the output center even when the
	// bounding box was clamped at an edge.
	pasteX := ri - (cxi - x0)
	pasteY := ri - (cyi - y0)

	out := image.NewNRGBA(image.Rect(0, 0, side, side))
	target := image.Rect(pasteX, pasteY, pasteX+cropped.Bounds().Dx(), pasteY+cropped.Bounds().Dy())
	draw.Draw(out, target, cropped, image.Point{}, draw.Src)

	return ApplyCircleMask(out)
}

// clamp constrains an integer value to the range [min, max].
func clamp(val, min, max int) int {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}
