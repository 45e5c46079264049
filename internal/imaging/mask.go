package imaging

import "image"

// ApplyCircleMask replaces the alpha channel of a square buffer with the
// inscribed circle: alpha 255 for pixels whose center lies inside the circle
// of diameter equal to the side, 0 outside. Color bytes outside the circle
// are zeroed too, so nothing pasted there survives in the output.
//
// The buffer is modified in place and returned for chaining.
func ApplyCircleMask(img *image.NRGBA) *image.NRGBA {
	bounds := img.Bounds()
	side := bounds.Dx()

	r := float64(side) / 2
	rr := r * r

	for y := 0; y < bounds.Dy(); y++ {
		row := img.Pix[y*img.Stride : y*img.Stride+side*4]
		dy := float64(y) + 0.5 - r
		for x := 0; x < side; x++ {
			dx := float64(x) + 0.5 - r
			px := row[x*4 : x*4+4]
			if dx*dx+dy*dy <= rr {
				px[3] = 255
			} else {
				px[0], px[1], px[2], px[3] = 0, 0, 0, 0
			}
		}
	}
	return img
}
