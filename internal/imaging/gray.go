package imaging

import (
	"image"
	"image/color"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// Grayscale converts an image to an 8-bit luminance buffer using ITU-R
// BT.601 weights (Y = 0.299R + 0.587G + 0.114B). The result is re-based at
// the origin.
func Grayscale(src image.Image) *image.Gray {
	bounds := src.Bounds()
	width := bounds.Dx()
	height := bounds.Dy()

	gray := image.NewGray(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			r, g, b, _ := src.At(x+bounds.Min.X, y+bounds.Min.Y).RGBA()
			lum := float64(r>>8)*0.299 + float64(g>>8)*0.587 + float64(b>>8)*0.114
			gray.SetGray(x, y, color.Gray{Y: uint8(lum)})
		}
	}
	return gray
}

// BinarizeDark splits an image into foreground and background for contour
// extraction. A pixel is foreground when its HSL lightness falls below the
// cutoff (0-255 scale), so anything darker than near-white counts as
// content. Fully transparent pixels are background regardless of color.
//
// The result is indexed [y][x] over a buffer re-based at the origin.
func BinarizeDark(src image.Image, cutoff uint8) [][]bool {
	bounds := src.Bounds()
	width := bounds.Dx()
	height := bounds.Dy()

	fg := make([][]bool, height)
	for y := 0; y < height; y++ {
		fg[y] = make([]bool, width)
		for x := 0; x < width; x++ {
			c, ok := colorful.MakeColor(src.At(x+bounds.Min.X, y+bounds.Min.Y))
			if !ok {
				continue
			}
			_, _, l := c.Hsl()
			if l*255 < float64(cutoff) {
				fg[y][x] = true
			}
		}
	}
	return fg
}
