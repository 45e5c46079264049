package detection

import (
	"image"
	"math"
	"sort"

	"github.com/anthonynsimon/bild/blur"

	"avatar-extract/internal/imaging"
)

// houghStrategy detects circles with a gradient-directed Hough transform.
//
// For each radius in [MinRadius, MaxRadius], every edge pixel casts two votes
// along its gradient direction (one per sign, since a dark avatar on a light
// background and the reverse produce opposite gradients). Votes concentrate
// at the centers of true circles; accumulator peaks above the confidence
// threshold become candidates, and candidates closer together than MinDist
// are merged keeping the strongest vote.
type houghStrategy struct{}

func (houghStrategy) Name() string { return "hough" }

// candidate pairs a circle with its accumulator vote for ranking during
// duplicate suppression.
type candidate struct {
	circle Circle
	votes  int
}

func (houghStrategy) Detect(src image.Image, p Params) []Circle {
	gray := imaging.Grayscale(src)
	blurred := blur.Gaussian(gray, p.BlurRadius)

	bounds := blurred.Bounds()
	width := bounds.Dx()
	height := bounds.Dy()

	mag, theta := sobelGradient(blurred, width, height)

	minR := int(math.Round(p.MinRadius))
	maxR := int(math.Round(p.MaxRadius))
	if minR < 1 {
		minR = 1
	}

	var candidates []candidate
	for radius := minR; radius <= maxR; radius++ {
		acc := make([][]int, height)
		for y := range acc {
			acc[y] = make([]int, width)
		}

		// Vote along the gradient direction, both ways.
		r := float64(radius)
		for y := 0; y < height; y++ {
			for x := 0; x < width; x++ {
				if mag[y][x] < p.EdgeThreshold {
					continue
				}
				dx := r * math.Cos(theta[y][x])
				dy := r * math.Sin(theta[y][x])
				for _, sign := range [2]float64{1, -1} {
					cx := x + int(math.Round(sign*dx))
					cy := y + int(math.Round(sign*dy))
					if cx >= 0 && cx < width && cy >= 0 && cy < height {
						acc[cy][cx]++
					}
				}
			}
		}

		// Gradient estimation on a raster scatters votes a pixel or two
		// around the true center; a 3x3 box sum gathers them back before
		// thresholding.
		smooth := boxSum3(acc, width, height)

		threshold := int(p.AccumulatorThreshold * float64(2*radius))
		if threshold < 1 {
			threshold = 1
		}

		for y := radius; y < height-radius; y++ {
			for x := radius; x < width-radius; x++ {
				if smooth[y][x] < threshold || !isLocalMax(smooth, x, y, width, height) {
					continue
				}
				candidates = append(candidates, candidate{
					circle: Circle{X: float64(x), Y: float64(y), R: r},
					votes:  smooth[y][x],
				})
			}
		}
	}

	return suppressDuplicates(candidates, p.MinDist)
}

// sobelGradient computes gradient magnitude (0-255 scale) and direction for
// every pixel of a blurred grayscale image. Border pixels get zero magnitude.
func sobelGradient(img image.Image, width, height int) (mag, theta [][]float64) {
	bounds := img.Bounds()

	lum := make([][]float64, height)
	for y := 0; y < height; y++ {
		lum[y] = make([]float64, width)
		for x := 0; x < width; x++ {
			lum[y][x] = float64(grayValue(img, x+bounds.Min.X, y+bounds.Min.Y))
		}
	}

	mag = make([][]float64, height)
	theta = make([][]float64, height)
	for y := 0; y < height; y++ {
		mag[y] = make([]float64, width)
		theta[y] = make([]float64, width)
		if y == 0 || y == height-1 {
			continue
		}
		for x := 1; x < width-1; x++ {
			gx := lum[y-1][x+1] + 2*lum[y][x+1] + lum[y+1][x+1] -
				lum[y-1][x-1] - 2*lum[y][x-1] - lum[y+1][x-1]
			gy := lum[y+1][x-1] + 2*lum[y+1][x] + lum[y+1][x+1] -
				lum[y-1][x-1] - 2*lum[y-1][x] - lum[y-1][x+1]
			// Sobel responses reach 4x the intensity step; normalize back
			// to the 0-255 scale the threshold is specified in.
			mag[y][x] = math.Sqrt(gx*gx+gy*gy) / 4
			theta[y][x] = math.Atan2(gy, gx)
		}
	}
	return mag, theta
}

// grayValue converts a pixel to grayscale using ITU-R BT.601 luminance weights.
func grayValue(img image.Image, x, y int) uint8 {
	r, g, b, _ := img.At(x, y).RGBA()
	return uint8(float64(r>>8)*0.299 + float64(g>>8)*0.587 + float64(b>>8)*0.114)
}

// boxSum3 returns, for each cell, the sum of the 3x3 neighborhood around it.
func boxSum3(acc [][]int, width, height int) [][]int {
	out := make([][]int, height)
	for y := 0; y < height; y++ {
		out[y] = make([]int, width)
		for x := 0; x < width; x++ {
			sum := 0
			for dy := -1; dy <= 1; dy++ {
				for dx := -1; dx <= 1; dx++ {
					ny, nx := y+dy, x+dx
					if ny >= 0 && ny < height && nx >= 0 && nx < width {
						sum += acc[ny][nx]
					}
				}
			}
			out[y][x] = sum
		}
	}
	return out
}

// isLocalMax reports whether (x, y) holds the largest value within a 5-pixel
// window. Ties resolve in favor of the candidate so plateaus still detect.
func isLocalMax(acc [][]int, x, y, width, height int) bool {
	for dy := -5; dy <= 5; dy++ {
		for dx := -5; dx <= 5; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			ny, nx := y+dy, x+dx
			if ny >= 0 && ny < height && nx >= 0 && nx < width {
				if acc[ny][nx] > acc[y][x] {
					return false
				}
			}
		}
	}
	return true
}

// suppressDuplicates keeps, for every cluster of candidates whose centers lie
// within minDist of each other, only the candidate with the strongest vote.
// The same avatar is typically detected at several adjacent radii.
func suppressDuplicates(candidates []candidate, minDist float64) []Circle {
	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].votes > candidates[j].votes
	})

	var kept []Circle
	for _, cand := range candidates {
		duplicate := false
		for _, k := range kept {
			if cand.circle.Dist(k) < minDist {
				duplicate = true
				break
			}
		}
		if !duplicate {
			kept = append(kept, cand.circle)
		}
	}
	return kept
}
