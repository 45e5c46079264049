package detection

import (
	"image"
	"math"

	"avatar-extract/internal/imaging"
)

// contourStrategy is the fallback detector, used when the Hough transform
// finds nothing (soft or antialiased avatar edges can defeat gradient
// voting). It binarizes the image against a near-white cutoff, extracts
// connected foreground regions, and keeps the regions that are circular
// enough: circularity (4*pi*area/perimeter^2) above the cutoff and enclosing
// radius inside the configured range. Rectangular tiles, text and icons fail
// one of the two tests.
type contourStrategy struct{}

func (contourStrategy) Name() string { return "contour" }

func (contourStrategy) Detect(src image.Image, p Params) []Circle {
	fg := imaging.BinarizeDark(src, p.ForegroundCutoff)
	height := len(fg)
	if height == 0 {
		return nil
	}
	width := len(fg[0])

	var circles []Circle
	visited := make([][]bool, height)
	for y := range visited {
		visited[y] = make([]bool, width)
	}

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			if !fg[y][x] || visited[y][x] {
				continue
			}
			area := fillRegion(fg, visited, x, y, width, height)
			if area < p.MinContourArea {
				continue
			}

			// (x, y) is the topmost-leftmost pixel of the region, the
			// canonical start for boundary tracing.
			boundary, perimeter := traceBoundary(fg, image.Pt(x, y), width, height)
			if perimeter == 0 {
				continue
			}

			circularity := 4 * math.Pi * float64(area) / (perimeter * perimeter)
			if circularity <= p.MinCircularity {
				continue
			}

			cx, cy, r := enclosingCircle(boundary)
			if r > p.MinRadius && r < p.MaxRadius {
				circles = append(circles, Circle{X: cx, Y: cy, R: r})
			}
		}
	}
	return circles
}

// fillRegion marks the 8-connected foreground region containing (startX,
// startY) as visited and returns its pixel area. Stack-based to avoid deep
// recursion on large regions.
func fillRegion(fg, visited [][]bool, startX, startY, width, height int) int {
	stack := []image.Point{{X: startX, Y: startY}}
	area := 0

	for len(stack) > 0 {
		p := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if p.X < 0 || p.X >= width || p.Y < 0 || p.Y >= height {
			continue
		}
		if visited[p.Y][p.X] || !fg[p.Y][p.X] {
			continue
		}

		visited[p.Y][p.X] = true
		area++

		for dy := -1; dy <= 1; dy++ {
			for dx := -1; dx <= 1; dx++ {
				if dx == 0 && dy == 0 {
					continue
				}
				stack = append(stack, image.Pt(p.X+dx, p.Y+dy))
			}
		}
	}
	return area
}

// Neighbor offsets in clockwise screen order (y grows downward), starting
// east. Diagonal steps contribute sqrt(2) to the perimeter, axis steps 1,
// matching arc-length measurement on an 8-connected chain.
var moorDirs = [8]image.Point{
	{1, 0}, {1, 1}, {0, 1}, {-1, 1}, {-1, 0}, {-1, -1}, {0, -1}, {1, -1},
}

var moorStep = [8]float64{1, math.Sqrt2, 1, math.Sqrt2, 1, math.Sqrt2, 1, math.Sqrt2}

// traceBoundary walks the external boundary of the foreground region whose
// topmost-leftmost pixel is start, using Moore-neighbor tracing with
// backtracking. It returns the boundary pixels in order and the Euclidean
// length of the closed chain.
func traceBoundary(fg [][]bool, start image.Point, width, height int) ([]image.Point, float64) {
	inside := func(x, y int) bool {
		return x >= 0 && x < width && y >= 0 && y < height && fg[y][x]
	}

	// The start pixel is topmost-leftmost, so its west neighbor is
	// guaranteed background; tracing enters from there.
	const startBack = 4 // west
	back := startBack
	cur := start

	boundary := []image.Point{start}
	perimeter := 0.0

	// An upper bound on boundary length; guards against a malformed mask.
	limit := 4 * (width + height) * 4
	for i := 0; i < limit; i++ {
		found := -1
		lastBg := back
		for k := 1; k <= 8; k++ {
			j := (back + k) % 8
			n := image.Pt(cur.X+moorDirs[j].X, cur.Y+moorDirs[j].Y)
			if inside(n.X, n.Y) {
				found = j
				break
			}
			lastBg = j
		}
		if found < 0 {
			// Isolated pixel: degenerate closed boundary.
			return boundary, 4
		}

		bgPixel := image.Pt(cur.X+moorDirs[lastBg].X, cur.Y+moorDirs[lastBg].Y)
		perimeter += moorStep[found]
		cur = image.Pt(cur.X+moorDirs[found].X, cur.Y+moorDirs[found].Y)

		// Re-express the backtrack pixel relative to the new current pixel.
		back = dirIndex(bgPixel.X-cur.X, bgPixel.Y-cur.Y)

		if cur == start && back == startBack {
			return boundary, perimeter
		}
		boundary = append(boundary, cur)
	}
	return boundary, perimeter
}

// dirIndex maps a unit offset to its index in moorDirs.
func dirIndex(dx, dy int) int {
	for i, d := range moorDirs {
		if d.X == dx && d.Y == dy {
			return i
		}
	}
	return 0
}

// enclosingCircle fits a minimal enclosing circle to a point set using
// Ritter's bounding-circle algorithm: seed a circle from the two mutually
// farthest-seeming points, then grow it to admit every outlier. The result
// is within a few percent of optimal, which is ample for near-circular
// contours.
func enclosingCircle(pts []image.Point) (cx, cy, r float64) {
	if len(pts) == 0 {
		return 0, 0, 0
	}

	far := func(fromX, fromY float64) (float64, float64) {
		bx, by := float64(pts[0].X), float64(pts[0].Y)
		best := -1.0
		for _, p := range pts {
			dx := float64(p.X) - fromX
			dy := float64(p.Y) - fromY
			if d := dx*dx + dy*dy; d > best {
				best = d
				bx, by = float64(p.X), float64(p.Y)
			}
		}
		return bx, by
	}

	ax, ay := far(float64(pts[0].X), float64(pts[0].Y))
	bx, by := far(ax, ay)

	cx = (ax + bx) / 2
	cy = (ay + by) / 2
	r = math.Hypot(bx-ax, by-ay) / 2

	for _, p := range pts {
		d := math.Hypot(float64(p.X)-cx, float64(p.Y)-cy)
		if d <= r {
			continue
		}
		// Grow the circle just enough to include p, shifting the center
		// toward it along the connecting line.
		nr := (r + d) / 2
		shift := (nr - r) / d
		cx += (float64(p.X) - cx) * shift
		cy += (float64(p.Y) - cy) * shift
		r = nr
	}
	return cx, cy, r
}
