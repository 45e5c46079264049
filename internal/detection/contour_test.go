package detection

import (
	"image"
	"image/color"
	"math"
	"testing"
)

// whiteImage creates a white NRGBA test canvas.
func whiteImage(width, height int) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.Set(x, y, color.White)
		}
	}
	return img
}

// fillDisk draws a filled black disk.
func fillDisk(img *image.NRGBA, cx, cy, r int) {
	for y := cy - r; y <= cy+r; y++ {
		for x := cx - r; x <= cx+r; x++ {
			dx, dy := x-cx, y-cy
			if dx*dx+dy*dy <= r*r {
				img.Set(x, y, color.Black)
			}
		}
	}
}

// fillRect draws a filled black rectangle, corners inclusive.
func fillRect(img *image.NRGBA, x1, y1, x2, y2 int) {
	for y := y1; y <= y2; y++ {
		for x := x1; x <= x2; x++ {
			img.Set(x, y, color.Black)
		}
	}
}

// fillPlus draws a plus-shaped region: two crossing bars of the given arm
// width and total length, centered at (cx, cy). Deep notches at the four
// inner corners make it clearly non-circular.
func fillPlus(img *image.NRGBA, cx, cy, armWidth, length int) {
	half := length / 2
	w := armWidth / 2
	fillRect(img, cx-half, cy-w, cx+half, cy+w)
	fillRect(img, cx-w, cy-half, cx+w, cy+half)
}

// regionShape binarizes img, fills the first region at least minArea large,
// and returns its area, boundary and perimeter.
func regionShape(t *testing.T, img *image.NRGBA, minArea int) (int, []image.Point, float64) {
	t.Helper()

	fg := make([][]bool, img.Bounds().Dy())
	for y := range fg {
		fg[y] = make([]bool, img.Bounds().Dx())
		for x := range fg[y] {
			c := img.NRGBAAt(x, y)
			fg[y][x] = c.R < 240 && c.A > 0
		}
	}

	height := len(fg)
	width := len(fg[0])
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
			if area < minArea {
				continue
			}
			boundary, perimeter := traceBoundary(fg, image.Pt(x, y), width, height)
			return area, boundary, perimeter
		}
	}
	t.Fatal("no region found")
	return 0, nil, 0
}

func circularityOf(area int, perimeter float64) float64 {
	return 4 * math.Pi * float64(area) / (perimeter * perimeter)
}

func TestCircularity_Disk(t *testing.T) {
	img := whiteImage(200, 200)
	fillDisk(img, 100, 100, 50)

	area, _, perimeter := regionShape(t, img, 1000)
	circ := circularityOf(area, perimeter)

	if circ < 0.8 || circ > 1.05 {
		t.Errorf("disk circularity: got %.3f, want ~0.9-1.0", circ)
	}
}

func TestCircularity_Square(t *testing.T) {
	img := whiteImage(200, 200)
	fillRect(img, 50, 50, 149, 149)

	area, _, perimeter := regionShape(t, img, 1000)
	circ := circularityOf(area, perimeter)

	// A square sits near pi/4 ~ 0.785: above the 0.7 cutoff, so squares are
	// rejected by the radius check (enclosing radius ~ side*sqrt(2)/2), not
	// by circularity.
	if circ < 0.74 || circ > 0.86 {
		t.Errorf("square circularity: got %.3f, want ~0.785", circ)
	}
}

func TestCircularity_PlusShape(t *testing.T) {
	img := whiteImage(200, 200)
	fillPlus(img, 100, 100, 20, 120)

	area, _, perimeter := regionShape(t, img, 1000)
	circ := circularityOf(area, perimeter)

	if circ >= 0.7 {
		t.Errorf("plus-shape circularity: got %.3f, want < 0.7", circ)
	}
}

func TestTraceBoundary_SquarePerimeter(t *testing.T) {
	img := whiteImage(200, 200)
	fillRect(img, 50, 50, 149, 149)

	_, boundary, perimeter := regionShape(t, img, 1000)

	// A 100x100 square has an axis-aligned boundary chain of 4*99 steps.
	if math.Abs(perimeter-396) > 4 {
		t.Errorf("square perimeter: got %.1f, want ~396", perimeter)
	}
	if len(boundary) < 390 || len(boundary) > 400 {
		t.Errorf("square boundary points: got %d, want ~396", len(boundary))
	}
}

func TestEnclosingCircle(t *testing.T) {
	var pts []image.Point
	for deg := 0; deg < 360; deg += 5 {
		rad := float64(deg) * math.Pi / 180
		pts = append(pts, image.Pt(
			100+int(math.Round(50*math.Cos(rad))),
			100+int(math.Round(50*math.Sin(rad))),
		))
	}

	cx, cy, r := enclosingCircle(pts)

	if math.Abs(cx-100) > 3 || math.Abs(cy-100) > 3 {
		t.Errorf("center: got (%.1f, %.1f), want ~(100, 100)", cx, cy)
	}
	// Ritter's circle is at most a few percent larger than optimal.
	if r < 49 || r > 54 {
		t.Errorf("radius: got %.1f, want ~50", r)
	}
}

func TestEnclosingCircle_Empty(t *testing.T) {
	cx, cy, r := enclosingCircle(nil)
	if cx != 0 || cy != 0 || r != 0 {
		t.Errorf("empty point set: got (%v, %v, %v), want zeros", cx, cy, r)
	}
}

func TestContourStrategy_DetectsDisk(t *testing.T) {
	img := whiteImage(200, 200)
	fillDisk(img, 100, 100, 50)

	circles := contourStrategy{}.Detect(img, DefaultParams())

	if len(circles) != 1 {
		t.Fatalf("expected 1 circle, got %d", len(circles))
	}
	c := circles[0]
	if math.Abs(c.X-100) > 3 || math.Abs(c.Y-100) > 3 {
		t.Errorf("center: got (%.1f, %.1f), want ~(100, 100)", c.X, c.Y)
	}
	if math.Abs(c.R-50) > 4 {
		t.Errorf("radius: got %.1f, want ~50", c.R)
	}
}

func TestContourStrategy_RejectsPlusShape(t *testing.T) {
	img := whiteImage(200, 200)
	fillPlus(img, 100, 100, 20, 120)

	circles := contourStrategy{}.Detect(img, DefaultParams())

	if len(circles) != 0 {
		t.Errorf("expected plus shape rejected, got %d circles", len(circles))
	}
}

func TestContourStrategy_RejectsSquareTile(t *testing.T) {
	// Circularity ~0.785 passes the cutoff, but the enclosing radius of a
	// 100px tile (~70.7) exceeds MaxRadius.
	img := whiteImage(200, 200)
	fillRect(img, 50, 50, 149, 149)

	circles := contourStrategy{}.Detect(img, DefaultParams())

	if len(circles) != 0 {
		t.Errorf("expected square tile rejected, got %d circles", len(circles))
	}
}

func TestContourStrategy_AreaFilter(t *testing.T) {
	// A 10px disk has area ~314, below the 1000px noise floor.
	img := whiteImage(200, 200)
	fillDisk(img, 100, 100, 10)

	circles := contourStrategy{}.Detect(img, DefaultParams())

	if len(circles) != 0 {
		t.Errorf("expected small region filtered, got %d circles", len(circles))
	}
}

func TestContourStrategy_EmptyImage(t *testing.T) {
	img := whiteImage(100, 100)

	circles := contourStrategy{}.Detect(img, DefaultParams())

	if len(circles) != 0 {
		t.Errorf("expected no circles in blank image, got %d", len(circles))
	}
}
