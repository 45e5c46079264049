package detection

import "math"

// Circle is a candidate avatar region: a center point and radius in pixel
// coordinates. Circles are value types with no identity beyond position.
type Circle struct {
	X float64 `json:"x"` // Center x (0 = leftmost)
	Y float64 `json:"y"` // Center y (0 = topmost)
	R float64 `json:"r"` // Radius in pixels
}

// Dist returns the Euclidean distance between the centers of two circles.
func (c Circle) Dist(o Circle) float64 {
	dx := c.X - o.X
	dy := c.Y - o.Y
	return math.Sqrt(dx*dx + dy*dy)
}
