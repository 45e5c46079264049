package detection

import (
	"errors"
	"image"
)

// ErrNoAvatars reports that every detection strategy came back empty. It is
// an expected outcome for images without circular regions, not a fault;
// callers should test for it with errors.Is and terminate cleanly.
var ErrNoAvatars = errors.New("no avatars detected")

// Strategy is a single circle-detection algorithm. Implementations must not
// modify the source image and return zero or more candidate circles.
type Strategy interface {
	// Name identifies the strategy in logs.
	Name() string

	// Detect returns the circles found in src under the given parameters.
	Detect(src image.Image, p Params) []Circle
}

// Detector runs an ordered list of strategies with first-non-empty-wins
// semantics. The zero value is unusable; construct with NewDetector.
type Detector struct {
	strategies []Strategy
}

// NewDetector returns the standard detector: the Hough transform first, the
// contour-fitting fallback second.
func NewDetector() *Detector {
	return &Detector{strategies: []Strategy{houghStrategy{}, contourStrategy{}}}
}

// Detect tries each strategy in order and returns the first non-empty result
// together with the name of the strategy that produced it. If every strategy
// returns empty, the error is ErrNoAvatars.
func (d *Detector) Detect(src image.Image, p Params) ([]Circle, string, error) {
	for _, s := range d.strategies {
		if circles := s.Detect(src, p); len(circles) > 0 {
			return circles, s.Name(), nil
		}
	}
	return nil, "", ErrNoAvatars
}
