package detection

// Params holds the tunable knobs for circle detection and sequencing.
//
// All thresholds live here rather than as package constants so that callers
// (and tests) can run the pipeline with different tunings without touching
// global state.
type Params struct {
	// MinRadius and MaxRadius bound the radius of circles worth reporting,
	// in pixels. Candidates outside the range are discarded by both
	// detection strategies.
	MinRadius float64
	MaxRadius float64

	// MinDist is the minimum distance in pixels between the centers of two
	// accepted circles. When two candidates are closer than this, only the
	// one with the stronger accumulator vote is kept.
	MinDist float64

	// BlurRadius is the Gaussian blur radius applied to the grayscale
	// buffer before edge detection, to suppress pixel noise.
	BlurRadius float64

	// EdgeThreshold is the minimum Sobel gradient magnitude (0-255 scale)
	// for a pixel to count as an edge and cast accumulator votes.
	EdgeThreshold float64

	// AccumulatorThreshold is the vote confidence cutoff for the Hough
	// strategy, expressed as a fraction of the circle diameter. Higher
	// values produce fewer, more confident detections.
	AccumulatorThreshold float64

	// ForegroundCutoff is the near-white lightness cutoff (0-255) used by
	// the contour fallback to binarize the image. Pixels lighter than the
	// cutoff are treated as background.
	ForegroundCutoff uint8

	// MinContourArea is the minimum pixel area of a connected foreground
	// region considered by the contour fallback. Smaller regions are noise.
	MinContourArea int

	// MinCircularity is the shape-regularity cutoff (4*pi*area/perimeter^2)
	// for the contour fallback. 1.0 is a perfect circle; rectangular tiles
	// score around 0.8 and notched shapes well below 0.7.
	MinCircularity float64

	// YThreshold is the maximum y-difference in pixels for two circles to
	// be grouped onto the same output row by the sequencer.
	YThreshold float64
}

// DefaultParams returns detection parameters tuned for avatar grids with
// roughly 100px avatars. The radius bounds and circularity cutoff are tuning
// values, not semantic constants; override them per image set as needed.
func DefaultParams() Params {
	return Params{
		MinRadius:            40,
		MaxRadius:            70,
		MinDist:              80,
		BlurRadius:           2,
		EdgeThreshold:        30,
		AccumulatorThreshold: 0.6,
		ForegroundCutoff:     240,
		MinContourArea:       1000,
		MinCircularity:       0.7,
		YThreshold:           30,
	}
}

// WithRadiusRange returns a copy of params with custom radius bounds. MinDist
// is raised to the minimum diameter when it would otherwise allow two circles
// of the minimum size to overlap.
func (p Params) WithRadiusRange(min, max float64) Params {
	p.MinRadius = min
	p.MaxRadius = max
	if p.MinDist < 2*min {
		p.MinDist = 2 * min
	}
	return p
}

// WithMinDist returns a copy of params with a custom center separation.
func (p Params) WithMinDist(d float64) Params {
	p.MinDist = d
	return p
}

// WithYThreshold returns a copy of params with a custom row-grouping
// threshold for the sequencer.
func (p Params) WithYThreshold(t float64) Params {
	p.YThreshold = t
	return p
}
