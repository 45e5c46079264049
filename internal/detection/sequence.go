package detection

import "sort"

// Sequence orders circles into reading order: rows top to bottom, then left
// to right within each row. Circles are grouped onto a row when their y
// differs from the row's anchor (the y of the first circle placed on it) by
// less than yThreshold.
//
// The input slice is not modified. The output always contains exactly the
// input circles, reordered. The grouping is a linear walk over a y-sorted
// list, not a clustering pass; it assumes rows of an approximately uniform
// grid that do not overlap in y within the threshold. A yThreshold larger
// than the actual row spacing merges adjacent rows, which is a configuration
// problem rather than a detection one.
func Sequence(circles []Circle, yThreshold float64) []Circle {
	if len(circles) == 0 {
		return nil
	}

	sorted := make([]Circle, len(circles))
	copy(sorted, circles)
	sort.Slice(sorted, func(i, j int) bool {
		if sorted[i].Y != sorted[j].Y {
			return sorted[i].Y < sorted[j].Y
		}
		return sorted[i].X < sorted[j].X
	})

	out := make([]Circle, 0, len(sorted))
	row := []Circle{sorted[0]}
	anchorY := sorted[0].Y

	flush := func() {
		sort.Slice(row, func(i, j int) bool { return row[i].X < row[j].X })
		out = append(out, row...)
	}

	for _, c := range sorted[1:] {
		if abs(c.Y-anchorY) < yThreshold {
			row = append(row, c)
			continue
		}
		flush()
		row = []Circle{c}
		anchorY = c.Y
	}
	flush()

	return out
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
