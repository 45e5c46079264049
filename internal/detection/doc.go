// Package detection locates circular avatar regions in a composite image and
// orders them into a stable reading sequence.
//
// # Strategies
//
// Detection runs as an ordered strategy chain with first-non-empty-wins
// semantics:
//
//   - Hough transform: edge pixels of a blurred grayscale buffer vote along
//     their gradient direction for candidate centers at each radius in the
//     configured range. Accumulator peaks above the confidence threshold
//     become circles; peaks closer together than the minimum separation are
//     merged keeping the strongest.
//   - Contour fitting (fallback): the image is binarized against a
//     near-white cutoff, connected foreground regions are extracted, and a
//     minimal enclosing circle is fitted to each region whose circularity
//     (4*pi*area/perimeter^2) and radius pass the configured cutoffs.
//
// When both strategies return empty the detector reports ErrNoAvatars, a
// clean "found nothing" outcome rather than a failure.
//
// # Sequencing
//
// Sequence arranges detected circles row-major: circles whose y-coordinates
// differ by less than the row threshold share a row, rows are emitted top to
// bottom, and each row is sorted left to right.
//
// # Coordinate System
//
// All coordinates are 0-based with the origin at the top-left corner; X
// increases rightward and Y increases downward.
//
// # Tuning
//
// Every threshold lives on Params. The defaults suit grids of roughly 100px
// avatars; images at other scales need the radius range and minimum
// separation adjusted, and a row threshold larger than the actual row
// spacing merges adjacent rows in the output order.
package detection
