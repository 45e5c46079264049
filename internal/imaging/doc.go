// Package imaging provides the raster operations behind avatar extraction:
// loading and normalizing source images, grayscale conversion and
// binarization for the detectors, and the circular-mask compositing shared
// by the detection and grid-slicing paths.
//
// # Coordinate System
//
// All pixel coordinates are 0-based with the origin at the top-left corner:
// X increases rightward, Y increases downward. Regions use an inclusive
// top-left and exclusive bottom-right corner, matching image.Rectangle.
//
// # Output Contract
//
// Every avatar produced by CompositeCircle or SliceGrid is a square NRGBA
// buffer whose alpha channel is 255 inside the inscribed circle and 0
// outside; color bytes outside the circle are zeroed as well. Content is
// centered in the square even when the source crop was clamped at an image
// edge.
//
// # Thread Safety
//
// All operations are stateless and read the source image without modifying
// it, so they can run concurrently on the same source.
package imaging
