package imaging

import (
	"fmt"
	"image"
	_ "image/gif"  // Register GIF format decoder
	_ "image/jpeg" // Register JPEG format decoder
	_ "image/png"  // Register PNG format decoder
	"os"

	"github.com/disintegration/imaging"
	_ "golang.org/x/image/bmp" // Register BMP format decoder
)

// Info contains metadata about a loaded source image, mainly for logging.
type Info struct {
	// Width is the image width in pixels.
	Width int `json:"width"`

	// Height is the image height in pixels.
	Height int `json:"height"`

	// Format is the decoded format name as registered with image.Decode:
	// "png", "jpeg", "gif" or "bmp".
	Format string `json:"format"`

	// HasAlpha indicates whether the decoded image carries an alpha channel.
	HasAlpha bool `json:"has_alpha"`
}

// Load decodes the image at path and normalizes it to an NRGBA buffer with
// its origin at (0, 0). The returned buffer is owned by the caller and is
// treated as read-only by the rest of the pipeline.
//
// Supported formats are PNG, JPEG, GIF and BMP. A missing, unreadable or
// corrupt file returns a wrapped error; the run cannot continue without a
// source image.
func Load(path string) (*image.NRGBA, *Info, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open image: %w", err)
	}
	defer f.Close()

	img, format, err := image.Decode(f)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to decode image %q: %w", path, err)
	}

	hasAlpha := false
	switch img.(type) {
	case *image.RGBA, *image.NRGBA, *image.RGBA64, *image.NRGBA64:
		hasAlpha = true
	}

	// Clone re-bases the image at (0, 0) and converts any color model to
	// NRGBA, so downstream code can index pixels directly.
	normalized := imaging.Clone(img)

	bounds := normalized.Bounds()
	return normalized, &Info{
		Width:    bounds.Dx(),
		Height:   bounds.Dy(),
		Format:   format,
		HasAlpha: hasAlpha,
	}, nil
}
