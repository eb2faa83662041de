package files

import (
	"bytes"
	"context"
	"fmt"
	"image"
	_ "image/gif"  // Register GIF format
	_ "image/jpeg" // Register JPEG format
	_ "image/png"  // Register PNG format

	_ "golang.org/x/image/bmp"  // Register BMP format
	_ "golang.org/x/image/tiff" // Register TIFF format
	_ "golang.org/x/image/webp" // Register WebP format
)

// AreaOverviewFiles is the course file area holding course images.
const AreaOverviewFiles = "overviewfiles"

// IsValidImage reports whether content decodes as a supported raster image
// with non-zero dimensions.
func IsValidImage(content []byte) bool {
	if len(content) == 0 {
		return false
	}
	cfg, _, err := image.DecodeConfig(bytes.NewReader(content))
	if err != nil {
		return false
	}
	return cfg.Width > 0 && cfg.Height > 0
}

// CourseImageURL returns the URL of the first valid image among the course's
// overview files, or "" when there is none.
func CourseImageURL(ctx context.Context, storage Storage, urls URLs, courseID int64) (string, error) {
	overview, err := storage.CourseOverviewFiles(ctx, courseID)
	if err != nil {
		return "", fmt.Errorf("failed to list overview files of course %d: %w", courseID, err)
	}
	for _, f := range overview {
		if IsValidImage(f.Content) {
			return urls.CourseFileURL(courseID, AreaOverviewFiles, f.Name), nil
		}
	}
	return "", nil
}
