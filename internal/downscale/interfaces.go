package downscale

import (
	"image"

	"github.com/ytget/image-scaler/internal/model"
)

// Downscaler defines the interface the batch processor uses for the downscale path.
type Downscaler interface {
	Downscale(inputPath, outputDir string, scale model.ScaleFactor) (string, error)
}

// Resampler resizes img to exactly width x height
type Resampler interface {
	Resample(img image.Image, width, height int) image.Image
}
