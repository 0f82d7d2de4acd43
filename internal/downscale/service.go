package downscale

import (
	"errors"
	"fmt"
	"image"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/ytget/image-scaler/internal/model"
)

// DownscaledSuffix is inserted between the base name and the extension
const DownscaledSuffix = "_downx"

// ErrTooSmall is returned when a dimension would shrink to zero pixels
var ErrTooSmall = errors.New("image too small for scale factor")

// Service downscales images with a fixed resampler
type Service struct {
	filter    string
	resampler Resampler
}

// NewService creates a downscale service using the named filter ("" for Lanczos)
func NewService(filter string) (*Service, error) {
	r, err := NewResampler(filter)
	if err != nil {
		return nil, err
	}
	if filter == "" {
		filter = DefaultFilter
	}
	return &Service{filter: strings.ToLower(filter), resampler: r}, nil
}

// Filter returns the name of the resampling filter in use
func (s *Service) Filter() string {
	return s.filter
}

// OutputName returns "<base>_downx<factor><ext>" for inputPath
func OutputName(inputPath string, scale model.ScaleFactor) string {
	name := filepath.Base(inputPath)
	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	return fmt.Sprintf("%s%s%d%s", base, DownscaledSuffix, int(scale), ext)
}

// TargetSize divides both dimensions by scale, truncating
func TargetSize(width, height int, scale model.ScaleFactor) (int, int) {
	return width / int(scale), height / int(scale)
}

// Downscale reads inputPath, shrinks it by scale and writes the result into
// outputDir. It returns the written path. Failures are *model.IOError.
func (s *Service) Downscale(inputPath, outputDir string, scale model.ScaleFactor) (string, error) {
	if !scale.IsValid() {
		return "", fmt.Errorf("%w: scale factor must be 2 or 4, got %d", model.ErrInvalidJob, scale)
	}

	img, err := decodeFile(inputPath)
	if err != nil {
		return "", err
	}

	b := img.Bounds()
	width, height := TargetSize(b.Dx(), b.Dy(), scale)
	if width == 0 || height == 0 {
		return "", &model.IOError{
			Op:   "resize",
			Path: inputPath,
			Err:  fmt.Errorf("%w: %dx%d / %d", ErrTooSmall, b.Dx(), b.Dy(), int(scale)),
		}
	}

	out := s.resampler.Resample(img, width, height)

	outputPath := filepath.Join(outputDir, OutputName(inputPath, scale))
	if err := encodeFile(outputPath, out); err != nil {
		return "", err
	}

	log.Printf("Downscaled %s %dx%d -> %dx%d (%s)", filepath.Base(inputPath), b.Dx(), b.Dy(), width, height, s.filter)
	return outputPath, nil
}

func decodeFile(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &model.IOError{Op: "read", Path: path, Err: err}
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, &model.IOError{Op: "decode", Path: path, Err: err}
	}
	return img, nil
}

// encodeFile writes img to path, removing the partial file on failure
func encodeFile(path string, img image.Image) error {
	encode, err := encoderFor(filepath.Ext(path))
	if err != nil {
		return &model.IOError{Op: "write", Path: path, Err: err}
	}

	f, err := os.Create(path)
	if err != nil {
		return &model.IOError{Op: "write", Path: path, Err: err}
	}

	if err := encode(f, img); err != nil {
		f.Close()
		os.Remove(path)
		return &model.IOError{Op: "write", Path: path, Err: err}
	}
	if err := f.Close(); err != nil {
		os.Remove(path)
		return &model.IOError{Op: "write", Path: path, Err: err}
	}
	return nil
}
