package downscale

import (
	"fmt"
	"image"
	"sort"
	"strings"

	"github.com/nfnt/resize"
	"golang.org/x/image/draw"
)

// Filter names accepted in settings and on the command line
const (
	FilterLanczos    = "lanczos"
	FilterMitchell   = "mitchell"
	FilterCatmullRom = "catmullrom"

	DefaultFilter = FilterLanczos
)

// nfntResampler uses github.com/nfnt/resize kernels
type nfntResampler struct {
	interp resize.InterpolationFunction
}

func (r nfntResampler) Resample(img image.Image, width, height int) image.Image {
	return resize.Resize(uint(width), uint(height), img, r.interp)
}

// drawResampler uses golang.org/x/image/draw kernels
type drawResampler struct {
	kernel *draw.Kernel
}

func (r drawResampler) Resample(img image.Image, width, height int) image.Image {
	dst := image.NewNRGBA(image.Rect(0, 0, width, height))
	r.kernel.Scale(dst, dst.Bounds(), img, img.Bounds(), draw.Src, nil)
	return dst
}

var resamplers = map[string]Resampler{
	FilterLanczos:    nfntResampler{interp: resize.Lanczos3},
	FilterMitchell:   nfntResampler{interp: resize.MitchellNetravali},
	FilterCatmullRom: drawResampler{kernel: draw.CatmullRom},
}

// NewResampler returns the resampler registered under name ("" means the default)
func NewResampler(name string) (Resampler, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" {
		name = DefaultFilter
	}
	r, ok := resamplers[name]
	if !ok {
		return nil, fmt.Errorf("unknown resize filter %q (available: %s)", name, strings.Join(FilterNames(), ", "))
	}
	return r, nil
}

// FilterNames lists the available filter names, sorted
func FilterNames() []string {
	names := make([]string, 0, len(resamplers))
	for name := range resamplers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
