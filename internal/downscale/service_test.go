package downscale

import (
	"errors"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/ytget/image-scaler/internal/model"
)

func TestOutputName(t *testing.T) {
	tests := []struct {
		input    string
		scale    model.ScaleFactor
		expected string
	}{
		{"/path/to/photo.png", model.Scale2, "photo_downx2.png"},
		{"/path/to/photo.png", model.Scale4, "photo_downx4.png"},
		{"CAT.PNG", model.Scale2, "CAT_downx2.PNG"},
		{"/a/archive.tar.png", model.Scale4, "archive.tar_downx4.png"},
		{"/no/ext/file", model.Scale2, "file_downx2"},
	}

	for _, test := range tests {
		result := OutputName(test.input, test.scale)
		if result != test.expected {
			t.Errorf("OutputName(%s, %d) = %s, expected %s", test.input, test.scale, result, test.expected)
		}
	}
}

func TestTargetSize(t *testing.T) {
	tests := []struct {
		w, h         int
		scale        model.ScaleFactor
		wantW, wantH int
	}{
		{64, 64, model.Scale2, 32, 32},
		{64, 64, model.Scale4, 16, 16},
		{65, 33, model.Scale2, 32, 16},
		{67, 7, model.Scale4, 16, 1},
		{3, 3, model.Scale4, 0, 0},
	}

	for _, tt := range tests {
		w, h := TargetSize(tt.w, tt.h, tt.scale)
		if w != tt.wantW || h != tt.wantH {
			t.Errorf("TargetSize(%d, %d, %d) = %dx%d, expected %dx%d", tt.w, tt.h, tt.scale, w, h, tt.wantW, tt.wantH)
		}
	}
}

func TestNewService_UnknownFilter(t *testing.T) {
	if _, err := NewService("nearest-ish"); err == nil {
		t.Error("Expected error for unknown filter")
	}
}

func TestNewService_DefaultFilter(t *testing.T) {
	service, err := NewService("")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if service.Filter() != FilterLanczos {
		t.Errorf("Expected default filter %s, got %s", FilterLanczos, service.Filter())
	}
}

func TestDownscale_Photo64(t *testing.T) {
	inDir := t.TempDir()
	outDir := t.TempDir()
	input := filepath.Join(inDir, "photo.png")
	writePNG(t, input, 64, 64)

	service, err := NewService(FilterLanczos)
	if err != nil {
		t.Fatal(err)
	}

	outputPath, err := service.Downscale(input, outDir, model.Scale2)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	expectedPath := filepath.Join(outDir, "photo_downx2.png")
	if outputPath != expectedPath {
		t.Errorf("Expected output %s, got %s", expectedPath, outputPath)
	}

	w, h := readSize(t, outputPath)
	if w != 32 || h != 32 {
		t.Errorf("Expected 32x32, got %dx%d", w, h)
	}
}

func TestDownscale_FloorDimensionsForEveryFilter(t *testing.T) {
	sizes := []struct{ w, h int }{{64, 64}, {65, 33}, {101, 47}, {8, 4}}

	for _, filter := range FilterNames() {
		service, err := NewService(filter)
		if err != nil {
			t.Fatal(err)
		}
		for _, scale := range model.SupportedScales {
			for _, size := range sizes {
				inDir := t.TempDir()
				outDir := t.TempDir()
				input := filepath.Join(inDir, "img.png")
				writePNG(t, input, size.w, size.h)

				outputPath, err := service.Downscale(input, outDir, scale)
				if err != nil {
					t.Fatalf("%s x%d %dx%d: %v", filter, scale, size.w, size.h, err)
				}

				w, h := readSize(t, outputPath)
				if w != size.w/int(scale) || h != size.h/int(scale) {
					t.Errorf("%s x%d: %dx%d -> %dx%d, expected %dx%d",
						filter, scale, size.w, size.h, w, h, size.w/int(scale), size.h/int(scale))
				}
			}
		}
	}
}

func TestDownscale_TooSmall(t *testing.T) {
	input := filepath.Join(t.TempDir(), "tiny.png")
	writePNG(t, input, 3, 40)
	outDir := t.TempDir()

	service, _ := NewService("")
	_, err := service.Downscale(input, outDir, model.Scale4)
	if !errors.Is(err, ErrTooSmall) {
		t.Fatalf("Expected ErrTooSmall, got %v", err)
	}
	if !errors.Is(err, model.ErrIO) {
		t.Errorf("Expected IOError kind, got %v", err)
	}

	entries, _ := os.ReadDir(outDir)
	if len(entries) != 0 {
		t.Errorf("Expected no output files, got %d", len(entries))
	}
}

func TestDownscale_MissingInput(t *testing.T) {
	service, _ := NewService("")
	_, err := service.Downscale(filepath.Join(t.TempDir(), "nope.png"), t.TempDir(), model.Scale2)

	var ioErr *model.IOError
	if !errors.As(err, &ioErr) {
		t.Fatalf("Expected *IOError, got %v", err)
	}
	if ioErr.Op != "read" {
		t.Errorf("Expected op 'read', got %s", ioErr.Op)
	}
}

func TestDownscale_NotAnImage(t *testing.T) {
	input := filepath.Join(t.TempDir(), "fake.png")
	if err := os.WriteFile(input, []byte("not a png"), 0644); err != nil {
		t.Fatal(err)
	}

	service, _ := NewService("")
	_, err := service.Downscale(input, t.TempDir(), model.Scale2)

	var ioErr *model.IOError
	if !errors.As(err, &ioErr) || ioErr.Op != "decode" {
		t.Fatalf("Expected decode IOError, got %v", err)
	}
}

func TestDownscale_UnwritableOutput(t *testing.T) {
	input := filepath.Join(t.TempDir(), "photo.png")
	writePNG(t, input, 16, 16)

	// A regular file where the output directory should be
	notADir := filepath.Join(t.TempDir(), "file")
	if err := os.WriteFile(notADir, nil, 0644); err != nil {
		t.Fatal(err)
	}

	service, _ := NewService("")
	_, err := service.Downscale(input, notADir, model.Scale2)

	var ioErr *model.IOError
	if !errors.As(err, &ioErr) || ioErr.Op != "write" {
		t.Fatalf("Expected write IOError, got %v", err)
	}
}

func TestDownscale_KeepsOtherFormats(t *testing.T) {
	for _, ext := range []string{".bmp", ".tiff", ".jpg"} {
		inDir := t.TempDir()
		src := filepath.Join(inDir, "src.png")
		writePNG(t, src, 20, 20)

		// convert the PNG into ext using the same encoders
		img := readImage(t, src)
		input := filepath.Join(inDir, "photo"+ext)
		if err := encodeFile(input, img); err != nil {
			t.Fatalf("encode %s: %v", ext, err)
		}

		service, _ := NewService("")
		outputPath, err := service.Downscale(input, t.TempDir(), model.Scale4)
		if err != nil {
			t.Fatalf("%s: %v", ext, err)
		}
		if filepath.Base(outputPath) != "photo_downx4"+ext {
			t.Errorf("Expected photo_downx4%s, got %s", ext, filepath.Base(outputPath))
		}
		w, h := readSize(t, outputPath)
		if w != 5 || h != 5 {
			t.Errorf("%s: expected 5x5, got %dx%d", ext, w, h)
		}
	}
}

func writePNG(t *testing.T, path string, w, h int) {
	t.Helper()
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, color.NRGBA{R: uint8(x * 4), G: uint8(y * 4), B: 128, A: 255})
		}
	}
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		t.Fatal(err)
	}
}

func readImage(t *testing.T, path string) image.Image {
	t.Helper()
	f, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	img, _, err := image.Decode(f)
	if err != nil {
		t.Fatal(err)
	}
	return img
}

func readSize(t *testing.T, path string) (int, int) {
	t.Helper()
	f, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	cfg, _, err := image.DecodeConfig(f)
	if err != nil {
		t.Fatalf("decode %s: %v", path, err)
	}
	return cfg.Width, cfg.Height
}
