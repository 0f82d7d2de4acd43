package upscale

import (
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"runtime"
	"time"

	"github.com/ytget/image-scaler/internal/model"
)

// Real-ESRGAN defaults
const (
	DefaultModelFamily = "RealESRGAN"
	DefaultScript      = "inference_realesrgan.py"
	DefaultTimeout     = 30 * time.Minute

	// Weights live at <app_dir>/weights/<model>.pth
	WeightsDir       = "weights"
	WeightsExtension = ".pth"
	ModelNameFormat  = "%s_x%dplus"

	pythonUnix    = "python3"
	pythonWindows = "python"
)

// Config describes where the executor lives and how it is called
type Config struct {
	AppDir      string        // directory holding the inference script and weights/
	Python      string        // interpreter used to run the script
	Script      string        // script path, relative to AppDir unless absolute
	ModelFamily string        // e.g. "RealESRGAN"
	Timeout     time.Duration // per-item limit, 0 disables
}

// DefaultPython returns the interpreter name usually found on PATH for this OS
func DefaultPython() string {
	if runtime.GOOS == "windows" {
		return pythonWindows
	}
	return pythonUnix
}

// ScriptPath returns the absolute-or-app-relative path of the inference script
func (c Config) ScriptPath() string {
	if filepath.IsAbs(c.Script) {
		return c.Script
	}
	return filepath.Join(c.AppDir, c.Script)
}

// Request is the fixed argument contract of the super-resolution executor
type Request struct {
	Input         string
	Model         string
	OutScale      int
	FullPrecision bool
	OutputDir     string
}

// Service resolves models and hands requests to an Invoker
type Service struct {
	cfg     Config
	invoker Invoker
}

// NewService creates an upscale service. Empty config fields fall back to defaults.
func NewService(cfg Config, invoker Invoker) *Service {
	if cfg.ModelFamily == "" {
		cfg.ModelFamily = DefaultModelFamily
	}
	if cfg.Script == "" {
		cfg.Script = DefaultScript
	}
	if cfg.Python == "" {
		cfg.Python = DefaultPython()
	}
	if invoker == nil {
		invoker = NewScriptInvoker(cfg)
	}
	return &Service{cfg: cfg, invoker: invoker}
}

// Config returns the effective configuration
func (s *Service) Config() Config {
	return s.cfg
}

// ModelName returns "<family>_x<factor>plus", e.g. RealESRGAN_x2plus
func (s *Service) ModelName(scale model.ScaleFactor) string {
	return fmt.Sprintf(ModelNameFormat, s.cfg.ModelFamily, int(scale))
}

// ModelPath returns where the weights for scale are expected
func (s *Service) ModelPath(scale model.ScaleFactor) string {
	return filepath.Join(s.cfg.AppDir, WeightsDir, s.ModelName(scale)+WeightsExtension)
}

// CheckModel verifies the weights file for scale exists
func (s *Service) CheckModel(scale model.ScaleFactor) error {
	if !scale.IsValid() {
		return fmt.Errorf("%w: scale factor must be 2 or 4, got %d", model.ErrInvalidJob, scale)
	}
	path := s.ModelPath(scale)
	info, err := os.Stat(path)
	if err != nil || info.IsDir() {
		return &model.ModelNotFoundError{Model: s.ModelName(scale), Path: path}
	}
	return nil
}

// Upscale runs the executor on one input and waits for it. Failures are
// returned as *model.InferenceError.
func (s *Service) Upscale(ctx context.Context, inputPath, outputDir string, scale model.ScaleFactor) error {
	req := Request{
		Input:         inputPath,
		Model:         s.ModelName(scale),
		OutScale:      int(scale),
		FullPrecision: true,
		OutputDir:     outputDir,
	}

	if s.cfg.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.cfg.Timeout)
		defer cancel()
	}

	started := time.Now()
	err := s.invoker.Invoke(ctx, req)
	if err != nil {
		if ctx.Err() == context.DeadlineExceeded {
			err = fmt.Errorf("timed out after %s: %w", s.cfg.Timeout, err)
		}
		log.Printf("Upscale failed for %s with %s: %v", inputPath, req.Model, err)
		return &model.InferenceError{Input: inputPath, Err: err}
	}

	log.Printf("Upscaled %s with %s in %s", filepath.Base(inputPath), req.Model, time.Since(started).Round(time.Millisecond))
	return nil
}
