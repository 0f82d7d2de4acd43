package config

import (
	"strings"
	"time"

	"fyne.io/fyne/v2"

	"github.com/ytget/image-scaler/internal/downscale"
	"github.com/ytget/image-scaler/internal/platform"
	"github.com/ytget/image-scaler/internal/upscale"
)

// Settings keys for Fyne preferences
const (
	KeyAppDir             = "app_directory"
	KeyPythonExecutable   = "python_executable"
	KeyInferenceScript    = "inference_script"
	KeyModelFamily        = "model_family"
	KeyTimeoutMinutes     = "upscale_timeout_minutes"
	KeyResizeFilter       = "resize_filter"
	KeyLanguage           = "app_language"
	KeyAutoRevealComplete = "auto_reveal_on_complete"
)

// Default values
const (
	DefaultTimeoutMinutes     = int(upscale.DefaultTimeout / time.Minute)
	MaxTimeoutMinutes         = 24 * 60
	DefaultLanguage           = "system"
	DefaultAutoRevealComplete = false
)

// Settings manages application configuration
type Settings struct {
	app fyne.App
}

// NewSettings creates a new settings manager
func NewSettings(app fyne.App) *Settings {
	return &Settings{app: app}
}

// GetAppDirectory returns the folder holding the inference script and weights/
func (s *Settings) GetAppDirectory() string {
	dir := s.app.Preferences().String(KeyAppDir)
	if dir == "" {
		defaultDir, err := platform.AppDir()
		if err != nil {
			defaultDir = "."
		}
		return defaultDir
	}
	return dir
}

// SetAppDirectory sets the application directory; empty restores the executable's folder
func (s *Settings) SetAppDirectory(dir string) {
	s.app.Preferences().SetString(KeyAppDir, strings.TrimSpace(dir))
}

// GetPythonExecutable returns the interpreter used to run the inference script
func (s *Settings) GetPythonExecutable() string {
	return s.app.Preferences().StringWithFallback(KeyPythonExecutable, upscale.DefaultPython())
}

// SetPythonExecutable sets the interpreter
func (s *Settings) SetPythonExecutable(python string) {
	python = strings.TrimSpace(python)
	if python == "" {
		python = upscale.DefaultPython()
	}
	s.app.Preferences().SetString(KeyPythonExecutable, python)
}

// GetInferenceScript returns the inference script path
func (s *Settings) GetInferenceScript() string {
	return s.app.Preferences().StringWithFallback(KeyInferenceScript, upscale.DefaultScript)
}

// SetInferenceScript sets the inference script path
func (s *Settings) SetInferenceScript(script string) {
	script = strings.TrimSpace(script)
	if script == "" {
		script = upscale.DefaultScript
	}
	s.app.Preferences().SetString(KeyInferenceScript, script)
}

// GetModelFamily returns the model family, e.g. RealESRGAN
func (s *Settings) GetModelFamily() string {
	return s.app.Preferences().StringWithFallback(KeyModelFamily, upscale.DefaultModelFamily)
}

// SetModelFamily sets the model family
func (s *Settings) SetModelFamily(family string) {
	family = strings.TrimSpace(family)
	if family == "" {
		family = upscale.DefaultModelFamily
	}
	s.app.Preferences().SetString(KeyModelFamily, family)
}

// GetTimeoutMinutes returns the per-image upscale timeout, 0 meaning none
func (s *Settings) GetTimeoutMinutes() int {
	return s.app.Preferences().IntWithFallback(KeyTimeoutMinutes, DefaultTimeoutMinutes)
}

// SetTimeoutMinutes sets the per-image upscale timeout
func (s *Settings) SetTimeoutMinutes(minutes int) {
	if minutes < 0 {
		minutes = 0
	}
	if minutes > MaxTimeoutMinutes {
		minutes = MaxTimeoutMinutes
	}
	s.app.Preferences().SetInt(KeyTimeoutMinutes, minutes)
}

// GetResizeFilter returns the downscale resampling filter
func (s *Settings) GetResizeFilter() string {
	filter := s.app.Preferences().String(KeyResizeFilter)
	if _, err := downscale.NewResampler(filter); err != nil || filter == "" {
		return downscale.DefaultFilter
	}
	return filter
}

// SetResizeFilter sets the downscale filter; unknown names are ignored
func (s *Settings) SetResizeFilter(filter string) {
	if _, err := downscale.NewResampler(filter); err != nil {
		return
	}
	s.app.Preferences().SetString(KeyResizeFilter, strings.ToLower(strings.TrimSpace(filter)))
}

// GetResizeFilterOptions returns available filter names
func (s *Settings) GetResizeFilterOptions() []string {
	return downscale.FilterNames()
}

// GetLanguage returns the configured language
func (s *Settings) GetLanguage() string {
	lang := s.app.Preferences().String(KeyLanguage)
	if lang == "" {
		s.SetLanguage(DefaultLanguage)
		return DefaultLanguage
	}
	return lang
}

// SetLanguage sets the application language
func (s *Settings) SetLanguage(lang string) {
	s.app.Preferences().SetString(KeyLanguage, lang)
}

// GetLanguageOptions returns available language options
func (s *Settings) GetLanguageOptions() map[string]string {
	return map[string]string{
		"system": "System Default",
		"en":     "English",
		"fr":     "Français",
	}
}

// GetAutoRevealOnComplete returns whether to open the output folder when a batch finishes
func (s *Settings) GetAutoRevealOnComplete() bool {
	return s.app.Preferences().BoolWithFallback(KeyAutoRevealComplete, DefaultAutoRevealComplete)
}

// SetAutoRevealOnComplete sets whether to open the output folder when a batch finishes
func (s *Settings) SetAutoRevealOnComplete(autoReveal bool) {
	s.app.Preferences().SetBool(KeyAutoRevealComplete, autoReveal)
}

// UpscaleConfig builds the executor configuration from the stored settings
func (s *Settings) UpscaleConfig() upscale.Config {
	return upscale.Config{
		AppDir:      s.GetAppDirectory(),
		Python:      s.GetPythonExecutable(),
		Script:      s.GetInferenceScript(),
		ModelFamily: s.GetModelFamily(),
		Timeout:     time.Duration(s.GetTimeoutMinutes()) * time.Minute,
	}
}
