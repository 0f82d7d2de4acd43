package config

import (
	"testing"
	"time"

	"fyne.io/fyne/v2/test"

	"github.com/ytget/image-scaler/internal/downscale"
	"github.com/ytget/image-scaler/internal/upscale"
)

func TestNewSettings(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	if settings.app != app {
		t.Error("Settings app reference should match provided app")
	}
}

func TestAppDirectory(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	// Default falls back to the executable's folder
	if dir := settings.GetAppDirectory(); dir == "" {
		t.Error("App directory should not be empty")
	}

	settings.SetAppDirectory("/opt/realesrgan")
	if dir := settings.GetAppDirectory(); dir != "/opt/realesrgan" {
		t.Errorf("Expected app directory /opt/realesrgan, got %s", dir)
	}
}

func TestPythonAndScript(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	if got := settings.GetPythonExecutable(); got != upscale.DefaultPython() {
		t.Errorf("Expected default python %s, got %s", upscale.DefaultPython(), got)
	}
	if got := settings.GetInferenceScript(); got != upscale.DefaultScript {
		t.Errorf("Expected default script %s, got %s", upscale.DefaultScript, got)
	}

	settings.SetPythonExecutable("/usr/bin/python3.11")
	settings.SetInferenceScript("tools/infer.py")
	if got := settings.GetPythonExecutable(); got != "/usr/bin/python3.11" {
		t.Errorf("Expected custom python, got %s", got)
	}
	if got := settings.GetInferenceScript(); got != "tools/infer.py" {
		t.Errorf("Expected custom script, got %s", got)
	}

	// Empty values restore defaults
	settings.SetPythonExecutable("  ")
	settings.SetInferenceScript("")
	if got := settings.GetPythonExecutable(); got != upscale.DefaultPython() {
		t.Errorf("Empty python should default, got %s", got)
	}
	if got := settings.GetInferenceScript(); got != upscale.DefaultScript {
		t.Errorf("Empty script should default, got %s", got)
	}
}

func TestModelFamily(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	if got := settings.GetModelFamily(); got != upscale.DefaultModelFamily {
		t.Errorf("Expected default family %s, got %s", upscale.DefaultModelFamily, got)
	}

	settings.SetModelFamily("RealESRNet")
	if got := settings.GetModelFamily(); got != "RealESRNet" {
		t.Errorf("Expected RealESRNet, got %s", got)
	}
}

func TestTimeoutMinutes(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	if got := settings.GetTimeoutMinutes(); got != DefaultTimeoutMinutes {
		t.Errorf("Expected default timeout %d, got %d", DefaultTimeoutMinutes, got)
	}

	settings.SetTimeoutMinutes(5)
	if got := settings.GetTimeoutMinutes(); got != 5 {
		t.Errorf("Expected 5, got %d", got)
	}

	// Boundary values
	settings.SetTimeoutMinutes(-3)
	if settings.GetTimeoutMinutes() != 0 {
		t.Error("Negative timeout should be clamped to 0")
	}

	settings.SetTimeoutMinutes(MaxTimeoutMinutes + 1)
	if settings.GetTimeoutMinutes() != MaxTimeoutMinutes {
		t.Errorf("Timeout should be clamped to %d", MaxTimeoutMinutes)
	}
}

func TestResizeFilter(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	if got := settings.GetResizeFilter(); got != downscale.DefaultFilter {
		t.Errorf("Expected default filter %s, got %s", downscale.DefaultFilter, got)
	}

	settings.SetResizeFilter("CatmullRom")
	if got := settings.GetResizeFilter(); got != downscale.FilterCatmullRom {
		t.Errorf("Expected %s, got %s", downscale.FilterCatmullRom, got)
	}

	// Unknown names are ignored
	settings.SetResizeFilter("box")
	if got := settings.GetResizeFilter(); got != downscale.FilterCatmullRom {
		t.Errorf("Unknown filter should be ignored, got %s", got)
	}

	if len(settings.GetResizeFilterOptions()) != len(downscale.FilterNames()) {
		t.Error("Filter options should list every available filter")
	}
}

func TestLanguage(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	if lang := settings.GetLanguage(); lang != DefaultLanguage {
		t.Errorf("Expected default language %s, got %s", DefaultLanguage, lang)
	}

	settings.SetLanguage("fr")
	if lang := settings.GetLanguage(); lang != "fr" {
		t.Errorf("Expected language 'fr', got %s", lang)
	}
}

func TestGetLanguageOptions(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	options := settings.GetLanguageOptions()

	expectedLangs := []string{"system", "en", "fr"}
	for _, lang := range expectedLangs {
		if _, exists := options[lang]; !exists {
			t.Errorf("Expected language option '%s' to exist", lang)
		}
	}

	if len(options) != len(expectedLangs) {
		t.Errorf("Expected %d language options, got %d", len(expectedLangs), len(options))
	}
}

func TestAutoRevealOnComplete(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	if settings.GetAutoRevealOnComplete() != DefaultAutoRevealComplete {
		t.Error("Unexpected auto-reveal default")
	}

	settings.SetAutoRevealOnComplete(true)
	if !settings.GetAutoRevealOnComplete() {
		t.Error("Expected auto-reveal to be enabled")
	}
}

func TestUpscaleConfig(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	settings.SetAppDirectory("/opt/esrgan")
	settings.SetPythonExecutable("python3.10")
	settings.SetModelFamily("RealESRNet")
	settings.SetTimeoutMinutes(12)

	cfg := settings.UpscaleConfig()
	expected := upscale.Config{
		AppDir:      "/opt/esrgan",
		Python:      "python3.10",
		Script:      upscale.DefaultScript,
		ModelFamily: "RealESRNet",
		Timeout:     12 * time.Minute,
	}
	if cfg != expected {
		t.Errorf("UpscaleConfig() = %+v, expected %+v", cfg, expected)
	}
}
