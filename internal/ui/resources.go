package ui

import (
	"path/filepath"

	"fyne.io/fyne/v2"

	"github.com/ytget/image-scaler/internal/platform"
)

const (
	AppIcon = "image-scaler.png"
)

// LoadAppIcon loads the window icon shipped next to the executable
func LoadAppIcon() (fyne.Resource, error) {
	dir, err := platform.AppDir()
	if err != nil {
		return fyne.LoadResourceFromPath(AppIcon)
	}
	return fyne.LoadResourceFromPath(filepath.Join(dir, AppIcon))
}
