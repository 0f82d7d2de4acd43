package platform

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/ytget/image-scaler/internal/model"
)

// Operating system constants
const (
	OSDarwin  = "darwin"
	OSWindows = "windows"
	OSLinux   = "linux"
)

// File permissions
const (
	DefaultDirPermissions = 0755
)

// Command constants
const (
	OpenCommand     = "open"
	ExplorerCommand = "explorer"
	XDGOpenCommand  = "xdg-open"
)

// PNGExtension is matched case-insensitively when scanning folders
const PNGExtension = ".png"

// File manager names
var (
	LinuxFileManagers = []string{"nautilus", "dolphin", "thunar", "nemo", "pcmanfm"}
)

// IsPNG reports whether path has a .png extension, ignoring case
func IsPNG(path string) bool {
	return strings.EqualFold(filepath.Ext(path), PNGExtension)
}

// ListPNGFiles returns the PNG files directly inside dir, sorted by name.
// Subdirectories are not searched. ErrNoMatchingFiles is returned when none match.
func ListPNGFiles(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read folder %s: %w", dir, err)
	}

	var files []string
	for _, entry := range entries {
		if entry.IsDir() || !IsPNG(entry.Name()) {
			continue
		}
		files = append(files, filepath.Join(dir, entry.Name()))
	}

	if len(files) == 0 {
		return nil, fmt.Errorf("%w: %s", model.ErrNoMatchingFiles, dir)
	}
	return files, nil
}

// ResolveInputs turns a user selection into the ordered input list of a job
func ResolveInputs(mode model.InputMode, path string) ([]string, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return nil, model.ErrMissingInput
	}

	switch mode {
	case model.InputModeFolder:
		return ListPNGFiles(path)
	case model.InputModeFile:
		info, err := os.Stat(path)
		if err != nil {
			return nil, fmt.Errorf("input file does not exist: %s", path)
		}
		if info.IsDir() {
			return nil, fmt.Errorf("input is a folder, not a file: %s", path)
		}
		return []string{path}, nil
	default:
		return nil, fmt.Errorf("unknown input mode: %s", mode)
	}
}

// DetectInputMode picks Folder for directories and File otherwise
func DetectInputMode(path string) model.InputMode {
	if info, err := os.Stat(path); err == nil && info.IsDir() {
		return model.InputModeFolder
	}
	return model.InputModeFile
}

// CreateDirectoryIfNotExists creates directory if it doesn't exist
func CreateDirectoryIfNotExists(dirPath string) error {
	if _, err := os.Stat(dirPath); os.IsNotExist(err) {
		return os.MkdirAll(dirPath, DefaultDirPermissions)
	}
	return nil
}

// AppDir returns the directory containing the running executable. The
// inference script and weights/ folder are expected there by default.
func AppDir() (string, error) {
	exe, err := os.Executable()
	if err != nil {
		return "", fmt.Errorf("failed to locate executable: %w", err)
	}
	if resolved, err := filepath.EvalSymlinks(exe); err == nil {
		exe = resolved
	}
	return filepath.Dir(exe), nil
}

// GetHomePicturesDir returns the user's Pictures directory
func GetHomePicturesDir() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get user home directory: %w", err)
	}
	return filepath.Join(homeDir, "Pictures"), nil
}

// OpenFolder opens dir in the system file manager
func OpenFolder(dir string) error {
	info, err := os.Stat(dir)
	if err != nil || !info.IsDir() {
		return fmt.Errorf("folder does not exist: %s", dir)
	}

	absPath, err := filepath.Abs(dir)
	if err != nil {
		return fmt.Errorf("failed to get absolute path: %w", err)
	}

	switch runtime.GOOS {
	case OSDarwin:
		return exec.Command(OpenCommand, absPath).Run()
	case OSWindows:
		// explorer exits with status 1 even on success
		_ = exec.Command(ExplorerCommand, absPath).Run()
		return nil
	case OSLinux:
		return openFolderLinux(absPath)
	default:
		return fmt.Errorf("unsupported operating system: %s", runtime.GOOS)
	}
}

// openFolderLinux tries xdg-open, then a list of common file managers
func openFolderLinux(dir string) error {
	if err := exec.Command(XDGOpenCommand, dir).Run(); err == nil {
		return nil
	}

	for _, fm := range LinuxFileManagers {
		if _, err := exec.LookPath(fm); err == nil {
			return exec.Command(fm, dir).Run()
		}
	}

	return fmt.Errorf("no suitable file manager found")
}
