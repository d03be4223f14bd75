package platform

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
)

// Operating system constants
const (
	OSDarwin  = "darwin"
	OSWindows = "windows"
	OSLinux   = "linux"
)

// File permissions
const (
	DefaultDirPermissions = 0o755
)

// Command constants
const (
	OpenCommand     = "open"
	ExplorerCommand = "explorer"
	XDGOpenCommand  = "xdg-open"
)

// Environment variables consulted for the data directory
const (
	EnvXDGDataHome   = "XDG_DATA_HOME"
	EnvLocalAppData  = "LOCALAPPDATA"
	LinuxDataSubpath = ".local/share"
)

// CreateDirectoryIfNotExists creates a directory with all parents
func CreateDirectoryIfNotExists(dir string) error {
	if _, err := os.Stat(dir); os.IsNotExist(err) {
		return os.MkdirAll(dir, DefaultDirPermissions)
	}
	return nil
}

// DataBaseDir returns the per-user base directory for application data:
// LOCALAPPDATA on Windows, XDG_DATA_HOME (or ~/.local/share) elsewhere.
func DataBaseDir() (string, error) {
	if runtime.GOOS == OSWindows {
		if dir := os.Getenv(EnvLocalAppData); dir != "" {
			return dir, nil
		}
		return os.UserHomeDir()
	}

	if dir := os.Getenv(EnvXDGDataHome); dir != "" {
		return dir, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve home directory: %w", err)
	}
	return filepath.Join(home, LinuxDataSubpath), nil
}

// GetHomeDownloadsDir returns the user's Downloads directory
func GetHomeDownloadsDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve home directory: %w", err)
	}
	return filepath.Join(home, "Downloads"), nil
}

// OpenPath opens a file or folder with the platform default handler
func OpenPath(path string) error {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("failed to get absolute path: %w", err)
	}

	var cmd *exec.Cmd
	switch runtime.GOOS {
	case OSDarwin:
		cmd = exec.Command(OpenCommand, absPath)
	case OSWindows:
		cmd = exec.Command(ExplorerCommand, absPath)
	default:
		cmd = exec.Command(XDGOpenCommand, absPath)
	}
	return cmd.Start()
}
