package config

import (
	"path/filepath"
	"runtime"

	"github.com/easydlp/easydlp/internal/platform"
)

// Application data directory name
const appDirName = "easydlp"

// File and directory names inside the data directory
const (
	activityLogName = "activity.log"
	presetsFileName = "presets.yaml"
	pluginsDirName  = "plugins"
	binaryName      = "yt-dlp"
	binaryNameWin   = "yt-dlp.exe"
)

// Paths describes the on-disk layout of the application data directory
type Paths struct {
	DataDir     string // base directory for all app data
	ActivityLog string // append-only raw yt-dlp output
	PresetsFile string // named argument presets
	PluginsDir  string // reserved for yt-dlp plugins
	Binary      string // bundled yt-dlp location used when none is on PATH
}

// DefaultPaths resolves the per-user application paths
func DefaultPaths() (Paths, error) {
	base, err := platform.DataBaseDir()
	if err != nil {
		return Paths{}, err
	}
	return pathsUnder(filepath.Join(base, appDirName)), nil
}

func pathsUnder(dataDir string) Paths {
	name := binaryName
	if runtime.GOOS == platform.OSWindows {
		name = binaryNameWin
	}
	return Paths{
		DataDir:     dataDir,
		ActivityLog: filepath.Join(dataDir, activityLogName),
		PresetsFile: filepath.Join(dataDir, presetsFileName),
		PluginsDir:  filepath.Join(dataDir, pluginsDirName),
		Binary:      filepath.Join(dataDir, name),
	}
}

// Ensure creates the data and plugins directories
func (p Paths) Ensure() error {
	if err := platform.CreateDirectoryIfNotExists(p.DataDir); err != nil {
		return err
	}
	return platform.CreateDirectoryIfNotExists(p.PluginsDir)
}
