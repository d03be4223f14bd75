package platform

import (
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
)

func TestCreateDirectoryIfNotExists(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "dir")

	if err := CreateDirectoryIfNotExists(dir); err != nil {
		t.Fatalf("CreateDirectoryIfNotExists returned error: %v", err)
	}

	info, err := os.Stat(dir)
	if err != nil {
		t.Fatalf("Directory should exist: %v", err)
	}
	if !info.IsDir() {
		t.Error("Created path should be a directory")
	}

	// Second call on an existing directory must succeed.
	if err := CreateDirectoryIfNotExists(dir); err != nil {
		t.Errorf("Repeated call returned error: %v", err)
	}
}

func TestDataBaseDirXDGOverride(t *testing.T) {
	if runtime.GOOS == OSWindows {
		t.Skip("XDG_DATA_HOME is not consulted on Windows")
	}

	t.Setenv(EnvXDGDataHome, "/custom/data")

	dir, err := DataBaseDir()
	if err != nil {
		t.Fatalf("DataBaseDir returned error: %v", err)
	}
	if dir != "/custom/data" {
		t.Errorf("Expected /custom/data, got %s", dir)
	}
}

func TestDataBaseDirDefault(t *testing.T) {
	if runtime.GOOS == OSWindows {
		t.Skip("XDG_DATA_HOME is not consulted on Windows")
	}

	t.Setenv(EnvXDGDataHome, "")

	dir, err := DataBaseDir()
	if err != nil {
		t.Fatalf("DataBaseDir returned error: %v", err)
	}
	if !strings.HasSuffix(dir, LinuxDataSubpath) {
		t.Errorf("Expected default under %s, got %s", LinuxDataSubpath, dir)
	}
}

func TestGetHomeDownloadsDir(t *testing.T) {
	dir, err := GetHomeDownloadsDir()
	if err != nil {
		t.Fatalf("GetHomeDownloadsDir returned error: %v", err)
	}
	if filepath.Base(dir) != "Downloads" {
		t.Errorf("Expected a Downloads directory, got %s", dir)
	}
}
