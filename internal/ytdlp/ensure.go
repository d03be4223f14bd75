package ytdlp

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"

	"github.com/easydlp/easydlp/internal/platform"
)

// Base URL of the yt-dlp release assets
const releaseBaseURL = "https://github.com/yt-dlp/yt-dlp/releases/latest/download/"

// Permissions for the installed binary
const binaryPermissions = 0o755

// EnsureBinary locates a usable yt-dlp executable: PATH first, then the
// app-managed install location, and as a last resort it downloads the
// platform-appropriate release asset into installPath.
func EnsureBinary(ctx context.Context, installPath string) (string, error) {
	if path, err := exec.LookPath("yt-dlp"); err == nil {
		return path, nil
	}
	if _, err := os.Stat(installPath); err == nil {
		return installPath, nil
	}
	if err := downloadBinary(ctx, installPath); err != nil {
		return "", fmt.Errorf("yt-dlp not found and failed to download: %w", err)
	}
	return installPath, nil
}

// releaseAssetName maps GOOS/GOARCH to the yt-dlp release asset
func releaseAssetName() (string, error) {
	switch {
	case runtime.GOOS == platform.OSWindows && runtime.GOARCH == "amd64":
		return "yt-dlp.exe", nil
	case runtime.GOOS == platform.OSLinux && runtime.GOARCH == "amd64":
		return "yt-dlp_linux", nil
	case runtime.GOOS == platform.OSLinux && runtime.GOARCH == "arm64":
		return "yt-dlp_linux_aarch64", nil
	case runtime.GOOS == platform.OSDarwin:
		return "yt-dlp_macos", nil
	default:
		return "", fmt.Errorf("unsupported OS/architecture combination: %s/%s", runtime.GOOS, runtime.GOARCH)
	}
}

func downloadBinary(ctx context.Context, installPath string) error {
	asset, err := releaseAssetName()
	if err != nil {
		return err
	}

	if err := platform.CreateDirectoryIfNotExists(filepath.Dir(installPath)); err != nil {
		return fmt.Errorf("error creating install directory: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, releaseBaseURL+asset, nil)
	if err != nil {
		return fmt.Errorf("error creating request: %w", err)
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return fmt.Errorf("error downloading yt-dlp: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("error downloading yt-dlp: status code %d", resp.StatusCode)
	}

	out, err := os.OpenFile(installPath, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, binaryPermissions)
	if err != nil {
		return fmt.Errorf("error creating file: %w", err)
	}
	defer out.Close()

	if _, err := io.Copy(out, resp.Body); err != nil {
		return fmt.Errorf("error writing to file: %w", err)
	}
	return nil
}
