package ytdlp

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/easydlp/easydlp/internal/linequeue"
	"github.com/easydlp/easydlp/internal/notify"
)

func TestExpectedFilename(t *testing.T) {
	useHelperProcess(t, "filename")

	runner := NewRunner("yt-dlp", linequeue.New(), nil, notify.Noop())

	got := runner.ExpectedFilename(context.Background(), "https://example.com/v", "/downloads")
	want := filepath.Join("/downloads", "My Video [abc123].mp4")
	if got != want {
		t.Errorf("Expected %q, got %q", want, got)
	}
}

func TestExpectedFilenameProbeFailure(t *testing.T) {
	useMissingBinary(t)

	runner := NewRunner("yt-dlp", linequeue.New(), nil, notify.Noop())

	if got := runner.ExpectedFilename(context.Background(), "https://example.com/v", "/downloads"); got != "" {
		t.Errorf("Probe failure should return empty, got %q", got)
	}
}

func TestExpectedFilenameEmptyOutput(t *testing.T) {
	useHelperProcess(t, "silent")

	runner := NewRunner("yt-dlp", linequeue.New(), nil, notify.Noop())

	if got := runner.ExpectedFilename(context.Background(), "https://example.com/v", "/downloads"); got != "" {
		t.Errorf("Empty probe output should return empty, got %q", got)
	}
}
