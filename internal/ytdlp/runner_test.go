package ytdlp

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"os/exec"
	"strings"
	"testing"
	"time"

	"github.com/easydlp/easydlp/internal/linequeue"
	"github.com/easydlp/easydlp/internal/model"
	"github.com/easydlp/easydlp/internal/notify"
)

// TestHelperProcess stands in for the yt-dlp binary in runner tests
func TestHelperProcess(t *testing.T) {
	if os.Getenv("GO_WANT_HELPER_PROCESS") != "1" {
		return
	}
	switch os.Getenv("EASYDLP_HELPER_MODE") {
	case "lines":
		fmt.Println("[download] starting")
		fmt.Println("[download]  50.0%")
		fmt.Println("[download] 100.0%")
	case "mixed":
		fmt.Println("stdout line")
		fmt.Fprintln(os.Stderr, "stderr line")
	case "filename":
		fmt.Println("My Video [abc123].mp4")
	case "fail":
		fmt.Fprintln(os.Stderr, "ERROR: unsupported URL")
		os.Exit(1)
	}
	os.Exit(0)
}

func useHelperProcess(t *testing.T, mode string) {
	t.Helper()
	original := commandContext
	commandContext = func(ctx context.Context, name string, args ...string) *exec.Cmd {
		cmd := exec.CommandContext(ctx, os.Args[0], "-test.run=TestHelperProcess")
		cmd.Env = append(os.Environ(), "GO_WANT_HELPER_PROCESS=1", "EASYDLP_HELPER_MODE="+mode)
		return cmd
	}
	t.Cleanup(func() {
		commandContext = original
	})
}

func useMissingBinary(t *testing.T) {
	t.Helper()
	original := commandContext
	commandContext = func(ctx context.Context, name string, args ...string) *exec.Cmd {
		return exec.CommandContext(ctx, "/nonexistent/yt-dlp-for-test")
	}
	t.Cleanup(func() {
		commandContext = original
	})
}

func TestRunDeliversLinesInOrder(t *testing.T) {
	useHelperProcess(t, "lines")

	queue := linequeue.New()
	var activity bytes.Buffer
	runner := NewRunner("yt-dlp", queue, &activity, notify.Noop())

	job := model.NewJob("https://example.com/v", []string{"https://example.com/v"})
	if err := runner.Run(context.Background(), job); err != nil {
		t.Fatalf("Run returned error: %v", err)
	}

	expected := []string{"[download] starting", "[download]  50.0%", "[download] 100.0%"}
	lines := queue.Drain()
	if len(lines) != len(expected) {
		t.Fatalf("Expected %d lines, got %d: %v", len(expected), len(lines), lines)
	}
	for i, line := range lines {
		if line != expected[i] {
			t.Errorf("Line %d: expected %q, got %q", i, expected[i], line)
		}
	}

	// The activity log must equal the concatenation of the child's lines.
	want := strings.Join(expected, "\n") + "\n"
	if activity.String() != want {
		t.Errorf("Activity log mismatch:\n%q\nvs\n%q", activity.String(), want)
	}

	if job.Status != model.JobStatusCompleted {
		t.Errorf("Expected status Completed, got %s", job.Status)
	}
}

func TestRunMergesStderrIntoStdout(t *testing.T) {
	useHelperProcess(t, "mixed")

	queue := linequeue.New()
	runner := NewRunner("yt-dlp", queue, nil, notify.Noop())

	job := model.NewJob("https://example.com/v", []string{"https://example.com/v"})
	if err := runner.Run(context.Background(), job); err != nil {
		t.Fatalf("Run returned error: %v", err)
	}

	lines := queue.Drain()
	if len(lines) != 2 {
		t.Fatalf("Expected 2 lines, got %d: %v", len(lines), lines)
	}
	joined := strings.Join(lines, "\n")
	if !strings.Contains(joined, "stdout line") || !strings.Contains(joined, "stderr line") {
		t.Errorf("Expected both streams merged, got %v", lines)
	}
}

func TestRunNonzeroExitIsNotAnError(t *testing.T) {
	useHelperProcess(t, "fail")

	queue := linequeue.New()
	runner := NewRunner("yt-dlp", queue, nil, notify.Noop())

	job := model.NewJob("https://example.com/v", []string{"https://example.com/v"})
	if err := runner.Run(context.Background(), job); err != nil {
		t.Fatalf("Nonzero exit should not surface as a runner error, got %v", err)
	}

	lines := queue.Drain()
	if len(lines) != 1 || !strings.Contains(lines[0], "unsupported URL") {
		t.Errorf("Expected the child's own error line, got %v", lines)
	}
}

func TestRunSpawnFailure(t *testing.T) {
	useMissingBinary(t)

	queue := linequeue.New()
	runner := NewRunner("yt-dlp", queue, nil, notify.Noop())

	job := model.NewJob("https://example.com/v", []string{"https://example.com/v"})
	err := runner.Run(context.Background(), job)
	if err == nil {
		t.Fatal("Expected spawn failure to return an error")
	}

	if job.Status != model.JobStatusError {
		t.Errorf("Expected status Error, got %s", job.Status)
	}
	if runner.Active() != 0 {
		t.Errorf("Process table should be empty after failure, got %d", runner.Active())
	}
}

func TestStartPushesSingleErrorLine(t *testing.T) {
	useMissingBinary(t)

	queue := linequeue.New()
	runner := NewRunner("yt-dlp", queue, nil, notify.Noop())

	job := model.NewJob("https://example.com/v", []string{"https://example.com/v"})
	runner.Start(context.Background(), job)

	deadline := time.Now().Add(5 * time.Second)
	var lines []string
	for time.Now().Before(deadline) {
		lines = append(lines, queue.Drain()...)
		if len(lines) > 0 {
			break
		}
		time.Sleep(10 * time.Millisecond)
	}

	if len(lines) != 1 {
		t.Fatalf("Expected exactly one error line, got %d: %v", len(lines), lines)
	}
	if !strings.HasPrefix(lines[0], ErrorLinePrefix) {
		t.Errorf("Expected error marker prefix, got %q", lines[0])
	}
	if runner.Active() != 0 {
		t.Errorf("Process table should be empty, got %d", runner.Active())
	}
}

func TestRunNotifiesWithSourceURL(t *testing.T) {
	useHelperProcess(t, "lines")

	queue := linequeue.New()
	recorder := &recordingNotifier{}
	runner := NewRunner("yt-dlp", queue, nil, recorder)

	job := model.NewJob("https://example.com/v", []string{"https://example.com/v", "-P", "/tmp"})
	if err := runner.Run(context.Background(), job); err != nil {
		t.Fatalf("Run returned error: %v", err)
	}

	if recorder.title != NotifyTitle {
		t.Errorf("Expected title %q, got %q", NotifyTitle, recorder.title)
	}
	if recorder.message != "https://example.com/v" {
		t.Errorf("Notification should carry the source URL, got %q", recorder.message)
	}
}

func TestSelfUpdateJobArgs(t *testing.T) {
	useHelperProcess(t, "lines")

	queue := linequeue.New()
	runner := NewRunner("yt-dlp", queue, nil, notify.Noop())

	job := runner.SelfUpdate(context.Background())
	if len(job.Args) != 1 || job.Args[0] != "-U" {
		t.Errorf("Self-update job should run -U, got %v", job.Args)
	}

	// Wait for the detached run to finish so the helper output is drained.
	deadline := time.Now().Add(5 * time.Second)
	for time.Now().Before(deadline) && queue.Len() < 3 {
		time.Sleep(10 * time.Millisecond)
	}
	if queue.Len() < 3 {
		t.Errorf("Expected update output on the queue, got %d lines", queue.Len())
	}
}

func TestCancelUnknownJob(t *testing.T) {
	runner := NewRunner("yt-dlp", linequeue.New(), nil, notify.Noop())

	if err := runner.Cancel("no-such-job"); err == nil {
		t.Error("Cancel of an unknown job should return an error")
	}
}

type recordingNotifier struct {
	title   string
	message string
}

func (r *recordingNotifier) Completed(title, message string) {
	r.title = title
	r.message = message
}
