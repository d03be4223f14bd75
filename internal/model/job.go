package model

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Job represents a single download request translated into one yt-dlp
// invocation. The source URL is carried separately from Args so that
// completion reporting never depends on argument positions.
type Job struct {
	ID         string
	URL        string    // source URL, empty for maintenance runs like -U
	Args       []string  // ordered yt-dlp argument list
	PostHook   string    // optional shell command run detached after exit
	Status     JobStatus
	LastError  string    // last error message if any
	StartedAt  time.Time // when the child process started
	FinishedAt time.Time // when the child process finished
}

// NewJob creates a pending job for the given URL and argument list
func NewJob(url string, args []string) *Job {
	return &Job{
		ID:     uuid.NewString(),
		URL:    url,
		Args:   args,
		Status: JobStatusPending,
	}
}

// DisplayName returns a human-readable name for notifications and logs:
// the source URL when present, otherwise the first argument
func (j *Job) DisplayName() string {
	if strings.TrimSpace(j.URL) != "" {
		return j.URL
	}
	if len(j.Args) > 0 {
		return j.Args[0]
	}
	return "yt-dlp"
}
