package ytdlp

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"runtime"
	"sync"
	"time"

	"github.com/easydlp/easydlp/internal/linequeue"
	"github.com/easydlp/easydlp/internal/logging"
	"github.com/easydlp/easydlp/internal/model"
	"github.com/easydlp/easydlp/internal/notify"
	"github.com/easydlp/easydlp/internal/platform"
	"github.com/rs/zerolog"
)

var commandContext = exec.CommandContext

// Marker prefixed to the single queue line a failed job produces
const ErrorLinePrefix = "[ERROR]"

// Notification strings
const (
	NotifyTitle          = "Download Complete"
	NotifyFallbackDetail = "Finished"
)

// Runner launches yt-dlp child processes and pumps their merged
// stdout/stderr into the line queue and the activity log. Each Run call
// owns exactly one child for its lifetime; live process handles are
// tracked in a table keyed by job ID so any job can be cancelled.
type Runner struct {
	queue    *linequeue.Queue
	activity io.Writer // append-only raw output sink, may be nil
	notifier notify.Notifier
	log      zerolog.Logger

	mu     sync.Mutex
	binary string
	procs  map[string]*os.Process
}

// NewRunner creates a runner for the given yt-dlp binary
func NewRunner(binary string, queue *linequeue.Queue, activity io.Writer, notifier notify.Notifier) *Runner {
	if notifier == nil {
		notifier = notify.Noop()
	}
	return &Runner{
		binary:   binary,
		queue:    queue,
		activity: activity,
		notifier: notifier,
		log:      logging.Component("runner"),
		procs:    make(map[string]*os.Process),
	}
}

// Binary returns the yt-dlp executable path this runner invokes
func (r *Runner) Binary() string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.binary
}

// SetBinary replaces the executable path, used once the bundled binary has
// been located or downloaded in the background
func (r *Runner) SetBinary(path string) {
	r.mu.Lock()
	r.binary = path
	r.mu.Unlock()
}

// Start runs the job on its own goroutine. A spawn or read failure
// surfaces as exactly one error-marked line on the queue; other jobs are
// unaffected.
func (r *Runner) Start(ctx context.Context, job *model.Job) {
	go func() {
		if err := r.Run(ctx, job); err != nil {
			r.queue.Push(fmt.Sprintf("%s %v", ErrorLinePrefix, err))
		}
	}()
}

// Run launches the child process and blocks until it exits. Every line the
// child writes (stdout and stderr merged) is appended to the activity log
// and pushed onto the queue in write order. After exit the post-hook is
// launched detached and a completion notification is sent; both are
// best-effort. Spawn and read failures are returned to the caller.
func (r *Runner) Run(ctx context.Context, job *model.Job) error {
	defer r.finish(job)

	job.StartedAt = time.Now()

	cmd := commandContext(ctx, r.Binary(), job.Args...)
	stdout, err := cmd.StdoutPipe()
	if err != nil {
		job.Status = model.JobStatusError
		job.LastError = err.Error()
		return fmt.Errorf("stdout pipe: %w", err)
	}
	cmd.Stderr = cmd.Stdout

	if err := cmd.Start(); err != nil {
		job.Status = model.JobStatusError
		job.LastError = err.Error()
		return fmt.Errorf("start yt-dlp: %w", err)
	}

	job.Status = model.JobStatusRunning
	r.track(job.ID, cmd.Process)
	defer r.untrack(job.ID)

	scanner := bufio.NewScanner(stdout)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		line := scanner.Text()
		r.queue.Push(line)
		if r.activity != nil {
			fmt.Fprintln(r.activity, line)
		}
	}
	if err := scanner.Err(); err != nil {
		job.Status = model.JobStatusError
		job.LastError = err.Error()
		// Reap the child before reporting the read failure.
		_ = cmd.Wait()
		return fmt.Errorf("read yt-dlp output: %w", err)
	}

	if err := cmd.Wait(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			// yt-dlp reports its own failures on the merged stream, which
			// the queue already carries; a nonzero exit is not a runner error.
			r.log.Debug().Str("job", job.ID).Int("code", exitErr.ExitCode()).Msg("yt-dlp exited nonzero")
		} else {
			job.Status = model.JobStatusError
			job.LastError = err.Error()
			return fmt.Errorf("wait for yt-dlp: %w", err)
		}
	}

	job.Status = model.JobStatusCompleted
	return nil
}

// finish runs the post-exit side effects: detached post-hook, then the
// completion notification named after the job's source URL.
func (r *Runner) finish(job *model.Job) {
	job.FinishedAt = time.Now()

	if hook := job.PostHook; hook != "" {
		if err := startHook(hook); err != nil {
			r.log.Debug().Err(err).Str("job", job.ID).Msg("post-hook failed to start")
		}
	}

	detail := job.DisplayName()
	if detail == "" {
		detail = NotifyFallbackDetail
	}
	r.notifier.Completed(NotifyTitle, detail)
}

// startHook launches the hook as an independent shell command. Its output
// and exit status are ignored.
func startHook(hook string) error {
	var cmd *exec.Cmd
	if runtime.GOOS == platform.OSWindows {
		cmd = exec.Command("cmd", "/C", hook)
	} else {
		cmd = exec.Command("/bin/sh", "-c", hook)
	}
	if err := cmd.Start(); err != nil {
		return err
	}
	go func() { _ = cmd.Wait() }()
	return nil
}

func (r *Runner) track(jobID string, proc *os.Process) {
	r.mu.Lock()
	r.procs[jobID] = proc
	r.mu.Unlock()
}

func (r *Runner) untrack(jobID string) {
	r.mu.Lock()
	delete(r.procs, jobID)
	r.mu.Unlock()
}

// Active returns the number of jobs with a live child process
func (r *Runner) Active() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.procs)
}

// Cancel kills the child process of the given job
func (r *Runner) Cancel(jobID string) error {
	r.mu.Lock()
	proc, ok := r.procs[jobID]
	r.mu.Unlock()
	if !ok {
		return fmt.Errorf("no running process for job %s", jobID)
	}
	return proc.Kill()
}

// CancelAll kills every tracked child process
func (r *Runner) CancelAll() {
	r.mu.Lock()
	procs := make([]*os.Process, 0, len(r.procs))
	for _, proc := range r.procs {
		procs = append(procs, proc)
	}
	r.mu.Unlock()

	for _, proc := range procs {
		if err := proc.Kill(); err != nil {
			r.log.Debug().Err(err).Msg("kill failed")
		}
	}
}

// SelfUpdate starts a job that runs yt-dlp -U so its output streams into
// the queue like any download
func (r *Runner) SelfUpdate(ctx context.Context) *model.Job {
	job := model.NewJob("", []string{"-U"})
	r.Start(ctx, job)
	return job
}
