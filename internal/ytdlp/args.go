package ytdlp

import (
	"fmt"
	"strings"

	"github.com/easydlp/easydlp/internal/model"
)

// Format selectors passed to yt-dlp -f
const (
	FormatBest         = "bv*+ba/best"
	FormatBoundedTempl = "bestvideo[height<=%s]+bestaudio/best"
)

// Quality choice meaning "no height bound"
const QualityBest = "Best"

// Options is the form state one download run is built from. BuildArgs and
// BuildJobs are pure: no I/O, no side effects.
type Options struct {
	URLs           string   // raw multi-line URL input, one URL per line
	Folder         string   // destination folder (-P)
	AudioOnly      bool     // -x --audio-format mp3, excludes any -f
	Quality        string   // "Best", "1080p", "720p", "480p"
	SubtitleLang   string   // --write-subs --sub-lang=<lang> when set
	SponsorBlock   bool     // --sponsorblock-remove all
	RateLimit      string   // --limit-rate <rate>
	Proxy          string   // --proxy <url>
	OutputTemplate string   // -o <template>
	ExtraArgs      []string // preset fragment appended verbatim
	PostHook       string   // shell command run detached after each job
}

// BuildArgs produces the full yt-dlp argument list for one URL
func BuildArgs(url string, opts Options) []string {
	args := []string{url}
	if opts.Folder != "" {
		args = append(args, "-P", opts.Folder)
	}
	args = append(args, BuildFlagArgs(opts)...)
	return args
}

// BuildFlagArgs produces the flag portion of the argument list, shared by
// every URL of a run. This is also what gets captured into a named preset.
func BuildFlagArgs(opts Options) []string {
	var args []string

	if opts.AudioOnly {
		args = append(args, "-x", "--audio-format", "mp3")
	} else {
		quality := strings.TrimSpace(opts.Quality)
		if quality == "" || quality == QualityBest {
			args = append(args, "-f", FormatBest)
		} else {
			height := strings.TrimSuffix(quality, "p")
			args = append(args, "-f", fmt.Sprintf(FormatBoundedTempl, height))
		}
	}

	if lang := strings.TrimSpace(opts.SubtitleLang); lang != "" {
		args = append(args, "--write-subs", "--sub-lang="+lang)
	}
	if opts.SponsorBlock {
		args = append(args, "--sponsorblock-remove", "all")
	}
	if rate := strings.TrimSpace(opts.RateLimit); rate != "" {
		args = append(args, "--limit-rate", rate)
	}
	if proxy := strings.TrimSpace(opts.Proxy); proxy != "" {
		args = append(args, "--proxy", proxy)
	}
	if tpl := strings.TrimSpace(opts.OutputTemplate); tpl != "" {
		args = append(args, "-o", tpl)
	}

	args = append(args, opts.ExtraArgs...)
	return args
}

// BuildJobs produces one job per non-empty URL line, skipping blanks
func BuildJobs(opts Options) []*model.Job {
	var jobs []*model.Job
	for _, line := range strings.Split(opts.URLs, "\n") {
		url := strings.TrimSpace(line)
		if url == "" {
			continue
		}
		job := model.NewJob(url, BuildArgs(url, opts))
		job.PostHook = opts.PostHook
		jobs = append(jobs, job)
	}
	return jobs
}
