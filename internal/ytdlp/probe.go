package ytdlp

import (
	"context"
	"path/filepath"
	"strings"
	"time"
)

// Upper bound on a filename probe; a download never waits this long
const probeTimeout = 30 * time.Second

// ExpectedFilename asks yt-dlp what filename it would produce for the URL
// without downloading, joined with the destination folder. Best-effort:
// any failure returns the empty string and the download proceeds without
// overwrite confirmation.
func (r *Runner) ExpectedFilename(ctx context.Context, url, folder string) string {
	ctx, cancel := context.WithTimeout(ctx, probeTimeout)
	defer cancel()

	cmd := commandContext(ctx, r.Binary(), "--no-print-traffic", "--print", "filename", url)
	out, err := cmd.Output()
	if err != nil {
		r.log.Debug().Err(err).Str("url", url).Msg("filename probe failed")
		return ""
	}

	name := strings.TrimSpace(string(out))
	if name == "" {
		return ""
	}
	return filepath.Join(folder, name)
}
