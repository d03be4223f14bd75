package cmd

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/easydlp/easydlp/internal/config"
	"github.com/easydlp/easydlp/internal/linequeue"
	"github.com/easydlp/easydlp/internal/logging"
	"github.com/easydlp/easydlp/internal/notify"
	"github.com/easydlp/easydlp/internal/ytdlp"
)

func newGetCmd() *cobra.Command {
	var opts ytdlp.Options

	cmd := &cobra.Command{
		Use:   "get [URL ...]",
		Short: "Download URLs without the GUI",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.URLs = strings.Join(args, "\n")
			if opts.Folder == "" {
				wd, err := os.Getwd()
				if err != nil {
					return err
				}
				opts.Folder = wd
			}
			return runHeadless(cmd.Context(), func(runner *ytdlp.Runner, queue *linequeue.Queue) error {
				var failed int
				for _, job := range ytdlp.BuildJobs(opts) {
					if err := runner.Run(cmd.Context(), job); err != nil {
						queue.Push(fmt.Sprintf("%s %v", ytdlp.ErrorLinePrefix, err))
						failed++
					}
				}
				if failed > 0 {
					return fmt.Errorf("%d job(s) failed to run", failed)
				}
				return nil
			})
		},
	}

	cmd.Flags().StringVarP(&opts.Folder, "folder", "P", "", "save folder (default: current directory)")
	cmd.Flags().BoolVarP(&opts.AudioOnly, "audio", "x", false, "extract audio as mp3")
	cmd.Flags().StringVarP(&opts.Quality, "quality", "q", ytdlp.QualityBest, "quality bound (Best, 1080p, 720p, 480p)")
	cmd.Flags().StringVar(&opts.SubtitleLang, "subs", "", "subtitle language to embed")
	cmd.Flags().BoolVar(&opts.SponsorBlock, "sponsorblock", false, "remove sponsored segments")
	cmd.Flags().StringVar(&opts.RateLimit, "limit-rate", "", "download rate limit, e.g. 500K")
	cmd.Flags().StringVar(&opts.Proxy, "proxy", "", "proxy URL")
	cmd.Flags().StringVarP(&opts.OutputTemplate, "output", "o", "", "output filename template")
	cmd.Flags().StringVar(&opts.PostHook, "post-hook", "", "shell command run after each download")

	return cmd
}

// runHeadless prepares the shared download plumbing for CLI subcommands:
// the activity log, the queue with a stdout pump, and the runner.
func runHeadless(ctx context.Context, fn func(*ytdlp.Runner, *linequeue.Queue) error) error {
	paths, err := config.DefaultPaths()
	if err != nil {
		return err
	}
	if err := paths.Ensure(); err != nil {
		return err
	}
	activity, err := logging.OpenActivityLog(paths.ActivityLog)
	if err != nil {
		return err
	}
	defer activity.Close()

	binary, err := ytdlp.EnsureBinary(ctx, paths.Binary)
	if err != nil {
		return err
	}

	queue := linequeue.New()
	runner := ytdlp.NewRunner(binary, queue, activity, notify.Noop())

	stop := make(chan struct{})
	pumpDone := make(chan struct{})
	go func() {
		defer close(pumpDone)
		ticker := time.NewTicker(100 * time.Millisecond)
		defer ticker.Stop()
		for {
			select {
			case <-stop:
				return
			case <-ticker.C:
				for _, line := range queue.Drain() {
					fmt.Println(line)
				}
			}
		}
	}()

	runErr := fn(runner, queue)

	close(stop)
	<-pumpDone
	for _, line := range queue.Drain() {
		fmt.Println(line)
	}
	return runErr
}
