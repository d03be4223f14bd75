package cmd

import (
	"github.com/spf13/cobra"

	"github.com/easydlp/easydlp/internal/linequeue"
	"github.com/easydlp/easydlp/internal/model"
	"github.com/easydlp/easydlp/internal/ytdlp"
)

func newUpdateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "update",
		Short: "Update the managed yt-dlp binary",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runHeadless(cmd.Context(), func(runner *ytdlp.Runner, queue *linequeue.Queue) error {
				job := model.NewJob("", []string{"-U"})
				return runner.Run(cmd.Context(), job)
			})
		},
	}
}
