package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/easydlp/easydlp/internal/logging"
)

// Application identity
const (
	AppID   = "com.easydlp.easydlp"
	AppName = "EasyDLP"
)

// Version is set during build via -ldflags "-X github.com/easydlp/easydlp/cmd.Version=X.Y.Z"
var Version = "dev"

var debug bool

var rootCmd = &cobra.Command{
	Use:     "easydlp",
	Short:   "EasyDLP is a desktop front-end for yt-dlp",
	Version: Version,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runGUI()
	},
}

// Execute runs the CLI entry point
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(func() {
		logging.Init(debug)
	})
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")
	rootCmd.AddCommand(newGetCmd())
	rootCmd.AddCommand(newUpdateCmd())
}
