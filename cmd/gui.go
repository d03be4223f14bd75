package cmd

import (
	"context"
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/dialog"

	"github.com/easydlp/easydlp/internal/config"
	"github.com/easydlp/easydlp/internal/linequeue"
	"github.com/easydlp/easydlp/internal/logging"
	"github.com/easydlp/easydlp/internal/notify"
	"github.com/easydlp/easydlp/internal/ui"
	"github.com/easydlp/easydlp/internal/ytdlp"
)

// runGUI wires the services together and runs the Fyne event loop. Startup
// failures surface in a blocking error dialog before the non-zero exit.
func runGUI() error {
	log := logging.Component("app")
	log.Info().Str("version", Version).Msg("starting")

	myApp := app.NewWithID(AppID)
	myApp.Settings().SetTheme(ui.NewCompactTheme())

	window := myApp.NewWindow(fmt.Sprintf("%s v%s", AppName, Version))
	window.Resize(fyne.NewSize(ui.WindowWidth, ui.WindowHeight))

	fatal := func(err error) error {
		log.Error().Err(err).Msg("startup failed")
		dialog.ShowError(err, window)
		window.ShowAndRun()
		return err
	}

	paths, err := config.DefaultPaths()
	if err != nil {
		return fatal(err)
	}
	if err := paths.Ensure(); err != nil {
		return fatal(err)
	}
	activity, err := logging.OpenActivityLog(paths.ActivityLog)
	if err != nil {
		return fatal(err)
	}
	defer activity.Close()

	settings := config.NewSettings(myApp)
	presets := config.NewPresetStore(paths.PresetsFile)
	presets.Load()

	queue := linequeue.New()
	runner := ytdlp.NewRunner(paths.Binary, queue, activity, notify.NewFyne(myApp))

	rootUI := ui.NewRootUI(myApp, window, settings, presets, runner, queue, paths)
	rootUI.Start()

	// Locate or fetch yt-dlp without blocking the window.
	go func() {
		binary, err := ytdlp.EnsureBinary(context.Background(), paths.Binary)
		if err != nil {
			queue.Push(fmt.Sprintf("%s %v", ytdlp.ErrorLinePrefix, err))
			return
		}
		runner.SetBinary(binary)
		log.Info().Str("binary", binary).Msg("yt-dlp ready")
	}()

	window.ShowAndRun()

	rootUI.Stop()
	runner.CancelAll()
	return nil
}
