package ui

import (
	"context"
	"fmt"
	"os"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"
	"github.com/rs/zerolog"

	"github.com/easydlp/easydlp/internal/config"
	"github.com/easydlp/easydlp/internal/linequeue"
	"github.com/easydlp/easydlp/internal/logging"
	"github.com/easydlp/easydlp/internal/model"
	"github.com/easydlp/easydlp/internal/platform"
	"github.com/easydlp/easydlp/internal/ytdlp"
)

// RootUI represents the main UI structure
type RootUI struct {
	app      fyne.App
	window   fyne.Window
	settings *config.Settings
	presets  *config.PresetStore
	runner   *ytdlp.Runner
	queue    *linequeue.Queue
	paths    config.Paths
	log      zerolog.Logger

	// Download form
	urlEntry      *widget.Entry
	folderEntry   *widget.Entry
	audioCheck    *widget.Check
	sponsorCheck  *widget.Check
	qualitySelect *widget.Select
	subsSelect    *widget.Select
	rateEntry     *widget.Entry
	proxyEntry    *widget.Entry
	templateEntry *widget.Entry
	presetSelect  *widget.Select

	// Log view
	logText   strings.Builder
	logLabel  *widget.Label
	logScroll *container.Scroll

	// Background tickers
	stop          chan struct{}
	clipboardLast string
}

// NewRootUI creates and initializes the main UI
func NewRootUI(app fyne.App, window fyne.Window, settings *config.Settings, presets *config.PresetStore, runner *ytdlp.Runner, queue *linequeue.Queue, paths config.Paths) *RootUI {
	ui := &RootUI{
		app:      app,
		window:   window,
		settings: settings,
		presets:  presets,
		runner:   runner,
		queue:    queue,
		paths:    paths,
		log:      logging.Component("ui"),
		stop:     make(chan struct{}),
	}

	ui.setupUI()
	return ui
}

// Start launches the queue pump and the clipboard watcher
func (ui *RootUI) Start() {
	ui.startPump()
	ui.startClipboardWatcher()
}

// Stop terminates the background tickers
func (ui *RootUI) Stop() {
	close(ui.stop)
}

// setupUI creates and arranges all UI components
func (ui *RootUI) setupUI() {
	ui.createMenu()

	// URL input
	ui.urlEntry = widget.NewMultiLineEntry()
	ui.urlEntry.SetPlaceHolder("Enter URLs (one per line)")
	ui.urlEntry.SetMinRowsVisible(URLEntryRows)

	// Save folder row
	ui.folderEntry = widget.NewEntry()
	ui.folderEntry.SetText(ui.settings.GetDownloadDirectory())
	browseBtn := widget.NewButton("Browse", ui.onBrowseFolder)
	folderRow := container.NewBorder(nil, nil, widget.NewLabel("Save To:"), browseBtn, ui.folderEntry)

	// Audio / subtitles / sponsorblock row
	ui.audioCheck = widget.NewCheck("Audio Only", nil)
	ui.audioCheck.SetChecked(ui.settings.GetAudioOnly())
	ui.subsSelect = widget.NewSelect(ui.settings.GetSubtitleLanguageOptions(), nil)
	ui.subsSelect.PlaceHolder = "Subtitles"
	if lang := ui.settings.GetSubtitleLanguage(); lang != "" {
		ui.subsSelect.SetSelected(lang)
	}
	ui.sponsorCheck = widget.NewCheck("Skip Sponsor Segments", nil)
	ui.sponsorCheck.SetChecked(ui.settings.GetSponsorBlock())
	toggleRow := container.NewGridWithColumns(3, ui.audioCheck, ui.subsSelect, ui.sponsorCheck)

	// Quality / rate / proxy row
	ui.qualitySelect = widget.NewSelect(ui.settings.GetQualityOptions(), nil)
	ui.qualitySelect.SetSelected(ui.settings.GetQuality())
	ui.rateEntry = widget.NewEntry()
	ui.rateEntry.SetPlaceHolder(PlaceholderRate)
	ui.rateEntry.SetText(ui.settings.GetRateLimit())
	ui.proxyEntry = widget.NewEntry()
	ui.proxyEntry.SetPlaceHolder(PlaceholderProxy)
	ui.proxyEntry.SetText(ui.settings.GetProxyURL())
	qualityRow := container.NewGridWithColumns(4,
		widget.NewLabel("Quality:"), ui.qualitySelect, ui.rateEntry, ui.proxyEntry)

	// Template / preset row
	ui.templateEntry = widget.NewEntry()
	ui.templateEntry.SetPlaceHolder(PlaceholderTemplate)
	ui.templateEntry.SetText(ui.settings.GetFilenameTemplate())
	ui.presetSelect = widget.NewSelect(ui.presetOptions(), func(name string) {
		ui.settings.SetSelectedPreset(name)
	})
	if selected := ui.settings.GetSelectedPreset(); selected != "" {
		ui.presetSelect.SetSelected(selected)
	} else {
		ui.presetSelect.SetSelected(PresetNone)
	}
	savePresetBtn := widget.NewButton("Save Preset", ui.onSavePreset)
	presetRow := container.NewGridWithColumns(3, ui.templateEntry, ui.presetSelect, savePresetBtn)

	// Action buttons
	downloadBtn := widget.NewButton("Download", ui.onDownload)
	downloadBtn.Importance = widget.HighImportance
	updateBtn := widget.NewButton("Update yt-dlp", ui.onUpdate)
	openFolderBtn := widget.NewButton("Open Folder", ui.onOpenFolder)
	actionRow := container.NewHBox(downloadBtn, updateBtn, openFolderBtn)

	downloadTab := container.NewVBox(
		widget.NewLabel("Enter URLs (one per line):"),
		ui.urlEntry,
		folderRow,
		toggleRow,
		qualityRow,
		presetRow,
		container.NewCenter(actionRow),
	)

	// Log tab: read-only view fed by the pump
	ui.logLabel = widget.NewLabel("")
	ui.logLabel.TextStyle = fyne.TextStyle{Monospace: true}
	ui.logScroll = container.NewVScroll(ui.logLabel)
	openLogBtn := widget.NewButton("Open Log", ui.onOpenLog)
	logTab := container.NewBorder(nil, container.NewCenter(openLogBtn), nil, nil, ui.logScroll)

	tabs := container.NewAppTabs(
		container.NewTabItem("Download", downloadTab),
		container.NewTabItem("Log", logTab),
	)

	ui.window.SetContent(tabs)
}

// createMenu creates the application menu
func (ui *RootUI) createMenu() {
	settingsItem := fyne.NewMenuItem("Settings", ui.onShowSettings)
	ui.window.SetMainMenu(fyne.NewMainMenu(
		fyne.NewMenu("File", settingsItem),
	))
}

// collectOptions snapshots the download form into builder options
func (ui *RootUI) collectOptions() ytdlp.Options {
	opts := ytdlp.Options{
		URLs:           ui.urlEntry.Text,
		Folder:         strings.TrimSpace(ui.folderEntry.Text),
		AudioOnly:      ui.audioCheck.Checked,
		Quality:        ui.qualitySelect.Selected,
		SubtitleLang:   ui.subsSelect.Selected,
		SponsorBlock:   ui.sponsorCheck.Checked,
		RateLimit:      strings.TrimSpace(ui.rateEntry.Text),
		Proxy:          strings.TrimSpace(ui.proxyEntry.Text),
		OutputTemplate: strings.TrimSpace(ui.templateEntry.Text),
		PostHook:       ui.settings.GetPostHook(),
	}
	if opts.Folder == "" {
		if wd, err := os.Getwd(); err == nil {
			opts.Folder = wd
		}
	}
	if name := ui.presetSelect.Selected; name != "" && name != PresetNone {
		if args, ok := ui.presets.Get(name); ok {
			opts.ExtraArgs = args
		}
	}
	return opts
}

// persistOptions writes the form state back into preferences
func (ui *RootUI) persistOptions(opts ytdlp.Options) {
	ui.settings.SetDownloadDirectory(opts.Folder)
	ui.settings.SetAudioOnly(opts.AudioOnly)
	ui.settings.SetQuality(opts.Quality)
	ui.settings.SetSubtitleLanguage(opts.SubtitleLang)
	ui.settings.SetSponsorBlock(opts.SponsorBlock)
	ui.settings.SetRateLimit(opts.RateLimit)
	ui.settings.SetProxyURL(opts.Proxy)
	ui.settings.SetFilenameTemplate(opts.OutputTemplate)
}

// onDownload handles the download button click
func (ui *RootUI) onDownload() {
	opts := ui.collectOptions()
	jobs := ytdlp.BuildJobs(opts)
	if len(jobs) == 0 {
		dialog.ShowInformation("No URLs", "Enter at least one URL to download.", ui.window)
		return
	}

	ui.persistOptions(opts)
	ui.log.Info().Int("jobs", len(jobs)).Msg("starting downloads")

	for _, job := range jobs {
		ui.launchJob(job, opts.Folder)
	}
}

// launchJob probes the expected output filename and either starts the job
// or asks for overwrite confirmation first. Probing happens off the UI
// thread; the confirm dialog returns to it.
func (ui *RootUI) launchJob(job *model.Job, folder string) {
	go func() {
		expected := ui.runner.ExpectedFilename(context.Background(), job.URL, folder)
		if expected != "" {
			if _, err := os.Stat(expected); err == nil {
				fyne.Do(func() { ui.confirmOverwrite(job, expected) })
				return
			}
		}
		ui.runner.Start(context.Background(), job)
	}()
}

// confirmOverwrite asks before replacing an existing file. Declining pushes
// a single skip line so the log records the decision.
func (ui *RootUI) confirmOverwrite(job *model.Job, path string) {
	message := fmt.Sprintf("The file already exists:\n\n%s\n\nReplace it?", path)
	dialog.ShowConfirm("File Exists", message, func(replace bool) {
		if !replace {
			ui.queue.Push("Skipped " + job.URL)
			return
		}
		ui.runner.Start(context.Background(), job)
	}, ui.window)
}

// onUpdate runs yt-dlp -U; its output streams into the log view
func (ui *RootUI) onUpdate() {
	ui.runner.SelfUpdate(context.Background())
}

// onOpenFolder opens the save folder in the system file manager
func (ui *RootUI) onOpenFolder() {
	folder := strings.TrimSpace(ui.folderEntry.Text)
	if folder == "" {
		folder = ui.settings.GetDownloadDirectory()
	}
	if err := platform.OpenPath(folder); err != nil {
		ui.log.Warn().Err(err).Str("folder", folder).Msg("open folder failed")
	}
}

// onOpenLog opens the activity log with the default handler
func (ui *RootUI) onOpenLog() {
	if err := platform.OpenPath(ui.paths.ActivityLog); err != nil {
		ui.log.Warn().Err(err).Msg("open activity log failed")
	}
}

// onBrowseFolder shows the folder picker for the save folder
func (ui *RootUI) onBrowseFolder() {
	dialog.ShowFolderOpen(func(uri fyne.ListableURI, err error) {
		if err != nil || uri == nil {
			return
		}
		ui.folderEntry.SetText(uri.Path())
	}, ui.window)
}

// onSavePreset captures the current flag fragment under a chosen name
func (ui *RootUI) onSavePreset() {
	nameEntry := widget.NewEntry()
	nameEntry.SetPlaceHolder("Preset name")
	items := []*widget.FormItem{widget.NewFormItem("Name", nameEntry)}

	dialog.ShowForm("Save Preset", "Save", "Cancel", items, func(save bool) {
		name := strings.TrimSpace(nameEntry.Text)
		if !save || name == "" || name == PresetNone {
			return
		}
		opts := ui.collectOptions()
		opts.ExtraArgs = nil // a preset stores the plain form flags
		ui.presets.Set(name, ytdlp.BuildFlagArgs(opts))
		if err := ui.presets.Save(); err != nil {
			ui.log.Warn().Err(err).Msg("saving presets failed")
			dialog.ShowError(err, ui.window)
			return
		}
		ui.presetSelect.Options = ui.presetOptions()
		ui.presetSelect.SetSelected(name)
		ui.presetSelect.Refresh()
	}, ui.window)
}

// onShowSettings shows the settings dialog
func (ui *RootUI) onShowSettings() {
	ShowSettingsDialog(ui.window, ui.settings)
}

// presetOptions returns the preset select entries, None first
func (ui *RootUI) presetOptions() []string {
	return append([]string{PresetNone}, ui.presets.Names()...)
}

// appendLog renders drained queue lines at the end of the log view and
// scrolls to the bottom. Must run on the UI thread.
func (ui *RootUI) appendLog(lines []string) {
	for _, line := range lines {
		ui.logText.WriteString(line)
		ui.logText.WriteByte('\n')
	}
	ui.logLabel.SetText(ui.logText.String())
	ui.logScroll.ScrollToBottom()
}
