package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/easydlp/easydlp/internal/config"
)

// SettingsDialog represents the settings configuration dialog
type SettingsDialog struct {
	settings *config.Settings
	window   fyne.Window
	dialog   *dialog.CustomDialog

	downloadDirEntry *widget.Entry
	postHookEntry    *widget.Entry
	clipboardCheck   *widget.Check
}

// ShowSettingsDialog creates and shows the settings dialog
func ShowSettingsDialog(window fyne.Window, settings *config.Settings) {
	sd := &SettingsDialog{
		settings: settings,
		window:   window,
	}
	sd.createUI()
	sd.loadCurrentSettings()
	sd.dialog.Show()
}

// createUI creates the settings dialog UI
func (sd *SettingsDialog) createUI() {
	sd.downloadDirEntry = widget.NewEntry()
	sd.downloadDirEntry.SetPlaceHolder("Download directory path")
	browseBtn := widget.NewButton("Browse", sd.onBrowseDirectory)
	downloadDirRow := container.NewBorder(nil, nil, nil, browseBtn, sd.downloadDirEntry)

	sd.postHookEntry = widget.NewEntry()
	sd.postHookEntry.SetPlaceHolder("Shell command run after each download")

	sd.clipboardCheck = widget.NewCheck("Watch clipboard for URLs", nil)

	form := container.NewVBox(
		widget.NewLabel("Download Directory"),
		downloadDirRow,
		widget.NewLabel("Post-download Hook"),
		sd.postHookEntry,
		sd.clipboardCheck,
	)

	saveBtn := widget.NewButton("Save", sd.onSave)
	saveBtn.Importance = widget.HighImportance
	cancelBtn := widget.NewButton("Cancel", func() { sd.dialog.Hide() })
	buttons := container.NewHBox(cancelBtn, saveBtn)

	content := container.NewBorder(nil, container.NewCenter(buttons), nil, nil, form)
	sd.dialog = dialog.NewCustomWithoutButtons("Settings", content, sd.window)
}

// loadCurrentSettings populates the dialog from preferences
func (sd *SettingsDialog) loadCurrentSettings() {
	sd.downloadDirEntry.SetText(sd.settings.GetDownloadDirectory())
	sd.postHookEntry.SetText(sd.settings.GetPostHook())
	sd.clipboardCheck.SetChecked(sd.settings.GetClipboardWatch())
}

// onSave persists the dialog values and closes it
func (sd *SettingsDialog) onSave() {
	if dir := sd.downloadDirEntry.Text; dir != "" {
		sd.settings.SetDownloadDirectory(dir)
	}
	sd.settings.SetPostHook(sd.postHookEntry.Text)
	sd.settings.SetClipboardWatch(sd.clipboardCheck.Checked)
	sd.dialog.Hide()
}

// onBrowseDirectory shows the folder picker
func (sd *SettingsDialog) onBrowseDirectory() {
	dialog.ShowFolderOpen(func(uri fyne.ListableURI, err error) {
		if err != nil || uri == nil {
			return
		}
		sd.downloadDirEntry.SetText(uri.Path())
	}, sd.window)
}
