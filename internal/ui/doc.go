package ui

// Package ui contains the Fyne-based desktop user interface: the download
// form, the live log view fed by the queue pump, the clipboard watcher,
// and the settings dialog. All widget mutations go through fyne.Do.
