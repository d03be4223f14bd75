package ui

import (
	"strings"
	"time"

	"fyne.io/fyne/v2"
)

// startClipboardWatcher polls the system clipboard on a slow tick. When
// the content looks like a URL and differs from the last-seen value, it
// replaces the URL input. Best-effort: read failures are ignored and
// polling continues.
func (ui *RootUI) startClipboardWatcher() {
	go func() {
		ticker := time.NewTicker(ClipboardInterval)
		defer ticker.Stop()
		for {
			select {
			case <-ui.stop:
				return
			case <-ticker.C:
				if !ui.settings.GetClipboardWatch() {
					continue
				}
				ui.pollClipboard()
			}
		}
	}()
}

func (ui *RootUI) pollClipboard() {
	defer func() {
		// Clipboard access can fail on headless or locked-down desktops.
		_ = recover()
	}()

	var clip string
	fyne.DoAndWait(func() {
		clip = ui.app.Clipboard().Content()
	})

	if !strings.HasPrefix(clip, ClipboardURLPrefix) || clip == ui.clipboardLast {
		return
	}
	ui.clipboardLast = clip
	fyne.Do(func() {
		ui.urlEntry.SetText(clip)
	})
}
