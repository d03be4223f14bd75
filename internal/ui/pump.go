package ui

import (
	"time"

	"fyne.io/fyne/v2"
)

// startPump runs the queue pump: on every tick it drains all currently
// buffered lines and appends them to the log view. An empty drain mutates
// nothing. This is the only consumer of the line queue.
func (ui *RootUI) startPump() {
	go func() {
		ticker := time.NewTicker(PumpInterval)
		defer ticker.Stop()
		for {
			select {
			case <-ui.stop:
				return
			case <-ticker.C:
				lines := ui.queue.Drain()
				if len(lines) == 0 {
					continue
				}
				fyne.Do(func() { ui.appendLog(lines) })
			}
		}
	}()
}
