package notify

import "fyne.io/fyne/v2"

// Notifier delivers a fire-and-forget desktop notification
type Notifier interface {
	Completed(title, message string)
}

// NewFyne returns a notifier backed by the Fyne desktop notification API
func NewFyne(app fyne.App) Notifier {
	return &fyneNotifier{app: app}
}

type fyneNotifier struct {
	app fyne.App
}

func (n *fyneNotifier) Completed(title, message string) {
	defer func() {
		// Notification delivery is best-effort on every platform.
		_ = recover()
	}()
	n.app.SendNotification(&fyne.Notification{
		Title:   title,
		Content: message,
	})
}

// Noop returns a notifier that discards everything, used by headless runs
func Noop() Notifier {
	return noopNotifier{}
}

type noopNotifier struct{}

func (noopNotifier) Completed(string, string) {}
