package ui

import "time"

// Window sizing
const (
	WindowWidth  float32 = 860
	WindowHeight float32 = 760
)

// Polling intervals. The pump drains the line queue on the fast tick; the
// clipboard watcher runs on the slow one.
const (
	PumpInterval      = 100 * time.Millisecond
	ClipboardInterval = 2 * time.Second
)

// Preset select entry meaning "no preset applied"
const PresetNone = "None"

// Clipboard content is only offered as a URL when it has this prefix
const ClipboardURLPrefix = "http"

// Placeholders
const (
	PlaceholderRate     = "Rate e.g. 500K"
	PlaceholderProxy    = "Proxy URL"
	PlaceholderTemplate = "%(title)s.%(ext)s"
)

// URL input sizing
const URLEntryRows = 4
