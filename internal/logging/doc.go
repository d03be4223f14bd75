package logging

// Package logging configures the zerolog diagnostics logger and owns the
// append-only activity log file. Diagnostics and the activity log are kept
// apart on purpose: the activity log holds raw child-process output only,
// so its content always equals the concatenation of the lines the child
// wrote.
