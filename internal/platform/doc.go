package platform

// Package platform contains OS integration glue: filesystem helpers,
// per-platform data directory resolution, and opening folders or files in
// the system file manager.
