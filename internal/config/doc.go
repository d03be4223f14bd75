package config

// Package config manages persistent user preferences (backed by Fyne
// preferences), named argument presets (a YAML file rewritten as a whole
// on save), and the on-disk layout of the application data directory.
