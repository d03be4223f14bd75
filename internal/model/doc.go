package model

// Package model defines domain data structures used across the app: download
// jobs and status enums. A Job is ephemeral; one Job maps to exactly one
// yt-dlp child-process invocation and is discarded after the process exits.
