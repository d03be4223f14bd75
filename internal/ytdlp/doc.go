package ytdlp

// Package ytdlp drives the external yt-dlp executable: it translates form
// state into argument lists, supervises one child process per job while
// streaming its merged output into the line queue and the activity log,
// probes expected output filenames, and installs or updates the binary.
