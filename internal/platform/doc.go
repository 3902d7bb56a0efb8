package platform

// Package platform contains OS integration glue: resolution of the
// application-private binary directory, existence and version probing of the
// managed yt-dlp and ffmpeg binaries, and filesystem helpers.
