package update

// Package update keeps the managed yt-dlp binary current: it queries the
// release feed for the latest published version, streams the platform
// artifact to disk with progress, and installs it atomically so concurrent
// readers never observe a partially written binary.
