package download

// Package download implements the subprocess-driven download engine. It
// builds yt-dlp argument vectors from a request, spawns the binary, streams
// its stdout line-by-line through the progress classifier, and resolves each
// invocation to a typed success or failure.
