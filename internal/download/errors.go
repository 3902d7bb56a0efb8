package download

import "errors"

var (
	// ErrBinaryNotFound indicates yt-dlp is absent; install it first.
	ErrBinaryNotFound = errors.New("yt-dlp binary not found")
	// ErrNoOutput indicates the metadata query produced no stdout lines.
	ErrNoOutput = errors.New("no output from yt-dlp")
	// ErrExecution indicates yt-dlp exited nonzero during a metadata query.
	ErrExecution = errors.New("failed to execute yt-dlp")
	// ErrDownloadFailed indicates the child exited nonzero during a download.
	ErrDownloadFailed = errors.New("download failed")
	// ErrMetadataParse indicates a single-line metadata response was not
	// valid JSON. Unlike playlist expansion, this fails loudly.
	ErrMetadataParse = errors.New("invalid metadata response")
)
