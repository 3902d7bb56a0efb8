package update

import "errors"

var (
	// ErrRequest indicates a transport failure talking to the release feed
	// or the artifact host.
	ErrRequest = errors.New("http request failed")
	// ErrParse indicates the release feed response was missing expected
	// fields.
	ErrParse = errors.New("failed to parse version info")
)
