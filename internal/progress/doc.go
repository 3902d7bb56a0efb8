package progress

// Package progress classifies single lines of the downloader's text output
// into structured progress events. The upstream output format is not a
// stable contract, so classification is an ordered, open list of pattern
// rules; lines matching no rule are silently dropped.
