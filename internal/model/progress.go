package model

// ProgressStatus tags one phase of an in-flight download
type ProgressStatus string

const (
	StatusExtracting  ProgressStatus = "extracting"
	StatusStarting    ProgressStatus = "starting"
	StatusDownloading ProgressStatus = "downloading"
	StatusProcessing  ProgressStatus = "processing"
	StatusCompleted   ProgressStatus = "completed"
	StatusError       ProgressStatus = "error"
)

// String returns the string representation of ProgressStatus
func (ps ProgressStatus) String() string {
	return string(ps)
}

// ProgressEvent is one structured update derived from a single line of the
// downloader's output. Any subset of the optional fields may be absent and
// percentages are not guaranteed to be monotonic.
type ProgressEvent struct {
	Status          ProgressStatus `json:"status"`
	Percentage      *float64       `json:"percentage,omitempty"`
	Speed           string         `json:"speed,omitempty"`
	ETA             string         `json:"eta,omitempty"`
	Filename        string         `json:"filename,omitempty"`
	TotalBytes      *int64         `json:"total_bytes,omitempty"`
	DownloadedBytes *int64         `json:"downloaded_bytes,omitempty"`
}

// ProgressFunc receives progress events in strict stream order for one
// download call. A callback shared between concurrent calls must itself be
// safe for concurrent invocation.
type ProgressFunc func(ProgressEvent)

// Float64 returns a pointer to v, for optional event fields
func Float64(v float64) *float64 {
	return &v
}
