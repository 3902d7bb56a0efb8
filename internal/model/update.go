package model

// VersionInfo is the latest published release of the downloader binary as
// reported by the release feed.
type VersionInfo struct {
	TagName     string `json:"tag_name"`
	PublishedAt string `json:"published_at"`
	HTMLURL     string `json:"html_url"`
}

// InstallStatus is the update-available verdict. Computed fresh on every
// check; empty version strings mean "unknown".
type InstallStatus struct {
	Installed       bool   `json:"installed"`
	CurrentVersion  string `json:"current_version,omitempty"`
	LatestVersion   string `json:"latest_version,omitempty"`
	UpdateAvailable bool   `json:"update_available"`
}

// InstallProgress reports cumulative bytes written while streaming a binary
// artifact to disk. Total and Percentage are nil when the server did not
// declare a content length.
type InstallProgress struct {
	Downloaded int64    `json:"downloaded"`
	Total      *int64   `json:"total,omitempty"`
	Percentage *float64 `json:"percentage,omitempty"`
}

// InstallProgressFunc receives installer progress after each streamed chunk
type InstallProgressFunc func(InstallProgress)
