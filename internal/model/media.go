package model

// PlaylistEntry describes one item of a resolved playlist
type PlaylistEntry struct {
	ID        string   `json:"id"`
	Title     string   `json:"title"`
	Duration  *float64 `json:"duration,omitempty"`
	Thumbnail string   `json:"thumbnail,omitempty"`
}

// MediaInfo is the resolved metadata for a single item or a playlist.
// Produced once per inspect call and never mutated afterwards.
type MediaInfo struct {
	ID            string          `json:"id"`
	Title         string          `json:"title"`
	Duration      *float64        `json:"duration,omitempty"`
	Thumbnail     string          `json:"thumbnail,omitempty"`
	Description   string          `json:"description,omitempty"`
	Uploader      string          `json:"uploader,omitempty"`
	IsPlaylist    bool            `json:"is_playlist"`
	PlaylistCount int             `json:"playlist_count,omitempty"`
	Entries       []PlaylistEntry `json:"entries,omitempty"`
}
