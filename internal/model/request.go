package model

// ModeKind selects between the two download mode variants
type ModeKind string

const (
	ModeVideo ModeKind = "video"
	ModeAudio ModeKind = "audio"
)

// VideoQuality constrains the format selection passed to yt-dlp
type VideoQuality string

const (
	QualityBest VideoQuality = "best"
	Quality720p VideoQuality = "720p"
	Quality480p VideoQuality = "480p"
)

// Format selector strings understood by yt-dlp
const (
	FormatSelectorBest = "bv*+ba/b"
	FormatSelector720p = "bv*[height<=720]+ba/b"
	FormatSelector480p = "bv*[height<=480]+ba/b"
)

// FormatSelector returns the yt-dlp format selector for the quality.
// Unrecognized tags fall back to the best-quality selector.
func (q VideoQuality) FormatSelector() string {
	switch q {
	case Quality720p:
		return FormatSelector720p
	case Quality480p:
		return FormatSelector480p
	default:
		return FormatSelectorBest
	}
}

// VideoContainer is the merge container for video downloads
type VideoContainer string

const (
	ContainerMP4  VideoContainer = "mp4"
	ContainerMKV  VideoContainer = "mkv"
	ContainerWebM VideoContainer = "webm"
)

// Normalize maps unrecognized container tags to mp4.
func (c VideoContainer) Normalize() VideoContainer {
	switch c {
	case ContainerMP4, ContainerMKV, ContainerWebM:
		return c
	default:
		return ContainerMP4
	}
}

// AudioFormat is the codec name passed to yt-dlp audio extraction
type AudioFormat string

const (
	AudioMP3  AudioFormat = "mp3"
	AudioM4A  AudioFormat = "m4a"
	AudioAAC  AudioFormat = "aac"
	AudioFLAC AudioFormat = "flac"
	AudioWAV  AudioFormat = "wav"
)

// Normalize maps unrecognized audio format tags to mp3.
func (f AudioFormat) Normalize() AudioFormat {
	switch f {
	case AudioMP3, AudioM4A, AudioAAC, AudioFLAC, AudioWAV:
		return f
	default:
		return AudioMP3
	}
}

// DownloadMode is a tagged variant: video (quality + container) or
// audio (format). Fields of the other variant are ignored.
type DownloadMode struct {
	Kind      ModeKind       `json:"kind"`
	Quality   VideoQuality   `json:"quality,omitempty"`
	Container VideoContainer `json:"container,omitempty"`
	Format    AudioFormat    `json:"format,omitempty"`
}

// VideoMode builds a video-variant download mode
func VideoMode(quality VideoQuality, container VideoContainer) DownloadMode {
	return DownloadMode{Kind: ModeVideo, Quality: quality, Container: container}
}

// AudioMode builds an audio-variant download mode
func AudioMode(format AudioFormat) DownloadMode {
	return DownloadMode{Kind: ModeAudio, Format: format}
}

// MediaRequest describes one download invocation. It is immutable once
// constructed and owned by the caller for the duration of the call.
type MediaRequest struct {
	URL           string       `json:"url"`
	OutputDir     string       `json:"output_dir"`
	Mode          DownloadMode `json:"mode"`
	EmbedSubs     bool         `json:"embed_subs"`
	PlaylistItems []int        `json:"playlist_items,omitempty"` // 1-based indices, nil = all
}
