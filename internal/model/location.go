package model

// BinaryKind identifies one of the two managed binaries
type BinaryKind string

const (
	BinaryYtDlp  BinaryKind = "yt-dlp"
	BinaryFFmpeg BinaryKind = "ffmpeg"
)

// BinaryLocation holds the resolved paths of the managed binaries. Paths are
// a deterministic function of the base directory and OS; the installed flags
// reflect filesystem state at resolve time and go stale as soon as an
// install happens out-of-band.
type BinaryLocation struct {
	BinDir          string `json:"bin_dir"`
	YtDlpPath       string `json:"ytdlp_path"`
	FFmpegPath      string `json:"ffmpeg_path"`
	YtDlpInstalled  bool   `json:"ytdlp_installed"`
	FFmpegInstalled bool   `json:"ffmpeg_installed"`
}
