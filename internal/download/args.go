package download

import (
	"path/filepath"
	"strconv"
	"strings"

	"github.com/Silica96/yt-dlp-tauri/internal/model"
)

// yt-dlp flags
const (
	FlagProgress          = "--progress"
	FlagNewline           = "--newline"
	FlagForceProgress     = "--force-progress"
	FlagOutput            = "-o"
	FlagFormat            = "-f"
	FlagMergeOutputFormat = "--merge-output-format"
	FlagExtractAudio      = "-x"
	FlagAudioFormat       = "--audio-format"
	FlagWriteSubs         = "--write-subs"
	FlagEmbedSubs         = "--embed-subs"
	FlagPlaylistItems     = "--playlist-items"
	FlagFFmpegLocation    = "--ffmpeg-location"

	FlagDumpJSON     = "--dump-json"
	FlagFlatPlaylist = "--flat-playlist"
	FlagNoWarnings   = "--no-warnings"
	FlagNoDownload   = "--no-download"
)

// Output filename template
const (
	DefaultOutputTemplate = "%(title)s.%(ext)s"
)

// buildDownloadArgs builds the yt-dlp argument vector for one request.
// The vector is a deterministic function of the request; muxerPath is empty
// when ffmpeg is not managed locally.
func buildDownloadArgs(req model.MediaRequest, muxerPath string) []string {
	outputTemplate := filepath.Join(req.OutputDir, DefaultOutputTemplate)

	args := []string{
		FlagProgress,
		FlagNewline,
		FlagForceProgress,
		FlagOutput,
		outputTemplate,
	}

	switch req.Mode.Kind {
	case model.ModeAudio:
		args = append(args,
			FlagExtractAudio,
			FlagAudioFormat, string(req.Mode.Format.Normalize()),
		)
	default:
		args = append(args,
			FlagFormat, req.Mode.Quality.FormatSelector(),
			FlagMergeOutputFormat, string(req.Mode.Container.Normalize()),
		)
	}

	if req.EmbedSubs {
		args = append(args, FlagWriteSubs, FlagEmbedSubs)
	}

	if len(req.PlaylistItems) > 0 {
		items := make([]string, 0, len(req.PlaylistItems))
		for _, index := range req.PlaylistItems {
			items = append(items, strconv.Itoa(index))
		}
		args = append(args, FlagPlaylistItems, strings.Join(items, ","))
	}

	if muxerPath != "" {
		args = append(args, FlagFFmpegLocation, muxerPath)
	}

	args = append(args, req.URL)
	return args
}

// buildInspectArgs builds the metadata-only argument vector: JSON-lines
// output, flattened playlists, no media download.
func buildInspectArgs(url string) []string {
	return []string{
		FlagDumpJSON,
		FlagFlatPlaylist,
		FlagNoWarnings,
		FlagNoDownload,
		url,
	}
}
