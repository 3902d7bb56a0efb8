package download

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/Silica96/yt-dlp-tauri/internal/model"
)

func containsPair(args []string, flag, value string) bool {
	for i := 0; i < len(args)-1; i++ {
		if args[i] == flag && args[i+1] == value {
			return true
		}
	}
	return false
}

func containsFlag(args []string, flag string) bool {
	for _, arg := range args {
		if arg == flag {
			return true
		}
	}
	return false
}

func TestBuildDownloadArgsVideo(t *testing.T) {
	req := model.MediaRequest{
		URL:       "https://example.com/watch?v=abc",
		OutputDir: "/tmp/out",
		Mode:      model.VideoMode(model.Quality720p, model.ContainerMP4),
	}

	args := buildDownloadArgs(req, "")

	if !containsPair(args, FlagFormat, "bv*[height<=720]+ba/b") {
		t.Errorf("expected height-constrained format selector, got %v", args)
	}
	if !containsPair(args, FlagMergeOutputFormat, "mp4") {
		t.Errorf("expected mp4 merge format, got %v", args)
	}
	if containsFlag(args, FlagExtractAudio) {
		t.Errorf("video mode must not extract audio, got %v", args)
	}

	expectedTemplate := filepath.Join("/tmp/out", DefaultOutputTemplate)
	if !containsPair(args, FlagOutput, expectedTemplate) {
		t.Errorf("expected output template %q, got %v", expectedTemplate, args)
	}

	for _, flag := range []string{FlagProgress, FlagNewline, FlagForceProgress} {
		if !containsFlag(args, flag) {
			t.Errorf("expected streaming flag %q, got %v", flag, args)
		}
	}

	if args[len(args)-1] != req.URL {
		t.Errorf("url should be the final argument, got %v", args)
	}
}

func TestBuildDownloadArgsAudio(t *testing.T) {
	req := model.MediaRequest{
		URL:       "https://example.com/watch?v=abc",
		OutputDir: "/tmp/out",
		Mode:      model.AudioMode(model.AudioFLAC),
	}

	args := buildDownloadArgs(req, "")

	if !containsFlag(args, FlagExtractAudio) {
		t.Errorf("expected audio extraction flag, got %v", args)
	}
	if !containsPair(args, FlagAudioFormat, "flac") {
		t.Errorf("expected flac codec, got %v", args)
	}
	if containsFlag(args, FlagFormat) {
		t.Errorf("audio mode must not carry a video format selector, got %v", args)
	}
	if containsFlag(args, FlagMergeOutputFormat) {
		t.Errorf("audio mode must not carry a merge format, got %v", args)
	}
}

func TestBuildDownloadArgsOptions(t *testing.T) {
	tests := []struct {
		name      string
		req       model.MediaRequest
		muxerPath string
		wantPair  [2]string
		wantAbsent string
	}{
		{
			name: "embedded subtitles",
			req: model.MediaRequest{
				URL:       "https://example.com/v",
				OutputDir: "/tmp/out",
				Mode:      model.VideoMode(model.QualityBest, model.ContainerMKV),
				EmbedSubs: true,
			},
			wantPair: [2]string{FlagWriteSubs, FlagEmbedSubs},
		},
		{
			name: "playlist items are comma-joined",
			req: model.MediaRequest{
				URL:           "https://example.com/v",
				OutputDir:     "/tmp/out",
				Mode:          model.VideoMode(model.QualityBest, model.ContainerMP4),
				PlaylistItems: []int{1, 3, 7},
			},
			wantPair: [2]string{FlagPlaylistItems, "1,3,7"},
		},
		{
			name: "explicit muxer location",
			req: model.MediaRequest{
				URL:       "https://example.com/v",
				OutputDir: "/tmp/out",
				Mode:      model.VideoMode(model.QualityBest, model.ContainerMP4),
			},
			muxerPath: "/opt/bin/ffmpeg",
			wantPair:  [2]string{FlagFFmpegLocation, "/opt/bin/ffmpeg"},
		},
		{
			name: "no muxer location when not installed",
			req: model.MediaRequest{
				URL:       "https://example.com/v",
				OutputDir: "/tmp/out",
				Mode:      model.VideoMode(model.QualityBest, model.ContainerMP4),
			},
			wantAbsent: FlagFFmpegLocation,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			args := buildDownloadArgs(tt.req, tt.muxerPath)

			if tt.wantPair[0] != "" {
				if !containsPair(args, tt.wantPair[0], tt.wantPair[1]) {
					t.Errorf("expected %q %q in %v", tt.wantPair[0], tt.wantPair[1], args)
				}
			}
			if tt.wantAbsent != "" && containsFlag(args, tt.wantAbsent) {
				t.Errorf("did not expect %q in %v", tt.wantAbsent, args)
			}
		})
	}
}

func TestBuildDownloadArgsDeterministic(t *testing.T) {
	req := model.MediaRequest{
		URL:           "https://example.com/v",
		OutputDir:     "/tmp/out",
		Mode:          model.AudioMode(model.AudioMP3),
		EmbedSubs:     true,
		PlaylistItems: []int{2, 4},
	}

	first := strings.Join(buildDownloadArgs(req, "/opt/bin/ffmpeg"), " ")
	second := strings.Join(buildDownloadArgs(req, "/opt/bin/ffmpeg"), " ")
	if first != second {
		t.Errorf("argument vector should be deterministic:\n%s\n%s", first, second)
	}
}

func TestBuildInspectArgs(t *testing.T) {
	args := buildInspectArgs("https://example.com/v")

	for _, flag := range []string{FlagDumpJSON, FlagFlatPlaylist, FlagNoWarnings, FlagNoDownload} {
		if !containsFlag(args, flag) {
			t.Errorf("expected flag %q, got %v", flag, args)
		}
	}
	if args[len(args)-1] != "https://example.com/v" {
		t.Errorf("url should be the final argument, got %v", args)
	}
}
