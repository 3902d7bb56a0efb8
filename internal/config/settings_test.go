package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/Silica96/yt-dlp-tauri/internal/model"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if cfg.BaseDir == "" {
		t.Error("base dir should resolve to the application-private directory")
	}
	if cfg.DownloadDir == "" {
		t.Error("download dir should resolve to the user downloads directory")
	}
	if cfg.Download.Mode != DefaultMode {
		t.Errorf("expected default mode %q, got %q", DefaultMode, cfg.Download.Mode)
	}
	if cfg.Logging.Level != DefaultLogLevel {
		t.Errorf("expected default level %q, got %q", DefaultLogLevel, cfg.Logging.Level)
	}
}

func TestLoadFromFile(t *testing.T) {
	content := `base_dir: /custom/base
download_dir: /custom/downloads
download:
  mode: audio
  audio_format: flac
  embed_subs: true
logging:
  level: debug
  format: json
`
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if cfg.BaseDir != "/custom/base" {
		t.Errorf("expected base dir '/custom/base', got %q", cfg.BaseDir)
	}
	if cfg.DownloadDir != "/custom/downloads" {
		t.Errorf("expected download dir '/custom/downloads', got %q", cfg.DownloadDir)
	}
	if !cfg.Download.EmbedSubs {
		t.Error("expected embed_subs=true")
	}
	if cfg.Logging.Level != "debug" || cfg.Logging.Format != "json" {
		t.Errorf("unexpected logging config: %+v", cfg.Logging)
	}

	mode := cfg.Download.DownloadMode()
	if mode.Kind != model.ModeAudio || mode.Format != model.AudioFLAC {
		t.Errorf("expected flac audio mode, got %+v", mode)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Error("expected an error for a missing config file")
	}
}

func TestDownloadModeFallbacks(t *testing.T) {
	tests := []struct {
		name     string
		cfg      DownloadConfig
		expected model.DownloadMode
	}{
		{
			name:     "unknown mode defaults to video",
			cfg:      DownloadConfig{Mode: "hologram", Quality: "720p", Container: "mkv"},
			expected: model.VideoMode(model.Quality720p, model.ContainerMKV),
		},
		{
			name:     "unknown quality keeps tag for selector fallback",
			cfg:      DownloadConfig{Mode: "video", Quality: "4320p", Container: "mp4"},
			expected: model.VideoMode(model.VideoQuality("4320p"), model.ContainerMP4),
		},
		{
			name:     "unknown audio format defaults to mp3",
			cfg:      DownloadConfig{Mode: "audio", AudioFormat: "opus"},
			expected: model.AudioMode(model.AudioMP3),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.cfg.DownloadMode(); got != tt.expected {
				t.Errorf("expected %+v, got %+v", tt.expected, got)
			}
		})
	}
}
