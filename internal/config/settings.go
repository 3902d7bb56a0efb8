package config

import (
	"fmt"

	"github.com/spf13/viper"

	"github.com/Silica96/yt-dlp-tauri/internal/model"
	"github.com/Silica96/yt-dlp-tauri/internal/platform"
)

// Default values
const (
	DefaultMode        = "video"
	DefaultQuality     = "best"
	DefaultContainer   = "mp4"
	DefaultAudioFormat = "mp3"

	DefaultLogLevel  = "info"
	DefaultLogFormat = "console"
)

// Config represents the entire application configuration
type Config struct {
	BaseDir     string         `mapstructure:"base_dir"`
	DownloadDir string         `mapstructure:"download_dir"`
	Download    DownloadConfig `mapstructure:"download"`
	Update      UpdateConfig   `mapstructure:"update"`
	Logging     LoggingConfig  `mapstructure:"logging"`
}

// DownloadConfig contains default download options
type DownloadConfig struct {
	Mode        string `mapstructure:"mode"`
	Quality     string `mapstructure:"quality"`
	Container   string `mapstructure:"container"`
	AudioFormat string `mapstructure:"audio_format"`
	EmbedSubs   bool   `mapstructure:"embed_subs"`
}

// UpdateConfig contains release feed settings
type UpdateConfig struct {
	FeedURL   string `mapstructure:"feed_url"`
	UserAgent string `mapstructure:"user_agent"`
}

// LoggingConfig contains logging settings
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// DownloadMode translates the configured defaults into a download mode.
// Unknown tags silently fall back to the documented baselines.
func (dc DownloadConfig) DownloadMode() model.DownloadMode {
	if dc.Mode == "audio" {
		return model.AudioMode(model.AudioFormat(dc.AudioFormat).Normalize())
	}
	return model.VideoMode(
		model.VideoQuality(dc.Quality),
		model.VideoContainer(dc.Container).Normalize(),
	)
}

// Load loads configuration from the specified file path. An empty path
// yields the defaults; a missing file is an error.
func Load(configPath string) (*Config, error) {
	v := viper.New()

	v.SetDefault("base_dir", "")
	v.SetDefault("download_dir", "")
	v.SetDefault("download.mode", DefaultMode)
	v.SetDefault("download.quality", DefaultQuality)
	v.SetDefault("download.container", DefaultContainer)
	v.SetDefault("download.audio_format", DefaultAudioFormat)
	v.SetDefault("download.embed_subs", false)
	v.SetDefault("update.feed_url", "")
	v.SetDefault("update.user_agent", "")
	v.SetDefault("logging.level", DefaultLogLevel)
	v.SetDefault("logging.format", DefaultLogFormat)

	if configPath != "" {
		v.SetConfigFile(configPath)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if config.BaseDir == "" {
		baseDir, err := platform.DefaultBaseDir()
		if err != nil {
			return nil, err
		}
		config.BaseDir = baseDir
	}

	if config.DownloadDir == "" {
		downloadDir, err := platform.GetHomeDownloadsDir()
		if err != nil {
			return nil, err
		}
		config.DownloadDir = downloadDir
	}

	return &config, nil
}
