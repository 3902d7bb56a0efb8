package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/Silica96/yt-dlp-tauri/internal/config"
	"github.com/Silica96/yt-dlp-tauri/internal/download"
	"github.com/Silica96/yt-dlp-tauri/internal/logger"
	"github.com/Silica96/yt-dlp-tauri/internal/model"
	"github.com/Silica96/yt-dlp-tauri/internal/platform"
	"github.com/Silica96/yt-dlp-tauri/internal/update"
)

// Version is set during build via -ldflags "-X main.version=X.Y.Z"
var version = "dev"

const usage = `yt-dlp-tauri engine v%s

Usage:
  yt-dlp-tauri [-config path] <command> [args]

Commands:
  status            show binary install state and update availability
  inspect <url>     resolve media metadata as JSON
  download <url>    download media using the configured defaults
  update            install the latest downloader binary
`

func main() {
	configPath := flag.String("config", "", "Path to configuration file")
	flag.Parse()

	if flag.NArg() < 1 {
		fmt.Fprintf(os.Stderr, usage, version)
		os.Exit(2)
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	log, err := logger.Init(cfg.Logging.Level, cfg.Logging.Format)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	locator := platform.NewLocator(cfg.BaseDir)
	orchestrator := download.NewOrchestrator(locator, log)
	coordinator := update.NewCoordinator(
		locator,
		update.NewReleaseClient(nil, cfg.Update.FeedURL, cfg.Update.UserAgent),
		update.NewArtifactInstaller(nil, cfg.Update.UserAgent, log),
		log,
	)

	command := flag.Arg(0)
	switch command {
	case "status":
		err = runStatus(ctx, locator, coordinator, cfg.DownloadDir)
	case "inspect":
		err = runInspect(ctx, orchestrator, flag.Arg(1))
	case "download":
		err = runDownload(ctx, orchestrator, cfg, flag.Arg(1))
	case "update":
		err = runUpdate(ctx, coordinator)
	default:
		fmt.Fprintf(os.Stderr, usage, version)
		os.Exit(2)
	}

	if err != nil {
		log.Error("command failed", zap.String("command", command), zap.Error(err))
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func runStatus(ctx context.Context, locator *platform.Locator, coordinator *update.Coordinator, downloadDir string) error {
	location, err := locator.Resolve()
	if err != nil {
		return err
	}

	status := coordinator.CheckStatus(ctx)

	fmt.Printf("yt-dlp installed:  %v (%s)\n", location.YtDlpInstalled, location.YtDlpPath)
	fmt.Printf("ffmpeg installed:  %v (%s)\n", location.FFmpegInstalled, location.FFmpegPath)
	fmt.Printf("current version:   %s\n", orUnknown(status.CurrentVersion))
	fmt.Printf("latest version:    %s\n", orUnknown(status.LatestVersion))
	fmt.Printf("update available:  %v\n", status.UpdateAvailable)
	fmt.Printf("download dir:      %s\n", downloadDir)
	return nil
}

func runInspect(ctx context.Context, orchestrator *download.Orchestrator, url string) error {
	if url == "" {
		return fmt.Errorf("inspect requires a url")
	}

	info, err := orchestrator.Inspect(ctx, url)
	if err != nil {
		return err
	}

	encoded, err := json.MarshalIndent(info, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(encoded))
	return nil
}

func runDownload(ctx context.Context, orchestrator *download.Orchestrator, cfg *config.Config, url string) error {
	if url == "" {
		return fmt.Errorf("download requires a url")
	}

	req := model.MediaRequest{
		URL:       url,
		OutputDir: cfg.DownloadDir,
		Mode:      cfg.Download.DownloadMode(),
		EmbedSubs: cfg.Download.EmbedSubs,
	}

	id := uuid.NewString()
	outputDir, err := orchestrator.Download(ctx, req, func(event model.ProgressEvent) {
		renderProgress(id, event)
	})
	if err != nil {
		return err
	}

	fmt.Printf("[%s] saved to %s\n", id, outputDir)
	return nil
}

func runUpdate(ctx context.Context, coordinator *update.Coordinator) error {
	path, err := coordinator.Install(ctx, func(event model.InstallProgress) {
		if event.Percentage != nil {
			fmt.Printf("\rdownloading... %6.2f%% (%d bytes)", *event.Percentage, event.Downloaded)
		} else {
			fmt.Printf("\rdownloading... %d bytes", event.Downloaded)
		}
	})
	fmt.Println()
	if err != nil {
		return err
	}

	fmt.Printf("installed %s\n", path)
	return nil
}

// renderProgress prints one progress event as a live log line
func renderProgress(id string, event model.ProgressEvent) {
	line := fmt.Sprintf("[%s] %s", id, event.Status)
	if event.Percentage != nil {
		line += fmt.Sprintf(" %.1f%%", *event.Percentage)
	}
	if event.Speed != "" {
		line += " " + event.Speed
	}
	if event.ETA != "" {
		line += " ETA " + event.ETA
	}
	if event.Filename != "" {
		line += " -> " + event.Filename
	}
	fmt.Println(line)
}

func orUnknown(value string) string {
	if value == "" {
		return "unknown"
	}
	return value
}
