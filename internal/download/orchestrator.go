package download

import (
	"bufio"
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strings"

	"go.uber.org/zap"

	"github.com/Silica96/yt-dlp-tauri/internal/model"
	"github.com/Silica96/yt-dlp-tauri/internal/platform"
	"github.com/Silica96/yt-dlp-tauri/internal/progress"
)

// Line buffer sizing for child stdout. yt-dlp can emit very long JSON lines
// in metadata mode.
const (
	maxLineBytes = 1024 * 1024
)

// Orchestrator drives the yt-dlp binary: metadata queries and media
// downloads with streamed progress. Each call owns an independent child
// process; concurrent calls do not interleave on the same callback.
type Orchestrator struct {
	locator *platform.Locator
	logger  *zap.Logger
}

// NewOrchestrator creates an orchestrator over the given binary locator
func NewOrchestrator(locator *platform.Locator, logger *zap.Logger) *Orchestrator {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Orchestrator{
		locator: locator,
		logger:  logger,
	}
}

// Inspect invokes yt-dlp in metadata-only mode and classifies the JSON-lines
// output into media info for a single item or a playlist.
func (o *Orchestrator) Inspect(ctx context.Context, url string) (*model.MediaInfo, error) {
	if !o.locator.IsInstalled(model.BinaryYtDlp) {
		return nil, ErrBinaryNotFound
	}

	cmd := exec.CommandContext(ctx, o.locator.YtDlpPath(), buildInspectArgs(url)...)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	o.logger.Debug("inspecting media", zap.String("url", url))

	if err := cmd.Run(); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrExecution, strings.TrimSpace(stderr.String()))
	}

	info, err := parseMediaInfo(stdout.String())
	if err != nil {
		return nil, err
	}

	o.logger.Debug("media inspected",
		zap.String("id", info.ID),
		zap.Bool("is_playlist", info.IsPlaylist),
		zap.Int("playlist_count", info.PlaylistCount),
	)
	return info, nil
}

// Download spawns yt-dlp for one request and forwards classified progress
// events to onProgress in stream order. On zero exit it emits a final
// completed event and returns the output directory; on nonzero exit it
// returns ErrDownloadFailed without any synthetic event, so callback
// cessation plus the error return is the failure signal. Cancelling the
// context kills the child process and ends the read loop.
func (o *Orchestrator) Download(ctx context.Context, req model.MediaRequest, onProgress model.ProgressFunc) (string, error) {
	if !o.locator.IsInstalled(model.BinaryYtDlp) {
		return "", ErrBinaryNotFound
	}

	if err := platform.CreateDirectoryIfNotExists(req.OutputDir); err != nil {
		return "", fmt.Errorf("failed to create output directory: %w", err)
	}

	muxerPath := ""
	if o.locator.IsInstalled(model.BinaryFFmpeg) {
		muxerPath = o.locator.FFmpegPath()
	}
	args := buildDownloadArgs(req, muxerPath)

	// Observers see activity before the child produces its first line.
	if onProgress != nil {
		onProgress(model.ProgressEvent{
			Status:     model.StatusStarting,
			Percentage: model.Float64(0),
		})
	}

	cmd := exec.CommandContext(ctx, o.locator.YtDlpPath(), args...)
	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrExecution, err)
	}

	o.logger.Info("starting download",
		zap.String("url", req.URL),
		zap.String("mode", string(req.Mode.Kind)),
		zap.String("output_dir", req.OutputDir),
	)

	if err := cmd.Start(); err != nil {
		return "", fmt.Errorf("%w: %v", ErrExecution, err)
	}

	scanner := bufio.NewScanner(stdout)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineBytes)
	for scanner.Scan() {
		event := progress.Classify(scanner.Text())
		if event != nil && onProgress != nil {
			onProgress(*event)
		}
	}

	if err := cmd.Wait(); err != nil {
		o.logger.Warn("download process failed",
			zap.String("url", req.URL),
			zap.Error(err),
		)
		detail := strings.TrimSpace(stderr.String())
		if detail == "" {
			detail = err.Error()
		}
		return "", fmt.Errorf("%w: %s", ErrDownloadFailed, detail)
	}

	if onProgress != nil {
		onProgress(model.ProgressEvent{
			Status:     model.StatusCompleted,
			Percentage: model.Float64(100),
		})
	}

	o.logger.Info("download completed", zap.String("url", req.URL))
	return req.OutputDir, nil
}
