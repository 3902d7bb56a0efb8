package update

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"runtime"

	"go.uber.org/zap"

	"github.com/Silica96/yt-dlp-tauri/internal/model"
)

// Artifact streaming
const (
	TempSuffix = ".tmp"

	streamChunkSize = 32 * 1024

	ExecutablePermissions = 0o755
)

// ArtifactInstaller streams a binary artifact to a temporary sibling of the
// destination and atomically promotes it, so a concurrent reader of the
// destination sees either the fully-old or fully-new file, never a mix.
type ArtifactInstaller struct {
	client    HTTPDoer
	userAgent string
	logger    *zap.Logger
}

// NewArtifactInstaller creates an installer. A nil client falls back to the
// default HTTP client.
func NewArtifactInstaller(client HTTPDoer, userAgent string, logger *zap.Logger) *ArtifactInstaller {
	if client == nil {
		client = http.DefaultClient
	}
	if userAgent == "" {
		userAgent = DefaultUserAgent
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ArtifactInstaller{
		client:    client,
		userAgent: userAgent,
		logger:    logger,
	}
}

// Install downloads url into dest. Progress is reported after each streamed
// chunk; the percentage is omitted when the server declared no content
// length. On any error the temporary file is left in place for diagnostics.
func (i *ArtifactInstaller) Install(ctx context.Context, url, dest string, onProgress model.InstallProgressFunc) error {
	tempPath := dest + TempSuffix

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrRequest, err)
	}
	req.Header.Set(HeaderUserAgent, i.userAgent)

	resp, err := i.client.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrRequest, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("%w: unexpected status %d", ErrRequest, resp.StatusCode)
	}

	var total *int64
	if resp.ContentLength >= 0 {
		length := resp.ContentLength
		total = &length
	}

	i.logger.Info("downloading artifact",
		zap.String("url", url),
		zap.String("dest", dest),
		zap.Int64("content_length", resp.ContentLength),
	)

	file, err := os.Create(tempPath)
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}

	var downloaded int64
	buf := make([]byte, streamChunkSize)
	for {
		n, readErr := resp.Body.Read(buf)
		if n > 0 {
			if _, writeErr := file.Write(buf[:n]); writeErr != nil {
				file.Close()
				return fmt.Errorf("failed to write artifact: %w", writeErr)
			}
			downloaded += int64(n)

			if onProgress != nil {
				event := model.InstallProgress{
					Downloaded: downloaded,
					Total:      total,
				}
				if total != nil && *total > 0 {
					event.Percentage = model.Float64(float64(downloaded) / float64(*total) * 100)
				}
				onProgress(event)
			}
		}
		if readErr != nil {
			if errors.Is(readErr, io.EOF) {
				break
			}
			file.Close()
			return fmt.Errorf("%w: %v", ErrRequest, readErr)
		}
	}

	if err := file.Close(); err != nil {
		return fmt.Errorf("failed to close temp file: %w", err)
	}

	// Promotion is atomic; only a fully-written temp file ever reaches dest.
	if err := os.Rename(tempPath, dest); err != nil {
		return fmt.Errorf("failed to promote artifact: %w", err)
	}

	if runtime.GOOS != "windows" {
		if err := os.Chmod(dest, ExecutablePermissions); err != nil {
			return fmt.Errorf("failed to mark artifact executable: %w", err)
		}
	}

	i.logger.Info("artifact installed",
		zap.String("dest", dest),
		zap.Int64("bytes", downloaded),
	)
	return nil
}
