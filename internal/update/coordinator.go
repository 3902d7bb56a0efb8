package update

import (
	"context"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/Silica96/yt-dlp-tauri/internal/model"
	"github.com/Silica96/yt-dlp-tauri/internal/platform"
)

// Coordinator combines the binary locator and the release feed into an
// update-available verdict, and delegates installation to the artifact
// installer.
type Coordinator struct {
	locator   *platform.Locator
	releases  *ReleaseClient
	installer *ArtifactInstaller
	logger    *zap.Logger

	// artifact resolves the platform download URL and filename; tests
	// override it.
	artifact func() (url, filename string)
}

// NewCoordinator creates an update coordinator
func NewCoordinator(locator *platform.Locator, releases *ReleaseClient, installer *ArtifactInstaller, logger *zap.Logger) *Coordinator {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Coordinator{
		locator:   locator,
		releases:  releases,
		installer: installer,
		logger:    logger,
		artifact:  ArtifactURL,
	}
}

// CheckStatus computes the install status. It never fails: a version probe
// or feed failure degrades the corresponding field to unknown.
func (c *Coordinator) CheckStatus(ctx context.Context) model.InstallStatus {
	installed := c.locator.IsInstalled(model.BinaryYtDlp)

	currentVersion := ""
	if installed {
		version, err := c.locator.Version(ctx, model.BinaryYtDlp)
		if err != nil {
			c.logger.Warn("version probe failed", zap.Error(err))
		} else {
			currentVersion = version
		}
	}

	latestVersion := ""
	latest, err := c.releases.LatestVersion(ctx)
	if err != nil {
		c.logger.Warn("release feed unavailable", zap.Error(err))
	} else {
		latestVersion = latest.TagName
	}

	updateAvailable := false
	switch {
	case currentVersion != "" && latestVersion != "":
		updateAvailable = currentVersion != latestVersion
	case currentVersion == "" && latestVersion != "":
		updateAvailable = true
	}

	return model.InstallStatus{
		Installed:       installed,
		CurrentVersion:  currentVersion,
		LatestVersion:   latestVersion,
		UpdateAvailable: updateAvailable,
	}
}

// Install downloads the platform artifact into the bin directory and
// re-resolves the locator so subsequent status checks observe the new state.
// It returns the installed binary path.
func (c *Coordinator) Install(ctx context.Context, onProgress model.InstallProgressFunc) (string, error) {
	if err := c.locator.EnsureBinDir(); err != nil {
		return "", err
	}

	url, filename := c.artifact()
	dest := filepath.Join(c.locator.BinDir(), filename)

	if err := c.installer.Install(ctx, url, dest, onProgress); err != nil {
		return "", err
	}

	if _, err := c.locator.Resolve(); err != nil {
		return "", err
	}

	c.logger.Info("downloader binary installed", zap.String("path", dest))
	return dest, nil
}
