package update

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/Silica96/yt-dlp-tauri/internal/model"
)

// Release feed defaults
const (
	DefaultFeedURL   = "https://api.github.com/repos/yt-dlp/yt-dlp/releases/latest"
	DefaultUserAgent = "yt-dlp-tauri"

	HeaderUserAgent = "User-Agent"
)

// HTTPDoer executes a single HTTP request. The default is a plain
// *http.Client; tests inject their own.
type HTTPDoer interface {
	Do(req *http.Request) (*http.Response, error)
}

// ReleaseClient queries the remote release feed for the latest published
// version of the downloader binary.
type ReleaseClient struct {
	client    HTTPDoer
	feedURL   string
	userAgent string
}

// NewReleaseClient creates a release client. Empty arguments fall back to
// the default HTTP client, feed endpoint and identifying header.
func NewReleaseClient(client HTTPDoer, feedURL, userAgent string) *ReleaseClient {
	if client == nil {
		client = http.DefaultClient
	}
	if feedURL == "" {
		feedURL = DefaultFeedURL
	}
	if userAgent == "" {
		userAgent = DefaultUserAgent
	}
	return &ReleaseClient{
		client:    client,
		feedURL:   feedURL,
		userAgent: userAgent,
	}
}

// LatestVersion fetches the latest release metadata. Transport failures
// surface as ErrRequest; responses missing expected fields as ErrParse.
func (c *ReleaseClient) LatestVersion(ctx context.Context) (model.VersionInfo, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.feedURL, nil)
	if err != nil {
		return model.VersionInfo{}, fmt.Errorf("%w: %v", ErrRequest, err)
	}
	req.Header.Set(HeaderUserAgent, c.userAgent)

	resp, err := c.client.Do(req)
	if err != nil {
		return model.VersionInfo{}, fmt.Errorf("%w: %v", ErrRequest, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return model.VersionInfo{}, fmt.Errorf("%w: unexpected status %d", ErrRequest, resp.StatusCode)
	}

	var release struct {
		TagName     *string `json:"tag_name"`
		PublishedAt *string `json:"published_at"`
		HTMLURL     *string `json:"html_url"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&release); err != nil {
		return model.VersionInfo{}, fmt.Errorf("%w: %v", ErrParse, err)
	}
	if release.TagName == nil || release.PublishedAt == nil || release.HTMLURL == nil {
		return model.VersionInfo{}, ErrParse
	}

	return model.VersionInfo{
		TagName:     *release.TagName,
		PublishedAt: *release.PublishedAt,
		HTMLURL:     *release.HTMLURL,
	}, nil
}
