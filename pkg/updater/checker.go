package updater

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/kpauljoseph/pdfworkflow/pkg/logger"
	"github.com/kpauljoseph/pdfworkflow/pkg/version"
)

const (
	DefaultReleaseURL = "https://api.github.com/repos/kpauljoseph/pdfworkflow/releases/latest"
	userAgent         = "pdfworkflow-updater"
)

type Checker struct {
	client     *http.Client
	logger     *logger.Logger
	releaseURL string
	current    string
}

type Option func(*Checker)

// WithReleaseURL points the checker at a different "latest release" endpoint.
func WithReleaseURL(url string) Option {
	return func(c *Checker) {
		c.releaseURL = url
	}
}

func WithCurrentVersion(v string) Option {
	return func(c *Checker) {
		c.current = v
	}
}

func NewChecker(logger *logger.Logger, opts ...Option) *Checker {
	c := &Checker{
		client: &http.Client{
			Timeout: 10 * time.Second,
		},
		logger:     logger,
		releaseURL: DefaultReleaseURL,
		current:    version.Version,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Checker) CheckForUpdates(ctx context.Context) (*UpdateInfo, error) {
	c.logger.Debug("Checking for updates at %s", c.releaseURL)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.releaseURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Accept", "application/vnd.github+json")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch latest release: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("release API returned status %d", resp.StatusCode)
	}

	var release Release
	if err := json.NewDecoder(resp.Body).Decode(&release); err != nil {
		return nil, fmt.Errorf("failed to decode release: %w", err)
	}
	if release.TagName == "" {
		return nil, fmt.Errorf("release has no tag")
	}

	currentVersion := strings.TrimPrefix(c.current, "v")
	latestVersion := strings.TrimPrefix(release.TagName, "v")
	c.logger.Debug("Current version %s, latest release %s", currentVersion, latestVersion)

	return &UpdateInfo{
		CurrentVersion: currentVersion,
		LatestVersion:  latestVersion,
		ReleaseNotes:   release.Body,
		ReleaseURL:     release.HTMLURL,
		IsAvailable:    CompareVersions(currentVersion, latestVersion) < 0,
	}, nil
}

// CompareVersions returns:
//
//	-1 if v1 < v2
//	 0 if v1 == v2
//	 1 if v1 > v2
//
// Components are compared as integers when both parse, otherwise as strings.
// A missing component counts as zero, so "1.2" equals "1.2.0".
func CompareVersions(v1, v2 string) int {
	parts1 := strings.Split(v1, ".")
	parts2 := strings.Split(v2, ".")

	n := len(parts1)
	if len(parts2) > n {
		n = len(parts2)
	}

	for i := 0; i < n; i++ {
		p1, p2 := "0", "0"
		if i < len(parts1) {
			p1 = parts1[i]
		}
		if i < len(parts2) {
			p2 = parts2[i]
		}

		n1, err1 := strconv.Atoi(p1)
		n2, err2 := strconv.Atoi(p2)
		if err1 == nil && err2 == nil {
			if n1 != n2 {
				if n1 < n2 {
					return -1
				}
				return 1
			}
			continue
		}

		if c := strings.Compare(p1, p2); c != 0 {
			return c
		}
	}
	return 0
}
