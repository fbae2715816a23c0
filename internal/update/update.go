// Package update checks GitHub for newer lineup releases.
package update

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/tuikit/lineup/internal/network"
	"github.com/tuikit/lineup/internal/version"
)

const (
	githubAPIURL = "https://api.github.com/repos/tuikit/lineup/releases/latest"
	userAgent    = "lineup-update-check"
)

// Release represents a GitHub release.
type Release struct {
	TagName string `json:"tag_name"`
	HTMLURL string `json:"html_url"`
}

// Info describes the outcome of an update check.
type Info struct {
	CurrentVersion string
	LatestVersion  string
	ReleaseURL     string
	Available      bool
}

// Check reports whether a newer release is available.
func Check(ctx context.Context) (*Info, error) {
	info := &Info{
		CurrentVersion: version.Version,
	}

	// Development builds never see updates.
	if strings.Contains(version.Version, "unknown") {
		return info, nil
	}

	release, err := fetchLatestRelease(ctx)
	if err != nil {
		return nil, fmt.Errorf("fetching latest release: %w", err)
	}

	info.LatestVersion = strings.TrimPrefix(release.TagName, "v")
	info.ReleaseURL = release.HTMLURL
	if compareVersions(info.CurrentVersion, info.LatestVersion) < 0 {
		info.Available = true
	}
	return info, nil
}

func fetchLatestRelease(ctx context.Context) (*Release, error) {
	client := &http.Client{
		Timeout: 30 * time.Second,
	}

	req, err := http.NewRequestWithContext(ctx, "GET", githubAPIURL, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Accept", "application/vnd.github.v3+json")

	resp, err := client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("GitHub API returned status %d: %s", resp.StatusCode, string(body))
	}

	var release Release
	if err := json.NewDecoder(resp.Body).Decode(&release); err != nil {
		return nil, err
	}
	return &release, nil
}

// compareVersions compares two semantic versions.
// Returns -1 if v1 < v2, 0 if v1 == v2, 1 if v1 > v2.
func compareVersions(v1, v2 string) int {
	v1 = strings.TrimPrefix(v1, "v")
	v2 = strings.TrimPrefix(v2, "v")

	parts1 := strings.Split(v1, ".")
	parts2 := strings.Split(v2, ".")

	for i := 0; i < len(parts1) && i < len(parts2); i++ {
		var n1, n2 int
		fmt.Sscanf(parts1[i], "%d", &n1)
		fmt.Sscanf(parts2[i], "%d", &n2)

		if n1 < n2 {
			return -1
		} else if n1 > n2 {
			return 1
		}
	}

	if len(parts1) < len(parts2) {
		return -1
	} else if len(parts1) > len(parts2) {
		return 1
	}
	return 0
}

// CheckAsync performs an update check in the background, honoring the
// last-check interval. If an update is available it is delivered on the
// returned channel; offline failures are quietly dropped.
func CheckAsync(ctx context.Context, dataDir string) <-chan *Info {
	ch := make(chan *Info, 1)

	go func() {
		defer close(ch)

		if !ShouldCheck(dataDir) {
			return
		}

		info, err := Check(ctx)
		if err != nil {
			if !network.IsOffline(err) {
				slog.Warn("Update check failed", "error", err)
			}
			return
		}

		if err := SaveLastCheck(dataDir, info); err != nil {
			slog.Warn("Failed to save update check info", "error", err)
		}

		if info.Available {
			ch <- info
		}
	}()

	return ch
}
