package updater

import (
	"context"
	"encoding/json"
	"fmt"
	"math/rand"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/chanomhub/desktop/internal/application/port"
	"github.com/chanomhub/desktop/internal/domain/entity"
	"github.com/chanomhub/desktop/internal/logging"
)

const apiTimeout = 10 * time.Second

type githubRelease struct {
	TagName     string    `json:"tag_name"`
	HTMLURL     string    `json:"html_url"`
	PublishedAt time.Time `json:"published_at"`
	Draft       bool      `json:"draft"`
	Prerelease  bool      `json:"prerelease"`
}

// GitHubChecker implements port.UpdateChecker against the releases API.
type GitHubChecker struct {
	source Source
	fetch  *fetcher
}

// NewGitHubChecker creates a checker for source.
func NewGitHubChecker(source Source) *GitHubChecker {
	return &GitHubChecker{
		source: source,
		fetch: &fetcher{
			client:    &http.Client{Timeout: apiTimeout},
			userAgent: source.UserAgent,
			randInt63: rand.Int63n,
			sleep:     sleepContext,
		},
	}
}

// CheckForUpdate compares currentVersion with the latest published release.
func (g *GitHubChecker) CheckForUpdate(ctx context.Context, currentVersion string) (*entity.UpdateInfo, error) {
	log := logging.FromContext(ctx)

	if currentVersion == "" || currentVersion == "dev" {
		log.Debug().Str("version", currentVersion).Msg("skipping update check for dev build")
		return &entity.UpdateInfo{CurrentVersion: currentVersion, LatestVersion: currentVersion}, nil
	}

	resp, err := g.fetch.get(ctx, g.source.latestReleaseURL(), map[string]string{
		"Accept": "application/vnd.github+json",
	})
	if err != nil {
		if isRetryableRequestError(err) {
			return nil, fmt.Errorf("%w: %w", port.ErrUpdateCheckTransient, err)
		}
		return nil, fmt.Errorf("failed to fetch latest release: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		if isRetryableStatus(resp.StatusCode) {
			return nil, fmt.Errorf("%w: github API returned status %d", port.ErrUpdateCheckTransient, resp.StatusCode)
		}
		return nil, fmt.Errorf("github API returned status %d", resp.StatusCode)
	}

	var release githubRelease
	if err := json.NewDecoder(resp.Body).Decode(&release); err != nil {
		return nil, fmt.Errorf("failed to decode release: %w", err)
	}

	latest := strings.TrimPrefix(release.TagName, "v")
	isNewer := !release.Draft && !release.Prerelease &&
		compareVersions(strings.TrimPrefix(currentVersion, "v"), latest) < 0

	log.Debug().
		Str("current", currentVersion).
		Str("latest", latest).
		Bool("is_newer", isNewer).
		Msg("update check completed")

	return &entity.UpdateInfo{
		CurrentVersion: currentVersion,
		LatestVersion:  latest,
		IsNewer:        isNewer,
		ReleaseURL:     release.HTMLURL,
		DownloadURL:    g.source.latestAssetURL(archiveName()),
		PublishedAt:    release.PublishedAt,
	}, nil
}

// compareVersions orders major.minor.patch, ignoring any pre-release suffix.
func compareVersions(a, b string) int {
	pa, pb := versionParts(a), versionParts(b)
	for i := range pa {
		switch {
		case pa[i] < pb[i]:
			return -1
		case pa[i] > pb[i]:
			return 1
		}
	}
	return 0
}

func versionParts(v string) [3]int {
	if i := strings.IndexAny(v, "-+"); i >= 0 {
		v = v[:i]
	}
	var out [3]int
	for i, p := range strings.SplitN(v, ".", 3) {
		out[i], _ = strconv.Atoi(p)
	}
	return out
}
