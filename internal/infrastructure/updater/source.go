// Package updater checks GitHub releases for new chanomhub builds,
// downloads and verifies them, and swaps the binary on exit.
package updater

import (
	"fmt"
	"net/url"
	"runtime"
	"strings"
)

const (
	defaultAPIBase      = "https://api.github.com"
	defaultDownloadBase = "https://github.com"
	binaryName          = "chanomhub"
	checksumsAsset      = "checksums.txt"
)

// Source locates releases of one GitHub repository.
type Source struct {
	// Repository is owner/name.
	Repository   string
	APIBase      string
	DownloadBase string
	UserAgent    string
}

// GitHubSource returns a Source for repository on github.com.
func GitHubSource(repository, version string) Source {
	return Source{
		Repository:   repository,
		APIBase:      defaultAPIBase,
		DownloadBase: defaultDownloadBase,
		UserAgent:    binaryName + "-desktop/" + version,
	}
}

func (s Source) latestReleaseURL() string {
	return strings.TrimRight(s.APIBase, "/") + "/repos/" + s.Repository + "/releases/latest"
}

// latestAssetURL uses the version-less /latest/download/ path so the URL is stable.
func (s Source) latestAssetURL(asset string) string {
	return strings.TrimRight(s.DownloadBase, "/") + "/" + s.Repository + "/releases/latest/download/" + asset
}

// archiveName is the release asset for this platform, e.g. chanomhub_linux_x86_64.tar.gz.
func archiveName() string {
	return fmt.Sprintf("%s_%s_%s.tar.gz", binaryName, runtime.GOOS, archName())
}

func archName() string {
	switch runtime.GOARCH {
	case "amd64":
		return "x86_64"
	case "386":
		return "i386"
	default:
		return runtime.GOARCH
	}
}

// validateAssetURL accepts only release assets of this Source's repository.
func (s Source) validateAssetURL(raw string) error {
	parsed, err := url.Parse(raw)
	if err != nil {
		return fmt.Errorf("invalid URL: %w", err)
	}
	base, err := url.Parse(s.DownloadBase)
	if err != nil {
		return fmt.Errorf("invalid download base: %w", err)
	}

	if parsed.Scheme != base.Scheme {
		return fmt.Errorf("URL must use %s, got %s", base.Scheme, parsed.Scheme)
	}
	if parsed.Host != base.Host {
		return fmt.Errorf("URL must be from %s, got %s", base.Host, parsed.Host)
	}
	prefix := "/" + s.Repository + "/releases/"
	if !strings.HasPrefix(parsed.Path, prefix) {
		return fmt.Errorf("URL must be a release asset of %s", s.Repository)
	}
	if strings.Contains(parsed.Path, "..") {
		return fmt.Errorf("URL path must not contain ..")
	}
	return nil
}
