package updater

import (
	"archive/tar"
	"bufio"
	"compress/gzip"
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"math/rand"
	"net/http"
	"net/url"
	"os"
	"path"
	"path/filepath"
	"strings"
	"time"

	"github.com/chanomhub/desktop/internal/logging"
)

const (
	downloadTimeout = 5 * time.Minute
	execPerm        = 0o755

	maxArchiveSize = 150 * 1024 * 1024
	maxBinarySize  = 100 * 1024 * 1024
	minBinarySize  = 1 * 1024 * 1024
)

// GitHubDownloader implements port.UpdateDownloader for release archives.
type GitHubDownloader struct {
	source Source
	fetch  *fetcher
}

// NewGitHubDownloader creates a downloader for source.
func NewGitHubDownloader(source Source) *GitHubDownloader {
	return &GitHubDownloader{
		source: source,
		fetch: &fetcher{
			client:    &http.Client{Timeout: downloadTimeout},
			userAgent: source.UserAgent,
			randInt63: rand.Int63n,
			sleep:     sleepContext,
		},
	}
}

// Download fetches the archive into destDir and verifies it against the
// release checksums file. Nothing is left behind on failure.
func (g *GitHubDownloader) Download(ctx context.Context, downloadURL, destDir string) (string, error) {
	log := logging.FromContext(ctx)

	if err := g.source.validateAssetURL(downloadURL); err != nil {
		return "", fmt.Errorf("invalid download URL: %w", err)
	}
	if err := os.MkdirAll(destDir, execPerm); err != nil {
		return "", fmt.Errorf("failed to create download directory: %w", err)
	}

	expected, err := g.expectedChecksum(ctx, downloadURL)
	if err != nil {
		return "", err
	}

	log.Debug().Str("url", downloadURL).Msg("downloading update")

	resp, err := g.fetch.get(ctx, downloadURL, nil)
	if err != nil {
		return "", fmt.Errorf("failed to download: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("download failed with status %d", resp.StatusCode)
	}
	if resp.ContentLength > maxArchiveSize {
		return "", fmt.Errorf("archive too large: %d bytes (max %d)", resp.ContentLength, maxArchiveSize)
	}

	archivePath := filepath.Join(destDir, binaryName+"_update.tar.gz")
	written, sum, err := writeHashed(archivePath, io.LimitReader(resp.Body, maxArchiveSize+1))
	if err != nil {
		_ = os.Remove(archivePath)
		return "", fmt.Errorf("failed to write archive: %w", err)
	}
	if written > maxArchiveSize {
		_ = os.Remove(archivePath)
		return "", fmt.Errorf("archive exceeds maximum size of %d bytes", maxArchiveSize)
	}
	if !strings.EqualFold(sum, expected) {
		_ = os.Remove(archivePath)
		return "", fmt.Errorf("checksum mismatch: expected %s, got %s", expected, sum)
	}

	log.Debug().Int64("bytes", written).Str("path", archivePath).Msg("update archive verified")
	return archivePath, nil
}

// writeHashed copies r into a new file at dst and returns the hex sha256.
func writeHashed(dst string, r io.Reader) (int64, string, error) {
	file, err := os.Create(dst)
	if err != nil {
		return 0, "", err
	}
	hash := sha256.New()
	written, err := io.Copy(io.MultiWriter(file, hash), r)
	if closeErr := file.Close(); closeErr != nil && err == nil {
		err = closeErr
	}
	if err != nil {
		return written, "", err
	}
	return written, hex.EncodeToString(hash.Sum(nil)), nil
}

func (g *GitHubDownloader) expectedChecksum(ctx context.Context, downloadURL string) (string, error) {
	parsed, err := url.Parse(downloadURL)
	if err != nil {
		return "", fmt.Errorf("failed to parse download URL: %w", err)
	}
	asset := path.Base(parsed.Path)

	// checksums.txt sits next to the archive.
	checksumsURL := strings.TrimSuffix(downloadURL, asset) + checksumsAsset

	resp, err := g.fetch.get(ctx, checksumsURL, nil)
	if err != nil {
		return "", fmt.Errorf("failed to fetch checksums: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("checksums fetch failed with status %d", resp.StatusCode)
	}

	sums, err := parseChecksums(resp.Body)
	if err != nil {
		return "", err
	}
	hash, ok := sums[asset]
	if !ok {
		return "", fmt.Errorf("no checksum found for %s", asset)
	}
	return hash, nil
}

// parseChecksums reads "sha256  filename" lines as written by sha256sum.
func parseChecksums(r io.Reader) (map[string]string, error) {
	sums := make(map[string]string)
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		fields := strings.Fields(scanner.Text())
		if len(fields) < 2 {
			continue
		}
		sums[strings.TrimPrefix(fields[len(fields)-1], "*")] = fields[0]
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to parse checksums: %w", err)
	}
	return sums, nil
}

// Extract pulls the chanomhub binary out of the archive into destDir.
func (*GitHubDownloader) Extract(ctx context.Context, archivePath, destDir string) (string, error) {
	file, err := os.Open(archivePath)
	if err != nil {
		return "", fmt.Errorf("failed to open archive: %w", err)
	}
	defer func() { _ = file.Close() }()

	gzr, err := gzip.NewReader(file)
	if err != nil {
		return "", fmt.Errorf("failed to create gzip reader: %w", err)
	}
	defer func() { _ = gzr.Close() }()

	tr := tar.NewReader(gzr)
	for {
		header, err := tr.Next()
		if errors.Is(err, io.EOF) {
			return "", fmt.Errorf("%s binary not found in archive", binaryName)
		}
		if err != nil {
			return "", fmt.Errorf("failed to read tar: %w", err)
		}
		if header.Typeflag != tar.TypeReg || path.Base(header.Name) != binaryName {
			continue
		}
		if err := checkTarPath(header.Name); err != nil {
			return "", fmt.Errorf("invalid tar entry: %w", err)
		}
		return extractBinary(ctx, tr, filepath.Join(destDir, binaryName))
	}
}

func extractBinary(ctx context.Context, r io.Reader, dst string) (string, error) {
	out, err := os.OpenFile(dst, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, execPerm)
	if err != nil {
		return "", fmt.Errorf("failed to create binary file: %w", err)
	}

	// CopyN bounds decompression bombs.
	written, err := io.CopyN(out, r, maxBinarySize)
	if closeErr := out.Close(); closeErr != nil && err == nil {
		err = closeErr
	}
	if err != nil && !errors.Is(err, io.EOF) {
		_ = os.Remove(dst)
		return "", fmt.Errorf("failed to extract binary: %w", err)
	}
	if written < minBinarySize {
		_ = os.Remove(dst)
		return "", fmt.Errorf("binary too small (%d bytes), expected at least %d bytes", written, minBinarySize)
	}

	logging.FromContext(ctx).Debug().Int64("bytes", written).Str("path", dst).Msg("extracted binary")
	return dst, nil
}

// checkTarPath rejects absolute entries and any ".." component.
func checkTarPath(name string) error {
	if path.IsAbs(name) || filepath.IsAbs(name) {
		return fmt.Errorf("absolute path not allowed: %s", name)
	}
	for _, part := range strings.Split(filepath.ToSlash(name), "/") {
		if part == ".." {
			return fmt.Errorf("path traversal detected: %s", name)
		}
	}
	return nil
}
