// Package download holds pure download rules: file naming and progress math.
package download

import (
	"net/url"
	"path"
	"path/filepath"
	"strings"
)

// DefaultFilename is used when no valid filename can be determined.
const DefaultFilename = "download"

// SanitizeFilename reduces a suggested name to a bare base name so that
// joining it with the download directory can never escape that directory.
func SanitizeFilename(name string) string {
	// filepath.Base only splits on the native separator.
	name = strings.ReplaceAll(name, "\\", "/")
	clean := strings.TrimSpace(filepath.Base(name))

	if clean == "." || clean == ".." || clean == "" || clean == "/" {
		return DefaultFilename
	}
	return clean
}

// FilenameFromURL derives a file name from the last path segment of a URL.
func FilenameFromURL(raw string) string {
	parsed, err := url.Parse(raw)
	if err != nil || parsed.Path == "" {
		return DefaultFilename
	}
	base := path.Base(parsed.Path)
	if unescaped, err := url.PathUnescape(base); err == nil {
		base = unescaped
	}
	return SanitizeFilename(base)
}

// SavePath joins the download directory with the sanitized suggested name.
func SavePath(dir, suggestedName string) string {
	return filepath.Join(dir, SanitizeFilename(suggestedName))
}
