package config

import (
	"fmt"
	"net/url"
	"regexp"
	"strings"

	"github.com/chanomhub/desktop/internal/domain/entity"
)

var repositoryPattern = regexp.MustCompile(`^[A-Za-z0-9_.-]+/[A-Za-z0-9_.-]+$`)

// validateConfig collects every problem instead of stopping at the first.
func validateConfig(cfg *Config) error {
	var problems []string

	problems = append(problems, validateShell(cfg)...)
	problems = append(problems, validateMenu(cfg)...)
	problems = append(problems, validateDownloads(cfg)...)
	problems = append(problems, validateLogging(cfg)...)
	problems = append(problems, validateUpdate(cfg)...)

	if len(problems) > 0 {
		return fmt.Errorf("config validation failed:\n  - %s", strings.Join(problems, "\n  - "))
	}
	return nil
}

func validateShell(cfg *Config) []string {
	var problems []string
	u, err := url.Parse(cfg.Shell.HomeURL)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		problems = append(problems, fmt.Sprintf("shell.home_url must be an absolute http(s) URL, got %q", cfg.Shell.HomeURL))
	}
	if cfg.Shell.WindowWidth < 200 || cfg.Shell.WindowHeight < 200 {
		problems = append(problems, "shell.window_width and shell.window_height must be at least 200")
	}
	return problems
}

func validateMenu(cfg *Config) []string {
	var problems []string
	seen := make(map[string]bool, len(cfg.Menu))
	for i, e := range cfg.Menu {
		switch {
		case e.Label == "":
			problems = append(problems, fmt.Sprintf("menu[%d].label must not be empty", i))
		case seen[strings.ToLower(e.Label)]:
			problems = append(problems, fmt.Sprintf("menu[%d].label %q is duplicated", i, e.Label))
		}
		seen[strings.ToLower(e.Label)] = true

		if (e.URL == "") == (e.Page == "") {
			problems = append(problems, fmt.Sprintf("menu[%d] must set exactly one of url or page", i))
			continue
		}
		if e.Page != "" && !isBuiltinPage(e.Page) {
			problems = append(problems, fmt.Sprintf("menu[%d].page %q is not one of downloads, library, settings", i, e.Page))
		}
		if e.URL != "" {
			if _, err := url.Parse(e.URL); err != nil {
				problems = append(problems, fmt.Sprintf("menu[%d].url: %v", i, err))
			}
		}
	}
	return problems
}

func isBuiltinPage(page string) bool {
	switch page {
	case entity.PageDownloads, entity.PageLibrary, entity.PageSettings:
		return true
	}
	return false
}

func validateDownloads(cfg *Config) []string {
	var problems []string
	if cfg.Downloads.PollIntervalMs < 50 {
		problems = append(problems, "downloads.poll_interval_ms must be at least 50")
	}
	if cfg.Downloads.HeaderTimeoutSec < 1 {
		problems = append(problems, "downloads.header_timeout_sec must be at least 1")
	}
	if cfg.Downloads.JournalRetentionDays < 0 {
		problems = append(problems, "downloads.journal_retention_days must be non-negative")
	}
	return problems
}

func validateLogging(cfg *Config) []string {
	var problems []string
	switch cfg.Logging.Level {
	case "trace", "debug", "info", "warn", "error":
	default:
		problems = append(problems, fmt.Sprintf("logging.level %q is not one of trace, debug, info, warn, error", cfg.Logging.Level))
	}
	switch cfg.Logging.Format {
	case "console", "json":
	default:
		problems = append(problems, fmt.Sprintf("logging.format %q must be console or json", cfg.Logging.Format))
	}
	if cfg.Logging.EnableFileLog && cfg.Logging.MaxSizeMB < 1 {
		problems = append(problems, "logging.max_size_mb must be at least 1 when file logging is enabled")
	}
	return problems
}

func validateUpdate(cfg *Config) []string {
	if !repositoryPattern.MatchString(cfg.Update.Repository) {
		return []string{fmt.Sprintf("update.repository %q must look like owner/name", cfg.Update.Repository)}
	}
	return nil
}
