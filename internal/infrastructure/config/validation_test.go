package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateConfig(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{name: "defaults are valid", mutate: func(*Config) {}},
		{
			name:    "relative home url",
			mutate:  func(c *Config) { c.Shell.HomeURL = "/home" },
			wantErr: "shell.home_url",
		},
		{
			name:    "tiny window",
			mutate:  func(c *Config) { c.Shell.WindowWidth = 10 },
			wantErr: "window_width",
		},
		{
			name:    "menu entry with both url and page",
			mutate:  func(c *Config) { c.Menu[0].URL = "/x" },
			wantErr: "exactly one of url or page",
		},
		{
			name:    "menu entry with neither",
			mutate:  func(c *Config) { c.Menu[0].Page = "" },
			wantErr: "exactly one of url or page",
		},
		{
			name:    "unknown page",
			mutate:  func(c *Config) { c.Menu[0].Page = "extras" },
			wantErr: "is not one of downloads",
		},
		{
			name:    "duplicate label",
			mutate:  func(c *Config) { c.Menu[1].Label = "downloads" },
			wantErr: "duplicated",
		},
		{
			name:    "poll interval too small",
			mutate:  func(c *Config) { c.Downloads.PollIntervalMs = 10 },
			wantErr: "poll_interval_ms",
		},
		{
			name:    "bad log level",
			mutate:  func(c *Config) { c.Logging.Level = "verbose" },
			wantErr: "logging.level",
		},
		{
			name:    "bad repository",
			mutate:  func(c *Config) { c.Update.Repository = "not a repo" },
			wantErr: "update.repository",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)

			err := validateConfig(cfg)
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			if assert.Error(t, err) {
				assert.Contains(t, err.Error(), tt.wantErr)
			}
		})
	}
}

func TestValidateConfig_CollectsAllProblems(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Logging.Format = "xml"
	cfg.Downloads.HeaderTimeoutSec = 0

	err := validateConfig(cfg)
	if assert.Error(t, err) {
		assert.Contains(t, err.Error(), "logging.format")
		assert.Contains(t, err.Error(), "header_timeout_sec")
	}
}
