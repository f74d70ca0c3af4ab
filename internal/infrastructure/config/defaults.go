package config

import (
	"github.com/chanomhub/desktop/internal/domain/entity"
)

const (
	DefaultHomeURL    = "https://chanomhub.xyz/"
	DefaultRepository = "chanomhub/desktop"
)

// DefaultMenu mirrors the menu the shell has always shipped with.
func DefaultMenu() []MenuEntry {
	return []MenuEntry{
		{Label: "Downloads", Page: entity.PageDownloads},
		{Label: "Profile", URL: "setting/"},
		{Label: "Home", URL: "/"},
		{Label: "All Game", Page: entity.PageLibrary},
		{Label: "Setting", Page: entity.PageSettings},
	}
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Shell: ShellConfig{
			HomeURL:      DefaultHomeURL,
			WindowTitle:  "Chanomhub",
			WindowWidth:  800,
			WindowHeight: 600,
		},
		Menu: DefaultMenu(),
		Downloads: DownloadsConfig{
			Path:                 DefaultDownloadDir(),
			PollIntervalMs:       250,
			HeaderTimeoutSec:     30,
			JournalRetentionDays: 90,
		},
		Logging: LoggingConfig{
			Level:      "info",
			Format:     "console",
			MaxSizeMB:  10,
			MaxBackups: 5,
			MaxAgeDays: 14,
		},
		Update: UpdateConfig{
			EnableOnStartup: true,
			AutoDownload:    true,
			Repository:      DefaultRepository,
		},
	}
}

// MenuItems converts menu entries into domain menu items.
func (c *Config) MenuItems() []entity.MenuItem {
	items := make([]entity.MenuItem, 0, len(c.Menu))
	for _, e := range c.Menu {
		item := entity.MenuItem{Label: e.Label, Kind: entity.PageKindURL, Target: e.URL}
		if e.Page != "" {
			item.Kind = entity.PageKindBuiltin
			item.Target = e.Page
		}
		items = append(items, item)
	}
	return items
}

func menuDefaultsAsMaps() []map[string]any {
	entries := DefaultMenu()
	out := make([]map[string]any, 0, len(entries))
	for _, e := range entries {
		m := map[string]any{"label": e.Label}
		if e.URL != "" {
			m["url"] = e.URL
		}
		if e.Page != "" {
			m["page"] = e.Page
		}
		out = append(out, m)
	}
	return out
}
