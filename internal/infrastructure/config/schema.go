package config

// Config represents the complete configuration for chanomhub.
type Config struct {
	// Shell controls the main window and the site it wraps.
	Shell ShellConfig `mapstructure:"shell" toml:"shell" json:"shell"`
	// Menu lists the application menu entries in display order.
	Menu      []MenuEntry     `mapstructure:"menu" toml:"menu" json:"menu"`
	Downloads DownloadsConfig `mapstructure:"downloads" toml:"downloads" json:"downloads"`
	Logging   LoggingConfig   `mapstructure:"logging" toml:"logging" json:"logging"`
	// Update controls automatic update checking and downloading.
	Update   UpdateConfig   `mapstructure:"update" toml:"update" json:"update"`
	Database DatabaseConfig `mapstructure:"database" toml:"database" json:"database"`
}

// ShellConfig describes the window.
type ShellConfig struct {
	HomeURL      string `mapstructure:"home_url" toml:"home_url" json:"home_url" jsonschema:"format=uri"`
	WindowTitle  string `mapstructure:"window_title" toml:"window_title" json:"window_title"`
	WindowWidth  int    `mapstructure:"window_width" toml:"window_width" json:"window_width" jsonschema:"minimum=200"`
	WindowHeight int    `mapstructure:"window_height" toml:"window_height" json:"window_height" jsonschema:"minimum=200"`
	// UserAgent overrides the webview and transfer user agent when set.
	UserAgent      string `mapstructure:"user_agent" toml:"user_agent" json:"user_agent,omitempty"`
	EnableDevTools bool   `mapstructure:"enable_devtools" toml:"enable_devtools" json:"enable_devtools"`
}

// MenuEntry is one menu item. Exactly one of URL and Page is set.
type MenuEntry struct {
	Label string `mapstructure:"label" toml:"label" json:"label"`
	// URL may be relative to shell.home_url.
	URL string `mapstructure:"url" toml:"url,omitempty" json:"url,omitempty"`
	// Page names a built-in page: downloads, library or settings.
	Page string `mapstructure:"page" toml:"page,omitempty" json:"page,omitempty" jsonschema:"enum=downloads,enum=library,enum=settings"`
}

// DownloadsConfig controls the download manager.
type DownloadsConfig struct {
	// Path is the initial download directory. It can be changed at runtime.
	Path string `mapstructure:"path" toml:"path" json:"path"`
	// PollIntervalMs is how often transfer progress is sampled.
	PollIntervalMs int `mapstructure:"poll_interval_ms" toml:"poll_interval_ms" json:"poll_interval_ms" jsonschema:"minimum=50"`
	// HeaderTimeoutSec bounds the wait for a server to answer.
	HeaderTimeoutSec int `mapstructure:"header_timeout_sec" toml:"header_timeout_sec" json:"header_timeout_sec" jsonschema:"minimum=1"`
	// JournalRetentionDays prunes older journal rows at startup; 0 keeps everything.
	JournalRetentionDays int `mapstructure:"journal_retention_days" toml:"journal_retention_days" json:"journal_retention_days" jsonschema:"minimum=0"`
}

// LoggingConfig controls log output.
type LoggingConfig struct {
	Level         string `mapstructure:"level" toml:"level" json:"level" jsonschema:"enum=trace,enum=debug,enum=info,enum=warn,enum=error"`
	Format        string `mapstructure:"format" toml:"format" json:"format" jsonschema:"enum=console,enum=json"`
	EnableFileLog bool   `mapstructure:"enable_file_log" toml:"enable_file_log" json:"enable_file_log"`
	LogDir        string `mapstructure:"log_dir" toml:"log_dir" json:"log_dir,omitempty"`
	MaxSizeMB     int    `mapstructure:"max_size_mb" toml:"max_size_mb" json:"max_size_mb" jsonschema:"minimum=1"`
	MaxBackups    int    `mapstructure:"max_backups" toml:"max_backups" json:"max_backups" jsonschema:"minimum=0"`
	MaxAgeDays    int    `mapstructure:"max_age_days" toml:"max_age_days" json:"max_age_days" jsonschema:"minimum=0"`
}

// UpdateConfig controls self-update.
type UpdateConfig struct {
	EnableOnStartup bool `mapstructure:"enable_on_startup" toml:"enable_on_startup" json:"enable_on_startup"`
	// AutoDownload downloads and stages a newer release without asking.
	AutoDownload bool `mapstructure:"auto_download" toml:"auto_download" json:"auto_download"`
	// Repository is the GitHub owner/name releases are read from.
	Repository string `mapstructure:"repository" toml:"repository" json:"repository" jsonschema:"pattern=^[A-Za-z0-9_.-]+/[A-Za-z0-9_.-]+$"`
}

// DatabaseConfig locates the download journal.
type DatabaseConfig struct {
	// Path defaults to $XDG_DATA_HOME/chanomhub/chanomhub.sqlite.
	Path string `mapstructure:"path" toml:"path" json:"path,omitempty"`
}
