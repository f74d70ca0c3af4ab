// Package config loads, validates and watches the chanomhub TOML configuration.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/spf13/viper"
)

const envPrefix = "CHANOMHUB"

// Manager handles configuration loading, watching, and reloading.
type Manager struct {
	config    *Config
	viper     *viper.Viper
	configDir string
	mu        sync.RWMutex
	callbacks []func(*Config)
	watching  bool
	// xdg is set when the manager owns the XDG layout and must create it.
	xdg bool
}

// NewManager creates a manager reading from the XDG config directory.
func NewManager() (*Manager, error) {
	configDir, err := GetConfigDir()
	if err != nil {
		return nil, fmt.Errorf("failed to determine config directory: %w\nCheck XDG_CONFIG_HOME environment variable or HOME directory", err)
	}
	m, err := NewManagerAt(configDir)
	if err != nil {
		return nil, err
	}
	m.xdg = true
	return m, nil
}

// NewManagerAt creates a manager reading configDir/config.toml.
func NewManagerAt(configDir string) (*Manager, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("toml")
	v.AddConfigPath(configDir)

	// CHANOMHUB_DOWNLOADS_PATH, CHANOMHUB_UPDATE_AUTO_DOWNLOAD, ...
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.BindEnv("logging.level", envPrefix+"_LOG_LEVEL"); err != nil {
		return nil, fmt.Errorf("failed to bind %s_LOG_LEVEL: %w", envPrefix, err)
	}
	if err := v.BindEnv("logging.format", envPrefix+"_LOG_FORMAT"); err != nil {
		return nil, fmt.Errorf("failed to bind %s_LOG_FORMAT: %w", envPrefix, err)
	}

	return &Manager{
		viper:     v,
		configDir: configDir,
	}, nil
}

// Load reads the config file, creating it with defaults on first run.
func (m *Manager) Load() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.xdg {
		if err := EnsureDirectories(); err != nil {
			return fmt.Errorf("failed to create XDG directories: %w", err)
		}
	}

	m.setDefaults()

	if err := m.readConfigFile(); err != nil {
		return err
	}
	return m.rebuild()
}

func (m *Manager) readConfigFile() error {
	err := m.viper.ReadInConfig()
	if err == nil {
		return nil
	}

	var notFound viper.ConfigFileNotFoundError
	if !errors.As(err, &notFound) {
		return fmt.Errorf("failed to read config file at %s: %w\nCheck the file format (must be valid TOML) and permissions", m.ConfigFile(), err)
	}

	if createErr := m.createDefaultConfig(); createErr != nil {
		return fmt.Errorf("failed to create default config at %s: %w", m.configDir, createErr)
	}
	if rereadErr := m.viper.ReadInConfig(); rereadErr != nil {
		return fmt.Errorf("failed to read newly created config file: %w", rereadErr)
	}
	return nil
}

// rebuild unmarshals, normalizes and validates; must hold mu for write.
func (m *Manager) rebuild() error {
	cfg := &Config{}
	if err := m.viper.Unmarshal(cfg); err != nil {
		return fmt.Errorf("failed to parse config file at %s: %w", m.ConfigFile(), err)
	}
	if err := ensureDatabasePath(cfg); err != nil {
		return err
	}
	normalizeConfig(cfg)

	if err := validateConfig(cfg); err != nil {
		return fmt.Errorf("configuration validation failed: %w", err)
	}

	m.config = cfg
	return nil
}

func ensureDatabasePath(cfg *Config) error {
	if cfg.Database.Path != "" {
		return nil
	}
	dbPath, err := GetDatabaseFile()
	if err != nil {
		return fmt.Errorf("failed to get database path: %w", err)
	}
	cfg.Database.Path = dbPath
	return nil
}

func normalizeConfig(cfg *Config) {
	cfg.Shell.HomeURL = strings.TrimSpace(cfg.Shell.HomeURL)
	if cfg.Shell.HomeURL == "" {
		cfg.Shell.HomeURL = DefaultHomeURL
	}

	cfg.Logging.Level = strings.ToLower(strings.TrimSpace(cfg.Logging.Level))
	if cfg.Logging.Level == "" {
		cfg.Logging.Level = "info"
	}
	cfg.Logging.Format = strings.ToLower(strings.TrimSpace(cfg.Logging.Format))
	if cfg.Logging.Format == "" {
		cfg.Logging.Format = "console"
	}

	if cfg.Downloads.Path == "" {
		cfg.Downloads.Path = DefaultDownloadDir()
	}
	cfg.Downloads.Path = expandHome(cfg.Downloads.Path)
	cfg.Database.Path = expandHome(cfg.Database.Path)
	cfg.Logging.LogDir = expandHome(cfg.Logging.LogDir)

	if len(cfg.Menu) == 0 {
		cfg.Menu = DefaultMenu()
	}
	for i := range cfg.Menu {
		cfg.Menu[i].Label = strings.TrimSpace(cfg.Menu[i].Label)
		cfg.Menu[i].Page = strings.ToLower(strings.TrimSpace(cfg.Menu[i].Page))
	}
}

func expandHome(path string) string {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~"))
}

// Get returns a copy of the current configuration.
func (m *Manager) Get() *Config {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.config == nil {
		return DefaultConfig()
	}
	cfgCopy := *m.config
	cfgCopy.Menu = append([]MenuEntry(nil), m.config.Menu...)
	return &cfgCopy
}

// ConfigFile returns the path of the configuration file.
func (m *Manager) ConfigFile() string {
	if used := m.viper.ConfigFileUsed(); used != "" {
		return used
	}
	return filepath.Join(m.configDir, "config.toml")
}

func (m *Manager) createDefaultConfig() error {
	if err := os.MkdirAll(m.configDir, dirPerm); err != nil {
		return err
	}

	configFile := filepath.Join(m.configDir, "config.toml")
	if err := m.viper.SafeWriteConfigAs(configFile); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

// setDefaults sets default configuration values in Viper.
func (m *Manager) setDefaults() {
	defaults := DefaultConfig()

	m.viper.SetDefault("shell.home_url", defaults.Shell.HomeURL)
	m.viper.SetDefault("shell.window_title", defaults.Shell.WindowTitle)
	m.viper.SetDefault("shell.window_width", defaults.Shell.WindowWidth)
	m.viper.SetDefault("shell.window_height", defaults.Shell.WindowHeight)
	m.viper.SetDefault("shell.user_agent", defaults.Shell.UserAgent)
	m.viper.SetDefault("shell.enable_devtools", defaults.Shell.EnableDevTools)

	m.viper.SetDefault("menu", menuDefaultsAsMaps())

	m.viper.SetDefault("downloads.path", defaults.Downloads.Path)
	m.viper.SetDefault("downloads.poll_interval_ms", defaults.Downloads.PollIntervalMs)
	m.viper.SetDefault("downloads.header_timeout_sec", defaults.Downloads.HeaderTimeoutSec)
	m.viper.SetDefault("downloads.journal_retention_days", defaults.Downloads.JournalRetentionDays)

	m.viper.SetDefault("logging.level", defaults.Logging.Level)
	m.viper.SetDefault("logging.format", defaults.Logging.Format)
	m.viper.SetDefault("logging.enable_file_log", defaults.Logging.EnableFileLog)
	m.viper.SetDefault("logging.log_dir", defaults.Logging.LogDir)
	m.viper.SetDefault("logging.max_size_mb", defaults.Logging.MaxSizeMB)
	m.viper.SetDefault("logging.max_backups", defaults.Logging.MaxBackups)
	m.viper.SetDefault("logging.max_age_days", defaults.Logging.MaxAgeDays)

	m.viper.SetDefault("update.enable_on_startup", defaults.Update.EnableOnStartup)
	m.viper.SetDefault("update.auto_download", defaults.Update.AutoDownload)
	m.viper.SetDefault("update.repository", defaults.Update.Repository)

	m.viper.SetDefault("database.path", defaults.Database.Path)
}
