// Package bootstrap builds the application graph shared by the window and
// the headless commands.
package bootstrap

import (
	"context"
	"database/sql"
	"fmt"
	"sync"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/chanomhub/desktop/internal/app/messaging"
	"github.com/chanomhub/desktop/internal/application/port"
	"github.com/chanomhub/desktop/internal/application/usecase"
	"github.com/chanomhub/desktop/internal/domain/build"
	"github.com/chanomhub/desktop/internal/domain/entity"
	"github.com/chanomhub/desktop/internal/domain/repository"
	"github.com/chanomhub/desktop/internal/infrastructure/config"
	"github.com/chanomhub/desktop/internal/infrastructure/desktop"
	"github.com/chanomhub/desktop/internal/infrastructure/filesystem"
	"github.com/chanomhub/desktop/internal/infrastructure/persistence/sqlite"
	"github.com/chanomhub/desktop/internal/infrastructure/transfer"
	"github.com/chanomhub/desktop/internal/infrastructure/updater"
	"github.com/chanomhub/desktop/internal/logging"
)

// Options controls how the graph is built.
type Options struct {
	Build build.Info
	// Config is an already loaded manager; a default one is loaded when nil.
	Config *config.Manager
	// WatchConfig reloads config.toml on change.
	WatchConfig bool
	// SkipJournal runs without the SQLite journal.
	SkipJournal bool
	// LogLevel overrides the configured level when set.
	LogLevel string
	// WrapRegistrar lets a caller observe transfers alongside the tracker.
	WrapRegistrar func(port.TransferRegistrar) port.TransferRegistrar
}

// App owns every long-lived component. Build it once with New and release
// it with Close.
type App struct {
	Build   build.Info
	Config  *config.Manager
	Logger  zerolog.Logger
	Events  *messaging.Broadcaster
	Tracker *usecase.DownloadTracker
	Engine  *transfer.Engine
	Folders *usecase.BrowseFoldersUseCase
	Menu    *usecase.NavigateMenuUseCase
	Router  *messaging.Router
	// Journal is nil when the database could not be opened.
	Journal repository.DownloadJournal

	CheckUpdate *usecase.CheckUpdateUseCase
	ApplyUpdate *usecase.ApplyUpdateUseCase
	AutoUpdate  *usecase.AutoUpdateUseCase

	Lifecycle *Lifecycle
	Timer     *StartupTimer

	db      *sql.DB
	logFile *logging.LogRotator
	ctx     context.Context

	closeOnce sync.Once
}

// New loads configuration, sets up logging and wires all components.
// The returned context carries the process logger.
func New(ctx context.Context, opts Options) (*App, context.Context, error) {
	timer := NewStartupTimer()

	mgr := opts.Config
	if mgr == nil {
		var err error
		if mgr, err = config.NewManager(); err != nil {
			return nil, ctx, err
		}
		if err := mgr.Load(); err != nil {
			return nil, ctx, err
		}
	}
	cfg := mgr.Get()
	timer.Mark("config")

	app := &App{Build: opts.Build, Config: mgr, Timer: timer, Lifecycle: &Lifecycle{}}

	logger, err := app.buildLogger(cfg, opts.LogLevel)
	if err != nil {
		return nil, ctx, err
	}
	app.Logger = logger
	ctx = logging.WithContext(ctx, logger)
	app.ctx = ctx
	timer.Mark("logging")

	if !opts.SkipJournal {
		app.openJournal(ctx, cfg)
		timer.Mark("journal")
	}

	if err := app.wire(ctx, cfg, opts.WrapRegistrar); err != nil {
		app.Close(ctx)
		return nil, ctx, err
	}
	timer.Mark("wire")

	if opts.WatchConfig {
		mgr.OnConfigChange(app.applyConfig)
		mgr.Watch(logger)
	}

	logger.Info().
		Str("version", opts.Build.Version).
		Str("config", mgr.ConfigFile()).
		Str("download_path", app.Tracker.DownloadPath()).
		Msg("chanomhub initialised")
	return app, ctx, nil
}

func (a *App) buildLogger(cfg *config.Config, levelOverride string) (zerolog.Logger, error) {
	logCfg := logging.DefaultConfig()
	logCfg.Level = logging.ParseLevel(cfg.Logging.Level)
	if levelOverride != "" {
		logCfg.Level = logging.ParseLevel(levelOverride)
	}
	logCfg.Format = cfg.Logging.Format

	if cfg.Logging.EnableFileLog {
		dir := cfg.Logging.LogDir
		if dir == "" {
			var err error
			if dir, err = config.GetLogDir(); err != nil {
				return zerolog.Nop(), fmt.Errorf("resolve log directory: %w", err)
			}
		}
		rotator, err := logging.NewLogRotator(dir, "chanomhub.log",
			cfg.Logging.MaxSizeMB, cfg.Logging.MaxBackups, cfg.Logging.MaxAgeDays)
		if err != nil {
			return zerolog.Nop(), fmt.Errorf("open log file: %w", err)
		}
		a.logFile = rotator
		logCfg.File = rotator
	}
	return logging.New(logCfg), nil
}

// openJournal is best effort: the tracker runs without a journal.
func (a *App) openJournal(ctx context.Context, cfg *config.Config) {
	log := logging.FromContext(ctx)

	db, err := sqlite.NewConnection(ctx, cfg.Database.Path)
	if err != nil {
		log.Warn().Err(err).Str("path", cfg.Database.Path).Msg("download journal unavailable")
		return
	}
	a.db = db
	a.Journal = sqlite.NewDownloadJournalRepository(db)
}

func (a *App) wire(ctx context.Context, cfg *config.Config, wrap func(port.TransferRegistrar) port.TransferRegistrar) error {
	a.Events = messaging.NewBroadcaster()
	a.Tracker = usecase.NewDownloadTracker(cfg.Downloads.Path, a.Events, a.Journal)

	fs := filesystem.New()
	if err := fs.EnsureDir(ctx, cfg.Downloads.Path); err != nil {
		logging.FromContext(ctx).Warn().Err(err).Str("path", cfg.Downloads.Path).Msg("cannot create download directory")
	}
	a.Folders = usecase.NewBrowseFoldersUseCase(fs, desktop.New(), a.Tracker)

	var registrar port.TransferRegistrar = a.Tracker
	if wrap != nil {
		registrar = wrap(registrar)
	}
	engine, err := transfer.NewEngine(ctx, transfer.Config{
		UserAgent:     cfg.Shell.UserAgent,
		PollInterval:  time.Duration(cfg.Downloads.PollIntervalMs) * time.Millisecond,
		HeaderTimeout: time.Duration(cfg.Downloads.HeaderTimeoutSec) * time.Second,
	}, registrar)
	if err != nil {
		return fmt.Errorf("create transfer engine: %w", err)
	}
	a.Engine = engine

	menu, err := usecase.NewNavigateMenuUseCase(cfg.Shell.HomeURL, cfg.MenuItems())
	if err != nil {
		return fmt.Errorf("build menu: %w", err)
	}
	a.Menu = menu

	if err := a.wireUpdates(cfg); err != nil {
		return err
	}

	a.Router = messaging.NewRouter()
	deps := messaging.Deps{Downloads: a.Tracker, Folders: a.Folders}
	if a.ApplyUpdate != nil {
		deps.Installer = usecase.NewInstallUpdateUseCase(a.ApplyUpdate, a.Lifecycle)
	}
	return messaging.RegisterAll(a.Router, deps)
}

func (a *App) wireUpdates(cfg *config.Config) error {
	stateDir, err := config.GetStateDir()
	if err != nil {
		return fmt.Errorf("resolve state directory: %w", err)
	}
	cacheDir, err := config.GetCacheDir()
	if err != nil {
		return fmt.Errorf("resolve cache directory: %w", err)
	}

	source := updater.GitHubSource(cfg.Update.Repository, a.Build.Version)
	applier := updater.NewApplier(stateDir)

	a.CheckUpdate = usecase.NewCheckUpdateUseCase(updater.NewGitHubChecker(source), applier, a.Build)
	a.ApplyUpdate = usecase.NewApplyUpdateUseCase(updater.NewGitHubDownloader(source), applier, cacheDir)
	a.AutoUpdate = usecase.NewAutoUpdateUseCase(a.CheckUpdate, a.ApplyUpdate, a.Events, cfg.Update.AutoDownload)
	return nil
}

// applyConfig reacts to a reloaded config.toml. Only settings that can
// change at runtime are applied; the rest wait for a restart.
func (a *App) applyConfig(cfg *config.Config) {
	log := a.Logger.With().Str("component", "config").Logger()

	if cfg.Downloads.Path != a.Tracker.DownloadPath() {
		a.Tracker.SetDownloadPath(cfg.Downloads.Path)
		log.Info().Str("path", cfg.Downloads.Path).Msg("download path changed")
	}
	if level := logging.ParseLevel(cfg.Logging.Level); level != a.Logger.GetLevel() {
		log.Info().Str("level", level.String()).Msg("log level change applies after restart")
	}
}

// StartBackground runs startup housekeeping: journal pruning and, when
// enabled, the update check. It returns once all of it finished; failures
// are logged, never returned, so the window is not held up.
func (a *App) StartBackground(ctx context.Context) {
	cfg := a.Config.Get()
	g, gctx := errgroup.WithContext(ctx)

	if a.Journal != nil && cfg.Downloads.JournalRetentionDays > 0 {
		g.Go(func() error {
			start := time.Now()
			cutoff := time.Now().AddDate(0, 0, -cfg.Downloads.JournalRetentionDays)
			n, err := a.Journal.Prune(gctx, cutoff)
			if err != nil {
				logging.FromContext(gctx).Warn().Err(err).Msg("journal prune failed")
				return nil
			}
			a.Timer.MarkDuration("journal_prune", time.Since(start))
			logging.FromContext(gctx).Debug().Int64("removed", n).Msg("journal pruned")
			return nil
		})
	}

	if cfg.Update.EnableOnStartup && a.AutoUpdate != nil {
		g.Go(func() error {
			start := time.Now()
			status, err := a.AutoUpdate.Run(gctx)
			if err != nil {
				logging.FromContext(gctx).Warn().Err(err).Msg("update check failed")
				return nil
			}
			a.Timer.MarkDuration("update_check", time.Since(start))
			logging.FromContext(gctx).Info().Str("status", status.String()).Msg("update check finished")
			return nil
		})
	}

	_ = g.Wait()
	a.Timer.Log(ctx)
}

// Close stops transfers, applies a staged update and releases resources.
// Safe to call more than once.
func (a *App) Close(ctx context.Context) {
	a.closeOnce.Do(func() {
		log := logging.FromContext(ctx)

		if a.Engine != nil {
			a.Engine.Close()
		}
		if a.ApplyUpdate != nil {
			if err := a.ApplyUpdate.FinalizeOnExit(ctx); err != nil {
				log.Error().Err(err).Msg("failed to apply staged update")
			}
		}
		if a.Events != nil {
			a.Events.Close()
		}
		if a.db != nil {
			if err := sqlite.Close(a.db); err != nil {
				log.Warn().Err(err).Msg("close database")
			}
		}
		if a.logFile != nil {
			_ = a.logFile.Close()
		}
	})
}

// Context returns the context carrying the process logger.
func (a *App) Context() context.Context { return a.ctx }

// Lifecycle forwards Quit to whichever UI registered itself. Without one,
// Quit only logs.
type Lifecycle struct {
	mu   sync.Mutex
	quit func(ctx context.Context)
}

// SetQuitFunc installs the function that ends the main loop.
func (l *Lifecycle) SetQuitFunc(fn func(ctx context.Context)) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.quit = fn
}

// Quit implements port.AppLifecycle.
func (l *Lifecycle) Quit(ctx context.Context) {
	l.mu.Lock()
	fn := l.quit
	l.mu.Unlock()

	if fn == nil {
		logging.FromContext(ctx).Warn().Msg("quit requested with no UI attached")
		return
	}
	fn(ctx)
}

var _ port.AppLifecycle = (*Lifecycle)(nil)

// MenuItems exposes the menu for the window.
func (a *App) MenuItems() []entity.MenuItem { return a.Menu.Items() }
