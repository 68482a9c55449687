package main

import (
	"context"
	"errors"
	"io"

	"github.com/spf13/cobra"

	"github.com/build50/build50/internal/app/theme"
	"github.com/build50/build50/internal/config"
	"github.com/build50/build50/internal/domain/catalog"
	infraconfig "github.com/build50/build50/internal/infrastructure/config"
	"github.com/build50/build50/internal/infrastructure/events"
	"github.com/build50/build50/internal/infrastructure/logging"
	"github.com/build50/build50/internal/infrastructure/storage"
	"github.com/build50/build50/internal/infrastructure/submission"
	"github.com/build50/build50/internal/logger"
	"github.com/build50/build50/internal/ports"
)

// bootBufferSize caps the entries kept before the real logger exists.
const bootBufferSize = 64

// AppContext bundles the long-lived services created for one command run.
type AppContext struct {
	Settings  config.Settings
	Logger    ports.Logger
	Publisher *events.LoggingPublisher

	base  *logger.Logger
	store storage.Backend
}

// newAppContext loads configuration and builds the logger. Interactive
// sessions own the terminal, so their logs always go to the log file.
func newAppContext(flags *rootFlags, stderr io.Writer, interactive bool) (*AppContext, error) {
	boot := logging.NewBuffer(bootBufferSize)
	ctx := context.Background()
	boot.Debug(ctx, "loading configuration", "path", flags.configPath)

	settings, err := config.Load(flags.configPath)
	if err != nil {
		source := flags.configPath
		if source == "" {
			source = "default configuration"
		}
		return nil, newCommandError("load configuration", source, err,
			"Check the YAML syntax and any BUILD50_* environment variables.")
	}
	boot.Info(ctx, "configuration loaded",
		"source", settings.Source,
		"storage_driver", settings.Storage.Driver)

	base, err := newBaseLogger(settings.Log, flags.verbose, interactive, stderr)
	if err != nil {
		return nil, newCommandError("set up logging", settings.Log.Path, err,
			"Point log.path at a writable file or run with --verbose.")
	}

	log, err := logging.New(logging.Options{
		Base:      base,
		Layer:     "cmd",
		Component: "cli",
	})
	if err != nil {
		_ = base.Close()
		return nil, err
	}
	boot.Flush(log)

	return &AppContext{
		Settings:  settings,
		Logger:    log,
		Publisher: events.NewLoggingPublisher(log.With("component", "events")),
		base:      base,
	}, nil
}

func newBaseLogger(settings config.LogSettings, verbose, interactive bool, stderr io.Writer) (*logger.Logger, error) {
	level := settings.Level
	if verbose {
		level = "debug"
	}

	switch {
	case verbose && !interactive:
		return logger.New(logger.Options{Level: level, HumanReadable: true, Writer: stderr})
	case settings.Path != "":
		return logger.New(logger.Options{Level: level, File: settings.Path})
	default:
		return logger.Nop(), nil
	}
}

// CommandContext returns the command's context tagged with a correlation id
// and a logger scoped to operation.
func (a *AppContext) CommandContext(cmd *cobra.Command, operation string) (context.Context, ports.Logger) {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	if ports.GetCorrelationID(ctx) == "" {
		ctx = ports.WithCorrelationID(ctx, ports.GenerateCorrelationID())
	}
	return ctx, a.Logger.With("operation", operation)
}

// Store opens the configured storage backend on first use.
func (a *AppContext) Store() (storage.Backend, error) {
	if a.store != nil {
		return a.store, nil
	}
	store, err := storage.Open(a.Settings.Storage)
	if err != nil {
		return nil, newCommandError("open storage", describeStorage(a.Settings.Storage), err,
			"Check storage.path permissions, or set storage.driver to memory.")
	}
	a.store = store
	return store, nil
}

// ThemeStore returns an initialised theme store. When storage cannot be
// opened the store runs session-only and the failure is logged.
func (a *AppContext) ThemeStore(ctx context.Context) *theme.Store {
	var state ports.StateStore
	if store, err := a.Store(); err != nil {
		a.Logger.Warn(ctx, "theme preference will not persist", "error", errors.Unwrap(err))
	} else {
		state = store
	}

	themes := theme.New(state, a.Logger)
	themes.Initialize(ctx)
	return themes
}

// Catalog loads the configured catalog, or the built-in one.
func (a *AppContext) Catalog(ctx context.Context) (*catalog.Catalog, error) {
	loader := infraconfig.NewCatalogLoader(a.Logger)
	cat, err := loader.Load(ctx, a.Settings.Catalog.Path)
	if err != nil {
		return nil, newCommandError("load catalog", a.Settings.Catalog.Path, err,
			"Fix the catalog file or unset catalog.path to use the built-in catalog.")
	}
	return cat, nil
}

// Submitter builds the enquiry delivery chain. With the outbox enabled,
// delivered enquiries are recorded in storage when it is available.
func (a *AppContext) Submitter(ctx context.Context) ports.Submitter {
	simulated := submission.NewSimulated(submission.Options{
		Latency:   a.Settings.Submission.Latency,
		FailEvery: a.Settings.Submission.FailEvery,
		Logger:    a.Logger,
	})
	if !a.Settings.Submission.Outbox {
		return simulated
	}

	store, err := a.Store()
	if err != nil {
		a.Logger.Warn(ctx, "outbox disabled", "error", errors.Unwrap(err))
		return simulated
	}
	return submission.NewOutbox(store, simulated, a.Logger)
}

// Close releases storage and the log file.
func (a *AppContext) Close() error {
	if a == nil {
		return nil
	}
	var errs []error
	if a.store != nil {
		errs = append(errs, a.store.Close())
		a.store = nil
	}
	if a.base != nil {
		errs = append(errs, a.base.Close())
	}
	return errors.Join(errs...)
}

func describeStorage(settings config.StorageSettings) string {
	if settings.Path == "" {
		return settings.Driver + " backend"
	}
	return settings.Driver + " backend at " + settings.Path
}
