package provider

import (
	"time"

	"github.com/ncobase/taskboard/board"
	"github.com/ncobase/taskboard/config"
	"github.com/ncobase/taskboard/logging/logger"
	"github.com/ncobase/taskboard/logging/observes"
	"github.com/ncobase/taskboard/version"
)

// App holds the wired dependencies of one CLI run
type App struct {
	Config *config.Config
	Logger *logger.Logger
	Board  *board.Board
}

// NewApp assembles the App
func NewApp(cfg *config.Config, l *logger.Logger, b *board.Board, _ Observer) *App {
	return &App{Config: cfg, Logger: l, Board: b}
}

// Observer marks that error reporting has been set up
type Observer struct{}

// ProvideObserver starts sentry when a DSN is configured and hooks it into the logger
func ProvideObserver(cfg *config.Config, l *logger.Logger) (Observer, func(), error) {
	s := cfg.Observes
	if s == nil || s.Sentry == nil || s.Sentry.Endpoint == "" {
		return Observer{}, func() {}, nil
	}
	release := s.Sentry.Release
	if release == "" {
		release = version.GetVersionInfo().Version
	}
	err := observes.NewSentry(&observes.SentryOptions{
		Dsn:         s.Sentry.Endpoint,
		Name:        cfg.AppName,
		Release:     release,
		Environment: s.Sentry.Environment,
	})
	if err != nil {
		return Observer{}, nil, err
	}
	l.AddHook(observes.NewSentryHook(nil))
	return Observer{}, func() { observes.Flush(2 * time.Second) }, nil
}
