//go:build wireinject

package provider

import (
	"github.com/google/wire"
	"github.com/ncobase/taskboard/board"
	"github.com/ncobase/taskboard/config"
	"github.com/ncobase/taskboard/logging/logger"
)

// InitializeApp wires the board session from a loaded configuration.
// The cleanup function detaches the session, flushes sentry and closes log files.
func InitializeApp(cfg *config.Config) (*App, func(), error) {
	panic(wire.Build(
		config.ProviderSet,
		logger.ProviderSet,
		board.ProviderSet,
		ProvideObserver,
		NewApp,
	))
}
