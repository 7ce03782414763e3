package config

import (
	"github.com/google/wire"
	logcfg "github.com/ncobase/taskboard/logging/logger/config"
)

// ProviderSet is the wire provider set for the config package
var ProviderSet = wire.NewSet(ProvideLoggerConfig, ProvideBoardConfig)

// ProvideLoggerConfig extracts the logger section
func ProvideLoggerConfig(c *Config) *logcfg.Config {
	if c.Logger == nil {
		return logcfg.Default()
	}
	return c.Logger
}

// ProvideBoardConfig extracts the board section
func ProvideBoardConfig(c *Config) *Board {
	if c.Board == nil {
		return DefaultBoard()
	}
	return c.Board
}
