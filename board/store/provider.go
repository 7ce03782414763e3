package store

import (
	"context"

	"github.com/google/wire"
	"github.com/ncobase/taskboard/config"
)

// ProviderSet is the wire provider set for the store package
var ProviderSet = wire.NewSet(ProvideStore)

// ProvideStore builds a Store from the board config, seeding demo data when enabled
func ProvideStore(cfg *config.Board) *Store {
	if cfg == nil {
		cfg = config.DefaultBoard()
	}
	s := New(WithHours(cfg.DefaultTaskHours, cfg.MinHours))
	if cfg.Seed {
		s.Seed(context.Background())
	}
	return s
}
