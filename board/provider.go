package board

import (
	"github.com/google/wire"
	"github.com/ncobase/taskboard/board/notify"
	"github.com/ncobase/taskboard/board/store"
	"github.com/ncobase/taskboard/config"
)

// ProviderSet is the wire provider set for the board session
var ProviderSet = wire.NewSet(store.ProviderSet, ProvideNotifier, ProvideBoard)

// ProvideNotifier logs notifications
func ProvideNotifier() notify.Notifier {
	return notify.Log{}
}

// ProvideBoard creates the session and a cleanup detaching it from the store
func ProvideBoard(s *store.Store, n notify.Notifier, cfg *config.Board) (*Board, func()) {
	b := New(s, n, cfg)
	return b, b.Close
}
