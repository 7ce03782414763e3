// Package board is the scheduling session: it owns the store together with
// the filter, selection, calendar and pending assignment state, and reports
// the outcome of every action as a notification.
package board

import (
	"context"
	"time"

	"github.com/ncobase/taskboard/board/calendar"
	"github.com/ncobase/taskboard/board/dnd"
	"github.com/ncobase/taskboard/board/notify"
	"github.com/ncobase/taskboard/board/query"
	"github.com/ncobase/taskboard/board/selection"
	"github.com/ncobase/taskboard/board/store"
	"github.com/ncobase/taskboard/config"
	"github.com/ncobase/taskboard/ctxutil"
	"github.com/ncobase/taskboard/logging/logger"
)

// Board is one scheduling session
type Board struct {
	store    *store.Store
	notifier notify.Notifier
	cfg      *config.Board
	clock    func() time.Time

	filter    query.Filter
	selection selection.Selection
	calendar  *calendar.Calendar
	pending   *dnd.PendingAssignment

	unsubscribe func()
}

// Option configures a Board
type Option func(*Board)

// WithClock sets the time source for today and export file names
func WithClock(c func() time.Time) Option {
	return func(b *Board) {
		if c != nil {
			b.clock = c
		}
	}
}

// New creates a session over s
func New(s *store.Store, n notify.Notifier, cfg *config.Board, opts ...Option) *Board {
	if cfg == nil {
		cfg = config.DefaultBoard()
	}
	if n == nil {
		n = notify.Log{}
	}
	b := &Board{
		store:    s,
		notifier: n,
		cfg:      cfg,
		clock:    time.Now,
	}
	for _, opt := range opts {
		opt(b)
	}
	b.calendar = calendar.New(b.clock(), time.Weekday(cfg.WeekStartsOn%7))
	b.unsubscribe = s.Subscribe(b.onChange)
	return b
}

// Close detaches the session from the store
func (b *Board) Close() {
	if b.unsubscribe != nil {
		b.unsubscribe()
		b.unsubscribe = nil
	}
}

// Store returns the underlying store
func (b *Board) Store() *store.Store { return b.store }

// Snapshot returns the current store contents
func (b *Board) Snapshot() *store.Snapshot { return b.store.Snapshot() }

// onChange drops selection entries and pending work that no longer resolve
func (b *Board) onChange(c store.Change) {
	switch c.Op {
	case store.OpEmployeeDeleted, store.OpTaskDeleted, store.OpScheduledTaskDeleted:
	default:
		return
	}
	b.selection.Retain(func(id string) bool {
		_, ok := b.store.ScheduledTask(id)
		return ok
	})
	if b.pending != nil {
		if _, ok := b.store.Task(b.pending.TaskID); !ok {
			b.pending = nil
		}
	}
}

// action tags ctx with the action name and a trace id for logging
func action(ctx context.Context, name string) context.Context {
	return ctxutil.WithAction(ctx, name)
}

func (b *Board) notify(ctx context.Context, title, description string) {
	b.notifier.Notify(ctx, notify.Notification{Title: title, Description: description, Variant: notify.Default})
}

// fail reports err to the user and returns it
func (b *Board) fail(ctx context.Context, title string, err error) error {
	logger.Warnf(ctx, "%s: %v", title, err)
	b.notifier.Notify(ctx, notify.Notification{Title: title, Description: err.Error(), Variant: notify.Destructive})
	return err
}

func destructive(title, description string) notify.Notification {
	return notify.Notification{Title: title, Description: description, Variant: notify.Destructive}
}
