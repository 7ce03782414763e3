// Package notify carries user-facing messages produced by board actions.
package notify

import (
	"context"
	"sync"

	"github.com/ncobase/taskboard/logging/logger"
	"github.com/sirupsen/logrus"
)

// Variant of a notification
type Variant string

const (
	Default     Variant = "default"
	Destructive Variant = "destructive"
)

// Notification is a toast shown to the user
type Notification struct {
	Title       string  `json:"title"`
	Description string  `json:"description,omitempty"`
	Variant     Variant `json:"variant"`
}

// Notifier delivers notifications
type Notifier interface {
	Notify(ctx context.Context, n Notification)
}

// Func adapts a function to Notifier
type Func func(ctx context.Context, n Notification)

// Notify calls f
func (f Func) Notify(ctx context.Context, n Notification) { f(ctx, n) }

// Log writes notifications to the logger
type Log struct{}

// Notify logs n, destructive notifications at warn level
func (Log) Notify(ctx context.Context, n Notification) {
	entry := logger.EntryWithFields(ctx, logrus.Fields{
		"title":   n.Title,
		"variant": n.Variant,
	})
	if n.Variant == Destructive {
		entry.Warn(n.Description)
		return
	}
	entry.Info(n.Description)
}

// Recorder keeps every notification it receives
type Recorder struct {
	mu    sync.Mutex
	items []Notification
}

// Notify records n
func (r *Recorder) Notify(_ context.Context, n Notification) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.items = append(r.items, n)
}

// All returns the recorded notifications
func (r *Recorder) All() []Notification {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]Notification(nil), r.items...)
}

// Last returns the most recent notification
func (r *Recorder) Last() (Notification, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.items) == 0 {
		return Notification{}, false
	}
	return r.items[len(r.items)-1], true
}

// Reset drops recorded notifications
func (r *Recorder) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.items = nil
}

// Multi fans out to several notifiers
type Multi []Notifier

// Notify forwards n to every notifier
func (m Multi) Notify(ctx context.Context, n Notification) {
	for _, nt := range m {
		if nt != nil {
			nt.Notify(ctx, n)
		}
	}
}
