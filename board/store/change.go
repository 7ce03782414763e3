package store

import (
	"github.com/ncobase/taskboard/event"
)

// Op names a store mutation
type Op string

const (
	OpEmployeeAdded         Op = "employee.added"
	OpEmployeeUpdated       Op = "employee.updated"
	OpEmployeeDeleted       Op = "employee.deleted"
	OpEmployeesImported     Op = "employee.imported"
	OpTaskAdded             Op = "task.added"
	OpTaskUpdated           Op = "task.updated"
	OpTaskDeleted           Op = "task.deleted"
	OpScheduledTaskAdded    Op = "scheduled_task.added"
	OpScheduledTasksMoved   Op = "scheduled_task.moved"
	OpScheduledTaskUpdated  Op = "scheduled_task.updated"
	OpScheduledTaskDeleted  Op = "scheduled_task.deleted"
	OpScheduledTaskImported Op = "scheduled_task.imported"
)

// Change describes one successful mutation.
// IDs are the primary records touched, Cascaded the scheduled tasks removed alongside them.
type Change struct {
	Op       Op
	IDs      []string
	Cascaded []string
}

// Subscribe registers fn for every change and returns a function that removes it.
// fn runs synchronously after the mutation has been applied and the lock released.
func (s *Store) Subscribe(fn func(Change)) func() {
	if fn == nil {
		return func() {}
	}
	return s.bus.Subscribe(event.Wildcard, func(d event.Data) {
		if c, ok := d.Payload.(Change); ok {
			fn(c)
		}
	})
}

// Bus returns the event bus changes are published on
func (s *Store) Bus() *event.Bus { return s.bus }

func (s *Store) publish(c Change) {
	s.bus.Publish(string(c.Op), c)
}
