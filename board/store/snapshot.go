package store

import (
	"github.com/ncobase/taskboard/board/structs"
)

// Snapshot is a point-in-time copy of all collections.
// Employees keep store order, which is id order after an import.
type Snapshot struct {
	Employees      []structs.Employee
	Tasks          []structs.Task
	ScheduledTasks []structs.ScheduledTask
}

// Snapshot copies the current state
func (s *Store) Snapshot() *Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	snap := &Snapshot{
		Employees:      make([]structs.Employee, 0, len(s.employees)),
		Tasks:          make([]structs.Task, 0, len(s.tasks)),
		ScheduledTasks: make([]structs.ScheduledTask, 0, len(s.scheduled)),
	}
	for _, id := range sortedIDs(s.employees) {
		snap.Employees = append(snap.Employees, s.employees[id].val)
	}
	for _, id := range sortedIDs(s.tasks) {
		snap.Tasks = append(snap.Tasks, s.tasks[id].val)
	}
	for _, id := range sortedIDs(s.scheduled) {
		snap.ScheduledTasks = append(snap.ScheduledTasks, s.scheduled[id].val.Clone())
	}
	return snap
}

// Counts returns the size of each collection
func (s *Store) Counts() (employees, tasks, scheduled int) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.employees), len(s.tasks), len(s.scheduled)
}
