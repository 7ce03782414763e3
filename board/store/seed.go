package store

import (
	"context"

	"github.com/ncobase/taskboard/board/structs"
	"github.com/ncobase/taskboard/logging/logger"
)

var demoEmployees = []structs.Employee{
	{ID: "emp001", FirstName: "Alice", LastName: "Wonderland", WarehouseCode: "WH-A1", IsActive: true},
	{ID: "emp002", FirstName: "Bob", LastName: "The Builder", WarehouseCode: "WH-B2", IsActive: true},
	{ID: "emp003", FirstName: "Carol", LastName: "Danvers", WarehouseCode: "WH-C3", IsActive: false},
}

var demoTasks = []structs.Task{
	{ID: "task1", Name: "Morning Briefing", IconName: "Sunrise", ColorClasses: "bg-yellow-100 text-yellow-700 border border-yellow-300 hover:bg-yellow-200"},
	{ID: "task2", Name: "Client Call", IconName: "Phone", ColorClasses: "bg-sky-100 text-sky-700 border border-sky-300 hover:bg-sky-200"},
	{ID: "task3", Name: "Project Work", IconName: "Briefcase", ColorClasses: "bg-green-100 text-green-700 border border-green-300 hover:bg-green-200"},
}

// Seed loads the demo employees and tasks. Records whose id already exists are left alone.
func (s *Store) Seed(ctx context.Context) {
	s.mu.Lock()
	now := s.clock()
	var employees, tasks []string
	for _, e := range demoEmployees {
		if _, ok := s.employees[e.ID]; ok {
			continue
		}
		e.CreatedAt = now
		s.employees[e.ID] = &record[structs.Employee]{seq: s.nextSeq(), val: e}
		employees = append(employees, e.ID)
	}
	for _, t := range demoTasks {
		if _, ok := s.tasks[t.ID]; ok {
			continue
		}
		t.DefaultHours = s.defaultHours
		s.tasks[t.ID] = &record[structs.Task]{seq: s.nextSeq(), val: t}
		tasks = append(tasks, t.ID)
	}
	s.mu.Unlock()

	logger.Debugf(ctx, "seeded %d employees and %d tasks", len(employees), len(tasks))
	if len(employees) > 0 {
		s.publish(Change{Op: OpEmployeeAdded, IDs: employees})
	}
	if len(tasks) > 0 {
		s.publish(Change{Op: OpTaskAdded, IDs: tasks})
	}
}
