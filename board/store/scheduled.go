package store

import (
	"context"
	"slices"

	"github.com/ncobase/taskboard/board/structs"
	"github.com/ncobase/taskboard/ecode"
	"github.com/ncobase/taskboard/logging/logger"
	"github.com/ncobase/taskboard/validation/validator"
)

func invalidDate(date string) error {
	if validator.IsDate(date) {
		return nil
	}
	return ecode.NewValidation("date", ecode.FieldIsInvalid("date"))
}

// ScheduleTask assigns a task to an employee on date using the task's default hours.
func (s *Store) ScheduleTask(ctx context.Context, employeeID, taskID, date string) (*structs.ScheduledTask, error) {
	if err := invalidDate(date); err != nil {
		return nil, err
	}

	s.mu.Lock()
	task, ok := s.tasks[taskID]
	if !ok {
		s.mu.Unlock()
		return nil, ecode.NewNotFound(KindTask, taskID)
	}
	if _, ok := s.employees[employeeID]; !ok {
		s.mu.Unlock()
		return nil, ecode.NewNotFound(KindEmployee, employeeID)
	}
	st := structs.ScheduledTask{
		ID:         s.newScheduledID(),
		EmployeeID: employeeID,
		TaskID:     taskID,
		Date:       date,
		Status:     structs.StatusScheduled,
		Hours:      task.val.DefaultHours,
		Tags:       []string{},
	}
	s.insertScheduled(st)
	s.mu.Unlock()

	logger.Debugf(ctx, "task %s scheduled for %s on %s", taskID, employeeID, date)
	s.publish(Change{Op: OpScheduledTaskAdded, IDs: []string{st.ID}})
	out := st.Clone()
	return &out, nil
}

// newScheduledID must be called with the write lock held.
func (s *Store) newScheduledID() string {
	id := s.newID()
	for _, exists := s.scheduled[id]; exists; _, exists = s.scheduled[id] {
		id = s.newID()
	}
	return id
}

// MoveScheduledTasks reassigns scheduled tasks to targetDate and, when
// targetEmployeeID is not empty, to that employee. Unknown ids are ignored.
// It returns the number of tasks moved.
func (s *Store) MoveScheduledTasks(ctx context.Context, ids []string, targetEmployeeID, targetDate string) (int, error) {
	if err := invalidDate(targetDate); err != nil {
		return 0, err
	}

	s.mu.Lock()
	if targetEmployeeID != "" {
		if _, ok := s.employees[targetEmployeeID]; !ok {
			s.mu.Unlock()
			return 0, ecode.NewNotFound(KindEmployee, targetEmployeeID)
		}
	}
	moved := make([]string, 0, len(ids))
	for _, id := range ids {
		rec, ok := s.scheduled[id]
		if !ok || slices.Contains(moved, id) {
			continue
		}
		if targetEmployeeID != "" && targetEmployeeID != rec.val.EmployeeID {
			unindex(s.byEmployee, rec.val.EmployeeID, id)
			rec.val.EmployeeID = targetEmployeeID
			index(s.byEmployee, targetEmployeeID, id)
		}
		rec.val.Date = targetDate
		moved = append(moved, id)
	}
	s.mu.Unlock()

	if len(moved) > 0 {
		logger.Debugf(ctx, "%d scheduled tasks moved to %s", len(moved), targetDate)
		s.publish(Change{Op: OpScheduledTasksMoved, IDs: moved})
	}
	return len(moved), nil
}

// UpdateScheduledTaskDetails sets hours and tags of a scheduled task.
// Tags are trimmed, empty ones dropped and duplicates removed.
func (s *Store) UpdateScheduledTaskDetails(ctx context.Context, id string, hours float64, tags []string) (*structs.ScheduledTask, error) {
	if msg := s.hoursError("hours", hours); msg != "" {
		return nil, ecode.NewValidation("hours", msg)
	}
	tags = structs.NormalizeTags(tags)

	s.mu.Lock()
	rec, ok := s.scheduled[id]
	if !ok {
		s.mu.Unlock()
		return nil, ecode.NewNotFound(KindScheduledTask, id)
	}
	rec.val.Hours = hours
	rec.val.Tags = tags
	st := rec.val.Clone()
	s.mu.Unlock()

	s.publish(Change{Op: OpScheduledTaskUpdated, IDs: []string{id}})
	return &st, nil
}

// UpdateScheduledTaskStatus sets the progress status of a scheduled task
func (s *Store) UpdateScheduledTaskStatus(ctx context.Context, id string, status structs.Status) (*structs.ScheduledTask, error) {
	if !status.Valid() {
		return nil, ecode.NewValidation("status", ecode.FieldIsInvalid("status"))
	}

	s.mu.Lock()
	rec, ok := s.scheduled[id]
	if !ok {
		s.mu.Unlock()
		return nil, ecode.NewNotFound(KindScheduledTask, id)
	}
	rec.val.Status = status
	st := rec.val.Clone()
	s.mu.Unlock()

	s.publish(Change{Op: OpScheduledTaskUpdated, IDs: []string{id}})
	return &st, nil
}

// DeleteScheduledTask removes one scheduled task, unknown ids are a no-op
func (s *Store) DeleteScheduledTask(ctx context.Context, id string) bool {
	s.mu.Lock()
	removed := s.removeScheduled(id)
	s.mu.Unlock()

	if removed {
		s.publish(Change{Op: OpScheduledTaskDeleted, IDs: []string{id}})
	}
	return removed
}

// ScheduledTask returns a copy of the scheduled task with id
func (s *Store) ScheduledTask(id string) (*structs.ScheduledTask, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	rec, ok := s.scheduled[id]
	if !ok {
		return nil, false
	}
	st := rec.val.Clone()
	return &st, true
}
