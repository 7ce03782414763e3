package store

import (
	"context"
	"strings"

	"github.com/ncobase/taskboard/board/structs"
	"github.com/ncobase/taskboard/ecode"
	"github.com/ncobase/taskboard/logging/logger"
	"github.com/ncobase/taskboard/validation/validator"
)

// validateTaskBody trims body in place and resolves its hours
func (s *Store) validateTaskBody(body *structs.TaskBody) (float64, error) {
	body.Name = strings.TrimSpace(body.Name)
	body.IconName = strings.TrimSpace(body.IconName)
	body.ColorClasses = strings.TrimSpace(body.ColorClasses)

	fields := validator.ValidateStruct(body)
	hours := s.defaultHours
	if body.DefaultHours != nil {
		hours = *body.DefaultHours
		if msg := s.hoursError("default_hours", hours); msg != "" {
			fields["default_hours"] = msg
		}
	}
	if len(fields) > 0 {
		return 0, ecode.NewValidationFields(fields)
	}
	return hours, nil
}

// AddTask adds a task type with a generated id.
func (s *Store) AddTask(ctx context.Context, body *structs.TaskBody) (*structs.Task, error) {
	if body == nil {
		return nil, ecode.NewValidation("name", ecode.FieldIsRequired("name"))
	}
	b := *body
	hours, err := s.validateTaskBody(&b)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	id := s.newID()
	for _, exists := s.tasks[id]; exists; _, exists = s.tasks[id] {
		id = s.newID()
	}
	t := structs.Task{
		ID:           id,
		Name:         b.Name,
		IconName:     b.IconName,
		ColorClasses: b.ColorClasses,
		DefaultHours: hours,
	}
	s.tasks[id] = &record[structs.Task]{seq: s.nextSeq(), val: t}
	s.mu.Unlock()

	logger.Debugf(ctx, "task %s (%s) added", t.ID, t.Name)
	s.publish(Change{Op: OpTaskAdded, IDs: []string{t.ID}})
	return &t, nil
}

// UpdateTask replaces name, icon and color of a task.
// DefaultHours only changes when the body sets it.
func (s *Store) UpdateTask(ctx context.Context, id string, body *structs.TaskBody) (*structs.Task, error) {
	if body == nil {
		return nil, ecode.NewValidation("name", ecode.FieldIsRequired("name"))
	}
	b := *body
	hours, err := s.validateTaskBody(&b)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	rec, ok := s.tasks[id]
	if !ok {
		s.mu.Unlock()
		return nil, ecode.NewNotFound(KindTask, id)
	}
	rec.val.Name = b.Name
	rec.val.IconName = b.IconName
	rec.val.ColorClasses = b.ColorClasses
	if b.DefaultHours != nil {
		rec.val.DefaultHours = hours
	}
	t := rec.val
	s.mu.Unlock()

	s.publish(Change{Op: OpTaskUpdated, IDs: []string{id}})
	return &t, nil
}

// DeleteTask removes a task and all of its scheduled instances.
func (s *Store) DeleteTask(ctx context.Context, id string) bool {
	s.mu.Lock()
	if _, ok := s.tasks[id]; !ok {
		s.mu.Unlock()
		return false
	}
	delete(s.tasks, id)
	cascaded := s.setToSlice(s.byTask[id])
	for _, stID := range cascaded {
		s.removeScheduled(stID)
	}
	s.mu.Unlock()

	logger.Infof(ctx, "task %s deleted with %d scheduled tasks", id, len(cascaded))
	s.publish(Change{Op: OpTaskDeleted, IDs: []string{id}, Cascaded: cascaded})
	return true
}

// Task returns a copy of the task with id
func (s *Store) Task(id string) (*structs.Task, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	rec, ok := s.tasks[id]
	if !ok {
		return nil, false
	}
	t := rec.val
	return &t, true
}

// TaskByName finds a task by case-insensitive name, first added wins
func (s *Store) TaskByName(name string) (*structs.Task, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	t, ok := s.taskByNameLocked(name)
	if !ok {
		return nil, false
	}
	return &t, true
}
