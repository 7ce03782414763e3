// Package dnd turns drag payloads and drop targets into store commands.
package dnd

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/ncobase/taskboard/board/structs"
	"github.com/ncobase/taskboard/ecode"
)

// Kind of dragged item
type Kind string

const (
	KindNewTask       Kind = "new-task"
	KindScheduledTask Kind = "existing-scheduled-task"
)

// ErrInvalidPayload is returned when a drag payload cannot be decoded
var ErrInvalidPayload = errors.New("invalid drag payload")

// Descriptor is attached to a drag session when it starts.
type Descriptor struct {
	Kind Kind   `json:"type"`
	ID   string `json:"id"`
}

// NewTask describes a task type dragged from the sidebar
func NewTask(taskID string) Descriptor {
	return Descriptor{Kind: KindNewTask, ID: taskID}
}

// ScheduledTask describes a scheduled task dragged within the board
func ScheduledTask(id string) Descriptor {
	return Descriptor{Kind: KindScheduledTask, ID: id}
}

// Encode returns the payload stored in the drag session
func (d Descriptor) Encode() (string, error) {
	if err := d.validate(); err != nil {
		return "", err
	}
	b, err := json.Marshal(d)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

func (d Descriptor) validate() error {
	if d.Kind != KindNewTask && d.Kind != KindScheduledTask {
		return fmt.Errorf("%w: unknown type %q", ErrInvalidPayload, d.Kind)
	}
	if strings.TrimSpace(d.ID) == "" {
		return fmt.Errorf("%w: %s", ErrInvalidPayload, ecode.FieldIsEmpty("id"))
	}
	return nil
}

// Decode parses a drag payload. A bare id is read as a new task.
func Decode(payload string) (Descriptor, error) {
	payload = strings.TrimSpace(payload)
	if payload == "" {
		return Descriptor{}, fmt.Errorf("%w: empty", ErrInvalidPayload)
	}
	if !strings.HasPrefix(payload, "{") {
		return NewTask(payload), nil
	}
	var d Descriptor
	if err := json.Unmarshal([]byte(payload), &d); err != nil {
		return Descriptor{}, fmt.Errorf("%w: %v", ErrInvalidPayload, err)
	}
	if err := d.validate(); err != nil {
		return Descriptor{}, err
	}
	return d, nil
}

// Target is a drop cell. EmployeeID is empty for a monthly day cell.
type Target struct {
	EmployeeID string `json:"employee_id,omitempty"`
	Date       string `json:"date"`
}

// Valid reports whether the target can receive a drop
func (t Target) Valid() bool {
	return t.Date != ""
}

// PendingAssignment is a task dropped without an employee, waiting for one to be picked.
type PendingAssignment struct {
	TaskID   string `json:"task_id"`
	Date     string `json:"date"`
	TaskName string `json:"task_name"`
}

// Action taken for a drop
type Action string

const (
	ActionNone    Action = "none"
	ActionCreated Action = "created"
	ActionMoved   Action = "moved"
	ActionPending Action = "pending"
)

// Result of a drop
type Result struct {
	Action  Action
	Created *structs.ScheduledTask
	Moved   int
	Pending *PendingAssignment
}

// Scheduler is the part of the store a drop needs
type Scheduler interface {
	Task(id string) (*structs.Task, bool)
	ScheduleTask(ctx context.Context, employeeID, taskID, date string) (*structs.ScheduledTask, error)
	MoveScheduledTasks(ctx context.Context, ids []string, targetEmployeeID, targetDate string) (int, error)
}

// MoveOrCreate executes a drop.
// A new task dropped on an employee cell is scheduled, on a day cell it becomes pending.
// A scheduled task is moved together with the rest of the selection when it is part of it.
// Drops on an invalid target do nothing.
func MoveOrCreate(ctx context.Context, s Scheduler, d Descriptor, t Target, selected []string) (*Result, error) {
	if !t.Valid() || d.validate() != nil {
		return &Result{Action: ActionNone}, nil
	}

	switch d.Kind {
	case KindNewTask:
		if t.EmployeeID == "" {
			task, ok := s.Task(d.ID)
			if !ok {
				return nil, ecode.NewNotFound("task", d.ID)
			}
			return &Result{
				Action:  ActionPending,
				Pending: &PendingAssignment{TaskID: task.ID, Date: t.Date, TaskName: task.Name},
			}, nil
		}
		st, err := s.ScheduleTask(ctx, t.EmployeeID, d.ID, t.Date)
		if err != nil {
			return nil, err
		}
		return &Result{Action: ActionCreated, Created: st}, nil

	default:
		ids := []string{d.ID}
		if slices.Contains(selected, d.ID) {
			ids = selected
		}
		n, err := s.MoveScheduledTasks(ctx, ids, t.EmployeeID, t.Date)
		if err != nil {
			return nil, err
		}
		if n == 0 {
			return &Result{Action: ActionNone}, nil
		}
		return &Result{Action: ActionMoved, Moved: n}, nil
	}
}
