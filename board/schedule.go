package board

import (
	"context"
	"fmt"

	"github.com/ncobase/taskboard/board/dnd"
	"github.com/ncobase/taskboard/board/query"
	"github.com/ncobase/taskboard/board/selection"
	"github.com/ncobase/taskboard/board/store"
	"github.com/ncobase/taskboard/board/structs"
	"github.com/ncobase/taskboard/ecode"
	"github.com/ncobase/taskboard/types"
)

// DropTask executes a drop of a drag payload on target.
// Drops on a monthly day cell leave a pending assignment.
func (b *Board) DropTask(ctx context.Context, payload string, target dnd.Target) (*dnd.Result, error) {
	ctx = action(ctx, "drop_task")
	d, err := dnd.Decode(payload)
	if err != nil {
		return &dnd.Result{Action: dnd.ActionNone}, nil
	}
	res, err := dnd.MoveOrCreate(ctx, b.store, d, target, b.selection.IDs())
	if err != nil {
		return nil, b.fail(ctx, "Could Not Schedule Task", err)
	}

	switch res.Action {
	case dnd.ActionCreated:
		b.notifyScheduled(ctx, res.Created)
	case dnd.ActionPending:
		b.pending = res.Pending
	case dnd.ActionMoved:
		b.selection.Clear()
		b.notify(ctx, "Tasks Moved", fmt.Sprintf("%d scheduled task(s) moved to %s.", res.Moved, displayDate(target.Date)))
	}
	return res, nil
}

func (b *Board) notifyScheduled(ctx context.Context, st *structs.ScheduledTask) {
	name := "Task"
	if t, ok := b.store.Task(st.TaskID); ok {
		name = t.Name
	}
	var who string
	if e, ok := b.store.Employee(st.EmployeeID); ok {
		who = e.FullName()
	}
	b.notify(ctx, "Task Scheduled", fmt.Sprintf("%s assigned to %s on %s.", name, who, displayDate(st.Date)))
}

// displayDate renders YYYY-MM-DD as "Jun 10, 2024"
func displayDate(date string) string {
	d, err := types.ParseDate(date)
	if err != nil {
		return date
	}
	return types.FormatTime(d, "MMM d, yyyy")
}

// Pending returns the assignment waiting for an employee, nil when there is none
func (b *Board) Pending() *dnd.PendingAssignment {
	if b.pending == nil {
		return nil
	}
	p := *b.pending
	return &p
}

// CancelAssignment drops the pending assignment
func (b *Board) CancelAssignment() {
	b.pending = nil
}

// ConfirmAssignment schedules the pending task for employeeID, which must be active
func (b *Board) ConfirmAssignment(ctx context.Context, employeeID string) (*structs.ScheduledTask, error) {
	ctx = action(ctx, "confirm_assignment")
	if b.pending == nil {
		return nil, b.fail(ctx, "Nothing to Assign", ecode.NewNotFound("pending assignment", ""))
	}
	if len(query.ActiveEmployees(b.store.Snapshot())) == 0 {
		return nil, b.fail(ctx, "No Active Employees", ecode.NewNotFound("active employee", ""))
	}
	e, ok := b.store.Employee(employeeID)
	if !ok {
		return nil, b.fail(ctx, "Could Not Schedule Task", ecode.NewNotFound(store.KindEmployee, employeeID))
	}
	if !e.IsActive {
		return nil, b.fail(ctx, "Could Not Schedule Task",
			ecode.NewValidation("employee_id", fmt.Sprintf("%s is inactive", e.FullName())))
	}
	st, err := b.store.ScheduleTask(ctx, employeeID, b.pending.TaskID, b.pending.Date)
	if err != nil {
		return nil, b.fail(ctx, "Could Not Schedule Task", err)
	}
	b.pending = nil
	b.notifyScheduled(ctx, st)
	return st, nil
}

// ClickScheduledTask updates the selection, toggling when modifier is held
func (b *Board) ClickScheduledTask(id string, modifier bool) {
	b.selection.Select(id, modifier)
}

// ClearSelection empties the selection, as on Escape or a click on empty space
func (b *Board) ClearSelection() {
	b.selection.Clear()
}

// Selection returns the selection state and ids
func (b *Board) Selection() (selection.State, []string) {
	return b.selection.State(), b.selection.IDs()
}

// MoveSelected moves the selected scheduled tasks, an empty employeeID keeps each owner
func (b *Board) MoveSelected(ctx context.Context, employeeID, date string) (int, error) {
	ctx = action(ctx, "move_selected")
	n, err := b.store.MoveScheduledTasks(ctx, b.selection.IDs(), employeeID, date)
	if err != nil {
		return 0, b.fail(ctx, "Could Not Move Tasks", err)
	}
	if n > 0 {
		b.selection.Clear()
		b.notify(ctx, "Tasks Moved", fmt.Sprintf("%d scheduled task(s) moved to %s.", n, displayDate(date)))
	}
	return n, nil
}

// ScheduledTask returns the details of a scheduled task
func (b *Board) ScheduledTask(id string) (*structs.ScheduledTask, bool) {
	return b.store.ScheduledTask(id)
}

// SaveScheduledTaskDetails sets hours and tags from the details dialog
func (b *Board) SaveScheduledTaskDetails(ctx context.Context, id string, hours float64, tags []string) (*structs.ScheduledTask, error) {
	ctx = action(ctx, "save_task_details")
	st, err := b.store.UpdateScheduledTaskDetails(ctx, id, hours, tags)
	if err != nil {
		return nil, b.fail(ctx, "Could Not Save Task", err)
	}
	b.notify(ctx, "Task Updated", fmt.Sprintf("%s hours on %s.", formatHours(st.Hours), displayDate(st.Date)))
	return st, nil
}

// SetScheduledTaskStatus changes the progress status of a scheduled task
func (b *Board) SetScheduledTaskStatus(ctx context.Context, id string, status structs.Status) (*structs.ScheduledTask, error) {
	ctx = action(ctx, "set_task_status")
	st, err := b.store.UpdateScheduledTaskStatus(ctx, id, status)
	if err != nil {
		return nil, b.fail(ctx, "Could Not Update Status", err)
	}
	b.notify(ctx, "Status Updated", fmt.Sprintf("Task is now %s.", st.Status))
	return st, nil
}

// DeleteScheduledTask removes one scheduled task
func (b *Board) DeleteScheduledTask(ctx context.Context, id string) bool {
	ctx = action(ctx, "delete_scheduled_task")
	if !b.store.DeleteScheduledTask(ctx, id) {
		return false
	}
	b.notifier.Notify(ctx, destructive("Scheduled Task Removed", ""))
	return true
}

// ensure the store satisfies the drop contract
var _ dnd.Scheduler = (*store.Store)(nil)
