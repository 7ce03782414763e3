package board

import (
	"context"
	"fmt"

	"github.com/ncobase/taskboard/board/structs"
)

// AddTask adds a task type
func (b *Board) AddTask(ctx context.Context, body *structs.TaskBody) (*structs.Task, error) {
	ctx = action(ctx, "add_task")
	t, err := b.store.AddTask(ctx, body)
	if err != nil {
		return nil, b.fail(ctx, "Could Not Add Task", err)
	}
	b.notify(ctx, "Task Added", fmt.Sprintf("%q is ready to be scheduled.", t.Name))
	return t, nil
}

// UpdateTask changes a task type
func (b *Board) UpdateTask(ctx context.Context, id string, body *structs.TaskBody) (*structs.Task, error) {
	ctx = action(ctx, "update_task")
	t, err := b.store.UpdateTask(ctx, id, body)
	if err != nil {
		return nil, b.fail(ctx, "Could Not Update Task", err)
	}
	b.notify(ctx, "Task Updated", fmt.Sprintf("%q has been updated.", t.Name))
	return t, nil
}

// DeleteTask removes a task type and every scheduled instance of it
func (b *Board) DeleteTask(ctx context.Context, id string) bool {
	ctx = action(ctx, "delete_task")
	t, ok := b.store.Task(id)
	if !ok || !b.store.DeleteTask(ctx, id) {
		return false
	}
	b.notifier.Notify(ctx, destructive("Task Deleted",
		fmt.Sprintf("Task %q and its scheduled instances have been deleted.", t.Name)))
	return true
}

// Tasks returns every task type
func (b *Board) Tasks() []structs.Task {
	return b.store.Snapshot().Tasks
}
