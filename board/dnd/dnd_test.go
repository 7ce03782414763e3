package dnd

import (
	"context"
	"testing"

	"github.com/ncobase/taskboard/board/store"
	"github.com/ncobase/taskboard/board/structs"
	"github.com/ncobase/taskboard/ecode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDescriptorRoundTrip(t *testing.T) {
	payload, err := ScheduledTask("S1").Encode()
	require.NoError(t, err)
	assert.JSONEq(t, `{"type":"existing-scheduled-task","id":"S1"}`, payload)

	d, err := Decode(payload)
	require.NoError(t, err)
	assert.Equal(t, ScheduledTask("S1"), d)

	d, err = Decode("task1")
	require.NoError(t, err)
	assert.Equal(t, NewTask("task1"), d)
}

func TestDecodeInvalid(t *testing.T) {
	for _, payload := range []string{"", "  ", "{", `{"type":"other","id":"x"}`, `{"type":"new-task"}`} {
		_, err := Decode(payload)
		assert.ErrorIs(t, err, ErrInvalidPayload, payload)
	}
	_, err := Descriptor{Kind: "x", ID: "y"}.Encode()
	assert.ErrorIs(t, err, ErrInvalidPayload)
}

type fixture struct {
	store  *store.Store
	taskID string
}

func newFixture(t *testing.T) fixture {
	t.Helper()
	ctx := context.Background()
	s := store.New()
	for _, id := range []string{"E1", "E2"} {
		_, err := s.AddEmployee(ctx, &structs.EmployeeBody{ID: id, FirstName: "F" + id, LastName: "L", WarehouseCode: "WH", IsActive: true})
		require.NoError(t, err)
	}
	task, err := s.AddTask(ctx, &structs.TaskBody{Name: "Briefing", IconName: "Sunrise", ColorClasses: "x"})
	require.NoError(t, err)
	return fixture{store: s, taskID: task.ID}
}

func TestDropNewTaskOnEmployeeCell(t *testing.T) {
	f := newFixture(t)
	res, err := MoveOrCreate(context.Background(), f.store, NewTask(f.taskID), Target{EmployeeID: "E1", Date: "2024-06-10"}, nil)
	require.NoError(t, err)
	assert.Equal(t, ActionCreated, res.Action)
	require.NotNil(t, res.Created)
	assert.Equal(t, "E1", res.Created.EmployeeID)
	assert.Equal(t, 8.0, res.Created.Hours)
}

func TestDropNewTaskOnDayCellIsPending(t *testing.T) {
	f := newFixture(t)
	res, err := MoveOrCreate(context.Background(), f.store, NewTask(f.taskID), Target{Date: "2024-06-10"}, nil)
	require.NoError(t, err)
	assert.Equal(t, ActionPending, res.Action)
	assert.Equal(t, &PendingAssignment{TaskID: f.taskID, Date: "2024-06-10", TaskName: "Briefing"}, res.Pending)
	assert.Empty(t, f.store.Snapshot().ScheduledTasks)

	_, err = MoveOrCreate(context.Background(), f.store, NewTask("ghost"), Target{Date: "2024-06-10"}, nil)
	assert.ErrorIs(t, err, ecode.ErrNotFound)
}

func TestDropScheduledTaskMovesSelection(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	a, _ := f.store.ScheduleTask(ctx, "E1", f.taskID, "2024-06-10")
	b, _ := f.store.ScheduleTask(ctx, "E1", f.taskID, "2024-06-11")
	c, _ := f.store.ScheduleTask(ctx, "E1", f.taskID, "2024-06-12")

	res, err := MoveOrCreate(ctx, f.store, ScheduledTask(a.ID), Target{EmployeeID: "E2", Date: "2024-06-14"}, []string{a.ID, b.ID})
	require.NoError(t, err)
	assert.Equal(t, ActionMoved, res.Action)
	assert.Equal(t, 2, res.Moved)

	untouched, _ := f.store.ScheduledTask(c.ID)
	assert.Equal(t, "E1", untouched.EmployeeID)

	// dragging an unselected task moves only that task
	res, err = MoveOrCreate(ctx, f.store, ScheduledTask(c.ID), Target{Date: "2024-06-20"}, []string{a.ID})
	require.NoError(t, err)
	assert.Equal(t, 1, res.Moved)
	moved, _ := f.store.ScheduledTask(c.ID)
	assert.Equal(t, "E1", moved.EmployeeID)
	assert.Equal(t, "2024-06-20", moved.Date)
}

func TestDropWithoutTargetIsNoop(t *testing.T) {
	f := newFixture(t)
	before := f.store.Snapshot()
	res, err := MoveOrCreate(context.Background(), f.store, NewTask(f.taskID), Target{EmployeeID: "E1"}, nil)
	require.NoError(t, err)
	assert.Equal(t, ActionNone, res.Action)

	res, err = MoveOrCreate(context.Background(), f.store, ScheduledTask("ghost"), Target{Date: "2024-06-10"}, nil)
	require.NoError(t, err)
	assert.Equal(t, ActionNone, res.Action)
	assert.Equal(t, before, f.store.Snapshot())
}
