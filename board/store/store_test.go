package store

import (
	"context"
	"fmt"
	"math"
	"testing"
	"time"

	"github.com/ncobase/taskboard/board/structs"
	"github.com/ncobase/taskboard/ecode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var fixedNow = time.Date(2024, 6, 10, 9, 30, 0, 0, time.Local)

func sequentialIDs(prefix string) func() string {
	n := 0
	return func() string {
		n++
		return fmt.Sprintf("%s%d", prefix, n)
	}
}

func newTestStore(opts ...Option) *Store {
	base := []Option{
		WithClock(func() time.Time { return fixedNow }),
		WithIDGenerator(sequentialIDs("T")),
	}
	return New(append(base, opts...)...)
}

func hours(h float64) *float64 { return &h }

func addJane(t *testing.T, s *Store) {
	t.Helper()
	_, err := s.AddEmployee(context.Background(), &structs.EmployeeBody{
		ID: "E1", FirstName: "Jane", LastName: "Doe", WarehouseCode: "WH1", IsActive: true,
	})
	require.NoError(t, err)
}

func TestJaneDoeScenario(t *testing.T) {
	ctx := context.Background()
	s := newTestStore()
	addJane(t, s)

	task, err := s.AddTask(ctx, &structs.TaskBody{Name: "Briefing", IconName: "Sunrise", ColorClasses: "x", DefaultHours: hours(1)})
	require.NoError(t, err)
	assert.Equal(t, "T1", task.ID)

	st, err := s.ScheduleTask(ctx, "E1", "T1", "2024-06-10")
	require.NoError(t, err)
	assert.Equal(t, 1.0, st.Hours)
	assert.Equal(t, structs.StatusScheduled, st.Status)
	assert.Empty(t, st.Tags)
	assert.NotNil(t, st.Tags)

	assert.True(t, s.DeleteEmployee(ctx, "E1"))
	snap := s.Snapshot()
	assert.Empty(t, snap.ScheduledTasks)
	assert.Empty(t, snap.Employees)
	assert.Len(t, snap.Tasks, 1)
}

func TestAddEmployee(t *testing.T) {
	ctx := context.Background()

	t.Run("sets created at from clock", func(t *testing.T) {
		s := newTestStore()
		addJane(t, s)
		e, ok := s.Employee("E1")
		require.True(t, ok)
		assert.Equal(t, fixedNow, e.CreatedAt)
		assert.Equal(t, "Jane Doe", e.FullName())
	})

	t.Run("duplicate leaves store unchanged", func(t *testing.T) {
		s := newTestStore()
		addJane(t, s)
		before := s.Snapshot()

		_, err := s.AddEmployee(ctx, &structs.EmployeeBody{ID: "E1", FirstName: "Other", LastName: "Person", WarehouseCode: "WH9"})
		require.Error(t, err)
		assert.ErrorIs(t, err, ecode.ErrDuplicateID)

		var dup *ecode.DuplicateIDError
		require.ErrorAs(t, err, &dup)
		assert.Equal(t, "E1", dup.ID)
		assert.Equal(t, before, s.Snapshot())
	})

	t.Run("missing fields", func(t *testing.T) {
		s := newTestStore()
		_, err := s.AddEmployee(ctx, &structs.EmployeeBody{ID: " ", FirstName: "A"})
		require.ErrorIs(t, err, ecode.ErrValidation)

		var verr *ecode.ValidationError
		require.ErrorAs(t, err, &verr)
		assert.Contains(t, verr.Fields, "id")
		assert.Contains(t, verr.Fields, "last_name")
		assert.Contains(t, verr.Fields, "warehouse_code")
		assert.NotContains(t, verr.Fields, "first_name")

		n, _, _ := s.Counts()
		assert.Zero(t, n)
	})

	t.Run("nil body", func(t *testing.T) {
		s := newTestStore()
		_, err := s.AddEmployee(ctx, nil)
		assert.ErrorIs(t, err, ecode.ErrValidation)
	})
}

func TestUpdateEmployee(t *testing.T) {
	ctx := context.Background()
	s := newTestStore()
	addJane(t, s)

	inactive := false
	code := "WH2"
	e, err := s.UpdateEmployee(ctx, "E1", &structs.UpdateEmployeeBody{WarehouseCode: &code, IsActive: &inactive})
	require.NoError(t, err)
	assert.Equal(t, "WH2", e.WarehouseCode)
	assert.False(t, e.IsActive)
	assert.Equal(t, "Jane", e.FirstName)
	assert.Equal(t, fixedNow, e.CreatedAt)

	empty := "  "
	_, err = s.UpdateEmployee(ctx, "E1", &structs.UpdateEmployeeBody{FirstName: &empty})
	assert.ErrorIs(t, err, ecode.ErrValidation)
	got, _ := s.Employee("E1")
	assert.Equal(t, "Jane", got.FirstName)

	_, err = s.UpdateEmployee(ctx, "nope", &structs.UpdateEmployeeBody{})
	assert.ErrorIs(t, err, ecode.ErrNotFound)
}

func TestDeleteEmployeeIsIdempotent(t *testing.T) {
	ctx := context.Background()
	s := newTestStore()
	addJane(t, s)

	assert.True(t, s.DeleteEmployee(ctx, "E1"))
	assert.False(t, s.DeleteEmployee(ctx, "E1"))
	assert.False(t, s.DeleteEmployee(ctx, "missing"))
}

func TestTasks(t *testing.T) {
	ctx := context.Background()

	t.Run("default hours", func(t *testing.T) {
		s := newTestStore()
		task, err := s.AddTask(ctx, &structs.TaskBody{Name: "Call", IconName: "Phone", ColorClasses: "c"})
		require.NoError(t, err)
		assert.Equal(t, 8.0, task.DefaultHours)
	})

	t.Run("configured default hours", func(t *testing.T) {
		s := newTestStore(WithHours(6, 1))
		task, err := s.AddTask(ctx, &structs.TaskBody{Name: "Call", IconName: "Phone", ColorClasses: "c"})
		require.NoError(t, err)
		assert.Equal(t, 6.0, task.DefaultHours)
		assert.Equal(t, 1.0, s.MinHours())

		_, err = s.AddTask(ctx, &structs.TaskBody{Name: "Call", IconName: "Phone", ColorClasses: "c", DefaultHours: hours(0.75)})
		assert.ErrorIs(t, err, ecode.ErrValidation)
	})

	t.Run("minimum hours cannot be lowered", func(t *testing.T) {
		for _, min := range []float64{0.25, 0, -1, math.NaN(), math.Inf(1)} {
			s := newTestStore(WithHours(8, min))
			assert.Equal(t, 0.5, s.MinHours(), "min %v", min)
		}
		s := newTestStore(WithHours(math.Inf(1), 0.25))
		assert.Equal(t, 8.0, s.DefaultTaskHours())

		_, err := s.AddTask(ctx, &structs.TaskBody{Name: "Call", IconName: "Phone", ColorClasses: "c", DefaultHours: hours(0.25)})
		assert.ErrorIs(t, err, ecode.ErrValidation)
	})

	t.Run("non finite default hours", func(t *testing.T) {
		s := newTestStore()
		for _, h := range []float64{math.NaN(), math.Inf(1), math.Inf(-1)} {
			_, err := s.AddTask(ctx, &structs.TaskBody{Name: "Call", IconName: "Phone", ColorClasses: "c", DefaultHours: hours(h)})
			require.ErrorIs(t, err, ecode.ErrValidation)
			var verr *ecode.ValidationError
			require.ErrorAs(t, err, &verr)
			msg, _ := verr.Field("default_hours")
			assert.Equal(t, "default_hours invalid", msg)
		}
		assert.Empty(t, s.Snapshot().Tasks)
	})

	t.Run("hours below minimum", func(t *testing.T) {
		s := newTestStore()
		_, err := s.AddTask(ctx, &structs.TaskBody{Name: "Call", IconName: "Phone", ColorClasses: "c", DefaultHours: hours(0.25)})
		require.ErrorIs(t, err, ecode.ErrValidation)
		var verr *ecode.ValidationError
		require.ErrorAs(t, err, &verr)
		msg, ok := verr.Field("default_hours")
		assert.True(t, ok)
		assert.Equal(t, "default_hours must be at least 0.5", msg)
	})

	t.Run("update keeps hours unless set", func(t *testing.T) {
		s := newTestStore()
		task, err := s.AddTask(ctx, &structs.TaskBody{Name: "Call", IconName: "Phone", ColorClasses: "c", DefaultHours: hours(2)})
		require.NoError(t, err)

		updated, err := s.UpdateTask(ctx, task.ID, &structs.TaskBody{Name: "Client Call", IconName: "Phone", ColorClasses: "d"})
		require.NoError(t, err)
		assert.Equal(t, "Client Call", updated.Name)
		assert.Equal(t, 2.0, updated.DefaultHours)

		updated, err = s.UpdateTask(ctx, task.ID, &structs.TaskBody{Name: "Client Call", IconName: "Phone", ColorClasses: "d", DefaultHours: hours(3)})
		require.NoError(t, err)
		assert.Equal(t, 3.0, updated.DefaultHours)

		_, err = s.UpdateTask(ctx, "missing", &structs.TaskBody{Name: "x", IconName: "y", ColorClasses: "z"})
		assert.ErrorIs(t, err, ecode.ErrNotFound)
	})

	t.Run("find by name", func(t *testing.T) {
		s := newTestStore()
		task, err := s.AddTask(ctx, &structs.TaskBody{Name: "Client Call", IconName: "Phone", ColorClasses: "c"})
		require.NoError(t, err)
		found, ok := s.TaskByName(" client CALL ")
		require.True(t, ok)
		assert.Equal(t, task.ID, found.ID)
		_, ok = s.TaskByName("other")
		assert.False(t, ok)
	})
}

func TestDeleteTaskCascades(t *testing.T) {
	ctx := context.Background()
	s := newTestStore()
	addJane(t, s)
	keep, _ := s.AddTask(ctx, &structs.TaskBody{Name: "Keep", IconName: "i", ColorClasses: "c"})
	drop, _ := s.AddTask(ctx, &structs.TaskBody{Name: "Drop", IconName: "i", ColorClasses: "c"})

	kept, err := s.ScheduleTask(ctx, "E1", keep.ID, "2024-06-10")
	require.NoError(t, err)
	_, err = s.ScheduleTask(ctx, "E1", drop.ID, "2024-06-10")
	require.NoError(t, err)
	_, err = s.ScheduleTask(ctx, "E1", drop.ID, "2024-06-11")
	require.NoError(t, err)

	var changes []Change
	s.Subscribe(func(c Change) { changes = append(changes, c) })

	assert.True(t, s.DeleteTask(ctx, drop.ID))
	snap := s.Snapshot()
	require.Len(t, snap.ScheduledTasks, 1)
	assert.Equal(t, kept.ID, snap.ScheduledTasks[0].ID)

	require.Len(t, changes, 1)
	assert.Equal(t, OpTaskDeleted, changes[0].Op)
	assert.Len(t, changes[0].Cascaded, 2)

	assert.False(t, s.DeleteTask(ctx, drop.ID))
}

func TestScheduleTaskErrors(t *testing.T) {
	ctx := context.Background()
	s := newTestStore()
	addJane(t, s)
	task, _ := s.AddTask(ctx, &structs.TaskBody{Name: "Briefing", IconName: "i", ColorClasses: "c"})

	tests := []struct {
		name       string
		employeeID string
		taskID     string
		date       string
		want       error
	}{
		{"unknown task", "E1", "nope", "2024-06-10", ecode.ErrNotFound},
		{"unknown employee", "E9", task.ID, "2024-06-10", ecode.ErrNotFound},
		{"malformed date", "E1", task.ID, "2024-6-10", ecode.ErrValidation},
		{"impossible date", "E1", task.ID, "2024-02-30", ecode.ErrValidation},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := s.ScheduleTask(ctx, tt.employeeID, tt.taskID, tt.date)
			assert.ErrorIs(t, err, tt.want)
			_, _, n := s.Counts()
			assert.Zero(t, n)
		})
	}
}

func TestMoveScheduledTasks(t *testing.T) {
	ctx := context.Background()
	s := newTestStore()
	addJane(t, s)
	_, err := s.AddEmployee(ctx, &structs.EmployeeBody{ID: "E2", FirstName: "John", LastName: "Roe", WarehouseCode: "WH2", IsActive: true})
	require.NoError(t, err)
	task, _ := s.AddTask(ctx, &structs.TaskBody{Name: "Briefing", IconName: "i", ColorClasses: "c"})
	a, _ := s.ScheduleTask(ctx, "E1", task.ID, "2024-06-10")
	b, _ := s.ScheduleTask(ctx, "E1", task.ID, "2024-06-11")

	n, err := s.MoveScheduledTasks(ctx, []string{a.ID, "ghost", b.ID}, "E2", "2024-06-12")
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	moved, _ := s.ScheduledTask(a.ID)
	assert.Equal(t, "E2", moved.EmployeeID)
	assert.Equal(t, "2024-06-12", moved.Date)

	// index follows the move so the cascade reaches moved tasks
	s.DeleteEmployee(ctx, "E2")
	_, _, left := s.Counts()
	assert.Zero(t, left)
}

func TestMoveKeepsEmployeeWhenTargetEmpty(t *testing.T) {
	ctx := context.Background()
	s := newTestStore()
	addJane(t, s)
	task, _ := s.AddTask(ctx, &structs.TaskBody{Name: "Briefing", IconName: "i", ColorClasses: "c"})
	a, _ := s.ScheduleTask(ctx, "E1", task.ID, "2024-06-10")

	n, err := s.MoveScheduledTasks(ctx, []string{a.ID}, "", "2024-07-01")
	require.NoError(t, err)
	assert.Equal(t, 1, n)
	moved, _ := s.ScheduledTask(a.ID)
	assert.Equal(t, "E1", moved.EmployeeID)
	assert.Equal(t, "2024-07-01", moved.Date)
}

func TestMoveToUnknownEmployeeIsAtomic(t *testing.T) {
	ctx := context.Background()
	s := newTestStore()
	addJane(t, s)
	task, _ := s.AddTask(ctx, &structs.TaskBody{Name: "Briefing", IconName: "i", ColorClasses: "c"})
	a, _ := s.ScheduleTask(ctx, "E1", task.ID, "2024-06-10")
	before := s.Snapshot()

	n, err := s.MoveScheduledTasks(ctx, []string{a.ID}, "E9", "2024-06-12")
	assert.ErrorIs(t, err, ecode.ErrNotFound)
	assert.Zero(t, n)
	assert.Equal(t, before, s.Snapshot())
}

func TestUpdateScheduledTaskDetails(t *testing.T) {
	ctx := context.Background()
	s := newTestStore()
	addJane(t, s)
	task, _ := s.AddTask(ctx, &structs.TaskBody{Name: "Briefing", IconName: "i", ColorClasses: "c", DefaultHours: hours(2)})
	st, _ := s.ScheduleTask(ctx, "E1", task.ID, "2024-06-10")

	updated, err := s.UpdateScheduledTaskDetails(ctx, st.ID, 3.5, []string{" urgent ", "", "dock", "urgent", "Urgent"})
	require.NoError(t, err)
	assert.Equal(t, 3.5, updated.Hours)
	assert.Equal(t, []string{"urgent", "dock", "Urgent"}, updated.Tags)

	_, err = s.UpdateScheduledTaskDetails(ctx, st.ID, 0.25, []string{"late"})
	assert.ErrorIs(t, err, ecode.ErrValidation)
	got, _ := s.ScheduledTask(st.ID)
	assert.Equal(t, 3.5, got.Hours)
	assert.Equal(t, []string{"urgent", "dock", "Urgent"}, got.Tags)

	for _, h := range []float64{math.NaN(), math.Inf(1)} {
		_, err = s.UpdateScheduledTaskDetails(ctx, st.ID, h, nil)
		assert.ErrorIs(t, err, ecode.ErrValidation)
	}
	got, _ = s.ScheduledTask(st.ID)
	assert.Equal(t, 3.5, got.Hours)

	_, err = s.UpdateScheduledTaskDetails(ctx, "ghost", 1, nil)
	assert.ErrorIs(t, err, ecode.ErrNotFound)
}

func TestUpdateScheduledTaskStatus(t *testing.T) {
	ctx := context.Background()
	s := newTestStore()
	addJane(t, s)
	task, _ := s.AddTask(ctx, &structs.TaskBody{Name: "Briefing", IconName: "i", ColorClasses: "c"})
	st, _ := s.ScheduleTask(ctx, "E1", task.ID, "2024-06-10")

	updated, err := s.UpdateScheduledTaskStatus(ctx, st.ID, structs.StatusInProgress)
	require.NoError(t, err)
	assert.Equal(t, structs.StatusInProgress, updated.Status)

	_, err = s.UpdateScheduledTaskStatus(ctx, st.ID, "Paused")
	assert.ErrorIs(t, err, ecode.ErrValidation)
	_, err = s.UpdateScheduledTaskStatus(ctx, "ghost", structs.StatusCompleted)
	assert.ErrorIs(t, err, ecode.ErrNotFound)
}

func TestDeleteScheduledTask(t *testing.T) {
	ctx := context.Background()
	s := newTestStore()
	addJane(t, s)
	task, _ := s.AddTask(ctx, &structs.TaskBody{Name: "Briefing", IconName: "i", ColorClasses: "c"})
	st, _ := s.ScheduleTask(ctx, "E1", task.ID, "2024-06-10")

	assert.True(t, s.DeleteScheduledTask(ctx, st.ID))
	assert.False(t, s.DeleteScheduledTask(ctx, st.ID))
	// cascade over an emptied index is a no-op
	assert.True(t, s.DeleteEmployee(ctx, "E1"))
}

func TestSnapshotIsACopy(t *testing.T) {
	ctx := context.Background()
	s := newTestStore()
	addJane(t, s)
	task, _ := s.AddTask(ctx, &structs.TaskBody{Name: "Briefing", IconName: "i", ColorClasses: "c"})
	st, _ := s.ScheduleTask(ctx, "E1", task.ID, "2024-06-10")
	_, err := s.UpdateScheduledTaskDetails(ctx, st.ID, 1, []string{"a"})
	require.NoError(t, err)

	snap := s.Snapshot()
	snap.Employees[0].FirstName = "Changed"
	snap.ScheduledTasks[0].Tags[0] = "changed"

	e, _ := s.Employee("E1")
	assert.Equal(t, "Jane", e.FirstName)
	got, _ := s.ScheduledTask(st.ID)
	assert.Equal(t, []string{"a"}, got.Tags)
}

func TestSubscribeReceivesChanges(t *testing.T) {
	ctx := context.Background()
	s := newTestStore()

	var ops []Op
	stop := s.Subscribe(func(c Change) {
		// the lock is released before subscribers run
		s.Snapshot()
		ops = append(ops, c.Op)
	})
	addJane(t, s)
	task, _ := s.AddTask(ctx, &structs.TaskBody{Name: "Briefing", IconName: "i", ColorClasses: "c"})
	_, _ = s.ScheduleTask(ctx, "E1", task.ID, "2024-06-10")
	_, _ = s.ScheduleTask(ctx, "E1", "ghost", "2024-06-10")
	stop()
	s.DeleteEmployee(ctx, "E1")

	assert.Equal(t, []Op{OpEmployeeAdded, OpTaskAdded, OpScheduledTaskAdded}, ops)
}

func TestSeed(t *testing.T) {
	s := newTestStore()
	s.Seed(context.Background())
	s.Seed(context.Background())

	snap := s.Snapshot()
	require.Len(t, snap.Employees, 3)
	require.Len(t, snap.Tasks, 3)
	assert.Equal(t, "emp001", snap.Employees[0].ID)
	assert.False(t, snap.Employees[2].IsActive)
	assert.Equal(t, "Morning Briefing", snap.Tasks[0].Name)
	assert.Equal(t, 8.0, snap.Tasks[0].DefaultHours)
}
