package interchange

import (
	"testing"
	"time"

	"github.com/ncobase/taskboard/board/query"
	"github.com/ncobase/taskboard/board/store"
	"github.com/ncobase/taskboard/board/structs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleSnapshot() *store.Snapshot {
	created := time.Date(2024, 6, 1, 9, 30, 0, 0, time.Local)
	return &store.Snapshot{
		Employees: []structs.Employee{
			{ID: "E2", FirstName: "Bob", LastName: "Stone", WarehouseCode: "WH-B", CreatedAt: created},
			{ID: "E1", FirstName: "Ann", LastName: "Lee", WarehouseCode: "WH-A", CreatedAt: created, IsActive: true},
		},
		Tasks: []structs.Task{{ID: "t1", Name: "Picking", DefaultHours: 8}},
		ScheduledTasks: []structs.ScheduledTask{
			{ID: "s1", EmployeeID: "E2", TaskID: "t1", Date: "2024-06-11", Hours: 4, Tags: []string{"a", "b"}},
			{ID: "s2", EmployeeID: "E1", TaskID: "t1", Date: "2024-06-11", Status: structs.StatusCompleted, Hours: 2.5},
			{ID: "s3", EmployeeID: "E1", TaskID: "t1", Date: "2024-06-10", Status: structs.StatusInProgress, Hours: 8},
		},
	}
}

func TestEmployeeTableSortsByID(t *testing.T) {
	rows := EmployeeTable(sampleSnapshot(), "yyyy-MM-dd HH:mm:ss")
	require.Len(t, rows, 2)
	assert.Equal(t, []string{"E1", "Ann", "Lee", "WH-A", "Active", "2024-06-01 09:30:00"}, rows[0])
	assert.Equal(t, "Inactive", rows[1][4])
}

func TestScheduleTableOrderAndFilter(t *testing.T) {
	rows := ScheduleTable(sampleSnapshot(), query.Filter{})
	require.Len(t, rows, 3)
	assert.Equal(t, "2024-06-10", rows[0][0])
	assert.Equal(t, []string{"2024-06-11", "E1", "Ann", "Lee", "WH-A", "Picking", "Completed", "2.5", ""}, rows[1])
	assert.Equal(t, []string{"2024-06-11", "E2", "Bob", "Stone", "WH-B", "Picking", "Scheduled", "4", "a | b"}, rows[2])

	rows = ScheduleTable(sampleSnapshot(), query.Filter{WarehouseCode: "WH-B"})
	require.Len(t, rows, 1)
	assert.Equal(t, "E2", rows[0][1])
}

func TestCheckHeader(t *testing.T) {
	assert.NoError(t, CheckHeader([]string{"employee id", " First Name", "LAST NAME", "Warehouse Code", "Status", "Created At"}, EmployeeHeader))
	assert.NoError(t, CheckHeader([]string{"\uFEFFEmployee ID", "First Name", "Last Name", "Warehouse Code", "Status", "Created At"}, EmployeeHeader))
	assert.ErrorIs(t, CheckHeader([]string{"Employee ID", "First Name"}, EmployeeHeader), ErrInvalidHeader)
	assert.ErrorIs(t, CheckHeader([]string{"First Name", "Employee ID", "Last Name", "Warehouse Code", "Status", "Created At"}, EmployeeHeader), ErrInvalidHeader)
}

func TestRowMapping(t *testing.T) {
	e := EmployeeRow(3, []string{" E9 ", "Kim", "Park", "WH-C", "ACTIVE", ""})
	assert.Equal(t, 3, e.Line)
	assert.Equal(t, "E9", e.ID)
	assert.True(t, e.IsActive)

	st := ScheduledTaskRow(2, []string{"2024-06-10", "E1", "Ann", "Lee", "WH-A", "Picking", "In Progress", "", " x | | y | x "})
	assert.Equal(t, "Picking", st.TaskName)
	assert.Equal(t, "In Progress", st.Status)
	assert.Equal(t, "", st.Hours)
	assert.Equal(t, []string{"x", "y"}, st.Tags)
}

func TestFormatHours(t *testing.T) {
	assert.Equal(t, "8", FormatHours(8))
	assert.Equal(t, "0.5", FormatHours(0.5))
}

func TestFileName(t *testing.T) {
	now := time.Date(2024, 6, 10, 9, 30, 0, 0, time.Local)
	assert.Equal(t, "employees_export_20240610_093000.csv", FileName("employees", "csv", now))
	assert.Equal(t, "schedule_export_wh-a1_20240610_093000.xlsx", FileName("schedule", ".xlsx", now, "WH A1", ""))
}
