package query

import (
	"testing"

	"github.com/ncobase/taskboard/board/store"
	"github.com/ncobase/taskboard/board/structs"
	"github.com/stretchr/testify/assert"
)

func fixture() *store.Snapshot {
	return &store.Snapshot{
		Employees: []structs.Employee{
			{ID: "E1", FirstName: "Ann", WarehouseCode: "WH-B", IsActive: true},
			{ID: "E2", FirstName: "Bo", WarehouseCode: "WH-A", IsActive: true},
			{ID: "E3", FirstName: "Cy", WarehouseCode: "WH-B", IsActive: false},
			{ID: "E4", FirstName: "Di", WarehouseCode: "WH-C", IsActive: false},
		},
		Tasks: []structs.Task{
			{ID: "T1", Name: "Briefing"},
			{ID: "T2", Name: "Call"},
		},
		ScheduledTasks: []structs.ScheduledTask{
			{ID: "S1", EmployeeID: "E1", TaskID: "T1", Date: "2024-06-10", Hours: 2},
			{ID: "S2", EmployeeID: "E2", TaskID: "T2", Date: "2024-06-10", Hours: 1},
			{ID: "S3", EmployeeID: "E3", TaskID: "T1", Date: "2024-06-11", Hours: 4},
			{ID: "S4", EmployeeID: "E1", TaskID: "T2", Date: "2024-06-11", Hours: 3},
		},
	}
}

func ids[T any](items []T, id func(T) string) []string {
	out := make([]string, 0, len(items))
	for _, item := range items {
		out = append(out, id(item))
	}
	return out
}

func employeeIDs(es []structs.Employee) []string {
	return ids(es, func(e structs.Employee) string { return e.ID })
}

func scheduledIDs(sts []structs.ScheduledTask) []string {
	return ids(sts, func(st structs.ScheduledTask) string { return st.ID })
}

func TestEmployeeViews(t *testing.T) {
	snap := fixture()
	assert.Equal(t, []string{"E1", "E2"}, employeeIDs(ActiveEmployees(snap)))
	assert.Equal(t, []string{"E1", "E2"}, employeeIDs(EmployeesByWarehouse(snap, "")))
	assert.Equal(t, []string{"E1"}, employeeIDs(EmployeesByWarehouse(snap, "WH-B")))
	assert.Empty(t, EmployeesByWarehouse(snap, "WH-C"))
	assert.Equal(t, []string{"WH-A", "WH-B", "WH-C"}, UniqueWarehouseCodes(snap))
}

func TestScheduledTasksFiltered(t *testing.T) {
	snap := fixture()
	tests := []struct {
		name   string
		filter Filter
		want   []string
	}{
		{"no filter", Filter{}, []string{"S1", "S2", "S3", "S4"}},
		{"warehouse", Filter{WarehouseCode: "WH-B"}, []string{"S1", "S3", "S4"}},
		{"employee", Filter{EmployeeID: "E2"}, []string{"S2"}},
		{"both", Filter{WarehouseCode: "WH-B", EmployeeID: "E3"}, []string{"S3"}},
		{"disjoint", Filter{WarehouseCode: "WH-A", EmployeeID: "E1"}, []string{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, scheduledIDs(ScheduledTasksFiltered(snap, tt.filter)))
		})
	}
}

func TestRenderHelpers(t *testing.T) {
	snap := fixture()
	assert.Equal(t, []string{"E1"}, employeeIDs(EmployeesToRender(snap, Filter{EmployeeID: "E1"})))
	assert.Empty(t, EmployeesToRender(snap, Filter{EmployeeID: "E3"}))
	assert.Equal(t, []string{"S4"}, scheduledIDs(TasksForCell(snap, "E1", "2024-06-11")))
	assert.Equal(t, []string{"S1", "S2"}, scheduledIDs(TasksForDay(snap, "2024-06-10", Filter{})))
	assert.Equal(t, []string{"S4"}, scheduledIDs(TasksForDay(snap, "2024-06-11", Filter{EmployeeID: "E1"})))

	task, ok := TaskByID(snap, "T2")
	assert.True(t, ok)
	assert.Equal(t, "Call", task.Name)
	_, ok = TaskByID(snap, "T9")
	assert.False(t, ok)

	e, ok := EmployeeByID(snap, "E3")
	assert.True(t, ok)
	assert.Equal(t, "Cy", e.FirstName)

	assert.Equal(t, map[string]float64{"E1": 5, "E3": 4}, HoursByEmployee(snap, Filter{WarehouseCode: "WH-B"}, "", ""))
	assert.Equal(t, map[string]float64{"E1": 2, "E2": 1}, HoursByEmployee(snap, Filter{}, "", "2024-06-10"))
	assert.Equal(t, map[string]float64{"E1": 3}, HoursByEmployee(snap, Filter{EmployeeID: "E1"}, "2024-06-11", "2024-06-30"))
}

func TestViewsDoNotMutateSnapshot(t *testing.T) {
	snap := fixture()
	EmployeesToRender(snap, Filter{WarehouseCode: "WH-A", EmployeeID: "E2"})
	TasksForDay(snap, "2024-06-10", Filter{})
	assert.Equal(t, fixture(), snap)
}
