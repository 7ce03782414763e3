// Package query derives filtered views from a store snapshot.
// Functions never modify the snapshot they read.
package query

import (
	"slices"

	"github.com/ncobase/taskboard/board/store"
	"github.com/ncobase/taskboard/board/structs"
)

// Filter restricts views by warehouse and employee, empty fields match everything.
type Filter struct {
	WarehouseCode string `json:"warehouse_code,omitempty"`
	EmployeeID    string `json:"employee_id,omitempty"`
}

// IsZero reports whether no filter is set
func (f Filter) IsZero() bool {
	return f.WarehouseCode == "" && f.EmployeeID == ""
}

// ActiveEmployees returns the active employees in store order
func ActiveEmployees(snap *store.Snapshot) []structs.Employee {
	out := make([]structs.Employee, 0, len(snap.Employees))
	for _, e := range snap.Employees {
		if e.IsActive {
			out = append(out, e)
		}
	}
	return out
}

// EmployeesByWarehouse returns active employees of a warehouse, or all active employees for an empty code
func EmployeesByWarehouse(snap *store.Snapshot, code string) []structs.Employee {
	active := ActiveEmployees(snap)
	if code == "" {
		return active
	}
	out := active[:0]
	for _, e := range active {
		if e.WarehouseCode == code {
			out = append(out, e)
		}
	}
	return out
}

// ScheduledTasksFiltered returns scheduled tasks whose employee matches the filter.
// The warehouse filter is applied through the owning employee.
func ScheduledTasksFiltered(snap *store.Snapshot, f Filter) []structs.ScheduledTask {
	var warehouseOf map[string]string
	if f.WarehouseCode != "" {
		warehouseOf = make(map[string]string, len(snap.Employees))
		for _, e := range snap.Employees {
			warehouseOf[e.ID] = e.WarehouseCode
		}
	}

	out := make([]structs.ScheduledTask, 0, len(snap.ScheduledTasks))
	for _, st := range snap.ScheduledTasks {
		if f.EmployeeID != "" && st.EmployeeID != f.EmployeeID {
			continue
		}
		if warehouseOf != nil && warehouseOf[st.EmployeeID] != f.WarehouseCode {
			continue
		}
		out = append(out, st)
	}
	return out
}

// UniqueWarehouseCodes returns the distinct warehouse codes of all employees, sorted
func UniqueWarehouseCodes(snap *store.Snapshot) []string {
	codes := make([]string, 0, len(snap.Employees))
	for _, e := range snap.Employees {
		if e.WarehouseCode != "" {
			codes = append(codes, e.WarehouseCode)
		}
	}
	slices.Sort(codes)
	return slices.Compact(codes)
}

// EmployeesToRender returns the active employees shown as board rows under f
func EmployeesToRender(snap *store.Snapshot, f Filter) []structs.Employee {
	rows := EmployeesByWarehouse(snap, f.WarehouseCode)
	if f.EmployeeID == "" {
		return rows
	}
	return slices.DeleteFunc(rows, func(e structs.Employee) bool {
		return e.ID != f.EmployeeID
	})
}

// TasksForCell returns the scheduled tasks of one employee on one date
func TasksForCell(snap *store.Snapshot, employeeID, date string) []structs.ScheduledTask {
	var out []structs.ScheduledTask
	for _, st := range snap.ScheduledTasks {
		if st.EmployeeID == employeeID && st.Date == date {
			out = append(out, st)
		}
	}
	return out
}

// TasksForDay returns the scheduled tasks on date that pass f
func TasksForDay(snap *store.Snapshot, date string, f Filter) []structs.ScheduledTask {
	return slices.DeleteFunc(ScheduledTasksFiltered(snap, f), func(st structs.ScheduledTask) bool {
		return st.Date != date
	})
}

// TaskByID looks up a task in the snapshot
func TaskByID(snap *store.Snapshot, id string) (structs.Task, bool) {
	i := slices.IndexFunc(snap.Tasks, func(t structs.Task) bool { return t.ID == id })
	if i < 0 {
		return structs.Task{}, false
	}
	return snap.Tasks[i], true
}

// EmployeeByID looks up an employee in the snapshot
func EmployeeByID(snap *store.Snapshot, id string) (structs.Employee, bool) {
	i := slices.IndexFunc(snap.Employees, func(e structs.Employee) bool { return e.ID == id })
	if i < 0 {
		return structs.Employee{}, false
	}
	return snap.Employees[i], true
}

// HoursByEmployee sums scheduled hours per employee for the tasks passing f
// dated from..to inclusive. An empty bound is open.
func HoursByEmployee(snap *store.Snapshot, f Filter, from, to string) map[string]float64 {
	totals := make(map[string]float64)
	for _, st := range ScheduledTasksFiltered(snap, f) {
		if (from != "" && st.Date < from) || (to != "" && st.Date > to) {
			continue
		}
		totals[st.EmployeeID] += st.Hours
	}
	return totals
}
