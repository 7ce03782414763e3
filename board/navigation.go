package board

import (
	"time"

	"github.com/ncobase/taskboard/board/calendar"
	"github.com/ncobase/taskboard/board/query"
	"github.com/ncobase/taskboard/board/structs"
	"github.com/ncobase/taskboard/types"
)

// Filter returns the active filter
func (b *Board) Filter() query.Filter { return b.filter }

// SetWarehouseFilter filters by warehouse, empty shows every warehouse
func (b *Board) SetWarehouseFilter(code string) {
	b.filter.WarehouseCode = code
}

// SetEmployeeFilter filters by employee, empty shows every employee
func (b *Board) SetEmployeeFilter(id string) {
	b.filter.EmployeeID = id
}

// Calendar returns the navigation state
func (b *Board) Calendar() *calendar.Calendar { return b.calendar }

// SetView switches between weekly and monthly layouts
func (b *Board) SetView(v calendar.View) {
	if b.calendar.SetView(v) {
		b.selection.Clear()
	}
}

// Prev moves one period back
func (b *Board) Prev() {
	b.calendar.Prev()
	b.selection.Clear()
}

// Next moves one period forward
func (b *Board) Next() {
	b.calendar.Next()
	b.selection.Clear()
}

// Today moves to the period containing today
func (b *Board) Today() {
	b.calendar.Today(b.clock())
	b.selection.Clear()
}

// SetDate moves to the period containing d
func (b *Board) SetDate(d time.Time) {
	b.calendar.SetDate(d)
	b.selection.Clear()
}

// OpenDay drills from a monthly day cell into its week
func (b *Board) OpenDay(d time.Time) {
	b.calendar.DrillInto(d)
	b.selection.Clear()
}

// EmployeesToRender returns the board rows under the active filter
func (b *Board) EmployeesToRender() []structs.Employee {
	return query.EmployeesToRender(b.store.Snapshot(), b.filter)
}

// WarehouseCodes returns the warehouse filter options
func (b *Board) WarehouseCodes() []string {
	return query.UniqueWarehouseCodes(b.store.Snapshot())
}

// TasksForCell returns the scheduled tasks of a weekly cell
func (b *Board) TasksForCell(employeeID string, day time.Time) []structs.ScheduledTask {
	return query.TasksForCell(b.store.Snapshot(), employeeID, types.FormatDate(day))
}

// TasksForDay returns the scheduled tasks of a monthly day cell under the active filter
func (b *Board) TasksForDay(day time.Time) []structs.ScheduledTask {
	return query.TasksForDay(b.store.Snapshot(), types.FormatDate(day), b.filter)
}

// VisibleHours sums scheduled hours per employee over the displayed period
func (b *Board) VisibleHours() map[string]float64 {
	from, to := b.calendar.VisibleRange()
	return query.HoursByEmployee(b.store.Snapshot(), b.filter, from, to)
}
