// Package interchange builds the tabular form of board data shared by the
// CSV and spreadsheet codecs.
package interchange

import (
	"cmp"
	"errors"
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/ncobase/taskboard/board/query"
	"github.com/ncobase/taskboard/board/store"
	"github.com/ncobase/taskboard/board/structs"
	"github.com/ncobase/taskboard/types"
)

// Column headers
var (
	EmployeeHeader = []string{"Employee ID", "First Name", "Last Name", "Warehouse Code", "Status", "Created At"}
	ScheduleHeader = []string{"Date", "Employee ID", "Employee First Name", "Employee Last Name", "Warehouse Code", "Task Name", "Task Status", "Hours", "Tags"}
)

// TagSeparator joins tags in a single cell
const TagSeparator = " | "

// Employee status labels
const (
	StatusActive   = "Active"
	StatusInactive = "Inactive"
)

var (
	// ErrEmptyInput is returned when there is no header row
	ErrEmptyInput = errors.New("input is empty")
	// ErrInvalidHeader is returned when the header row does not match
	ErrInvalidHeader = errors.New("invalid header")
)

// CheckHeader compares a header row with the expected columns case-insensitively and in order.
// A byte order mark before the first column is ignored.
func CheckHeader(got, want []string) error {
	ok := len(got) == len(want)
	for i := 0; ok && i < len(want); i++ {
		cell := got[i]
		if i == 0 {
			cell = strings.TrimPrefix(cell, "\uFEFF")
		}
		ok = strings.EqualFold(strings.TrimSpace(cell), want[i])
	}
	if !ok {
		return fmt.Errorf("%w: expected %q, got %q", ErrInvalidHeader, strings.Join(want, ","), strings.Join(got, ","))
	}
	return nil
}

// EmployeeTable returns one row per employee ordered by id.
// timeLayout is a pattern such as "yyyy-MM-dd HH:mm:ss".
func EmployeeTable(snap *store.Snapshot, timeLayout string) [][]string {
	employees := slices.Clone(snap.Employees)
	slices.SortStableFunc(employees, func(a, b structs.Employee) int {
		return cmp.Compare(a.ID, b.ID)
	})

	rows := make([][]string, 0, len(employees))
	for _, e := range employees {
		status := StatusInactive
		if e.IsActive {
			status = StatusActive
		}
		rows = append(rows, []string{
			e.ID,
			e.FirstName,
			e.LastName,
			e.WarehouseCode,
			status,
			types.FormatTime(e.CreatedAt, timeLayout),
		})
	}
	return rows
}

// ScheduleTable returns the scheduled tasks passing f ordered by date then employee id
func ScheduleTable(snap *store.Snapshot, f query.Filter) [][]string {
	tasks := query.ScheduledTasksFiltered(snap, f)
	slices.SortStableFunc(tasks, func(a, b structs.ScheduledTask) int {
		return cmp.Or(cmp.Compare(a.Date, b.Date), cmp.Compare(a.EmployeeID, b.EmployeeID))
	})

	rows := make([][]string, 0, len(tasks))
	for _, st := range tasks {
		e, _ := query.EmployeeByID(snap, st.EmployeeID)
		t, _ := query.TaskByID(snap, st.TaskID)
		status := st.Status
		if status == "" {
			status = structs.StatusScheduled
		}
		rows = append(rows, []string{
			st.Date,
			e.ID,
			e.FirstName,
			e.LastName,
			e.WarehouseCode,
			t.Name,
			string(status),
			FormatHours(st.Hours),
			strings.Join(st.Tags, TagSeparator),
		})
	}
	return rows
}

// FormatHours renders hours without trailing zeros
func FormatHours(h float64) string {
	return strconv.FormatFloat(h, 'f', -1, 64)
}

// SplitTags splits a tags cell on the separator bar
func SplitTags(cell string) []string {
	if strings.TrimSpace(cell) == "" {
		return nil
	}
	return structs.NormalizeTags(strings.Split(cell, "|"))
}

// EmployeeRow maps a data row to an import row, the caller has checked the column count
func EmployeeRow(line int, cells []string) structs.EmployeeRow {
	return structs.EmployeeRow{
		Line:          line,
		ID:            strings.TrimSpace(cells[0]),
		FirstName:     strings.TrimSpace(cells[1]),
		LastName:      strings.TrimSpace(cells[2]),
		WarehouseCode: strings.TrimSpace(cells[3]),
		IsActive:      strings.EqualFold(strings.TrimSpace(cells[4]), "active"),
		CreatedAt:     strings.TrimSpace(cells[5]),
	}
}

// ScheduledTaskRow maps a data row to an import row, the caller has checked the column count
func ScheduledTaskRow(line int, cells []string) structs.ScheduledTaskRow {
	return structs.ScheduledTaskRow{
		Line:       line,
		Date:       strings.TrimSpace(cells[0]),
		EmployeeID: strings.TrimSpace(cells[1]),
		TaskName:   strings.TrimSpace(cells[5]),
		Status:     strings.TrimSpace(cells[6]),
		Hours:      strings.TrimSpace(cells[7]),
		Tags:       SplitTags(cells[8]),
	}
}

// ColumnMismatch is the row error message for a wrong number of cells
func ColumnMismatch(want, got int) string {
	return fmt.Sprintf("expected %d columns, got %d", want, got)
}
