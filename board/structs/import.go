package structs

import (
	"fmt"
	"slices"
)

// EmployeeRow is one parsed employee row handed to a batch import.
type EmployeeRow struct {
	Line          int
	ID            string
	FirstName     string
	LastName      string
	WarehouseCode string
	IsActive      bool
	CreatedAt     string
}

// ScheduledTaskRow is one parsed schedule row handed to a batch import.
// Employee is resolved by id and task by name.
type ScheduledTaskRow struct {
	Line       int
	Date       string
	EmployeeID string
	TaskName   string
	Status     string
	Hours      string
	Tags       []string
}

// RowError describes a row that was rejected or needed a fallback.
type RowError struct {
	Line    int    `json:"line"`
	ID      string `json:"id,omitempty"`
	Message string `json:"message"`
}

func (e RowError) String() string {
	if e.ID != "" {
		return fmt.Sprintf("row %d (%s): %s", e.Line, e.ID, e.Message)
	}
	return fmt.Sprintf("row %d: %s", e.Line, e.Message)
}

// ImportReport summarises a batch import.
type ImportReport struct {
	Added      int        `json:"added"`
	Skipped    int        `json:"skipped"`
	Errors     int        `json:"errors"`
	RowErrors  []RowError `json:"row_errors,omitempty"`
	Duplicates []RowError `json:"duplicates,omitempty"`
	Warnings   []RowError `json:"warnings,omitempty"`
}

// AddError records a rejected row
func (r *ImportReport) AddError(line int, id, msg string) {
	r.Errors++
	r.RowErrors = append(r.RowErrors, RowError{Line: line, ID: id, Message: msg})
}

// AddDuplicate records a row skipped for an id collision
func (r *ImportReport) AddDuplicate(line int, id, msg string) {
	r.Skipped++
	r.Duplicates = append(r.Duplicates, RowError{Line: line, ID: id, Message: msg})
}

// AddWarning records a non fatal problem on an accepted row
func (r *ImportReport) AddWarning(line int, id, msg string) {
	r.Warnings = append(r.Warnings, RowError{Line: line, ID: id, Message: msg})
}

// Merge adds the counts and row messages of other into r
func (r *ImportReport) Merge(other *ImportReport) {
	if other == nil {
		return
	}
	r.Added += other.Added
	r.Skipped += other.Skipped
	r.Errors += other.Errors
	r.RowErrors = append(r.RowErrors, other.RowErrors...)
	r.Duplicates = append(r.Duplicates, other.Duplicates...)
	r.Warnings = append(r.Warnings, other.Warnings...)
	slices.SortStableFunc(r.RowErrors, byLine)
	slices.SortStableFunc(r.Duplicates, byLine)
	slices.SortStableFunc(r.Warnings, byLine)
}

func byLine(a, b RowError) int { return a.Line - b.Line }

// Summary returns the completion message shown after an import
func (r *ImportReport) Summary(noun string) string {
	return fmt.Sprintf("%d %s imported. %d skipped (duplicates). %d rows had errors.", r.Added, noun, r.Skipped, r.Errors)
}
