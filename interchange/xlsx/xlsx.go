// Package xlsx writes and reads board data as spreadsheet workbooks.
package xlsx

import (
	"context"
	"fmt"
	"io"

	"github.com/ncobase/taskboard/board/query"
	"github.com/ncobase/taskboard/board/store"
	"github.com/ncobase/taskboard/board/structs"
	"github.com/ncobase/taskboard/interchange"
	"github.com/ncobase/taskboard/types"
	"github.com/xuri/excelize/v2"
)

// Sheet names
const (
	EmployeesSheet = "Employees"
	ScheduleSheet  = "Schedule"
)

func writeSheet(f *excelize.File, sheet string, header []string, rows [][]string) error {
	if idx, _ := f.GetSheetIndex(sheet); idx < 0 {
		if _, err := f.NewSheet(sheet); err != nil {
			return err
		}
	}

	style, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return err
	}
	if err := setRow(f, sheet, 1, header); err != nil {
		return err
	}
	last, err := excelize.CoordinatesToCellName(len(header), 1)
	if err != nil {
		return err
	}
	if err := f.SetCellStyle(sheet, "A1", last, style); err != nil {
		return err
	}
	for i, row := range rows {
		if err := setRow(f, sheet, i+2, row); err != nil {
			return err
		}
	}
	return nil
}

func setRow(f *excelize.File, sheet string, n int, cells []string) error {
	cell, err := excelize.CoordinatesToCellName(1, n)
	if err != nil {
		return err
	}
	values := make([]any, len(cells))
	for i, c := range cells {
		values[i] = c
	}
	return f.SetSheetRow(sheet, cell, &values)
}

// newWorkbook returns a file whose only sheet is named sheet
func newWorkbook(sheet string) (*excelize.File, error) {
	f := excelize.NewFile()
	if err := f.SetSheetName(f.GetSheetName(0), sheet); err != nil {
		_ = f.Close()
		return nil, err
	}
	return f, nil
}

func write(w io.Writer, sheet string, header []string, rows [][]string) error {
	f, err := newWorkbook(sheet)
	if err != nil {
		return err
	}
	defer func() { _ = f.Close() }()

	if err := writeSheet(f, sheet, header, rows); err != nil {
		return fmt.Errorf("write %s sheet: %w", sheet, err)
	}
	_, err = f.WriteTo(w)
	return err
}

// ExportEmployees writes a workbook with one Employees sheet
func ExportEmployees(w io.Writer, snap *store.Snapshot, timeLayout string) error {
	if timeLayout == "" {
		timeLayout = types.DefaultLayout24h
	}
	return write(w, EmployeesSheet, interchange.EmployeeHeader, interchange.EmployeeTable(snap, timeLayout))
}

// ExportSchedule writes a workbook with one Schedule sheet filtered by f
func ExportSchedule(w io.Writer, snap *store.Snapshot, f query.Filter) error {
	return write(w, ScheduleSheet, interchange.ScheduleHeader, interchange.ScheduleTable(snap, f))
}

// ExportBoard writes both sheets into one workbook
func ExportBoard(w io.Writer, snap *store.Snapshot, f query.Filter, timeLayout string) error {
	if timeLayout == "" {
		timeLayout = types.DefaultLayout24h
	}
	wb, err := newWorkbook(EmployeesSheet)
	if err != nil {
		return err
	}
	defer func() { _ = wb.Close() }()

	if err := writeSheet(wb, EmployeesSheet, interchange.EmployeeHeader, interchange.EmployeeTable(snap, timeLayout)); err != nil {
		return err
	}
	if err := writeSheet(wb, ScheduleSheet, interchange.ScheduleHeader, interchange.ScheduleTable(snap, f)); err != nil {
		return err
	}
	_, err = wb.WriteTo(w)
	return err
}

// readSheet returns the rows of sheet, or of the first sheet when it is absent
func readSheet(r io.Reader, sheet string) ([][]string, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, err
	}
	defer func() { _ = f.Close() }()

	if idx, _ := f.GetSheetIndex(sheet); idx < 0 {
		sheet = f.GetSheetName(0)
	}
	if sheet == "" {
		return nil, interchange.ErrEmptyInput
	}
	return f.GetRows(sheet)
}

func parse(r io.Reader, sheet string, header []string) ([][]string, []int, *structs.ImportReport, error) {
	rows, err := readSheet(r, sheet)
	if err != nil {
		return nil, nil, nil, err
	}
	// GetRows leaves trailing empty cells out
	for len(rows) > 0 && len(rows[0]) == 0 {
		rows = rows[1:]
	}
	if len(rows) == 0 {
		return nil, nil, nil, interchange.ErrEmptyInput
	}
	if err := interchange.CheckHeader(rows[0], header); err != nil {
		return nil, nil, nil, err
	}

	report := &structs.ImportReport{}
	var (
		valid [][]string
		lines []int
	)
	for i, row := range rows[1:] {
		line := i + 2
		if len(row) == 0 {
			continue
		}
		if len(row) > len(header) {
			report.AddError(line, row[0], interchange.ColumnMismatch(len(header), len(row)))
			continue
		}
		padded := make([]string, len(header))
		copy(padded, row)
		valid = append(valid, padded)
		lines = append(lines, line)
	}
	return valid, lines, report, nil
}

// ImportEmployees reads the Employees sheet and applies the rows in one batch
func ImportEmployees(ctx context.Context, s *store.Store, r io.Reader) (*structs.ImportReport, error) {
	rows, lines, report, err := parse(r, EmployeesSheet, interchange.EmployeeHeader)
	if err != nil {
		return nil, fmt.Errorf("parse employees: %w", err)
	}
	parsed := make([]structs.EmployeeRow, len(rows))
	for i, row := range rows {
		parsed[i] = interchange.EmployeeRow(lines[i], row)
	}
	report.Merge(s.ImportEmployees(ctx, parsed))
	return report, nil
}

// ImportSchedule reads the Schedule sheet and applies the rows in one batch
func ImportSchedule(ctx context.Context, s *store.Store, r io.Reader) (*structs.ImportReport, error) {
	rows, lines, report, err := parse(r, ScheduleSheet, interchange.ScheduleHeader)
	if err != nil {
		return nil, fmt.Errorf("parse schedule: %w", err)
	}
	parsed := make([]structs.ScheduledTaskRow, len(rows))
	for i, row := range rows {
		parsed[i] = interchange.ScheduledTaskRow(lines[i], row)
	}
	report.Merge(s.ImportScheduledTasks(ctx, parsed))
	return report, nil
}
