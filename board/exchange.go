package board

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/ncobase/taskboard/board/query"
	"github.com/ncobase/taskboard/board/structs"
	"github.com/ncobase/taskboard/interchange"
	"github.com/ncobase/taskboard/interchange/csv"
	"github.com/ncobase/taskboard/interchange/xlsx"
)

// Export formats
const (
	FormatCSV  = "csv"
	FormatXLSX = "xlsx"
)

// ErrNothingToExport is returned when an export would contain no rows
var ErrNothingToExport = errors.New("nothing to export")

// ErrUnknownFormat is returned for an unsupported export format
var ErrUnknownFormat = errors.New("unknown format")

func formatHours(h float64) string { return interchange.FormatHours(h) }

func (b *Board) csvOptions() []csv.Option {
	return []csv.Option{csv.FromConfig(b.cfg.CSV)}
}

func (b *Board) timeLayout() string {
	if b.cfg.CSV != nil {
		return b.cfg.CSV.TimeLayout
	}
	return ""
}

// ImportEmployeesCSV imports employees and reports every rejected,
// skipped or adjusted row followed by a summary.
func (b *Board) ImportEmployeesCSV(ctx context.Context, r io.Reader) (*structs.ImportReport, error) {
	ctx = action(ctx, "import_employees")
	report, err := csv.ImportEmployees(ctx, b.store, r, b.csvOptions()...)
	if err != nil {
		return nil, b.fail(ctx, "CSV Import Failed", err)
	}
	b.reportImport(ctx, report, employeesCSV)
	return report, nil
}

// ImportEmployeesXLSX imports employees from a workbook
func (b *Board) ImportEmployeesXLSX(ctx context.Context, r io.Reader) (*structs.ImportReport, error) {
	ctx = action(ctx, "import_employees")
	report, err := xlsx.ImportEmployees(ctx, b.store, r)
	if err != nil {
		return nil, b.fail(ctx, "XLSX Import Failed", err)
	}
	b.reportImport(ctx, report, employeesXLSX)
	return report, nil
}

// ImportScheduleCSV imports scheduled tasks
func (b *Board) ImportScheduleCSV(ctx context.Context, r io.Reader) (*structs.ImportReport, error) {
	ctx = action(ctx, "import_schedule")
	report, err := csv.ImportSchedule(ctx, b.store, r, b.csvOptions()...)
	if err != nil {
		return nil, b.fail(ctx, "CSV Import Failed", err)
	}
	b.reportImport(ctx, report, scheduleCSV)
	return report, nil
}

// ImportScheduleXLSX imports scheduled tasks from a workbook
func (b *Board) ImportScheduleXLSX(ctx context.Context, r io.Reader) (*structs.ImportReport, error) {
	ctx = action(ctx, "import_schedule")
	report, err := xlsx.ImportSchedule(ctx, b.store, r)
	if err != nil {
		return nil, b.fail(ctx, "XLSX Import Failed", err)
	}
	b.reportImport(ctx, report, scheduleXLSX)
	return report, nil
}

// importNotice names the source and the warning title of an import
type importNotice struct {
	source  string
	noun    string
	warning string
}

var (
	employeesCSV  = importNotice{source: "CSV", noun: "employees", warning: "Invalid Date for %s"}
	employeesXLSX = importNotice{source: "XLSX", noun: "employees", warning: "Invalid Date for %s"}
	scheduleCSV   = importNotice{source: "CSV", noun: "scheduled tasks", warning: "Unknown Status for %s"}
	scheduleXLSX  = importNotice{source: "XLSX", noun: "scheduled tasks", warning: "Unknown Status for %s"}
)

func (b *Board) reportImport(ctx context.Context, report *structs.ImportReport, n importNotice) {
	for _, e := range report.RowErrors {
		b.notifier.Notify(ctx, destructive(fmt.Sprintf("Import Error for row %d", e.Line), e.Message))
	}
	for _, d := range report.Duplicates {
		b.notify(ctx, "Skipped Duplicate", d.Message)
	}
	for _, w := range report.Warnings {
		b.notify(ctx, fmt.Sprintf(n.warning, w.ID), w.Message)
	}
	b.notify(ctx, n.source+" Import Complete", report.Summary(n.noun))
}

// ExportEmployeesCSV writes every employee and returns the suggested file name
func (b *Board) ExportEmployeesCSV(ctx context.Context, w io.Writer) (string, error) {
	return b.exportEmployees(ctx, w, FormatCSV)
}

// ExportEmployeesXLSX writes every employee as a workbook
func (b *Board) ExportEmployeesXLSX(ctx context.Context, w io.Writer) (string, error) {
	return b.exportEmployees(ctx, w, FormatXLSX)
}

// ExportScheduleCSV writes the filtered schedule and returns the suggested file name
func (b *Board) ExportScheduleCSV(ctx context.Context, w io.Writer) (string, error) {
	return b.exportSchedule(ctx, w, FormatCSV)
}

// ExportScheduleXLSX writes the filtered schedule as a workbook
func (b *Board) ExportScheduleXLSX(ctx context.Context, w io.Writer) (string, error) {
	return b.exportSchedule(ctx, w, FormatXLSX)
}

// ExportBoardXLSX writes employees and the filtered schedule into one workbook
func (b *Board) ExportBoardXLSX(ctx context.Context, w io.Writer) (string, error) {
	return b.exportBoard(ctx, w, FormatXLSX)
}

// Export writes employees, the schedule or the whole board in the given format.
// The whole board is only available as a workbook.
func (b *Board) Export(ctx context.Context, w io.Writer, kind, format string) (string, error) {
	switch kind {
	case "employees":
		return b.exportEmployees(ctx, w, format)
	case "schedule":
		return b.exportSchedule(ctx, w, format)
	case "board":
		return b.exportBoard(ctx, w, format)
	}
	return "", fmt.Errorf("unknown export %q", kind)
}

func (b *Board) exportEmployees(ctx context.Context, w io.Writer, format string) (string, error) {
	ctx = action(ctx, "export_employees")
	snap := b.store.Snapshot()
	if len(snap.Employees) == 0 {
		b.notify(ctx, "No Data to Export", "There are no employees to export.")
		return "", ErrNothingToExport
	}

	var err error
	switch format {
	case FormatCSV:
		err = csv.ExportEmployees(w, snap, b.csvOptions()...)
	case FormatXLSX:
		err = xlsx.ExportEmployees(w, snap, b.timeLayout())
	default:
		err = fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
	if err != nil {
		return "", b.fail(ctx, "Export Failed", err)
	}

	name := interchange.FileName("employees", format, b.clock())
	b.notify(ctx, "Employee List Exported", fmt.Sprintf("Successfully exported to %s.", name))
	return name, nil
}

func (b *Board) exportSchedule(ctx context.Context, w io.Writer, format string) (string, error) {
	ctx = action(ctx, "export_schedule")
	snap := b.store.Snapshot()
	if len(query.ScheduledTasksFiltered(snap, b.filter)) == 0 {
		b.notify(ctx, "No Data to Export", "There are no scheduled tasks to export.")
		return "", ErrNothingToExport
	}

	var err error
	switch format {
	case FormatCSV:
		err = csv.ExportSchedule(w, snap, b.filter)
	case FormatXLSX:
		err = xlsx.ExportSchedule(w, snap, b.filter)
	default:
		err = fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
	if err != nil {
		return "", b.fail(ctx, "Export Failed", err)
	}

	name := interchange.FileName("schedule", format, b.clock(), b.filter.WarehouseCode, b.filter.EmployeeID)
	b.notify(ctx, "Schedule Exported", fmt.Sprintf("Successfully exported to %s.", name))
	return name, nil
}

func (b *Board) exportBoard(ctx context.Context, w io.Writer, format string) (string, error) {
	ctx = action(ctx, "export_board")
	if format != FormatXLSX {
		return "", fmt.Errorf("%w: %q, the board is exported as %s", ErrUnknownFormat, format, FormatXLSX)
	}
	snap := b.store.Snapshot()
	if len(snap.Employees) == 0 {
		b.notify(ctx, "No Data to Export", "There are no employees to export.")
		return "", ErrNothingToExport
	}
	if err := xlsx.ExportBoard(w, snap, b.filter, b.timeLayout()); err != nil {
		return "", b.fail(ctx, "Export Failed", err)
	}

	name := interchange.FileName("board", format, b.clock(), b.filter.WarehouseCode, b.filter.EmployeeID)
	b.notify(ctx, "Board Exported", fmt.Sprintf("Successfully exported to %s.", name))
	return name, nil
}
