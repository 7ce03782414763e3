package csv

import (
	"bufio"
	"bytes"
	"context"
	stdcsv "encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/ncobase/taskboard/board/structs"
	"github.com/ncobase/taskboard/interchange"
)

// EmployeeImporter applies parsed employee rows
type EmployeeImporter interface {
	ImportEmployees(ctx context.Context, rows []structs.EmployeeRow) *structs.ImportReport
}

// ScheduleImporter applies parsed schedule rows
type ScheduleImporter interface {
	ImportScheduledTasks(ctx context.Context, rows []structs.ScheduledTaskRow) *structs.ImportReport
}

type record struct {
	line  int
	cells []string
}

// SplitLine splits a line on every comma. A field fully wrapped in double
// quotes is unwrapped, commas inside quotes are not protected.
func SplitLine(line string) []string {
	cells := strings.Split(line, ",")
	for i, c := range cells {
		c = strings.TrimSpace(c)
		if len(c) >= 2 && c[0] == '"' && c[len(c)-1] == '"' {
			c = strings.ReplaceAll(c[1:len(c)-1], `""`, `"`)
		}
		cells[i] = c
	}
	return cells
}

func blank(cells []string) bool {
	for _, c := range cells {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// skipBOM drops the byte order mark spreadsheet programs put in front of CSV files
func skipBOM(r io.Reader) io.Reader {
	br := bufio.NewReader(r)
	if b, err := br.Peek(len(utf8BOM)); err == nil && bytes.Equal(b, utf8BOM) {
		_, _ = br.Discard(len(utf8BOM))
	}
	return br
}

func readRecords(r io.Reader, o *options, report *structs.ImportReport) ([]record, error) {
	r = skipBOM(r)
	if o.quoteAware {
		return readQuoted(r, report)
	}
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	var records []record
	for i, line := range strings.Split(string(data), "\n") {
		line = strings.TrimSuffix(line, "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}
		records = append(records, record{line: i + 1, cells: SplitLine(line)})
	}
	return records, nil
}

func readQuoted(r io.Reader, report *structs.ImportReport) ([]record, error) {
	cr := stdcsv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true
	cr.TrimLeadingSpace = true

	var records []record
	for {
		cells, err := cr.Read()
		if errors.Is(err, io.EOF) {
			return records, nil
		}
		var perr *stdcsv.ParseError
		if errors.As(err, &perr) {
			if len(records) == 0 {
				return nil, err
			}
			report.AddError(perr.StartLine, "", perr.Err.Error())
			continue
		}
		if err != nil {
			return nil, err
		}
		if blank(cells) {
			continue
		}
		line, _ := cr.FieldPos(0)
		for i, c := range cells {
			cells[i] = strings.TrimSpace(c)
		}
		records = append(records, record{line: line, cells: cells})
	}
}

func parse(r io.Reader, header []string, o *options) ([]record, *structs.ImportReport, error) {
	report := &structs.ImportReport{}
	records, err := readRecords(r, o, report)
	if err != nil {
		return nil, nil, err
	}
	if len(records) == 0 {
		return nil, nil, interchange.ErrEmptyInput
	}
	if err := interchange.CheckHeader(records[0].cells, header); err != nil {
		return nil, nil, err
	}

	rows := records[1:]
	valid := rows[:0]
	for _, rec := range rows {
		if len(rec.cells) != len(header) {
			report.AddError(rec.line, rec.cells[0], interchange.ColumnMismatch(len(header), len(rec.cells)))
			continue
		}
		valid = append(valid, rec)
	}
	return valid, report, nil
}

// ParseEmployees reads an employee CSV. A bad header fails the whole parse,
// rows with the wrong number of columns are reported and dropped.
func ParseEmployees(r io.Reader, opts ...Option) ([]structs.EmployeeRow, *structs.ImportReport, error) {
	records, report, err := parse(r, interchange.EmployeeHeader, newOptions(opts))
	if err != nil {
		return nil, nil, fmt.Errorf("parse employees: %w", err)
	}
	rows := make([]structs.EmployeeRow, 0, len(records))
	for _, rec := range records {
		rows = append(rows, interchange.EmployeeRow(rec.line, rec.cells))
	}
	return rows, report, nil
}

// ParseSchedule reads a schedule CSV
func ParseSchedule(r io.Reader, opts ...Option) ([]structs.ScheduledTaskRow, *structs.ImportReport, error) {
	records, report, err := parse(r, interchange.ScheduleHeader, newOptions(opts))
	if err != nil {
		return nil, nil, fmt.Errorf("parse schedule: %w", err)
	}
	rows := make([]structs.ScheduledTaskRow, 0, len(records))
	for _, rec := range records {
		rows = append(rows, interchange.ScheduledTaskRow(rec.line, rec.cells))
	}
	return rows, report, nil
}

// ImportEmployees parses r and applies the rows in one batch
func ImportEmployees(ctx context.Context, dst EmployeeImporter, r io.Reader, opts ...Option) (*structs.ImportReport, error) {
	rows, report, err := ParseEmployees(r, opts...)
	if err != nil {
		return nil, err
	}
	report.Merge(dst.ImportEmployees(ctx, rows))
	return report, nil
}

// ImportSchedule parses r and applies the rows in one batch
func ImportSchedule(ctx context.Context, dst ScheduleImporter, r io.Reader, opts ...Option) (*structs.ImportReport, error) {
	rows, report, err := ParseSchedule(r, opts...)
	if err != nil {
		return nil, err
	}
	report.Merge(dst.ImportScheduledTasks(ctx, rows))
	return report, nil
}
