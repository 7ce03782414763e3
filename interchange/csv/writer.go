// Package csv reads and writes board data as CSV text.
package csv

import (
	"bufio"
	"io"
	"strings"

	"github.com/ncobase/taskboard/board/query"
	"github.com/ncobase/taskboard/board/store"
	"github.com/ncobase/taskboard/interchange"
)

// EscapeField quotes a field containing a comma, double quote, CR or LF and doubles embedded quotes.
// Empty fields are written as "".
func EscapeField(field string) string {
	if field == "" {
		return `""`
	}
	if strings.ContainsAny(field, ",\"\r\n") {
		return `"` + strings.ReplaceAll(field, `"`, `""`) + `"`
	}
	return field
}

// FormatRow escapes and joins fields, without the line ending
func FormatRow(fields []string) string {
	escaped := make([]string, len(fields))
	for i, f := range fields {
		escaped[i] = EscapeField(f)
	}
	return strings.Join(escaped, ",")
}

func writeTable(w io.Writer, header []string, rows [][]string) error {
	bw := bufio.NewWriter(w)
	if _, err := bw.WriteString(FormatRow(header) + "\n"); err != nil {
		return err
	}
	for _, row := range rows {
		if _, err := bw.WriteString(FormatRow(row) + "\n"); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// ExportEmployees writes every employee ordered by id
func ExportEmployees(w io.Writer, snap *store.Snapshot, opts ...Option) error {
	o := newOptions(opts)
	return writeTable(w, interchange.EmployeeHeader, interchange.EmployeeTable(snap, o.timeLayout))
}

// ExportSchedule writes the scheduled tasks passing f ordered by date and employee id
func ExportSchedule(w io.Writer, snap *store.Snapshot, f query.Filter, opts ...Option) error {
	return writeTable(w, interchange.ScheduleHeader, interchange.ScheduleTable(snap, f))
}
