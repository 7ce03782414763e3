package commands

import (
	"fmt"
	"io"
	"slices"
	"strings"
	"text/tabwriter"

	"github.com/ncobase/taskboard/board"
	"github.com/ncobase/taskboard/board/calendar"
	"github.com/ncobase/taskboard/board/query"
	"github.com/ncobase/taskboard/board/store"
	"github.com/ncobase/taskboard/board/structs"
	"github.com/ncobase/taskboard/interchange"
	"github.com/ncobase/taskboard/types"
	"github.com/spf13/cobra"
)

func newBoardCommand(o *options) *cobra.Command {
	var (
		f    filterFlags
		date string
		view string
	)

	cmd := &cobra.Command{
		Use:   "board",
		Short: "Print the weekly or monthly board",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			v := calendar.View(view)
			if !v.Valid() {
				return fmt.Errorf("unknown view %q", view)
			}
			s, cleanup, err := o.open(cmd)
			if err != nil {
				return err
			}
			defer cleanup()
			f.apply(s)

			b := s.board()
			b.SetView(v)
			if date != "" {
				d, err := types.ParseDate(date)
				if err != nil {
					return fmt.Errorf("invalid date %q: %w", date, err)
				}
				b.SetDate(d)
			}

			fmt.Fprintln(s.out, b.Calendar().RangeLabel())
			if v == calendar.Monthly {
				return printMonth(s.out, b)
			}
			return printWeek(s.out, b)
		},
	}

	f.bind(cmd)
	cmd.Flags().StringVarP(&date, "date", "d", "", "any day in the period to show, YYYY-MM-DD (default today)")
	cmd.Flags().StringVar(&view, "view", string(calendar.Weekly), "weekly or monthly")

	cmd.AddCommand(newBoardExportCommand(o))
	return cmd
}

func newBoardExportCommand(o *options) *cobra.Command {
	var (
		f   filterFlags
		out string
	)

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export employees and the filtered schedule into one workbook",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, cleanup, err := o.open(cmd)
			if err != nil {
				return err
			}
			defer cleanup()
			f.apply(s)

			name, err := s.export("board", board.FormatXLSX, out)
			if err != nil {
				return err
			}
			if out != "-" {
				fmt.Fprintf(s.out, "wrote %s\n", name)
			}
			return nil
		},
	}

	f.bind(cmd)
	cmd.Flags().StringVarP(&out, "out", "o", "", "output directory, - for stdout (default from config)")
	return cmd
}

// printWeek prints one row per employee and one column per day
func printWeek(w io.Writer, b *board.Board) error {
	snap := b.Snapshot()
	days := b.Calendar().WeekDays()

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	header := []string{"EMPLOYEE"}
	for _, d := range days {
		header = append(header, types.FormatTime(d, "EEE d"))
	}
	header = append(header, "TOTAL")
	fmt.Fprintln(tw, strings.Join(header, "\t"))

	totals := b.VisibleHours()
	for _, e := range b.EmployeesToRender() {
		row := []string{e.FullName()}
		for _, d := range days {
			row = append(row, cellText(snap, b.TasksForCell(e.ID, d)))
		}
		row = append(row, formatHours(totals[e.ID])+"h")
		fmt.Fprintln(tw, strings.Join(row, "\t"))
	}
	return tw.Flush()
}

// printMonth prints the days of the month that have work
func printMonth(w io.Writer, b *board.Board) error {
	cal := b.Calendar()
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "DATE\tTASKS\tHOURS")
	for _, d := range cal.VisibleDays() {
		if !cal.InMonth(d) {
			continue
		}
		tasks := b.TasksForDay(d)
		if len(tasks) == 0 {
			continue
		}
		var hours float64
		for _, st := range tasks {
			hours += st.Hours
		}
		fmt.Fprintf(tw, "%s\t%d\t%s\n", types.FormatTime(d, "EEE MMM d"), len(tasks), formatHours(hours))
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	fmt.Fprintln(w)
	totals := b.VisibleHours()
	tw = tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "EMPLOYEE\tHOURS")
	for _, e := range b.EmployeesToRender() {
		fmt.Fprintf(tw, "%s\t%s\n", e.FullName(), formatHours(totals[e.ID]))
	}
	return tw.Flush()
}

func cellText(snap *store.Snapshot, tasks []structs.ScheduledTask) string {
	if len(tasks) == 0 {
		return "-"
	}
	names := make([]string, 0, len(tasks))
	for _, st := range tasks {
		name := st.TaskID
		if t, ok := query.TaskByID(snap, st.TaskID); ok {
			name = t.Name
		}
		names = append(names, fmt.Sprintf("%s (%sh)", name, formatHours(st.Hours)))
	}
	return strings.Join(names, ", ")
}

func sortByDate(tasks []structs.ScheduledTask) []structs.ScheduledTask {
	out := slices.Clone(tasks)
	slices.SortStableFunc(out, func(a, b structs.ScheduledTask) int {
		if c := strings.Compare(a.Date, b.Date); c != 0 {
			return c
		}
		return strings.Compare(a.EmployeeID, b.EmployeeID)
	})
	return out
}

func formatHours(h float64) string { return interchange.FormatHours(h) }

func joinTags(tags []string) string { return strings.Join(tags, interchange.TagSeparator) }
