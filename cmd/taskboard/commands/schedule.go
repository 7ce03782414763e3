package commands

import (
	"fmt"
	"text/tabwriter"

	"github.com/ncobase/taskboard/board/dnd"
	"github.com/ncobase/taskboard/board/query"
	"github.com/spf13/cobra"
)

func newScheduleCommand(o *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "schedule",
		Short: "List, assign, import and export scheduled tasks",
	}

	cmd.AddCommand(
		newScheduleListCommand(o),
		newScheduleAssignCommand(o),
		newScheduleImportCommand(o),
		newScheduleExportCommand(o),
	)

	return cmd
}

// filterFlags binds --warehouse and --employee
type filterFlags struct {
	warehouse string
	employee  string
}

func (f *filterFlags) bind(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.warehouse, "warehouse", "w", "", "only this warehouse")
	cmd.Flags().StringVarP(&f.employee, "employee", "e", "", "only this employee")
}

func (f *filterFlags) apply(s *session) {
	s.board().SetWarehouseFilter(f.warehouse)
	s.board().SetEmployeeFilter(f.employee)
}

func newScheduleListCommand(o *options) *cobra.Command {
	var f filterFlags

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List scheduled tasks ordered by date",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, cleanup, err := o.open(cmd)
			if err != nil {
				return err
			}
			defer cleanup()
			f.apply(s)

			snap := s.board().Snapshot()
			rows := query.ScheduledTasksFiltered(snap, s.board().Filter())
			tw := tabwriter.NewWriter(s.out, 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "ID\tDATE\tEMPLOYEE\tTASK\tSTATUS\tHOURS\tTAGS")
			for _, st := range sortByDate(rows) {
				emp, task := st.EmployeeID, st.TaskID
				if e, ok := query.EmployeeByID(snap, st.EmployeeID); ok {
					emp = e.FullName()
				}
				if t, ok := query.TaskByID(snap, st.TaskID); ok {
					task = t.Name
				}
				fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
					st.ID, st.Date, emp, task, st.Status, formatHours(st.Hours), joinTags(st.Tags))
			}
			return tw.Flush()
		},
	}

	f.bind(cmd)
	return cmd
}

func newScheduleAssignCommand(o *options) *cobra.Command {
	var out string

	cmd := &cobra.Command{
		Use:   "assign TASK_ID EMPLOYEE_ID DATE",
		Short: "Schedule a task for an employee on a date",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, cleanup, err := o.open(cmd)
			if err != nil {
				return err
			}
			defer cleanup()

			payload, err := dnd.NewTask(args[0]).Encode()
			if err != nil {
				return err
			}
			res, err := s.board().DropTask(s.ctx, payload, dnd.Target{EmployeeID: args[1], Date: args[2]})
			if err != nil {
				return err
			}
			if res.Action != dnd.ActionCreated {
				return fmt.Errorf("task %q was not scheduled", args[0])
			}
			fmt.Fprintf(s.out, "scheduled %s\n", res.Created.ID)

			if out == "" {
				return nil
			}
			name, err := s.export("schedule", "", out)
			if err != nil {
				return err
			}
			fmt.Fprintf(s.out, "wrote %s\n", name)
			return nil
		},
	}

	cmd.Flags().StringVarP(&out, "out", "o", "", "write the updated schedule to this directory")
	return cmd
}

func newScheduleImportCommand(o *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "import FILE...",
		Short: "Validate schedule files against the loaded employees and tasks",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, cleanup, err := o.open(cmd)
			if err != nil {
				return err
			}
			defer cleanup()

			for _, path := range args {
				report, err := s.importFile(path, "schedule")
				if err != nil {
					return err
				}
				fmt.Fprintf(s.out, "%s:\n", path)
				printReport(s.out, report, "scheduled tasks")
			}
			return nil
		},
	}
	return cmd
}

func newScheduleExportCommand(o *options) *cobra.Command {
	var (
		f           filterFlags
		format, out string
	)

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export the filtered schedule as csv or xlsx",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, cleanup, err := o.open(cmd)
			if err != nil {
				return err
			}
			defer cleanup()
			f.apply(s)

			name, err := s.export("schedule", format, out)
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
	cmd.Flags().StringVarP(&format, "format", "f", "", "csv or xlsx (default from config)")
	cmd.Flags().StringVarP(&out, "out", "o", "", "output directory, - for stdout (default from config)")
	return cmd
}
