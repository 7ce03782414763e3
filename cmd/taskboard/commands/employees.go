package commands

import (
	"fmt"
	"text/tabwriter"

	"github.com/ncobase/taskboard/board/query"
	"github.com/ncobase/taskboard/board/structs"
	"github.com/ncobase/taskboard/interchange"
	"github.com/spf13/cobra"
)

func newEmployeesCommand(o *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "employees",
		Aliases: []string{"employee", "emp"},
		Short:   "List, import and export employees",
	}

	cmd.AddCommand(
		newEmployeesListCommand(o),
		newEmployeesImportCommand(o),
		newEmployeesExportCommand(o),
	)

	return cmd
}

func newEmployeesListCommand(o *options) *cobra.Command {
	var (
		all       bool
		warehouse string
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List employees",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, cleanup, err := o.open(cmd)
			if err != nil {
				return err
			}
			defer cleanup()

			snap := s.board().Snapshot()
			var list []structs.Employee
			switch {
			case warehouse != "":
				list = query.EmployeesByWarehouse(snap, warehouse)
			case all:
				list = snap.Employees
			default:
				list = query.ActiveEmployees(snap)
			}

			tw := tabwriter.NewWriter(s.out, 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "ID\tNAME\tWAREHOUSE\tSTATUS")
			for _, e := range list {
				status := interchange.StatusActive
				if !e.IsActive {
					status = interchange.StatusInactive
				}
				fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", e.ID, e.FullName(), e.WarehouseCode, status)
			}
			return tw.Flush()
		},
	}

	cmd.Flags().BoolVarP(&all, "all", "a", false, "include inactive employees")
	cmd.Flags().StringVarP(&warehouse, "warehouse", "w", "", "only active employees of this warehouse")
	return cmd
}

func newEmployeesImportCommand(o *options) *cobra.Command {
	var out string

	cmd := &cobra.Command{
		Use:   "import FILE...",
		Short: "Validate employee files and report what would be imported",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, cleanup, err := o.open(cmd)
			if err != nil {
				return err
			}
			defer cleanup()

			for _, path := range args {
				report, err := s.importFile(path, "employees")
				if err != nil {
					return err
				}
				fmt.Fprintf(s.out, "%s:\n", path)
				printReport(s.out, report, "employees")
			}
			if out == "" {
				return nil
			}
			name, err := s.export("employees", "", out)
			if err != nil {
				return err
			}
			fmt.Fprintf(s.out, "wrote %s\n", name)
			return nil
		},
	}

	cmd.Flags().StringVarP(&out, "out", "o", "", "write the merged employee list to this directory")
	return cmd
}

func newEmployeesExportCommand(o *options) *cobra.Command {
	var format, out string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export employees as csv or xlsx",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, cleanup, err := o.open(cmd)
			if err != nil {
				return err
			}
			defer cleanup()

			name, err := s.export("employees", format, out)
			if err != nil {
				return err
			}
			if out != "-" {
				fmt.Fprintf(s.out, "wrote %s\n", name)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", "", "csv or xlsx (default from config)")
	cmd.Flags().StringVarP(&out, "out", "o", "", "output directory, - for stdout (default from config)")
	return cmd
}
