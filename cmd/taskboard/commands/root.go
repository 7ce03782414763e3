package commands

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/ncobase/taskboard/board"
	"github.com/ncobase/taskboard/board/structs"
	"github.com/ncobase/taskboard/cmd/taskboard/provider"
	"github.com/ncobase/taskboard/config"
	"github.com/ncobase/taskboard/ctxutil"
	"github.com/ncobase/taskboard/logging/logger"
	"github.com/ncobase/taskboard/version"
	"github.com/spf13/cobra"
)

// options are the persistent flags shared by every subcommand
type options struct {
	conf      string
	seed      bool
	employees []string
	schedule  []string
}

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	o := &options{}

	rootCmd := &cobra.Command{
		Use:           "taskboard",
		Short:         "Plan and exchange warehouse task schedules",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVarP(&o.conf, "conf", "c", "", "config file path")
	pf.BoolVar(&o.seed, "seed", false, "load the demo employees and tasks")
	pf.StringSliceVar(&o.employees, "employees", nil, "employee files (.csv or .xlsx) to load first")
	pf.StringSliceVar(&o.schedule, "schedule", nil, "schedule files (.csv or .xlsx) to load first")

	rootCmd.AddCommand(
		newEmployeesCommand(o),
		newScheduleCommand(o),
		newBoardCommand(o),
		newConfigCommand(o),
		newVersionCommand(),
	)

	return rootCmd
}

// session is one wired board plus the context its actions run in
type session struct {
	ctx context.Context
	app *provider.App
	out io.Writer
}

func (s *session) board() *board.Board { return s.app.Board }

func (s *session) cfg() *config.Board { return s.app.Config.Board }

// open loads the config, wires the app and loads any files named on the command line
func (o *options) open(cmd *cobra.Command) (*session, func(), error) {
	cfg, err := config.LoadConfig(o.conf)
	if err != nil {
		return nil, nil, err
	}
	if f := cmd.Flag("seed"); f != nil && f.Changed {
		cfg.Board.Seed = o.seed
	}

	logger.SetVersion(version.GetVersionInfo().Version)
	app, cleanup, err := provider.InitializeApp(cfg)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to initialize: %w", err)
	}

	s := &session{
		ctx: ctxutil.WithAction(cmd.Context(), cmd.CommandPath()),
		app: app,
		out: cmd.OutOrStdout(),
	}
	for _, path := range o.employees {
		if _, err := s.importFile(path, "employees"); err != nil {
			cleanup()
			return nil, nil, err
		}
	}
	for _, path := range o.schedule {
		if _, err := s.importFile(path, "schedule"); err != nil {
			cleanup()
			return nil, nil, err
		}
	}
	return s, cleanup, nil
}

// importFile reads a CSV or XLSX file chosen by extension into the board
func (s *session) importFile(path, kind string) (*structs.ImportReport, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	b := s.board()
	format, err := formatOf(path)
	if err != nil {
		return nil, err
	}
	switch {
	case kind == "employees" && format == board.FormatCSV:
		return b.ImportEmployeesCSV(s.ctx, f)
	case kind == "employees":
		return b.ImportEmployeesXLSX(s.ctx, f)
	case format == board.FormatCSV:
		return b.ImportScheduleCSV(s.ctx, f)
	default:
		return b.ImportScheduleXLSX(s.ctx, f)
	}
}

func formatOf(path string) (string, error) {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".csv":
		return board.FormatCSV, nil
	case ".xlsx":
		return board.FormatXLSX, nil
	default:
		return "", fmt.Errorf("%s: %w %q", path, board.ErrUnknownFormat, ext)
	}
}

// export writes kind in format to dir, or to the command output when dir is "-"
func (s *session) export(kind, format, dir string) (string, error) {
	if format == "" {
		format = s.cfg().Export.Format
	}
	if dir == "" {
		dir = s.cfg().Export.Dir
	}
	if dir == "-" {
		return s.board().Export(s.ctx, s.out, kind, format)
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}
	tmp, err := os.CreateTemp(dir, "."+kind+"-*")
	if err != nil {
		return "", err
	}
	defer os.Remove(tmp.Name())

	name, err := s.board().Export(s.ctx, tmp, kind, format)
	if cerr := tmp.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		return "", err
	}
	dst := filepath.Join(dir, name)
	if err := os.Rename(tmp.Name(), dst); err != nil {
		return "", err
	}
	return dst, nil
}

func printReport(w io.Writer, r *structs.ImportReport, noun string) {
	for _, e := range r.RowErrors {
		fmt.Fprintf(w, "error: %s\n", e)
	}
	for _, d := range r.Duplicates {
		fmt.Fprintf(w, "skipped: %s\n", d)
	}
	for _, warn := range r.Warnings {
		fmt.Fprintf(w, "warning: %s\n", warn)
	}
	fmt.Fprintln(w, r.Summary(noun))
}
