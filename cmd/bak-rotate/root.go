package main

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/raoulx24/bak-rotate/internal/config"
	"github.com/raoulx24/bak-rotate/internal/ui"
)

// A rejected rotation option prints an error and exits 0 without touching
// anything; only an unparsable command line exits with exitUsage.
const (
	exitOK      = 0
	exitFailure = 1
	exitUsage   = 2
)

const longHelp = `Rotates files based on size of file or age of file.

Every immediate child of --directory that exceeds the chosen threshold is
moved to <directory>/bak/<name>.<MM-DD-YYYY>. The bak directory must exist
unless --mkdir is given.

Exactly one of --size or --time is required.
  --size  bytes, minimum 1000000; human sizes such as 5MB are accepted
  --time  day, week, month, 6months, year, or a cron descriptor (@weekly, @every 36h)`

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	cfg := config.Default()

	cmd := &cobra.Command{
		Use:           "bak-rotate",
		Short:         "Rotate files into a bak directory by age or size",
		Long:          longHelp,
		Version:       version,
		SilenceErrors: true,
		SilenceUsage:  true,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) > 0 {
				return &config.UsageError{Err: fmt.Errorf("unexpected arguments: %v", args), Malformed: true}
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.Context(), cfg, stdout, stderr)
		},
	}

	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	cmd.SetVersionTemplate("bak-rotate {{.Version}} (" + commit + ", " + date + ")\n")
	cmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return &config.UsageError{Err: err, Malformed: true}
	})

	f := cmd.Flags()
	f.SortFlags = false
	f.StringVarP(&cfg.Directory, "directory", "d", "", "directory that will be scanned for rotations (required)")
	f.StringVarP(&cfg.Size, "size", "s", "", "rotate by size; threshold in bytes (minimum 1000000)")
	f.StringVarP(&cfg.Time, "time", "t", "", "rotate by time: day, week, month, 6months, year")
	f.BoolVarP(&cfg.DryRun, "dry-run", "n", false, "report what would be rotated without renaming anything")
	f.StringVar(&cfg.OnError, "on-error", cfg.OnError, "after a failed rename: abort or continue")
	f.BoolVar(&cfg.CreateBak, "mkdir", false, "create the bak directory if it does not exist")
	f.StringVarP(&cfg.Report, "report", "o", cfg.Report, "print a report: none, text, json, yaml, toml")
	f.StringVar(&cfg.MetricsFile, "metrics-file", "", "write Prometheus metrics to this file")
	f.StringVar(&cfg.Logging.Level, "log-level", cfg.Logging.Level, "log level: debug, info, warn, error")
	f.StringVar(&cfg.Logging.Format, "log-format", cfg.Logging.Format, "log format: text, json")

	return cmd
}

// execute runs the CLI and maps the outcome onto an exit code.
// Errors are printed to stdout.
func execute(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	cmd := newRootCmd(stdout, stderr)
	cmd.SetArgs(args)

	err := cmd.ExecuteContext(ctx)
	if err == nil {
		return exitOK
	}

	ui.Errorf(stdout, "%v", err)

	var ue *config.UsageError
	if !errors.As(err, &ue) {
		return exitFailure
	}
	if ue.Malformed {
		return exitUsage
	}
	return exitOK
}
