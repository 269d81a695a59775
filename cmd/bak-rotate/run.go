package main

import (
	"context"
	"io"
	"time"

	"github.com/raoulx24/bak-rotate/internal/config"
	"github.com/raoulx24/bak-rotate/internal/logging"
	"github.com/raoulx24/bak-rotate/internal/metrics"
	"github.com/raoulx24/bak-rotate/internal/report"
	"github.com/raoulx24/bak-rotate/internal/rotator"
)

// run validates cfg and performs one rotation pass.
func run(ctx context.Context, cfg config.Config, stdout, stderr io.Writer) error {
	c, err := cfg.Validate(time.Now())
	if err != nil {
		return err
	}

	log, err := logging.New(logging.Config{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
	}, stderr)
	if err != nil {
		return &config.UsageError{Err: err, Malformed: true}
	}

	format, _ := report.ParseFormat(cfg.Report)
	if cfg.DryRun && format == report.None {
		format = report.Text
	}

	r := rotator.New(log, nil, cfg.Options())
	rep, runErr := r.Run(ctx, cfg.Directory, c)

	if err := report.Write(stdout, format, rep); err != nil {
		log.Error("writing report failed", "error", err)
	}

	if cfg.MetricsFile != "" {
		m := metrics.New()
		m.Observe(rep, runErr)
		if err := m.WriteFile(cfg.MetricsFile); err != nil {
			log.Error("metrics export failed", "path", cfg.MetricsFile, "error", err)
		}
	}

	return runErr
}
