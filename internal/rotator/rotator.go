// Package rotator scans one directory and moves qualifying entries into its
// bak subdirectory under a date-stamped name.
package rotator

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/raoulx24/bak-rotate/internal/criterion"
	"github.com/raoulx24/bak-rotate/internal/entry"
	"github.com/raoulx24/bak-rotate/internal/fs"
	"github.com/raoulx24/bak-rotate/internal/logging"
)

// Options tune a Rotator. The zero value aborts on the first failure,
// renames for real and expects bak to exist.
type Options struct {
	DryRun    bool
	Policy    Policy
	CreateBak bool
	Now       func() time.Time
}

// Rotator runs single, synchronous rotation passes.
type Rotator struct {
	fs   fs.FS
	log  logging.Logger
	opts Options
}

// New creates a rotator. A nil filesystem means the local OS filesystem.
func New(log logging.Logger, filesystem fs.FS, opts Options) *Rotator {
	if filesystem == nil {
		filesystem = fs.New()
	}
	if log == nil {
		log = logging.Nop{}
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	return &Rotator{
		fs:   filesystem,
		log:  log,
		opts: opts,
	}
}

// Run evaluates every immediate child of dir against c and rotates the
// qualifying ones. The returned report is never nil; it covers whatever was
// processed before an abort. Per-entry failures come back as *RunError.
func (r *Rotator) Run(ctx context.Context, dir string, c criterion.Criterion) (*Report, error) {
	if c == nil {
		return nil, errors.New("rotator: no criterion")
	}

	runID := uuid.NewString()
	log := r.log.With("run_id", runID, "dir", dir, "criterion", criterion.Kind(c))
	now := r.opts.Now()

	rep := newReport(runID, dir, c, now, r.opts)
	defer func() { rep.FinishedAt = r.opts.Now() }()

	log.Debug("scanning directory", "threshold", c.String(), "dry_run", r.opts.DryRun)

	entries, err := r.fs.ReadDir(dir)
	if err != nil {
		return rep, fmt.Errorf("scanning %s: %w", dir, err)
	}

	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Name < entries[j].Name
	})

	var (
		failures []*EntryError
		bakReady bool
	)

	for i, e := range entries {
		if err := ctx.Err(); err != nil {
			rep.Summary.Unprocessed += len(entries) - i
			return rep, err
		}

		res := r.handle(ctx, log, dir, e, c, now, &bakReady)
		rep.add(res)

		if res.Action != ActionFailed {
			continue
		}

		failures = append(failures, &EntryError{Path: e.Path, Err: res.err})

		if r.opts.Policy == Abort {
			rep.Summary.Unprocessed += len(entries) - i - 1
			log.Warn("aborting after failed rotation", "entry", e.Name, "unprocessed", rep.Summary.Unprocessed)
			break
		}
	}

	log.Info("rotation finished",
		"scanned", rep.Summary.Scanned,
		"rotated", rep.Summary.Rotated,
		"planned", rep.Summary.Planned,
		"failed", rep.Summary.Failed)

	if len(failures) > 0 {
		return rep, &RunError{Failures: failures}
	}
	return rep, nil
}

// handle evaluates and, if needed, rotates a single entry.
func (r *Rotator) handle(ctx context.Context, log logging.Logger, dir string, e entry.Entry, c criterion.Criterion, now time.Time, bakReady *bool) Result {
	res := Result{
		Name:      e.Name,
		Kind:      e.Kind(),
		Source:    e.Path,
		Size:      e.Size,
		CreatedAt: e.CreatedAt,
	}

	if e.Name == BakDir && e.Dir {
		res.Action = ActionSkipped
		res.Reason = "rotation destination"
		return res
	}

	ok, reason := criterion.Match(c, e, now)
	res.Reason = reason
	if !ok {
		res.Action = ActionSkipped
		log.Debug("entry kept", "entry", e.Name, "reason", reason)
		return res
	}

	dst := Destination(dir, e.Name, r.opts.Now())
	res.Destination = dst

	if _, err := r.fs.Stat(dst); err == nil {
		return res.fail(log, fmt.Errorf("%w: %s", ErrDestinationExists, dst))
	}

	if r.opts.DryRun {
		res.Action = ActionPlanned
		log.Info("would rotate", "entry", e.Name, "dst", dst)
		return res
	}

	if r.opts.CreateBak && !*bakReady {
		if err := r.fs.MkdirAll(filepath.Join(dir, BakDir)); err != nil {
			return res.fail(log, fmt.Errorf("creating %s directory: %w", BakDir, err))
		}
		*bakReady = true
	}

	if err := r.fs.Rename(ctx, e.Path, dst); err != nil {
		return res.fail(log, fmt.Errorf("rotating %s: %w", e.Name, err))
	}

	res.Action = ActionRotated
	log.Info("rotated", "entry", e.Name, "dst", dst, "size", e.Size)
	return res
}
