package rotator

import (
	"time"

	"github.com/raoulx24/bak-rotate/internal/criterion"
	"github.com/raoulx24/bak-rotate/internal/logging"
)

// Action is what a run did with one entry.
type Action string

const (
	ActionRotated Action = "rotated"
	ActionPlanned Action = "planned"
	ActionSkipped Action = "skipped"
	ActionFailed  Action = "failed"
)

// Result records the outcome for a single directory entry.
type Result struct {
	Name        string    `json:"name" yaml:"name" toml:"name"`
	Kind        string    `json:"kind" yaml:"kind" toml:"kind"`
	Source      string    `json:"source" yaml:"source" toml:"source"`
	Destination string    `json:"destination,omitempty" yaml:"destination,omitempty" toml:"destination,omitempty"`
	Action      Action    `json:"action" yaml:"action" toml:"action"`
	Reason      string    `json:"reason,omitempty" yaml:"reason,omitempty" toml:"reason,omitempty"`
	Size        int64     `json:"size" yaml:"size" toml:"size"`
	CreatedAt   time.Time `json:"createdAt" yaml:"createdAt" toml:"createdAt"`
	Error       string    `json:"error,omitempty" yaml:"error,omitempty" toml:"error,omitempty"`

	err error
}

func (r Result) fail(log logging.Logger, err error) Result {
	r.Action = ActionFailed
	r.Error = err.Error()
	r.err = err
	log.Error("rotation failed", "entry", r.Name, "error", err)
	return r
}

// Summary totals a run.
type Summary struct {
	Scanned      int   `json:"scanned" yaml:"scanned" toml:"scanned"`
	Rotated      int   `json:"rotated" yaml:"rotated" toml:"rotated"`
	Planned      int   `json:"planned" yaml:"planned" toml:"planned"`
	Skipped      int   `json:"skipped" yaml:"skipped" toml:"skipped"`
	Failed       int   `json:"failed" yaml:"failed" toml:"failed"`
	Unprocessed  int   `json:"unprocessed" yaml:"unprocessed" toml:"unprocessed"`
	BytesRotated int64 `json:"bytesRotated" yaml:"bytesRotated" toml:"bytesRotated"`
}

// Report describes one rotation pass.
type Report struct {
	RunID      string    `json:"runId" yaml:"runId" toml:"runId"`
	Directory  string    `json:"directory" yaml:"directory" toml:"directory"`
	Criterion  string    `json:"criterion" yaml:"criterion" toml:"criterion"`
	Threshold  string    `json:"threshold" yaml:"threshold" toml:"threshold"`
	DryRun     bool      `json:"dryRun" yaml:"dryRun" toml:"dryRun"`
	Policy     Policy    `json:"policy" yaml:"policy" toml:"policy"`
	StartedAt  time.Time `json:"startedAt" yaml:"startedAt" toml:"startedAt"`
	FinishedAt time.Time `json:"finishedAt" yaml:"finishedAt" toml:"finishedAt"`
	Summary    Summary   `json:"summary" yaml:"summary" toml:"summary"`
	Results    []Result  `json:"results" yaml:"results" toml:"results"`
}

func newReport(runID, dir string, c criterion.Criterion, now time.Time, opts Options) *Report {
	return &Report{
		RunID:     runID,
		Directory: dir,
		Criterion: criterion.Kind(c),
		Threshold: c.String(),
		DryRun:    opts.DryRun,
		Policy:    opts.Policy,
		StartedAt: now,
		Results:   []Result{},
	}
}

func (r *Report) add(res Result) {
	r.Results = append(r.Results, res)
	r.Summary.Scanned++

	switch res.Action {
	case ActionRotated:
		r.Summary.Rotated++
		r.Summary.BytesRotated += res.Size
	case ActionPlanned:
		r.Summary.Planned++
	case ActionSkipped:
		r.Summary.Skipped++
	case ActionFailed:
		r.Summary.Failed++
	}
}

// Duration is the wall time the run took.
func (r *Report) Duration() time.Duration {
	if r.FinishedAt.IsZero() {
		return 0
	}
	return r.FinishedAt.Sub(r.StartedAt)
}
