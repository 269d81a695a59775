package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/docker/go-units"

	"github.com/raoulx24/bak-rotate/internal/rotator"
	"github.com/raoulx24/bak-rotate/internal/ui"
)

func writeText(w io.Writer, rep *rotator.Report) error {
	var b strings.Builder

	if rep.DryRun {
		ui.Warnf(&b, "dry run, nothing was renamed")
	}
	fmt.Fprintf(&b, "%s %s\n", ui.Bold.Render("rotation of"), rep.Directory)
	fmt.Fprintf(&b, "  criterion: %s\n", rep.Threshold)

	for _, r := range rep.Results {
		switch r.Action {
		case rotator.ActionRotated:
			fmt.Fprintf(&b, "  %s %s\n", ui.Success.Render("rotated"), ui.Arrow(r.Name, r.Destination))
		case rotator.ActionPlanned:
			fmt.Fprintf(&b, "  %s %s\n", ui.Warning.Render("planned"), ui.Arrow(r.Name, r.Destination))
		case rotator.ActionFailed:
			fmt.Fprintf(&b, "  %s  %s: %s\n", ui.Error.Render("failed"), r.Name, r.Error)
		case rotator.ActionSkipped:
			fmt.Fprintf(&b, "  %s %s %s\n", ui.Dim.Render("skipped"), r.Name, ui.Dim.Render("("+r.Reason+")"))
		}
	}

	s := rep.Summary
	fmt.Fprintf(&b, "%d scanned, %d rotated (%s), %d planned, %d skipped, %d failed",
		s.Scanned, s.Rotated, units.HumanSize(float64(s.BytesRotated)), s.Planned, s.Skipped, s.Failed)
	if s.Unprocessed > 0 {
		fmt.Fprintf(&b, ", %d unprocessed", s.Unprocessed)
	}
	b.WriteString("\n")

	_, err := io.WriteString(w, b.String())
	return err
}
