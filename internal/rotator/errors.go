package rotator

import (
	"errors"
	"fmt"
	"strings"
)

// ErrDestinationExists is returned instead of overwriting an earlier rotation.
var ErrDestinationExists = errors.New("destination already exists")

// EntryError ties a failure to the entry it happened on.
type EntryError struct {
	Path string
	Err  error
}

func (e *EntryError) Error() string {
	return fmt.Sprintf("%s: %v", e.Path, e.Err)
}

func (e *EntryError) Unwrap() error {
	return e.Err
}

// RunError collects the per-entry failures of one run.
type RunError struct {
	Failures []*EntryError
}

func (e *RunError) Error() string {
	if len(e.Failures) == 1 {
		return e.Failures[0].Error()
	}
	msgs := make([]string, 0, len(e.Failures))
	for _, f := range e.Failures {
		msgs = append(msgs, f.Error())
	}
	return fmt.Sprintf("%d entries failed: %s", len(e.Failures), strings.Join(msgs, "; "))
}

func (e *RunError) Unwrap() []error {
	errs := make([]error, 0, len(e.Failures))
	for _, f := range e.Failures {
		errs = append(errs, f)
	}
	return errs
}
