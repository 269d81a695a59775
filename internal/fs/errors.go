package fs

import (
	"errors"
	"syscall"
)

// helpers for classifying filesystem errors.
// They decide whether an operation should retry, fall back, or fail immediately.

func isTransient(err error) bool {
	if errors.Is(err, syscall.EAGAIN) ||
		errors.Is(err, syscall.EBUSY) ||
		errors.Is(err, syscall.ETIMEDOUT) {
		return true
	}

	return false
}

// isCrossDevice reports a rename that crosses a mount point.
func isCrossDevice(err error) bool {
	return errors.Is(err, syscall.EXDEV)
}
