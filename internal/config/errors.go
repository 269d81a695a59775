package config

import "errors"

var (
	ErrNoDirectory   = errors.New("no directory given")
	ErrNoCriterion   = errors.New("you must specify a rotation option (--size or --time); use --help to learn which options are available")
	ErrBothCriteria  = errors.New("--size and --time are mutually exclusive; specify only one rotation option")
	ErrInvalidPolicy = errors.New("invalid --on-error")
	ErrInvalidReport = errors.New("invalid --report")
	ErrInvalidLog    = errors.New("invalid logging settings")
)

// UsageError marks a problem with the invocation itself. Nothing has been
// touched on disk when one is returned.
//
// Malformed is set when the command line could not be understood at all
// (unknown flag, missing --directory, a value outside a flag's choices).
// Otherwise the rotation option itself was rejected.
type UsageError struct {
	Err       error
	Malformed bool
}

func (e *UsageError) Error() string {
	return e.Err.Error()
}

func (e *UsageError) Unwrap() error {
	return e.Err
}

func usage(err error) error {
	return &UsageError{Err: err}
}

func malformed(err error) error {
	return &UsageError{Err: err, Malformed: true}
}
