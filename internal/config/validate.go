package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/raoulx24/bak-rotate/internal/criterion"
	"github.com/raoulx24/bak-rotate/internal/logging"
	"github.com/raoulx24/bak-rotate/internal/report"
	"github.com/raoulx24/bak-rotate/internal/rotator"
)

// Validate checks every setting and resolves the active criterion.
// All failures are *UsageError.
func (c Config) Validate(now time.Time) (criterion.Criterion, error) {
	if strings.TrimSpace(c.Directory) == "" {
		return nil, malformed(ErrNoDirectory)
	}

	if _, err := rotator.ParsePolicy(c.OnError); err != nil {
		return nil, malformed(fmt.Errorf("%w: %v", ErrInvalidPolicy, err))
	}

	if _, err := report.ParseFormat(c.Report); err != nil {
		return nil, malformed(fmt.Errorf("%w: %v", ErrInvalidReport, err))
	}

	if _, err := logging.ParseLevel(c.Logging.Level); err != nil {
		return nil, malformed(fmt.Errorf("%w: %v", ErrInvalidLog, err))
	}
	switch strings.ToLower(c.Logging.Format) {
	case "", "text", "json":
	default:
		return nil, malformed(fmt.Errorf("%w: format %q (expected: text, json)", ErrInvalidLog, c.Logging.Format))
	}

	return c.Criterion(now)
}

// Criterion resolves exactly one of Size or Time.
func (c Config) Criterion(now time.Time) (criterion.Criterion, error) {
	hasSize := c.Size != ""
	hasTime := c.Time != ""

	switch {
	case hasSize && hasTime:
		return nil, usage(ErrBothCriteria)

	case hasSize:
		s, err := criterion.ParseSize(c.Size)
		if err != nil {
			return nil, usage(err)
		}
		return s, nil

	case hasTime:
		a, err := criterion.ParseAge(c.Time, now)
		if err != nil {
			return nil, usage(err)
		}
		return a, nil

	default:
		return nil, usage(ErrNoCriterion)
	}
}

// Options maps the settings onto rotator options.
func (c Config) Options() rotator.Options {
	p, _ := rotator.ParsePolicy(c.OnError)
	return rotator.Options{
		DryRun:    c.DryRun,
		Policy:    p,
		CreateBak: c.CreateBak,
	}
}
