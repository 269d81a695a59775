package rotator

import (
	"fmt"
	"strings"
)

// Policy decides what a run does after a failed rotation.
type Policy int

const (
	// Abort stops at the first failure. Entries already rotated stay rotated.
	Abort Policy = iota
	// Continue records the failure and moves on to the next entry.
	Continue
)

func ParsePolicy(s string) (Policy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "abort":
		return Abort, nil
	case "continue":
		return Continue, nil
	default:
		return Abort, fmt.Errorf("invalid error policy %q (expected: abort, continue)", s)
	}
}

func (p Policy) String() string {
	switch p {
	case Continue:
		return "continue"
	default:
		return "abort"
	}
}

func (p Policy) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}

func (p *Policy) UnmarshalText(b []byte) error {
	v, err := ParsePolicy(string(b))
	if err != nil {
		return err
	}
	*p = v
	return nil
}
