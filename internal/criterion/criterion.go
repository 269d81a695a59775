// Package criterion holds the rule that decides which entries a run rotates.
// A run has exactly one active Criterion: either Age or Size.
package criterion

import (
	"errors"
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/docker/go-units"
	"github.com/robfig/cron/v3"

	"github.com/raoulx24/bak-rotate/internal/entry"
)

// MinSize is the smallest accepted size threshold (1 MB).
const MinSize int64 = 1_000_000

const day = 24 * time.Hour

var (
	ErrInvalidTime  = errors.New("invalid time")
	ErrInvalidSize  = errors.New("invalid size")
	ErrSizeTooSmall = errors.New("size below minimum")
)

// Tokens lists the named age thresholds, in ascending order.
var Tokens = []string{"day", "week", "month", "6months", "year"}

var tokenThresholds = map[string]time.Duration{
	"day":     day,
	"week":    7 * day,
	"month":   28 * day,
	"6months": 182 * day,
	"year":    365 * day,
}

// Criterion is either Age or Size.
type Criterion interface {
	criterion()
	String() string
}

// Age qualifies entries whose creation time plus Threshold lies before now.
type Age struct {
	Token     string        `json:"token" yaml:"token" toml:"token"`
	Threshold time.Duration `json:"threshold" yaml:"threshold" toml:"threshold"`
}

// Size qualifies regular files strictly larger than MinBytes.
type Size struct {
	MinBytes int64 `json:"minBytes" yaml:"minBytes" toml:"minBytes"`
}

func (Age) criterion()  {}
func (Size) criterion() {}

func (a Age) String() string {
	return fmt.Sprintf("age > %s (%s)", a.Threshold, a.Token)
}

func (s Size) String() string {
	return fmt.Sprintf("size > %s (%d bytes)", units.HumanSize(float64(s.MinBytes)), s.MinBytes)
}

// ParseAge resolves a time token. Named tokens are matched exactly after
// lower-casing; anything else must be a cron descriptor or standard spec,
// whose threshold is the gap between its next two activations after now.
func ParseAge(token string, now time.Time) (Age, error) {
	t := strings.ToLower(strings.TrimSpace(token))
	if t == "" {
		return Age{}, fmt.Errorf("%w: empty value", ErrInvalidTime)
	}

	if d, ok := tokenThresholds[t]; ok {
		return Age{Token: t, Threshold: d}, nil
	}

	sched, err := cron.ParseStandard(t)
	if err != nil {
		return Age{}, fmt.Errorf("%w: %q (expected one of %s, or a cron descriptor such as @weekly or @every 36h)",
			ErrInvalidTime, token, strings.Join(Tokens, ", "))
	}

	first := sched.Next(now)
	second := sched.Next(first)
	if first.IsZero() || second.IsZero() || !second.After(first) {
		return Age{}, fmt.Errorf("%w: %q never repeats", ErrInvalidTime, token)
	}

	return Age{Token: t, Threshold: second.Sub(first)}, nil
}

// sizePattern splits "<number> <unit>" where unit is k/m/g/t/p, optionally
// binary (i) and optionally followed by b.
var sizePattern = regexp.MustCompile(`^(\d+(?:\.\d+)?) ?([kKmMgGtTpP]?)([iI]?)([bB]?)$`)

// ParseSize accepts whole byte counts ("1000000", "1000000B"), decimal human
// sizes ("5MB", "1.5GB") and binary ones ("5MiB").
func ParseSize(value string) (Size, error) {
	v := strings.TrimSpace(value)
	if v == "" {
		return Size{}, fmt.Errorf("%w: empty value", ErrInvalidSize)
	}

	m := sizePattern.FindStringSubmatch(v)
	if m == nil {
		return Size{}, fmt.Errorf("%w: %q", ErrInvalidSize, value)
	}
	num, prefix, binary := m[1], m[2], m[3] != ""

	if prefix == "" {
		if binary {
			return Size{}, fmt.Errorf("%w: %q", ErrInvalidSize, value)
		}
		n, err := strconv.ParseInt(num, 10, 64)
		if errors.Is(err, strconv.ErrRange) {
			return Size{}, fmt.Errorf("%w: %q overflows", ErrInvalidSize, value)
		}
		if err != nil {
			return Size{}, fmt.Errorf("%w: %q is not a whole number of bytes", ErrInvalidSize, value)
		}
		return NewSize(n)
	}

	base, parse := 1000.0, units.FromHumanSize
	if binary {
		base, parse = 1024.0, units.RAMInBytes
	}

	f, err := strconv.ParseFloat(num, 64)
	if err != nil {
		return Size{}, fmt.Errorf("%w: %q", ErrInvalidSize, value)
	}
	exp := strings.Index("kmgtp", strings.ToLower(prefix)) + 1
	if f*math.Pow(base, float64(exp)) >= math.MaxInt64 {
		return Size{}, fmt.Errorf("%w: %q overflows", ErrInvalidSize, value)
	}

	n, err := parse(v)
	if err != nil {
		return Size{}, fmt.Errorf("%w: %q", ErrInvalidSize, value)
	}
	return NewSize(n)
}

// NewSize validates a byte threshold.
func NewSize(n int64) (Size, error) {
	if n < MinSize {
		return Size{}, fmt.Errorf("%w: minimum size for rotation is 1 MB (%d bytes), got %d", ErrSizeTooSmall, MinSize, n)
	}
	return Size{MinBytes: n}, nil
}

// Match reports whether e qualifies under c at now, with a short reason.
func Match(c Criterion, e entry.Entry, now time.Time) (bool, string) {
	switch c := c.(type) {
	case Age:
		expires := e.CreatedAt.Add(c.Threshold)
		if expires.Before(now) {
			return true, fmt.Sprintf("created %s, older than %s", e.CreatedAt.Format(time.RFC3339), c.Threshold)
		}
		return false, fmt.Sprintf("created %s, within %s", e.CreatedAt.Format(time.RFC3339), c.Threshold)

	case Size:
		if !e.Regular {
			return false, "not a regular file"
		}
		if e.Size > c.MinBytes {
			return true, fmt.Sprintf("%d bytes exceeds %d", e.Size, c.MinBytes)
		}
		return false, fmt.Sprintf("%d bytes within %d", e.Size, c.MinBytes)

	default:
		return false, "no criterion"
	}
}

// Kind returns "age" or "size".
func Kind(c Criterion) string {
	switch c.(type) {
	case Age:
		return "age"
	case Size:
		return "size"
	default:
		return "unknown"
	}
}
