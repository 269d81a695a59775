package rotator

import (
	"path/filepath"
	"time"
)

// BakDir is the subdirectory of the scanned directory that receives rotated entries.
const BakDir = "bak"

// DateLayout renders the rotation suffix as MM-DD-YYYY.
const DateLayout = "01-02-2006"

func DateSuffix(t time.Time) string {
	return t.Format(DateLayout)
}

// Destination returns <dir>/bak/<name>.<MM-DD-YYYY>.
func Destination(dir, name string, at time.Time) string {
	return filepath.Join(dir, BakDir, name+"."+DateSuffix(at))
}
