package fs

import (
	"context"
	"fmt"
	"os"
)

// wraps os.Rename with retry logic.
// Regular files that cannot be renamed across devices are copied and the
// source removed; anything else crossing devices fails.

func renameWithRetry(ctx context.Context, o *OSFS, oldPath, newPath string) error {
	rename := o.renameFunc()
	return retry(ctx, "rename", func() error {
		err := rename(oldPath, newPath)
		if err == nil || !isCrossDevice(err) {
			return err
		}
		return moveAcrossDevices(ctx, o, oldPath, newPath, err)
	})
}

// moveAcrossDevices never removes newPath: copyOnce cleans up its own partial
// output, and an existing destination belongs to someone else.
func moveAcrossDevices(ctx context.Context, f FS, oldPath, newPath string, renameErr error) error {
	src, err := f.Stat(oldPath)
	if err != nil {
		return err
	}
	if !src.Regular {
		return renameErr
	}

	if err := copyWithRetry(ctx, f, oldPath, newPath); err != nil {
		return fmt.Errorf("cross-device copy: %w", err)
	}

	if err := os.Remove(oldPath); err != nil {
		return fmt.Errorf("removing source after copy: %w", err)
	}
	return nil
}
