//go:build !(linux || darwin || freebsd || netbsd || openbsd)

package fs

import (
	"os"
	"time"
)

// changeTime falls back to the modification time where no status change time exists.
func changeTime(path string) (time.Time, error) {
	info, err := os.Stat(path)
	if err != nil {
		return time.Time{}, err
	}
	return info.ModTime(), nil
}
