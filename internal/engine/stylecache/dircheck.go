package stylecache

import (
	"sync"

	"go.trai.ch/overlay/internal/core/ports"
)

// usableDirs memoizes cache directory usability per absolute directory for
// the lifetime of the process.
var usableDirs sync.Map // map[string]func() bool

// dirUsable reports whether dir exists or could be created.
// The first caller for a directory decides; later callers reuse the answer.
func dirUsable(fsys ports.FileSystem, logger ports.Logger, dir string) bool {
	check, _ := usableDirs.LoadOrStore(dir, sync.OnceValue(func() bool {
		if fsys.Exists(dir) {
			return true
		}
		if err := fsys.MkdirAll(dir); err != nil {
			logger.Warn("cache directory unavailable: " + dir)
			return false
		}
		return true
	}))
	return check.(func() bool)()
}
