package domain

import (
	"fmt"
	"path/filepath"
	"strconv"
	"time"

	"github.com/cespare/xxhash/v2"
)

// CacheEntry identifies a compiled stylesheet in the cache directory.
type CacheEntry struct {
	// SourceID is derived from the source path and timestamps.
	SourceID string
	// CachePath is the absolute location of the compiled file.
	CachePath string
}

// NewSourceID derives the content identifier of a source file from its path,
// last modification time and last status change time.
func NewSourceID(path string, mtime, ctime time.Time) string {
	hasher := xxhash.New()

	_, _ = hasher.WriteString(strconv.FormatInt(mtime.UnixNano(), 10))
	_, _ = hasher.Write([]byte{0})
	_, _ = hasher.WriteString(strconv.FormatInt(ctime.UnixNano(), 10))
	_, _ = hasher.Write([]byte{0})
	_, _ = hasher.WriteString(path)

	return fmt.Sprintf("%016x", hasher.Sum64())
}

// NewCacheEntry places a source id inside the cache directory.
func NewCacheEntry(cacheDir, sourceID string) CacheEntry {
	return CacheEntry{
		SourceID:  sourceID,
		CachePath: filepath.Join(cacheDir, sourceID+CompiledExt),
	}
}
