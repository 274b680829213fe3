package stylecache

import "time"

// ResetUsableDirs forgets every memoized cache directory check.
func ResetUsableDirs() {
	usableDirs.Clear()
}

// SetNow replaces the clock used for manifest records.
func (c *Cache) SetNow(now func() time.Time) {
	c.now = now
}
