package domain

import "time"

// CompileRecord is the manifest entry written after a successful compilation.
type CompileRecord struct {
	Source     string    `json:"source,omitzero"`
	SourceID   string    `json:"source_id,omitzero"`
	CachePath  string    `json:"cache_path,omitzero"`
	CompiledAt time.Time `json:"compiled_at,omitzero"`
}
