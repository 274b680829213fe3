package ports

import "go.trai.ch/overlay/internal/core/domain"

// ManifestStore records which compiled stylesheet belongs to which source.
//
//go:generate mockgen -source=manifest.go -destination=mocks/mock_manifest.go -package=mocks
type ManifestStore interface {
	// Get retrieves the record of a source inside the cache directory.
	// Returns nil, nil if not found.
	Get(cacheDir, source string) (*domain.CompileRecord, error)

	// Put stores the record.
	Put(cacheDir string, record domain.CompileRecord) error

	// List returns every record of the cache directory.
	List(cacheDir string) ([]domain.CompileRecord, error)
}
