// Package cas stores compile manifests next to the compiled stylesheets.
package cas

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"go.trai.ch/overlay/internal/core/domain"
	"go.trai.ch/zerr"
)

const recordExt = ".json"

// Store implements ports.ManifestStore using a file per source.
type Store struct{}

// NewStore creates a new Store.
func NewStore() *Store {
	return &Store{}
}

// Get retrieves the record of a source. It returns nil, nil when there is none.
func (s *Store) Get(cacheDir, source string) (*domain.CompileRecord, error) {
	filename := s.filename(cacheDir, source)
	//nolint:gosec // Path is constructed from the cache directory and a hashed filename
	data, err := os.ReadFile(filename)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, zerr.With(zerr.Wrap(err, domain.ErrManifestReadFailed.Error()), "path", filename)
	}

	var rec domain.CompileRecord
	if err := json.Unmarshal(data, &rec); err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrManifestUnmarshalFailed.Error()), "path", filename)
	}

	return &rec, nil
}

// Put stores the record, replacing any previous record of the same source.
func (s *Store) Put(cacheDir string, rec domain.CompileRecord) error {
	data, err := json.MarshalIndent(rec, "", "  ")
	if err != nil {
		return zerr.Wrap(err, domain.ErrManifestMarshalFailed.Error())
	}

	filename := s.filename(cacheDir, rec.Source)
	if err := os.MkdirAll(filepath.Dir(filename), domain.DirPerm); err != nil {
		return zerr.Wrap(err, domain.ErrManifestCreateFailed.Error())
	}

	if err := os.WriteFile(filename, data, domain.FilePerm); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrManifestWriteFailed.Error()), "path", filename)
	}

	return nil
}

// List returns every record of the cache directory in no particular order.
// A missing manifest directory yields no records.
func (s *Store) List(cacheDir string) ([]domain.CompileRecord, error) {
	dir := filepath.Join(cacheDir, domain.ManifestDirName)
	entries, err := os.ReadDir(dir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, zerr.With(zerr.Wrap(err, domain.ErrManifestReadFailed.Error()), "path", dir)
	}

	records := make([]domain.CompileRecord, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), recordExt) {
			continue
		}

		filename := filepath.Join(dir, entry.Name())
		//nolint:gosec // Path comes from listing the manifest directory
		data, err := os.ReadFile(filename)
		if err != nil {
			return nil, zerr.With(zerr.Wrap(err, domain.ErrManifestReadFailed.Error()), "path", filename)
		}

		var rec domain.CompileRecord
		if err := json.Unmarshal(data, &rec); err != nil {
			return nil, zerr.With(zerr.Wrap(err, domain.ErrManifestUnmarshalFailed.Error()), "path", filename)
		}
		records = append(records, rec)
	}

	return records, nil
}

func (s *Store) filename(cacheDir, source string) string {
	hash := sha256.Sum256([]byte(source))
	return filepath.Join(cacheDir, domain.ManifestDirName, hex.EncodeToString(hash[:])+recordExt)
}
