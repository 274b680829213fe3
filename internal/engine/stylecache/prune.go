package stylecache

import (
	"context"
	"errors"
	"path/filepath"
	"strings"

	"go.trai.ch/overlay/internal/core/domain"
	"go.trai.ch/zerr"
)

// Prune removes compiled stylesheets that no manifest record references.
// It returns the removed paths. Without a manifest store nothing is removed.
func (c *Cache) Prune(ctx context.Context) (removed []string, err error) {
	_, span := c.tracer.Start(ctx, "stylecache.prune")
	defer func() {
		span.SetAttribute("overlay.removed", len(removed))
		if err != nil {
			span.RecordError(err)
		}
		span.End()
	}()

	cacheDir := c.Dir()
	if c.manifest == nil || !c.fs.Exists(cacheDir) {
		return nil, nil
	}

	records, err := c.manifest.List(cacheDir)
	if err != nil {
		return nil, err
	}

	referenced := make(map[string]struct{}, len(records))
	for _, rec := range records {
		referenced[rec.SourceID] = struct{}{}
	}

	entries, err := c.fs.ReadDir(cacheDir)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrCacheListFailed.Error()), "path", cacheDir)
	}

	var errs error
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || !strings.HasSuffix(name, domain.CompiledExt) {
			continue
		}
		if _, ok := referenced[strings.TrimSuffix(name, domain.CompiledExt)]; ok {
			continue
		}

		path := filepath.Join(cacheDir, name)
		if err := c.fs.Remove(path); err != nil {
			errs = errors.Join(errs, zerr.With(zerr.Wrap(err, domain.ErrCacheCleanFailed.Error()), "path", path))
			continue
		}
		removed = append(removed, path)
	}

	return removed, errs
}

// Clean removes the whole cache directory.
func (c *Cache) Clean(ctx context.Context) (err error) {
	_, span := c.tracer.Start(ctx, "stylecache.clean")
	defer func() {
		if err != nil {
			span.RecordError(err)
		}
		span.End()
	}()

	cacheDir := c.Dir()
	if err := c.fs.RemoveAll(cacheDir); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrCacheCleanFailed.Error()), "path", cacheDir)
	}
	usableDirs.Delete(cacheDir)
	return nil
}
