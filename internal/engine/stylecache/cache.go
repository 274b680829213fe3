// Package stylecache compiles stylesheet sources into the site's cache
// directory once per source version and registers the result with the page.
package stylecache

import (
	"context"
	"path/filepath"
	"strings"
	"time"

	"go.trai.ch/overlay/internal/core/domain"
	"go.trai.ch/overlay/internal/core/ports"
	"go.trai.ch/overlay/internal/engine/resolver"
	"go.trai.ch/zerr"
)

// Cache is the compiled-asset cache.
type Cache struct {
	selector     *resolver.Selector
	site         ports.SiteRoot
	fs           ports.FileSystem
	compiler     ports.Compiler
	doc          ports.Document
	manifest     ports.ManifestStore
	logger       ports.Logger
	tracer       ports.Tracer
	cacheSubpath string
	now          func() time.Time
}

// New creates a new Cache writing into cacheSubpath below the site root.
func New(
	selector *resolver.Selector,
	site ports.SiteRoot,
	fsys ports.FileSystem,
	compiler ports.Compiler,
	doc ports.Document,
	manifest ports.ManifestStore,
	logger ports.Logger,
	tracer ports.Tracer,
	cacheSubpath string,
) *Cache {
	return &Cache{
		selector:     selector,
		site:         site,
		fs:           fsys,
		compiler:     compiler,
		doc:          doc,
		manifest:     manifest,
		logger:       logger,
		tracer:       tracer,
		cacheSubpath: strings.Trim(cacheSubpath, "/"),
		now:          time.Now,
	}
}

// WithDocument returns a copy of the cache that registers into doc.
func (c *Cache) WithDocument(doc ports.Document) *Cache {
	clone := *c
	clone.doc = doc
	return &clone
}

// Dir returns the absolute cache directory.
func (c *Cache) Dir() string {
	return c.selector.SitePath(c.cacheSubpath)
}

// AddCSS registers the chosen location of a stylesheet.
func (c *Cache) AddCSS(path domain.FancyPath) {
	c.doc.AddStylesheet(c.selector.URL(path))
}

// AddJS registers the chosen location of a script.
func (c *Cache) AddJS(path domain.FancyPath) {
	c.doc.AddScript(c.selector.URL(path))
}

// Entry computes the cache entry of a source without compiling it.
// It returns false when the source does not exist.
func (c *Cache) Entry(path domain.FancyPath) (domain.CacheEntry, bool, error) {
	local := c.selector.LocalPath(path)
	if !c.fs.Exists(local) {
		return domain.CacheEntry{}, false, nil
	}

	entry, err := c.entryFor(local)
	if err != nil {
		return domain.CacheEntry{}, false, err
	}
	return entry, true, nil
}

// EnsureCompiled makes sure the compiled form of a stylesheet source exists in
// the cache directory and registers it with the document.
// When the source or the cache directory is unavailable the fallback is
// registered instead. Compilation failures are returned.
func (c *Cache) EnsureCompiled(
	ctx context.Context,
	path domain.FancyPath,
	fb domain.Fallback,
) (outcome domain.CompileOutcome, err error) {
	ctx, span := c.tracer.Start(ctx, "stylecache.ensure_compiled",
		ports.WithAttribute("overlay.source", path.String()),
	)
	defer func() {
		span.SetAttribute("overlay.outcome", outcome.String())
		if err != nil {
			span.RecordError(err)
		}
		span.End()
	}()

	// Step 1: Check the source and the cache directory.
	local := c.selector.LocalPath(path)
	cacheDir := c.Dir()

	if !dirUsable(c.fs, c.logger, cacheDir) || !c.fs.Exists(local) {
		return c.fallback(fb), nil
	}

	// Step 2: Derive the cache entry from the source timestamps.
	entry, err := c.entryFor(local)
	if err != nil {
		return domain.OutcomeUnavailable, err
	}
	span.SetAttribute("overlay.source_id", entry.SourceID)

	// Step 3: Compile unless the entry already exists.
	if c.fs.Exists(entry.CachePath) {
		span.SetAttribute("overlay.cached", true)
		c.ensureRecorded(cacheDir, local, entry)
	} else {
		if err := c.compile(ctx, path, local, entry); err != nil {
			return domain.OutcomeUnavailable, err
		}
		c.record(cacheDir, local, entry)
	}

	// Step 4: Register the compiled stylesheet.
	c.doc.AddStylesheet(c.compiledURL(entry))
	return domain.OutcomeCompiled, nil
}

func (c *Cache) entryFor(local string) (domain.CacheEntry, error) {
	times, err := c.fs.Times(local)
	if err != nil {
		return domain.CacheEntry{}, zerr.With(zerr.Wrap(err, domain.ErrSourceStatFailed.Error()), "source", local)
	}
	return domain.NewCacheEntry(c.Dir(), domain.NewSourceID(local, times.Modified, times.Changed)), nil
}

func (c *Cache) compile(ctx context.Context, path domain.FancyPath, local string, entry domain.CacheEntry) error {
	opts := ports.CompileOptions{
		Minify:      true,
		ImportPaths: c.importOrder(path, local),
	}

	if err := c.compiler.Compile(ctx, local, entry.CachePath, opts); err != nil {
		return zerr.With(
			zerr.With(zerr.Wrap(err, domain.ErrCompileFailed.Error()), "source", local),
			"dest", entry.CachePath,
		)
	}
	return nil
}

// record writes the manifest entry of a fresh compilation. Failures only warn.
func (c *Cache) record(cacheDir, local string, entry domain.CacheEntry) {
	if c.manifest == nil {
		return
	}

	err := c.manifest.Put(cacheDir, domain.CompileRecord{
		Source:     local,
		SourceID:   entry.SourceID,
		CachePath:  entry.CachePath,
		CompiledAt: c.now(),
	})
	if err != nil {
		c.logger.Warn("failed to record compilation of " + local + ": " + err.Error())
	}
}

// ensureRecorded restores the manifest entry of a cached compilation when it is
// missing or names another version, so Prune keeps the stylesheet.
func (c *Cache) ensureRecorded(cacheDir, local string, entry domain.CacheEntry) {
	if c.manifest == nil {
		return
	}

	rec, err := c.manifest.Get(cacheDir, local)
	if err != nil {
		c.logger.Warn("failed to read compilation record of " + local + ": " + err.Error())
		return
	}
	if rec != nil && rec.SourceID == entry.SourceID {
		return
	}
	c.record(cacheDir, local, entry)
}

// importOrder lists the directories searched for relative imports.
// The directory of the chosen file comes first unless it is the normal
// location, in which case the override directory takes precedence.
func (c *Cache) importOrder(path domain.FancyPath, local string) []string {
	loc := c.selector.Locations(path)
	if !loc.HasAlternate {
		return nil
	}

	current, _ := c.fs.Canonical(filepath.Dir(local))
	normal, hasNormal := c.fs.Canonical(filepath.Dir(c.selector.SitePath(loc.Normal)))
	alternate, hasAlternate := c.fs.Canonical(filepath.Dir(c.selector.SitePath(loc.Alternate)))

	var order []string
	if hasNormal && current == normal {
		if hasAlternate {
			order = append(order, alternate)
		}
		order = append(order, current)
		return order
	}

	if current != "" {
		order = append(order, current)
	}
	if hasNormal {
		order = append(order, normal)
	}
	return order
}

func (c *Cache) fallback(fb domain.Fallback) domain.CompileOutcome {
	if fb.Kind() == domain.FallbackNone {
		return domain.OutcomeUnavailable
	}
	for _, p := range fb.Paths() {
		c.AddCSS(p)
	}
	return domain.OutcomeFellBack
}

// compiledURL builds the public URL of a compiled stylesheet.
// The administrator suffix is removed so both contexts share one cache.
func (c *Cache) compiledURL(entry domain.CacheEntry) string {
	base := strings.TrimRight(c.site.BaseURL(), "/")
	base = strings.TrimSuffix(base, "/"+domain.AdminDirName)
	return base + "/" + c.cacheSubpath + "/" + entry.SourceID + domain.CompiledExt
}
