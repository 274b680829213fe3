// Package app implements the application layer for overlay.
package app

import (
	"context"
	"fmt"
	"io"
	"os"
	"path"
	"runtime"
	"strings"

	"go.trai.ch/overlay/internal/adapters/document"
	"go.trai.ch/overlay/internal/core/domain"
	"go.trai.ch/overlay/internal/core/ports"
	"go.trai.ch/overlay/internal/engine/stylecache"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

// WatcherFactory opens a file watcher on demand.
type WatcherFactory func() (ports.Watcher, error)

// App represents the main application logic.
type App struct {
	configLoader ports.ConfigLoader
	fs           ports.FileSystem
	compiler     ports.Compiler
	manifest     ports.ManifestStore
	logger       ports.Logger
	tracer       ports.Tracer
	newWatcher   WatcherFactory
	out          io.Writer
	cwd          string
}

// New creates a new App instance.
func New(
	loader ports.ConfigLoader,
	fsys ports.FileSystem,
	compiler ports.Compiler,
	manifest ports.ManifestStore,
	log ports.Logger,
	tracer ports.Tracer,
	newWatcher WatcherFactory,
) *App {
	return &App{
		configLoader: loader,
		fs:           fsys,
		compiler:     compiler,
		manifest:     manifest,
		logger:       log,
		tracer:       tracer,
		newWatcher:   newWatcher,
		out:          os.Stdout,
		cwd:          ".",
	}
}

// WithOutput sets where command results are written.
func (a *App) WithOutput(w io.Writer) *App {
	a.out = w
	return a
}

// WithWorkingDir sets the directory configuration discovery starts from.
func (a *App) WithWorkingDir(dir string) *App {
	a.cwd = dir
	return a
}

// Options configures every command.
type Options struct {
	// Overrides replace configured settings.
	Overrides domain.Overrides
	// LogFormat is one of auto, pretty or json.
	LogFormat string
	// Trace logs a line for every finished span.
	Trace bool
}

// ResolveOptions configures Resolve.
type ResolveOptions struct {
	// Local prints filesystem paths instead of URLs.
	Local bool
	// Register adds the paths to the document and prints its head tags.
	Register bool
}

// Resolve prints the chosen location of every path.
func (a *App) Resolve(ctx context.Context, paths []domain.FancyPath, opts Options, ropts ResolveOptions) (err error) {
	if len(paths) == 0 {
		return domain.ErrNoSourcesSpecified
	}

	s, err := a.open(opts)
	if err != nil {
		return err
	}
	defer func() { s.close(ctx, &err) }()

	if ropts.Register {
		for _, p := range paths {
			if isScript(p) {
				s.cache.AddJS(p)
			} else {
				s.cache.AddCSS(p)
			}
		}
		return a.writeDocument(s.doc)
	}

	for _, p := range paths {
		if _, err := fmt.Fprintln(a.out, s.selector.Select(p, ropts.Local)); err != nil {
			return err
		}
	}
	return nil
}

// CompileOptions configures Compile and Watch.
type CompileOptions struct {
	// Fallback is registered for every source that cannot be compiled.
	Fallback domain.Fallback
	// Jobs bounds concurrent compilations. Zero means one per CPU.
	Jobs int
}

// Compile compiles every source and prints the resulting head tags.
func (a *App) Compile(ctx context.Context, paths []domain.FancyPath, opts Options, copts CompileOptions) (err error) {
	if len(paths) == 0 {
		return domain.ErrNoSourcesSpecified
	}

	s, err := a.open(opts)
	if err != nil {
		return err
	}
	defer func() { s.close(ctx, &err) }()

	doc, err := a.compileAll(ctx, s.cache, paths, copts)
	if err != nil {
		return err
	}
	s.doc.Merge(doc)

	return a.writeDocument(s.doc)
}

// compileAll compiles paths concurrently, each into its own document, and
// merges the documents in argument order. The first failure cancels the rest.
func (a *App) compileAll(
	ctx context.Context,
	cache *stylecache.Cache,
	paths []domain.FancyPath,
	copts CompileOptions,
) (*document.Document, error) {
	jobs := copts.Jobs
	if jobs <= 0 {
		jobs = runtime.NumCPU()
	}

	docs := make([]*document.Document, len(paths))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(jobs)

	for i, p := range paths {
		docs[i] = document.New()
		target := cache.WithDocument(docs[i])

		g.Go(func() error {
			outcome, err := target.EnsureCompiled(gctx, p, copts.Fallback)
			if err != nil {
				return zerr.With(err, "path", p.String())
			}
			a.report(p, outcome)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	merged := document.New()
	for _, doc := range docs {
		merged.Merge(doc)
	}
	return merged, nil
}

func (a *App) report(p domain.FancyPath, outcome domain.CompileOutcome) {
	switch outcome {
	case domain.OutcomeCompiled:
		a.logger.Info("compiled " + p.String())
	case domain.OutcomeFellBack:
		a.logger.Warn(p.String() + " cannot be compiled, using fallback")
	default:
		a.logger.Warn(p.String() + " cannot be compiled, nothing registered")
	}
}

// Route prints the public form of every partial route.
func (a *App) Route(ctx context.Context, partials []string, opts Options) (err error) {
	if len(partials) == 0 {
		return domain.ErrNoRoutesSpecified
	}

	s, err := a.open(opts)
	if err != nil {
		return err
	}
	defer func() { s.close(ctx, &err) }()

	for _, partial := range partials {
		if _, err := fmt.Fprintln(a.out, s.router.Route(partial)); err != nil {
			return err
		}
	}
	return nil
}

// Prune removes compiled stylesheets no manifest record references and
// prints their paths.
func (a *App) Prune(ctx context.Context, opts Options) (err error) {
	s, err := a.open(opts)
	if err != nil {
		return err
	}
	defer func() { s.close(ctx, &err) }()

	removed, err := s.cache.Prune(ctx)
	for _, p := range removed {
		if _, werr := fmt.Fprintln(a.out, p); werr != nil && err == nil {
			err = werr
		}
	}
	a.logger.Info(fmt.Sprintf("removed %d stale stylesheets", len(removed)))
	return err
}

// Clean removes the whole cache directory.
func (a *App) Clean(ctx context.Context, opts Options) (err error) {
	s, err := a.open(opts)
	if err != nil {
		return err
	}
	defer func() { s.close(ctx, &err) }()

	if err := s.cache.Clean(ctx); err != nil {
		return err
	}
	a.logger.Info("removed " + s.cache.Dir())
	return nil
}

func (a *App) writeDocument(doc *document.Document) error {
	_, err := io.WriteString(a.out, doc.Render())
	return err
}

func isScript(p domain.FancyPath) bool {
	_, suffix := p.Split()
	name, _, _ := strings.Cut(suffix, "?")
	return path.Ext(name) == ".js"
}
