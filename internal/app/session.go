package app

import (
	"context"
	"errors"
	"path/filepath"

	"go.trai.ch/overlay/internal/adapters/detector"
	"go.trai.ch/overlay/internal/adapters/document"
	"go.trai.ch/overlay/internal/adapters/site"
	"go.trai.ch/overlay/internal/adapters/telemetry"
	"go.trai.ch/overlay/internal/core/domain"
	"go.trai.ch/overlay/internal/engine/resolver"
	"go.trai.ch/overlay/internal/engine/router"
	"go.trai.ch/overlay/internal/engine/stylecache"
	"go.trai.ch/zerr"
)

// formatSetter is implemented by loggers that can switch to JSON output.
type formatSetter interface {
	SetJSON(enable bool)
}

// session holds the engine of one invocation.
type session struct {
	settings domain.Settings
	selector *resolver.Selector
	cache    *stylecache.Cache
	router   *router.Router
	doc      *document.Document
	shutdown func(context.Context) error
}

func (a *App) open(opts Options) (*session, error) {
	a.configureLogging(opts.LogFormat)

	loaded, err := a.configLoader.Load(a.cwd)
	if err != nil {
		return nil, zerr.Wrap(err, "failed to load configuration")
	}

	settings := loaded.Apply(opts.Overrides)
	if opts.Overrides.Root != "" {
		root, err := filepath.Abs(opts.Overrides.Root)
		if err != nil {
			return nil, zerr.With(zerr.Wrap(err, domain.ErrFailedToGetRoot.Error()), "root", opts.Overrides.Root)
		}
		settings.Root = root
	}
	if err := settings.Validate(); err != nil {
		return nil, err
	}

	st := site.New(settings)
	selector := resolver.NewSelector(resolver.New(st, st), st, a.fs)
	doc := document.New()

	s := &session{
		settings: settings,
		selector: selector,
		cache: stylecache.New(
			selector, st, a.fs, a.compiler, doc, a.manifest, a.logger, a.tracer, settings.CacheSubpath,
		),
		router:   router.New(st),
		doc:      doc,
		shutdown: func(context.Context) error { return nil },
	}

	if opts.Trace {
		s.shutdown = telemetry.Setup(telemetry.NewBridge(a.logger))
	}

	return s, nil
}

// close flushes telemetry and joins a shutdown failure into *errp.
func (s *session) close(ctx context.Context, errp *error) {
	if err := s.shutdown(context.WithoutCancel(ctx)); err != nil {
		*errp = errors.Join(*errp, err)
	}
}

func (a *App) configureLogging(flag string) {
	setter, ok := a.logger.(formatSetter)
	if !ok {
		return
	}
	format := detector.ResolveFormat(detector.DetectEnvironment(), flag)
	setter.SetJSON(format == detector.FormatJSON)
}
