package app

import (
	"context"
	"fmt"
	"path/filepath"
	"slices"
	"strings"
	"sync"

	"go.trai.ch/overlay/internal/adapters/watcher"
	"go.trai.ch/overlay/internal/core/domain"
	"go.trai.ch/zerr"
)

// Watch compiles every source, then recompiles all of them whenever a file
// in a source or override directory changes. It returns when ctx is done.
func (a *App) Watch(ctx context.Context, paths []domain.FancyPath, opts Options, copts CompileOptions) (err error) {
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
	if err := a.writeDocument(doc); err != nil {
		return err
	}

	w, err := a.newWatcher()
	if err != nil {
		return err
	}
	defer func() {
		if stopErr := w.Stop(); stopErr != nil && err == nil {
			err = zerr.Wrap(stopErr, "failed to stop file watcher")
		}
	}()

	dirs := watchDirs(s, paths)
	if err := w.Start(ctx, dirs...); err != nil {
		return err
	}
	a.logger.Info(fmt.Sprintf("watching %d directories", len(dirs)))

	var mu sync.Mutex
	debouncer := watcher.NewDebouncer(watcher.DefaultDebounceWindow, func(changed []string) {
		mu.Lock()
		defer mu.Unlock()

		if ctx.Err() != nil {
			return
		}

		a.logger.Info(fmt.Sprintf("%d files changed, recompiling", len(changed)))
		doc, err := a.compileAll(ctx, s.cache, paths, copts)
		if err != nil {
			a.logger.Error(err)
			return
		}
		if err := a.writeDocument(doc); err != nil {
			a.logger.Error(err)
		}
	})

	cacheDir := s.cache.Dir() + string(filepath.Separator)
	for event := range w.Events() {
		if strings.HasPrefix(event.Path, cacheDir) {
			continue
		}
		debouncer.Add(event.Path)
	}

	// Wait for a batch that is still compiling.
	mu.Lock()
	defer mu.Unlock()

	return nil
}

// watchDirs lists the directories holding the normal and override location
// of every source.
func watchDirs(s *session, paths []domain.FancyPath) []string {
	var dirs []string
	for _, p := range paths {
		loc := s.selector.Locations(p)
		dirs = append(dirs, filepath.Dir(s.selector.SitePath(loc.Normal)))
		if loc.HasAlternate {
			dirs = append(dirs, filepath.Dir(s.selector.SitePath(loc.Alternate)))
		}
	}
	slices.Sort(dirs)
	return slices.Compact(dirs)
}
