package domain

import "go.trai.ch/zerr"

var (
	// ErrConfigReadFailed is returned when the config file cannot be read.
	ErrConfigReadFailed = zerr.New("failed to read config file")

	// ErrConfigParseFailed is returned when the config file cannot be parsed.
	ErrConfigParseFailed = zerr.New("failed to parse config file")

	// ErrInvalidTemplateName is returned when the active template name contains path separators or is empty.
	ErrInvalidTemplateName = zerr.New("template name can only contain alphanumeric characters, dots, hyphens and underscores")

	// ErrInvalidCachePath is returned when the cache sub-path is absolute or escapes the site root.
	ErrInvalidCachePath = zerr.New("cache path must be relative to the site root")

	// ErrInvalidRequestURL is returned when the current request URL cannot be parsed.
	ErrInvalidRequestURL = zerr.New("invalid request url")

	// ErrInvalidSiteURL is returned when the public site URL cannot be parsed.
	ErrInvalidSiteURL = zerr.New("invalid site url")

	// ErrFailedToGetRoot is returned when the site root path cannot be determined.
	ErrFailedToGetRoot = zerr.New("failed to get absolute path of site root")

	// ErrNoSourcesSpecified is returned when a command needs at least one fancy path.
	ErrNoSourcesSpecified = zerr.New("no sources specified")

	// ErrNoRoutesSpecified is returned when the route command gets no partial routes.
	ErrNoRoutesSpecified = zerr.New("no routes specified")

	// ErrSourceStatFailed is returned when the timestamps of a source file cannot be read.
	ErrSourceStatFailed = zerr.New("failed to stat source file")

	// ErrCompileFailed is returned when the compilation engine rejects a source.
	ErrCompileFailed = zerr.New("stylesheet compilation failed")

	// ErrImportNotFound is returned when an @import cannot be found on the search path.
	ErrImportNotFound = zerr.New("import not found")

	// ErrImportCycle is returned when stylesheet imports form a cycle.
	ErrImportCycle = zerr.New("import cycle detected")

	// ErrMinifyFailed is returned when the minifier rejects the stylesheet.
	ErrMinifyFailed = zerr.New("failed to minify stylesheet")

	// ErrCacheWriteFailed is returned when the compiled stylesheet cannot be written.
	ErrCacheWriteFailed = zerr.New("failed to write compiled stylesheet")

	// ErrCacheCleanFailed is returned when the cache directory cannot be removed.
	ErrCacheCleanFailed = zerr.New("failed to clean cache directory")

	// ErrCacheListFailed is returned when the cache directory cannot be listed.
	ErrCacheListFailed = zerr.New("failed to list cache directory")

	// ErrManifestCreateFailed is returned when the manifest directory cannot be created.
	ErrManifestCreateFailed = zerr.New("failed to create manifest directory")

	// ErrManifestReadFailed is returned when a manifest record cannot be read.
	ErrManifestReadFailed = zerr.New("failed to read manifest record")

	// ErrManifestUnmarshalFailed is returned when a manifest record cannot be unmarshaled.
	ErrManifestUnmarshalFailed = zerr.New("failed to unmarshal manifest record")

	// ErrManifestMarshalFailed is returned when a manifest record cannot be marshaled.
	ErrManifestMarshalFailed = zerr.New("failed to marshal manifest record")

	// ErrManifestWriteFailed is returned when a manifest record cannot be written.
	ErrManifestWriteFailed = zerr.New("failed to write manifest record")

	// ErrWatcherStartFailed is returned when the file watcher cannot be started.
	ErrWatcherStartFailed = zerr.New("failed to start file watcher")
)
