// Package config provides the configuration loader for overlay.
package config

import (
	"path/filepath"
	"strings"

	"go.trai.ch/overlay/internal/core/domain"
	"go.trai.ch/overlay/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// DefaultURL is the public root URL used when none is configured.
const DefaultURL = "/"

// Loader implements ports.ConfigLoader using a YAML file.
type Loader struct {
	Logger ports.Logger
	FS     FileSystem
}

// NewLoader creates a new Loader reading from the OS filesystem.
func NewLoader(logger ports.Logger) *Loader {
	return NewLoaderWithFS(logger, NewOSFS())
}

// NewLoaderWithFS creates a new Loader reading from fsys.
func NewLoaderWithFS(logger ports.Logger, fsys FileSystem) *Loader {
	return &Loader{Logger: logger, FS: fsys}
}

// Load discovers overlay.yaml by walking up from cwd and returns the settings.
// Without a configuration file the defaults are rooted at cwd.
func (l *Loader) Load(cwd string) (*domain.Settings, error) {
	absCwd, err := filepath.Abs(cwd)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrFailedToGetRoot.Error()), "cwd", cwd)
	}

	var file Overlayfile
	configDir := absCwd

	configPath, found := l.findConfiguration(absCwd)
	if found {
		if err := l.readAndUnmarshalYAML(configPath, &file); err != nil {
			return nil, zerr.With(err, "path", configPath)
		}
		configDir = filepath.Dir(configPath)
	} else {
		l.Logger.Info("no " + domain.ConfigFileName + " found, using defaults rooted at " + absCwd)
	}

	settings := buildSettings(configDir, &file)
	if err := settings.Validate(); err != nil {
		if found {
			return nil, zerr.With(err, "path", configPath)
		}
		return nil, err
	}

	return &settings, nil
}

func (l *Loader) findConfiguration(cwd string) (string, bool) {
	currentDir := cwd
	for {
		candidate := filepath.Join(currentDir, domain.ConfigFileName)
		if info, err := l.FS.Stat(candidate); err == nil && !info.IsDir() {
			return candidate, true
		}

		parentDir := filepath.Dir(currentDir)
		if parentDir == currentDir {
			return "", false
		}
		currentDir = parentDir
	}
}

func (l *Loader) readAndUnmarshalYAML(configPath string, target *Overlayfile) error {
	data, err := l.FS.ReadFile(configPath)
	if err != nil {
		return zerr.Wrap(err, domain.ErrConfigReadFailed.Error())
	}

	if err := yaml.Unmarshal(data, target); err != nil {
		return zerr.Wrap(err, domain.ErrConfigParseFailed.Error())
	}

	return nil
}

func buildSettings(configDir string, file *Overlayfile) domain.Settings {
	settings := domain.Settings{
		Root:         resolveRoot(configDir, file.Site.Root),
		URL:          withTrailingSlash(file.Site.URL),
		BaseURL:      strings.TrimRight(file.Site.Base, "/"),
		Admin:        file.Site.Admin,
		Template:     file.Template,
		CacheSubpath: strings.TrimRight(filepath.ToSlash(file.Cache), "/"),
		SEF:          file.SEF,
		Request:      file.Request,
	}

	if settings.URL == "" {
		settings.URL = DefaultURL
	}
	if settings.Template == "" {
		settings.Template = domain.DefaultTemplate
	}
	if file.Cache == "" {
		settings.CacheSubpath = domain.DefaultCacheSubpath
	}

	return settings
}

func resolveRoot(configDir, configuredRoot string) string {
	if configuredRoot == "" {
		return filepath.Clean(configDir)
	}
	if filepath.IsAbs(configuredRoot) {
		return filepath.Clean(configuredRoot)
	}
	return filepath.Clean(filepath.Join(configDir, configuredRoot))
}

func withTrailingSlash(u string) string {
	if u == "" || strings.HasSuffix(u, "/") {
		return u
	}
	return u + "/"
}
