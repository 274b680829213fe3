package resolver

import (
	"path/filepath"
	"strings"

	"go.trai.ch/overlay/internal/core/domain"
	"go.trai.ch/overlay/internal/core/ports"
)

// Selector chooses between the normal and the override location of a fancy
// path by probing the site root, and renders the choice as a URL or a local path.
type Selector struct {
	resolver *Resolver
	site     ports.SiteRoot
	fs       ports.FileSystem
}

// NewSelector creates a new Selector.
func NewSelector(resolver *Resolver, site ports.SiteRoot, fsys ports.FileSystem) *Selector {
	return &Selector{
		resolver: resolver,
		site:     site,
		fs:       fsys,
	}
}

// Locations resolves a fancy path without probing the filesystem.
func (s *Selector) Locations(path domain.FancyPath) domain.ResolvedLocation {
	return s.resolver.Resolve(path)
}

// Chosen returns the site-relative location that wins for a fancy path:
// the template override when it exists on disk, the normal location otherwise.
func (s *Selector) Chosen(path domain.FancyPath) string {
	return s.choose(s.resolver.Resolve(path))
}

// Select renders the chosen location of a fancy path, as an absolute
// filesystem path when local is true and as a public URL otherwise.
func (s *Selector) Select(path domain.FancyPath, local bool) string {
	chosen := s.choose(s.resolver.Resolve(path))

	if local {
		return s.localPath(chosen)
	}

	return joinURL(s.site.URL(), chosen)
}

// URL renders the chosen location of a fancy path as a public URL.
func (s *Selector) URL(path domain.FancyPath) string {
	return s.Select(path, false)
}

// LocalPath renders the chosen location of a fancy path as an absolute filesystem path.
func (s *Selector) LocalPath(path domain.FancyPath) string {
	return s.Select(path, true)
}

// SitePath places a site-relative location below the site root.
func (s *Selector) SitePath(rel string) string {
	return s.localPath(rel)
}

func (s *Selector) choose(loc domain.ResolvedLocation) string {
	if loc.HasAlternate && s.fs.Exists(s.localPath(loc.Alternate)) {
		return loc.Alternate
	}
	return loc.Normal
}

func (s *Selector) localPath(rel string) string {
	root := strings.TrimRight(s.site.Path(), string(filepath.Separator))
	return root + "/" + rel
}

// joinURL joins a base URL and a site-relative path with exactly one slash.
func joinURL(base, rel string) string {
	return strings.TrimRight(base, "/") + "/" + strings.TrimLeft(rel, "/")
}
