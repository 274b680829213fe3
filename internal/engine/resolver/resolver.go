// Package resolver turns fancy paths into site-relative locations and picks
// between the standard location and the active template's override.
package resolver

import (
	"strings"

	"go.trai.ch/overlay/internal/core/domain"
	"go.trai.ch/overlay/internal/core/ports"
)

// Resolver parses fancy paths into their normal and alternate locations.
type Resolver struct {
	site     ports.SiteRoot
	template ports.TemplateProvider
}

// New creates a new Resolver.
func New(site ports.SiteRoot, template ports.TemplateProvider) *Resolver {
	return &Resolver{
		site:     site,
		template: template,
	}
}

// Resolve parses a fancy path. It never fails: unknown schemes resolve as site paths.
func (r *Resolver) Resolve(path domain.FancyPath) domain.ResolvedLocation {
	scheme, suffix := path.Split()

	switch scheme {
	case domain.SchemeMedia:
		return r.resolveMedia(suffix)
	case domain.SchemeAdmin:
		return domain.ResolvedLocation{
			Normal: domain.AdminDirName + "/" + suffix,
		}
	default:
		return domain.ResolvedLocation{
			Normal: suffix,
		}
	}
}

func (r *Resolver) resolveMedia(suffix string) domain.ResolvedLocation {
	file, query, _ := strings.Cut(suffix, "?")

	var prefix string
	if r.site.IsAdmin() {
		prefix = domain.AdminDirName + "/"
	}

	return domain.ResolvedLocation{
		Normal:       domain.MediaDirName + "/" + file,
		Alternate:    prefix + domain.TemplateMediaPath(r.template.Template()) + file,
		HasAlternate: true,
		Query:        query,
	}
}
