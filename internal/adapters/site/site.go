// Package site exposes the configured site to the engine.
package site

import (
	"net/url"
	"path"
	"slices"
	"strings"

	"go.trai.ch/overlay/internal/core/domain"
)

const indexPrefix = "index.php"

// Site implements ports.SiteRoot, ports.TemplateProvider and ports.URLState
// over a settings snapshot.
type Site struct {
	settings domain.Settings
	query    map[string]string
}

// New creates a Site from settings.
func New(settings domain.Settings) *Site {
	return &Site{
		settings: settings,
		query:    parseQuery(settings.Request),
	}
}

// Path returns the absolute filesystem root of the site.
func (s *Site) Path() string {
	return s.settings.Root
}

// URL returns the public root URL of the site.
func (s *Site) URL() string {
	return s.settings.URL
}

// BaseURL returns the configured base URL, or the root URL followed by
// /administrator in an administrative context.
func (s *Site) BaseURL() string {
	if s.settings.BaseURL != "" {
		return s.settings.BaseURL
	}

	root := strings.TrimRight(s.settings.URL, "/")
	if s.settings.Admin {
		return root + "/" + domain.AdminDirName
	}
	return root
}

// IsAdmin reports whether the invocation runs in the administrative context.
func (s *Site) IsAdmin() bool {
	return s.settings.Admin
}

// Template returns the name of the active template.
func (s *Site) Template() string {
	return s.settings.Template
}

// Query returns a copy of the current request parameters.
func (s *Site) Query() map[string]string {
	out := make(map[string]string, len(s.query))
	for k, v := range s.query {
		out[k] = v
	}
	return out
}

// Normalize turns an index.php route into its public form below the base path.
func (s *Site) Normalize(route string) string {
	base := s.basePath()
	if !s.settings.SEF {
		return base + "/" + route
	}
	return base + sefRoute(route)
}

func (s *Site) basePath() string {
	u, err := url.Parse(s.BaseURL())
	if err != nil {
		return ""
	}
	return strings.TrimRight(u.Path, "/")
}

// sefRoute rewrites option and view into path segments.
// The remaining parameters stay in a sorted query string.
func sefRoute(route string) string {
	raw, ok := strings.CutPrefix(route, indexPrefix)
	if !ok {
		return "/" + route
	}
	raw = strings.TrimPrefix(raw, "?")

	values, _ := url.ParseQuery(raw)

	var segments []string
	if option := values.Get("option"); option != "" {
		segments = append(segments, strings.TrimPrefix(option, "com_"))
		values.Del("option")

		if view := values.Get("view"); view != "" {
			segments = append(segments, view)
			values.Del("view")
		}
	}

	out := "/" + path.Join(segments...)
	if len(segments) == 0 {
		out = "/"
	}

	if len(values) > 0 {
		keys := make([]string, 0, len(values))
		for k := range values {
			keys = append(keys, k)
		}
		slices.Sort(keys)

		parts := make([]string, 0, len(keys))
		for _, k := range keys {
			parts = append(parts, url.QueryEscape(k)+"="+url.QueryEscape(values.Get(k)))
		}
		out += "?" + strings.Join(parts, "&")
	}

	return out
}

// parseQuery keeps the first value of every parameter of the request URL.
func parseQuery(request string) map[string]string {
	query := make(map[string]string)
	if request == "" {
		return query
	}

	raw := request
	if u, err := url.Parse(request); err == nil {
		raw = u.RawQuery
	} else if _, after, found := strings.Cut(request, "?"); found {
		raw = after
	}

	values, _ := url.ParseQuery(raw)
	for k, v := range values {
		if len(v) > 0 {
			query[k] = v[0]
		}
	}

	return query
}
