package domain

import (
	"net/url"
	"path/filepath"
	"regexp"

	"go.trai.ch/zerr"
)

// Settings is the configuration snapshot of one invocation.
type Settings struct {
	// Root is the absolute filesystem path of the site.
	Root string
	// URL is the public root URL of the site, with a trailing slash.
	URL string
	// BaseURL is the base URL of the current application.
	// In an administrative context it ends in /administrator.
	BaseURL string
	// Admin is true when the invocation runs in the administrative context.
	Admin bool
	// Template is the name of the active template.
	Template string
	// CacheSubpath is the site-relative directory of compiled stylesheets.
	CacheSubpath string
	// SEF enables search-engine-friendly route normalization.
	SEF bool
	// Request is the current request URL, relative to the site root or absolute.
	Request string
}

// Overrides are invocation values that replace configured settings when set.
type Overrides struct {
	Root     string
	Template string
	Request  string
	Admin    *bool
}

// Apply returns a copy of s with every set override applied.
func (s Settings) Apply(o Overrides) Settings {
	if o.Root != "" {
		s.Root = o.Root
	}
	if o.Template != "" {
		s.Template = o.Template
	}
	if o.Request != "" {
		s.Request = o.Request
	}
	if o.Admin != nil {
		s.Admin = *o.Admin
	}
	return s
}

var validTemplateNameRegex = regexp.MustCompile(`^[a-zA-Z0-9._-]+$`)

// Validate checks the fields that are later joined into paths and URLs.
func (s Settings) Validate() error {
	if !validTemplateNameRegex.MatchString(s.Template) || s.Template == "." || s.Template == ".." {
		return zerr.With(ErrInvalidTemplateName, "template", s.Template)
	}

	if s.CacheSubpath == "" || !filepath.IsLocal(filepath.FromSlash(s.CacheSubpath)) {
		return zerr.With(ErrInvalidCachePath, "cache", s.CacheSubpath)
	}

	if _, err := url.Parse(s.URL); err != nil {
		return zerr.With(zerr.Wrap(err, ErrInvalidSiteURL.Error()), "url", s.URL)
	}

	if s.BaseURL != "" {
		if _, err := url.Parse(s.BaseURL); err != nil {
			return zerr.With(zerr.Wrap(err, ErrInvalidSiteURL.Error()), "base", s.BaseURL)
		}
	}

	if _, err := url.Parse(s.Request); err != nil {
		return zerr.With(zerr.Wrap(err, ErrInvalidRequestURL.Error()), "request", s.Request)
	}

	return nil
}
