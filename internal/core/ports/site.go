package ports

// SiteRoot exposes where the site lives on disk and on the web.
//
//go:generate mockgen -source=site.go -destination=mocks/mock_site.go -package=mocks
type SiteRoot interface {
	// Path returns the absolute filesystem root of the site.
	Path() string

	// URL returns the public root URL of the site.
	URL() string

	// BaseURL returns the base URL of the current application.
	// In an administrative context it ends in /administrator.
	BaseURL() string

	// IsAdmin reports whether the current context is administrative.
	IsAdmin() bool
}

// TemplateProvider exposes the currently selected template.
type TemplateProvider interface {
	// Template returns the name of the active template.
	Template() string
}

// URLState exposes the current request URL.
type URLState interface {
	// Query returns the query parameters of the current request.
	// Repeated keys keep their first value.
	Query() map[string]string

	// Normalize turns a constructed index.php route into its public form.
	Normalize(route string) string
}
