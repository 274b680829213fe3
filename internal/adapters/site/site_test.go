package site_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/overlay/internal/adapters/site"
	"go.trai.ch/overlay/internal/core/domain"
)

func settings() domain.Settings {
	return domain.Settings{
		Root:         "/srv/site",
		URL:          "https://example.test/",
		Template:     "protostar",
		CacheSubpath: domain.DefaultCacheSubpath,
		Request:      "index.php?option=com_foo&view=cpanel&id=3&id=4",
	}
}

func TestSite_Accessors(t *testing.T) {
	s := site.New(settings())

	assert.Equal(t, "/srv/site", s.Path())
	assert.Equal(t, "https://example.test/", s.URL())
	assert.Equal(t, "https://example.test", s.BaseURL())
	assert.False(t, s.IsAdmin())
	assert.Equal(t, "protostar", s.Template())
}

func TestSite_BaseURL(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(s *domain.Settings)
		want   string
	}{
		{name: "site", mutate: func(*domain.Settings) {}, want: "https://example.test"},
		{name: "admin", mutate: func(s *domain.Settings) { s.Admin = true }, want: "https://example.test/administrator"},
		{
			name:   "configured",
			mutate: func(s *domain.Settings) { s.BaseURL = "https://cdn.example.test/sub" },
			want:   "https://cdn.example.test/sub",
		},
		{name: "relative root", mutate: func(s *domain.Settings) { s.URL = "/" }, want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := settings()
			tt.mutate(&cfg)
			assert.Equal(t, tt.want, site.New(cfg).BaseURL())
		})
	}
}

func TestSite_Query(t *testing.T) {
	s := site.New(settings())

	assert.Equal(t, map[string]string{
		"option": "com_foo",
		"view":   "cpanel",
		"id":     "3",
	}, s.Query())

	q := s.Query()
	q["option"] = "com_bar"
	assert.Equal(t, "com_foo", s.Query()["option"])
}

func TestSite_Query_Absolute(t *testing.T) {
	cfg := settings()
	cfg.Request = "https://example.test/administrator/index.php?option=com_foo&tmpl=component"

	assert.Equal(t, map[string]string{
		"option": "com_foo",
		"tmpl":   "component",
	}, site.New(cfg).Query())
}

func TestSite_Query_Empty(t *testing.T) {
	cfg := settings()
	cfg.Request = ""

	assert.Empty(t, site.New(cfg).Query())
}

func TestSite_Normalize(t *testing.T) {
	tests := []struct {
		name  string
		base  string
		sef   bool
		route string
		want  string
	}{
		{
			name:  "plain",
			route: "index.php?option=com_foo&view=item",
			want:  "/index.php?option=com_foo&view=item",
		},
		{
			name:  "plain below base path",
			base:  "https://example.test/administrator",
			route: "index.php?option=com_foo",
			want:  "/administrator/index.php?option=com_foo",
		},
		{
			name:  "sef option and view",
			sef:   true,
			route: "index.php?option=com_foo&view=item&layout=edit&id=7",
			want:  "/foo/item?id=7&layout=edit",
		},
		{
			name:  "sef option only",
			sef:   true,
			route: "index.php?option=com_foo",
			want:  "/foo",
		},
		{
			name:  "sef bare index",
			sef:   true,
			route: "index.php",
			want:  "/",
		},
		{
			name:  "sef view without option stays in query",
			sef:   true,
			route: "index.php?view=item",
			want:  "/?view=item",
		},
		{
			name:  "sef foreign route",
			sef:   true,
			route: "feed.xml",
			want:  "/feed.xml",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := settings()
			cfg.BaseURL = tt.base
			cfg.SEF = tt.sef
			assert.Equal(t, tt.want, site.New(cfg).Normalize(tt.route))
		})
	}
}
