package domain_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/overlay/internal/core/domain"
)

func TestParseScheme(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want domain.Scheme
	}{
		{name: "media", in: "media", want: domain.SchemeMedia},
		{name: "admin", in: "admin", want: domain.SchemeAdmin},
		{name: "site", in: "site", want: domain.SchemeSite},
		{name: "unknown falls back to site", in: "ftp", want: domain.SchemeSite},
		{name: "empty falls back to site", in: "", want: domain.SchemeSite},
		{name: "case sensitive", in: "MEDIA", want: domain.SchemeSite},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, domain.ParseScheme(tt.in))
		})
	}
}

func TestScheme_Overridable(t *testing.T) {
	assert.True(t, domain.SchemeMedia.Overridable())
	assert.False(t, domain.SchemeAdmin.Overridable())
	assert.False(t, domain.SchemeSite.Overridable())
}

func TestFancyPath_Split(t *testing.T) {
	tests := []struct {
		name       string
		path       domain.FancyPath
		wantScheme domain.Scheme
		wantSuffix string
	}{
		{
			name:       "no scheme defaults to media",
			path:       "com_foo/css/site.less",
			wantScheme: domain.SchemeMedia,
			wantSuffix: "com_foo/css/site.less",
		},
		{
			name:       "media scheme",
			path:       "media://com_foo/css/site.less",
			wantScheme: domain.SchemeMedia,
			wantSuffix: "com_foo/css/site.less",
		},
		{
			name:       "admin scheme strips leading slashes",
			path:       "admin:///components/com_foo/foo.css",
			wantScheme: domain.SchemeAdmin,
			wantSuffix: "components/com_foo/foo.css",
		},
		{
			name:       "unknown scheme keeps suffix",
			path:       "cdn://lib/x.js",
			wantScheme: domain.SchemeSite,
			wantSuffix: "lib/x.js",
		},
		{
			name:       "only first separator splits",
			path:       "site://a://b",
			wantScheme: domain.SchemeSite,
			wantSuffix: "a://b",
		},
		{
			name:       "empty",
			path:       "",
			wantScheme: domain.SchemeMedia,
			wantSuffix: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			scheme, suffix := tt.path.Split()
			assert.Equal(t, tt.wantScheme, scheme)
			assert.Equal(t, tt.wantSuffix, suffix)
		})
	}
}

func TestNewSourceID(t *testing.T) {
	mtime := time.Unix(1700000000, 0)
	ctime := time.Unix(1700000100, 0)

	id := domain.NewSourceID("/site/media/a.less", mtime, ctime)
	require.Len(t, id, 16)

	t.Run("deterministic", func(t *testing.T) {
		assert.Equal(t, id, domain.NewSourceID("/site/media/a.less", mtime, ctime))
	})

	t.Run("changes with mtime", func(t *testing.T) {
		assert.NotEqual(t, id, domain.NewSourceID("/site/media/a.less", mtime.Add(time.Second), ctime))
	})

	t.Run("changes with sub-second mtime", func(t *testing.T) {
		assert.NotEqual(t, id, domain.NewSourceID("/site/media/a.less", mtime.Add(time.Millisecond), ctime))
	})

	t.Run("changes with ctime", func(t *testing.T) {
		assert.NotEqual(t, id, domain.NewSourceID("/site/media/a.less", mtime, ctime.Add(time.Second)))
	})

	t.Run("changes with path", func(t *testing.T) {
		assert.NotEqual(t, id, domain.NewSourceID("/site/media/b.less", mtime, ctime))
	})
}

func TestNewCacheEntry(t *testing.T) {
	entry := domain.NewCacheEntry("/site/media/overlay/compiled", "0123456789abcdef")

	assert.Equal(t, "0123456789abcdef", entry.SourceID)
	assert.Equal(t, "/site/media/overlay/compiled/0123456789abcdef.css", entry.CachePath)
}

func TestFallback(t *testing.T) {
	t.Run("none", func(t *testing.T) {
		fb := domain.NoFallback()
		assert.Equal(t, domain.FallbackNone, fb.Kind())
		assert.Nil(t, fb.Paths())
	})

	t.Run("single", func(t *testing.T) {
		fb := domain.SingleFallback("media://a.css")
		assert.Equal(t, domain.FallbackSingle, fb.Kind())
		assert.Equal(t, []domain.FancyPath{"media://a.css"}, fb.Paths())
	})

	t.Run("list keeps order", func(t *testing.T) {
		fb := domain.FallbackList("b.css", "a.css")
		assert.Equal(t, domain.FallbackMany, fb.Kind())
		assert.Equal(t, []domain.FancyPath{"b.css", "a.css"}, fb.Paths())
	})

	t.Run("empty list is none", func(t *testing.T) {
		assert.Equal(t, domain.FallbackNone, domain.FallbackList().Kind())
	})

	t.Run("paths are copied", func(t *testing.T) {
		fb := domain.FallbackList("a.css")
		paths := fb.Paths()
		paths[0] = "mutated"
		assert.Equal(t, []domain.FancyPath{"a.css"}, fb.Paths())
	})
}

func TestParseFallback(t *testing.T) {
	tests := []struct {
		name     string
		values   []string
		wantKind domain.FallbackKind
		want     []domain.FancyPath
	}{
		{name: "nil", values: nil, wantKind: domain.FallbackNone},
		{name: "one", values: []string{"a.css"}, wantKind: domain.FallbackSingle, want: []domain.FancyPath{"a.css"}},
		{
			name:     "many",
			values:   []string{"a.css", "b.css"},
			wantKind: domain.FallbackMany,
			want:     []domain.FancyPath{"a.css", "b.css"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fb := domain.ParseFallback(tt.values)
			assert.Equal(t, tt.wantKind, fb.Kind())
			assert.Equal(t, tt.want, fb.Paths())
		})
	}
}

func TestCompileOutcome_String(t *testing.T) {
	assert.Equal(t, "compiled", domain.OutcomeCompiled.String())
	assert.Equal(t, "fell-back", domain.OutcomeFellBack.String())
	assert.Equal(t, "unavailable", domain.OutcomeUnavailable.String())
}

func TestTemplateMediaPath(t *testing.T) {
	assert.Equal(t, "templates/protostar/media/", domain.TemplateMediaPath("protostar"))
}

func TestSettings_Apply(t *testing.T) {
	base := domain.Settings{Root: "/srv/site", Template: "protostar", Request: "index.php"}

	assert.Equal(t, base, base.Apply(domain.Overrides{}))

	admin := true
	got := base.Apply(domain.Overrides{Template: "beez3", Request: "index.php?option=com_foo", Admin: &admin})
	assert.Equal(t, "/srv/site", got.Root)
	assert.Equal(t, "beez3", got.Template)
	assert.Equal(t, "index.php?option=com_foo", got.Request)
	assert.True(t, got.Admin)
	assert.False(t, base.Admin)
}

func TestSettings_Validate(t *testing.T) {
	valid := domain.Settings{
		Root:         "/srv/site",
		URL:          "https://example.test/",
		Template:     "protostar",
		CacheSubpath: domain.DefaultCacheSubpath,
		Request:      "index.php?option=com_foo",
	}
	require.NoError(t, valid.Validate())

	tests := []struct {
		name    string
		mutate  func(s *domain.Settings)
		wantErr error
	}{
		{name: "empty template", mutate: func(s *domain.Settings) { s.Template = "" }, wantErr: domain.ErrInvalidTemplateName},
		{name: "template with slash", mutate: func(s *domain.Settings) { s.Template = "a/b" }, wantErr: domain.ErrInvalidTemplateName},
		{name: "template dot dot", mutate: func(s *domain.Settings) { s.Template = ".." }, wantErr: domain.ErrInvalidTemplateName},
		{name: "absolute cache", mutate: func(s *domain.Settings) { s.CacheSubpath = "/tmp/cache" }, wantErr: domain.ErrInvalidCachePath},
		{name: "escaping cache", mutate: func(s *domain.Settings) { s.CacheSubpath = "../cache" }, wantErr: domain.ErrInvalidCachePath},
		{name: "empty cache", mutate: func(s *domain.Settings) { s.CacheSubpath = "" }, wantErr: domain.ErrInvalidCachePath},
		{name: "bad url", mutate: func(s *domain.Settings) { s.URL = "http://[::1" }, wantErr: domain.ErrInvalidSiteURL},
		{name: "bad base", mutate: func(s *domain.Settings) { s.BaseURL = "http://[::1" }, wantErr: domain.ErrInvalidSiteURL},
		{name: "bad request", mutate: func(s *domain.Settings) { s.Request = "%zz" }, wantErr: domain.ErrInvalidRequestURL},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := valid
			tt.mutate(&s)
			err := s.Validate()
			require.Error(t, err)
			assert.ErrorContains(t, err, tt.wantErr.Error())
		})
	}
}
