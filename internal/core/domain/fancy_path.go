package domain

import (
	"os"
	"strings"
)

const schemeSeparator = "://"

// FancyPath is a scheme-prefixed reference to an asset, e.g. media://com_foo/css/site.less.
// A path without a scheme is a media path.
type FancyPath string

// Split separates the scheme from the scheme-relative suffix.
// Leading path separators are stripped from the suffix.
func (p FancyPath) Split() (Scheme, string) {
	scheme := SchemeMedia
	suffix := string(p)

	if name, rest, ok := strings.Cut(suffix, schemeSeparator); ok {
		scheme = ParseScheme(name)
		suffix = rest
	}

	return scheme, strings.TrimLeft(suffix, "/"+string(os.PathSeparator))
}

// String returns the fancy path as written.
func (p FancyPath) String() string {
	return string(p)
}
