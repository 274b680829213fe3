package domain

// Scheme is the prefix of a fancy path that selects its root.
type Scheme uint8

const (
	// SchemeSite resolves relative to the site root with no override.
	SchemeSite Scheme = iota
	// SchemeMedia resolves below media/ and honours template overrides.
	SchemeMedia
	// SchemeAdmin resolves below administrator/ with no override.
	SchemeAdmin
)

// ParseScheme maps a scheme name to a Scheme.
// Unknown names are treated as SchemeSite.
func ParseScheme(name string) Scheme {
	switch name {
	case "media":
		return SchemeMedia
	case "admin":
		return SchemeAdmin
	default:
		return SchemeSite
	}
}

// String returns the scheme name as written in a fancy path.
func (s Scheme) String() string {
	switch s {
	case SchemeMedia:
		return "media"
	case SchemeAdmin:
		return "admin"
	default:
		return "site"
	}
}

// Overridable reports whether a template may override locations of this scheme.
func (s Scheme) Overridable() bool {
	return s == SchemeMedia
}
