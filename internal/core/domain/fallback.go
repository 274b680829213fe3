package domain

// FallbackKind tags the shape of a Fallback.
type FallbackKind uint8

const (
	// FallbackNone means nothing is registered when compilation is impossible.
	FallbackNone FallbackKind = iota
	// FallbackSingle registers one precompiled stylesheet.
	FallbackSingle
	// FallbackMany registers several precompiled stylesheets in order.
	FallbackMany
)

// Fallback lists the precompiled stylesheets used when a source cannot be compiled.
// Entries are fancy paths.
type Fallback struct {
	kind  FallbackKind
	paths []FancyPath
}

// NoFallback returns the empty fallback.
func NoFallback() Fallback {
	return Fallback{kind: FallbackNone}
}

// SingleFallback returns a fallback with one stylesheet.
func SingleFallback(path FancyPath) Fallback {
	return Fallback{kind: FallbackSingle, paths: []FancyPath{path}}
}

// FallbackList returns a fallback with the given stylesheets.
// An empty list is equivalent to NoFallback.
func FallbackList(paths ...FancyPath) Fallback {
	if len(paths) == 0 {
		return NoFallback()
	}
	copied := make([]FancyPath, len(paths))
	copy(copied, paths)
	return Fallback{kind: FallbackMany, paths: copied}
}

// ParseFallback builds a fallback from raw command line values.
func ParseFallback(values []string) Fallback {
	switch len(values) {
	case 0:
		return NoFallback()
	case 1:
		return SingleFallback(FancyPath(values[0]))
	default:
		paths := make([]FancyPath, len(values))
		for i, v := range values {
			paths[i] = FancyPath(v)
		}
		return FallbackList(paths...)
	}
}

// Kind returns the variant tag.
func (f Fallback) Kind() FallbackKind {
	return f.kind
}

// Paths returns the fallback stylesheets in registration order.
func (f Fallback) Paths() []FancyPath {
	if f.kind == FallbackNone {
		return nil
	}
	copied := make([]FancyPath, len(f.paths))
	copy(copied, f.paths)
	return copied
}
