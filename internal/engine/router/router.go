// Package router builds index.php routes from partial route strings, carrying
// the sticky query keys of the current request.
package router

import (
	"net/url"
	"strings"

	"go.trai.ch/overlay/internal/core/ports"
)

const (
	entryPoint  = "index.php"
	entryPrefix = entryPoint + "?"

	keyOption = "option"
	keyView   = "view"
	keyLayout = "layout"
	keyFormat = "format"

	defaultFormat = "html"
)

// Router merges partial routes into the current request and normalizes the result.
type Router struct {
	state ports.URLState
}

// New creates a new Router.
func New(state ports.URLState) *Router {
	return &Router{state: state}
}

// Route builds the public form of a partial route.
// The bare entry point is returned unchanged.
func (r *Router) Route(partial string) string {
	merged := Merge(r.state.Query(), partial)
	if isPassthrough(strings.TrimSpace(partial)) {
		return merged
	}
	return r.state.Normalize(merged)
}

// Merge combines the current query with a partial route.
//
// A partial starting with & is merged over the current query as a whole.
// Any other partial keeps its own parameters and inherits option, view
// (with layout only when view is inherited) and a non-html format from the
// current query.
func Merge(current map[string]string, partial string) string {
	partial = strings.TrimSpace(partial)

	if isPassthrough(partial) {
		return partial
	}

	if strings.HasPrefix(partial, "&") {
		return mergeAll(current, partial)
	}

	return carrySticky(current, strings.TrimPrefix(partial, entryPrefix))
}

func isPassthrough(partial string) bool {
	return partial == entryPoint || partial == entryPrefix
}

func mergeAll(current map[string]string, partial string) string {
	merged := make(url.Values, len(current))
	for k, v := range current {
		merged.Set(k, v)
	}

	// Malformed pairs are skipped; the well-formed rest still applies.
	vars, _ := url.ParseQuery(partial)
	for k, v := range vars {
		if len(v) > 0 {
			merged.Set(k, v[len(v)-1])
		}
	}

	return entryPrefix + merged.Encode()
}

func carrySticky(current map[string]string, route string) string {
	parts := presentKeys(route)
	has := func(key string) bool {
		_, ok := parts[key]
		return ok
	}

	var result []string
	carry := func(key string) bool {
		v, ok := current[key]
		if ok {
			result = append(result, key+"="+url.QueryEscape(v))
		}
		return ok
	}

	if !has(keyOption) {
		carry(keyOption)
	}
	if !has(keyView) && carry(keyView) && !has(keyLayout) {
		carry(keyLayout)
	}
	if format, ok := current[keyFormat]; ok && !has(keyFormat) && format != defaultFormat {
		carry(keyFormat)
	}

	if route != "" {
		result = append(result, route)
	}

	return entryPrefix + strings.Join(result, "&")
}

// presentKeys reports every key named in route, including keys whose value
// does not decode. A key that fails to unescape is kept raw.
func presentKeys(route string) map[string]struct{} {
	keys := make(map[string]struct{})
	for pair := range strings.SplitSeq(route, "&") {
		if pair == "" {
			continue
		}
		key, _, _ := strings.Cut(pair, "=")
		if unescaped, err := url.QueryUnescape(key); err == nil {
			key = unescaped
		}
		keys[key] = struct{}{}
	}
	return keys
}
