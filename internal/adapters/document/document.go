// Package document collects the asset references of a generated page.
package document

import (
	"html"
	"slices"
	"strings"
	"sync"
)

// Document implements ports.Document. References keep their first
// registration order and are registered at most once.
type Document struct {
	mu          sync.Mutex
	stylesheets []string
	scripts     []string
}

// New creates an empty Document.
func New() *Document {
	return &Document{}
}

// AddStylesheet registers a stylesheet URL.
func (d *Document) AddStylesheet(url string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.stylesheets = appendUnique(d.stylesheets, url)
}

// AddScript registers a script URL.
func (d *Document) AddScript(url string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.scripts = appendUnique(d.scripts, url)
}

// Stylesheets returns the registered stylesheet URLs in order.
func (d *Document) Stylesheets() []string {
	d.mu.Lock()
	defer d.mu.Unlock()
	return slices.Clone(d.stylesheets)
}

// Scripts returns the registered script URLs in order.
func (d *Document) Scripts() []string {
	d.mu.Lock()
	defer d.mu.Unlock()
	return slices.Clone(d.scripts)
}

// Merge registers every reference of other after the references of d.
func (d *Document) Merge(other *Document) {
	for _, url := range other.Stylesheets() {
		d.AddStylesheet(url)
	}
	for _, url := range other.Scripts() {
		d.AddScript(url)
	}
}

// Render returns the references as HTML head tags, stylesheets first.
func (d *Document) Render() string {
	d.mu.Lock()
	defer d.mu.Unlock()

	var b strings.Builder
	for _, url := range d.stylesheets {
		b.WriteString(`<link rel="stylesheet" href="`)
		b.WriteString(html.EscapeString(url))
		b.WriteString("\">\n")
	}
	for _, url := range d.scripts {
		b.WriteString(`<script src="`)
		b.WriteString(html.EscapeString(url))
		b.WriteString("\"></script>\n")
	}
	return b.String()
}

func appendUnique(list []string, url string) []string {
	if slices.Contains(list, url) {
		return list
	}
	return append(list, url)
}
