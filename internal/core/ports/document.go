// Package ports defines the core interfaces for the application.
package ports

// Document collects the asset references of the page being generated.
//
//go:generate mockgen -source=document.go -destination=mocks/mock_document.go -package=mocks
type Document interface {
	// AddStylesheet registers a stylesheet URL for inclusion in the page head.
	AddStylesheet(url string)

	// AddScript registers a script URL for inclusion in the page head.
	AddScript(url string)
}
