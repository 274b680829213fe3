package domain

// ResolvedLocation holds the site-relative candidates a fancy path resolves to.
type ResolvedLocation struct {
	// Normal is the location below the standard root. Always set.
	Normal string
	// Alternate is the location below the active template's override root.
	// Only meaningful when HasAlternate is true.
	Alternate string
	// HasAlternate is true for media paths only.
	HasAlternate bool
	// Query is the ?-fragment split off a media path, without the question mark.
	// Selected paths never carry it.
	Query string
}
