package domain

import "path"

const (
	// ConfigFileName is the name of the site configuration file.
	ConfigFileName = "overlay.yaml"

	// MediaDirName is the standard media directory below the site root.
	MediaDirName = "media"

	// AdminDirName is the administrator application directory below the site root.
	AdminDirName = "administrator"

	// TemplatesDirName holds the installed templates below the site root.
	TemplatesDirName = "templates"

	// DefaultCacheSubpath is where compiled stylesheets are written, relative to the site root.
	DefaultCacheSubpath = "media/overlay/compiled"

	// ManifestDirName is the manifest directory inside the cache directory.
	ManifestDirName = ".manifest"

	// CompiledExt is the extension of compiled stylesheets.
	CompiledExt = ".css"

	// DefaultTemplate is the template used when none is configured.
	DefaultTemplate = "system"

	// DirPerm is the default permission for directories (rwxr-x---).
	DirPerm = 0o750

	// FilePerm is the default permission for files (rw-r--r--).
	FilePerm = 0o644
)

// TemplateMediaPath returns the site-relative media override root of a template.
// It joins templates, the template name and media.
func TemplateMediaPath(template string) string {
	return path.Join(TemplatesDirName, template, MediaDirName) + "/"
}
