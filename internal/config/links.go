package config

import (
	"path"
	"path/filepath"
	"strings"
)

// PathPlaceholder is substituted with a document's relative path in
// editLink.pattern.
const PathPlaceholder = ":path"

// IsInternal reports whether link is a root-relative site route. Relative,
// protocol-relative and absolute URLs are left alone by base handling.
func IsInternal(link string) bool {
	return strings.HasPrefix(link, "/") && !strings.HasPrefix(link, "//")
}

// WithBase prefixes an internal link with base. Links that already carry
// the prefix are returned unchanged, so WithBase is idempotent.
func WithBase(base, link string) string {
	if !IsInternal(link) || base == "" || base == "/" {
		return link
	}
	if strings.HasPrefix(link, base) {
		return link
	}
	return base + strings.TrimPrefix(link, "/")
}

// StripBase is the inverse of WithBase for links WithBase prefixed.
func StripBase(base, link string) string {
	if !IsInternal(link) || base == "" || base == "/" {
		return link
	}
	if link+"/" == base {
		return "/"
	}
	if rest, ok := strings.CutPrefix(link, base); ok {
		return "/" + rest
	}
	return link
}

// WithBase prefixes link with the site's base.
func (c *SiteConfig) WithBase(link string) string { return WithBase(c.Base, link) }

// StripBase removes the site's base from link.
func (c *SiteConfig) StripBase(link string) string { return StripBase(c.Base, link) }

// URLFor expands the pattern for a document path relative to the content
// root. The path is slash-separated and cannot climb above the root.
// Returns "" when edit links are disabled or relPath is empty.
func (e *EditLinkConfig) URLFor(relPath string) string {
	if e == nil {
		return ""
	}
	p := strings.TrimPrefix(path.Clean("/"+filepath.ToSlash(relPath)), "/")
	if p == "" {
		return ""
	}
	return strings.Replace(e.Pattern, PathPlaceholder, p, 1)
}

// EditURL returns the edit link for a document, or "" when disabled.
func (c *SiteConfig) EditURL(relPath string) string {
	return c.ThemeConfig.EditLink.URLFor(relPath)
}
