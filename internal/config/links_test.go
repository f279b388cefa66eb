package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWithBaseRoundTrip(t *testing.T) {
	bases := []string{"/", "/docs/", "/a/b/"}
	links := []string{"/", "/guide/", "/guide/install", "/api/#section", "/search?q=x"}

	for _, base := range bases {
		for _, link := range links {
			prefixed := WithBase(base, link)
			assert.Equal(t, link, StripBase(base, prefixed), "base=%s link=%s", base, link)
			assert.Equal(t, prefixed, WithBase(base, prefixed), "WithBase not idempotent for base=%s link=%s", base, link)
		}
	}
}

func TestWithBaseKeepsRoutesUnderBaseName(t *testing.T) {
	// A route that already begins with the base is treated as prefixed.
	// Idempotence wins over round-tripping for such routes.
	prefixed := WithBase("/docs/", "/docs/intro")
	assert.Equal(t, "/docs/intro", prefixed)
	assert.Equal(t, "/intro", StripBase("/docs/", prefixed))
}

func TestWithBase(t *testing.T) {
	tests := []struct {
		base, link, want string
	}{
		{"/docs/", "/", "/docs/"},
		{"/docs/", "/guide/", "/docs/guide/"},
		{"/docs/", "/docs/guide/", "/docs/guide/"},
		{"/docs/", "guide/", "guide/"},
		{"/docs/", "https://example.com/", "https://example.com/"},
		{"/docs/", "//cdn.example.com/x", "//cdn.example.com/x"},
		{"/", "/guide/", "/guide/"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, WithBase(tt.base, tt.link), "WithBase(%q, %q)", tt.base, tt.link)
	}
}

func TestStripBase(t *testing.T) {
	assert.Equal(t, "/", StripBase("/docs/", "/docs"))
	assert.Equal(t, "/guide", StripBase("/docs/", "/docs/guide"))
	assert.Equal(t, "/other/", StripBase("/docs/", "/other/"))
	assert.Equal(t, "https://x.test/docs/", StripBase("/docs/", "https://x.test/docs/"))
}

func TestSiteConfigBaseHelpers(t *testing.T) {
	cfg := &SiteConfig{Base: "/manual/"}
	assert.Equal(t, "/manual/guide/", cfg.WithBase("/guide/"))
	assert.Equal(t, "/guide/", cfg.StripBase("/manual/guide/"))
}

func TestEditLinkURLFor(t *testing.T) {
	e := &EditLinkConfig{Pattern: "https://github.com/acme/docs/edit/main/docs/:path"}

	assert.Equal(t, "https://github.com/acme/docs/edit/main/docs/guide/index.md", e.URLFor("guide/index.md"))
	assert.Equal(t, "https://github.com/acme/docs/edit/main/docs/guide/index.md", e.URLFor("/guide/index.md"))
	assert.Equal(t, "https://github.com/acme/docs/edit/main/docs/secret.md", e.URLFor("../../secret.md"))
	assert.Empty(t, e.URLFor(""))

	var disabled *EditLinkConfig
	assert.Empty(t, disabled.URLFor("guide/index.md"))

	cfg := &SiteConfig{ThemeConfig: ThemeConfig{EditLink: e}}
	assert.Equal(t, "https://github.com/acme/docs/edit/main/docs/a.md", cfg.EditURL("a.md"))
	assert.Empty(t, (&SiteConfig{}).EditURL("a.md"))
}
