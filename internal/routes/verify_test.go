package routes

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"git.home.luguber.info/inful/sitecfg/internal/config"
)

func testIndex() *Index {
	ix := NewIndex()
	ix.Add("index.md", []byte("# Home\n"))
	ix.Add("guide/index.md", []byte("# Guide\n\n## Getting Started\n"))
	ix.Add("guide/install.md", []byte("# Install\n"))
	return ix
}

func TestIsExternal(t *testing.T) {
	assert.True(t, IsExternal("https://example.com"))
	assert.True(t, IsExternal("//cdn.example.com/x"))
	assert.True(t, IsExternal("mailto:docs@example.com"))
	assert.False(t, IsExternal("/guide/"))
	assert.False(t, IsExternal("guide/install"))
}

func TestVerifyAllResolve(t *testing.T) {
	cfg := &config.SiteConfig{
		Base: "/docs/",
		ThemeConfig: config.ThemeConfig{
			Nav: []config.NavItem{
				{Text: "Home", Link: "/"},
				{Text: "Guide", Link: "/docs/guide/"},
				{Text: "GitHub", Link: "https://github.com/inful/sitecfg"},
			},
			Sidebar: []config.SidebarGroup{{
				Text: "Guide",
				Items: []config.NavItem{
					{Text: "Start", Link: "/guide/#getting-started"},
					{Text: "Install", Link: "/guide/install.md?ref=nav"},
				},
			}},
		},
	}
	assert.Nil(t, Verify(cfg, testIndex()))
}

func TestVerifyReportsDanglingLinks(t *testing.T) {
	cfg := &config.SiteConfig{
		Base: "/",
		ThemeConfig: config.ThemeConfig{
			Nav: []config.NavItem{
				{Text: "Guide", Link: "/guide/"},
				{Text: "Missing", Link: "/reference/"},
			},
			Sidebar: []config.SidebarGroup{{
				Text: "Guide",
				Items: []config.NavItem{
					{Text: "Start", Link: "/guide/#quick-start"},
				},
			}},
		},
	}

	errs := Verify(cfg, testIndex())
	require.Len(t, errs, 2)

	route := errs.Find("themeConfig.nav[1].link")
	require.NotNil(t, route)
	assert.Equal(t, config.RuleRoute, route.Rule)
	assert.Equal(t, "/reference/", route.Value)

	anchor := errs.Find("themeConfig.sidebar[0].items[0].link")
	require.NotNil(t, anchor)
	assert.Equal(t, config.RuleAnchor, anchor.Rule)
	assert.Contains(t, anchor.Message, "guide/index.md")
}
