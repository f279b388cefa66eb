package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDeclarationEmptyDocument(t *testing.T) {
	decl, err := ParseDeclaration(nil)
	require.NoError(t, err)
	assert.NotNil(t, decl)
	assert.Empty(t, decl)
}

func TestParseDeclarationAcceptsJSON(t *testing.T) {
	decl, err := ParseDeclaration([]byte(`{"title": "JSON", "themeConfig": {"nav": []}}`))
	require.NoError(t, err)
	assert.Equal(t, "JSON", decl["title"])
}

func TestParseDeclarationRejectsMalformedYAML(t *testing.T) {
	_, err := ParseDeclaration([]byte("title: [unterminated"))
	require.Error(t, err)
}

func TestMergeDeclarations(t *testing.T) {
	a := Declaration{
		"title": "A",
		"base":  "/a/",
		"themeConfig": map[string]any{
			"nav":    []any{map[string]any{"text": "one", "link": "/1"}},
			"search": map[string]any{"provider": "local"},
		},
	}
	b := Declaration{
		"title": "B",
		"themeConfig": map[string]any{
			"nav":    []any{map[string]any{"text": "two", "link": "/2"}},
			"search": map[string]any{"provider": "algolia"},
		},
	}

	merged := MergeDeclarations(a, b)
	assert.Equal(t, "B", merged["title"])
	assert.Equal(t, "/a/", merged["base"])

	theme := merged["themeConfig"].(map[string]any)
	assert.Len(t, theme["nav"], 2)
	assert.Equal(t, map[string]any{"provider": "algolia"}, theme["search"])

	// inputs untouched
	assert.Len(t, a["themeConfig"].(map[string]any)["nav"], 1)
	assert.Equal(t, "A", a["title"])
}

func TestMergeDeclarationsNilThemeIsNoop(t *testing.T) {
	a := Declaration{"themeConfig": map[string]any{"nav": []any{"x"}}}
	b := Declaration{"themeConfig": nil}
	merged := MergeDeclarations(a, b)
	assert.Equal(t, a["themeConfig"], merged["themeConfig"])
}

func TestMergeDeclarationsNullSequenceKeepsEarlierEntries(t *testing.T) {
	a := mustParse(t, "themeConfig:\n  nav: [{text: A, link: /a}]\n  sidebar: [{text: G1}]\n")
	b := mustParse(t, "themeConfig:\n  nav: ~\n  sidebar:\n")

	cfg, _, err := Resolve(a, b)
	require.NoError(t, err)
	assert.Equal(t, []NavItem{{Text: "A", Link: "/a"}}, cfg.ThemeConfig.Nav)
	require.Len(t, cfg.ThemeConfig.Sidebar, 1)
	assert.Equal(t, "G1", cfg.ThemeConfig.Sidebar[0].Text)

	only, _, err := Resolve(b)
	require.NoError(t, err)
	assert.Empty(t, only.ThemeConfig.Nav)
}

func TestMergeDeclarationsNonSequenceReplaces(t *testing.T) {
	a := Declaration{"themeConfig": map[string]any{"sidebar": []any{"x"}}}
	b := Declaration{"themeConfig": map[string]any{"sidebar": "oops"}}
	merged := MergeDeclarations(a, b)
	assert.Equal(t, "oops", merged["themeConfig"].(map[string]any)["sidebar"])
}

func TestMergeDeclarationsNone(t *testing.T) {
	assert.Empty(t, MergeDeclarations())
}
