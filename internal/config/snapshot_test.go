package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFingerprintStableAcrossSpellings(t *testing.T) {
	a, _, err := Resolve(mustParse(t, "themeConfig:\n  search: {provider: LOCAL}\n"))
	require.NoError(t, err)
	b, _, err := Resolve(mustParse(t, "themeConfig:\n  search: {provider: local}\n"))
	require.NoError(t, err)
	assert.Equal(t, a.Fingerprint(), b.Fingerprint())
}

func TestFingerprintIsOrderSensitive(t *testing.T) {
	a, _, err := Resolve(mustParse(t, "themeConfig:\n  nav: [{text: A, link: /a}, {text: B, link: /b}]\n"))
	require.NoError(t, err)
	b, _, err := Resolve(mustParse(t, "themeConfig:\n  nav: [{text: B, link: /b}, {text: A, link: /a}]\n"))
	require.NoError(t, err)
	assert.NotEqual(t, a.Fingerprint(), b.Fingerprint())
}

func TestFingerprintSeparatesFieldValues(t *testing.T) {
	a := &SiteConfig{ThemeConfig: ThemeConfig{Nav: []NavItem{{Text: "A=/b", Link: "/c"}}}}
	b := &SiteConfig{ThemeConfig: ThemeConfig{Nav: []NavItem{{Text: "A", Link: "/b=/c"}}}}
	assert.NotEqual(t, a.Fingerprint(), b.Fingerprint())

	c := &SiteConfig{ThemeConfig: ThemeConfig{Footer: FooterConfig{Message: "a=b", Copyright: "c"}}}
	d := &SiteConfig{ThemeConfig: ThemeConfig{Footer: FooterConfig{Message: "a", Copyright: "b=c"}}}
	assert.NotEqual(t, c.Fingerprint(), d.Fingerprint())
}

func TestFingerprintDetectsEditLinkToggle(t *testing.T) {
	cfg, _, err := Resolve(mustParse(t, fullDeclaration))
	require.NoError(t, err)
	before := cfg.Fingerprint()
	cfg.ThemeConfig.EditLink = nil
	assert.NotEqual(t, before, cfg.Fingerprint())
	assert.Empty(t, (*SiteConfig)(nil).Fingerprint())
}

func TestCloneIsDeep(t *testing.T) {
	cfg, _, err := Resolve(mustParse(t, fullDeclaration))
	require.NoError(t, err)

	c := cfg.Clone()
	require.Equal(t, cfg, c)

	c.ThemeConfig.Nav[0].Text = "changed"
	c.ThemeConfig.Sidebar[0].Items[0].Link = "/changed"
	c.ThemeConfig.EditLink.Text = "changed"
	c.ThemeConfig.SocialLinks[0].Link = "https://changed.test"

	assert.Equal(t, "Home", cfg.ThemeConfig.Nav[0].Text)
	assert.Equal(t, "/guide/", cfg.ThemeConfig.Sidebar[0].Items[0].Link)
	assert.Equal(t, "Edit this page", cfg.ThemeConfig.EditLink.Text)
	assert.Equal(t, "https://github.com/acme/manual", cfg.ThemeConfig.SocialLinks[0].Link)
	assert.Nil(t, (*SiteConfig)(nil).Clone())
}
