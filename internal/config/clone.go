package config

import "slices"

// Clone returns a deep copy of c.
func (c *SiteConfig) Clone() *SiteConfig {
	if c == nil {
		return nil
	}
	out := *c
	t := &out.ThemeConfig
	t.Nav = slices.Clone(c.ThemeConfig.Nav)
	t.SocialLinks = slices.Clone(c.ThemeConfig.SocialLinks)
	t.Sidebar = make([]SidebarGroup, len(c.ThemeConfig.Sidebar))
	for i, g := range c.ThemeConfig.Sidebar {
		g.Items = slices.Clone(g.Items)
		t.Sidebar[i] = g
	}
	if c.ThemeConfig.Sidebar == nil {
		t.Sidebar = nil
	}
	if c.ThemeConfig.EditLink != nil {
		e := *c.ThemeConfig.EditLink
		t.EditLink = &e
	}
	return &out
}
