package routes

import (
	"fmt"
	"strings"

	"git.home.luguber.info/inful/sitecfg/internal/config"
)

// IsExternal reports links that leave the site: absolute URLs with a
// scheme, protocol-relative URLs and mailto/tel links.
func IsExternal(link string) bool {
	if strings.HasPrefix(link, "//") || strings.Contains(link, "://") {
		return true
	}
	lower := strings.ToLower(link)
	return strings.HasPrefix(lower, "mailto:") || strings.HasPrefix(lower, "tel:")
}

// splitLink separates path, and fragment, dropping any query string.
func splitLink(link string) (p, fragment string) {
	p, fragment, _ = strings.Cut(link, "#")
	p, _, _ = strings.Cut(p, "?")
	return p, fragment
}

// Verify checks every nav and sidebar link in cfg against ix. Empty links
// are left to config validation. The result is nil when every link resolves.
func Verify(cfg *config.SiteConfig, ix *Index) config.ValidationErrors {
	var out config.ValidationErrors
	check := func(field, link string) {
		if e := verifyLink(cfg, ix, field, link); e != nil {
			out = append(out, e)
		}
	}

	for i, item := range cfg.ThemeConfig.Nav {
		check(fmt.Sprintf("themeConfig.nav[%d].link", i), item.Link)
	}
	for g, group := range cfg.ThemeConfig.Sidebar {
		for i, item := range group.Items {
			check(fmt.Sprintf("themeConfig.sidebar[%d].items[%d].link", g, i), item.Link)
		}
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

func verifyLink(cfg *config.SiteConfig, ix *Index, field, link string) *config.ConfigError {
	if link == "" || IsExternal(link) {
		return nil
	}
	p, fragment := splitLink(link)
	if p == "" {
		// "#section" on its own refers to the page showing the nav, which
		// is unknown here.
		return nil
	}
	route, ok := ix.Resolve(cfg.StripBase(p))
	if !ok {
		return &config.ConfigError{
			Field:   field,
			Rule:    config.RuleRoute,
			Value:   link,
			Message: "does not resolve to a content page",
		}
	}
	if fragment != "" && !ix.HasAnchor(route, fragment) {
		src, _ := ix.Source(route)
		return &config.ConfigError{
			Field:   field,
			Rule:    config.RuleAnchor,
			Value:   link,
			Message: fmt.Sprintf("has no heading #%s in %s", fragment, src),
		}
	}
	return nil
}
