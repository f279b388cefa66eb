package config

import (
	"crypto/sha256"
	"encoding/hex"
	"strconv"
)

// Fingerprint computes a stable hash of every field the renderer reads.
// Sequences are hashed in order because order is display order. Two
// resolves of the same declarations always share a fingerprint.
func (c *SiteConfig) Fingerprint() string {
	if c == nil {
		return ""
	}
	h := sha256.New()
	// Each part is length-prefixed so values containing separators cannot
	// shift bytes into a neighbouring field.
	w := func(parts ...string) {
		for _, p := range parts {
			h.Write([]byte(strconv.Itoa(len(p)) + ":" + p))
		}
		h.Write([]byte{0})
	}
	idx := func(prefix string, i int) string { return prefix + "[" + strconv.Itoa(i) + "]" }

	w("title", c.Title)
	w("description", c.Description)
	w("lang", c.Lang)
	w("srcDir", c.SrcDir)
	w("outDir", c.OutDir)
	w("base", c.Base)

	t := c.ThemeConfig
	for i, n := range t.Nav {
		w(idx("nav", i), n.Text, n.Link)
	}
	for g, group := range t.Sidebar {
		w(idx("sidebar", g), group.Text, strconv.FormatBool(group.Collapsed))
		for i, n := range group.Items {
			w(idx(idx("sidebar", g)+".items", i), n.Text, n.Link)
		}
	}
	w("search.provider", string(t.Search.Provider))
	w("lastUpdated", t.LastUpdated.Text,
		string(t.LastUpdated.FormatOptions.Year),
		string(t.LastUpdated.FormatOptions.Month),
		string(t.LastUpdated.FormatOptions.Day))
	w("footer", t.Footer.Message, t.Footer.Copyright)
	if t.EditLink != nil {
		w("editLink", t.EditLink.Pattern, t.EditLink.Text)
	}
	for i, s := range t.SocialLinks {
		w(idx("socialLinks", i), string(s.Icon), s.Link)
	}
	return hex.EncodeToString(h.Sum(nil))
}
