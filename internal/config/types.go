package config

// SiteConfig is the resolved, validated site declaration handed to the
// renderer. Values are never mutated after Resolve returns; a changed
// declaration produces a new SiteConfig.
type SiteConfig struct {
	Title       string      `yaml:"title" json:"title"`
	Description string      `yaml:"description" json:"description"`
	Lang        string      `yaml:"lang,omitempty" json:"lang,omitempty"`
	SrcDir      string      `yaml:"srcDir" json:"srcDir"`
	OutDir      string      `yaml:"outDir" json:"outDir"`
	Base        string      `yaml:"base" json:"base"`
	ThemeConfig ThemeConfig `yaml:"themeConfig" json:"themeConfig"`
}

// ThemeConfig holds the navigation structures rendered by the theme.
type ThemeConfig struct {
	Nav         []NavItem         `yaml:"nav" json:"nav"`
	Sidebar     []SidebarGroup    `yaml:"sidebar" json:"sidebar"`
	Search      SearchConfig      `yaml:"search" json:"search"`
	LastUpdated LastUpdatedConfig `yaml:"lastUpdated" json:"lastUpdated"`
	Footer      FooterConfig      `yaml:"footer" json:"footer"`

	// EditLink is nil when edit links are disabled.
	EditLink    *EditLinkConfig `yaml:"editLink,omitempty" json:"editLink,omitempty"`
	SocialLinks []SocialLink    `yaml:"socialLinks" json:"socialLinks"`
}

// NavItem is a single label + route entry.
type NavItem struct {
	Text string `yaml:"text" json:"text"`
	Link string `yaml:"link" json:"link"`
}

// SidebarGroup is a labeled, ordered collection of nav items.
type SidebarGroup struct {
	Text      string    `yaml:"text" json:"text"`
	Collapsed bool      `yaml:"collapsed,omitempty" json:"collapsed,omitempty"`
	Items     []NavItem `yaml:"items" json:"items"`
}

type SearchConfig struct {
	Provider SearchProvider `yaml:"provider" json:"provider"`
}

type LastUpdatedConfig struct {
	Text          string        `yaml:"text" json:"text"`
	FormatOptions FormatOptions `yaml:"formatOptions" json:"formatOptions"`
}

// FormatOptions mirrors the Intl.DateTimeFormat date fields the theme uses.
// Empty fields are left to the renderer's locale default.
type FormatOptions struct {
	Year  DateFormat `yaml:"year,omitempty" json:"year,omitempty"`
	Month DateFormat `yaml:"month,omitempty" json:"month,omitempty"`
	Day   DateFormat `yaml:"day,omitempty" json:"day,omitempty"`
}

type FooterConfig struct {
	Message   string `yaml:"message" json:"message"`
	Copyright string `yaml:"copyright" json:"copyright"`
}

// EditLinkConfig builds "edit this page" URLs. Pattern contains exactly one
// ":path" placeholder.
type EditLinkConfig struct {
	Pattern string `yaml:"pattern" json:"pattern"`
	Text    string `yaml:"text" json:"text"`
}

type SocialLink struct {
	Icon SocialIcon `yaml:"icon" json:"icon"`
	Link string     `yaml:"link" json:"link"`
}
