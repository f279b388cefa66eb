package config

import (
	"errors"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"

	ferrors "git.home.luguber.info/inful/sitecfg/internal/foundation/errors"
)

// ExampleHints customizes the starter declaration written by WriteExample.
type ExampleHints struct {
	Title       string
	SrcDir      string // defaults to "docs"
	EditPattern string // empty disables editLink
	RepoURL     string // adds a github social link when set
}

// Example returns a valid starter configuration.
func Example(h ExampleHints) *SiteConfig {
	title := h.Title
	if title == "" {
		title = "My Docs"
	}
	srcDir := h.SrcDir
	if srcDir == "" {
		srcDir = "docs"
	}
	cfg := &SiteConfig{
		Title:       title,
		Description: "Project documentation",
		Lang:        "en-US",
		SrcDir:      srcDir,
		OutDir:      DefaultOutDir,
		Base:        DefaultBase,
		ThemeConfig: ThemeConfig{
			Nav: []NavItem{
				{Text: "Home", Link: "/"},
				{Text: "Guide", Link: "/guide/"},
			},
			Sidebar: []SidebarGroup{{
				Text: "Guide",
				Items: []NavItem{
					{Text: "Introduction", Link: "/guide/"},
					{Text: "Getting Started", Link: "/guide/getting-started"},
				},
			}},
			Search: SearchConfig{Provider: SearchLocal},
			LastUpdated: LastUpdatedConfig{
				Text:          "Updated at",
				FormatOptions: FormatOptions{Year: DateNumeric, Month: DateLong, Day: DateNumeric},
			},
			Footer: FooterConfig{
				Message:   "Released under the MIT License.",
				Copyright: "Copyright © the authors",
			},
			SocialLinks: []SocialLink{},
		},
	}
	if h.EditPattern != "" {
		cfg.ThemeConfig.EditLink = &EditLinkConfig{Pattern: h.EditPattern, Text: "Edit this page"}
	}
	if h.RepoURL != "" {
		cfg.ThemeConfig.SocialLinks = append(cfg.ThemeConfig.SocialLinks, SocialLink{Icon: IconGitHub, Link: h.RepoURL})
	}
	return cfg
}

// WriteExample writes a starter declaration to path. An existing file is
// only replaced when force is set.
func WriteExample(path string, force bool, h ExampleHints) error {
	if _, err := os.Stat(path); err == nil && !force {
		return ferrors.NewError(ferrors.CategoryConfig, "declaration file already exists (use --force to overwrite)").
			WithContext("path", path).Build()
	} else if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return ferrors.WrapError(err, ferrors.CategoryFileSystem, "stat declaration file").WithContext("path", path).Build()
	}

	cfg := Example(h)
	if err := Validate(cfg); err != nil {
		return ferrors.WrapError(err, ferrors.CategoryValidation, "starter configuration is invalid").Build()
	}
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return ferrors.WrapError(err, ferrors.CategoryInternal, "marshal starter configuration").Build()
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return ferrors.WrapError(err, ferrors.CategoryFileSystem, "write declaration file").WithContext("path", path).Build()
	}
	return nil
}
