package config

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"gopkg.in/yaml.v3"
)

// Default values for fields a declaration may omit.
const (
	DefaultBase   = "/"
	DefaultSrcDir = "."
	DefaultOutDir = "dist"
)

// Result captures non-fatal findings of a resolve: unknown keys, coerced
// enum spellings, and which files fed the load.
type Result struct {
	Warnings []string
	Sources  []string
	EnvFiles []string
}

func (r *Result) warn(format string, args ...any) {
	r.Warnings = append(r.Warnings, fmt.Sprintf(format, args...))
}

type fieldSpec struct {
	key    string
	target any
}

// Resolve merges decls, decodes the result into a SiteConfig, applies
// defaults and validates it. On a rule violation the error is a
// ValidationErrors listing every violation and the config is nil. Resolve
// has no side effects; resolving equal declarations yields equal configs.
func Resolve(decls ...Declaration) (*SiteConfig, *Result, error) {
	res := &Result{}
	merged := MergeDeclarations(decls...)

	cfg := &SiteConfig{}
	var verr ValidationErrors
	decodeDeclaration(merged, cfg, &verr, res)
	if len(verr) > 0 {
		return nil, res, verr
	}

	normalize(cfg, res)
	applyDefaults(cfg, merged)

	if err := Validate(cfg); err != nil {
		return nil, res, err
	}
	return cfg, res, nil
}

func decodeDeclaration(decl Declaration, cfg *SiteConfig, verr *ValidationErrors, res *Result) {
	top := []fieldSpec{
		{"title", &cfg.Title},
		{"description", &cfg.Description},
		{"lang", &cfg.Lang},
		{"srcDir", &cfg.SrcDir},
		{"outDir", &cfg.OutDir},
		{"base", &cfg.Base},
	}
	decodeFields(decl, "", top, verr)
	warnUnknown(decl, "", append(specKeys(top), keyThemeConfig), res)

	rawTheme, ok := decl[keyThemeConfig]
	if !ok || rawTheme == nil {
		return
	}
	theme, ok := rawTheme.(map[string]any)
	if !ok {
		verr.add(&ConfigError{Field: keyThemeConfig, Rule: RuleType, Message: "must be a mapping"})
		return
	}
	t := &cfg.ThemeConfig
	themeFields := []fieldSpec{
		{"nav", &t.Nav},
		{"sidebar", &t.Sidebar},
		{"search", &t.Search},
		{"lastUpdated", &t.LastUpdated},
		{"footer", &t.Footer},
		{"editLink", &t.EditLink},
		{"socialLinks", &t.SocialLinks},
	}
	decodeFields(theme, keyThemeConfig+".", themeFields, verr)
	warnUnknown(theme, keyThemeConfig+".", specKeys(themeFields), res)
}

// decodeFields decodes each known key separately so type errors carry the
// field path.
func decodeFields(raw map[string]any, prefix string, specs []fieldSpec, verr *ValidationErrors) {
	for _, spec := range specs {
		value, ok := raw[spec.key]
		if !ok {
			continue
		}
		var node yaml.Node
		if err := node.Encode(value); err != nil {
			verr.add(&ConfigError{Field: prefix + spec.key, Rule: RuleType, Message: err.Error()})
			continue
		}
		if err := node.Decode(spec.target); err != nil {
			verr.add(&ConfigError{Field: prefix + spec.key, Rule: RuleType, Message: typeErrorMessage(err)})
		}
	}
}

// typeErrorMessage drops the "line N:" prefixes yaml adds; line numbers
// refer to the re-encoded node, not the user's file.
func typeErrorMessage(err error) string {
	var te *yaml.TypeError
	if !errors.As(err, &te) {
		return err.Error()
	}
	msgs := make([]string, len(te.Errors))
	for i, m := range te.Errors {
		if strings.HasPrefix(m, "line ") {
			if _, rest, ok := strings.Cut(m, ": "); ok {
				m = rest
			}
		}
		msgs[i] = m
	}
	return strings.Join(msgs, "; ")
}

func specKeys(specs []fieldSpec) []string {
	keys := make([]string, len(specs))
	for i, s := range specs {
		keys[i] = s.key
	}
	return keys
}

func warnUnknown(raw map[string]any, prefix string, known []string, res *Result) {
	var unknown []string
	for key := range raw {
		if !slices.Contains(known, key) {
			unknown = append(unknown, key)
		}
	}
	slices.Sort(unknown)
	for _, key := range unknown {
		res.warn("unknown key %s%s ignored", prefix, key)
	}
}

// normalize canonicalizes enum spellings ("Local" -> "local"). Unrecognized
// values are left untouched for Validate to report.
func normalize(cfg *SiteConfig, res *Result) {
	t := &cfg.ThemeConfig
	if p, ok := searchProviders.Normalize(string(t.Search.Provider)); ok && p != t.Search.Provider {
		res.warn("normalized themeConfig.search.provider from '%s' to '%s'", t.Search.Provider, p)
		t.Search.Provider = p
	}
	for i := range t.SocialLinks {
		s := &t.SocialLinks[i]
		if icon, ok := socialIcons.Normalize(string(s.Icon)); ok && icon != s.Icon {
			res.warn("normalized themeConfig.socialLinks[%d].icon from '%s' to '%s'", i, s.Icon, icon)
			s.Icon = icon
		}
	}
	opts := &t.LastUpdated.FormatOptions
	for _, f := range []struct {
		name string
		val  *DateFormat
	}{{"year", &opts.Year}, {"month", &opts.Month}, {"day", &opts.Day}} {
		if got, ok := monthDateFormats.Normalize(string(*f.val)); ok && got != *f.val {
			res.warn("normalized themeConfig.lastUpdated.formatOptions.%s from '%s' to '%s'", f.name, *f.val, got)
			*f.val = got
		}
	}
}

// applyDefaults fills omitted optional fields. base only defaults when the
// key is absent; an explicit empty base is a validation error.
func applyDefaults(cfg *SiteConfig, decl Declaration) {
	if _, ok := decl["base"]; !ok {
		cfg.Base = DefaultBase
	}
	if cfg.SrcDir == "" {
		cfg.SrcDir = DefaultSrcDir
	}
	if cfg.OutDir == "" {
		cfg.OutDir = DefaultOutDir
	}

	t := &cfg.ThemeConfig
	if t.Nav == nil {
		t.Nav = []NavItem{}
	}
	if t.Sidebar == nil {
		t.Sidebar = []SidebarGroup{}
	}
	for i := range t.Sidebar {
		if t.Sidebar[i].Items == nil {
			t.Sidebar[i].Items = []NavItem{}
		}
	}
	if t.SocialLinks == nil {
		t.SocialLinks = []SocialLink{}
	}
	if t.Search.Provider == "" {
		t.Search.Provider = SearchLocal
	}
}
