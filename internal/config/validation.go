package config

import (
	"fmt"
	"net/url"
	"path"
	"path/filepath"
	"strings"

	"golang.org/x/text/language"
)

// Rule names the check a ConfigError failed.
type Rule string

const (
	RuleRequired     Rule = "required"
	RuleType         Rule = "type"
	RuleBaseSlashes  Rule = "base_slashes"
	RuleOneOf        Rule = "one_of"
	RulePlaceholder  Rule = "path_placeholder"
	RuleRelativePath Rule = "relative_path"
	RuleLanguageTag  Rule = "language_tag"
	RuleURL          Rule = "url"
	RuleRoute        Rule = "route"
	RuleAnchor       Rule = "anchor"
)

// ConfigError reports one field that failed one rule.
type ConfigError struct {
	Field    string
	Rule     Rule
	Value    string
	Accepted []string
	Message  string
}

func (e *ConfigError) Error() string {
	var b strings.Builder
	b.WriteString(e.Field)
	b.WriteString(": ")
	b.WriteString(e.Message)
	if len(e.Accepted) > 0 {
		fmt.Fprintf(&b, " [%s]", strings.Join(e.Accepted, ", "))
	}
	if e.Value != "" {
		fmt.Fprintf(&b, " (got %q)", e.Value)
	}
	return b.String()
}

// ValidationErrors is every ConfigError found in one resolve, in field order.
type ValidationErrors []*ConfigError

func (v ValidationErrors) Error() string {
	switch len(v) {
	case 0:
		return "no validation errors"
	case 1:
		return v[0].Error()
	}
	parts := make([]string, len(v))
	for i, e := range v {
		parts[i] = e.Error()
	}
	return fmt.Sprintf("%d validation errors: %s", len(v), strings.Join(parts, "; "))
}

// Unwrap lets errors.As reach individual ConfigErrors.
func (v ValidationErrors) Unwrap() []error {
	out := make([]error, len(v))
	for i, e := range v {
		out[i] = e
	}
	return out
}

// Find returns the first error for field, or nil.
func (v ValidationErrors) Find(field string) *ConfigError {
	for _, e := range v {
		if e.Field == field {
			return e
		}
	}
	return nil
}

func (v *ValidationErrors) add(e *ConfigError) { *v = append(*v, e) }

func (v ValidationErrors) orNil() error {
	if len(v) == 0 {
		return nil
	}
	return v
}

// Validate checks cfg against every schema rule and returns all violations
// as ValidationErrors, or nil.
func Validate(cfg *SiteConfig) error {
	var verr ValidationErrors
	if cfg == nil {
		verr.add(&ConfigError{Field: "", Rule: RuleRequired, Message: "configuration is empty"})
		return verr
	}

	validateBase(&verr, cfg.Base)
	requireRelative(&verr, "srcDir", cfg.SrcDir)
	requireRelative(&verr, "outDir", cfg.OutDir)
	if cfg.Lang != "" {
		if _, err := language.Parse(cfg.Lang); err != nil {
			verr.add(&ConfigError{Field: "lang", Rule: RuleLanguageTag, Value: cfg.Lang, Message: "must be a BCP 47 language tag"})
		}
	}

	validateTheme(&verr, "themeConfig", &cfg.ThemeConfig)
	return verr.orNil()
}

func validateBase(v *ValidationErrors, base string) {
	switch {
	case base == "":
		v.add(&ConfigError{Field: "base", Rule: RuleRequired, Message: "is required"})
	case !strings.HasPrefix(base, "/") || !strings.HasSuffix(base, "/"):
		v.add(&ConfigError{Field: "base", Rule: RuleBaseSlashes, Value: base, Message: "must start and end with '/'"})
	}
}

func requireRelative(v *ValidationErrors, field, p string) {
	if p == "" {
		return
	}
	if path.IsAbs(p) || filepath.IsAbs(p) {
		v.add(&ConfigError{Field: field, Rule: RuleRelativePath, Value: p, Message: "must be a relative path"})
	}
}

func validateTheme(v *ValidationErrors, prefix string, t *ThemeConfig) {
	for i, item := range t.Nav {
		requireLink(v, fmt.Sprintf("%s.nav[%d].link", prefix, i), item.Link)
	}
	for g, group := range t.Sidebar {
		for i, item := range group.Items {
			requireLink(v, fmt.Sprintf("%s.sidebar[%d].items[%d].link", prefix, g, i), item.Link)
		}
	}

	if p, ok := searchProviders.Normalize(string(t.Search.Provider)); !ok || p != t.Search.Provider {
		v.add(oneOf(prefix+".search.provider", string(t.Search.Provider), searchProviders.Accepted()))
	}

	opts := t.LastUpdated.FormatOptions
	checkDateFormat(v, prefix+".lastUpdated.formatOptions.year", opts.Year, numericDateFormats.Normalize, numericDateFormats.Accepted())
	checkDateFormat(v, prefix+".lastUpdated.formatOptions.month", opts.Month, monthDateFormats.Normalize, monthDateFormats.Accepted())
	checkDateFormat(v, prefix+".lastUpdated.formatOptions.day", opts.Day, numericDateFormats.Normalize, numericDateFormats.Accepted())

	if t.EditLink != nil {
		if n := strings.Count(t.EditLink.Pattern, PathPlaceholder); n != 1 {
			v.add(&ConfigError{
				Field:   prefix + ".editLink.pattern",
				Rule:    RulePlaceholder,
				Value:   t.EditLink.Pattern,
				Message: fmt.Sprintf("must contain the %s placeholder exactly once, found %d", PathPlaceholder, n),
			})
		}
	}

	for i, s := range t.SocialLinks {
		field := fmt.Sprintf("%s.socialLinks[%d]", prefix, i)
		if icon, ok := socialIcons.Normalize(string(s.Icon)); !ok || icon != s.Icon {
			v.add(oneOf(field+".icon", string(s.Icon), socialIcons.Accepted()))
		}
		if !isWebURL(s.Link) {
			v.add(&ConfigError{Field: field + ".link", Rule: RuleURL, Value: s.Link, Message: "must be an absolute http(s) URL"})
		}
	}
}

func requireLink(v *ValidationErrors, field, link string) {
	if strings.TrimSpace(link) == "" {
		v.add(&ConfigError{Field: field, Rule: RuleRequired, Message: "must be a non-empty link"})
	}
}

func checkDateFormat(v *ValidationErrors, field string, f DateFormat, norm func(string) (DateFormat, bool), accepted []string) {
	if f == "" {
		return
	}
	if got, ok := norm(string(f)); !ok || got != f {
		v.add(oneOf(field, string(f), accepted))
	}
}

func oneOf(field, value string, accepted []string) *ConfigError {
	return &ConfigError{Field: field, Rule: RuleOneOf, Value: value, Accepted: accepted, Message: "must be one of"}
}

func isWebURL(raw string) bool {
	u, err := url.Parse(raw)
	if err != nil {
		return false
	}
	return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}
