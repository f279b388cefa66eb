package config

import (
	"maps"
	"slices"

	"gopkg.in/yaml.v3"
)

// Declaration is one raw, loosely typed site declaration as written by the
// user. Several declarations can describe the same site; see
// MergeDeclarations.
type Declaration map[string]any

const keyThemeConfig = "themeConfig"

// concatThemeKeys are the themeConfig sequences that accumulate across
// declarations instead of being replaced.
var concatThemeKeys = map[string]bool{
	"nav":     true,
	"sidebar": true,
}

// ParseDeclaration decodes YAML (or JSON, which is valid YAML) into a
// Declaration. An empty document yields an empty Declaration.
func ParseDeclaration(data []byte) (Declaration, error) {
	var decl Declaration
	if err := yaml.Unmarshal(data, &decl); err != nil {
		return nil, err
	}
	if decl == nil {
		decl = Declaration{}
	}
	return decl, nil
}

// MergeDeclarations folds declarations in order into one. Top-level keys
// are last-wins. themeConfig is merged key by key: nav and sidebar are
// concatenated in declaration order, every other theme key is last-wins.
// Inputs are not modified.
func MergeDeclarations(decls ...Declaration) Declaration {
	merged := Declaration{}
	for _, decl := range decls {
		for key, value := range decl {
			if key == keyThemeConfig {
				merged[key] = mergeTheme(merged[key], value)
				continue
			}
			merged[key] = value
		}
	}
	return merged
}

func mergeTheme(prev, next any) any {
	if next == nil {
		return prev
	}
	nextMap, ok := next.(map[string]any)
	if !ok {
		// Not a mapping; keep it so decoding reports the type error.
		return next
	}
	prevMap, _ := prev.(map[string]any)

	out := make(map[string]any, len(prevMap)+len(nextMap))
	maps.Copy(out, prevMap)
	for key, value := range nextMap {
		if concatThemeKeys[key] && value == nil {
			// An empty nav: or sidebar: key adds nothing.
			if _, ok := out[key]; !ok {
				out[key] = nil
			}
			continue
		}
		if concatThemeKeys[key] {
			prevSeq, prevOK := out[key].([]any)
			nextSeq, nextOK := value.([]any)
			if prevOK && nextOK {
				out[key] = append(slices.Clone(prevSeq), nextSeq...)
				continue
			}
		}
		out[key] = value
	}
	return out
}
