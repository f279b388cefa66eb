package foundation

import (
	"fmt"
	"slices"
	"strings"
)

// defaultNormalizer provides standard string normalization.
func defaultNormalizer(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// Normalizer maps loosely written strings onto a closed set of enum values.
type Normalizer[T comparable] struct {
	validValues map[string]T
	accepted    []string
}

// NewNormalizer creates a normalizer from canonical spellings to values.
// Accepted spellings are reported in the order given by order; any key
// missing from order is appended in sorted order.
func NewNormalizer[T comparable](values map[string]T, order ...string) *Normalizer[T] {
	normalized := make(map[string]T, len(values))
	for k, v := range values {
		normalized[defaultNormalizer(k)] = v
	}

	accepted := make([]string, 0, len(values))
	seen := make(map[string]bool, len(values))
	for _, k := range order {
		k = defaultNormalizer(k)
		if _, ok := normalized[k]; ok && !seen[k] {
			accepted = append(accepted, k)
			seen[k] = true
		}
	}
	var rest []string
	for k := range normalized {
		if !seen[k] {
			rest = append(rest, k)
		}
	}
	slices.Sort(rest)

	return &Normalizer[T]{
		validValues: normalized,
		accepted:    append(accepted, rest...),
	}
}

// Normalize returns the enum value for raw and whether it was recognized.
func (n *Normalizer[T]) Normalize(raw string) (T, bool) {
	value, ok := n.validValues[defaultNormalizer(raw)]
	return value, ok
}

// NormalizeWithError is Normalize with an error naming the accepted values.
func (n *Normalizer[T]) NormalizeWithError(raw string) (T, error) {
	if value, ok := n.Normalize(raw); ok {
		return value, nil
	}
	var zero T
	return zero, fmt.Errorf("invalid value %q (accepted: %s)", raw, strings.Join(n.accepted, ", "))
}

// Accepted returns the canonical spellings in display order.
func (n *Normalizer[T]) Accepted() []string {
	return slices.Clone(n.accepted)
}
