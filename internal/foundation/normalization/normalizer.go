// Package normalization maps loosely written enum strings from definition
// files onto typed values.
package normalization

import (
	"fmt"
	"slices"
	"sort"
	"strings"
)

// Normalizer provides type-safe string-to-enum normalization with error handling.
type Normalizer[T comparable] struct {
	name         string
	validValues  map[string]T
	defaultValue T
	validKeys    []string // cached for error messages
	key          func(string) string
}

// NewNormalizer creates a normalizer with a map of valid string->value pairs.
// Keys are folded to lower case and trimmed.
func NewNormalizer[T comparable](name string, values map[string]T, defaultValue T) *Normalizer[T] {
	return newNormalizer(name, values, defaultValue, fold)
}

func newNormalizer[T comparable](name string, values map[string]T, defaultValue T, key func(string) string) *Normalizer[T] {
	normalized := make(map[string]T, len(values))
	validKeys := make([]string, 0, len(values))

	for k, v := range values {
		k = key(k)
		normalized[k] = v
		validKeys = append(validKeys, k)
	}
	sort.Strings(validKeys)

	return &Normalizer[T]{
		name:         name,
		validValues:  normalized,
		defaultValue: defaultValue,
		validKeys:    validKeys,
		key:          key,
	}
}

// Normalize converts raw to the enum type, falling back to the default value.
func (n *Normalizer[T]) Normalize(raw string) T {
	if value, ok := n.validValues[n.key(raw)]; ok {
		return value
	}
	return n.defaultValue
}

// NormalizeWithError converts raw to the enum type or reports the valid options.
func (n *Normalizer[T]) NormalizeWithError(raw string) (T, error) {
	if value, ok := n.validValues[n.key(raw)]; ok {
		return value, nil
	}
	var zero T
	return zero, fmt.Errorf("invalid %s %q, valid options: %s", n.name, raw, strings.Join(n.validKeys, ", "))
}

// Has reports whether raw names a known value.
func (n *Normalizer[T]) Has(raw string) bool {
	_, ok := n.validValues[n.key(raw)]
	return ok
}

// ValidKeys returns all valid normalized keys, sorted.
func (n *Normalizer[T]) ValidKeys() []string {
	return slices.Clone(n.validKeys)
}

// Exact builds an allow-list normalizer that matches keys verbatim, without
// case folding or trimming.
func Exact(name string, keys ...string) *Normalizer[string] {
	values := make(map[string]string, len(keys))
	for _, k := range keys {
		values[k] = k
	}
	return newNormalizer(name, values, "", func(s string) string { return s })
}

func fold(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
