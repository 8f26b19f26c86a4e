// File: internal/services/taxonomy/matcher.go
package taxonomy

import (
	"fmt"
	"strings"
)

// Match is a resolved taxonomy position for a specialty string.
type Match struct {
	Group          string `json:"group"`
	Classification string `json:"classification"`
	Specialization string `json:"specialization"`
	DisplayName    string `json:"display_name"`
	Code           string `json:"code"`
}

// Matcher resolves free-text specialty strings against the taxonomy tree.
// Every consultation category carries a default specialty that is validated
// at construction, so Resolve never reports "not found" at call time.
type Matcher struct {
	index    *Index
	defaults map[string]Match
}

// NewMatcher validates that every category default resolves to a node in the
// tree. An unresolvable default is a configuration error and fatal to
// startup, not recoverable at call time.
func NewMatcher(index *Index, categoryDefaults map[string]string) (*Matcher, error) {
	m := &Matcher{
		index:    index,
		defaults: make(map[string]Match, len(categoryDefaults)),
	}
	for category, specialty := range categoryDefaults {
		match, ok := m.lookup(specialty)
		if !ok {
			return nil, fmt.Errorf("taxonomy: default specialty %q for category %q does not resolve to any node", specialty, category)
		}
		m.defaults[category] = match
	}
	return m, nil
}

// Resolve maps a free-text specialty to a taxonomy node. An empty or
// unmatched input falls back to the category default. The returned error
// only fires for a category the matcher was never configured with.
func (m *Matcher) Resolve(freeText, category string) (Match, error) {
	if trimmed := strings.TrimSpace(freeText); trimmed != "" {
		if match, ok := m.lookup(trimmed); ok {
			return match, nil
		}
	}
	fallback, ok := m.defaults[category]
	if !ok {
		return Match{}, fmt.Errorf("taxonomy: no default specialty configured for category %q", category)
	}
	return fallback, nil
}

// lookup performs the two-pass exact match: specializations first, then
// classifications whose records carry no specialization.
func (m *Matcher) lookup(specialty string) (Match, bool) {
	want := strings.ToLower(strings.TrimSpace(specialty))

	for _, g := range m.index.Groups {
		for _, c := range g.Classifications {
			for _, e := range c.Entries {
				if e.Specialization != "" && strings.ToLower(e.Specialization) == want {
					return Match{
						Group:          g.Name,
						Classification: c.Name,
						Specialization: e.Specialization,
						DisplayName:    e.DisplayName,
						Code:           e.Code,
					}, true
				}
			}
		}
	}

	for _, g := range m.index.Groups {
		for _, c := range g.Classifications {
			for _, e := range c.Entries {
				if e.Specialization == "" && strings.ToLower(c.Name) == want {
					return Match{
						Group:          g.Name,
						Classification: c.Name,
						Specialization: e.Specialization,
						DisplayName:    e.DisplayName,
						Code:           e.Code,
					}, true
				}
			}
		}
	}

	return Match{}, false
}
