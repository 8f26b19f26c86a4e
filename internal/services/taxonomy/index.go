// File: internal/services/taxonomy/index.go
package taxonomy

import "github.com/visionary-ai/medassist/internal/domain"

// Entry is one selectable specialty under a classification. Name falls back
// to the classification name when the source record has no specialization.
type Entry struct {
	Name           string `json:"name"`
	DisplayName    string `json:"display_name"`
	Code           string `json:"code"`
	Specialization string `json:"specialization"`
}

// Classification groups entries under one classification name.
type Classification struct {
	Name    string  `json:"name"`
	Entries []Entry `json:"entries"`
}

// Group is one top-level taxonomy group.
type Group struct {
	Name            string           `json:"name"`
	Classifications []Classification `json:"classifications"`
}

// Index is the derived three-level tree, built once and reused for every
// lookup.
type Index struct {
	Groups []Group
}

// Build constructs the nested tree from flat reference records. Ordering is
// deterministic: groups, classifications, and entries appear in first-seen
// input order. Records missing a group or classification are malformed
// reference data and are skipped, never fatal.
func Build(records []domain.TaxonomyRecord) *Index {
	idx := &Index{}
	groupPos := make(map[string]int)
	classPos := make(map[string]map[string]int)

	for _, rec := range records {
		if rec.Group == "" || rec.Classification == "" {
			continue
		}

		gi, ok := groupPos[rec.Group]
		if !ok {
			gi = len(idx.Groups)
			groupPos[rec.Group] = gi
			classPos[rec.Group] = make(map[string]int)
			idx.Groups = append(idx.Groups, Group{Name: rec.Group})
		}

		ci, ok := classPos[rec.Group][rec.Classification]
		if !ok {
			ci = len(idx.Groups[gi].Classifications)
			classPos[rec.Group][rec.Classification] = ci
			idx.Groups[gi].Classifications = append(idx.Groups[gi].Classifications,
				Classification{Name: rec.Classification})
		}

		name := rec.Specialization
		if name == "" {
			name = rec.Classification
		}
		idx.Groups[gi].Classifications[ci].Entries = append(
			idx.Groups[gi].Classifications[ci].Entries,
			Entry{
				Name:           name,
				DisplayName:    rec.DisplayName,
				Code:           rec.Code,
				Specialization: rec.Specialization,
			})
	}

	return idx
}
