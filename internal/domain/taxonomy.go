// File: internal/domain/taxonomy.go
package domain

// TaxonomyRecord is one row of the flat specialty classification reference
// data (Group -> Classification -> Specialization). Loaded once at process
// start; never mutated.
type TaxonomyRecord struct {
	Group          string `json:"group"`
	Classification string `json:"classification"`
	Specialization string `json:"specialization"`
	DisplayName    string `json:"display_name"`
	Code           string `json:"code"`
}
