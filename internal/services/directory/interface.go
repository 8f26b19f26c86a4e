// File: internal/services/directory/interface.go
package directory

import "context"

// Directory is the provider directory collaborator. Search returns the raw
// result records for a specialty/location query; an empty slice is a valid
// outcome the caller decides how to surface.
type Directory interface {
	Search(ctx context.Context, query Query) ([]Result, error)
}
