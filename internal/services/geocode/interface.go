// File: internal/services/geocode/interface.go
package geocode

import (
	"context"

	"github.com/visionary-ai/medassist/internal/domain"
)

// Place is the reverse-geocoded address context for a coordinate.
type Place struct {
	PostalCode string `json:"postal_code"`
	City       string `json:"city"`
}

// Geocoder is the geocoding collaborator: forward resolves an address string
// to coordinates, reverse resolves coordinates to postal code and city.
// Either direction may legitimately find nothing, reported as a NOT_FOUND
// typed error.
type Geocoder interface {
	Forward(ctx context.Context, address string) (domain.Coordinates, error)
	Reverse(ctx context.Context, coords domain.Coordinates) (Place, error)
}
