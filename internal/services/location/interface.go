// File: internal/services/location/interface.go
package location

import (
	"context"
	"errors"

	"github.com/visionary-ai/medassist/internal/domain"
)

// ErrPermissionDenied is returned by DeviceLocator implementations when the
// user declines the location permission prompt.
var ErrPermissionDenied = errors.New("location permission denied")

// ProfileStore is the user-profile collaborator holding the persisted
// postal code. Writes are best-effort.
type ProfileStore interface {
	GetPostalCode(ctx context.Context, userID uint) (string, error)
	SavePostalCode(ctx context.Context, userID uint, postalCode string) error
}

// DeviceLocator is the device positioning collaborator. CurrentLocation
// blocks on the permission prompt and returns ErrPermissionDenied on
// refusal.
type DeviceLocator interface {
	CurrentLocation(ctx context.Context) (domain.Coordinates, error)
}

// Resolved is the outcome of location resolution: the postal code seeding
// provider queries plus a city label for display.
type Resolved struct {
	PostalCode string `json:"postal_code"`
	CityLabel  string `json:"city_label"`
}
