// File: internal/services/location/resolver.go
package location

import (
	"context"

	"github.com/visionary-ai/medassist/internal/services/geocode"
)

// Logger defines the logging interface used by the location resolver.
type Logger interface {
	Info(msg string, keysAndValues ...interface{})
	Error(msg string, keysAndValues ...interface{})
	Debug(msg string, keysAndValues ...interface{})
	Warn(msg string, keysAndValues ...interface{})
}

// Resolver turns a stored postal code or device coordinates into the postal
// code / city label pair that seeds provider discovery.
type Resolver struct {
	profiles ProfileStore
	locator  DeviceLocator
	geocoder geocode.Geocoder
	logger   Logger
}

func NewResolver(profiles ProfileStore, locator DeviceLocator, geocoder geocode.Geocoder, logger Logger) *Resolver {
	return &Resolver{profiles: profiles, locator: locator, geocoder: geocoder, logger: logger}
}

// Resolve prefers the postal code already stored on the user profile,
// skipping device location entirely when one exists. Otherwise it asks the
// device; a denied permission surfaces as a PERMISSION error so the caller
// can prompt for a manual ZIP.
func (r *Resolver) Resolve(ctx context.Context, userID uint) (Resolved, error) {
	if stored, err := r.profiles.GetPostalCode(ctx, userID); err == nil && stored != "" {
		return Resolved{
			PostalCode: stored,
			CityLabel:  r.cityForPostalCode(ctx, stored),
		}, nil
	}

	coords, err := r.locator.CurrentLocation(ctx)
	if err != nil {
		if IsPermissionDenied(err) {
			return Resolved{}, &LocationError{Type: ErrTypePermission, Operation: "resolve", Message: "location permission denied; enter a 5-digit ZIP code", Cause: err}
		}
		return Resolved{}, &LocationError{Type: ErrTypeGeocode, Operation: "resolve", Message: "could not determine device location", Cause: err}
	}

	place, err := r.geocoder.Reverse(ctx, coords)
	if err != nil {
		return Resolved{}, &LocationError{Type: ErrTypeGeocode, Operation: "resolve", Message: "could not resolve device location to a postal code", Cause: err}
	}

	// Best-effort persistence; failure never blocks returning the value.
	if saveErr := r.profiles.SavePostalCode(ctx, userID, place.PostalCode); saveErr != nil {
		r.logger.Warn("failed to persist resolved postal code", "user_id", userID, "error", saveErr)
	}

	return Resolved{PostalCode: place.PostalCode, CityLabel: place.City}, nil
}

// ResolveManual accepts a user-entered ZIP, enforcing exactly five numeric
// characters before any query is issued.
func (r *Resolver) ResolveManual(ctx context.Context, userID uint, postalCode string) (Resolved, error) {
	if !ValidPostalCode(postalCode) {
		return Resolved{}, NewValidationError("resolve_manual", "postal code must be exactly 5 digits")
	}

	if saveErr := r.profiles.SavePostalCode(ctx, userID, postalCode); saveErr != nil {
		r.logger.Warn("failed to persist manual postal code", "user_id", userID, "error", saveErr)
	}

	return Resolved{
		PostalCode: postalCode,
		CityLabel:  r.cityForPostalCode(ctx, postalCode),
	}, nil
}

// cityForPostalCode derives a display label for a known ZIP. Display-only,
// so failure just leaves the label empty.
func (r *Resolver) cityForPostalCode(ctx context.Context, postalCode string) string {
	coords, err := r.geocoder.Forward(ctx, postalCode)
	if err != nil {
		r.logger.Debug("could not geocode stored postal code", "postal_code", postalCode, "error", err)
		return ""
	}
	place, err := r.geocoder.Reverse(ctx, coords)
	if err != nil {
		return ""
	}
	return place.City
}

// ValidPostalCode reports whether s is exactly five numeric characters.
func ValidPostalCode(s string) bool {
	if len(s) != 5 {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
