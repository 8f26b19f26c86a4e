// File: internal/domain/provider.go
package domain

// Coordinates is a WGS84 point.
type Coordinates struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// ProviderRecord is one practitioner or organization returned by a discovery
// query. Recomputed on every query, never persisted. Latitude/Longitude are
// nil when geocoding the address failed; such records stay in list views but
// are excluded from map rendering.
type ProviderRecord struct {
	Name           string   `json:"name"`
	SpecialtyLabel string   `json:"specialty_label"`
	Address        string   `json:"address"`
	MapQuery       string   `json:"map_query"`
	Latitude       *float64 `json:"latitude,omitempty"`
	Longitude      *float64 `json:"longitude,omitempty"`
}

// HasCoordinates reports whether the record resolved to a map position.
func (p ProviderRecord) HasCoordinates() bool {
	return p.Latitude != nil && p.Longitude != nil
}

// MapViewport is the frame the presentation layer should render the provider
// map with.
type MapViewport struct {
	Center        Coordinates `json:"center"`
	LatitudeSpan  float64     `json:"latitude_span"`
	LongitudeSpan float64     `json:"longitude_span"`
}
