// File: internal/services/provider/discovery.go
package provider

import (
	"context"
	"strings"

	"github.com/visionary-ai/medassist/internal/domain"
	"github.com/visionary-ai/medassist/internal/services/directory"
	"github.com/visionary-ai/medassist/internal/services/geocode"
)

// Logger defines the logging interface used by provider discovery.
type Logger interface {
	Info(msg string, keysAndValues ...interface{})
	Error(msg string, keysAndValues ...interface{})
	Debug(msg string, keysAndValues ...interface{})
	Warn(msg string, keysAndValues ...interface{})
}

// Location is the caller's position for a discovery query. PostalCode wins
// over Coordinates; with neither, the configured default region is queried.
type Location struct {
	PostalCode  string
	Coordinates *domain.Coordinates
}

// Discovery aggregates the directory and geocoding collaborators into
// ranked, geocoded provider results plus a map viewport.
type Discovery struct {
	directory directory.Directory
	geocoder  geocode.Geocoder
	config    *Config
	logger    Logger
}

func NewDiscovery(dir directory.Directory, geo geocode.Geocoder, config *Config, logger Logger) (*Discovery, error) {
	if err := config.Validate(); err != nil {
		return nil, &DiscoveryError{Type: ErrTypeConfig, Operation: "new_discovery", Message: err.Error()}
	}
	return &Discovery{directory: dir, geocoder: geo, config: config, logger: logger}, nil
}

// FindProviders queries the directory for the given specialty near the given
// location, geocodes each result, and derives the map viewport. An empty
// directory response is a visible no-results error; a failed geocode only
// drops that one record from the map, never from the list.
func (d *Discovery) FindProviders(ctx context.Context, specialty string, loc Location) ([]domain.ProviderRecord, *domain.MapViewport, error) {
	query := directory.Query{
		SpecialtyDescription: specialty,
		Limit:                d.config.Limit,
	}

	switch {
	case loc.PostalCode != "":
		query.PostalCode = loc.PostalCode
	case loc.Coordinates != nil:
		place, err := d.geocoder.Reverse(ctx, *loc.Coordinates)
		if err == nil && place.PostalCode != "" {
			query.PostalCode = place.PostalCode
		} else {
			d.logger.Warn("reverse geocode of device location failed; using default region", "error", err)
			query.StateCode = d.config.DefaultStateCode
		}
	default:
		query.StateCode = d.config.DefaultStateCode
	}

	results, err := d.directory.Search(ctx, query)
	if err != nil {
		return nil, nil, &DiscoveryError{Type: ErrTypeDirectory, Operation: "find_providers", Message: "directory query failed", Cause: err}
	}
	if len(results) == 0 {
		return nil, nil, NewNoResultsError(specialty)
	}

	records := make([]domain.ProviderRecord, 0, len(results))
	for _, res := range results {
		record := buildRecord(res)
		if coords, geoErr := d.geocoder.Forward(ctx, record.Address); geoErr == nil {
			lat, lng := coords.Latitude, coords.Longitude
			record.Latitude = &lat
			record.Longitude = &lng
		} else {
			d.logger.Debug("geocoding failed for provider", "name", record.Name, "error", geoErr)
		}
		records = append(records, record)
	}

	return records, d.viewport(records, loc), nil
}

// buildRecord maps one raw directory result onto a ProviderRecord: the
// practice-location address wins over the first one, and display names fall
// back person -> organization -> "Unknown".
func buildRecord(res directory.Result) domain.ProviderRecord {
	var addr directory.Address
	if len(res.Addresses) > 0 {
		addr = res.Addresses[0]
		for _, a := range res.Addresses {
			if a.AddressPurpose == directory.AddressPurposeLocation {
				addr = a
				break
			}
		}
	}

	name := strings.TrimSpace(res.Basic.FirstName + " " + res.Basic.LastName)
	if name == "" {
		name = strings.TrimSpace(res.Basic.OrganizationName)
	}
	if name == "" {
		name = "Unknown"
	}

	specialtyLabel := ""
	for _, tax := range res.Taxonomies {
		if specialtyLabel == "" || tax.Primary {
			specialtyLabel = tax.Description
		}
		if tax.Primary {
			break
		}
	}

	address := composeAddress(addr)
	return domain.ProviderRecord{
		Name:           name,
		SpecialtyLabel: specialtyLabel,
		Address:        address,
		MapQuery:       strings.TrimSpace(name + " " + address),
	}
}

func composeAddress(addr directory.Address) string {
	parts := make([]string, 0, 4)
	for _, p := range []string{addr.AddressLine1, addr.AddressLine2, addr.City} {
		if strings.TrimSpace(p) != "" {
			parts = append(parts, strings.TrimSpace(p))
		}
	}
	tail := strings.TrimSpace(addr.State + " " + addr.PostalCode)
	if tail != "" {
		parts = append(parts, tail)
	}
	return strings.Join(parts, ", ")
}

// viewport frames the map: the caller's own location wins, otherwise the
// centroid of the records that geocoded. Nil when neither exists.
func (d *Discovery) viewport(records []domain.ProviderRecord, loc Location) *domain.MapViewport {
	if loc.Coordinates != nil {
		return &domain.MapViewport{
			Center:        *loc.Coordinates,
			LatitudeSpan:  d.config.LatitudeSpan,
			LongitudeSpan: d.config.LongitudeSpan,
		}
	}

	var latSum, lngSum float64
	located := 0
	for _, r := range records {
		if r.HasCoordinates() {
			latSum += *r.Latitude
			lngSum += *r.Longitude
			located++
		}
	}
	if located == 0 {
		return nil
	}

	return &domain.MapViewport{
		Center: domain.Coordinates{
			Latitude:  latSum / float64(located),
			Longitude: lngSum / float64(located),
		},
		LatitudeSpan:  d.config.LatitudeSpan,
		LongitudeSpan: d.config.LongitudeSpan,
	}
}
