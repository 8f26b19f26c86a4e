package location

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/visionary-ai/medassist/internal/domain"
	"github.com/visionary-ai/medassist/internal/services/geocode"
)

type fakeProfiles struct {
	postalCode string
	getErr     error
	saveErr    error
	saved      string
	saveCalls  int
}

func (f *fakeProfiles) GetPostalCode(ctx context.Context, userID uint) (string, error) {
	return f.postalCode, f.getErr
}

func (f *fakeProfiles) SavePostalCode(ctx context.Context, userID uint, postalCode string) error {
	f.saveCalls++
	f.saved = postalCode
	return f.saveErr
}

type fakeLocator struct {
	coords domain.Coordinates
	err    error
	calls  int
}

func (f *fakeLocator) CurrentLocation(ctx context.Context) (domain.Coordinates, error) {
	f.calls++
	return f.coords, f.err
}

type fakeGeocoder struct {
	forward    domain.Coordinates
	forwardErr error
	place      geocode.Place
	reverseErr error
}

func (f *fakeGeocoder) Forward(ctx context.Context, address string) (domain.Coordinates, error) {
	return f.forward, f.forwardErr
}

func (f *fakeGeocoder) Reverse(ctx context.Context, coords domain.Coordinates) (geocode.Place, error) {
	return f.place, f.reverseErr
}

type noopLogger struct{}

func (noopLogger) Info(string, ...interface{})  {}
func (noopLogger) Error(string, ...interface{}) {}
func (noopLogger) Debug(string, ...interface{}) {}
func (noopLogger) Warn(string, ...interface{})  {}

func TestResolvePrefersStoredPostalCode(t *testing.T) {
	profiles := &fakeProfiles{postalCode: "60601"}
	locator := &fakeLocator{}
	geo := &fakeGeocoder{place: geocode.Place{PostalCode: "60601", City: "Chicago"}}

	r := NewResolver(profiles, locator, geo, noopLogger{})
	resolved, err := r.Resolve(context.Background(), 1)
	require.NoError(t, err)

	assert.Equal(t, "60601", resolved.PostalCode)
	assert.Equal(t, "Chicago", resolved.CityLabel)
	assert.Zero(t, locator.calls, "device is never asked when a code is stored")
}

func TestResolveFallsBackToDeviceLocation(t *testing.T) {
	profiles := &fakeProfiles{}
	locator := &fakeLocator{coords: domain.Coordinates{Latitude: 41.88, Longitude: -87.62}}
	geo := &fakeGeocoder{place: geocode.Place{PostalCode: "60602", City: "Chicago"}}

	r := NewResolver(profiles, locator, geo, noopLogger{})
	resolved, err := r.Resolve(context.Background(), 1)
	require.NoError(t, err)

	assert.Equal(t, "60602", resolved.PostalCode)
	assert.Equal(t, "Chicago", resolved.CityLabel)
	assert.Equal(t, "60602", profiles.saved, "resolved code is persisted")
}

func TestResolvePersistenceFailureDoesNotBlock(t *testing.T) {
	profiles := &fakeProfiles{saveErr: errors.New("db down")}
	locator := &fakeLocator{coords: domain.Coordinates{Latitude: 41.88, Longitude: -87.62}}
	geo := &fakeGeocoder{place: geocode.Place{PostalCode: "60602", City: "Chicago"}}

	r := NewResolver(profiles, locator, geo, noopLogger{})
	resolved, err := r.Resolve(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, "60602", resolved.PostalCode)
}

func TestResolvePermissionDenied(t *testing.T) {
	profiles := &fakeProfiles{}
	locator := &fakeLocator{err: ErrPermissionDenied}

	r := NewResolver(profiles, locator, &fakeGeocoder{}, noopLogger{})
	_, err := r.Resolve(context.Background(), 1)
	require.Error(t, err)
	assert.True(t, IsPermissionDenied(err))
}

func TestResolveManualValidation(t *testing.T) {
	profiles := &fakeProfiles{}
	geo := &fakeGeocoder{place: geocode.Place{City: "Evanston"}}
	r := NewResolver(profiles, &fakeLocator{}, geo, noopLogger{})

	for _, bad := range []string{"", "1234", "123456", "6060a", "60 01"} {
		_, err := r.ResolveManual(context.Background(), 1, bad)
		assert.Error(t, err, "postal code %q should be rejected", bad)
	}
	assert.Zero(t, profiles.saveCalls, "nothing is persisted for invalid input")

	resolved, err := r.ResolveManual(context.Background(), 1, "60201")
	require.NoError(t, err)
	assert.Equal(t, "60201", resolved.PostalCode)
	assert.Equal(t, "Evanston", resolved.CityLabel)
	assert.Equal(t, "60201", profiles.saved)
}

func TestCityLabelFailureLeavesLabelEmpty(t *testing.T) {
	profiles := &fakeProfiles{postalCode: "60601"}
	geo := &fakeGeocoder{forwardErr: geocode.NewNotFoundError("forward", "no match")}

	r := NewResolver(profiles, &fakeLocator{}, geo, noopLogger{})
	resolved, err := r.Resolve(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, "60601", resolved.PostalCode)
	assert.Empty(t, resolved.CityLabel)
}
