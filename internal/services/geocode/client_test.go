package geocode

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/visionary-ai/medassist/internal/domain"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) (*Client, *httptest.Server) {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	client, err := NewClient(&Config{BaseURL: server.URL, Timeout: time.Second})
	if err != nil {
		t.Fatalf("NewClient failed: %v", err)
	}
	return client, server
}

func TestForwardGeocode(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/search" {
			t.Fatalf("unexpected path: %s", r.URL.Path)
		}
		if got := r.URL.Query().Get("q"); got != "233 S Wacker Dr, Chicago, IL 60606" {
			t.Fatalf("unexpected query: %q", got)
		}
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `[{"lat":"41.8789","lon":"-87.6359"}]`)
	})

	coords, err := client.Forward(context.Background(), "233 S Wacker Dr, Chicago, IL 60606")
	if err != nil {
		t.Fatalf("Forward failed: %v", err)
	}
	if coords.Latitude != 41.8789 || coords.Longitude != -87.6359 {
		t.Fatalf("unexpected coordinates: %+v", coords)
	}
}

func TestForwardGeocodeNoResults(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `[]`)
	})

	_, err := client.Forward(context.Background(), "nowhere at all")
	if !IsNotFound(err) {
		t.Fatalf("expected not-found error, got %v", err)
	}
}

func TestReverseGeocode(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/reverse" {
			t.Fatalf("unexpected path: %s", r.URL.Path)
		}
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{"address":{"postcode":"60601","town":"Chicago"}}`)
	})

	place, err := client.Reverse(context.Background(), domain.Coordinates{Latitude: 41.88, Longitude: -87.62})
	if err != nil {
		t.Fatalf("Reverse failed: %v", err)
	}
	if place.PostalCode != "60601" || place.City != "Chicago" {
		t.Fatalf("unexpected place: %+v", place)
	}
}

func TestReverseGeocodeEmptyAddress(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{"address":{}}`)
	})

	_, err := client.Reverse(context.Background(), domain.Coordinates{})
	if !IsNotFound(err) {
		t.Fatalf("expected not-found error, got %v", err)
	}
}

func TestGeocodeServerError(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	})

	_, err := client.Forward(context.Background(), "anywhere")
	if err == nil || IsNotFound(err) {
		t.Fatalf("expected network error, got %v", err)
	}
}
