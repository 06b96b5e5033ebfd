package geocoding

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/UnknownOlympus/olhovivo/internal/models"
	"googlemaps.github.io/maps"
)

// GoogleProvider geocodes addresses with the Google Maps Geocoding API.
type GoogleProvider struct {
	client     GoogleAPIClient // client is the Google Maps API client
	components map[maps.Component]string
	log        *slog.Logger
}

type GoogleAPIClient interface {
	Geocode(ctx context.Context, r *maps.GeocodingRequest) ([]maps.GeocodingResult, error)
}

// ErrEmptyResponse is returned when the Google Maps API responds with an empty result.
var ErrEmptyResponse = errors.New("get empty response from Google Maps API")

// NewGoogleProvider wraps client. When countryCodes is not empty only the first
// code is applied as a country component filter.
func NewGoogleProvider(client GoogleAPIClient, countryCodes string, log *slog.Logger) *GoogleProvider {
	provider := &GoogleProvider{client: client, log: log}

	if country, _, _ := strings.Cut(countryCodes, ","); strings.TrimSpace(country) != "" {
		provider.components = map[maps.Component]string{
			maps.ComponentCountry: strings.ToUpper(strings.TrimSpace(country)),
		}
	}

	return provider
}

// Geocode returns the location of the best match for address.
func (gp *GoogleProvider) Geocode(ctx context.Context, address string) (*models.Coordinates, error) {
	gp.log.DebugContext(ctx, "Geocoding using Google Maps", "address", address)

	req := maps.GeocodingRequest{Address: address, Components: gp.components}
	geocodeResponse, err := gp.client.Geocode(ctx, &req)
	if err != nil {
		return nil, fmt.Errorf("failed to geocode address: %w", err)
	}

	if len(geocodeResponse) == 0 {
		return nil, ErrEmptyResponse
	}
	coords := geocodeResponse[0].Geometry.Location

	return &models.Coordinates{Latitude: coords.Lat, Longitude: coords.Lng}, nil
}
