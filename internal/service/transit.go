package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/UnknownOlympus/olhovivo/internal/geo"
	"github.com/UnknownOlympus/olhovivo/internal/geocoding"
	"github.com/UnknownOlympus/olhovivo/internal/metrics"
	"github.com/UnknownOlympus/olhovivo/internal/models"
	"github.com/UnknownOlympus/olhovivo/internal/repository"
)

var (
	// ErrNotFound is returned when an entity, or every entity of a listing, is missing.
	ErrNotFound = repository.ErrNotFound
	// ErrInvalidReference is returned when a write references an entity that does not exist.
	ErrInvalidReference = repository.ErrInvalidReference
	// ErrGeocodingDisabled is returned by address lookups when no provider is configured.
	ErrGeocodingDisabled = errors.New("address lookup is not configured")
	// ErrAddressNotFound is returned when the provider cannot resolve an address.
	ErrAddressNotFound = errors.New("address not found")
)

// PositionPublisher announces stored vehicle positions.
type PositionPublisher interface {
	PublishPosition(ctx context.Context, pos models.VehiclePosition) error
}

// TransitService implements the operations exposed over HTTP on top of the repository.
type TransitService struct {
	log           *slog.Logger         // Logger for logging service activities
	repo          repository.Interface // Storage of stops, lines, vehicles and positions
	geocoder      geocoding.Provider   // Address resolver, nil when address lookups are disabled
	providerName  string               // Name of the provider for metrics labeling
	publisher     PositionPublisher    // Receives every created or updated position
	metrics       *metrics.Metrics
	addressSuffix string // Appended to addresses that do not already mention it, e.g. "Juiz de Fora, MG"
}

// NewTransitService wires the service. geocoder may be nil.
func NewTransitService(
	log *slog.Logger,
	repo repository.Interface,
	geocoder geocoding.Provider,
	providerName string,
	publisher PositionPublisher,
	metrics *metrics.Metrics,
	addressSuffix string,
) *TransitService {
	return &TransitService{
		log:           log,
		repo:          repo,
		geocoder:      geocoder,
		providerName:  providerName,
		publisher:     publisher,
		metrics:       metrics,
		addressSuffix: strings.TrimSpace(addressSuffix),
	}
}

// NearestStops ranks every stored stop by its distance from coords, nearest first.
// It fails with ErrNotFound when there are no stops at all.
func (s *TransitService) NearestStops(ctx context.Context, coords models.Coordinates) ([]models.RankedStop, error) {
	stops, err := s.repo.ListStops(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load stops: %w", err)
	}
	if len(stops) == 0 {
		return nil, ErrNotFound
	}

	start := time.Now()
	ranked := geo.RankByDistance(coords, stops)
	s.metrics.RankingSeconds.Observe(time.Since(start).Seconds())
	s.metrics.RankedStops.Observe(float64(len(ranked)))

	s.log.DebugContext(ctx, "Stops ranked by distance",
		"latitude", coords.Latitude, "longitude", coords.Longitude, "count", len(ranked))

	return ranked, nil
}

// NearestStopsToAddress resolves address and ranks stops around it.
func (s *TransitService) NearestStopsToAddress(ctx context.Context, address string) ([]models.RankedStop, error) {
	if s.geocoder == nil {
		return nil, ErrGeocodingDisabled
	}

	query := s.withSuffix(address)

	start := time.Now()
	coords, err := s.geocoder.Geocode(ctx, query)
	s.metrics.GeocodeSeconds.WithLabelValues(s.providerName).Observe(time.Since(start).Seconds())

	switch {
	case errors.Is(err, geocoding.ErrEmptyResponse), errors.Is(err, geocoding.ErrNominatimEmptyResponse):
		s.metrics.GeocodeRequests.WithLabelValues(s.providerName, "not_found").Inc()
		return nil, fmt.Errorf("%w: %s", ErrAddressNotFound, address)
	case err != nil:
		s.metrics.GeocodeRequests.WithLabelValues(s.providerName, "error").Inc()
		return nil, fmt.Errorf("failed to geocode address: %w", err)
	}
	s.metrics.GeocodeRequests.WithLabelValues(s.providerName, "success").Inc()

	s.log.InfoContext(ctx, "Address resolved",
		"address", query, "latitude", coords.Latitude, "longitude", coords.Longitude)

	return s.NearestStops(ctx, *coords)
}

func (s *TransitService) withSuffix(address string) string {
	address = strings.TrimSpace(address)
	if s.addressSuffix == "" || strings.Contains(strings.ToLower(address), strings.ToLower(s.addressSuffix)) {
		return address
	}
	return address + ", " + s.addressSuffix
}

// publish announces pos. A broker failure never fails the write that produced pos.
func (s *TransitService) publish(ctx context.Context, pos models.VehiclePosition) {
	if err := s.publisher.PublishPosition(ctx, pos); err != nil {
		s.log.WarnContext(ctx, "Failed to publish vehicle position", "position_id", pos.ID, "error", err)
	}
}

func nonEmpty[T any](items []T, err error) ([]T, error) {
	if err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return nil, ErrNotFound
	}
	return items, nil
}
