package geocoding

import (
	"errors"
	"fmt"
	"log/slog"

	"golang.org/x/time/rate"
	"googlemaps.github.io/maps"
)

// ProviderType represents the type of geocoding provider.
type ProviderType string

const (
	// ProviderTypeGoogle represents Google Maps geocoding provider.
	ProviderTypeGoogle ProviderType = "google"
	// ProviderTypeNominatim represents OpenStreetMap Nominatim geocoding provider.
	ProviderTypeNominatim ProviderType = "nominatim"
	// ProviderTypeNone disables address lookups.
	ProviderTypeNone ProviderType = "none"
)

// ErrProviderDisabled is returned by NewProvider for ProviderTypeNone.
var ErrProviderDisabled = errors.New("geocoding provider is disabled")

// ProviderConfig holds configuration for creating a geocoding provider.
type ProviderConfig struct {
	Type         ProviderType // Type of provider to create
	APIKey       string       // API key (used by Google provider)
	RateLimit    int          // Requests per second, zero means the provider default
	CountryCodes string       // Comma separated ISO 3166-1 codes results are restricted to
	Logger       *slog.Logger // Logger for the provider
}

// NewProvider creates a geocoding provider based on the provided configuration.
//
// Supported provider types:
// - "google": Google Maps Geocoding API (requires API key)
// - "nominatim": OpenStreetMap Nominatim API (free, no API key required)
// - "none": returns ErrProviderDisabled
func NewProvider(config ProviderConfig) (Provider, error) {
	switch config.Type {
	case ProviderTypeGoogle:
		return newGoogleProvider(config)
	case ProviderTypeNominatim:
		return newNominatimProvider(config), nil
	case ProviderTypeNone:
		return nil, ErrProviderDisabled
	default:
		return nil, fmt.Errorf("unsupported provider type: %s", config.Type)
	}
}

func newGoogleProvider(config ProviderConfig) (Provider, error) {
	if config.APIKey == "" {
		return nil, errors.New("API key is required for Google provider")
	}

	clientOpts := []maps.ClientOption{
		maps.WithAPIKey(config.APIKey),
	}
	if config.RateLimit > 0 {
		clientOpts = append(clientOpts, maps.WithRateLimit(config.RateLimit))
	}

	client, err := maps.NewClient(clientOpts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create Google Maps client: %w", err)
	}

	return NewGoogleProvider(client, config.CountryCodes, config.Logger), nil
}

func newNominatimProvider(config ProviderConfig) Provider {
	// Public instance usage policy allows one request per second.
	if config.RateLimit <= 0 {
		config.RateLimit = 1
	}

	limiter := rate.NewLimiter(rate.Limit(config.RateLimit), config.RateLimit)
	provider := NewNominatimProvider(config.Logger, limiter)
	provider.countryCodes = config.CountryCodes

	return provider
}
