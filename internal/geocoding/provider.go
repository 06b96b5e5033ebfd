// Package geocoding resolves free-form addresses into coordinates.
package geocoding

import (
	"context"

	"github.com/UnknownOlympus/olhovivo/internal/models"
)

// Provider turns an address typed by a rider into the point used to rank nearby stops.
// Implementations return a package sentinel when the address matches nothing.
type Provider interface {
	Geocode(ctx context.Context, address string) (*models.Coordinates, error)
}
