// Package geo ranks stops by their great-circle distance from a point.
package geo

import (
	"math"
	"sort"

	"github.com/UnknownOlympus/olhovivo/internal/models"
)

// EarthRadiusKm is the sphere radius used for every distance computation.
const EarthRadiusKm = 6373.0

// Distance returns the haversine distance in kilometers between two points.
func Distance(from, to models.Coordinates) float64 {
	lat1 := toRadians(from.Latitude)
	lat2 := toRadians(to.Latitude)
	dLat := lat2 - lat1
	dLong := toRadians(to.Longitude) - toRadians(from.Longitude)

	sinLat := math.Sin(dLat / 2)
	sinLong := math.Sin(dLong / 2)
	a := sinLat*sinLat + math.Cos(lat1)*math.Cos(lat2)*(sinLong*sinLong)
	// Rounding can push a just outside [0, 1] for near-antipodal points.
	a = math.Min(1, math.Max(0, a))
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return EarthRadiusKm * c
}

// RankByDistance pairs every stop with its distance from query and returns
// them nearest first. Stops at exactly the same distance keep their input order.
func RankByDistance(query models.Coordinates, stops []models.Stop) []models.RankedStop {
	ranked := make([]models.RankedStop, 0, len(stops))
	for _, stop := range stops {
		ranked = append(ranked, models.RankedStop{
			Distance: Distance(query, stop.Coordinates()),
			Stop:     stop,
		})
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Distance < ranked[j].Distance
	})

	return ranked
}

func toRadians(deg float64) float64 {
	return deg * (math.Pi / 180)
}
