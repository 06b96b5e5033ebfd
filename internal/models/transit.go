// Package models holds the transit records shared by storage, service and transport.
package models

// Coordinates is a point in decimal degrees, as used for stops and query positions.
type Coordinates struct {
	Latitude  float64
	Longitude float64
}

// Stop is a named place where vehicles pick up passengers.
type Stop struct {
	ID        int64
	Name      string
	Latitude  float64
	Longitude float64
}

// Coordinates returns the location of the stop.
func (s Stop) Coordinates() Coordinates {
	return Coordinates{Latitude: s.Latitude, Longitude: s.Longitude}
}

// Line is a route served by vehicles. StopIDs holds the stops the line visits.
type Line struct {
	ID      int64
	Name    string
	StopIDs []int64
}

// Vehicle is a bus assigned, optionally, to a line.
type Vehicle struct {
	ID     int64
	Name   string
	Model  string
	LineID *int64 // LineID is nil when the vehicle is not assigned to any line.
}

// VehiclePosition is a reported location of a vehicle.
type VehiclePosition struct {
	ID        int64
	VehicleID int64
	Latitude  float64
	Longitude float64
}

// RankedStop pairs a stop with its distance, in kilometers, from a query point.
type RankedStop struct {
	Distance float64
	Stop     Stop
}
