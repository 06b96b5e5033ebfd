package httpapi

import "github.com/UnknownOlympus/olhovivo/internal/models"

type stopResponse struct {
	ID        int64   `json:"id"`
	Name      string  `json:"name"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

type lineResponse struct {
	ID    int64   `json:"id"`
	Name  string  `json:"name"`
	Stops []int64 `json:"stops"`
}

type vehicleResponse struct {
	ID     int64  `json:"id"`
	Name   string `json:"name"`
	Model  string `json:"model"`
	LineID *int64 `json:"lineId"`
}

type positionResponse struct {
	ID        int64   `json:"id"`
	VehicleID int64   `json:"vehicleId"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

type rankedStopResponse struct {
	Distance float64      `json:"distance"`
	Stop     stopResponse `json:"stop"`
}

func newStopResponse(s models.Stop) stopResponse {
	return stopResponse{ID: s.ID, Name: s.Name, Latitude: s.Latitude, Longitude: s.Longitude}
}

func newLineResponse(l models.Line) lineResponse {
	stops := l.StopIDs
	if stops == nil {
		stops = []int64{}
	}
	return lineResponse{ID: l.ID, Name: l.Name, Stops: stops}
}

func newVehicleResponse(v models.Vehicle) vehicleResponse {
	return vehicleResponse{ID: v.ID, Name: v.Name, Model: v.Model, LineID: v.LineID}
}

func newPositionResponse(p models.VehiclePosition) positionResponse {
	return positionResponse{ID: p.ID, VehicleID: p.VehicleID, Latitude: p.Latitude, Longitude: p.Longitude}
}

func newRankedStopResponse(r models.RankedStop) rankedStopResponse {
	return rankedStopResponse{Distance: r.Distance, Stop: newStopResponse(r.Stop)}
}

// mapSlice converts every item with fn, never returning nil.
func mapSlice[T, R any](items []T, fn func(T) R) []R {
	out := make([]R, 0, len(items))
	for _, item := range items {
		out = append(out, fn(item))
	}
	return out
}
