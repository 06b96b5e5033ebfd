package service

import (
	"context"
	"fmt"

	"github.com/UnknownOlympus/olhovivo/internal/models"
)

// ListStops returns every stop, or ErrNotFound when there are none.
func (s *TransitService) ListStops(ctx context.Context) ([]models.Stop, error) {
	return nonEmpty(s.repo.ListStops(ctx))
}

func (s *TransitService) GetStop(ctx context.Context, id int64) (models.Stop, error) {
	return s.repo.GetStop(ctx, id)
}

func (s *TransitService) CreateStop(ctx context.Context, stop models.Stop) (models.Stop, error) {
	created, err := s.repo.CreateStop(ctx, stop)
	if err != nil {
		return models.Stop{}, err
	}

	s.log.InfoContext(ctx, "Stop created", "id", created.ID, "name", created.Name)

	return created, nil
}

func (s *TransitService) UpdateStop(ctx context.Context, stop models.Stop) (models.Stop, error) {
	return s.repo.UpdateStop(ctx, stop)
}

func (s *TransitService) DeleteStop(ctx context.Context, id int64) error {
	return s.repo.DeleteStop(ctx, id)
}

// LinesForStop returns the lines visiting the stop. The list may be empty;
// ErrNotFound means the stop itself does not exist.
func (s *TransitService) LinesForStop(ctx context.Context, stopID int64) ([]models.Line, error) {
	if _, err := s.repo.GetStop(ctx, stopID); err != nil {
		return nil, err
	}

	lines, err := s.repo.ListLinesForStop(ctx, stopID)
	if err != nil {
		return nil, fmt.Errorf("failed to list lines of stop %d: %w", stopID, err)
	}

	return lines, nil
}

// ListLines returns every line, or ErrNotFound when there are none.
func (s *TransitService) ListLines(ctx context.Context) ([]models.Line, error) {
	return nonEmpty(s.repo.ListLines(ctx))
}

func (s *TransitService) GetLine(ctx context.Context, id int64) (models.Line, error) {
	return s.repo.GetLine(ctx, id)
}

func (s *TransitService) CreateLine(ctx context.Context, line models.Line) (models.Line, error) {
	created, err := s.repo.CreateLine(ctx, line)
	if err != nil {
		return models.Line{}, err
	}

	s.log.InfoContext(ctx, "Line created", "id", created.ID, "name", created.Name, "stops", len(created.StopIDs))

	return created, nil
}

func (s *TransitService) UpdateLine(ctx context.Context, line models.Line) (models.Line, error) {
	return s.repo.UpdateLine(ctx, line)
}

func (s *TransitService) DeleteLine(ctx context.Context, id int64) error {
	return s.repo.DeleteLine(ctx, id)
}

// VehiclesForLine returns the vehicles serving the line. The list may be empty;
// ErrNotFound means the line itself does not exist.
func (s *TransitService) VehiclesForLine(ctx context.Context, lineID int64) ([]models.Vehicle, error) {
	if _, err := s.repo.GetLine(ctx, lineID); err != nil {
		return nil, err
	}

	vehicles, err := s.repo.ListVehiclesForLine(ctx, lineID)
	if err != nil {
		return nil, fmt.Errorf("failed to list vehicles of line %d: %w", lineID, err)
	}

	return vehicles, nil
}

// ListVehicles returns every vehicle, or ErrNotFound when there are none.
func (s *TransitService) ListVehicles(ctx context.Context) ([]models.Vehicle, error) {
	return nonEmpty(s.repo.ListVehicles(ctx))
}

func (s *TransitService) GetVehicle(ctx context.Context, id int64) (models.Vehicle, error) {
	return s.repo.GetVehicle(ctx, id)
}

func (s *TransitService) CreateVehicle(ctx context.Context, vehicle models.Vehicle) (models.Vehicle, error) {
	created, err := s.repo.CreateVehicle(ctx, vehicle)
	if err != nil {
		return models.Vehicle{}, err
	}

	s.log.InfoContext(ctx, "Vehicle created", "id", created.ID, "name", created.Name)

	return created, nil
}

func (s *TransitService) UpdateVehicle(ctx context.Context, vehicle models.Vehicle) (models.Vehicle, error) {
	return s.repo.UpdateVehicle(ctx, vehicle)
}

func (s *TransitService) DeleteVehicle(ctx context.Context, id int64) error {
	return s.repo.DeleteVehicle(ctx, id)
}

// ListPositions returns every position, or ErrNotFound when there are none.
func (s *TransitService) ListPositions(ctx context.Context) ([]models.VehiclePosition, error) {
	return nonEmpty(s.repo.ListPositions(ctx))
}

func (s *TransitService) GetPosition(ctx context.Context, id int64) (models.VehiclePosition, error) {
	return s.repo.GetPosition(ctx, id)
}

// CreatePosition stores the position and then publishes it.
func (s *TransitService) CreatePosition(ctx context.Context, pos models.VehiclePosition) (models.VehiclePosition, error) {
	created, err := s.repo.CreatePosition(ctx, pos)
	if err != nil {
		return models.VehiclePosition{}, err
	}

	s.publish(ctx, created)

	return created, nil
}

// UpdatePosition stores the position and then publishes it.
func (s *TransitService) UpdatePosition(ctx context.Context, pos models.VehiclePosition) (models.VehiclePosition, error) {
	updated, err := s.repo.UpdatePosition(ctx, pos)
	if err != nil {
		return models.VehiclePosition{}, err
	}

	s.publish(ctx, updated)

	return updated, nil
}

func (s *TransitService) DeletePosition(ctx context.Context, id int64) error {
	return s.repo.DeletePosition(ctx, id)
}
