package repository

import (
	"context"
	"fmt"

	"github.com/UnknownOlympus/olhovivo/internal/models"
)

const (
	listPositionsQuery  = `SELECT id, vehicle_id, latitude, longitude FROM vehicle_positions ORDER BY id;`
	getPositionQuery    = `SELECT id, vehicle_id, latitude, longitude FROM vehicle_positions WHERE id = $1;`
	createPositionQuery = `
		INSERT INTO vehicle_positions (vehicle_id, latitude, longitude)
		VALUES ($1, $2, $3)
		RETURNING id;
	`
	updatePositionQuery = `
		UPDATE vehicle_positions
		SET vehicle_id = $1, latitude = $2, longitude = $3
		WHERE id = $4;
	`
	deletePositionQuery = `DELETE FROM vehicle_positions WHERE id = $1;`
)

// ListPositions returns every reported vehicle position ordered by id.
func (r *Repository) ListPositions(ctx context.Context) ([]models.VehiclePosition, error) {
	rows, err := r.db.Query(ctx, listPositionsQuery)
	if err != nil {
		return nil, fmt.Errorf("failed to query vehicle positions: %w", err)
	}
	defer rows.Close()

	positions := []models.VehiclePosition{}
	for rows.Next() {
		var pos models.VehiclePosition
		if errScan := rows.Scan(&pos.ID, &pos.VehicleID, &pos.Latitude, &pos.Longitude); errScan != nil {
			return nil, fmt.Errorf("failed to scan vehicle position: %w", errScan)
		}
		positions = append(positions, pos)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read row: %w", err)
	}

	return positions, nil
}

func (r *Repository) GetPosition(ctx context.Context, id int64) (models.VehiclePosition, error) {
	var pos models.VehiclePosition
	err := r.db.QueryRow(ctx, getPositionQuery, id).Scan(&pos.ID, &pos.VehicleID, &pos.Latitude, &pos.Longitude)
	if err != nil {
		return models.VehiclePosition{}, classify("get vehicle position", err)
	}

	return pos, nil
}

// CreatePosition records a position. An unknown vehicle id yields ErrInvalidReference.
func (r *Repository) CreatePosition(ctx context.Context, pos models.VehiclePosition) (models.VehiclePosition, error) {
	err := r.db.QueryRow(ctx, createPositionQuery, pos.VehicleID, pos.Latitude, pos.Longitude).Scan(&pos.ID)
	if err != nil {
		return models.VehiclePosition{}, classify("create vehicle position", err)
	}

	return pos, nil
}

func (r *Repository) UpdatePosition(ctx context.Context, pos models.VehiclePosition) (models.VehiclePosition, error) {
	tag, err := r.db.Exec(ctx, updatePositionQuery, pos.VehicleID, pos.Latitude, pos.Longitude, pos.ID)
	if err != nil {
		return models.VehiclePosition{}, classify("update vehicle position", err)
	}

	if err = expectAffected(tag); err != nil {
		return models.VehiclePosition{}, err
	}

	return pos, nil
}

func (r *Repository) DeletePosition(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, deletePositionQuery, id)
	if err != nil {
		return classify("delete vehicle position", err)
	}

	return expectAffected(tag)
}
