package repository

import (
	"context"
	"fmt"

	"github.com/UnknownOlympus/olhovivo/internal/models"
	"github.com/jackc/pgx/v5"
)

const (
	listVehiclesQuery  = `SELECT id, name, model, line_id FROM vehicles ORDER BY id;`
	getVehicleQuery    = `SELECT id, name, model, line_id FROM vehicles WHERE id = $1;`
	createVehicleQuery = `
		INSERT INTO vehicles (name, model, line_id)
		VALUES ($1, $2, $3)
		RETURNING id;
	`
	updateVehicleQuery = `
		UPDATE vehicles
		SET name = $1, model = $2, line_id = $3
		WHERE id = $4;
	`
	deleteVehicleQuery = `DELETE FROM vehicles WHERE id = $1;`
)

// ListVehicles returns every vehicle ordered by id.
func (r *Repository) ListVehicles(ctx context.Context) ([]models.Vehicle, error) {
	rows, err := r.db.Query(ctx, listVehiclesQuery)
	if err != nil {
		return nil, fmt.Errorf("failed to query vehicles: %w", err)
	}

	return scanVehicles(rows)
}

// GetVehicle returns the vehicle with the given id or ErrNotFound.
func (r *Repository) GetVehicle(ctx context.Context, id int64) (models.Vehicle, error) {
	var vehicle models.Vehicle
	err := r.db.QueryRow(ctx, getVehicleQuery, id).
		Scan(&vehicle.ID, &vehicle.Name, &vehicle.Model, &vehicle.LineID)
	if err != nil {
		return models.Vehicle{}, classify("get vehicle", err)
	}

	return vehicle, nil
}

// CreateVehicle inserts the vehicle. An unknown line id yields ErrInvalidReference.
func (r *Repository) CreateVehicle(ctx context.Context, vehicle models.Vehicle) (models.Vehicle, error) {
	err := r.db.QueryRow(ctx, createVehicleQuery, vehicle.Name, vehicle.Model, vehicle.LineID).Scan(&vehicle.ID)
	if err != nil {
		return models.Vehicle{}, classify("create vehicle", err)
	}

	return vehicle, nil
}

// UpdateVehicle overwrites every field of an existing vehicle.
func (r *Repository) UpdateVehicle(ctx context.Context, vehicle models.Vehicle) (models.Vehicle, error) {
	tag, err := r.db.Exec(ctx, updateVehicleQuery, vehicle.Name, vehicle.Model, vehicle.LineID, vehicle.ID)
	if err != nil {
		return models.Vehicle{}, classify("update vehicle", err)
	}

	if err = expectAffected(tag); err != nil {
		return models.Vehicle{}, err
	}

	return vehicle, nil
}

// DeleteVehicle removes the vehicle and all of its reported positions.
func (r *Repository) DeleteVehicle(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, deleteVehicleQuery, id)
	if err != nil {
		return classify("delete vehicle", err)
	}

	return expectAffected(tag)
}

func scanVehicles(rows pgx.Rows) ([]models.Vehicle, error) {
	defer rows.Close()

	vehicles := []models.Vehicle{}
	for rows.Next() {
		var vehicle models.Vehicle
		if err := rows.Scan(&vehicle.ID, &vehicle.Name, &vehicle.Model, &vehicle.LineID); err != nil {
			return nil, fmt.Errorf("failed to scan vehicle: %w", err)
		}
		vehicles = append(vehicles, vehicle)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read row: %w", err)
	}

	return vehicles, nil
}
