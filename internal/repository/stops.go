package repository

import (
	"context"
	"fmt"

	"github.com/UnknownOlympus/olhovivo/internal/models"
)

const (
	listStopsQuery  = `SELECT id, name, latitude, longitude FROM stops ORDER BY id;`
	getStopQuery    = `SELECT id, name, latitude, longitude FROM stops WHERE id = $1;`
	createStopQuery = `
		INSERT INTO stops (name, latitude, longitude)
		VALUES ($1, $2, $3)
		RETURNING id;
	`
	updateStopQuery = `
		UPDATE stops
		SET name = $1, latitude = $2, longitude = $3
		WHERE id = $4;
	`
	deleteStopQuery       = `DELETE FROM stops WHERE id = $1;`
	listLinesForStopQuery = `
		SELECT l.id, l.name
		FROM lines l
		JOIN line_stops ls ON ls.line_id = l.id
		WHERE ls.stop_id = $1
		ORDER BY l.id;
	`
)

// ListStops returns every stop ordered by id.
func (r *Repository) ListStops(ctx context.Context) ([]models.Stop, error) {
	rows, err := r.db.Query(ctx, listStopsQuery)
	if err != nil {
		return nil, fmt.Errorf("failed to query stops: %w", err)
	}
	defer rows.Close()

	stops := []models.Stop{}
	for rows.Next() {
		var stop models.Stop
		if errScan := rows.Scan(&stop.ID, &stop.Name, &stop.Latitude, &stop.Longitude); errScan != nil {
			return nil, fmt.Errorf("failed to scan stop: %w", errScan)
		}
		stops = append(stops, stop)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read row: %w", err)
	}

	r.log.DebugContext(ctx, "Stops fetched", "count", len(stops))

	return stops, nil
}

// GetStop returns the stop with the given id or ErrNotFound.
func (r *Repository) GetStop(ctx context.Context, id int64) (models.Stop, error) {
	var stop models.Stop
	err := r.db.QueryRow(ctx, getStopQuery, id).Scan(&stop.ID, &stop.Name, &stop.Latitude, &stop.Longitude)
	if err != nil {
		return models.Stop{}, classify("get stop", err)
	}

	return stop, nil
}

// CreateStop inserts the stop and returns it with its assigned id.
func (r *Repository) CreateStop(ctx context.Context, stop models.Stop) (models.Stop, error) {
	err := r.db.QueryRow(ctx, createStopQuery, stop.Name, stop.Latitude, stop.Longitude).Scan(&stop.ID)
	if err != nil {
		return models.Stop{}, classify("create stop", err)
	}

	return stop, nil
}

// UpdateStop overwrites every field of an existing stop.
func (r *Repository) UpdateStop(ctx context.Context, stop models.Stop) (models.Stop, error) {
	tag, err := r.db.Exec(ctx, updateStopQuery, stop.Name, stop.Latitude, stop.Longitude, stop.ID)
	if err != nil {
		return models.Stop{}, classify("update stop", err)
	}

	if err = expectAffected(tag); err != nil {
		return models.Stop{}, err
	}

	return stop, nil
}

// DeleteStop removes the stop together with its line memberships.
func (r *Repository) DeleteStop(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, deleteStopQuery, id)
	if err != nil {
		return classify("delete stop", err)
	}

	return expectAffected(tag)
}

// ListLinesForStop returns the lines that visit the given stop.
func (r *Repository) ListLinesForStop(ctx context.Context, stopID int64) ([]models.Line, error) {
	rows, err := r.db.Query(ctx, listLinesForStopQuery, stopID)
	if err != nil {
		return nil, fmt.Errorf("failed to query lines for stop: %w", err)
	}

	lines, err := scanLines(rows)
	if err != nil {
		return nil, err
	}

	if err = r.attachStops(ctx, lines); err != nil {
		return nil, err
	}

	return lines, nil
}
