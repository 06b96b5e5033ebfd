package repository

import (
	"context"
	"fmt"

	"github.com/UnknownOlympus/olhovivo/internal/models"
	"github.com/jackc/pgx/v5"
)

const (
	listLinesQuery  = `SELECT id, name FROM lines ORDER BY id;`
	getLineQuery    = `SELECT id, name FROM lines WHERE id = $1;`
	createLineQuery = `INSERT INTO lines (name) VALUES ($1) RETURNING id;`
	updateLineQuery = `UPDATE lines SET name = $1 WHERE id = $2;`
	deleteLineQuery = `DELETE FROM lines WHERE id = $1;`

	lineStopsQuery = `
		SELECT line_id, stop_id
		FROM line_stops
		WHERE line_id = ANY($1)
		ORDER BY line_id, seq;
	`
	clearLineStopsQuery  = `DELETE FROM line_stops WHERE line_id = $1;`
	insertLineStopQuery  = `INSERT INTO line_stops (line_id, stop_id, seq) VALUES ($1, $2, $3);`
	vehiclesForLineQuery = `SELECT id, name, model, line_id FROM vehicles WHERE line_id = $1 ORDER BY id;`
)

// ListLines returns every line with its stops.
func (r *Repository) ListLines(ctx context.Context) ([]models.Line, error) {
	rows, err := r.db.Query(ctx, listLinesQuery)
	if err != nil {
		return nil, fmt.Errorf("failed to query lines: %w", err)
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

// GetLine returns the line with the given id or ErrNotFound.
func (r *Repository) GetLine(ctx context.Context, id int64) (models.Line, error) {
	var line models.Line
	if err := r.db.QueryRow(ctx, getLineQuery, id).Scan(&line.ID, &line.Name); err != nil {
		return models.Line{}, classify("get line", err)
	}

	lines := []models.Line{line}
	if err := r.attachStops(ctx, lines); err != nil {
		return models.Line{}, err
	}

	return lines[0], nil
}

// CreateLine inserts the line and its stop memberships in one transaction.
// A stop id that does not exist yields ErrInvalidReference.
func (r *Repository) CreateLine(ctx context.Context, line models.Line) (models.Line, error) {
	err := r.withTx(ctx, func(tx pgx.Tx) error {
		if err := tx.QueryRow(ctx, createLineQuery, line.Name).Scan(&line.ID); err != nil {
			return classify("create line", err)
		}
		return insertLineStops(ctx, tx, line)
	})
	if err != nil {
		return models.Line{}, err
	}

	line.StopIDs = dedupe(line.StopIDs)

	return line, nil
}

// UpdateLine renames the line and replaces its stop set.
func (r *Repository) UpdateLine(ctx context.Context, line models.Line) (models.Line, error) {
	err := r.withTx(ctx, func(tx pgx.Tx) error {
		tag, err := tx.Exec(ctx, updateLineQuery, line.Name, line.ID)
		if err != nil {
			return classify("update line", err)
		}
		if err = expectAffected(tag); err != nil {
			return err
		}
		if _, err = tx.Exec(ctx, clearLineStopsQuery, line.ID); err != nil {
			return classify("clear line stops", err)
		}
		return insertLineStops(ctx, tx, line)
	})
	if err != nil {
		return models.Line{}, err
	}

	line.StopIDs = dedupe(line.StopIDs)

	return line, nil
}

// DeleteLine removes the line. Vehicles serving it become unassigned.
func (r *Repository) DeleteLine(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, deleteLineQuery, id)
	if err != nil {
		return classify("delete line", err)
	}

	return expectAffected(tag)
}

// ListVehiclesForLine returns the vehicles assigned to the given line.
func (r *Repository) ListVehiclesForLine(ctx context.Context, lineID int64) ([]models.Vehicle, error) {
	rows, err := r.db.Query(ctx, vehiclesForLineQuery, lineID)
	if err != nil {
		return nil, fmt.Errorf("failed to query vehicles for line: %w", err)
	}

	return scanVehicles(rows)
}

func insertLineStops(ctx context.Context, tx pgx.Tx, line models.Line) error {
	for seq, stopID := range dedupe(line.StopIDs) {
		if _, err := tx.Exec(ctx, insertLineStopQuery, line.ID, stopID, seq); err != nil {
			return classify("add stop to line", err)
		}
	}
	return nil
}

func scanLines(rows pgx.Rows) ([]models.Line, error) {
	defer rows.Close()

	lines := []models.Line{}
	for rows.Next() {
		var line models.Line
		if err := rows.Scan(&line.ID, &line.Name); err != nil {
			return nil, fmt.Errorf("failed to scan line: %w", err)
		}
		lines = append(lines, line)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read row: %w", err)
	}

	return lines, nil
}

// attachStops fills StopIDs of every line with a single query.
func (r *Repository) attachStops(ctx context.Context, lines []models.Line) error {
	if len(lines) == 0 {
		return nil
	}

	ids := make([]int64, 0, len(lines))
	index := make(map[int64]int, len(lines))
	for i := range lines {
		lines[i].StopIDs = []int64{}
		ids = append(ids, lines[i].ID)
		index[lines[i].ID] = i
	}

	rows, err := r.db.Query(ctx, lineStopsQuery, ids)
	if err != nil {
		return fmt.Errorf("failed to query line stops: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var lineID, stopID int64
		if errScan := rows.Scan(&lineID, &stopID); errScan != nil {
			return fmt.Errorf("failed to scan line stop: %w", errScan)
		}
		if i, ok := index[lineID]; ok {
			lines[i].StopIDs = append(lines[i].StopIDs, stopID)
		}
	}

	if err = rows.Err(); err != nil {
		return fmt.Errorf("failed to read row: %w", err)
	}

	return nil
}

// dedupe drops repeated ids while keeping first-seen order.
func dedupe(ids []int64) []int64 {
	seen := make(map[int64]struct{}, len(ids))
	out := make([]int64, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}

