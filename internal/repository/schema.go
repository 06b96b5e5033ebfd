package repository

import (
	"context"
	"fmt"
)

const schema = `
	CREATE TABLE IF NOT EXISTS stops (
		id        BIGSERIAL PRIMARY KEY,
		name      VARCHAR(200) NOT NULL,
		latitude  DOUBLE PRECISION NOT NULL,
		longitude DOUBLE PRECISION NOT NULL
	);

	CREATE TABLE IF NOT EXISTS lines (
		id   BIGSERIAL PRIMARY KEY,
		name VARCHAR(200) NOT NULL
	);

	CREATE TABLE IF NOT EXISTS line_stops (
		line_id BIGINT NOT NULL REFERENCES lines (id) ON DELETE CASCADE,
		stop_id BIGINT NOT NULL REFERENCES stops (id) ON DELETE CASCADE,
		seq     INTEGER NOT NULL,
		PRIMARY KEY (line_id, stop_id)
	);

	CREATE TABLE IF NOT EXISTS vehicles (
		id      BIGSERIAL PRIMARY KEY,
		name    VARCHAR(200) NOT NULL,
		model   VARCHAR(200) NOT NULL,
		line_id BIGINT REFERENCES lines (id) ON DELETE SET NULL
	);

	CREATE TABLE IF NOT EXISTS vehicle_positions (
		id         BIGSERIAL PRIMARY KEY,
		vehicle_id BIGINT NOT NULL REFERENCES vehicles (id) ON DELETE CASCADE,
		latitude   DOUBLE PRECISION NOT NULL,
		longitude  DOUBLE PRECISION NOT NULL
	);

	CREATE INDEX IF NOT EXISTS line_stops_stop_id_idx ON line_stops (stop_id);
	CREATE INDEX IF NOT EXISTS vehicles_line_id_idx ON vehicles (line_id);
	CREATE INDEX IF NOT EXISTS vehicle_positions_vehicle_id_idx ON vehicle_positions (vehicle_id);
`

// Migrate creates the tables when they do not exist yet. It is safe to run on every start.
func (r *Repository) Migrate(ctx context.Context) error {
	if _, err := r.db.Exec(ctx, schema); err != nil {
		return fmt.Errorf("failed to migrate schema: %w", err)
	}

	r.log.InfoContext(ctx, "Database schema is up to date")

	return nil
}
