package repository

import (
	"context"
	"log/slog"

	"github.com/UnknownOlympus/olhovivo/internal/models"
)

type Repository struct {
	db  Database
	log *slog.Logger
}

// Interface lists every storage operation the transit service relies on.
type Interface interface {
	ListStops(ctx context.Context) ([]models.Stop, error)
	GetStop(ctx context.Context, id int64) (models.Stop, error)
	CreateStop(ctx context.Context, stop models.Stop) (models.Stop, error)
	UpdateStop(ctx context.Context, stop models.Stop) (models.Stop, error)
	DeleteStop(ctx context.Context, id int64) error
	ListLinesForStop(ctx context.Context, stopID int64) ([]models.Line, error)

	ListLines(ctx context.Context) ([]models.Line, error)
	GetLine(ctx context.Context, id int64) (models.Line, error)
	CreateLine(ctx context.Context, line models.Line) (models.Line, error)
	UpdateLine(ctx context.Context, line models.Line) (models.Line, error)
	DeleteLine(ctx context.Context, id int64) error
	ListVehiclesForLine(ctx context.Context, lineID int64) ([]models.Vehicle, error)

	ListVehicles(ctx context.Context) ([]models.Vehicle, error)
	GetVehicle(ctx context.Context, id int64) (models.Vehicle, error)
	CreateVehicle(ctx context.Context, vehicle models.Vehicle) (models.Vehicle, error)
	UpdateVehicle(ctx context.Context, vehicle models.Vehicle) (models.Vehicle, error)
	DeleteVehicle(ctx context.Context, id int64) error

	ListPositions(ctx context.Context) ([]models.VehiclePosition, error)
	GetPosition(ctx context.Context, id int64) (models.VehiclePosition, error)
	CreatePosition(ctx context.Context, position models.VehiclePosition) (models.VehiclePosition, error)
	UpdatePosition(ctx context.Context, position models.VehiclePosition) (models.VehiclePosition, error)
	DeletePosition(ctx context.Context, id int64) error
}

// NewRepository creates a new instance of Repository with the provided Database.
// It returns a pointer to the newly created Repository.
func NewRepository(db Database, log *slog.Logger) *Repository {
	return &Repository{db: db, log: log}
}
