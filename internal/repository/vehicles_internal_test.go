package repository

import (
	"regexp"
	"testing"

	"github.com/UnknownOlympus/olhovivo/internal/models"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var vehicleColumns = []string{"id", "name", "model", "line_id"}

func TestListVehicles(t *testing.T) {
	t.Parallel()
	ctx := t.Context()
	lineID := int64(2)

	t.Run("error - scan vehicle", func(t *testing.T) {
		t.Parallel()
		mock, repo := newMockRepo(t)

		mock.ExpectQuery(regexp.QuoteMeta(listVehiclesQuery)).
			WillReturnRows(pgxmock.NewRows(vehicleColumns).AddRow("bad", "Ônibus 1", "Marcopolo", nil))

		vehicles, err := repo.ListVehicles(ctx)

		require.Nil(t, vehicles)
		require.ErrorContains(t, err, "failed to scan vehicle")
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("success - assigned and unassigned vehicles", func(t *testing.T) {
		t.Parallel()
		mock, repo := newMockRepo(t)

		mock.ExpectQuery(regexp.QuoteMeta(listVehiclesQuery)).
			WillReturnRows(
				pgxmock.NewRows(vehicleColumns).
					AddRow(int64(1), "Ônibus 1", "Marcopolo", &lineID).
					AddRow(int64(2), "Ônibus 2", "Caio", nil),
			)

		vehicles, err := repo.ListVehicles(ctx)

		require.NoError(t, err)
		require.Len(t, vehicles, 2)
		require.NotNil(t, vehicles[0].LineID)
		assert.Equal(t, lineID, *vehicles[0].LineID)
		assert.Nil(t, vehicles[1].LineID)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestGetVehicle(t *testing.T) {
	t.Parallel()
	mock, repo := newMockRepo(t)

	mock.ExpectQuery(regexp.QuoteMeta(getVehicleQuery)).WithArgs(int64(3)).
		WillReturnRows(pgxmock.NewRows(vehicleColumns))

	_, err := repo.GetVehicle(t.Context(), 3)

	require.ErrorIs(t, err, ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateVehicle(t *testing.T) {
	t.Parallel()
	ctx := t.Context()
	lineID := int64(77)

	t.Run("error - unknown line", func(t *testing.T) {
		t.Parallel()
		mock, repo := newMockRepo(t)

		mock.ExpectQuery(regexp.QuoteMeta(createVehicleQuery)).
			WithArgs("Ônibus 1", "Marcopolo", pgxmock.AnyArg()).
			WillReturnError(&pgconn.PgError{Code: foreignKeyViolation})

		_, err := repo.CreateVehicle(ctx, models.Vehicle{Name: "Ônibus 1", Model: "Marcopolo", LineID: &lineID})

		require.ErrorIs(t, err, ErrInvalidReference)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("success - id assigned", func(t *testing.T) {
		t.Parallel()
		mock, repo := newMockRepo(t)

		mock.ExpectQuery(regexp.QuoteMeta(createVehicleQuery)).
			WithArgs("Ônibus 1", "Marcopolo", pgxmock.AnyArg()).
			WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(int64(5)))

		vehicle, err := repo.CreateVehicle(ctx, models.Vehicle{Name: "Ônibus 1", Model: "Marcopolo"})

		require.NoError(t, err)
		assert.Equal(t, int64(5), vehicle.ID)
		assert.Nil(t, vehicle.LineID)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestUpdateVehicle(t *testing.T) {
	t.Parallel()
	mock, repo := newMockRepo(t)
	input := models.Vehicle{ID: 5, Name: "Ônibus 1", Model: "Caio"}

	mock.ExpectExec(regexp.QuoteMeta(updateVehicleQuery)).
		WithArgs(input.Name, input.Model, pgxmock.AnyArg(), input.ID).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))

	vehicle, err := repo.UpdateVehicle(t.Context(), input)

	require.NoError(t, err)
	assert.Equal(t, input, vehicle)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteVehicle(t *testing.T) {
	t.Parallel()
	mock, repo := newMockRepo(t)

	mock.ExpectExec(regexp.QuoteMeta(deleteVehicleQuery)).WithArgs(int64(5)).
		WillReturnResult(pgxmock.NewResult("DELETE", 0))

	require.ErrorIs(t, repo.DeleteVehicle(t.Context(), 5), ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPositions(t *testing.T) {
	t.Parallel()
	ctx := t.Context()
	columns := []string{"id", "vehicle_id", "latitude", "longitude"}
	pos := models.VehiclePosition{VehicleID: 5, Latitude: -21.76, Longitude: -43.35}

	t.Run("success - list positions", func(t *testing.T) {
		t.Parallel()
		mock, repo := newMockRepo(t)

		mock.ExpectQuery(regexp.QuoteMeta(listPositionsQuery)).
			WillReturnRows(pgxmock.NewRows(columns).AddRow(int64(1), int64(5), -21.76, -43.35))

		positions, err := repo.ListPositions(ctx)

		require.NoError(t, err)
		assert.Equal(t, []models.VehiclePosition{{ID: 1, VehicleID: 5, Latitude: -21.76, Longitude: -43.35}}, positions)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("error - get missing position", func(t *testing.T) {
		t.Parallel()
		mock, repo := newMockRepo(t)

		mock.ExpectQuery(regexp.QuoteMeta(getPositionQuery)).WithArgs(int64(1)).
			WillReturnRows(pgxmock.NewRows(columns))

		_, err := repo.GetPosition(ctx, 1)

		require.ErrorIs(t, err, ErrNotFound)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("error - create for unknown vehicle", func(t *testing.T) {
		t.Parallel()
		mock, repo := newMockRepo(t)

		mock.ExpectQuery(regexp.QuoteMeta(createPositionQuery)).
			WithArgs(pos.VehicleID, pos.Latitude, pos.Longitude).
			WillReturnError(&pgconn.PgError{Code: foreignKeyViolation})

		_, err := repo.CreatePosition(ctx, pos)

		require.ErrorIs(t, err, ErrInvalidReference)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("success - create position", func(t *testing.T) {
		t.Parallel()
		mock, repo := newMockRepo(t)

		mock.ExpectQuery(regexp.QuoteMeta(createPositionQuery)).
			WithArgs(pos.VehicleID, pos.Latitude, pos.Longitude).
			WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(int64(11)))

		created, err := repo.CreatePosition(ctx, pos)

		require.NoError(t, err)
		assert.Equal(t, int64(11), created.ID)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("success - update position", func(t *testing.T) {
		t.Parallel()
		mock, repo := newMockRepo(t)
		input := pos
		input.ID = 11

		mock.ExpectExec(regexp.QuoteMeta(updatePositionQuery)).
			WithArgs(input.VehicleID, input.Latitude, input.Longitude, input.ID).
			WillReturnResult(pgxmock.NewResult("UPDATE", 1))

		updated, err := repo.UpdatePosition(ctx, input)

		require.NoError(t, err)
		assert.Equal(t, input, updated)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("success - delete position", func(t *testing.T) {
		t.Parallel()
		mock, repo := newMockRepo(t)

		mock.ExpectExec(regexp.QuoteMeta(deletePositionQuery)).WithArgs(int64(11)).
			WillReturnResult(pgxmock.NewResult("DELETE", 1))

		require.NoError(t, repo.DeletePosition(ctx, 11))
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
