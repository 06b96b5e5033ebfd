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

func TestListLines(t *testing.T) {
	t.Parallel()
	ctx := t.Context()

	t.Run("error - query lines", func(t *testing.T) {
		t.Parallel()
		mock, repo := newMockRepo(t)

		mock.ExpectQuery(regexp.QuoteMeta(listLinesQuery)).WillReturnError(assert.AnError)

		lines, err := repo.ListLines(ctx)

		require.Nil(t, lines)
		require.ErrorIs(t, err, assert.AnError)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("success - stops grouped per line in order", func(t *testing.T) {
		t.Parallel()
		mock, repo := newMockRepo(t)

		mock.ExpectQuery(regexp.QuoteMeta(listLinesQuery)).
			WillReturnRows(
				pgxmock.NewRows([]string{"id", "name"}).
					AddRow(int64(1), "Centro").
					AddRow(int64(2), "Bairro").
					AddRow(int64(3), "Vazia"),
			)
		mock.ExpectQuery(regexp.QuoteMeta(lineStopsQuery)).WithArgs([]int64{1, 2, 3}).
			WillReturnRows(
				pgxmock.NewRows([]string{"line_id", "stop_id"}).
					AddRow(int64(1), int64(3)).
					AddRow(int64(1), int64(1)).
					AddRow(int64(2), int64(2)),
			)

		lines, err := repo.ListLines(ctx)

		require.NoError(t, err)
		assert.Equal(t, []models.Line{
			{ID: 1, Name: "Centro", StopIDs: []int64{3, 1}},
			{ID: 2, Name: "Bairro", StopIDs: []int64{2}},
			{ID: 3, Name: "Vazia", StopIDs: []int64{}},
		}, lines)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("success - no lines skips stop lookup", func(t *testing.T) {
		t.Parallel()
		mock, repo := newMockRepo(t)

		mock.ExpectQuery(regexp.QuoteMeta(listLinesQuery)).WillReturnRows(pgxmock.NewRows([]string{"id", "name"}))

		lines, err := repo.ListLines(ctx)

		require.NoError(t, err)
		assert.Empty(t, lines)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestGetLine(t *testing.T) {
	t.Parallel()
	ctx := t.Context()

	t.Run("error - not found", func(t *testing.T) {
		t.Parallel()
		mock, repo := newMockRepo(t)

		mock.ExpectQuery(regexp.QuoteMeta(getLineQuery)).WithArgs(int64(9)).
			WillReturnRows(pgxmock.NewRows([]string{"id", "name"}))

		_, err := repo.GetLine(ctx, 9)

		require.ErrorIs(t, err, ErrNotFound)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("success - get line", func(t *testing.T) {
		t.Parallel()
		mock, repo := newMockRepo(t)

		mock.ExpectQuery(regexp.QuoteMeta(getLineQuery)).WithArgs(int64(9)).
			WillReturnRows(pgxmock.NewRows([]string{"id", "name"}).AddRow(int64(9), "Centro"))
		mock.ExpectQuery(regexp.QuoteMeta(lineStopsQuery)).WithArgs([]int64{9}).
			WillReturnRows(pgxmock.NewRows([]string{"line_id", "stop_id"}).AddRow(int64(9), int64(4)))

		line, err := repo.GetLine(ctx, 9)

		require.NoError(t, err)
		assert.Equal(t, models.Line{ID: 9, Name: "Centro", StopIDs: []int64{4}}, line)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestCreateLine(t *testing.T) {
	t.Parallel()
	ctx := t.Context()

	t.Run("error - begin fails", func(t *testing.T) {
		t.Parallel()
		mock, repo := newMockRepo(t)

		mock.ExpectBegin().WillReturnError(assert.AnError)

		_, err := repo.CreateLine(ctx, models.Line{Name: "Centro"})

		require.ErrorIs(t, err, assert.AnError)
		require.ErrorContains(t, err, "failed to begin transaction")
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("error - unknown stop rolls back", func(t *testing.T) {
		t.Parallel()
		mock, repo := newMockRepo(t)

		mock.ExpectBegin()
		mock.ExpectQuery(regexp.QuoteMeta(createLineQuery)).WithArgs("Centro").
			WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(int64(1)))
		mock.ExpectExec(regexp.QuoteMeta(insertLineStopQuery)).WithArgs(int64(1), int64(99), 0).
			WillReturnError(&pgconn.PgError{Code: foreignKeyViolation})
		mock.ExpectRollback()

		_, err := repo.CreateLine(ctx, models.Line{Name: "Centro", StopIDs: []int64{99}})

		require.ErrorIs(t, err, ErrInvalidReference)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("success - duplicated stops stored once", func(t *testing.T) {
		t.Parallel()
		mock, repo := newMockRepo(t)

		mock.ExpectBegin()
		mock.ExpectQuery(regexp.QuoteMeta(createLineQuery)).WithArgs("Centro").
			WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(int64(1)))
		mock.ExpectExec(regexp.QuoteMeta(insertLineStopQuery)).WithArgs(int64(1), int64(2), 0).
			WillReturnResult(pgxmock.NewResult("INSERT", 1))
		mock.ExpectExec(regexp.QuoteMeta(insertLineStopQuery)).WithArgs(int64(1), int64(3), 1).
			WillReturnResult(pgxmock.NewResult("INSERT", 1))
		mock.ExpectCommit()

		line, err := repo.CreateLine(ctx, models.Line{Name: "Centro", StopIDs: []int64{2, 3, 2}})

		require.NoError(t, err)
		assert.Equal(t, models.Line{ID: 1, Name: "Centro", StopIDs: []int64{2, 3}}, line)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("success - line without stops", func(t *testing.T) {
		t.Parallel()
		mock, repo := newMockRepo(t)

		mock.ExpectBegin()
		mock.ExpectQuery(regexp.QuoteMeta(createLineQuery)).WithArgs("Centro").
			WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(int64(1)))
		mock.ExpectCommit()

		line, err := repo.CreateLine(ctx, models.Line{Name: "Centro"})

		require.NoError(t, err)
		assert.Equal(t, []int64{}, line.StopIDs)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestUpdateLine(t *testing.T) {
	t.Parallel()
	ctx := t.Context()

	t.Run("error - not found rolls back", func(t *testing.T) {
		t.Parallel()
		mock, repo := newMockRepo(t)

		mock.ExpectBegin()
		mock.ExpectExec(regexp.QuoteMeta(updateLineQuery)).WithArgs("Centro", int64(4)).
			WillReturnResult(pgxmock.NewResult("UPDATE", 0))
		mock.ExpectRollback()

		_, err := repo.UpdateLine(ctx, models.Line{ID: 4, Name: "Centro"})

		require.ErrorIs(t, err, ErrNotFound)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("error - commit fails", func(t *testing.T) {
		t.Parallel()
		mock, repo := newMockRepo(t)

		mock.ExpectBegin()
		mock.ExpectExec(regexp.QuoteMeta(updateLineQuery)).WithArgs("Centro", int64(4)).
			WillReturnResult(pgxmock.NewResult("UPDATE", 1))
		mock.ExpectExec(regexp.QuoteMeta(clearLineStopsQuery)).WithArgs(int64(4)).
			WillReturnResult(pgxmock.NewResult("DELETE", 2))
		mock.ExpectCommit().WillReturnError(assert.AnError)

		_, err := repo.UpdateLine(ctx, models.Line{ID: 4, Name: "Centro"})

		require.ErrorIs(t, err, assert.AnError)
		require.ErrorContains(t, err, "failed to commit transaction")
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("success - stop set replaced", func(t *testing.T) {
		t.Parallel()
		mock, repo := newMockRepo(t)

		mock.ExpectBegin()
		mock.ExpectExec(regexp.QuoteMeta(updateLineQuery)).WithArgs("Centro", int64(4)).
			WillReturnResult(pgxmock.NewResult("UPDATE", 1))
		mock.ExpectExec(regexp.QuoteMeta(clearLineStopsQuery)).WithArgs(int64(4)).
			WillReturnResult(pgxmock.NewResult("DELETE", 2))
		mock.ExpectExec(regexp.QuoteMeta(insertLineStopQuery)).WithArgs(int64(4), int64(8), 0).
			WillReturnResult(pgxmock.NewResult("INSERT", 1))
		mock.ExpectCommit()

		line, err := repo.UpdateLine(ctx, models.Line{ID: 4, Name: "Centro", StopIDs: []int64{8}})

		require.NoError(t, err)
		assert.Equal(t, []int64{8}, line.StopIDs)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestDeleteLine(t *testing.T) {
	t.Parallel()
	mock, repo := newMockRepo(t)

	mock.ExpectExec(regexp.QuoteMeta(deleteLineQuery)).WithArgs(int64(4)).
		WillReturnResult(pgxmock.NewResult("DELETE", 1))
	mock.ExpectExec(regexp.QuoteMeta(deleteLineQuery)).WithArgs(int64(5)).
		WillReturnResult(pgxmock.NewResult("DELETE", 0))

	require.NoError(t, repo.DeleteLine(t.Context(), 4))
	require.ErrorIs(t, repo.DeleteLine(t.Context(), 5), ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListVehiclesForLine(t *testing.T) {
	t.Parallel()
	mock, repo := newMockRepo(t)
	lineID := int64(4)

	mock.ExpectQuery(regexp.QuoteMeta(vehiclesForLineQuery)).WithArgs(lineID).
		WillReturnRows(
			pgxmock.NewRows([]string{"id", "name", "model", "line_id"}).
				AddRow(int64(1), "Ônibus 1", "Marcopolo", &lineID),
		)

	vehicles, err := repo.ListVehiclesForLine(t.Context(), lineID)

	require.NoError(t, err)
	require.Len(t, vehicles, 1)
	assert.Equal(t, "Marcopolo", vehicles[0].Model)
	require.NotNil(t, vehicles[0].LineID)
	assert.Equal(t, lineID, *vehicles[0].LineID)
	assert.NoError(t, mock.ExpectationsWereMet())
}
