package importer

import (
	"context"
	"io"
	"log/slog"
	"slices"
	"strings"
	"testing"

	"github.com/UnknownOlympus/olhovivo/internal/models"
	"github.com/UnknownOlympus/olhovivo/test/mocks"
	"github.com/jamespfennell/gtfs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func ptr(f float64) *float64 { return &f }

func sampleFeed() *gtfs.Static {
	catedral := gtfs.Stop{Id: "S1", Name: "Catedral", Latitude: ptr(-21.764055), Longitude: ptr(-43.348963)}
	rioBranco := gtfs.Stop{Id: "S2", Name: "Rio Branco", Latitude: ptr(-21.765289), Longitude: ptr(-43.348638)}
	stella := gtfs.Stop{Id: "S3", Name: " ", Code: "STL", Latitude: ptr(-21.765500), Longitude: ptr(-43.347676)}
	station := gtfs.Stop{Id: "P1", Name: "Terminal sem coordenadas"}

	route500 := gtfs.Route{Id: "R500", ShortName: "500", LongName: "Centro - Benfica"}
	route101 := gtfs.Route{Id: "R101", LongName: "Circular"}

	return &gtfs.Static{
		Stops:  []gtfs.Stop{catedral, rioBranco, stella, station},
		Routes: []gtfs.Route{route500, route101},
		Trips: []gtfs.ScheduledTrip{
			{
				ID:    "T1",
				Route: &route500,
				StopTimes: []gtfs.ScheduledStopTime{
					{Stop: &rioBranco, StopSequence: 2},
					{Stop: &catedral, StopSequence: 1},
				},
			},
			{
				ID:    "T2",
				Route: &route500,
				StopTimes: []gtfs.ScheduledStopTime{
					{Stop: &catedral, StopSequence: 1},
					{Stop: &stella, StopSequence: 2},
					{Stop: &station, StopSequence: 3},
				},
			},
			{ID: "T3"},
		},
	}
}

func TestConvertStops(t *testing.T) {
	t.Parallel()

	stops, skipped := convertStops(sampleFeed())

	assert.Equal(t, 1, skipped)
	require.Len(t, stops, 3)
	assert.Equal(t, "S1", stops[0].feedID)
	assert.Equal(t, models.Stop{Name: "Catedral", Latitude: -21.764055, Longitude: -43.348963}, stops[0].stop)
	assert.Equal(t, "STL", stops[2].stop.Name)
}

func TestConvertLines(t *testing.T) {
	t.Parallel()

	lines := convertLines(sampleFeed())

	require.Len(t, lines, 2)
	assert.Equal(t, feedLine{feedID: "R500", name: "500 - Centro - Benfica", stopIDs: []string{"S1", "S2", "S3", "P1"}}, lines[0])
	assert.Equal(t, "Circular", lines[1].name)
	assert.Empty(t, lines[1].stopIDs)
}

func TestTruncate(t *testing.T) {
	t.Parallel()

	long := strings.Repeat("á", maxNameLength+10)

	assert.Equal(t, maxNameLength, len([]rune(truncate(long))))
	assert.Equal(t, "Catedral", truncate("Catedral"))
}

func TestImport(t *testing.T) {
	t.Parallel()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	ids := map[string]int64{"Catedral": 10, "Rio Branco": 20, "STL": 30}

	t.Run("success - stops then lines", func(t *testing.T) {
		t.Parallel()
		store := mocks.NewStore(t)
		store.On("CreateStop", mock.Anything, mock.Anything).
			Return(func(_ context.Context, s models.Stop) (models.Stop, error) {
				s.ID = ids[s.Name]
				return s, nil
			}).Times(3)
		store.On("CreateLine", mock.Anything, models.Line{Name: "500 - Centro - Benfica", StopIDs: []int64{10, 20, 30}}).
			Return(models.Line{ID: 1}, nil).Once()
		store.On("CreateLine", mock.Anything, models.Line{Name: "Circular", StopIDs: []int64{}}).
			Return(models.Line{ID: 2}, nil).Once()

		summary, err := New(store, logger, 4).Import(t.Context(), sampleFeed())

		require.NoError(t, err)
		assert.Equal(t, Summary{Stops: 3, SkippedStops: 1, Lines: 2}, summary)
	})

	t.Run("error - rejected records are counted", func(t *testing.T) {
		t.Parallel()
		store := mocks.NewStore(t)
		store.On("CreateStop", mock.Anything, mock.MatchedBy(func(s models.Stop) bool { return s.Name == "Rio Branco" })).
			Return(models.Stop{}, assert.AnError).Once()
		store.On("CreateStop", mock.Anything, mock.Anything).
			Return(func(_ context.Context, s models.Stop) (models.Stop, error) {
				s.ID = ids[s.Name]
				return s, nil
			}).Twice()
		store.On("CreateLine", mock.Anything, mock.MatchedBy(func(l models.Line) bool {
			return slices.Equal(l.StopIDs, []int64{10, 30})
		})).Return(models.Line{}, assert.AnError).Once()
		store.On("CreateLine", mock.Anything, mock.Anything).Return(models.Line{ID: 2}, nil).Once()

		summary, err := New(store, logger, 1).Import(t.Context(), sampleFeed())

		require.NoError(t, err)
		assert.Equal(t, Summary{Stops: 2, SkippedStops: 1, Lines: 1, Failed: 2}, summary)
	})

	t.Run("error - cancelled context", func(t *testing.T) {
		t.Parallel()
		store := mocks.NewStore(t)
		ctx, cancel := context.WithCancel(t.Context())
		cancel()

		summary, err := New(store, logger, 0).Import(ctx, sampleFeed())

		require.ErrorIs(t, err, context.Canceled)
		assert.Zero(t, summary.Stops)
		store.AssertNotCalled(t, "CreateStop", mock.Anything, mock.Anything)
	})
}

func TestParse(t *testing.T) {
	t.Parallel()

	_, err := Parse([]byte("not a zip archive"))

	require.ErrorContains(t, err, "failed to parse GTFS feed")
}
