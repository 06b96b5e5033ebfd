package geocoding_test

import (
	"testing"
	"time"

	"github.com/UnknownOlympus/olhovivo/internal/geocoding"
	"github.com/UnknownOlympus/olhovivo/internal/metrics"
	"github.com/UnknownOlympus/olhovivo/internal/models"
	"github.com/UnknownOlympus/olhovivo/test/mocks"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCachedProvider(t *testing.T) {
	t.Parallel()

	coords := &models.Coordinates{Latitude: -21.7610, Longitude: -43.3475}

	t.Run("error - invalid size", func(t *testing.T) {
		t.Parallel()
		_, err := geocoding.NewCachedProvider(mocks.NewProvider(t), 0, time.Minute,
			metrics.NewMetrics(prometheus.NewRegistry()))

		require.ErrorContains(t, err, "failed to create geocoding cache")
	})

	t.Run("success - repeated lookups hit the cache", func(t *testing.T) {
		t.Parallel()
		next := mocks.NewProvider(t)
		m := metrics.NewMetrics(prometheus.NewRegistry())
		cache, err := geocoding.NewCachedProvider(next, 8, time.Hour, m)
		require.NoError(t, err)

		next.On("Geocode", mock.Anything, "Rua Halfeld, Juiz de Fora").Return(coords, nil).Once()

		first, err := cache.Geocode(t.Context(), "Rua Halfeld, Juiz de Fora")
		require.NoError(t, err)
		second, err := cache.Geocode(t.Context(), "  rua halfeld,   JUIZ DE FORA ")
		require.NoError(t, err)

		assert.Equal(t, coords, first)
		assert.Equal(t, coords, second)
		assert.Equal(t, 1, cache.Len())
		assert.InDelta(t, 1, testutil.ToFloat64(m.GeocodeCache.WithLabelValues("hit")), 0)
		assert.InDelta(t, 1, testutil.ToFloat64(m.GeocodeCache.WithLabelValues("miss")), 0)
	})

	t.Run("success - failures are not cached", func(t *testing.T) {
		t.Parallel()
		next := mocks.NewProvider(t)
		cache, err := geocoding.NewCachedProvider(next, 8, time.Hour, metrics.NewMetrics(prometheus.NewRegistry()))
		require.NoError(t, err)

		next.On("Geocode", mock.Anything, "Centro").Return(nil, assert.AnError).Once()
		next.On("Geocode", mock.Anything, "Centro").Return(coords, nil).Once()

		_, err = cache.Geocode(t.Context(), "Centro")
		require.ErrorIs(t, err, assert.AnError)
		assert.Zero(t, cache.Len())

		got, err := cache.Geocode(t.Context(), "Centro")
		require.NoError(t, err)
		assert.Equal(t, coords, got)
	})

	t.Run("success - expired entries are refreshed", func(t *testing.T) {
		t.Parallel()
		next := mocks.NewProvider(t)
		cache, err := geocoding.NewCachedProvider(next, 8, time.Nanosecond, metrics.NewMetrics(prometheus.NewRegistry()))
		require.NoError(t, err)

		next.On("Geocode", mock.Anything, "Centro").Return(coords, nil).Twice()

		_, err = cache.Geocode(t.Context(), "Centro")
		require.NoError(t, err)
		time.Sleep(time.Millisecond)
		_, err = cache.Geocode(t.Context(), "Centro")
		require.NoError(t, err)
	})

	t.Run("success - returned coordinates are copies", func(t *testing.T) {
		t.Parallel()
		next := mocks.NewProvider(t)
		cache, err := geocoding.NewCachedProvider(next, 8, time.Hour, metrics.NewMetrics(prometheus.NewRegistry()))
		require.NoError(t, err)

		next.On("Geocode", mock.Anything, "Centro").
			Return(&models.Coordinates{Latitude: 1, Longitude: 2}, nil).Once()

		first, err := cache.Geocode(t.Context(), "Centro")
		require.NoError(t, err)
		first.Latitude = 99

		second, err := cache.Geocode(t.Context(), "Centro")
		require.NoError(t, err)
		assert.InDelta(t, 1, second.Latitude, 0)
	})
}
