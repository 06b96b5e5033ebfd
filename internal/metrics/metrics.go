package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type Metrics struct {
	HTTPRequests     *prometheus.CounterVec
	HTTPDuration     *prometheus.HistogramVec
	RateLimited      prometheus.Counter
	RankedStops      prometheus.Histogram
	RankingSeconds   prometheus.Histogram
	GeocodeRequests  *prometheus.CounterVec
	GeocodeSeconds   *prometheus.HistogramVec
	GeocodeCache     *prometheus.CounterVec
	PositionsPublish *prometheus.CounterVec
	PublishSeconds   prometheus.Histogram
	BrokerConnected  prometheus.Gauge
}

func NewMetrics(reg prometheus.Registerer) *Metrics {
	return &Metrics{
		HTTPRequests: promauto.With(reg).NewCounterVec(prometheus.CounterOpts{
			Name: "olhovivo_http_requests_total",
			Help: "Total number of handled HTTP requests.",
		}, []string{"route", "method", "status"}),
		HTTPDuration: promauto.With(reg).NewHistogramVec(prometheus.HistogramOpts{
			Name:    "olhovivo_http_request_duration_seconds",
			Help:    "Duration of HTTP requests.",
			Buckets: prometheus.DefBuckets,
		}, []string{"route", "method"}),
		RateLimited: promauto.With(reg).NewCounter(prometheus.CounterOpts{
			Name: "olhovivo_http_rate_limited_total",
			Help: "Total number of requests rejected by the rate limiter.",
		}),
		RankedStops: promauto.With(reg).NewHistogram(prometheus.HistogramOpts{
			Name:    "olhovivo_nearest_stops_ranked",
			Help:    "Number of stops ranked per nearest-stops query.",
			Buckets: prometheus.ExponentialBuckets(1, 4, 8),
		}),
		RankingSeconds: promauto.With(reg).NewHistogram(prometheus.HistogramOpts{
			Name:    "olhovivo_nearest_stops_ranking_duration_seconds",
			Help:    "Time spent computing and sorting stop distances.",
			Buckets: prometheus.ExponentialBuckets(0.00001, 4, 8),
		}),
		GeocodeRequests: promauto.With(reg).NewCounterVec(prometheus.CounterOpts{
			Name: "olhovivo_geocoding_requests_total",
			Help: "Total number of address lookups by outcome.",
		}, []string{"provider", "status"}),
		GeocodeSeconds: promauto.With(reg).NewHistogramVec(prometheus.HistogramOpts{
			Name:    "olhovivo_geocoding_request_duration_seconds",
			Help:    "Duration of requests to the geocoding provider.",
			Buckets: prometheus.DefBuckets,
		}, []string{"provider"}),
		GeocodeCache: promauto.With(reg).NewCounterVec(prometheus.CounterOpts{
			Name: "olhovivo_geocoding_cache_lookups_total",
			Help: "Geocoding cache lookups by result.",
		}, []string{"result"}),
		PositionsPublish: promauto.With(reg).NewCounterVec(prometheus.CounterOpts{
			Name: "olhovivo_positions_published_total",
			Help: "Vehicle position events sent to the message broker.",
		}, []string{"status"}),
		PublishSeconds: promauto.With(reg).NewHistogram(prometheus.HistogramOpts{
			Name:    "olhovivo_position_publish_duration_seconds",
			Help:    "Duration of vehicle position publishes.",
			Buckets: prometheus.DefBuckets,
		}),
		BrokerConnected: promauto.With(reg).NewGauge(prometheus.GaugeOpts{
			Name: "olhovivo_broker_connected",
			Help: "Whether the message broker connection is up (1) or down (0).",
		}),
	}
}
