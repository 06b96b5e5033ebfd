package httpapi

import (
	"log/slog"
	"net"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/UnknownOlympus/olhovivo/internal/logging"
	"github.com/UnknownOlympus/olhovivo/internal/metrics"
	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/klauspost/compress/gzhttp"
	"golang.org/x/time/rate"
)

// responseWriter wraps http.ResponseWriter to capture status code.
type responseWriter struct {
	http.ResponseWriter
	statusCode int
}

func (rw *responseWriter) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}

func (rw *responseWriter) Unwrap() http.ResponseWriter {
	return rw.ResponseWriter
}

// NewRequestLoggingMiddleware logs every request and stores logger in the request context.
func NewRequestLoggingMiddleware(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()

			r = r.WithContext(logging.WithLogger(r.Context(), logger))
			wrapped := &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}

			next.ServeHTTP(wrapped, r)

			logging.LogHTTPRequest(r.Context(), logger,
				r.Method,
				r.URL.Path,
				wrapped.statusCode,
				float64(time.Since(start).Nanoseconds())/1e6,
				slog.String("user_agent", r.Header.Get("User-Agent")),
				slog.String("component", "http_server"))
		})
	}
}

// instrument records request count and latency labelled by route pattern.
func (api *RestAPI) instrument(route string, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		wrapped := &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}

		next.ServeHTTP(wrapped, r)

		api.metrics.HTTPDuration.WithLabelValues(route, r.Method).Observe(time.Since(start).Seconds())
		api.metrics.HTTPRequests.WithLabelValues(route, r.Method, strconv.Itoa(wrapped.statusCode)).Inc()
	})
}

// CompressionMiddleware gzips responses of at least 1KB for clients that accept it.
func CompressionMiddleware(next http.Handler) http.Handler {
	const minSize, level = 1024, 6

	wrapper, err := gzhttp.NewWrapper(gzhttp.MinSize(minSize), gzhttp.CompressionLevel(level))
	if err != nil {
		return gzhttp.GzipHandler(next)
	}

	return wrapper(next)
}

// securityHeaders adds security headers to all HTTP responses.
func securityHeaders(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-Content-Type-Options", "nosniff")
		w.Header().Set("X-Frame-Options", "DENY")
		w.Header().Set("Referrer-Policy", "strict-origin-when-cross-origin")
		w.Header().Set("Content-Security-Policy", "default-src 'none'; frame-ancestors 'none';")

		if r.Header.Get("Origin") != "" {
			w.Header().Set("Access-Control-Allow-Origin", "*")
			w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
			w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
			w.Header().Set("Access-Control-Max-Age", "86400")
		}

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}

		next.ServeHTTP(w, r)
	})
}

const maxTrackedClients = 10000

// RateLimitMiddleware keeps one token bucket per client address.
type RateLimitMiddleware struct {
	limiters *lru.Cache[string, *rate.Limiter]
	limit    rate.Limit
	burst    int
	metrics  *metrics.Metrics
}

// NewRateLimitMiddleware allows ratePerSecond requests per second per client, with an
// equal burst. A negative rate disables limiting and zero rejects everything.
func NewRateLimitMiddleware(ratePerSecond int, m *metrics.Metrics) func(http.Handler) http.Handler {
	if ratePerSecond < 0 {
		return func(next http.Handler) http.Handler { return next }
	}

	// Least recently seen clients are evicted once the table is full.
	limiters, _ := lru.New[string, *rate.Limiter](maxTrackedClients)

	rl := &RateLimitMiddleware{
		limiters: limiters,
		limit:    rate.Limit(ratePerSecond),
		burst:    ratePerSecond,
		metrics:  m,
	}

	return rl.handler
}

func (rl *RateLimitMiddleware) limiter(client string) *rate.Limiter {
	if limiter, ok := rl.limiters.Get(client); ok {
		return limiter
	}

	limiter := rate.NewLimiter(rl.limit, rl.burst)
	if previous, ok, _ := rl.limiters.PeekOrAdd(client, limiter); ok {
		return previous
	}

	return limiter
}

func (rl *RateLimitMiddleware) handler(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !rl.limiter(clientKey(r)).Allow() {
			rl.metrics.RateLimited.Inc()

			retryAfter := 1
			if rl.limit == 0 {
				retryAfter = int(time.Hour.Seconds())
			}
			w.Header().Set("Content-Type", "application/json")
			w.Header().Set("Retry-After", strconv.Itoa(retryAfter))
			w.Header().Set("X-RateLimit-Limit", strconv.Itoa(rl.burst))
			w.Header().Set("X-RateLimit-Remaining", "0")
			w.WriteHeader(http.StatusTooManyRequests)
			_, _ = w.Write([]byte(`{"code":429,"text":"Rate limit exceeded. Please try again later."}` + "\n"))
			return
		}

		next.ServeHTTP(w, r)
	})
}

// clientKey identifies the caller by the first forwarded address or the peer address.
func clientKey(r *http.Request) string {
	if forwarded := r.Header.Get("X-Forwarded-For"); forwarded != "" {
		first, _, _ := strings.Cut(forwarded, ",")
		return strings.TrimSpace(first)
	}

	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
