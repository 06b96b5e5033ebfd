// Package httpapi exposes the transit service as a JSON REST API.
package httpapi

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/UnknownOlympus/olhovivo/internal/metrics"
	"github.com/UnknownOlympus/olhovivo/internal/models"
	"github.com/julienschmidt/httprouter"
)

// Service is implemented by service.TransitService.
type Service interface {
	ListStops(ctx context.Context) ([]models.Stop, error)
	GetStop(ctx context.Context, id int64) (models.Stop, error)
	CreateStop(ctx context.Context, stop models.Stop) (models.Stop, error)
	UpdateStop(ctx context.Context, stop models.Stop) (models.Stop, error)
	DeleteStop(ctx context.Context, id int64) error
	LinesForStop(ctx context.Context, stopID int64) ([]models.Line, error)
	NearestStops(ctx context.Context, coords models.Coordinates) ([]models.RankedStop, error)
	NearestStopsToAddress(ctx context.Context, address string) ([]models.RankedStop, error)

	ListLines(ctx context.Context) ([]models.Line, error)
	GetLine(ctx context.Context, id int64) (models.Line, error)
	CreateLine(ctx context.Context, line models.Line) (models.Line, error)
	UpdateLine(ctx context.Context, line models.Line) (models.Line, error)
	DeleteLine(ctx context.Context, id int64) error
	VehiclesForLine(ctx context.Context, lineID int64) ([]models.Vehicle, error)

	ListVehicles(ctx context.Context) ([]models.Vehicle, error)
	GetVehicle(ctx context.Context, id int64) (models.Vehicle, error)
	CreateVehicle(ctx context.Context, vehicle models.Vehicle) (models.Vehicle, error)
	UpdateVehicle(ctx context.Context, vehicle models.Vehicle) (models.Vehicle, error)
	DeleteVehicle(ctx context.Context, id int64) error

	ListPositions(ctx context.Context) ([]models.VehiclePosition, error)
	GetPosition(ctx context.Context, id int64) (models.VehiclePosition, error)
	CreatePosition(ctx context.Context, pos models.VehiclePosition) (models.VehiclePosition, error)
	UpdatePosition(ctx context.Context, pos models.VehiclePosition) (models.VehiclePosition, error)
	DeletePosition(ctx context.Context, id int64) error
}

type RestAPI struct {
	service   Service
	log       *slog.Logger
	metrics   *metrics.Metrics
	rateLimit int
}

// NewRestAPI creates the API. rateLimit is the per-client requests per second,
// a negative value disables limiting.
func NewRestAPI(service Service, log *slog.Logger, m *metrics.Metrics, rateLimit int) *RestAPI {
	return &RestAPI{service: service, log: log, metrics: m, rateLimit: rateLimit}
}

// Handler returns the routed API wrapped in its middleware chain.
func (api *RestAPI) Handler() http.Handler {
	router := httprouter.New()
	router.NotFound = http.HandlerFunc(api.sendNotFound)
	router.MethodNotAllowed = http.HandlerFunc(api.methodNotAllowed)
	router.PanicHandler = api.recoverPanic

	api.handle(router, http.MethodGet, "/stops", api.listStopsHandler)
	api.handle(router, http.MethodPost, "/stops", api.createStopHandler)
	api.handle(router, http.MethodGet, "/stops/:id", api.getStopHandler)
	api.handle(router, http.MethodPut, "/stops/:id", api.updateStopHandler)
	api.handle(router, http.MethodDelete, "/stops/:id", api.deleteStopHandler)
	api.handle(router, http.MethodGet, "/stops/:id/lines", api.linesForStopHandler)
	api.handle(router, http.MethodGet, "/stops-nearby", api.stopsNearbyHandler)
	api.handle(router, http.MethodGet, "/stops-nearby/address", api.stopsNearAddressHandler)

	api.handle(router, http.MethodGet, "/lines", api.listLinesHandler)
	api.handle(router, http.MethodPost, "/lines", api.createLineHandler)
	api.handle(router, http.MethodGet, "/lines/:id", api.getLineHandler)
	api.handle(router, http.MethodPut, "/lines/:id", api.updateLineHandler)
	api.handle(router, http.MethodDelete, "/lines/:id", api.deleteLineHandler)
	api.handle(router, http.MethodGet, "/lines/:id/vehicles", api.vehiclesForLineHandler)

	api.handle(router, http.MethodGet, "/vehicles", api.listVehiclesHandler)
	api.handle(router, http.MethodPost, "/vehicles", api.createVehicleHandler)
	api.handle(router, http.MethodGet, "/vehicles/:id", api.getVehicleHandler)
	api.handle(router, http.MethodPut, "/vehicles/:id", api.updateVehicleHandler)
	api.handle(router, http.MethodDelete, "/vehicles/:id", api.deleteVehicleHandler)

	api.handle(router, http.MethodGet, "/positions", api.listPositionsHandler)
	api.handle(router, http.MethodPost, "/positions", api.createPositionHandler)
	api.handle(router, http.MethodGet, "/positions/:id", api.getPositionHandler)
	api.handle(router, http.MethodPut, "/positions/:id", api.updatePositionHandler)
	api.handle(router, http.MethodDelete, "/positions/:id", api.deletePositionHandler)

	var handler http.Handler = router
	handler = NewRateLimitMiddleware(api.rateLimit, api.metrics)(handler)
	handler = CompressionMiddleware(handler)
	handler = NewRequestLoggingMiddleware(api.log)(handler)
	handler = securityHeaders(handler)

	return handler
}

// handle registers fn and instruments it under its route pattern.
func (api *RestAPI) handle(router *httprouter.Router, method, path string, fn http.HandlerFunc) {
	router.Handler(method, path, api.instrument(path, fn))
}
