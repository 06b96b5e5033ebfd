package httpapi

import (
	"net/http"
	"strings"

	"github.com/UnknownOlympus/olhovivo/internal/models"
)

func decodeStop(w http.ResponseWriter, r *http.Request) (models.Stop, fieldErrors, error) {
	p, err := decodePayload(w, r)
	if err != nil {
		return models.Stop{}, nil, err
	}

	errs := fieldErrors{}
	stop := models.Stop{
		Name:      p.name("name", errs),
		Latitude:  p.float("latitude", errs),
		Longitude: p.float("longitude", errs),
	}

	return stop, errs, nil
}

func (api *RestAPI) listStopsHandler(w http.ResponseWriter, r *http.Request) {
	stops, err := api.service.ListStops(r.Context())
	if err != nil {
		api.serviceErrorResponse(w, r, err, "")
		return
	}

	api.sendResponse(w, r, http.StatusOK, mapSlice(stops, newStopResponse))
}

func (api *RestAPI) createStopHandler(w http.ResponseWriter, r *http.Request) {
	stop, errs, err := decodeStop(w, r)
	if err != nil {
		api.errorResponse(w, r, http.StatusBadRequest, err.Error())
		return
	}
	if len(errs) > 0 {
		api.validationErrorResponse(w, r, errs)
		return
	}

	created, err := api.service.CreateStop(r.Context(), stop)
	if err != nil {
		api.serviceErrorResponse(w, r, err, "")
		return
	}

	api.sendResponse(w, r, http.StatusCreated, newStopResponse(created))
}

func (api *RestAPI) getStopHandler(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		api.sendNotFound(w, r)
		return
	}

	stop, err := api.service.GetStop(r.Context(), id)
	if err != nil {
		api.serviceErrorResponse(w, r, err, "")
		return
	}

	api.sendResponse(w, r, http.StatusOK, newStopResponse(stop))
}

func (api *RestAPI) updateStopHandler(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		api.sendNotFound(w, r)
		return
	}

	stop, errs, err := decodeStop(w, r)
	if err != nil {
		api.errorResponse(w, r, http.StatusBadRequest, err.Error())
		return
	}
	if len(errs) > 0 {
		api.validationErrorResponse(w, r, errs)
		return
	}
	stop.ID = id

	updated, err := api.service.UpdateStop(r.Context(), stop)
	if err != nil {
		api.serviceErrorResponse(w, r, err, "")
		return
	}

	api.sendResponse(w, r, http.StatusOK, newStopResponse(updated))
}

func (api *RestAPI) deleteStopHandler(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		api.sendNotFound(w, r)
		return
	}

	if err := api.service.DeleteStop(r.Context(), id); err != nil {
		api.serviceErrorResponse(w, r, err, "")
		return
	}

	api.sendNoContent(w)
}

func (api *RestAPI) linesForStopHandler(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		api.sendNotFound(w, r)
		return
	}

	lines, err := api.service.LinesForStop(r.Context(), id)
	if err != nil {
		api.serviceErrorResponse(w, r, err, "")
		return
	}

	api.sendResponse(w, r, http.StatusOK, mapSlice(lines, newLineResponse))
}

// stopsNearbyHandler ranks every stop by distance from ?lat=&long=.
func (api *RestAPI) stopsNearbyHandler(w http.ResponseWriter, r *http.Request) {
	errs := fieldErrors{}
	lat := queryFloat(r, "lat", errs)
	long := queryFloat(r, "long", errs)
	if len(errs) > 0 {
		api.validationErrorResponse(w, r, errs)
		return
	}

	ranked, err := api.service.NearestStops(r.Context(), models.Coordinates{Latitude: lat, Longitude: long})
	if err != nil {
		api.serviceErrorResponse(w, r, err, "")
		return
	}

	api.sendResponse(w, r, http.StatusOK, mapSlice(ranked, newRankedStopResponse))
}

// stopsNearAddressHandler ranks every stop by distance from the address in ?q=.
func (api *RestAPI) stopsNearAddressHandler(w http.ResponseWriter, r *http.Request) {
	address := strings.TrimSpace(r.URL.Query().Get("q"))
	if address == "" {
		api.validationErrorResponse(w, r, fieldErrors{"q": {msgRequired}})
		return
	}

	ranked, err := api.service.NearestStopsToAddress(r.Context(), address)
	if err != nil {
		api.serviceErrorResponse(w, r, err, "")
		return
	}

	api.sendResponse(w, r, http.StatusOK, mapSlice(ranked, newRankedStopResponse))
}
