package httpapi

import (
	"net/http"

	"github.com/UnknownOlympus/olhovivo/internal/models"
)

func decodePosition(w http.ResponseWriter, r *http.Request) (models.VehiclePosition, fieldErrors, error) {
	p, err := decodePayload(w, r)
	if err != nil {
		return models.VehiclePosition{}, nil, err
	}

	errs := fieldErrors{}
	pos := models.VehiclePosition{
		VehicleID: p.integer("vehicleId", errs),
		Latitude:  p.float("latitude", errs),
		Longitude: p.float("longitude", errs),
	}

	return pos, errs, nil
}

func (api *RestAPI) listPositionsHandler(w http.ResponseWriter, r *http.Request) {
	positions, err := api.service.ListPositions(r.Context())
	if err != nil {
		api.serviceErrorResponse(w, r, err, "")
		return
	}

	api.sendResponse(w, r, http.StatusOK, mapSlice(positions, newPositionResponse))
}

func (api *RestAPI) createPositionHandler(w http.ResponseWriter, r *http.Request) {
	pos, errs, err := decodePosition(w, r)
	if err != nil {
		api.errorResponse(w, r, http.StatusBadRequest, err.Error())
		return
	}
	if len(errs) > 0 {
		api.validationErrorResponse(w, r, errs)
		return
	}

	created, err := api.service.CreatePosition(r.Context(), pos)
	if err != nil {
		api.serviceErrorResponse(w, r, err, "vehicleId")
		return
	}

	api.sendResponse(w, r, http.StatusCreated, newPositionResponse(created))
}

func (api *RestAPI) getPositionHandler(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		api.sendNotFound(w, r)
		return
	}

	pos, err := api.service.GetPosition(r.Context(), id)
	if err != nil {
		api.serviceErrorResponse(w, r, err, "")
		return
	}

	api.sendResponse(w, r, http.StatusOK, newPositionResponse(pos))
}

func (api *RestAPI) updatePositionHandler(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		api.sendNotFound(w, r)
		return
	}

	pos, errs, err := decodePosition(w, r)
	if err != nil {
		api.errorResponse(w, r, http.StatusBadRequest, err.Error())
		return
	}
	if len(errs) > 0 {
		api.validationErrorResponse(w, r, errs)
		return
	}
	pos.ID = id

	updated, err := api.service.UpdatePosition(r.Context(), pos)
	if err != nil {
		api.serviceErrorResponse(w, r, err, "vehicleId")
		return
	}

	api.sendResponse(w, r, http.StatusOK, newPositionResponse(updated))
}

func (api *RestAPI) deletePositionHandler(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		api.sendNotFound(w, r)
		return
	}

	if err := api.service.DeletePosition(r.Context(), id); err != nil {
		api.serviceErrorResponse(w, r, err, "")
		return
	}

	api.sendNoContent(w)
}
