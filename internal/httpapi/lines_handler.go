package httpapi

import (
	"net/http"

	"github.com/UnknownOlympus/olhovivo/internal/models"
)

func decodeLine(w http.ResponseWriter, r *http.Request) (models.Line, fieldErrors, error) {
	p, err := decodePayload(w, r)
	if err != nil {
		return models.Line{}, nil, err
	}

	errs := fieldErrors{}
	line := models.Line{
		Name:    p.name("name", errs),
		StopIDs: p.integerList("stops", errs),
	}

	return line, errs, nil
}

func (api *RestAPI) listLinesHandler(w http.ResponseWriter, r *http.Request) {
	lines, err := api.service.ListLines(r.Context())
	if err != nil {
		api.serviceErrorResponse(w, r, err, "")
		return
	}

	api.sendResponse(w, r, http.StatusOK, mapSlice(lines, newLineResponse))
}

func (api *RestAPI) createLineHandler(w http.ResponseWriter, r *http.Request) {
	line, errs, err := decodeLine(w, r)
	if err != nil {
		api.errorResponse(w, r, http.StatusBadRequest, err.Error())
		return
	}
	if len(errs) > 0 {
		api.validationErrorResponse(w, r, errs)
		return
	}

	created, err := api.service.CreateLine(r.Context(), line)
	if err != nil {
		api.serviceErrorResponse(w, r, err, "stops")
		return
	}

	api.sendResponse(w, r, http.StatusCreated, newLineResponse(created))
}

func (api *RestAPI) getLineHandler(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		api.sendNotFound(w, r)
		return
	}

	line, err := api.service.GetLine(r.Context(), id)
	if err != nil {
		api.serviceErrorResponse(w, r, err, "")
		return
	}

	api.sendResponse(w, r, http.StatusOK, newLineResponse(line))
}

func (api *RestAPI) updateLineHandler(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		api.sendNotFound(w, r)
		return
	}

	line, errs, err := decodeLine(w, r)
	if err != nil {
		api.errorResponse(w, r, http.StatusBadRequest, err.Error())
		return
	}
	if len(errs) > 0 {
		api.validationErrorResponse(w, r, errs)
		return
	}
	line.ID = id

	updated, err := api.service.UpdateLine(r.Context(), line)
	if err != nil {
		api.serviceErrorResponse(w, r, err, "stops")
		return
	}

	api.sendResponse(w, r, http.StatusOK, newLineResponse(updated))
}

func (api *RestAPI) deleteLineHandler(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		api.sendNotFound(w, r)
		return
	}

	if err := api.service.DeleteLine(r.Context(), id); err != nil {
		api.serviceErrorResponse(w, r, err, "")
		return
	}

	api.sendNoContent(w)
}

func (api *RestAPI) vehiclesForLineHandler(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		api.sendNotFound(w, r)
		return
	}

	vehicles, err := api.service.VehiclesForLine(r.Context(), id)
	if err != nil {
		api.serviceErrorResponse(w, r, err, "")
		return
	}

	api.sendResponse(w, r, http.StatusOK, mapSlice(vehicles, newVehicleResponse))
}
