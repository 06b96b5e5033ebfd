package httpapi

import (
	"net/http"

	"github.com/UnknownOlympus/olhovivo/internal/models"
)

func decodeVehicle(w http.ResponseWriter, r *http.Request) (models.Vehicle, fieldErrors, error) {
	p, err := decodePayload(w, r)
	if err != nil {
		return models.Vehicle{}, nil, err
	}

	errs := fieldErrors{}
	vehicle := models.Vehicle{
		Name:   p.name("name", errs),
		Model:  p.name("model", errs),
		LineID: p.optionalInteger("lineId", errs),
	}

	return vehicle, errs, nil
}

func (api *RestAPI) listVehiclesHandler(w http.ResponseWriter, r *http.Request) {
	vehicles, err := api.service.ListVehicles(r.Context())
	if err != nil {
		api.serviceErrorResponse(w, r, err, "")
		return
	}

	api.sendResponse(w, r, http.StatusOK, mapSlice(vehicles, newVehicleResponse))
}

func (api *RestAPI) createVehicleHandler(w http.ResponseWriter, r *http.Request) {
	vehicle, errs, err := decodeVehicle(w, r)
	if err != nil {
		api.errorResponse(w, r, http.StatusBadRequest, err.Error())
		return
	}
	if len(errs) > 0 {
		api.validationErrorResponse(w, r, errs)
		return
	}

	created, err := api.service.CreateVehicle(r.Context(), vehicle)
	if err != nil {
		api.serviceErrorResponse(w, r, err, "lineId")
		return
	}

	api.sendResponse(w, r, http.StatusCreated, newVehicleResponse(created))
}

func (api *RestAPI) getVehicleHandler(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		api.sendNotFound(w, r)
		return
	}

	vehicle, err := api.service.GetVehicle(r.Context(), id)
	if err != nil {
		api.serviceErrorResponse(w, r, err, "")
		return
	}

	api.sendResponse(w, r, http.StatusOK, newVehicleResponse(vehicle))
}

func (api *RestAPI) updateVehicleHandler(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		api.sendNotFound(w, r)
		return
	}

	vehicle, errs, err := decodeVehicle(w, r)
	if err != nil {
		api.errorResponse(w, r, http.StatusBadRequest, err.Error())
		return
	}
	if len(errs) > 0 {
		api.validationErrorResponse(w, r, errs)
		return
	}
	vehicle.ID = id

	updated, err := api.service.UpdateVehicle(r.Context(), vehicle)
	if err != nil {
		api.serviceErrorResponse(w, r, err, "lineId")
		return
	}

	api.sendResponse(w, r, http.StatusOK, newVehicleResponse(updated))
}

func (api *RestAPI) deleteVehicleHandler(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		api.sendNotFound(w, r)
		return
	}

	if err := api.service.DeleteVehicle(r.Context(), id); err != nil {
		api.serviceErrorResponse(w, r, err, "")
		return
	}

	api.sendNoContent(w)
}
