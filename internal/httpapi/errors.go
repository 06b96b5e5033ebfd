package httpapi

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/UnknownOlympus/olhovivo/internal/logging"
	"github.com/UnknownOlympus/olhovivo/internal/service"
)

type errorBody struct {
	Code int    `json:"code"`
	Text string `json:"text"`
}

func (api *RestAPI) errorResponse(w http.ResponseWriter, r *http.Request, status int, text string) {
	api.sendResponse(w, r, status, errorBody{Code: status, Text: text})
}

func (api *RestAPI) sendNotFound(w http.ResponseWriter, r *http.Request) {
	api.errorResponse(w, r, http.StatusNotFound, "not found")
}

func (api *RestAPI) methodNotAllowed(w http.ResponseWriter, r *http.Request) {
	api.errorResponse(w, r, http.StatusMethodNotAllowed, fmt.Sprintf("method %s not allowed", r.Method))
}

func (api *RestAPI) serverErrorResponse(w http.ResponseWriter, r *http.Request, err error) {
	logging.FromContext(r.Context()).ErrorContext(r.Context(), "request failed",
		"method", r.Method, "path", r.URL.Path, "error", err)
	api.errorResponse(w, r, http.StatusInternalServerError, "internal server error")
}

func (api *RestAPI) recoverPanic(w http.ResponseWriter, r *http.Request, rcv any) {
	api.serverErrorResponse(w, r, fmt.Errorf("panic: %v", rcv))
}

// validationErrorResponse sends a 400 Bad Request response with field-specific validation errors.
func (api *RestAPI) validationErrorResponse(w http.ResponseWriter, r *http.Request, fieldErrors map[string][]string) {
	response := struct {
		FieldErrors map[string][]string `json:"fieldErrors"`
	}{
		FieldErrors: fieldErrors,
	}

	api.sendResponse(w, r, http.StatusBadRequest, response)
}

// serviceErrorResponse maps a service failure onto its HTTP status. referenceField
// names the request field blamed for an invalid reference.
func (api *RestAPI) serviceErrorResponse(w http.ResponseWriter, r *http.Request, err error, referenceField string) {
	switch {
	case errors.Is(err, service.ErrNotFound), errors.Is(err, service.ErrAddressNotFound):
		api.sendNotFound(w, r)
	case errors.Is(err, service.ErrInvalidReference) && referenceField != "":
		api.validationErrorResponse(w, r, map[string][]string{
			referenceField: {"Referenced object does not exist."},
		})
	case errors.Is(err, service.ErrGeocodingDisabled):
		api.errorResponse(w, r, http.StatusServiceUnavailable, err.Error())
	default:
		api.serverErrorResponse(w, r, err)
	}
}

// sendResponse writes nothing until body is encoded. A body that cannot be
// encoded is answered with 500.
func (api *RestAPI) sendResponse(w http.ResponseWriter, r *http.Request, status int, body any) {
	payload, err := json.Marshal(body)
	if err != nil {
		api.serverErrorResponse(w, r, fmt.Errorf("failed to encode response: %w", err))
		return
	}

	setJSONResponseType(w)
	w.WriteHeader(status)

	if _, err = w.Write(append(payload, '\n')); err != nil {
		logging.FromContext(r.Context()).ErrorContext(r.Context(), "failed to write response", "error", err)
	}
}

func (api *RestAPI) sendNoContent(w http.ResponseWriter) {
	w.WriteHeader(http.StatusNoContent)
}

func setJSONResponseType(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "application/json")
}
