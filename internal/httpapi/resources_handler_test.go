package httpapi_test

import (
	"net/http"
	"testing"

	"github.com/UnknownOlympus/olhovivo/internal/models"
	"github.com/UnknownOlympus/olhovivo/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestLines(t *testing.T) {
	t.Parallel()

	t.Run("success - create", func(t *testing.T) {
		t.Parallel()
		api := newTestAPI(t, -1)
		api.service.On("CreateLine", mock.Anything, models.Line{Name: "500", StopIDs: []int64{1, 2}}).
			Return(models.Line{ID: 3, Name: "500", StopIDs: []int64{1, 2}}, nil).Once()

		rec := api.do(http.MethodPost, "/lines", `{"name":"500","stops":[1,"2"]}`)

		assert.Equal(t, http.StatusCreated, rec.Code)
		assert.JSONEq(t, `{"id":3,"name":"500","stops":[1,2]}`, rec.Body.String())
	})

	t.Run("error - unknown stop", func(t *testing.T) {
		t.Parallel()
		api := newTestAPI(t, -1)
		api.service.On("CreateLine", mock.Anything, models.Line{Name: "500", StopIDs: []int64{42}}).
			Return(models.Line{}, service.ErrInvalidReference).Once()

		rec := api.do(http.MethodPost, "/lines", `{"name":"500","stops":[42]}`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.JSONEq(t, `{"fieldErrors":{"stops":["Referenced object does not exist."]}}`, rec.Body.String())
	})

	t.Run("error - stops must be a list of ids", func(t *testing.T) {
		t.Parallel()
		api := newTestAPI(t, -1)

		rec := api.do(http.MethodPost, "/lines", `{"name":"500","stops":3}`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.JSONEq(t, `{"fieldErrors":{"stops":["Expected a list of items."]}}`, rec.Body.String())
	})

	t.Run("error - stop id of the wrong type", func(t *testing.T) {
		t.Parallel()
		api := newTestAPI(t, -1)

		rec := api.do(http.MethodPost, "/lines", `{"name":"500","stops":[true]}`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.JSONEq(t, `{"fieldErrors":{"stops":["Incorrect type. Expected pk value, received true."]}}`,
			rec.Body.String())
	})

	t.Run("success - update replaces stops", func(t *testing.T) {
		t.Parallel()
		api := newTestAPI(t, -1)
		line := models.Line{ID: 3, Name: "500 Expresso", StopIDs: []int64{}}
		api.service.On("UpdateLine", mock.Anything, line).Return(line, nil).Once()

		rec := api.do(http.MethodPut, "/lines/3", `{"name":"500 Expresso","stops":[]}`)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"id":3,"name":"500 Expresso","stops":[]}`, rec.Body.String())
	})

	t.Run("success - delete", func(t *testing.T) {
		t.Parallel()
		api := newTestAPI(t, -1)
		api.service.On("DeleteLine", mock.Anything, int64(3)).Return(nil).Once()

		rec := api.do(http.MethodDelete, "/lines/3", "")

		assert.Equal(t, http.StatusNoContent, rec.Code)
	})

	t.Run("success - vehicles of a line", func(t *testing.T) {
		t.Parallel()
		api := newTestAPI(t, -1)
		lineID := int64(3)
		api.service.On("VehiclesForLine", mock.Anything, lineID).
			Return([]models.Vehicle{{ID: 8, Name: "Onibus 8", Model: "Caio", LineID: &lineID}}, nil).Once()

		rec := api.do(http.MethodGet, "/lines/3/vehicles", "")

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `[{"id":8,"name":"Onibus 8","model":"Caio","lineId":3}]`, rec.Body.String())
	})

	t.Run("error - vehicles of a missing line", func(t *testing.T) {
		t.Parallel()
		api := newTestAPI(t, -1)
		api.service.On("VehiclesForLine", mock.Anything, int64(9)).Return(nil, service.ErrNotFound).Once()

		rec := api.do(http.MethodGet, "/lines/9/vehicles", "")

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestVehicles(t *testing.T) {
	t.Parallel()

	t.Run("success - create without line", func(t *testing.T) {
		t.Parallel()
		api := newTestAPI(t, -1)
		api.service.On("CreateVehicle", mock.Anything, models.Vehicle{Name: "Onibus 8", Model: "Caio"}).
			Return(models.Vehicle{ID: 8, Name: "Onibus 8", Model: "Caio"}, nil).Once()

		rec := api.do(http.MethodPost, "/vehicles", `{"name":"Onibus 8","model":"Caio","lineId":null}`)

		assert.Equal(t, http.StatusCreated, rec.Code)
		assert.JSONEq(t, `{"id":8,"name":"Onibus 8","model":"Caio","lineId":null}`, rec.Body.String())
	})

	t.Run("error - unknown line", func(t *testing.T) {
		t.Parallel()
		api := newTestAPI(t, -1)
		api.service.On("CreateVehicle", mock.Anything, mock.MatchedBy(func(v models.Vehicle) bool {
			return v.LineID != nil && *v.LineID == 77
		})).Return(models.Vehicle{}, service.ErrInvalidReference).Once()

		rec := api.do(http.MethodPost, "/vehicles", `{"name":"Onibus 8","model":"Caio","lineId":"77"}`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.JSONEq(t, `{"fieldErrors":{"lineId":["Referenced object does not exist."]}}`, rec.Body.String())
	})

	t.Run("error - invalid line id", func(t *testing.T) {
		t.Parallel()
		api := newTestAPI(t, -1)

		rec := api.do(http.MethodPost, "/vehicles", `{"name":"Onibus 8","model":"","lineId":"três"}`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.JSONEq(t, `{"fieldErrors":{
			"model":["This field may not be blank."],
			"lineId":["A valid integer is required."]
		}}`, rec.Body.String())
	})

	t.Run("error - empty listing", func(t *testing.T) {
		t.Parallel()
		api := newTestAPI(t, -1)
		api.service.On("ListVehicles", mock.Anything).Return(nil, service.ErrNotFound).Once()

		rec := api.do(http.MethodGet, "/vehicles", "")

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestPositions(t *testing.T) {
	t.Parallel()

	t.Run("success - create", func(t *testing.T) {
		t.Parallel()
		api := newTestAPI(t, -1)
		input := models.VehiclePosition{VehicleID: 8, Latitude: -21.7655, Longitude: -43.3476}
		stored := input
		stored.ID = 100
		api.service.On("CreatePosition", mock.Anything, input).Return(stored, nil).Once()

		rec := api.do(http.MethodPost, "/positions", `{"vehicleId":8,"latitude":"-21.7655","longitude":"-43.3476"}`)

		assert.Equal(t, http.StatusCreated, rec.Code)
		assert.JSONEq(t, `{"id":100,"vehicleId":8,"latitude":-21.7655,"longitude":-43.3476}`, rec.Body.String())
	})

	t.Run("error - unknown vehicle", func(t *testing.T) {
		t.Parallel()
		api := newTestAPI(t, -1)
		api.service.On("UpdatePosition", mock.Anything, mock.Anything).
			Return(models.VehiclePosition{}, service.ErrInvalidReference).Once()

		rec := api.do(http.MethodPut, "/positions/100", `{"vehicleId":999,"latitude":1,"longitude":2}`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.JSONEq(t, `{"fieldErrors":{"vehicleId":["Referenced object does not exist."]}}`, rec.Body.String())
	})

	t.Run("error - vehicle required", func(t *testing.T) {
		t.Parallel()
		api := newTestAPI(t, -1)

		rec := api.do(http.MethodPost, "/positions", `{"latitude":1,"longitude":2}`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.JSONEq(t, `{"fieldErrors":{"vehicleId":["This field is required."]}}`, rec.Body.String())
	})

	t.Run("success - get and delete", func(t *testing.T) {
		t.Parallel()
		api := newTestAPI(t, -1)
		api.service.On("GetPosition", mock.Anything, int64(100)).
			Return(models.VehiclePosition{ID: 100, VehicleID: 8, Latitude: 1, Longitude: 2}, nil).Once()
		api.service.On("DeletePosition", mock.Anything, int64(100)).Return(nil).Once()

		got := api.do(http.MethodGet, "/positions/100", "")
		deleted := api.do(http.MethodDelete, "/positions/100", "")

		assert.Equal(t, http.StatusOK, got.Code)
		assert.JSONEq(t, `{"id":100,"vehicleId":8,"latitude":1,"longitude":2}`, got.Body.String())
		assert.Equal(t, http.StatusNoContent, deleted.Code)
	})
}
