package httpapi

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"net/http"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/julienschmidt/httprouter"
)

const (
	maxNameLength = 200
	maxBodyBytes  = 1 << 20

	msgRequired   = "This field is required."
	msgNull       = "This field may not be null."
	msgBlank      = "This field may not be blank."
	msgNotString  = "Not a valid string."
	msgNotNumber  = "A valid number is required."
	msgNotInteger = "A valid integer is required."
	msgNotList    = "Expected a list of items."
)

var errMalformedBody = errors.New("request body must be a JSON object")

// fieldErrors collects validation messages per request field.
type fieldErrors map[string][]string

func (fe fieldErrors) add(field, message string) {
	fe[field] = append(fe[field], message)
}

// payload holds the raw members of a JSON object body so every field can be
// validated and reported independently.
type payload map[string]json.RawMessage

func decodePayload(w http.ResponseWriter, r *http.Request) (payload, error) {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)

	var p payload
	if err := json.NewDecoder(r.Body).Decode(&p); err != nil || p == nil {
		return nil, errMalformedBody
	}

	return p, nil
}

// raw returns the member and whether it is present and not null.
func (p payload) raw(field string, errs fieldErrors) (json.RawMessage, bool) {
	value, ok := p[field]
	if !ok {
		errs.add(field, msgRequired)
		return nil, false
	}
	if isNull(value) {
		errs.add(field, msgNull)
		return nil, false
	}
	return value, true
}

func (p payload) name(field string, errs fieldErrors) string {
	value, ok := p.raw(field, errs)
	if !ok {
		return ""
	}

	var s string
	if err := json.Unmarshal(value, &s); err != nil {
		errs.add(field, msgNotString)
		return ""
	}

	s = strings.TrimSpace(s)
	switch {
	case s == "":
		errs.add(field, msgBlank)
	case utf8.RuneCountInString(s) > maxNameLength:
		errs.add(field, fmt.Sprintf("Ensure this field has no more than %d characters.", maxNameLength))
	}

	return s
}

// float accepts both JSON numbers and numeric strings.
func (p payload) float(field string, errs fieldErrors) float64 {
	value, ok := p.raw(field, errs)
	if !ok {
		return 0
	}

	f, err := parseFlexibleFloat(value)
	if err != nil {
		errs.add(field, msgNotNumber)
		return 0
	}

	return f
}

func (p payload) integer(field string, errs fieldErrors) int64 {
	value, ok := p.raw(field, errs)
	if !ok {
		return 0
	}

	id, err := parseFlexibleInt(value)
	if err != nil {
		errs.add(field, msgNotInteger)
	}

	return id
}

// optionalInteger treats an absent or null member as nil.
func (p payload) optionalInteger(field string, errs fieldErrors) *int64 {
	value, ok := p[field]
	if !ok || isNull(value) {
		return nil
	}

	id, err := parseFlexibleInt(value)
	if err != nil {
		errs.add(field, msgNotInteger)
		return nil
	}

	return &id
}

func (p payload) integerList(field string, errs fieldErrors) []int64 {
	value, ok := p.raw(field, errs)
	if !ok {
		return nil
	}

	var items []json.RawMessage
	if err := json.Unmarshal(value, &items); err != nil {
		errs.add(field, msgNotList)
		return nil
	}

	ids := make([]int64, 0, len(items))
	for _, item := range items {
		id, err := parseFlexibleInt(item)
		if err != nil {
			errs.add(field, fmt.Sprintf("Incorrect type. Expected pk value, received %s.", string(item)))
			continue
		}
		ids = append(ids, id)
	}

	return ids
}

func parseFlexibleFloat(value json.RawMessage) (float64, error) {
	var f float64
	if err := json.Unmarshal(value, &f); err == nil {
		return f, nil
	}

	var s string
	if err := json.Unmarshal(value, &s); err != nil {
		return 0, err
	}

	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, err
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, strconv.ErrSyntax
	}

	return f, nil
}

func parseFlexibleInt(value json.RawMessage) (int64, error) {
	var id int64
	if err := json.Unmarshal(value, &id); err == nil {
		return id, nil
	}

	var s string
	if err := json.Unmarshal(value, &s); err != nil {
		return 0, err
	}

	return strconv.ParseInt(strings.TrimSpace(s), 10, 64)
}

func isNull(value json.RawMessage) bool {
	return bytes.Equal(bytes.TrimSpace(value), []byte("null"))
}

// pathID returns the :id route parameter. A non-numeric id matches no resource.
func pathID(r *http.Request) (int64, bool) {
	params := httprouter.ParamsFromContext(r.Context())

	id, err := strconv.ParseInt(params.ByName("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}

	return id, true
}

// queryFloat parses a required float query parameter.
func queryFloat(r *http.Request, key string, errs fieldErrors) float64 {
	value := strings.TrimSpace(r.URL.Query().Get(key))
	if value == "" {
		errs.add(key, msgRequired)
		return 0
	}

	f, err := strconv.ParseFloat(value, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		errs.add(key, fmt.Sprintf("Invalid field value for field %q.", key))
		return 0
	}

	return f
}
