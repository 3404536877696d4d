package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

// malformedRequestMessage is the failure message for bodies that cannot
// be parsed as JSON.
const malformedRequestMessage = "Malformed request."

var errMalformedBody = errors.New("request body is not valid JSON")

// decodeJSON decodes the request body into the given payload struct.
func decodeJSON(r *http.Request, payload any) error {
	if err := json.NewDecoder(r.Body).Decode(payload); err != nil {
		return errMalformedBody
	}
	return nil
}

// decodeJSONMap decodes the request body into a generic map, the input
// format of the partial-update path.
func decodeJSONMap(r *http.Request) (map[string]any, error) {
	var values map[string]any
	if err := json.NewDecoder(r.Body).Decode(&values); err != nil {
		return nil, errMalformedBody
	}
	return values, nil
}

// getPathUUID extracts a UUID path parameter. A missing or malformed
// value is reported the same way as a lookup miss, since no resource can
// live at such a path.
func getPathUUID(r *http.Request, paramName string) (uuid.UUID, error) {
	pathParam := chi.URLParam(r, paramName)
	if pathParam == "" {
		return uuid.Nil, errors.New(paramName + " path parameter is required")
	}

	id, err := uuid.Parse(pathParam)
	if err != nil {
		return uuid.Nil, err
	}

	return id, nil
}

// queryUUID parses an optional UUID query parameter. The second return
// value reports whether a usable value was present.
func queryUUID(r *http.Request, name string) (uuid.UUID, bool) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return uuid.Nil, false
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, false
	}
	return id, true
}

// queryBool parses an optional boolean query parameter into a filter
// pointer. Unparseable values are ignored.
func queryBool(r *http.Request, name string) *bool {
	raw := r.URL.Query().Get(name)
	switch raw {
	case "true", "True", "1":
		v := true
		return &v
	case "false", "False", "0":
		v := false
		return &v
	default:
		return nil
	}
}
