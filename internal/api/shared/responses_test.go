package shared

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decodeEnvelope(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()

	require.Equal(t, http.StatusOK, w.Code, "every response is HTTP 200")
	require.Equal(t, "application/json", w.Header().Get("Content-Type"))

	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

func TestRespondWithContent(t *testing.T) {
	t.Parallel()

	w := httptest.NewRecorder()
	r := httptest.NewRequest("GET", "/api/tags", nil)

	RespondWithContent(w, r, map[string]any{"name": "golang"})

	body := decodeEnvelope(t, w)
	assert.Equal(t, false, body["is_error"])
	assert.Equal(t, map[string]any{}, body["error"], "success responses carry an empty error object, not null")
	assert.Equal(t, map[string]any{"name": "golang"}, body["content"])
}

func TestRespondWithFieldErrors(t *testing.T) {
	t.Parallel()

	w := httptest.NewRecorder()
	r := httptest.NewRequest("POST", "/api/tags", nil)

	RespondWithFieldErrors(w, r, map[string][]string{
		"name": {"This field is required."},
	})

	body := decodeEnvelope(t, w)
	assert.Equal(t, true, body["is_error"])
	assert.Equal(t, map[string]any{
		"name": []any{"This field is required."},
	}, body["error"])
	assert.Equal(t, map[string]any{}, body["content"])
}

func TestRespondWithFailure(t *testing.T) {
	t.Parallel()

	t.Run("nil details serialize as empty list", func(t *testing.T) {
		t.Parallel()

		w := httptest.NewRecorder()
		r := httptest.NewRequest("GET", "/api/tags/unknown", nil)

		RespondWithFailure(w, r, NotFoundMessage, nil)

		body := decodeEnvelope(t, w)
		assert.Equal(t, true, body["is_error"])
		assert.Equal(t, map[string]any{
			"message": "Not found.",
			"errors":  []any{},
		}, body["error"])
	})

	t.Run("details are carried through", func(t *testing.T) {
		t.Parallel()

		w := httptest.NewRecorder()
		r := httptest.NewRequest("DELETE", "/api/tags/x", nil)

		RespondWithFailure(w, r, "Delete Failed", []string{
			"This instance is referenced by other records and cannot be deleted.",
		})

		body := decodeEnvelope(t, w)
		assert.Equal(t, map[string]any{
			"message": "Delete Failed",
			"errors": []any{
				"This instance is referenced by other records and cannot be deleted.",
			},
		}, body["error"])
	})
}

func TestRespondWithFailureFields(t *testing.T) {
	t.Parallel()

	w := httptest.NewRecorder()
	r := httptest.NewRequest("PUT", "/api/users/x/change_password", nil)

	RespondWithFailureFields(w, r, "Password Change Failed", map[string][]string{
		"password": {"Passwords do not match"},
	})

	body := decodeEnvelope(t, w)
	assert.Equal(t, map[string]any{
		"message": "Password Change Failed",
		"errors": map[string]any{
			"password": []any{"Passwords do not match"},
		},
	}, body["error"])
}

func TestRespondWithInternalError(t *testing.T) {
	t.Parallel()

	w := httptest.NewRecorder()
	r := httptest.NewRequest("GET", "/api/accounts", nil)

	RespondWithInternalError(w, r, errors.New("pq: connection refused"))

	body := decodeEnvelope(t, w)
	errBody, ok := body["error"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "Internal Server Error", errBody["message"])
	assert.NotContains(t, w.Body.String(), "connection refused", "raw errors never reach the client")
}
