package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"
)

// envelope is the decoded response wrapper the assertions work against.
type envelope struct {
	IsError bool            `json:"is_error"`
	Error   json.RawMessage `json:"error"`
	Content json.RawMessage `json:"content"`
}

// serve runs a request through the given router and decodes the envelope.
func serve(t *testing.T, router chi.Router, method, target string, body any) envelope {
	t.Helper()

	var reqBody *bytes.Buffer
	if body != nil {
		encoded, err := json.Marshal(body)
		require.NoError(t, err)
		reqBody = bytes.NewBuffer(encoded)
	} else {
		reqBody = &bytes.Buffer{}
	}

	r := httptest.NewRequest(method, target, reqBody)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, r)

	require.Equal(t, http.StatusOK, w.Code, "every response is HTTP 200")

	var env envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	return env
}

// fieldErrors decodes the error body as a field-error map.
func fieldErrors(t *testing.T, env envelope) map[string][]string {
	t.Helper()

	require.True(t, env.IsError)
	var fields map[string][]string
	require.NoError(t, json.Unmarshal(env.Error, &fields))
	return fields
}

// failureBody decodes the error body as a message-plus-details failure.
type failure struct {
	Message string          `json:"message"`
	Errors  json.RawMessage `json:"errors"`
}

func failureOf(t *testing.T, env envelope) failure {
	t.Helper()

	require.True(t, env.IsError)
	var f failure
	require.NoError(t, json.Unmarshal(env.Error, &f))
	return f
}

func failureDetails(t *testing.T, f failure) []string {
	t.Helper()

	var details []string
	require.NoError(t, json.Unmarshal(f.Errors, &details))
	return details
}

func decodeContent(t *testing.T, env envelope, target any) {
	t.Helper()

	require.False(t, env.IsError)
	require.NoError(t, json.Unmarshal(env.Content, target))
}
