package shared

import (
	"encoding/json"
	"log/slog"
	"net/http"
)

// Fixed failure messages shared across handlers.
const (
	// NotFoundMessage is the failure message for a missing resource.
	NotFoundMessage = "Not found."

	// InternalErrorMessage is the failure message for unexpected errors.
	InternalErrorMessage = "Internal Server Error"
)

// Envelope is the fixed response wrapper every endpoint returns, always
// with HTTP 200. Exactly one of Error and Content is populated; the other
// is an empty object.
type Envelope struct {
	IsError bool `json:"is_error"`
	Error   any  `json:"error"`
	Content any  `json:"content"`
}

// FailureBody is the message-plus-details failure shape. Details are
// usually a list of strings, but some operations carry a field-error map
// instead. Top-level field validation failures skip the message and use a
// bare map[string][]string as the error body.
type FailureBody struct {
	Message string `json:"message"`
	Errors  any    `json:"errors"`
}

// emptyObject serializes to {} rather than null.
var emptyObject = map[string]any{}

// RespondWithContent writes a success envelope carrying the given content.
func RespondWithContent(w http.ResponseWriter, r *http.Request, content any) {
	if content == nil {
		content = emptyObject
	}
	writeEnvelope(w, r, Envelope{
		IsError: false,
		Error:   emptyObject,
		Content: content,
	})
}

// RespondWithFieldErrors writes a failure envelope whose error body is a
// map of field names to validation messages.
func RespondWithFieldErrors(w http.ResponseWriter, r *http.Request, fieldErrors map[string][]string) {
	writeEnvelope(w, r, Envelope{
		IsError: true,
		Error:   fieldErrors,
		Content: emptyObject,
	})
}

// RespondWithFailure writes a failure envelope with a message and a detail
// list. A nil detail list serializes as [].
func RespondWithFailure(w http.ResponseWriter, r *http.Request, message string, details []string) {
	if details == nil {
		details = []string{}
	}
	writeEnvelope(w, r, Envelope{
		IsError: true,
		Error:   FailureBody{Message: message, Errors: details},
		Content: emptyObject,
	})
}

// RespondWithFailureFields writes a failure envelope whose detail is a
// field-error map rather than a list.
func RespondWithFailureFields(w http.ResponseWriter, r *http.Request, message string, fieldErrors map[string][]string) {
	writeEnvelope(w, r, Envelope{
		IsError: true,
		Error:   FailureBody{Message: message, Errors: fieldErrors},
		Content: emptyObject,
	})
}

// RespondWithNotFound writes the fixed "Not found." failure envelope.
func RespondWithNotFound(w http.ResponseWriter, r *http.Request) {
	RespondWithFailure(w, r, NotFoundMessage, nil)
}

// RespondWithInternalError logs the error and writes the fixed internal
// error failure envelope. The raw error never reaches the client.
func RespondWithInternalError(w http.ResponseWriter, r *http.Request, err error) {
	slog.Error("unexpected error handling request",
		"error", err,
		"trace_id", GetTraceID(r.Context()),
		"path", r.URL.Path,
		"method", r.Method)
	RespondWithFailure(w, r, InternalErrorMessage, nil)
}

func writeEnvelope(w http.ResponseWriter, r *http.Request, envelope Envelope) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(envelope); err != nil {
		slog.Error("failed to encode JSON response",
			"error", err,
			"trace_id", GetTraceID(r.Context()))
	}
}
