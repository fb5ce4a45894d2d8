// Package respond writes the JSON bodies shared by every API handler.
package respond

import (
	"errors"
	"log"
	"net/http"

	"github.com/go-chi/render"

	"github.com/cyberhub/community-platform/backend/internal/validation"
)

// ErrorBody is the envelope for every non-2xx JSON response.
type ErrorBody struct {
	Message string                  `json:"message"`
	Field   string                  `json:"field,omitempty"`
	Errors  []validation.FieldError `json:"errors,omitempty"`
}

// JSON writes v with the given status code.
func JSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	render.Status(r, status)
	render.JSON(w, r, v)
}

// Error writes a message-only error body.
func Error(w http.ResponseWriter, r *http.Request, status int, message string) {
	JSON(w, r, status, ErrorBody{Message: message})
}

// Invalid writes a 400 carrying the field-level errors of err when err is a
// *validation.ValidationError.
func Invalid(w http.ResponseWriter, r *http.Request, message string, err error) {
	body := ErrorBody{Message: message}
	var verr *validation.ValidationError
	if errors.As(err, &verr) {
		body.Errors = verr.Errors
	}
	JSON(w, r, http.StatusBadRequest, body)
}

// Internal logs err and writes a generic 500 that leaks nothing.
func Internal(w http.ResponseWriter, r *http.Request, message string, err error) {
	log.Printf("%s %s: %s: %v", r.Method, r.URL.Path, message, err)
	Error(w, r, http.StatusInternalServerError, message)
}

// NoContent writes a bare 204.
func NoContent(w http.ResponseWriter, r *http.Request) {
	render.NoContent(w, r)
}
