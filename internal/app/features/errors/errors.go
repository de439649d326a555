// internal/app/features/errors/errors.go

// Package errors maps core failures onto the JSON API surface. Every
// authority error kind has one stable status code; anything unclassified
// is a 500 and gets logged with request context.
package errors

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/dalemusser/labelhub/internal/app/authority"
	"go.uber.org/zap"
)

type errorBody struct {
	Detail string `json:"detail"`
}

// WriteJSON writes v with the given status.
func WriteJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if v != nil {
		_ = json.NewEncoder(w).Encode(v)
	}
}

// NoContent writes a bare 204.
func NoContent(w http.ResponseWriter) {
	w.WriteHeader(http.StatusNoContent)
}

// WriteError writes a JSON error body with the given status.
func WriteError(w http.ResponseWriter, status int, detail string) {
	WriteJSON(w, status, errorBody{Detail: detail})
}

// Status maps an authority error kind to its response code family.
//
//	NotFound          → 404
//	PermissionDenied  → 403
//	InvalidTransition → 405 (distinct from 403 so clients can render
//	                         "cannot remove self" instead of "not authorized")
//	Validation        → 400
//	Conflict          → 409
//
// ok is false for unclassified errors.
func Status(err error) (status int, ok bool) {
	var ae *authority.Error
	if !errors.As(err, &ae) {
		return 0, false
	}
	switch ae.Kind {
	case authority.KindNotFound:
		return http.StatusNotFound, true
	case authority.KindPermissionDenied:
		return http.StatusForbidden, true
	case authority.KindInvalidTransition:
		return http.StatusMethodNotAllowed, true
	case authority.KindValidation:
		return http.StatusBadRequest, true
	case authority.KindConflict:
		return http.StatusConflict, true
	}
	return 0, false
}

// ErrorLogger writes 500s with enough context to find them in the logs
// without leaking internals to the client.
type ErrorLogger struct {
	log *zap.Logger
}

func NewErrorLogger(logger *zap.Logger) *ErrorLogger {
	return &ErrorLogger{log: logger}
}

// Respond translates err for the client: classified errors get their
// taxonomy status and message, everything else is logged and becomes an
// opaque 500.
func (e *ErrorLogger) Respond(w http.ResponseWriter, r *http.Request, msg string, err error) {
	if status, ok := Status(err); ok {
		WriteError(w, status, err.Error())
		return
	}
	e.log.Error(msg,
		zap.Error(err),
		zap.String("method", r.Method),
		zap.String("path", r.URL.Path))
	WriteError(w, http.StatusInternalServerError, "internal server error")
}
